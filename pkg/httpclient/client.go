package httpclient

import (
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Headers sent along with requests to the orchestration API.
const (
	HeaderAuthToken = "X-Auth-Token"
	HeaderRequestID = "X-OpenStack-Request-ID"
)

// Option is a functional option for an HTTP client.
type Option func(*Client)

// Timeout sets the HTTP client timeout.
func Timeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.baseClient.Timeout = timeout
	}
}

// TLS sets the TLS configuration of the HTTP client transport.
func TLS(tlsConfig *tls.Config) Option {
	return func(c *Client) {
		c.baseClient.Transport = &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: tlsConfig,
		}
	}
}

// AuthToken sets the token sent in the X-Auth-Token header.
func AuthToken(token string) Option {
	return func(c *Client) {
		c.authToken = token
	}
}

// Logger sets the logger used to log requests at debug level.
func Logger(logger *logrus.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// A Client is an HTTP client for a given base URL.
type Client struct {
	authToken  string
	baseURL    *url.URL
	baseClient *http.Client
	logger     *logrus.Logger
}

// New returns a new HTTP client for a base URL.
func New(baseURL string, opts ...Option) *Client {
	parsedURL, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		parsedURL = &url.URL{}
	}
	client := &Client{
		baseURL:    parsedURL,
		baseClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// BaseURL returns the base URL of the client.
func (c *Client) BaseURL() *url.URL {
	return c.baseURL
}

// Get issues a GET to the specified path.
func (c *Client) Get(path string) (*http.Response, error) {
	req, err := c.NewRequest("GET", path, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// Post issues a POST to the specified path.
func (c *Client) Post(path string, contentType string, body io.Reader) (*http.Response, error) {
	req, err := c.NewRequest("POST", path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	return c.Do(req)
}

// Delete issues a DELETE to the specified path.
func (c *Client) Delete(path string) (*http.Response, error) {
	req, err := c.NewRequest("DELETE", path, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// NewRequest returns a new Request given a method, path, and optional body.
// The path can also be an absolute URL, in which case the base URL is ignored.
//
// The token header is added when a token has been set, as well as a
// global request ID which lets operators correlate the request in the
// service logs.
func (c *Client) NewRequest(method, path string, body io.Reader) (*http.Request, error) {
	reqURL := c.baseURL.String() + path
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		reqURL = path
	}
	req, err := http.NewRequest(method, reqURL, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set(HeaderRequestID, "req-"+uuid.New().String())
	if c.authToken != "" {
		req.Header.Set(HeaderAuthToken, c.authToken)
	}
	return req, nil
}

// Do sends an HTTP request and returns an HTTP response, following
// policy (such as redirects, cookies, auth) as configured on the
// client.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.logger != nil {
		c.logger.Debugf("%s %s (%s)", req.Method, req.URL, req.Header.Get(HeaderRequestID))
	}
	resp, err := c.baseClient.Do(req)
	if err != nil {
		return nil, err
	}
	if c.logger != nil {
		c.logger.Debugf("%s %s: %s", req.Method, req.URL, resp.Status)
	}
	return resp, nil
}
