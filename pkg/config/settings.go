package config

import (
	"crypto/x509"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cast"
)

// DefaultMaxCellWidth is the default maximum width of a table cell.
const DefaultMaxCellWidth = 80

// TLS holds the configuration for TLS clients.
type TLS struct {
	// Insecure specifies if server certificates should be accepted without verification.
	Insecure bool

	// RootCAs is the root CA bundle used to verify server certificates.
	// When nil, the system's root CAs are used.
	RootCAs *x509.CertPool

	// RootCAsPath is the path to the root CA bundle.
	RootCAsPath string
}

// String returns the value to store under the core.ssl_verify key.
func (tls TLS) String() string {
	if tls.RootCAsPath != "" {
		return tls.RootCAsPath
	}
	return strconv.FormatBool(!tls.Insecure)
}

// URL returns the orchestration API endpoint, without trailing slash.
func (c *Config) URL() string {
	return strings.TrimRight(cast.ToString(c.Get(keyURL)), "/")
}

// SetURL sets the orchestration API endpoint.
func (c *Config) SetURL(url string) {
	c.Set(keyURL, url)
}

// AuthToken returns the token sent to the orchestration API.
func (c *Config) AuthToken() string {
	return cast.ToString(c.Get(keyAuthToken))
}

// SetAuthToken sets the token sent to the orchestration API.
func (c *Config) SetAuthToken(token string) {
	c.Set(keyAuthToken, token)
}

// Timeout returns the HTTP request timeout, 0 means no timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(cast.ToInt64(c.Get(keyTimeout))) * time.Second
}

// SetTimeout sets the HTTP request timeout.
func (c *Config) SetTimeout(timeout time.Duration) {
	c.Set(keyTimeout, int64(timeout.Seconds()))
}

// MaxCellWidth returns the maximum width of a table cell, 0 means no limit.
func (c *Config) MaxCellWidth() int {
	val := c.Get(keyMaxCellWidth)
	if val == nil {
		return DefaultMaxCellWidth
	}
	return cast.ToInt(val)
}

// TLS returns the TLS configuration for the orchestration API.
//
// Valid values for core.ssl_verify are:
//   - A path to a root CA bundle.
//   - "1", "t", "T", "TRUE", "true", "True" - will use the system's CA bundle.
//   - "0", "f", "F", "FALSE", "false", "False" - will send insecure requests.
func (c *Config) TLS() (TLS, error) {
	strVal := cast.ToString(c.Get(keyTLS))

	// If the string is empty or the value couldn't be casted to a string, use the default TLS config.
	if strVal == "" {
		return TLS{}, nil
	}

	// Try to cast the value to a bool, true means we verify
	// server certificates, false means we skip verification.
	if verify, err := strconv.ParseBool(strVal); err == nil {
		return TLS{
			Insecure: !verify,
		}, nil
	}

	// If the value is not a string representing a bool, it means it's a path to a root CA bundle.
	rootCAsPEM, err := afero.ReadFile(c.fs, strVal)
	if err != nil {
		return TLS{}, fmt.Errorf("cannot read CA bundle: %w", err)
	}

	// Decode the PEM root certificate(s) into a cert pool.
	certPool := x509.NewCertPool()
	if !certPool.AppendCertsFromPEM(rootCAsPEM) {
		return TLS{}, fmt.Errorf("cannot decode CA bundle %s", strVal)
	}
	return TLS{
		RootCAs:     certPool,
		RootCAsPath: strVal,
	}, nil
}

// SetTLS sets the TLS configuration for the orchestration API.
func (c *Config) SetTLS(tls TLS) {
	c.Set(keyTLS, tls.String())
}
