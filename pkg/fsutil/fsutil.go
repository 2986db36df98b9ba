// Package fsutil resolves file paths and URLs given on the command line into their content.
package fsutil

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/openstack-go/heat-cli/pkg/httpclient"
	"github.com/spf13/afero"
)

// FetchError is returned when the content behind a path or URL can't be retrieved.
type FetchError struct {
	Ref string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("cannot fetch %s: %s", e.Ref, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NormalizeURL turns a reference into a URL. References with a scheme are
// returned as is, anything else is considered as a filesystem path and
// converted into an absolute "file://" URL.
func NormalizeURL(ref string) (string, error) {
	if u, err := url.Parse(ref); err == nil && len(u.Scheme) > 1 {
		return ref, nil
	}
	absPath, err := filepath.Abs(ref)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}
	return u.String(), nil
}

// Fetcher reads the content of local files and remote URLs.
type Fetcher struct {
	fs     afero.Fs
	client *httpclient.Client
}

// NewFetcher returns a fetcher reading files from fs and URLs through client.
// The client shouldn't carry any credential as URLs can point to any host.
func NewFetcher(fs afero.Fs, client *httpclient.Client) *Fetcher {
	if client == nil {
		client = httpclient.New("")
	}
	return &Fetcher{fs: fs, client: client}
}

// Fetch returns the content behind a path or URL. Errors are always of type *FetchError.
func (f *Fetcher) Fetch(ref string) ([]byte, error) {
	rawURL, err := NormalizeURL(ref)
	if err != nil {
		return nil, &FetchError{Ref: ref, Err: err}
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &FetchError{Ref: ref, Err: err}
	}

	var content []byte
	switch strings.ToLower(u.Scheme) {
	case "file":
		content, err = afero.ReadFile(f.fs, filepath.FromSlash(u.Path))
	case "http", "https":
		content, err = f.get(rawURL)
	default:
		err = fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
	if err != nil {
		return nil, &FetchError{Ref: ref, Err: err}
	}
	return content, nil
}

func (f *Fetcher) get(rawURL string) ([]byte, error) {
	resp, err := f.client.Get(rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return ioutil.ReadAll(resp.Body)
}

// DetectMediaType detects the media type of some content, as defined in
// https://www.iana.org/assignments/media-types/media-types.xhtml.
func DetectMediaType(content []byte) string {
	return http.DetectContentType(content)
}

// IsText returns whether some content looks like text, empty content is considered as text.
func IsText(content []byte) bool {
	return len(content) == 0 || strings.HasPrefix(DetectMediaType(content), "text/")
}
