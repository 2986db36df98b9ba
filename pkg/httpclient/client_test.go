package httpclient

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v1/project/path", r.URL.Path)
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	client := New(ts.URL + "/v1/project/")

	resp, err := client.Get("/path")
	require.NoError(t, err)

	respBody, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "ok", string(respBody))
}

func TestPost(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/path", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := ioutil.ReadAll(r.Body)
		assert.NoError(t, err)

		assert.Equal(t, `{"name":"deploy"}`, string(body))
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	client := New(ts.URL)

	resp, err := client.Post("/path", "application/json", strings.NewReader(`{"name":"deploy"}`))
	require.NoError(t, err)

	respBody, err := ioutil.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "ok", string(respBody))
}

func TestDelete(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/software_configs/abc", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	resp, err := New(ts.URL).Delete("/software_configs/abc")
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestNewRequest(t *testing.T) {
	client := New("https://heat.example.com:8004/v1/project", AuthToken("gAAAAABk"))

	req, err := client.NewRequest("GET", "/path", nil)
	require.NoError(t, err)
	require.Equal(t, "https://heat.example.com:8004/v1/project/path", req.URL.String())
	require.Equal(t, "gAAAAABk", req.Header.Get("X-Auth-Token"))
	require.True(t, strings.HasPrefix(req.Header.Get("X-OpenStack-Request-ID"), "req-"))

	// Each request gets its own ID.
	other, err := client.NewRequest("GET", "/path", nil)
	require.NoError(t, err)
	require.NotEqual(t, req.Header.Get("X-OpenStack-Request-ID"), other.Header.Get("X-OpenStack-Request-ID"))

	// Absolute URLs are kept as is.
	req, err = client.NewRequest("GET", "https://heat.example.com:8004/", nil)
	require.NoError(t, err)
	require.Equal(t, "https://heat.example.com:8004/", req.URL.String())
}

func TestNewRequestWithoutToken(t *testing.T) {
	req, err := New("https://heat.example.com").NewRequest("GET", "/path", nil)
	require.NoError(t, err)
	require.Empty(t, req.Header.Get("X-Auth-Token"))
}

func TestDebugLogs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	var logs bytes.Buffer
	logger := &logrus.Logger{
		Out:       &logs,
		Formatter: &logrus.TextFormatter{DisableTimestamp: true},
		Level:     logrus.DebugLevel,
	}

	_, err := New(ts.URL, Logger(logger)).Get("/missing")
	require.NoError(t, err)
	require.Contains(t, logs.String(), "GET "+ts.URL+"/missing")
	require.Contains(t, logs.String(), "404 Not Found")
}

func TestTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timeout, err := time.ParseDuration(r.URL.Query().Get("timeout"))
		assert.NoError(t, err)
		time.Sleep(timeout)
	}))
	defer ts.Close()

	client := New(ts.URL, Timeout(50*time.Millisecond))

	// The handler will sleep for 100ms with a client timeout of 50ms, the call should fail.
	req, err := client.NewRequest("GET", "/", nil)
	require.NoError(t, err)
	req.URL.RawQuery = "timeout=100ms"
	_, err = client.Do(req)
	require.Error(t, err)

	// The handler will sleep for 10ms with a client timeout of 50ms, the call should succeed.
	req, err = client.NewRequest("GET", "/", nil)
	require.NoError(t, err)
	req.URL.RawQuery = "timeout=10ms"
	_, err = client.Do(req)
	require.NoError(t, err)
}

func TestTLS(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	certPool := x509.NewCertPool()
	certPool.AddCert(ts.Certificate())

	tlsConfigs := []struct {
		tls   *tls.Config
		valid bool
	}{
		// Using an empty TLS config should fail because the CA is not specified.
		{&tls.Config{}, false},

		// Using a TLS config with the actual CA should work.
		{&tls.Config{RootCAs: certPool}, true},

		// Using a TLS config with InsecureSkipVerify set to true should work.
		{&tls.Config{InsecureSkipVerify: true}, true},
	}

	for _, exp := range tlsConfigs {
		client := New(ts.URL, TLS(exp.tls))

		resp, err := client.Get("/")
		if exp.valid {
			require.NoError(t, err)
			respBody, err := ioutil.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Equal(t, "ok", string(respBody))
		} else {
			require.Error(t, err)
			require.Nil(t, resp)
		}
	}
}
