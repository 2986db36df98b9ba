package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type testKeyring map[string]string

func (k testKeyring) Token(url string) (string, error) {
	if token, ok := k[url]; ok {
		return token, nil
	}
	return "", errors.New("keyring unavailable")
}

func (k testKeyring) SetToken(url, token string) error {
	k[url] = token
	return nil
}

func (k testKeyring) DeleteToken(url string) error {
	delete(k, url)
	return nil
}

func newTestEnvironment(env map[string]string) *Environment {
	return &Environment{
		Out:    &bytes.Buffer{},
		ErrOut: &bytes.Buffer{},
		Fs:     afero.NewMemMapFs(),
		EnvLookup: func(key string) (string, bool) {
			val, ok := env[key]
			return val, ok
		},
	}
}

func TestRelativeHeatDir(t *testing.T) {
	currentDir, err := os.Getwd()
	require.NoError(t, err)

	heatDir, err := NewContext(newTestEnvironment(map[string]string{"HEAT_DIR": "."})).HeatDir()
	require.NoError(t, err)
	require.Equal(t, currentDir, heatDir)
}

func TestConfigFromHeatDir(t *testing.T) {
	env := newTestEnvironment(map[string]string{"HEAT_DIR": "/heat"})
	require.NoError(t, afero.WriteFile(env.Fs, filepath.Join("/heat", "heat.toml"), []byte(`
[core]
heat_url = "https://heat.example.com/v1/project"
timeout = 5
`), 0600))

	conf, err := NewContext(env).Config()
	require.NoError(t, err)
	require.Equal(t, "https://heat.example.com/v1/project", conf.URL())
	require.Equal(t, 5*time.Second, conf.Timeout())
}

func TestHTTPClientWithoutURL(t *testing.T) {
	ctx := NewContext(newTestEnvironment(map[string]string{"HEAT_DIR": "/heat"}))
	_, err := ctx.HeatClient()
	require.Equal(t, ErrNoURL, err)
}

func TestHTTPClientTokenFromKeyring(t *testing.T) {
	ctx := NewContext(newTestEnvironment(map[string]string{
		"HEAT_DIR": "/heat",
		"HEAT_URL": "https://heat.example.com/v1/project",
	}))
	ctx.SetKeyring(testKeyring{"https://heat.example.com/v1/project": "from-keyring"})

	conf, err := ctx.Config()
	require.NoError(t, err)

	client, err := ctx.HTTPClient(conf)
	require.NoError(t, err)

	req, err := client.NewRequest("GET", "/software_configs", nil)
	require.NoError(t, err)
	require.Equal(t, "from-keyring", req.Header.Get("X-Auth-Token"))
}

func TestHTTPClientConfiguredToken(t *testing.T) {
	ctx := NewContext(newTestEnvironment(map[string]string{
		"HEAT_DIR":      "/heat",
		"HEAT_URL":      "https://heat.example.com/v1/project",
		"OS_AUTH_TOKEN": "from-env",
	}))
	ctx.SetKeyring(testKeyring{})

	conf, err := ctx.Config()
	require.NoError(t, err)

	client, err := ctx.HTTPClient(conf)
	require.NoError(t, err)

	req, err := client.NewRequest("GET", "/software_configs", nil)
	require.NoError(t, err)
	require.Equal(t, "from-env", req.Header.Get("X-Auth-Token"))
}

func TestDeprecated(t *testing.T) {
	env := newTestEnvironment(nil)
	require.NoError(t, NewContext(env).Deprecated("The --debug flag is deprecated."))
	require.Equal(t, "The --debug flag is deprecated.\n", env.ErrOut.(*bytes.Buffer).String())
}
