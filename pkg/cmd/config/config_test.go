package config

import (
	"bytes"
	"testing"

	"github.com/openstack-go/heat-cli/pkg/mock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestConfigShowEnvVar(t *testing.T) {
	var out bytes.Buffer

	env := mock.NewEnvironment()
	env.Out = &out
	env.EnvLookup = func(key string) (string, bool) {
		switch key {
		case "HEAT_DIR":
			return "/heat", true
		case "HEAT_TIMEOUT":
			return "300", true
		}
		return "", false
	}

	ctx := mock.NewContext(env)
	cmd := newCmdConfigShow(ctx)
	cmd.SetArgs([]string{"core.timeout"})

	err := cmd.Execute()
	require.NoError(t, err)

	require.Equal(t, "300\n", out.String())
}

func TestConfigSetShowUnset(t *testing.T) {
	var out bytes.Buffer

	env := mock.NewEnvironment()
	env.Out = &out
	ctx := mock.NewContext(env)

	for _, args := range [][]string{
		{"core.heat_url", "https://heat.example.com:8004/v1/project"},
		{"core.auth_token", "s3cr3t"},
		{"core.timeout", "30"},
	} {
		cmd := newCmdConfigSet(ctx)
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
	}

	exists, err := afero.Exists(env.Fs, "/heat/heat.toml")
	require.NoError(t, err)
	require.True(t, exists)

	cmd := newCmdConfigShow(ctx)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	expectedOut := `core.auth_token ********
core.heat_url https://heat.example.com:8004/v1/project
core.timeout 30
`
	require.Equal(t, expectedOut, out.String())

	cmd = newCmdConfigUnset(ctx)
	cmd.SetArgs([]string{"core.auth_token"})
	require.NoError(t, cmd.Execute())

	conf, err := ctx.Config()
	require.NoError(t, err)
	require.Equal(t, "", conf.AuthToken())
	require.Equal(t, "https://heat.example.com:8004/v1/project", conf.URL())
}

func TestConfigShowUnknownKey(t *testing.T) {
	ctx := mock.NewContext(nil)
	cmd := newCmdConfigShow(ctx)
	cmd.SetArgs([]string{"core.unknown"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.EqualError(t, cmd.Execute(), `unknown key "core.unknown"`)
}

func TestConfigKeysQuiet(t *testing.T) {
	var out bytes.Buffer

	env := mock.NewEnvironment()
	env.Out = &out
	ctx := mock.NewContext(env)

	cmd := newCmdConfigKeys(ctx)
	cmd.SetArgs([]string{"-q"})
	require.NoError(t, cmd.Execute())

	expectedOut := `core.auth_token
core.heat_url
core.max_cell_width
core.ssl_verify
core.timeout
`
	require.Equal(t, expectedOut, out.String())
}

func TestConfigSetTokenInKeyring(t *testing.T) {
	env := mock.NewEnvironment()
	ctx := mock.NewContext(env)

	cmd := newCmdConfigSet(ctx)
	cmd.SetArgs([]string{"core.heat_url", "https://heat.example.com:8004/v1/project"})
	require.NoError(t, cmd.Execute())

	cmd = newCmdConfigSet(ctx)
	cmd.SetArgs([]string{"core.auth_token", "s3cr3t", "--keyring"})
	require.NoError(t, cmd.Execute())

	keyring := ctx.Keyring().(mock.Keyring)
	require.Equal(t, "s3cr3t", keyring["https://heat.example.com:8004/v1/project"])

	// The token is not written to the configuration file.
	conf, err := ctx.Config()
	require.NoError(t, err)
	require.Equal(t, "", conf.AuthToken())

	// It is sent to the orchestration API.
	client, err := ctx.HTTPClient(conf)
	require.NoError(t, err)
	req, err := client.NewRequest("GET", "/software_configs", nil)
	require.NoError(t, err)
	require.Equal(t, "s3cr3t", req.Header.Get("X-Auth-Token"))

	cmd = newCmdConfigUnset(ctx)
	cmd.SetArgs([]string{"core.auth_token", "--keyring"})
	require.NoError(t, cmd.Execute())
	require.Empty(t, keyring)
}

func TestConfigSetKeyringErrors(t *testing.T) {
	ctx := mock.NewContext(nil)

	cmd := newCmdConfigSet(ctx)
	cmd.SetArgs([]string{"core.auth_token", "s3cr3t", "--keyring"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	require.Equal(t, errNoKeyringURL, cmd.Execute())

	cmd = newCmdConfigSet(ctx)
	cmd.SetArgs([]string{"core.timeout", "30", "--keyring"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	require.Equal(t, errKeyringKey, cmd.Execute())
	require.Empty(t, ctx.Keyring().(mock.Keyring))
}
