package version

import (
	"bytes"
	"testing"

	"github.com/openstack-go/heat-cli/pkg/mock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestVersionWithoutURL(t *testing.T) {
	var out bytes.Buffer
	env := mock.NewEnvironment()
	env.Out = &out

	PrintVersion(mock.NewContext(env))
	require.Equal(t, "heatcli.version=SNAPSHOT\nheat.api_version=N/A\n", out.String())
}

func TestVersionWithAPI(t *testing.T) {
	var out bytes.Buffer
	env := mock.NewEnvironment()
	env.Out = &out

	ts := mock.NewTestServer(&mock.Heat{Version: "v1.0"})
	defer ts.Close()

	ctx := mock.NewContext(env)
	ctx.SetHeatURL(ts.URL + mock.ProjectPath)

	cmd := NewCommand(ctx)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "heatcli.version=SNAPSHOT\nheat.api_version=1.0.0\n", out.String())
}

func TestVersionUnsupportedAPI(t *testing.T) {
	var out, errOut bytes.Buffer
	env := mock.NewEnvironment()
	env.Out = &out
	env.ErrOut = &errOut

	ts := mock.NewTestServer(&mock.Heat{Version: "v0.9"})
	defer ts.Close()

	ctx := mock.NewContext(env)
	ctx.Logger().SetLevel(logrus.WarnLevel)
	ctx.SetHeatURL(ts.URL + mock.ProjectPath)

	PrintVersion(ctx)
	require.Equal(t, "heatcli.version=SNAPSHOT\nheat.api_version=0.9.0\n", out.String())
	require.Equal(t, "WARNING: The orchestration API version 0.9.0 is not supported, the minimum version is 1.0.0.\n", errOut.String())
}
