// Package version defines the `heat version` command.
package version

import (
	"fmt"
	"time"

	"github.com/openstack-go/heat-cli/api"
	"github.com/openstack-go/heat-cli/pkg/cli/version"
	"github.com/openstack-go/heat-cli/pkg/heat"
	"github.com/openstack-go/heat-cli/pkg/httpclient"
	"github.com/spf13/cobra"
)

// NewCommand creates the `heat version` subcommand.
func NewCommand(ctx api.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI and orchestration API versions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			PrintVersion(ctx)
		},
	}
}

// PrintVersion prints CLI version information, along with the current
// version of the orchestration API when one is configured and reachable.
func PrintVersion(ctx api.Context) {
	fmt.Fprintln(ctx.Out(), "heatcli.version="+version.Version())

	apiVersion := "N/A"
	if conf, err := ctx.Config(); err == nil {
		if httpClient, err := ctx.HTTPClient(conf, httpclient.Timeout(3*time.Second)); err == nil {
			current, err := heat.NewClient(httpClient).CurrentVersion()
			switch {
			case err != nil:
				ctx.Logger().Info(err)
			case current.LessThan(heat.MinAPIVersion):
				ctx.Logger().Warnf("The orchestration API version %s is not supported, the minimum version is %s.", current, heat.MinAPIVersion)
				apiVersion = current.String()
			default:
				apiVersion = current.String()
			}
		}
	}
	fmt.Fprintln(ctx.Out(), "heat.api_version="+apiVersion)
}
