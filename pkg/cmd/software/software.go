// Package software defines the `heat software` commands.
package software

import (
	"strings"

	"github.com/openstack-go/heat-cli/api"
	"github.com/openstack-go/heat-cli/pkg/config"
	"github.com/openstack-go/heat-cli/pkg/fsutil"
	"github.com/openstack-go/heat-cli/pkg/render"
	"github.com/openstack-go/heat-cli/pkg/softwareconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewCommand creates the `heat software` subcommand.
func NewCommand(ctx api.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "software",
		Short: "Manage software configs",
	}
	cmd.AddCommand(
		newCmdSoftwareConfig(ctx),
	)
	return cmd
}

// newCmdSoftwareConfig creates the `heat software config` subcommand.
func newCmdSoftwareConfig(ctx api.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create, list, and delete software configs",
	}
	cmd.AddCommand(
		newCmdSoftwareConfigCreate(ctx),
		newCmdSoftwareConfigList(ctx),
		newCmdSoftwareConfigDelete(ctx),
	)
	return cmd
}

// newManager returns a software config manager for the configured orchestration API,
// along with the configuration it has been created from.
func newManager(ctx api.Context) (*softwareconfig.Manager, *config.Config, error) {
	conf, err := ctx.Config()
	if err != nil {
		return nil, nil, err
	}
	client, err := ctx.HeatClient()
	if err != nil {
		return nil, nil, err
	}
	// Definition and config files can be hosted anywhere, no token is sent when fetching them.
	fetcher := fsutil.NewFetcher(ctx.Fs(), nil)

	manager := softwareconfig.NewManager(softwareconfig.ManagerOpts{
		SoftwareConfigs: client.SoftwareConfigs,
		Stacks:          client.Stacks,
		Fetcher:         fetcher,
		Out:             ctx.Out(),
		Logger:          ctx.Logger(),
	})
	return manager, conf, nil
}

// formatValue is a pflag.Value restricted to a set of output formats.
type formatValue struct {
	format    *render.Format
	supported []render.Format
}

func (v *formatValue) String() string {
	return string(*v.format)
}

func (v *formatValue) Set(name string) error {
	format, err := render.ParseFormat(name, v.supported...)
	if err != nil {
		return err
	}
	*v.format = format
	return nil
}

func (v *formatValue) Type() string {
	return "format"
}

// addFormatFlag adds the -f/--format flag, the first format is the default one.
func addFormatFlag(flags *pflag.FlagSet, format *render.Format, supported ...render.Format) {
	*format = supported[0]
	names := make([]string, len(supported))
	for i, f := range supported {
		names[i] = string(f)
	}
	flags.VarP(&formatValue{format: format, supported: supported}, "format", "f", "Output format, one of "+strings.Join(names, ", "))
}
