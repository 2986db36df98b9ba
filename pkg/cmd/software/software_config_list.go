package software

import (
	"github.com/openstack-go/heat-cli/api"
	"github.com/openstack-go/heat-cli/pkg/render"
	"github.com/openstack-go/heat-cli/pkg/softwareconfig"
	"github.com/spf13/cobra"
)

// newCmdSoftwareConfigList creates the `heat software config list` subcommand.
func newCmdSoftwareConfigList(ctx api.Context) *cobra.Command {
	var opts softwareconfig.ListOpts
	var format render.Format

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List software configs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, conf, err := newManager(ctx)
			if err != nil {
				return err
			}

			rows, err := manager.List(opts)
			if err != nil {
				return err
			}
			return render.WriteRows(ctx.Out(), format, rows, conf.MaxCellWidth())
		},
	}
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Number of configs to be returned")
	cmd.Flags().StringVar(&opts.Marker, "marker", "", "ID of the last item in the previous list")
	addFormatFlag(cmd.Flags(), &format, render.FormatTable, render.FormatJSON, render.FormatYAML)
	return cmd
}
