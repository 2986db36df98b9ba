package software

import (
	"github.com/openstack-go/heat-cli/api"
	"github.com/openstack-go/heat-cli/pkg/render"
	"github.com/openstack-go/heat-cli/pkg/softwareconfig"
	"github.com/spf13/cobra"
)

// newCmdSoftwareConfigCreate creates the `heat software config create` subcommand.
func newCmdSoftwareConfigCreate(ctx api.Context) *cobra.Command {
	var opts softwareconfig.CreateOpts
	var format render.Format

	cmd := &cobra.Command{
		Use:   "create <config-name>",
		Short: "Create a software config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, conf, err := newManager(ctx)
			if err != nil {
				return err
			}

			opts.Name = args[0]
			record, err := manager.Create(opts)
			if err != nil {
				return err
			}
			return render.WriteRecord(ctx.Out(), format, record, conf.MaxCellWidth())
		},
	}
	cmd.Flags().StringVar(&opts.ConfigRef, "config-file", "", "Path or URL to the config content, eg. a script")
	cmd.Flags().StringVar(&opts.DefinitionRef, "definition-file", "", "Path or URL to a YAML or JSON document defining inputs, outputs, and options")
	cmd.Flags().StringVar(&opts.Group, "group", softwareconfig.DefaultGroup, "Group name of the tool expected to apply the config")
	addFormatFlag(cmd.Flags(), &format, render.FormatTable, render.FormatJSON, render.FormatYAML)
	return cmd
}
