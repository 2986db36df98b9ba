package software

import (
	"github.com/openstack-go/heat-cli/api"
	"github.com/spf13/cobra"
)

// newCmdSoftwareConfigDelete creates the `heat software config delete` subcommand.
func newCmdSoftwareConfigDelete(ctx api.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete software configs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, _, err := newManager(ctx)
			if err != nil {
				return err
			}
			_, err = manager.Delete(args)
			return err
		},
	}
}
