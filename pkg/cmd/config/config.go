// Package config defines the `heat config` commands.
package config

import (
	"github.com/openstack-go/heat-cli/api"
	"github.com/spf13/cobra"
)

// NewCommand creates the `heat config` subcommand.
func NewCommand(ctx api.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the Heat CLI configuration file",
	}
	cmd.AddCommand(
		newCmdConfigKeys(ctx),
		newCmdConfigSet(ctx),
		newCmdConfigShow(ctx),
		newCmdConfigUnset(ctx),
	)
	return cmd
}
