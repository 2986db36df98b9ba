package config

import (
	"github.com/openstack-go/heat-cli/api"
	"github.com/spf13/cobra"
)

// newCmdConfigUnset creates the `heat config unset` subcommand.
func newCmdConfigUnset(ctx api.Context) *cobra.Command {
	var useKeyring bool
	cmd := &cobra.Command{
		Use:   "unset <name>",
		Short: "Remove a property from the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := ctx.ConfigManager()
			if err != nil {
				return err
			}
			conf, err := manager.Current()
			if err != nil {
				return err
			}

			if useKeyring {
				if args[0] != keyAuthToken {
					return errKeyringKey
				}
				if ctx.Keyring() == nil {
					return errNoKeyring
				}
				if conf.URL() == "" {
					return errNoKeyringURL
				}
				return ctx.Keyring().DeleteToken(conf.URL())
			}

			conf.Unset(args[0])
			return manager.Save(conf)
		},
	}
	cmd.Flags().BoolVar(&useKeyring, "keyring", false, "Remove "+keyAuthToken+" from the OS keyring instead of the configuration file")
	return cmd
}
