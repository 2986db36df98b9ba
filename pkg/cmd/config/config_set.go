package config

import (
	"errors"
	"fmt"

	"github.com/openstack-go/heat-cli/api"
	"github.com/spf13/cobra"
)

const keyAuthToken = "core.auth_token"

var (
	errKeyringKey   = fmt.Errorf("only %s can be stored in the keyring", keyAuthToken)
	errNoKeyring    = errors.New("no keyring available")
	errNoKeyringURL = errors.New("core.heat_url must be set to store a token in the keyring")
)

// newCmdConfigSet creates the `heat config set` subcommand.
func newCmdConfigSet(ctx api.Context) *cobra.Command {
	var useKeyring bool
	cmd := &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Add or set a property in the configuration file",
		Args:  cobra.ExactArgs(2),
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
				return ctx.Keyring().SetToken(conf.URL(), args[1])
			}

			conf.Set(args[0], args[1])
			return manager.Save(conf)
		},
	}
	cmd.Flags().BoolVar(&useKeyring, "keyring", false, "Store "+keyAuthToken+" in the OS keyring instead of the configuration file")
	return cmd
}
