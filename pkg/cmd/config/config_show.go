package config

import (
	"fmt"

	"github.com/openstack-go/heat-cli/api"
	"github.com/openstack-go/heat-cli/pkg/config"
	"github.com/spf13/cobra"
)

var maskedKeys = []string{
	keyAuthToken,
}

// newCmdConfigShow creates the `heat config show` subcommand.
func newCmdConfigShow(ctx api.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "show [<name>]",
		Short: "Print the configuration file, or a single property",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := ctx.Config()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				return configShow(ctx, conf, args[0])
			}
			configShowAll(ctx, conf)
			return nil
		},
	}
}

func configShowAll(ctx api.Context, conf *config.Config) {
	for _, key := range conf.Keys() {
		if val := conf.Get(key); val != nil {
			for _, maskedKey := range maskedKeys {
				if maskedKey == key {
					val = "********"
					break
				}
			}
			fmt.Fprintf(ctx.Out(), "%s %v\n", key, val)
		}
	}
}

func configShow(ctx api.Context, conf *config.Config, key string) error {
	if val := conf.Get(key); val != nil {
		fmt.Fprintf(ctx.Out(), "%v\n", val)
		return nil
	}
	return fmt.Errorf("unknown key \"%s\"", key)
}
