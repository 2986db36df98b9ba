// Package cmd defines commands for the Heat CLI.
package cmd

import (
	"github.com/openstack-go/heat-cli/api"
	configcmd "github.com/openstack-go/heat-cli/pkg/cmd/config"
	"github.com/openstack-go/heat-cli/pkg/cmd/software"
	versioncmd "github.com/openstack-go/heat-cli/pkg/cmd/version"
	"github.com/spf13/cobra"
)

const annotationUsageOptions string = "usage_options"

// NewHeatCommand creates the `heat` command with its `software`, `config`, and `version` subcommands.
func NewHeatCommand(ctx api.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:  "heat",
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		software.NewCommand(ctx),
		configcmd.NewCommand(ctx),
		versioncmd.NewCommand(ctx),
	)

	// This follows the CLI design guidelines for help formatting.
	cmd.SetUsageTemplate(`Usage:{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{else if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{.Name}}
      {{.Short}}{{end}}{{end}}{{end}}{{if or .HasAvailableLocalFlags (ne (index .Annotations "` + annotationUsageOptions + `") "")}}

Options:{{if ne (index .Annotations "` + annotationUsageOptions + `") ""}}{{index .Annotations "` + annotationUsageOptions + `"}}{{else}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`)

	cmd.Annotations = map[string]string{
		annotationUsageOptions: `
  --version
      Print version information
  -v, -vv
      Output verbosity (verbose or very verbose)
  -h, --help
      Show usage help`,
	}

	return cmd
}
