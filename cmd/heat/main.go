package main

import (
	"os"
	"strconv"

	"github.com/openstack-go/heat-cli/pkg/cli"
	"github.com/openstack-go/heat-cli/pkg/cmd"
	versioncmd "github.com/openstack-go/heat-cli/pkg/cmd/version"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(cli.NewOsEnvironment()); err != nil {
		os.Exit(1)
	}
}

// run launches the Heat CLI with a given environment.
func run(env *cli.Environment) error {
	globalFlags := &cli.GlobalFlags{}
	env.Args = append(env.Args[:1], globalFlags.Parse(env.Args[1:])...)

	if globalFlags.Verbosity == 0 {
		if envVerbosity, ok := env.EnvLookup(cli.EnvVerbosity); ok {
			globalFlags.Verbosity, _ = strconv.Atoi(envVerbosity)
		}
	}

	ctx := cli.NewContext(env)
	if globalFlags.Debug {
		if err := ctx.Deprecated("The --debug flag is deprecated. Please use the -vv flag."); err != nil {
			return err
		}
		globalFlags.Verbosity = 2
	}
	ctx.Logger().SetLevel(logrusLevel(globalFlags.Verbosity))

	if globalFlags.Version {
		versioncmd.PrintVersion(ctx)
		return nil
	}
	heatCmd := cmd.NewHeatCommand(ctx)
	heatCmd.SetArgs(env.Args[1:])
	heatCmd.SetOut(env.Out)
	heatCmd.SetErr(env.ErrOut)
	return heatCmd.Execute()
}

// logrusLevel returns the log level for the CLI based on the verbosity. The default verbosity is 0.
func logrusLevel(verbosity int) logrus.Level {
	switch {
	case verbosity > 1:
		// -vv sets the logger level to debug. This also happens for -vvv
		// and above, in such cases we set the logging level to its maximum.
		return logrus.DebugLevel
	case verbosity == 1:
		// -v sets the logger level to info.
		return logrus.InfoLevel
	default:
		// Without the verbose flag, default to error level.
		return logrus.ErrorLevel
	}
}
