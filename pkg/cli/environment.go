package cli

import (
	"io"
	"os"

	"github.com/openstack-go/heat-cli/pkg/fsutil"
	"github.com/spf13/afero"
)

// Environment variables for the Heat CLI.
const (
	// EnvHeatDir can be used to specify a custom directory for the Heat CLI data, which defaults to "~/.heat".
	EnvHeatDir = "HEAT_DIR"

	// EnvVerbosity sets the verbosity level when no -v flag is passed ("1" for info, "2" for debug).
	EnvVerbosity = "HEAT_VERBOSITY"

	// EnvFailOnDeprecation makes the CLI fail instead of warning when a deprecated feature is used.
	EnvFailOnDeprecation = "HEAT_CLI_FAIL_ON_DEPRECATION"
)

// Environment represents the CLI environment. It contains writers for stdout/stderr,
// a function for environment variables lookup, as well as a filesystem abstraction.
type Environment struct {

	// Args are the command-line arguments, starting by the program name.
	Args []string

	// Input is the reader for CLI input.
	Input io.Reader

	// Out is the writer for CLI output.
	Out io.Writer

	// ErrOut is the writer for CLI errors, logs, and informational messages.
	ErrOut io.Writer

	// EnvLookup lookups environment variables.
	EnvLookup func(key string) (string, bool)

	// Fs is an abstraction for the filesystem.
	Fs afero.Fs
}

// NewOsEnvironment returns an environment backed by the os package.
func NewOsEnvironment() *Environment {
	return &Environment{
		Args:      os.Args,
		Input:     os.Stdin,
		Out:       os.Stdout,
		ErrOut:    os.Stderr,
		EnvLookup: os.LookupEnv,
		Fs:        fsutil.NewOsFs(),
	}
}
