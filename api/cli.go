package api

import (
	"io"

	"github.com/openstack-go/heat-cli/pkg/config"
	"github.com/openstack-go/heat-cli/pkg/heat"
	"github.com/openstack-go/heat-cli/pkg/httpclient"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Context contains abstractions for stdout/stderr, the filesystem, and the CLI environment in general.
// It also acts as a factory/helper for various objects across the project.
type Context interface {

	// Args returns the command-line arguments, starting with the program name.
	Args() []string

	// Input returns the reader for CLI input.
	Input() io.Reader

	// Out returns a writer for CLI output.
	Out() io.Writer

	// ErrOut returns a writer for CLI errors, logs, and informational messages.
	ErrOut() io.Writer

	// EnvLookup lookups environment variables.
	EnvLookup(key string) (string, bool)

	// Fs returns the filesystem.
	Fs() afero.Fs

	// Logger returns the CLI logger.
	Logger() *logrus.Logger

	// Deprecated notifies the user that a feature is deprecated.
	Deprecated(msg string) error

	// HeatDir returns the root directory for the Heat CLI.
	HeatDir() (string, error)

	// ConfigManager returns the ConfigManager for the context.
	ConfigManager() (*config.Manager, error)

	// Config returns the current configuration.
	Config() (*config.Config, error)

	// Keyring returns the keyring holding auth tokens, it can be nil.
	Keyring() config.Keyring

	// HTTPClient creates an httpclient.Client for the orchestration API described by a config.
	HTTPClient(conf *config.Config, opts ...httpclient.Option) (*httpclient.Client, error)

	// HeatClient creates an orchestration API client based on the current configuration.
	HeatClient() (*heat.Client, error)
}
