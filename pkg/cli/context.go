package cli

import (
	"crypto/tls"
	"errors"
	"io"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/openstack-go/heat-cli/pkg/config"
	"github.com/openstack-go/heat-cli/pkg/heat"
	"github.com/openstack-go/heat-cli/pkg/httpclient"
	"github.com/openstack-go/heat-cli/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ErrNoURL is returned when the orchestration API URL is not configured.
var ErrNoURL = errors.New("no orchestration API URL configured, please run `heat config set core.heat_url <url>` or export HEAT_URL")

// Context is the api.Context implementation backed by an Environment.
type Context struct {
	env    *Environment
	logger *logrus.Logger
	keyring config.Keyring
}

// NewContext creates a new context from a given environment.
func NewContext(env *Environment) *Context {
	logger := &logrus.Logger{
		Out:       env.ErrOut,
		Formatter: &log.Formatter{},
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.ErrorLevel,
	}
	return &Context{
		env:     env,
		logger:  logger,
		keyring: config.NewTokenStore(),
	}
}

// SetKeyring sets the keyring looked up when no auth token is configured.
func (ctx *Context) SetKeyring(keyring config.Keyring) {
	ctx.keyring = keyring
}

// Keyring returns the keyring holding auth tokens, it can be nil.
func (ctx *Context) Keyring() config.Keyring {
	return ctx.keyring
}

// Args returns the command-line arguments, starting with the program name.
func (ctx *Context) Args() []string {
	return ctx.env.Args
}

// Input returns the reader for CLI input.
func (ctx *Context) Input() io.Reader {
	return ctx.env.Input
}

// Out returns the writer for CLI output.
func (ctx *Context) Out() io.Writer {
	return ctx.env.Out
}

// ErrOut returns the writer for CLI errors, logs, and informational messages.
func (ctx *Context) ErrOut() io.Writer {
	return ctx.env.ErrOut
}

// EnvLookup lookups environment variables.
func (ctx *Context) EnvLookup(key string) (string, bool) {
	return ctx.env.EnvLookup(key)
}

// Fs returns the filesystem.
func (ctx *Context) Fs() afero.Fs {
	return ctx.env.Fs
}

// Logger returns the CLI logger.
func (ctx *Context) Logger() *logrus.Logger {
	return ctx.logger
}

// Deprecated notifies the user that a feature is deprecated.
func (ctx *Context) Deprecated(msg string) error {
	return NewDeprecationHelper(DeprecationHelperOpts{
		Output:    ctx.env.ErrOut,
		EnvLookup: ctx.env.EnvLookup,
	})(msg)
}

// HeatDir returns the root directory for the Heat CLI.
// It defaults to `~/.heat` and can be overridden by the `HEAT_DIR` env var.
func (ctx *Context) HeatDir() (string, error) {
	if heatDir, ok := ctx.env.EnvLookup(EnvHeatDir); ok {
		return filepath.Abs(heatDir)
	}
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".heat"), nil
}

// ConfigManager returns the ConfigManager for the context.
func (ctx *Context) ConfigManager() (*config.Manager, error) {
	heatDir, err := ctx.HeatDir()
	if err != nil {
		return nil, err
	}
	return config.NewManager(config.ManagerOpts{
		Fs:        ctx.env.Fs,
		EnvLookup: ctx.env.EnvLookup,
		Dir:       heatDir,
	}), nil
}

// Config returns the current configuration.
func (ctx *Context) Config() (*config.Config, error) {
	manager, err := ctx.ConfigManager()
	if err != nil {
		return nil, err
	}
	return manager.Current()
}

// HTTPClient creates an httpclient.Client for the orchestration API described by a config.
func (ctx *Context) HTTPClient(conf *config.Config, opts ...httpclient.Option) (*httpclient.Client, error) {
	if conf.URL() == "" {
		return nil, ErrNoURL
	}

	tlsConf, err := conf.TLS()
	if err != nil {
		return nil, err
	}

	token := conf.AuthToken()
	if token == "" && ctx.keyring != nil {
		token, err = ctx.keyring.Token(conf.URL())
		if err != nil {
			// The keyring is a convenience, requests may still be authorized by a proxy.
			ctx.logger.Infof("Couldn't look up token in the keyring: %s", err)
		}
	}

	baseOpts := []httpclient.Option{
		httpclient.TLS(&tls.Config{
			InsecureSkipVerify: tlsConf.Insecure,
			RootCAs:            tlsConf.RootCAs,
		}),
		httpclient.AuthToken(token),
		httpclient.Logger(ctx.logger),
	}
	if conf.Timeout() > 0 {
		baseOpts = append(baseOpts, httpclient.Timeout(conf.Timeout()))
	}
	return httpclient.New(conf.URL(), append(baseOpts, opts...)...), nil
}

// HeatClient creates an orchestration API client based on the current configuration.
func (ctx *Context) HeatClient() (*heat.Client, error) {
	conf, err := ctx.Config()
	if err != nil {
		return nil, err
	}
	httpClient, err := ctx.HTTPClient(conf)
	if err != nil {
		return nil, err
	}
	return heat.NewClient(httpClient), nil
}
