package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileName is the name of the configuration file in the CLI directory.
const FileName = "heat.toml"

// ManagerOpts are functional options for a Manager.
type ManagerOpts struct {
	// Fs is an abstraction for the filesystem. All filesystem operations
	// for the manager should be done through it instead of the os package.
	Fs afero.Fs

	// EnvLookup is the function used to lookup environment variables.
	// When not set it defaults to os.LookupEnv.
	EnvLookup func(key string) (string, bool)

	// Dir is the root directory for the config manager.
	Dir string
}

// Manager is able to retrieve and save the CLI configuration.
type Manager struct {
	fs        afero.Fs
	envLookup func(key string) (string, bool)
	dir       string
}

// NewManager creates a new config manager.
func NewManager(opts ManagerOpts) *Manager {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	if opts.EnvLookup == nil {
		opts.EnvLookup = os.LookupEnv
	}

	return &Manager{
		fs:        opts.Fs,
		dir:       opts.Dir,
		envLookup: opts.EnvLookup,
	}
}

// Path returns the path to the configuration file.
func (m *Manager) Path() string {
	return filepath.Join(m.dir, FileName)
}

// Current loads the configuration file. When it doesn't exist yet,
// an empty config associated to the default path is returned.
func (m *Manager) Current() (*Config, error) {
	conf := New(Opts{
		EnvLookup: m.envLookup,
		Fs:        m.fs,
	})
	if err := conf.LoadPath(m.Path()); err != nil {
		return nil, err
	}
	return conf, nil
}

// Save persists a config in the CLI directory, creating the directory if needed.
func (m *Manager) Save(conf *Config) error {
	if err := m.fs.MkdirAll(m.dir, 0700); err != nil {
		return err
	}
	conf.SetPath(m.Path())
	return conf.Persist()
}
