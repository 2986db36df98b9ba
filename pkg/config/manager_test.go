package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestCurrentWithoutFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	manager := NewManager(ManagerOpts{Fs: fs, Dir: "/home/user/.heat", EnvLookup: noEnv})

	conf, err := manager.Current()
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/home/user/.heat", "heat.toml"), conf.Path())
	require.Empty(t, conf.Keys())

	// Loading the config shouldn't create any file.
	exists, err := afero.Exists(fs, conf.Path())
	require.NoError(t, err)
	require.False(t, exists)
}

func TestSaveAndCurrent(t *testing.T) {
	fs := afero.NewMemMapFs()
	manager := NewManager(ManagerOpts{Fs: fs, Dir: "/home/user/.heat", EnvLookup: noEnv})

	conf := New(Opts{Fs: fs, EnvLookup: noEnv})
	conf.SetURL("https://heat.example.com/v1/project")
	require.NoError(t, manager.Save(conf))

	current, err := manager.Current()
	require.NoError(t, err)
	require.Equal(t, "https://heat.example.com/v1/project", current.URL())
}

func TestCurrentInvalidFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/heat/heat.toml", []byte("[core\nheat_url ="), 0600))

	manager := NewManager(ManagerOpts{Fs: fs, Dir: "/heat", EnvLookup: noEnv})
	_, err := manager.Current()
	require.Error(t, err)
}
