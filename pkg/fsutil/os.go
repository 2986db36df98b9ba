package fsutil

import (
	"github.com/natefinch/atomic"
	"github.com/spf13/afero"
)

// OsFs is an afero.OsFs whose renames are atomic, also on Windows
// where os.Rename fails when the destination already exists.
type OsFs struct {
	afero.OsFs
}

// NewOsFs creates a new Fs.
func NewOsFs() afero.Fs {
	return &OsFs{}
}

// Name returns the name of the filesystem.
func (OsFs) Name() string { return "AtomicOsFs" }

// Rename renames a file, replacing the destination atomically.
func (OsFs) Rename(oldName, newName string) error {
	return atomic.ReplaceFile(oldName, newName)
}
