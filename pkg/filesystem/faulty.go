package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/pkgignore/pkg/types"
)

// Faulty wraps a types.FS and fails selected operations on selected paths.
// It exists so probe, read and write failures can be exercised without
// relying on OS permission quirks.
type Faulty struct {
	types.FS

	StatErrors  map[string]error
	ReadErrors  map[string]error
	WriteErrors map[string]error
}

// NewFaulty wraps base with no failures configured
func NewFaulty(base types.FS) *Faulty {
	return &Faulty{
		FS:          base,
		StatErrors:  map[string]error{},
		ReadErrors:  map[string]error{},
		WriteErrors: map[string]error{},
	}
}

func (f *Faulty) Stat(name string) (fs.FileInfo, error) {
	if err, ok := f.StatErrors[filepath.Clean(name)]; ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return f.FS.Stat(name)
}

func (f *Faulty) ReadFile(name string) ([]byte, error) {
	if err, ok := f.ReadErrors[filepath.Clean(name)]; ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return f.FS.ReadFile(name)
}

func (f *Faulty) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err, ok := f.WriteErrors[filepath.Clean(name)]; ok {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	return f.FS.WriteFile(name, data, perm)
}
