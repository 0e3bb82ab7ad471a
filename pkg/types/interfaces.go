package types

import (
	"io/fs"
)

// FS is the filesystem surface pkgignore needs. Production code uses the OS
// implementation; tests use an in-memory one.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

// Confirmer asks the user a yes/no question. It is invoked at most once per
// generation run, only when an update is pending and not forced.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a plain function to Confirmer
type ConfirmFunc func(prompt string) (bool, error)

// Confirm implements Confirmer
func (f ConfirmFunc) Confirm(prompt string) (bool, error) {
	return f(prompt)
}
