package config

import (
	_ "embed"
	"errors"

	"github.com/arthur-debert/pkgignore/pkg/types"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// fsProvider implements koanf provider for a file on a types.FS
type fsProvider struct {
	fs   types.FS
	path string
}

func (f *fsProvider) ReadBytes() ([]byte, error) { return f.fs.ReadFile(f.path) }
func (f *fsProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
