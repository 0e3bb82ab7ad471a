// Package manifest reads and writes the ignore-pattern manifest file.
//
// A missing manifest is a valid state, not an error: Load returns nil
// content. Anything else that prevents reading is ErrManifestRead.
package manifest

import (
	"path/filepath"

	"github.com/arthur-debert/pkgignore/pkg/errors"
	"github.com/arthur-debert/pkgignore/pkg/logging"
	"github.com/arthur-debert/pkgignore/pkg/types"
)

// FileMode is the permission used for new manifests
const FileMode = 0644

// Store loads and saves manifests through a types.FS
type Store struct {
	fs types.FS
}

// NewStore creates a Store
func NewStore(fsys types.FS) *Store {
	return &Store{fs: fsys}
}

// Path returns the manifest path for a project root
func Path(root, filename string) string {
	return filepath.Join(root, filename)
}

// Load returns the manifest bytes, or nil when the file does not exist.
// An existing empty file yields a non-nil empty slice.
func (s *Store) Load(path string) ([]byte, error) {
	logger := logging.GetLogger("manifest")

	info, err := s.fs.Stat(path)
	if err != nil {
		if errors.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("Manifest not found")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "cannot stat %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrManifestRead, "%s is a directory", path).
			WithDetail("path", path)
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "cannot read %s", path).
			WithDetail("path", path)
	}
	if data == nil {
		data = []byte{}
	}

	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Manifest loaded")
	return data, nil
}

// Save writes content to path. No retries are attempted.
func (s *Store) Save(path string, content []byte) error {
	if err := s.fs.WriteFile(path, content, FileMode); err != nil {
		return errors.Wrapf(err, errors.ErrManifestWrite, "cannot write %s", path).
			WithDetail("path", path)
	}

	logger := logging.GetLogger("manifest")
	logger.Info().
		Str("path", path).
		Int("bytes", len(content)).
		Msg("Manifest written")
	return nil
}
