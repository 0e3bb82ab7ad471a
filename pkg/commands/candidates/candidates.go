// Package candidates lists the patterns the catalog detects in a project.
package candidates

import (
	"github.com/arthur-debert/pkgignore/pkg/candidates"
	"github.com/arthur-debert/pkgignore/pkg/config"
	"github.com/arthur-debert/pkgignore/pkg/errors"
	"github.com/arthur-debert/pkgignore/pkg/filesystem"
	"github.com/arthur-debert/pkgignore/pkg/logging"
	"github.com/arthur-debert/pkgignore/pkg/types"
)

// Options holds options for the candidates command
type Options struct {
	Root   string
	FS     types.FS
	Config *config.Config
}

// Result is the ordered candidate set
type Result struct {
	Root     string
	Patterns []string
}

// List collects the candidate set for a project root
func List(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.candidates")

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	info, err := fsys.Stat(opts.Root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRootNotFound, "project root %s not found", opts.Root).
			WithDetail("root", opts.Root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrRootNotFound, "project root %s is not a directory", opts.Root).
			WithDetail("root", opts.Root)
	}

	catalog, err := cfg.CandidateCatalog()
	if err != nil {
		return nil, err
	}

	found := candidates.NewCollector(fsys, catalog).Collect(opts.Root)
	result := &Result{Root: opts.Root, Patterns: make([]string, len(found))}
	for i, p := range found {
		result.Patterns[i] = p.Raw
	}

	logger.Info().Str("root", opts.Root).Int("count", len(found)).Msg("Candidates collected")
	return result, nil
}
