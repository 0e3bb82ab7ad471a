// Package check reports whether a manifest is complete without writing it.
package check

import (
	"github.com/arthur-debert/pkgignore/pkg/commands/gen"
	"github.com/arthur-debert/pkgignore/pkg/config"
	"github.com/arthur-debert/pkgignore/pkg/errors"
	"github.com/arthur-debert/pkgignore/pkg/logging"
	"github.com/arthur-debert/pkgignore/pkg/patterns"
	"github.com/arthur-debert/pkgignore/pkg/types"
)

// Options holds options for the check command
type Options struct {
	Root   string
	FS     types.FS
	Config *config.Config
	Policy *patterns.Policy
}

// Report is the check verdict
type Report struct {
	Status types.Status
	Path   string

	// Missing are the patterns a gen run would add
	Missing []string
}

// OK reports whether the manifest exists and covers every candidate
func (r *Report) OK() bool {
	return r.Status == types.StatusAlreadyPerfect
}

// Check reconciles the manifest and returns the report. When the manifest
// is missing or incomplete the report is returned together with an
// ErrCheckFailed error.
func Check(opts Options) (*Report, error) {
	logger := logging.GetLogger("commands.check")

	prep, err := gen.Prepare(gen.Options{
		Root:   opts.Root,
		FS:     opts.FS,
		Config: opts.Config,
		Policy: opts.Policy,
	})
	if err != nil {
		return nil, err
	}

	report := &Report{
		Status:  prep.Plan.Status,
		Path:    prep.Path,
		Missing: prep.Plan.AdditionLines(),
	}

	logger.Info().
		Str("path", report.Path).
		Str("status", report.Status.String()).
		Int("missing", len(report.Missing)).
		Msg("Check completed")

	if !report.OK() {
		return report, errors.Newf(errors.ErrCheckFailed, "%s: %s", report.Path, report.Status).
			WithDetail("status", report.Status.String()).
			WithDetail("missing", report.Missing)
	}
	return report, nil
}
