package candidates

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/pkgignore/pkg/errors"
	"github.com/arthur-debert/pkgignore/pkg/patterns"
	"github.com/bmatcuk/doublestar/v4"
)

// ProbeKind selects the filesystem check behind a catalog entry
type ProbeKind string

const (
	// ProbeAlways includes the entry unconditionally
	ProbeAlways ProbeKind = "always"
	// ProbeFile requires a regular file (anything but a directory) at the root
	ProbeFile ProbeKind = "file"
	// ProbeDir requires a directory at the root
	ProbeDir ProbeKind = "dir"
	// ProbeGlob requires a direct child of the root whose name matches
	ProbeGlob ProbeKind = "glob"
)

// ParseProbeKind parses a probe kind name
func ParseProbeKind(s string) (ProbeKind, error) {
	switch k := ProbeKind(strings.ToLower(strings.TrimSpace(s))); k {
	case ProbeAlways, ProbeFile, ProbeDir, ProbeGlob:
		return k, nil
	default:
		return "", errors.Newf(errors.ErrConfigInvalid, "unknown probe kind %q", s).
			WithDetail("probe", s)
	}
}

// Entry is one row of the candidate catalog
type Entry struct {
	Probe   ProbeKind
	Pattern string
	// Dir appends a trailing separator to the emitted pattern
	Dir bool
}

// Emit returns the pattern the entry contributes when its probe passes
func (e Entry) Emit() patterns.Pattern {
	return patterns.New(strings.TrimRight(e.Pattern, "/"), e.Dir)
}

// Validate checks that the entry can be probed
func (e Entry) Validate() error {
	if _, err := ParseProbeKind(string(e.Probe)); err != nil {
		return err
	}
	name := strings.TrimRight(strings.TrimSpace(e.Pattern), "/")
	if name == "" {
		return errors.New(errors.ErrConfigInvalid, "catalog entry has an empty pattern")
	}
	if patterns.Classify(name) != patterns.KindPattern || strings.HasPrefix(name, "!") {
		return errors.Newf(errors.ErrConfigInvalid, "catalog pattern %q is not a plain pattern", e.Pattern)
	}
	if e.Probe == ProbeGlob && !doublestar.ValidatePattern(name) {
		return errors.Newf(errors.ErrConfigInvalid, "catalog glob %q is malformed", e.Pattern)
	}
	if e.Probe != ProbeGlob && strings.Contains(name, "/") {
		return errors.Newf(errors.ErrConfigInvalid, "catalog pattern %q must name a direct child of the root", e.Pattern)
	}
	return nil
}

// String renders the entry for logs and listings
func (e Entry) String() string {
	return fmt.Sprintf("%s:%s", e.Probe, e.Emit().Raw)
}

// DefaultCatalog returns the built-in catalog. The manifest itself always
// comes first. Casing variants are listed separately since a
// case-insensitive filesystem reports both.
func DefaultCatalog(manifestName string) []Entry {
	return []Entry{
		{Probe: ProbeAlways, Pattern: manifestName},

		{Probe: ProbeFile, Pattern: ".editorconfig"},
		{Probe: ProbeFile, Pattern: ".eslintrc"},
		{Probe: ProbeFile, Pattern: ".gitattributes"},
		{Probe: ProbeFile, Pattern: ".jscsrc"},
		{Probe: ProbeFile, Pattern: ".jshintrc"},
		{Probe: ProbeFile, Pattern: ".travis.yml"},
		{Probe: ProbeDir, Pattern: ".idea", Dir: true},
		{Probe: ProbeDir, Pattern: ".nyc_output", Dir: true},
		{Probe: ProbeDir, Pattern: ".vscode", Dir: true},

		{Probe: ProbeDir, Pattern: "benchmark", Dir: true},
		{Probe: ProbeDir, Pattern: "benchmarks", Dir: true},
		{Probe: ProbeDir, Pattern: "coverage", Dir: true},
		{Probe: ProbeDir, Pattern: "example", Dir: true},
		{Probe: ProbeDir, Pattern: "examples", Dir: true},

		{Probe: ProbeFile, Pattern: "Gruntfile.js"},
		{Probe: ProbeFile, Pattern: "gruntfile.js"},
		{Probe: ProbeFile, Pattern: "Gulpfile.js"},
		{Probe: ProbeFile, Pattern: "gulpfile.js"},

		{Probe: ProbeFile, Pattern: "HISTORY"},
		{Probe: ProbeFile, Pattern: "History"},
		{Probe: ProbeFile, Pattern: "HISTORY.md"},
		{Probe: ProbeFile, Pattern: "History.md"},

		{Probe: ProbeFile, Pattern: "Makefile"},

		{Probe: ProbeDir, Pattern: "test", Dir: true},
		{Probe: ProbeDir, Pattern: "tests", Dir: true},

		{Probe: ProbeGlob, Pattern: "*.tgz"},
	}
}
