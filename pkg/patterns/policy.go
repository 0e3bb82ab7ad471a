package patterns

import (
	"runtime"
	"strings"

	"golang.org/x/text/cases"
)

// Line endings
const (
	LF   = "\n"
	CRLF = "\r\n"
)

// Policy captures every platform difference in pattern equivalence and
// output formatting.
type Policy struct {
	// Name identifies the policy in logs and config
	Name string

	// FoldCase compares base tokens case-insensitively
	FoldCase bool

	// StrictDirs requires a directory candidate to be matched by an entry
	// that is itself marked as a directory. Without it a bare name covers
	// the directory form, since it also excludes a same-named file.
	StrictDirs bool

	// LineEnding joins lines when a manifest is written
	LineEnding string
}

// POSIX is the policy for case-sensitive, LF platforms
var POSIX = Policy{
	Name:       "posix",
	LineEnding: LF,
}

// Windows is the policy for case-insensitive, CRLF platforms.
// TODO: confirm with maintainers whether StrictDirs should stay on; it
// reproduces a separator comparison quirk rather than a documented rule.
var Windows = Policy{
	Name:       "windows",
	FoldCase:   true,
	StrictDirs: true,
	LineEnding: CRLF,
}

// ForOS returns the policy for a GOOS value
func ForOS(goos string) Policy {
	if goos == "windows" {
		return Windows
	}
	return POSIX
}

// Native returns the policy for the running platform
func Native() Policy {
	return ForOS(runtime.GOOS)
}

// ByName returns a named policy; "auto" and "" resolve to Native
func ByName(name string) (Policy, bool) {
	switch strings.ToLower(name) {
	case "", "auto":
		return Native(), true
	case "posix", "unix", "linux", "darwin":
		return POSIX, true
	case "windows":
		return Windows, true
	default:
		return Policy{}, false
	}
}

// WithLineEnding returns a copy of p using the given ending
func (p Policy) WithLineEnding(ending string) Policy {
	p.LineEnding = ending
	return p
}

// Key returns the equivalence key of a pattern
func (p Policy) Key(pat Pattern) string {
	if p.FoldCase {
		return cases.Fold().String(pat.Base)
	}
	return pat.Base
}

// Covers reports whether an existing pattern already satisfies a wanted one.
// Negation is ignored: a negated entry records a deliberate user decision
// about the same path.
func (p Policy) Covers(have, want Pattern) bool {
	if have.Base == "" || want.Base == "" {
		return false
	}
	if p.Key(have) != p.Key(want) {
		return false
	}
	if p.StrictDirs && want.Dir && !have.Dir {
		return false
	}
	return true
}

// Join joins lines with the policy line ending
func (p Policy) Join(lines []string) string {
	ending := p.LineEnding
	if ending == "" {
		ending = LF
	}
	return strings.Join(lines, ending)
}
