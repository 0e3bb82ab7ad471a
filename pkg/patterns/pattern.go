package patterns

import "strings"

const (
	negationMarker = "!"
	commentMarker  = "#"
	dirSeparator   = "/"
)

// Kind classifies a manifest line
type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindPattern
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	case KindPattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// Pattern is a single non-blank, non-comment manifest line
type Pattern struct {
	// Raw is the line exactly as written
	Raw string
	// Base is the pattern with negation and trailing separators removed
	Base string
	// Negated is set for a leading '!'
	Negated bool
	// Dir is set for a trailing '/'
	Dir bool
}

// Classify reports the kind of a manifest line
func Classify(line string) Kind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return KindBlank
	case strings.HasPrefix(trimmed, commentMarker):
		return KindComment
	default:
		return KindPattern
	}
}

// Parse parses a manifest line. ok is false for blank and comment lines.
func Parse(line string) (p Pattern, ok bool) {
	if Classify(line) != KindPattern {
		return Pattern{}, false
	}

	text := strings.TrimSpace(line)
	p.Raw = line

	if strings.HasPrefix(text, negationMarker) {
		p.Negated = true
		text = strings.TrimPrefix(text, negationMarker)
	}
	if strings.HasSuffix(text, dirSeparator) {
		p.Dir = true
		text = strings.TrimRight(text, dirSeparator)
	}
	p.Base = text
	return p, true
}

// MustParse is Parse for literals known to be patterns
func MustParse(line string) Pattern {
	p, ok := Parse(line)
	if !ok {
		panic("patterns: not a pattern line: " + line)
	}
	return p
}

// New builds a pattern from a base name, appending a separator for directories
func New(base string, dir bool) Pattern {
	raw := base
	if dir {
		raw += dirSeparator
	}
	return MustParse(raw)
}

// String returns the raw text
func (p Pattern) String() string {
	return p.Raw
}
