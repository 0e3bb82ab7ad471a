package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/pkgignore/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command results are written
type Format int

const (
	// FormatAuto picks terminal or text from the output stream
	FormatAuto Format = iota
	// FormatTerminal writes styled output
	FormatTerminal
	// FormatText writes plain lines, one pattern per line for candidates
	FormatText
	// FormatJSON writes one JSON document per result
	FormatJSON
)

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "terminal",
	FormatText:     "text",
	FormatJSON:     "json",
}

var formatAliases = map[string]Format{
	"term":  FormatTerminal,
	"plain": FormatText,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// FormatNames lists the accepted --format values in display order
func FormatNames() []string {
	return []string{
		FormatAuto.String(),
		FormatTerminal.String(),
		FormatText.String(),
		FormatJSON.String(),
	}
}

// ParseFormat parses a --format value. Matching is case-insensitive and an
// empty value means auto.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FormatAuto, nil
	}
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("format", s).
		WithDetail("accepted", FormatNames())
}

// Environment is what format detection looks at. The zero value is not
// usable; start from SystemEnvironment.
type Environment struct {
	Getenv     func(key string) string
	IsTerminal func(fd uintptr) bool
	Profile    func() termenv.Profile
}

// SystemEnvironment reads the process environment and the real terminal
func SystemEnvironment() Environment {
	return Environment{
		Getenv: os.Getenv,
		IsTerminal: func(fd uintptr) bool {
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		Profile: termenv.ColorProfile,
	}
}

// Detect resolves FormatAuto for the stream with descriptor fd.
// NO_COLOR and TERM=dumb force text; CLICOLOR_FORCE forces styling even
// when the stream is piped.
func (e Environment) Detect(fd uintptr) Format {
	if e.Getenv("NO_COLOR") != "" || e.Getenv("TERM") == "dumb" {
		return FormatText
	}
	if force := e.Getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return FormatTerminal
	}
	if !e.IsTerminal(fd) {
		return FormatText
	}
	if e.Profile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// DetectFormat resolves FormatAuto for output using the system environment
func DetectFormat(output *os.File) Format {
	return SystemEnvironment().Detect(output.Fd())
}
