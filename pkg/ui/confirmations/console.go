// Package confirmations provides UI implementations of types.Confirmer.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/pkgignore/pkg/logging"
	"github.com/arthur-debert/pkgignore/pkg/types"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// ConsoleConfirmer reads a y/n answer line by line. It is used when stdin
// is not a terminal.
type ConsoleConfirmer struct {
	in      *bufio.Reader
	out     io.Writer
	Default bool
}

// NewConsoleConfirmer creates a console confirmer
func NewConsoleConfirmer(in io.Reader, out io.Writer, def bool) *ConsoleConfirmer {
	return &ConsoleConfirmer{in: bufio.NewReader(in), out: out, Default: def}
}

// Confirm writes the prompt and reads one line. An empty line or end of
// input selects the default.
func (c *ConsoleConfirmer) Confirm(prompt string) (bool, error) {
	hint := "[y/N]"
	if c.Default {
		hint = "[Y/n]"
	}
	if _, err := fmt.Fprintf(c.out, "%s %s: ", prompt, hint); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return c.Default, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// PtermConfirmer asks through pterm's interactive confirm
type PtermConfirmer struct {
	Default bool
}

// Confirm implements types.Confirmer
func (c *PtermConfirmer) Confirm(prompt string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(c.Default).
		Show(prompt)
}

// Static always gives the same answer
func Static(answer bool) types.Confirmer {
	return types.ConfirmFunc(func(prompt string) (bool, error) {
		logger := logging.GetLogger("confirmations")
		logger.Debug().
			Str("prompt", prompt).
			Bool("answer", answer).
			Msg("Answered without asking")
		return answer, nil
	})
}

// New picks the interactive confirmer when in is a terminal and the line
// reader otherwise
func New(in *os.File, out io.Writer, def bool) types.Confirmer {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return &PtermConfirmer{Default: def}
	}
	return NewConsoleConfirmer(in, out, def)
}
