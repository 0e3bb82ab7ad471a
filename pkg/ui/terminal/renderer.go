// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/pkgignore/pkg/ui/display"
	"github.com/arthur-debert/pkgignore/pkg/ui/output/styles"
)

// Renderer provides rich terminal output using the style registry
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

func styled(style, text string) string {
	return styles.GetStyle(style).Render(text)
}

// RenderResult renders a command result with styling
func (r *Renderer) RenderResult(result interface{}) error {
	view, ok := display.FromResult(result)
	if !ok {
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
	for _, line := range display.Lines(view, styled) {
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error in the Error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styled("Error", "Error: ")+err.Error())
	return werr
}

// RenderMessage renders a message in the Info style
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styled("Info", msg))
	return err
}
