package reconcile

import (
	"github.com/arthur-debert/pkgignore/pkg/patterns"
	"github.com/arthur-debert/pkgignore/pkg/types"
)

// Plan is the outcome of Reconcile before any confirmation
type Plan struct {
	// Status is no-file, already-perfect or needs-update
	Status types.Status

	// Original is the manifest as read; nil when it did not exist
	Original []byte

	// Content is the manifest as it should be written
	Content []byte

	// Additions are the appended patterns, in order
	Additions []patterns.Pattern
}

// Result is a finalized plan
type Result struct {
	Status types.Status

	// Content is the final manifest content. For canceled results it is
	// the original content.
	Content []byte

	Additions []string

	// Write is set when Content must be persisted
	Write bool
}

// NeedsConfirmation reports whether the caller must ask before resolving
func (p *Plan) NeedsConfirmation(force bool) bool {
	return p.Status == types.StatusNeedsUpdate && !force
}

// AdditionLines returns the raw text of the additions
func (p *Plan) AdditionLines() []string {
	return rawLines(p.Additions)
}

// Resolve finalizes the plan. approved only matters for needs-update plans:
// true yields saved, false yields canceled with the original content.
func (p *Plan) Resolve(approved bool) Result {
	switch p.Status {
	case types.StatusNoFile:
		return Result{Status: types.StatusNoFile, Content: p.Content, Additions: p.AdditionLines(), Write: true}
	case types.StatusNeedsUpdate:
		if !approved {
			return Result{Status: types.StatusCanceled, Content: p.Original}
		}
		return Result{Status: types.StatusSaved, Content: p.Content, Additions: p.AdditionLines(), Write: true}
	default:
		return Result{Status: p.Status, Content: p.Content}
	}
}
