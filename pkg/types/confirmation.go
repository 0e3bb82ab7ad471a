package types

import "fmt"

// ConfirmationRequest describes a pending manifest update shown to the user
type ConfirmationRequest struct {
	// Path is the manifest that would be written
	Path string

	// Additions are the patterns that would be appended, in order
	Additions []string

	// Default is the answer used when the user just presses enter
	Default bool
}

// Prompt renders the single-line question passed to a Confirmer
func (r ConfirmationRequest) Prompt() string {
	noun := "patterns"
	if len(r.Additions) == 1 {
		noun = "pattern"
	}
	return fmt.Sprintf("Add %d %s to %s?", len(r.Additions), noun, r.Path)
}
