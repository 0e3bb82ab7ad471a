// Package display converts command results into a renderer-neutral view.
package display

import (
	"strings"

	"github.com/arthur-debert/pkgignore/pkg/commands/candidates"
	"github.com/arthur-debert/pkgignore/pkg/commands/check"
	"github.com/arthur-debert/pkgignore/pkg/commands/gen"
	"github.com/arthur-debert/pkgignore/pkg/commands/genconfig"
	"github.com/arthur-debert/pkgignore/pkg/types"
	"github.com/arthur-debert/pkgignore/pkg/ui/output/styles"
)

// View is what every renderer draws
type View struct {
	Command string `json:"command"`
	Status  string `json:"status,omitempty"`
	Path    string `json:"path,omitempty"`

	// Items are additions, missing patterns or candidates, in order
	Items []string `json:"items,omitempty"`

	// Content is shown verbatim: dry-run manifests and generated config
	Content string `json:"content,omitempty"`

	Created bool `json:"created,omitempty"`
	Written bool `json:"written,omitempty"`
	DryRun  bool `json:"dryRun,omitempty"`
}

// FromResult builds a View from a command result
func FromResult(result interface{}) (*View, bool) {
	switch v := result.(type) {
	case *View:
		return v, true
	case *gen.Outcome:
		view := &View{
			Command: "gen",
			Status:  v.Status.String(),
			Path:    v.Path,
			Items:   v.Additions,
			Created: v.Created,
			Written: v.Written,
			DryRun:  v.DryRun,
		}
		if v.DryRun {
			view.Content = string(v.Content)
		}
		return view, true
	case *check.Report:
		return &View{
			Command: "check",
			Status:  v.Status.String(),
			Path:    v.Path,
			Items:   v.Missing,
		}, true
	case *candidates.Result:
		return &View{Command: "candidates", Path: v.Root, Items: v.Patterns}, true
	case *genconfig.GenConfigResult:
		view := &View{Command: "gen-config", Items: v.FilesWritten}
		if len(v.FilesWritten) == 0 {
			view.Content = v.ConfigContent
		}
		return view, true
	default:
		return nil, false
	}
}

// Styler decorates text with a named style
type Styler func(style, text string) string

// Plain is a Styler that leaves text untouched
func Plain(_ string, text string) string {
	return text
}

// Lines lays out a view as output lines
func Lines(v *View, style Styler) []string {
	var lines []string

	switch v.Command {
	case "candidates":
		for _, item := range v.Items {
			lines = append(lines, style("Pattern", item))
		}
		return lines
	case "gen-config":
		for _, path := range v.Items {
			lines = append(lines, style("Success", "Wrote ")+style("FilePath", path))
		}
		if v.Content != "" {
			lines = append(lines, strings.TrimRight(v.Content, "\n"))
		}
		return lines
	}

	if v.Status != "" {
		lines = append(lines, style(styles.ForStatus(types.Status(v.Status)), "OK: "+v.Status))
	}
	for _, item := range v.Items {
		lines = append(lines, style("Added", "+ "+item))
	}
	if v.DryRun && v.Content != "" {
		lines = append(lines, "", style("Muted", "# dry run: "+v.Path), v.Content)
	}
	return lines
}
