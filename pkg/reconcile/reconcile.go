package reconcile

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/pkgignore/pkg/errors"
	"github.com/arthur-debert/pkgignore/pkg/logging"
	"github.com/arthur-debert/pkgignore/pkg/patterns"
	"github.com/arthur-debert/pkgignore/pkg/types"
)

const bom = "\ufeff"

// AttributionHeader returns the comment written at the top of a new manifest
func AttributionHeader(tool, url string) string {
	if url == "" {
		return fmt.Sprintf("# Generated by %s", tool)
	}
	return fmt.Sprintf("# Generated by %s (%s)", tool, url)
}

// Reconciler computes manifest updates under a platform policy
type Reconciler struct {
	Policy patterns.Policy

	// Header is the attribution line for new manifests; empty disables it
	Header string
}

// New creates a Reconciler
func New(policy patterns.Policy, header string) *Reconciler {
	return &Reconciler{Policy: policy, Header: header}
}

// Reconcile computes the plan for bringing existing up to date with
// candidates. A nil existing slice means the manifest does not exist.
func (r *Reconciler) Reconcile(existing []byte, candidates []patterns.Pattern) (*Plan, error) {
	logger := logging.GetLogger("reconcile")
	logger.Debug().
		Bool("exists", existing != nil).
		Int("candidates", len(candidates)).
		Str("policy", r.Policy.Name).
		Msg("Reconciling manifest")

	if existing == nil {
		additions := collectAdditions(patterns.NewIndex(r.Policy), candidates)
		lines := make([]string, 0, len(additions)+2)
		if r.Header != "" {
			lines = append(lines, r.Header, "")
		}
		lines = append(lines, rawLines(additions)...)

		return &Plan{
			Status:    types.StatusNoFile,
			Content:   []byte(r.Policy.Join(lines)),
			Additions: additions,
		}, nil
	}

	if !utf8.Valid(existing) {
		return nil, errors.New(errors.ErrManifestRead, "manifest is not valid UTF-8")
	}

	lines := splitLines(string(existing))
	index := patterns.NewIndex(r.Policy)
	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, bom)
		}
		if p, ok := patterns.Parse(line); ok {
			index.Add(p)
		}
	}

	additions := collectAdditions(index, candidates)
	plan := &Plan{
		Original:  existing,
		Additions: additions,
	}

	if len(additions) == 0 {
		logger.Debug().Int("patterns", index.Len()).Msg("Manifest already covers all candidates")
		plan.Status = types.StatusAlreadyPerfect
		plan.Content = existing
		return plan, nil
	}

	out := make([]string, 0, len(lines)+len(additions)+1)
	out = append(out, lines...)
	if len(lines) > 0 && patterns.Classify(lines[len(lines)-1]) != patterns.KindBlank {
		out = append(out, "")
	}
	out = append(out, rawLines(additions)...)

	logger.Debug().
		Strs("additions", rawLines(additions)).
		Msg("Manifest needs update")

	plan.Status = types.StatusNeedsUpdate
	plan.Content = []byte(r.Policy.Join(out))
	return plan, nil
}

// collectAdditions returns the candidates not covered by index, in order.
// Candidates are compared with each other by exact base token only, so
// casing variants reported by a case-insensitive filesystem are all kept.
func collectAdditions(index *patterns.Index, candidates []patterns.Pattern) []patterns.Pattern {
	var additions []patterns.Pattern
	queued := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c.Base == "" || queued[c.Base] || index.Covered(c) {
			continue
		}
		additions = append(additions, c)
		queued[c.Base] = true
	}
	return additions
}

// splitLines splits content on LF and drops one trailing CR per line.
// The newline ending the last line does not start another line: empty
// content has no lines, "a\n" has one and "\n" is a single blank line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func rawLines(ps []patterns.Pattern) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Raw
	}
	return out
}
