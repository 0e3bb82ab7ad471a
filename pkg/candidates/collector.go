package candidates

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pkgignore/pkg/errors"
	"github.com/arthur-debert/pkgignore/pkg/logging"
	"github.com/arthur-debert/pkgignore/pkg/patterns"
	"github.com/arthur-debert/pkgignore/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
)

// Collector evaluates a catalog against a project root
type Collector struct {
	fs      types.FS
	catalog []Entry
	logger  zerolog.Logger
}

// NewCollector creates a collector over fs with the given catalog
func NewCollector(fsys types.FS, catalog []Entry) *Collector {
	return &Collector{
		fs:      fsys,
		catalog: catalog,
		logger:  logging.GetLogger("candidates"),
	}
}

// Collect returns the patterns of every entry whose probe passes, in catalog
// order, without duplicates. Probe failures drop the entry and are logged.
func (c *Collector) Collect(root string) []patterns.Pattern {
	done := logging.LogOperationStart(c.logger, "collect")
	defer done()

	p := &probe{collector: c, root: root}
	seen := make(map[string]bool, len(c.catalog))
	var out []patterns.Pattern

	for _, entry := range c.catalog {
		if !p.passes(entry) {
			continue
		}
		pat := entry.Emit()
		if seen[pat.Raw] {
			continue
		}
		seen[pat.Raw] = true
		out = append(out, pat)
	}

	c.logger.Debug().
		Str("root", root).
		Int("candidates", len(out)).
		Msg("Collected candidates")
	return out
}

// probe holds per-call state so the root listing is read at most once
type probe struct {
	collector *Collector
	root      string

	listed  bool
	entries []fs.DirEntry
}

func (p *probe) passes(entry Entry) bool {
	name := strings.TrimRight(entry.Pattern, "/")

	switch entry.Probe {
	case ProbeAlways:
		return true
	case ProbeFile:
		info, ok := p.stat(name)
		return ok && !info.IsDir()
	case ProbeDir:
		info, ok := p.stat(name)
		return ok && info.IsDir()
	case ProbeGlob:
		return p.glob(name, entry.Dir)
	default:
		p.collector.logger.Warn().
			Str("probe", string(entry.Probe)).
			Str("pattern", entry.Pattern).
			Msg("Skipping catalog entry with unknown probe")
		return false
	}
}

func (p *probe) stat(name string) (fs.FileInfo, bool) {
	path := filepath.Join(p.root, name)
	info, err := p.collector.fs.Stat(path)
	if err != nil {
		p.failed(err, path)
		return nil, false
	}
	return info, true
}

func (p *probe) glob(pattern string, dirOnly bool) bool {
	if !p.listed {
		p.listed = true
		entries, err := p.collector.fs.ReadDir(p.root)
		if err != nil {
			p.failed(err, p.root)
		}
		p.entries = entries
	}

	for _, e := range p.entries {
		if dirOnly && !e.IsDir() {
			continue
		}
		if ok, err := doublestar.Match(pattern, e.Name()); err == nil && ok {
			return true
		}
	}
	return false
}

// failed logs probe errors other than absence
func (p *probe) failed(err error, path string) {
	if errors.IsNotExist(err) {
		return
	}
	p.collector.logger.Warn().
		Err(errors.Wrap(err, errors.ErrProbe, "probe failed")).
		Str("path", path).
		Msg("Treating entry as not present")
}
