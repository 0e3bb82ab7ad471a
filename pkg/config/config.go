package config

import (
	"strings"

	"github.com/arthur-debert/pkgignore/pkg/candidates"
	"github.com/arthur-debert/pkgignore/pkg/errors"
	"github.com/arthur-debert/pkgignore/pkg/patterns"
	"github.com/arthur-debert/pkgignore/pkg/reconcile"
)

// Config is the resolved pkgignore configuration
type Config struct {
	Platform   string        `koanf:"platform" toml:"platform"`
	LineEnding string        `koanf:"line_ending" toml:"line_ending"`
	Manifest   Manifest      `koanf:"manifest" toml:"manifest"`
	Confirm    Confirm       `koanf:"confirm" toml:"confirm"`
	Catalog    CatalogConfig `koanf:"catalog" toml:"catalog"`
}

// Manifest configures the manifest file
type Manifest struct {
	Filename   string `koanf:"filename" toml:"filename"`
	HeaderTool string `koanf:"header_tool" toml:"header_tool"`
	HeaderURL  string `koanf:"header_url" toml:"header_url"`
}

// Confirm configures the confirmation step
type Confirm struct {
	Force   bool `koanf:"force" toml:"force"`
	Default bool `koanf:"default" toml:"default"`
}

// CatalogConfig configures candidate collection
type CatalogConfig struct {
	Defaults bool           `koanf:"defaults" toml:"defaults"`
	Extra    []CatalogEntry `koanf:"extra" toml:"extra,omitempty"`
}

// CatalogEntry is a user-supplied catalog row
type CatalogEntry struct {
	Probe   string `koanf:"probe" toml:"probe"`
	Pattern string `koanf:"pattern" toml:"pattern"`
	Dir     bool   `koanf:"dir" toml:"dir"`
}

// Policy resolves the platform policy, applying the line ending override
func (c *Config) Policy() (patterns.Policy, error) {
	policy, ok := patterns.ByName(c.Platform)
	if !ok {
		return patterns.Policy{}, errors.Newf(errors.ErrConfigInvalid, "unknown platform %q", c.Platform).
			WithDetail("key", "platform")
	}

	switch strings.ToLower(c.LineEnding) {
	case "", "auto":
	case "lf":
		policy = policy.WithLineEnding(patterns.LF)
	case "crlf":
		policy = policy.WithLineEnding(patterns.CRLF)
	default:
		return patterns.Policy{}, errors.Newf(errors.ErrConfigInvalid, "unknown line ending %q", c.LineEnding).
			WithDetail("key", "line_ending")
	}
	return policy, nil
}

// Header returns the attribution comment for new manifests
func (c *Config) Header() string {
	if c.Manifest.HeaderTool == "" {
		return ""
	}
	return reconcile.AttributionHeader(c.Manifest.HeaderTool, c.Manifest.HeaderURL)
}

// CandidateCatalog builds the catalog: the manifest itself, the built-in
// rows when enabled, then the extra rows in configured order.
func (c *Config) CandidateCatalog() ([]candidates.Entry, error) {
	self := candidates.Entry{Probe: candidates.ProbeAlways, Pattern: c.Manifest.Filename}
	if err := self.Validate(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "manifest.filename %q cannot be listed in the manifest", c.Manifest.Filename).
			WithDetail("key", "manifest.filename")
	}

	var catalog []candidates.Entry
	if c.Catalog.Defaults {
		catalog = candidates.DefaultCatalog(c.Manifest.Filename)
	} else {
		catalog = []candidates.Entry{{Probe: candidates.ProbeAlways, Pattern: c.Manifest.Filename}}
	}

	for i, extra := range c.Catalog.Extra {
		kind, err := candidates.ParseProbeKind(extra.Probe)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "catalog.extra[%d]", i)
		}
		entry := candidates.Entry{Probe: kind, Pattern: extra.Pattern, Dir: extra.Dir}
		if err := entry.Validate(); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "catalog.extra[%d]", i)
		}
		catalog = append(catalog, entry)
	}
	return catalog, nil
}

// Validate checks the configuration for values that cannot be used
func (c *Config) Validate() error {
	name := strings.TrimSpace(c.Manifest.Filename)
	if name == "" {
		return errors.New(errors.ErrConfigInvalid, "manifest.filename is empty").
			WithDetail("key", "manifest.filename")
	}
	if name != c.Manifest.Filename || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.Newf(errors.ErrConfigInvalid, "manifest.filename %q must be a plain file name", c.Manifest.Filename).
			WithDetail("key", "manifest.filename")
	}
	if patterns.Classify(name) != patterns.KindPattern || strings.HasPrefix(name, "!") {
		return errors.Newf(errors.ErrConfigInvalid, "manifest.filename %q would be read back as a comment or negation", name).
			WithDetail("key", "manifest.filename")
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := c.CandidateCatalog(); err != nil {
		return err
	}
	return nil
}
