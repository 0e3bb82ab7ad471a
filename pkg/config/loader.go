package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pkgignore/pkg/errors"
	"github.com/arthur-debert/pkgignore/pkg/logging"
	"github.com/arthur-debert/pkgignore/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nesting levels: PKGIGNORE_MANIFEST__FILENAME sets manifest.filename.
const EnvPrefix = "PKGIGNORE_"

// ProjectConfigFiles are looked up in the project root, first match wins
var ProjectConfigFiles = []string{".pkgignore.toml", ".pkgignore.yaml", ".pkgignore.yml"}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// Root is the project root searched for ProjectConfigFiles
	Root string
	// File is an explicit config file loaded after the project file
	File string
	// SkipEnv ignores PKGIGNORE_* variables
	SkipEnv bool
	// Overrides are dotted keys applied last, typically from command flags
	Overrides map[string]interface{}
	// FS reads the project and explicit config files. Nil reads from disk.
	FS types.FS
}

// Default returns the embedded defaults
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipEnv: true})
	if err != nil {
		// The embedded defaults are part of the binary
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load resolves the configuration for a project
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Project config if it exists
	if opts.Root != "" {
		for _, name := range ProjectConfigFiles {
			path := filepath.Join(opts.Root, name)
			if !opts.isFile(path) {
				continue
			}
			if err := opts.loadFile(k, path); err != nil {
				return nil, err
			}
			logger.Debug().Str("path", path).Msg("Loaded project config")
			break
		}
	}

	// 3. Explicit config file
	if opts.File != "" {
		if _, err := opts.stat(opts.File); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", opts.File).
				WithDetail("path", opts.File)
		}
		if err := opts.loadFile(k, opts.File); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", opts.File).Msg("Loaded config file")
	}

	// 4. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 6. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 7. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (o LoadOptions) stat(path string) (os.FileInfo, error) {
	if o.FS == nil {
		return os.Stat(path)
	}
	return o.FS.Stat(path)
}

func (o LoadOptions) isFile(path string) bool {
	info, err := o.stat(path)
	return err == nil && !info.IsDir()
}

// provider reads path from disk, or from FS when one is set
func (o LoadOptions) provider(path string) koanf.Provider {
	if o.FS == nil {
		return file.Provider(path)
	}
	return &fsProvider{fs: o.FS, path: path}
}

func (o LoadOptions) loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = toml.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}
	if err := k.Load(o.provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps PKGIGNORE_CONFIRM__FORCE to confirm.force
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}
