package genconfig

import (
	"github.com/arthur-debert/pkgignore/pkg/config"
	"github.com/arthur-debert/pkgignore/pkg/errors"
	"github.com/arthur-debert/pkgignore/pkg/filesystem"
	"github.com/arthur-debert/pkgignore/pkg/logging"
	"github.com/arthur-debert/pkgignore/pkg/manifest"
	"github.com/arthur-debert/pkgignore/pkg/types"
)

// ConfigFileName is the file written by gen-config --write
const ConfigFileName = ".pkgignore.toml"

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	Root       string
	Write      bool
	FileSystem types.FS
}

// GenConfigResult holds the rendered config and any file written
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
}

// GenConfig outputs or writes the default configuration
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content, err := config.GenerateConfigContent(config.Default())
	if err != nil {
		return nil, err
	}

	result := &GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	// If not writing, just return the content
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	targetPath := manifest.Path(opts.Root, ConfigFileName)
	if _, err := fsys.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	} else if !errors.IsNotExist(err) {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot check %s", targetPath).
			WithDetail("path", targetPath)
	}

	if err := fsys.WriteFile(targetPath, []byte(content), manifest.FileMode); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to write config to %s", targetPath).
			WithDetail("path", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
