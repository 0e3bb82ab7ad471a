// Package config handles configuration management for pkgignore.
// Values are layered from embedded defaults, a project config file
// (.pkgignore.toml or .pkgignore.yaml), an optional explicit file and
// PKGIGNORE_* environment variables.
package config
