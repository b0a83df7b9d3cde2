package packages

import (
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/xdot/pkg/errors"
	"github.com/arthur-debert/xdot/pkg/types"
)

// ConfigFileName is the optional per-package configuration file. It is
// never linked.
const ConfigFileName = ".xdot.toml"

// Config is the per-package configuration loaded from .xdot.toml.
type Config struct {
	// Ignore lists glob patterns for top-level entries that must not be
	// linked, in addition to the run's global patterns.
	Ignore []string `toml:"ignore"`
}

// LoadConfig reads a package's .xdot.toml if present. A missing file is not
// an error; a malformed one is.
func LoadConfig(fsys types.FS, packagePath string) (Config, error) {
	var cfg Config

	path := filepath.Join(packagePath, ConfigFileName)
	data, err := fsys.ReadFile(path)
	if err != nil {
		// Absence of the file is the common case.
		return cfg, nil
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad,
			"invalid package config %s", path).WithDetail("path", path)
	}
	return cfg, nil
}

// Ignored reports whether a top-level entry name is excluded from linking,
// either by the package's own patterns, the supplied global patterns, or
// because it is one of xdot's marker files.
func (c Config) Ignored(name string, global []string) bool {
	if name == ConfigFileName || name == IgnoreFileName {
		return true
	}
	for _, pattern := range c.Ignore {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	for _, pattern := range global {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
