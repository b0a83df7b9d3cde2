// Package config loads xdot's user configuration with koanf: built-in
// defaults, then the config file, then XDOT_-prefixed environment
// variables, each layer overriding the previous one.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/xdot/pkg/errors"
	"github.com/arthur-debert/xdot/pkg/paths"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// XDOT_TARGET_ROOT overrides target_root.
const EnvPrefix = "XDOT_"

// Config holds the user-configurable settings for a run.
type Config struct {
	// PackageRoot is the directory containing all packages.
	PackageRoot string `koanf:"package_root"`
	// TargetRoot is the destination root for non-redirected entries.
	TargetRoot string `koanf:"target_root"`
	// Ignore lists glob patterns for top-level package entries that are
	// never linked, applied to every package.
	Ignore []string `koanf:"ignore"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"package_root": "~/" + paths.DefaultPackageDir,
		"target_root":  paths.DefaultTargetRoot,
		"ignore":       []string{".git"},
	}
}

// Load reads configuration from the given file path (missing file is fine)
// layered under XDOT_ environment overrides. An empty path uses the default
// location in the XDG config directory.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	if path == "" {
		path = paths.ConfigFilePath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load config from %s", path).WithDetail("path", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal config")
	}
	return &cfg, nil
}
