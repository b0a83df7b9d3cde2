// Package paths provides centralized path handling for xdot: the user's
// home directory, the package root holding all packages, the target root
// links are mirrored into, and the well-known base directories redirect
// markers fall back to.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/xdot/pkg/errors"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

const (
	// DefaultPackageDir is the default package root directory name under home
	DefaultPackageDir = ".xdot"

	// DefaultTargetRoot is where non-redirected entries are mirrored to.
	// Packages replicate the absolute tree they want to populate.
	DefaultTargetRoot = "/"

	// XdotDirName is the directory name for xdot-specific files
	XdotDirName = "xdot"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"
)

// Paths provides centralized path management for a run. All values are
// resolved once in New and immutable afterward.
type Paths struct {
	home        string
	packageRoot string
	targetRoot  string

	// well-known base directories, relative to home, used as redirect
	// fallbacks
	dataHome   string
	stateHome  string
	cacheHome  string
	configHome string
}

// New creates a Paths instance. home must be the user's home directory;
// packageRoot and targetRoot may be empty to use the defaults
// (~/.xdot and / respectively).
func New(home, packageRoot, targetRoot string) (*Paths, error) {
	if home == "" {
		return nil, errors.New(errors.ErrNoHome, "home directory is not set")
	}

	p := &Paths{home: home}

	if packageRoot == "" {
		packageRoot = filepath.Join(home, DefaultPackageDir)
	}
	// Roots must be absolute: links are created with absolute targets.
	absPackageRoot, err := filepath.Abs(ExpandHome(packageRoot))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid package root")
	}
	p.packageRoot = absPackageRoot

	if targetRoot == "" {
		targetRoot = DefaultTargetRoot
	}
	absTargetRoot, err := filepath.Abs(ExpandHome(targetRoot))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid target root")
	}
	p.targetRoot = absTargetRoot

	p.dataHome = filepath.Join(home, ".local", "share")
	p.stateHome = filepath.Join(home, ".local", "state")
	p.cacheHome = filepath.Join(home, ".cache")
	p.configHome = filepath.Join(home, ".config")

	return p, nil
}

// Home returns the user's home directory
func (p *Paths) Home() string {
	return p.home
}

// PackageRoot returns the directory containing all packages
func (p *Paths) PackageRoot() string {
	return p.packageRoot
}

// PackagePath returns the path to a specific package
func (p *Paths) PackagePath(packageName string) string {
	return filepath.Join(p.packageRoot, packageName)
}

// TargetRoot returns the destination root for non-redirected entries
func (p *Paths) TargetRoot() string {
	return p.targetRoot
}

// DataHome returns the conventional data directory (~/.local/share)
func (p *Paths) DataHome() string {
	return p.dataHome
}

// StateHome returns the conventional state directory (~/.local/state)
func (p *Paths) StateHome() string {
	return p.stateHome
}

// CacheHome returns the conventional cache directory (~/.cache)
func (p *Paths) CacheHome() string {
	return p.cacheHome
}

// ConfigHome returns the conventional config directory (~/.config)
func (p *Paths) ConfigHome() string {
	return p.configHome
}

// ConfigFilePath returns the location of xdot's own configuration file,
// honoring the ambient XDG environment.
func ConfigFilePath() string {
	return filepath.Join(xdg.ConfigHome, XdotDirName, ConfigFileName)
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrap(err, errors.ErrNoHome, "failed to get home directory")
	}
	return homeDir, nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the current user's home)
	return path
}
