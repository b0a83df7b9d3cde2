package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "~/.xdot", cfg.PackageRoot)
	assert.Equal(t, "/", cfg.TargetRoot)
	assert.Equal(t, []string{".git"}, cfg.Ignore)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"package_root = \"/srv/dotfiles\"\nignore = [\".git\", \"*.bak\"]\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/dotfiles", cfg.PackageRoot)
	assert.Equal(t, "/", cfg.TargetRoot, "unset keys keep their defaults")
	assert.Equal(t, []string{".git", "*.bak"}, cfg.Ignore)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("target_root = \"/from-file\"\n"), 0644))

	t.Setenv("XDOT_TARGET_ROOT", "/from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from-env", cfg.TargetRoot)
}

func TestLoadMalformedFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml at all ["), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
