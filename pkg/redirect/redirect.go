// Package redirect resolves redirect markers on top-level package entries.
//
// An entry named "@XDG_CONFIG_HOME" is a redirect marker: its children are
// merged into the directory the key resolves to instead of the default
// target root. Resolution checks an explicit override map first (a snapshot
// of the process environment, injected so tests stay deterministic), then
// falls back to the four well-known base directories.
package redirect

import (
	"strings"

	"github.com/arthur-debert/xdot/pkg/errors"
	"github.com/arthur-debert/xdot/pkg/paths"
)

// MarkerPrefix marks a top-level package entry as redirected.
const MarkerPrefix = "@"

// Keys with built-in fallback directories when no override is present.
const (
	KeyDataHome   = "XDG_DATA_HOME"
	KeyStateHome  = "XDG_STATE_HOME"
	KeyCacheHome  = "XDG_CACHE_HOME"
	KeyConfigHome = "XDG_CONFIG_HOME"
)

// MarkerKey extracts the redirect key from an entry name. Returns the
// portion after the marker and true when the name carries one; the marker
// is stripped exactly once.
func MarkerKey(name string) (string, bool) {
	if strings.HasPrefix(name, MarkerPrefix) {
		return name[len(MarkerPrefix):], true
	}
	return "", false
}

// Resolver maps redirect keys to destination directories.
type Resolver struct {
	overrides map[string]string
	defaults  map[string]string
}

// NewResolver builds a Resolver from an override map and the run's paths.
// The defaults are computed once from the home directory and cached.
func NewResolver(overrides map[string]string, p *paths.Paths) *Resolver {
	return &Resolver{
		overrides: overrides,
		defaults: map[string]string{
			KeyDataHome:   p.DataHome(),
			KeyStateHome:  p.StateHome(),
			KeyCacheHome:  p.CacheHome(),
			KeyConfigHome: p.ConfigHome(),
		},
	}
}

// Resolve returns the destination directory for a redirect key. Overrides
// win over the well-known defaults; an unknown key fails with a
// REDIRECT_UNRESOLVED error naming it. Total, no side effects.
func (r *Resolver) Resolve(key string) (string, error) {
	if dir, ok := r.overrides[key]; ok && dir != "" {
		return dir, nil
	}
	if dir, ok := r.defaults[key]; ok {
		return dir, nil
	}
	return "", errors.Newf(errors.ErrRedirectUnresolved,
		"unable to resolve redirect key %q", key).WithDetail("key", key)
}

// EnvironOverrides converts an environment snapshot (as returned by
// os.Environ) into an override map.
func EnvironOverrides(environ []string) map[string]string {
	overrides := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			overrides[k] = v
		}
	}
	return overrides
}
