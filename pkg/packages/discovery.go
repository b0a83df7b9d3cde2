// Package packages handles package discovery, selection, and per-package
// configuration under the package root.
package packages

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/xdot/pkg/errors"
	"github.com/arthur-debert/xdot/pkg/logging"
	"github.com/arthur-debert/xdot/pkg/types"
)

// IgnoreFileName marks a package directory as skipped during discovery.
const IgnoreFileName = ".xdotignore"

// Discover returns all packages under the package root: its immediate
// subdirectories, sorted by name, skipping hidden directories and any
// directory carrying a .xdotignore file.
func Discover(fsys types.FS, packageRoot string) ([]types.Package, error) {
	logger := logging.GetLogger("packages.discovery")

	info, err := fsys.Stat(packageRoot)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrNotFound, "package root does not exist").
			WithDetail("path", packageRoot)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrInvalidInput, "package root is not a directory").
			WithDetail("path", packageRoot)
	}

	entries, err := fsys.ReadDir(packageRoot)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrPackageAccess, "cannot read package root").
			WithDetail("path", packageRoot)
	}

	var pkgs []types.Package
	for _, entry := range entries {
		name := entry.Name()

		if !entry.IsDir() {
			continue
		}
		if strings.HasPrefix(name, ".") {
			logger.Trace().Str("name", name).Msg("Skipping hidden directory")
			continue
		}

		path := filepath.Join(packageRoot, name)
		if ShouldIgnorePackage(fsys, path) {
			logger.Info().Str("package", name).Msg("Package is skipped due to .xdotignore file")
			continue
		}

		pkgs = append(pkgs, types.Package{Name: name, Path: path})
		logger.Trace().Str("path", path).Msg("Found package")
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Name < pkgs[j].Name })

	logger.Debug().Int("count", len(pkgs)).Msg("Discovered packages")
	return pkgs, nil
}

// Select resolves explicit package names against the package root. Every
// name must exist as a package directory; unknown names fail with
// PACKAGE_NOT_FOUND before any filesystem mutation happens.
func Select(fsys types.FS, packageRoot string, names []string) ([]types.Package, error) {
	pkgs := make([]types.Package, 0, len(names))
	for _, name := range names {
		path := filepath.Join(packageRoot, name)
		info, err := fsys.Stat(path)
		if err != nil || !info.IsDir() {
			return nil, errors.Newf(errors.ErrPackageNotFound,
				"package %q not found in %s", name, packageRoot).
				WithDetail("package", name).WithDetail("path", path)
		}
		pkgs = append(pkgs, types.Package{Name: name, Path: path})
	}
	return pkgs, nil
}

// ShouldIgnorePackage reports whether a package directory carries the
// .xdotignore marker file.
func ShouldIgnorePackage(fsys types.FS, packagePath string) bool {
	_, err := fsys.Stat(filepath.Join(packagePath, IgnoreFileName))
	return err == nil
}
