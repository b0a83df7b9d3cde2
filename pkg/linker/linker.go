// Package linker drives the per-package linking run: it computes each
// top-level entry's destination (target root join, or a redirect target)
// and invokes the merge engine once per entry.
package linker

import (
	"errors"
	"path/filepath"

	"github.com/rs/zerolog"

	xerrors "github.com/arthur-debert/xdot/pkg/errors"
	"github.com/arthur-debert/xdot/pkg/logging"
	"github.com/arthur-debert/xdot/pkg/merge"
	"github.com/arthur-debert/xdot/pkg/output"
	"github.com/arthur-debert/xdot/pkg/packages"
	"github.com/arthur-debert/xdot/pkg/paths"
	"github.com/arthur-debert/xdot/pkg/redirect"
	"github.com/arthur-debert/xdot/pkg/types"
)

// Options configures a Linker.
type Options struct {
	FS       types.FS
	Paths    *paths.Paths
	Reporter *output.Reporter
	Resolver *redirect.Resolver
	Flags    types.Flags
	// GlobalIgnore patterns apply to every package's top-level entries.
	GlobalIgnore []string
}

// Linker processes packages one at a time, entries within a package one at
// a time. There is no concurrency and no persisted state: every run
// re-derives its actions from the current filesystem.
type Linker struct {
	fs           types.FS
	paths        *paths.Paths
	reporter     *output.Reporter
	resolver     *redirect.Resolver
	flags        types.Flags
	globalIgnore []string
	engine       *merge.Engine
	logger       zerolog.Logger
}

// New creates a Linker from options.
func New(opts Options) *Linker {
	return &Linker{
		fs:           opts.FS,
		paths:        opts.Paths,
		reporter:     opts.Reporter,
		resolver:     opts.Resolver,
		flags:        opts.Flags,
		globalIgnore: opts.GlobalIgnore,
		engine:       merge.New(opts.FS, opts.Reporter, opts.Flags),
		logger:       logging.GetLogger("linker"),
	}
}

// ProcessPackages runs every package in order. A failure halts that package
// and is reported; processing continues with the remaining packages and the
// joined errors are returned so the run exits non-zero when anything failed.
func (l *Linker) ProcessPackages(pkgs []types.Package) error {
	var errs []error
	for _, pkg := range pkgs {
		if err := l.ProcessPackage(pkg); err != nil {
			l.logger.Error().Err(err).Str("package", pkg.Name).Msg("Package failed")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ProcessPackage links (or unlinks) one package's top-level entries.
func (l *Linker) ProcessPackage(pkg types.Package) error {
	l.reporter.PackageHeader(l.flags.Unlink, pkg.Name, pkg.Path)

	cfg, err := packages.LoadConfig(l.fs, pkg.Path)
	if err != nil {
		return err
	}

	entries, err := l.fs.ReadDir(pkg.Path)
	if err != nil {
		return xerrors.Wrapf(err, xerrors.ErrPackageAccess,
			"unable to read package content for %s", pkg.Name).WithDetail("path", pkg.Path)
	}

	for _, entry := range entries {
		name := entry.Name()
		if cfg.Ignored(name, l.globalIgnore) {
			l.logger.Debug().Str("package", pkg.Name).Str("entry", name).Msg("Entry ignored")
			continue
		}

		source := filepath.Join(pkg.Path, name)

		if key, ok := redirect.MarkerKey(name); ok {
			// The marker entry itself is never linked; its children are
			// redistributed into the resolved directory.
			dir, err := l.resolver.Resolve(key)
			if err != nil {
				return err
			}
			if err := l.engine.MergeChildren(source, dir); err != nil {
				return err
			}
			continue
		}

		if err := l.engine.Merge(source, filepath.Join(l.paths.TargetRoot(), name)); err != nil {
			return err
		}
	}
	return nil
}
