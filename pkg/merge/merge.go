// Package merge implements the recursive tree-merge linking algorithm.
//
// Given a source subtree and a destination, the engine decides per pair
// whether to create a symlink, skip an already-correct one, descend into a
// pre-existing destination directory and merge children individually, or
// fail on a conflicting file. Symlinks are only ever placed at leaves;
// directories are never replaced by links, which is what lets a package
// install into directories shared with unrelated content.
package merge

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/xdot/pkg/errors"
	"github.com/arthur-debert/xdot/pkg/identity"
	"github.com/arthur-debert/xdot/pkg/logging"
	"github.com/arthur-debert/xdot/pkg/output"
	"github.com/arthur-debert/xdot/pkg/types"
)

// Engine walks a source subtree against a destination subtree, performing
// link/unlink/skip/descend/conflict decisions. Execution is depth-first and
// fully sequential; the engine mutates only destination nodes, never source
// nodes, and keeps no state between runs.
type Engine struct {
	fs       types.FS
	reporter *output.Reporter
	flags    types.Flags
	logger   zerolog.Logger
}

// New creates an Engine. The FS must expose real node identity (the OS
// filesystem) for the idempotence check to work.
func New(fsys types.FS, reporter *output.Reporter, flags types.Flags) *Engine {
	return &Engine{
		fs:       fsys,
		reporter: reporter,
		flags:    flags,
		logger:   logging.GetLogger("merge"),
	}
}

// Merge links source to dest, or recursively merges into dest when it is a
// pre-existing directory. In unlink mode the mutation direction inverts:
// links verified to point at this exact source are removed instead.
//
// Exactly one of the following holds on return: a symlink exists at dest
// pointing at source; dest does not exist and the mutation was suppressed
// (unlink on nonexistent, or dry-run); or an error is returned and the
// enclosing package's processing stops.
func (e *Engine) Merge(source, dest string) error {
	destInfo, err := e.fs.Stat(dest)

	switch {
	case err == nil && identity.SameObject(e.fs, source, dest):
		// Destination is already a correct link to this exact source.
		// Always a leaf action: a correct link is never descended into.
		if e.flags.Unlink {
			e.reporter.LinkRemoved(dest)
			if !e.flags.DryRun {
				if err := e.fs.Remove(dest); err != nil {
					return errors.Wrapf(err, errors.ErrSymlinkRemove,
						"unable to remove symlink %s", dest).WithDetail("path", dest)
				}
			}
			return nil
		}
		e.reporter.SkipExisting(dest)
		e.logger.Debug().Str("path", dest).Msg("Link already correct")
		return nil

	case err == nil:
		// Destination exists but is not the same object as source.
		if !destInfo.IsDir() {
			return errors.Newf(errors.ErrConflict, "%s already exists", dest).
				WithDetail("path", dest)
		}
		// Merge point: recurse into the source's children so the
		// destination directory keeps whatever else it already holds.
		e.reporter.Descend(dest)
		return e.MergeChildren(source, dest)

	case os.IsNotExist(err):
		if e.flags.Unlink {
			e.reporter.NothingToRemove(dest)
			return nil
		}
		e.reporter.LinkCreated(dest, source)
		if !e.flags.DryRun {
			if err := e.fs.Symlink(source, dest); err != nil {
				return errors.Wrapf(err, errors.ErrSymlinkCreate,
					"unable to symlink %s => %s", dest, source).WithDetail("path", dest)
			}
		}
		return nil

	default:
		// Anything other than "does not exist" is a real fault.
		return errors.Wrapf(err, errors.ErrIO,
			"unable to read metadata for %s", dest).WithDetail("path", dest)
	}
}

// MergeChildren merges each child of the source directory into the
// correspondingly named child of dest. Used both for merge points and for
// redirected entries, whose children are redistributed into the resolved
// directory while the marker entry itself is never linked.
func (e *Engine) MergeChildren(source, dest string) error {
	entries, err := e.fs.ReadDir(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO,
			"unable to descend into %s", source).WithDetail("path", source)
	}

	for _, entry := range entries {
		name := entry.Name()
		if err := e.Merge(filepath.Join(source, name), filepath.Join(dest, name)); err != nil {
			return err
		}
	}
	return nil
}
