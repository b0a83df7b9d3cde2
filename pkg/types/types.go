// Package types defines the shared types used across xdot.
package types

import "io/fs"

// FS abstracts the filesystem operations xdot performs. The production
// implementation wraps the OS filesystem; tests may substitute an in-memory
// implementation for read-only concerns (discovery, config loading).
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(name string) (fs.FileInfo, error)
	// Lstat returns file info without following symlinks.
	Lstat(name string) (fs.FileInfo, error)
	// ReadDir lists the entries of a directory.
	ReadDir(name string) ([]fs.DirEntry, error)
	// ReadFile reads a whole file.
	ReadFile(name string) ([]byte, error)
	// Symlink creates newname as a symbolic link to oldname.
	Symlink(oldname, newname string) error
	// Readlink returns the target of a symbolic link.
	Readlink(name string) (string, error)
	// Remove removes a file or symlink.
	Remove(name string) error
	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string, perm fs.FileMode) error
}

// Package is a named subtree of configuration files linked as a unit.
type Package struct {
	// Name is the package's directory name under the package root.
	Name string
	// Path is the absolute path to the package directory.
	Path string
}

// Flags holds the execution flags for a run. Immutable once the run starts.
type Flags struct {
	// Verbosity gates diagnostic output; zero shows only actions taken.
	Verbosity int
	// Unlink inverts the mutation direction: remove matching links instead
	// of creating them.
	Unlink bool
	// DryRun suppresses all filesystem mutation, reporting only.
	DryRun bool
}
