//go:build unix

// Package identity determines whether two filesystem paths denote the same
// underlying object: same storage device and same inode. This is the single
// primitive the merge engine uses to recognize "the link I would create
// already exists and already points at the right source", which is what
// makes repeated runs idempotent.
package identity

import (
	"syscall"

	"github.com/arthur-debert/xdot/pkg/types"
)

// NodeID identifies a filesystem object regardless of the path used to
// reach it. Never persisted; used only transiently during comparison.
type NodeID struct {
	Dev uint64
	Ino uint64
}

// Lookup returns the NodeID for a path, following symlinks. The second
// return value is false when the path does not exist, cannot be read, or
// the filesystem implementation does not expose raw stat data (e.g. an
// in-memory test filesystem). Absence is a normal state here, not a fault.
func Lookup(fsys types.FS, path string) (NodeID, bool) {
	info, err := fsys.Stat(path)
	if err != nil {
		return NodeID{}, false
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return NodeID{}, false
	}
	return NodeID{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}, true
}

// SameObject reports whether a and b resolve to the same filesystem object.
// Returns false rather than an error when either path cannot be read.
func SameObject(fsys types.FS, a, b string) bool {
	idA, ok := Lookup(fsys, a)
	if !ok {
		return false
	}
	idB, ok := Lookup(fsys, b)
	if !ok {
		return false
	}
	return idA == idB
}
