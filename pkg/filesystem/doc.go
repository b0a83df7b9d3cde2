// Package filesystem provides filesystem implementations for xdot.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem used in production, and an afero-backed
// implementation used by tests for read-only concerns such as package
// discovery. Node identity (device/inode) is only meaningful on the OS
// implementation; the merge engine must always run against it.
package filesystem
