// Package testutil provides helpers for building package trees in
// temporary directories and asserting on the symlinks a run produced.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTree materializes a layout under root. Keys ending in "/" become
// directories; other keys become files holding the value as content.
// Parent directories are created as needed.
func CreateTree(t *testing.T, root string, layout map[string]string) {
	t.Helper()

	for rel, content := range layout {
		path := filepath.Join(root, rel)
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// AssertSymlinkTo asserts that link is a symlink resolving to target.
func AssertSymlinkTo(t *testing.T, link, target string) {
	t.Helper()

	info, err := os.Lstat(link)
	require.NoError(t, err, "expected symlink at %s", link)
	require.NotZero(t, info.Mode()&os.ModeSymlink, "%s is not a symlink", link)

	got, err := os.Readlink(link)
	require.NoError(t, err)
	require.Equal(t, target, got)
}

// AssertNotExist asserts that nothing exists at path (not even a dangling
// symlink).
func AssertNotExist(t *testing.T, path string) {
	t.Helper()

	_, err := os.Lstat(path)
	require.True(t, os.IsNotExist(err), "expected %s to not exist, got err=%v", path, err)
}

// AssertRegularFile asserts path is a regular file with the given content,
// untouched by any linking.
func AssertRegularFile(t *testing.T, path, content string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err)
	require.True(t, info.Mode().IsRegular(), "%s is not a regular file", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, content, string(data))
}

// SnapshotTree walks root and returns a map of relative path to a short
// descriptor ("dir", "file:<content>", or "link:<target>"), for comparing
// filesystem state before and after a run.
func SnapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()

	snapshot := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		switch {
		case info.Mode()&os.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			snapshot[rel] = "link:" + target
		case info.IsDir():
			snapshot[rel] = "dir"
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			snapshot[rel] = "file:" + string(data)
		}
		return nil
	})
	require.NoError(t, err)
	return snapshot
}
