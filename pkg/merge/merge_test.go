package merge

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/xdot/pkg/errors"
	"github.com/arthur-debert/xdot/pkg/filesystem"
	"github.com/arthur-debert/xdot/pkg/output"
	"github.com/arthur-debert/xdot/pkg/testutil"
	"github.com/arthur-debert/xdot/pkg/types"
)

// newEngine builds an engine over the real filesystem, capturing the
// console report in the returned buffer.
func newEngine(flags types.Flags) (*Engine, *bytes.Buffer) {
	var buf bytes.Buffer
	reporter := output.NewReporter(&buf, flags.Verbosity, flags.DryRun)
	return New(filesystem.NewOS(), reporter, flags), &buf
}

func TestMergeCreatesLink(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateTree(t, tmp, map[string]string{
		"src/app/config": "content",
		"dest/":          "",
	})

	source := filepath.Join(tmp, "src", "app")
	dest := filepath.Join(tmp, "dest", "app")

	engine, buf := newEngine(types.Flags{})
	require.NoError(t, engine.Merge(source, dest))

	testutil.AssertSymlinkTo(t, dest, source)
	assert.Contains(t, buf.String(), dest+" => "+source)
}

func TestMergeIsIdempotent(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateTree(t, tmp, map[string]string{
		"src/app/config":     "content",
		"src/app/sub/nested": "more",
		"dest/":              "",
	})

	source := filepath.Join(tmp, "src", "app")
	dest := filepath.Join(tmp, "dest", "app")

	engine, _ := newEngine(types.Flags{})
	require.NoError(t, engine.Merge(source, dest))
	after := testutil.SnapshotTree(t, filepath.Join(tmp, "dest"))

	// Second run: identical state, zero mutations reported.
	engine2, buf := newEngine(types.Flags{})
	require.NoError(t, engine2.Merge(source, dest))

	assert.Equal(t, after, testutil.SnapshotTree(t, filepath.Join(tmp, "dest")))
	assert.Empty(t, buf.String(), "second run must perform no actions")
}

func TestMergeSkipReportedAtVerbosity(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateTree(t, tmp, map[string]string{
		"src/app/config": "content",
		"dest/":          "",
	})

	source := filepath.Join(tmp, "src", "app")
	dest := filepath.Join(tmp, "dest", "app")

	engine, _ := newEngine(types.Flags{})
	require.NoError(t, engine.Merge(source, dest))

	engine2, buf := newEngine(types.Flags{Verbosity: 1})
	require.NoError(t, engine2.Merge(source, dest))
	assert.Contains(t, buf.String(), "Skipping existing link: "+dest)
}

func TestMergeUnlinkRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateTree(t, tmp, map[string]string{
		"src/app/config":     "content",
		"src/app/sub/nested": "more",
		"dest/":              "",
	})

	source := filepath.Join(tmp, "src", "app")
	dest := filepath.Join(tmp, "dest", "app")
	before := testutil.SnapshotTree(t, filepath.Join(tmp, "dest"))

	engine, _ := newEngine(types.Flags{})
	require.NoError(t, engine.Merge(source, dest))
	testutil.AssertSymlinkTo(t, dest, source)

	unlinker, buf := newEngine(types.Flags{Unlink: true})
	require.NoError(t, unlinker.Merge(source, dest))

	assert.Equal(t, before, testutil.SnapshotTree(t, filepath.Join(tmp, "dest")))
	assert.Contains(t, buf.String(), "Removing symlink: "+dest)
}

func TestMergeDryRunDoesNotMutate(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateTree(t, tmp, map[string]string{
		"src/app/config": "content",
		"dest/":          "",
	})

	source := filepath.Join(tmp, "src", "app")
	dest := filepath.Join(tmp, "dest", "app")
	before := testutil.SnapshotTree(t, filepath.Join(tmp, "dest"))

	engine, buf := newEngine(types.Flags{DryRun: true})
	require.NoError(t, engine.Merge(source, dest))

	assert.Equal(t, before, testutil.SnapshotTree(t, filepath.Join(tmp, "dest")))
	assert.Contains(t, buf.String(), "(dry-run) "+dest+" => "+source)
}

func TestMergeDryRunReportsSameActions(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateTree(t, tmp, map[string]string{
		"src/app/a":     "1",
		"src/app/d/b":   "2",
		"dest/app/d/":   "",
		"dest/app/keep": "untouched",
	})

	source := filepath.Join(tmp, "src", "app")
	dest := filepath.Join(tmp, "dest", "app")

	dry, dryBuf := newEngine(types.Flags{DryRun: true})
	require.NoError(t, dry.Merge(source, dest))

	executed, realBuf := newEngine(types.Flags{})
	require.NoError(t, executed.Merge(source, dest))

	var dryLines []string
	for _, line := range strings.Split(strings.TrimSpace(dryBuf.String()), "\n") {
		dryLines = append(dryLines, strings.TrimPrefix(line, "(dry-run) "))
	}
	assert.Equal(t, strings.Split(strings.TrimSpace(realBuf.String()), "\n"), dryLines)
}

func TestMergeConflictOnRegularFile(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateTree(t, tmp, map[string]string{
		"src/app/config": "new",
		"dest/app":       "existing",
	})

	source := filepath.Join(tmp, "src", "app")
	dest := filepath.Join(tmp, "dest", "app")

	engine, _ := newEngine(types.Flags{})
	err := engine.Merge(source, dest)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConflict))
	assert.Contains(t, err.Error(), dest)

	// The conflicting file is untouched.
	testutil.AssertRegularFile(t, dest, "existing")
}

func TestMergeNestedConflictMutatesNothingBelow(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateTree(t, tmp, map[string]string{
		"src/app/conf/file": "new",
		"dest/app/conf":     "existing",
	})

	source := filepath.Join(tmp, "src", "app")
	dest := filepath.Join(tmp, "dest", "app")

	engine, _ := newEngine(types.Flags{})
	err := engine.Merge(source, dest)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConflict))

	testutil.AssertRegularFile(t, filepath.Join(dest, "conf"), "existing")
}

func TestMergeIntoExistingDirectory(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateTree(t, tmp, map[string]string{
		"src/app/y":  "linked",
		"dest/app/x": "unrelated",
	})

	source := filepath.Join(tmp, "src", "app")
	dest := filepath.Join(tmp, "dest", "app")

	engine, buf := newEngine(types.Flags{Verbosity: 1})
	require.NoError(t, engine.Merge(source, dest))

	testutil.AssertSymlinkTo(t, filepath.Join(dest, "y"), filepath.Join(source, "y"))
	testutil.AssertRegularFile(t, filepath.Join(dest, "x"), "unrelated")
	assert.Contains(t, buf.String(), "Descending into existing directory: "+dest)
}

func TestUnlinkNonexistentDestination(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateTree(t, tmp, map[string]string{
		"src/app/config": "content",
		"dest/":          "",
	})

	source := filepath.Join(tmp, "src", "app")
	dest := filepath.Join(tmp, "dest", "app")

	engine, buf := newEngine(types.Flags{Unlink: true, Verbosity: 1})
	require.NoError(t, engine.Merge(source, dest))

	testutil.AssertNotExist(t, dest)
	assert.Contains(t, buf.String(), "Nothing to remove: "+dest)
}

func TestUnlinkDryRunKeepsLink(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateTree(t, tmp, map[string]string{
		"src/app/config": "content",
		"dest/":          "",
	})

	source := filepath.Join(tmp, "src", "app")
	dest := filepath.Join(tmp, "dest", "app")

	engine, _ := newEngine(types.Flags{})
	require.NoError(t, engine.Merge(source, dest))

	unlinker, buf := newEngine(types.Flags{Unlink: true, DryRun: true})
	require.NoError(t, unlinker.Merge(source, dest))

	testutil.AssertSymlinkTo(t, dest, source)
	assert.Contains(t, buf.String(), "(dry-run) Removing symlink: "+dest)
}

func TestMergeChildrenMissingSource(t *testing.T) {
	tmp := t.TempDir()

	engine, _ := newEngine(types.Flags{})
	err := engine.MergeChildren(filepath.Join(tmp, "missing"), filepath.Join(tmp, "dest"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}

func TestMergeCorrectLinkIsNeverDescended(t *testing.T) {
	tmp := t.TempDir()
	testutil.CreateTree(t, tmp, map[string]string{
		"src/app/sub/file": "content",
		"dest/":            "",
	})

	source := filepath.Join(tmp, "src", "app")
	dest := filepath.Join(tmp, "dest", "app")

	engine, _ := newEngine(types.Flags{})
	require.NoError(t, engine.Merge(source, dest))

	// Unlink removes the top-level link itself, leaving the source
	// subtree untouched.
	unlinker, _ := newEngine(types.Flags{Unlink: true})
	require.NoError(t, unlinker.Merge(source, dest))

	testutil.AssertNotExist(t, dest)
	testutil.AssertRegularFile(t, filepath.Join(source, "sub", "file"), "content")

	_, err := os.Stat(source)
	require.NoError(t, err)
}
