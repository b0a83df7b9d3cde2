// Package output writes xdot's user-facing console reports: one line per
// package, one line per link created, skipped, or removed. Skip and descend
// diagnostics only appear at nonzero verbosity. Dry-run lines carry a
// distinct prefix so suppressed mutations are never mistaken for executed
// ones. Diagnostics for debugging go through pkg/logging instead.
package output

import (
	"fmt"
	"io"
	"os"
)

// dryRunPrefix distinguishes reported-but-suppressed mutations.
const dryRunPrefix = "(dry-run) "

// Reporter emits the per-action console lines for a run.
type Reporter struct {
	out       io.Writer
	verbosity int
	dryRun    bool
	styles    styleSet
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer, verbosity int, dryRun bool) *Reporter {
	colored := false
	if f, ok := out.(*os.File); ok {
		colored = IsTerminal(f)
	}
	return &Reporter{
		out:       out,
		verbosity: verbosity,
		dryRun:    dryRun,
		styles:    newStyleSet(colored),
	}
}

// DryRunNotice announces once, up front, that no changes will be made.
func (r *Reporter) DryRunNotice() {
	if r.dryRun {
		fmt.Fprintln(r.out, r.styles.DryRun.Render("Dry run mode, no changes will be made."))
	}
}

// PackageHeader emits the one summary line per package.
func (r *Reporter) PackageHeader(unlink bool, name, path string) {
	action := "Linking"
	if unlink {
		action = "Unlinking"
	}
	fmt.Fprintln(r.out, r.styles.Header.Render(fmt.Sprintf("%s config for `%s` (%s)", action, name, path)))
}

// LinkCreated reports a symlink created (or, under dry-run, that one would
// have been created) at dest pointing to source.
func (r *Reporter) LinkCreated(dest, source string) {
	r.action(r.styles.Link, "%s => %s", dest, source)
}

// LinkRemoved reports a symlink removed at dest.
func (r *Reporter) LinkRemoved(dest string) {
	r.action(r.styles.Remove, "Removing symlink: %s", dest)
}

// SkipExisting reports an already-correct link left untouched.
func (r *Reporter) SkipExisting(dest string) {
	r.diagnostic("Skipping existing link: %s", dest)
}

// Descend reports recursion into a pre-existing destination directory.
func (r *Reporter) Descend(dest string) {
	r.diagnostic("Descending into existing directory: %s", dest)
}

// NothingToRemove reports an unlink no-op on a nonexistent destination.
func (r *Reporter) NothingToRemove(dest string) {
	r.diagnostic("Nothing to remove: %s", dest)
}

// action lines are always shown; dry-run prefixes them.
func (r *Reporter) action(style interface{ Render(...string) string }, format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	if r.dryRun {
		line = dryRunPrefix + line
	}
	fmt.Fprintln(r.out, style.Render(line))
}

// diagnostic lines are gated on verbosity.
func (r *Reporter) diagnostic(format string, args ...interface{}) {
	if r.verbosity > 0 {
		fmt.Fprintln(r.out, r.styles.Dim.Render(fmt.Sprintf(format, args...)))
	}
}
