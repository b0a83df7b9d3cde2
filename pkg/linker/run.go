package linker

import (
	"io"
	"os"

	"github.com/arthur-debert/xdot/pkg/config"
	"github.com/arthur-debert/xdot/pkg/errors"
	"github.com/arthur-debert/xdot/pkg/filesystem"
	"github.com/arthur-debert/xdot/pkg/output"
	"github.com/arthur-debert/xdot/pkg/packages"
	"github.com/arthur-debert/xdot/pkg/paths"
	"github.com/arthur-debert/xdot/pkg/redirect"
	"github.com/arthur-debert/xdot/pkg/types"
)

// RunOptions are the inputs for a full link or unlink run. Zero values fall
// back to the process environment and configuration, so commands stay thin
// while tests can pin every input.
type RunOptions struct {
	// PackageNames selects packages explicitly. Required unless All is set.
	PackageNames []string
	// All selects every discovered package instead of an explicit list.
	All bool

	Unlink    bool
	DryRun    bool
	Verbosity int

	// PackageRoot and TargetRoot override the configured values when set.
	PackageRoot string
	TargetRoot  string

	// Home overrides the detected home directory (tests).
	Home string
	// Environ overrides the redirect override snapshot; nil uses
	// os.Environ().
	Environ []string
	// Stdout receives the console report; nil uses os.Stdout.
	Stdout io.Writer
	// ConfigFile overrides the config file location.
	ConfigFile string
}

// Run executes a complete link or unlink run: load configuration, resolve
// paths, select packages, process them. Configuration failures abort before
// any filesystem work.
func Run(opts RunOptions) error {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return err
	}

	home := opts.Home
	if home == "" {
		home, err = paths.GetHomeDirectory()
		if err != nil {
			return err
		}
	}

	packageRoot := opts.PackageRoot
	if packageRoot == "" {
		packageRoot = cfg.PackageRoot
	}
	targetRoot := opts.TargetRoot
	if targetRoot == "" {
		targetRoot = cfg.TargetRoot
	}

	p, err := paths.New(home, packageRoot, targetRoot)
	if err != nil {
		return err
	}

	fsys := filesystem.NewOS()

	pkgs, err := selectPackages(fsys, p, opts)
	if err != nil {
		return err
	}

	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	flags := types.Flags{Verbosity: opts.Verbosity, Unlink: opts.Unlink, DryRun: opts.DryRun}
	reporter := output.NewReporter(stdout, opts.Verbosity, opts.DryRun)
	reporter.DryRunNotice()

	l := New(Options{
		FS:           fsys,
		Paths:        p,
		Reporter:     reporter,
		Resolver:     redirect.NewResolver(redirect.EnvironOverrides(environ), p),
		Flags:        flags,
		GlobalIgnore: cfg.Ignore,
	})
	return l.ProcessPackages(pkgs)
}

// List returns the discovered packages under the configured package root.
func List(opts RunOptions) ([]types.Package, error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	home := opts.Home
	if home == "" {
		home, err = paths.GetHomeDirectory()
		if err != nil {
			return nil, err
		}
	}

	packageRoot := opts.PackageRoot
	if packageRoot == "" {
		packageRoot = cfg.PackageRoot
	}

	p, err := paths.New(home, packageRoot, opts.TargetRoot)
	if err != nil {
		return nil, err
	}

	return packages.Discover(filesystem.NewOS(), p.PackageRoot())
}

func selectPackages(fsys types.FS, p *paths.Paths, opts RunOptions) ([]types.Package, error) {
	if opts.All {
		pkgs, err := packages.Discover(fsys, p.PackageRoot())
		if err != nil {
			return nil, err
		}
		if len(pkgs) == 0 {
			return nil, errors.Newf(errors.ErrNoPackages,
				"no packages found in %s", p.PackageRoot())
		}
		return pkgs, nil
	}

	if len(opts.PackageNames) == 0 {
		return nil, errors.New(errors.ErrNoPackages, "no packages specified")
	}
	return packages.Select(fsys, p.PackageRoot(), opts.PackageNames)
}
