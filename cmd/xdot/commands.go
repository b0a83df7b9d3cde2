package xdot

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/xdot/pkg/linker"
)

func newLinkCmd(common func() commonFlags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "link [packages...]",
		Short: "Symlink packages into their target locations",
		Long: `Link merges each named package into the filesystem: a symlink per
leaf entry, descending into destination directories that already exist.
Entries named @KEY are linked into the directory KEY resolves to.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := common()
			return linker.Run(linker.RunOptions{
				PackageNames: args,
				All:          all,
				DryRun:       f.DryRun,
				Verbosity:    f.Verbosity,
				PackageRoot:  f.PackageRoot,
				TargetRoot:   f.TargetRoot,
			})
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Link all discovered packages")
	return cmd
}

func newUnlinkCmd(common func() commonFlags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "unlink [packages...]",
		Short: "Remove the symlinks a package created",
		Long: `Unlink removes exactly the symlinks that point back into the named
packages, verified by filesystem node identity. Files and directories it
does not own are never touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := common()
			return linker.Run(linker.RunOptions{
				PackageNames: args,
				All:          all,
				Unlink:       true,
				DryRun:       f.DryRun,
				Verbosity:    f.Verbosity,
				PackageRoot:  f.PackageRoot,
				TargetRoot:   f.TargetRoot,
			})
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Unlink all discovered packages")
	return cmd
}

func newListCmd(common func() commonFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List packages under the package root",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := common()
			pkgs, err := linker.List(linker.RunOptions{PackageRoot: f.PackageRoot})
			if err != nil {
				return err
			}
			for _, pkg := range pkgs {
				fmt.Fprintln(cmd.OutOrStdout(), pkg.Name)
			}
			return nil
		},
	}
}
