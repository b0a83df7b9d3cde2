package xdot

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/xdot/internal/version"
	"github.com/arthur-debert/xdot/pkg/logging"
)

// NewRootCmd builds the xdot command tree.
func NewRootCmd() *cobra.Command {
	var (
		verbosity   int
		dryRun      bool
		packageRoot string
		targetRoot  string
	)

	rootCmd := &cobra.Command{
		Use:   "xdot",
		Short: "Symlink your dotfiles from ~/.xdot",
		Long: `xdot links package directories from ~/.xdot into target locations,
mirroring each package's internal directory structure with symlinks.
Top-level entries named @KEY are redirected into the directory KEY
resolves to (environment variable, or the well-known XDG defaults).

xdot keeps no state: every run re-derives its actions from the current
filesystem, so runs are idempotent and safe to repeat.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Don't modify the file system, report only")
	rootCmd.PersistentFlags().StringVar(&packageRoot, "package-root", "", "Directory containing packages (default ~/.xdot)")
	rootCmd.PersistentFlags().StringVar(&targetRoot, "target", "", "Destination root for non-redirected entries (default /)")

	common := func() commonFlags {
		return commonFlags{
			Verbosity:   verbosity,
			DryRun:      dryRun,
			PackageRoot: packageRoot,
			TargetRoot:  targetRoot,
		}
	}

	rootCmd.AddCommand(newLinkCmd(common))
	rootCmd.AddCommand(newUnlinkCmd(common))
	rootCmd.AddCommand(newListCmd(common))
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// commonFlags carries the persistent flag values into subcommands.
type commonFlags struct {
	Verbosity   int
	DryRun      bool
	PackageRoot string
	TargetRoot  string
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("xdot version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
