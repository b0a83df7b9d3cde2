package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/xdot/cmd/xdot"
	"github.com/arthur-debert/xdot/pkg/output"
)

func main() {
	rootCmd := xdot.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := output.ErrorStyle()
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
