// Package cmd implements noesis's command-line surface, mirroring the
// teacher's own main.go -> cmd.Execute() wiring and its sole third-party
// dependency, spf13/cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "noesis",
	Short: "A higher-order reasoning kernel for TPTP logics",
	Long: `noesis exposes the reasoning kernel's three externally useful
pieces as standalone commands: the TPTP lexer, the TPTP reader and
signature builder, and the Huet-style pre-unification search.`,
	SilenceUsage: true,
}

// Execute runs the root command, exiting the process with status 1 on
// failure. Called from main.go exactly once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
