// Package cli provides the Cobra command structure for htmlvet.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/htmlvet/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root htmlvet command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "htmlvet",
		Short: "A lightweight structural checker for HTML documents",
		Long: `htmlvet runs a fixed set of independent structural checks against a single
HTML document: doctype declaration, html/head/body structure, the lang
attribute, title placement, link tag attributes, and unescaped ampersands.

It is a heuristic pattern checker, not a W3C validator: each check is a
literal text scan with a pass/fail outcome, and the process exit code
summarizes the overall verdict.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
