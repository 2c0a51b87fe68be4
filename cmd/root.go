// Package cmd implements the command line interface for ccprofile.
package cmd

import (
	"fmt"
	"os"

	"ccprofile/internal/launcher"
	"ccprofile/internal/tui"

	"github.com/spf13/cobra"
)

// Version information
var (
	version string
	commit  string
	date    string
)

// SetVersionInfo sets the version information
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

var rootCmd = &cobra.Command{
	Use:   "ccprofile",
	Short: "Profile manager and launcher for " + launcher.DefaultCommand,
	Long: "ccprofile manages named environment profiles for " + launcher.DefaultCommand +
		" (provider, base URL, token, model) and launches it with the selected profile applied.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tui.IsInteractive() {
			return cmd.Help()
		}

		selected, err := tui.Run()
		if err != nil {
			return err
		}
		if selected == nil {
			return nil
		}

		// The alternate screen is gone at this point, so the child owns
		// the terminal directly.
		code, err := launcher.Run(selected, nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(code)
		return nil
	},
}

// Execute executes the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(`ccprofile {{.Version}}
Commit: ` + commit + `
Date: ` + date + `
`)
	rootCmd.SilenceUsage = true

	return rootCmd.Execute()
}
