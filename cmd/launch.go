package cmd

import (
	"fmt"
	"os"

	"ccprofile/internal/launcher"
	"ccprofile/internal/profile"

	"github.com/spf13/cobra"
)

var launchNewTerminal bool

func init() {
	launchCmd.Flags().BoolVarP(&launchNewTerminal, "terminal", "t", false,
		"open a new terminal window instead of running in this one")
	rootCmd.AddCommand(launchCmd)
}

var launchCmd = &cobra.Command{
	Use:   "launch <name> [-- args...]",
	Short: "Launch " + launcher.DefaultCommand + " with a profile's environment",
	Long: "Launch " + launcher.DefaultCommand + ` with the named profile's environment applied.
Arguments after -- are passed through to the child process. The child's
exit code becomes this command's exit code.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := profile.NewStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		p, err := store.Get(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !p.HasToken() {
			fmt.Fprintf(os.Stderr, "Error: profile '%s' has no token; configure it first\n", p.Name)
			os.Exit(1)
		}

		childArgs := args[1:]

		if launchNewTerminal {
			if err := launcher.OpenTerminalWindow(p, childArgs); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not open a terminal window: %v\n", err)
				fmt.Println("Run this manually instead:")
				fmt.Println("  " + launcher.ShellCommand(p, childArgs))
				os.Exit(1)
			}
			return
		}

		code, err := launcher.Run(p, childArgs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(code)
	},
}
