package cmd

import (
	"fmt"
	"os"

	"ccprofile/internal/profile"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(currentCmd)
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show which profile matches the current environment",
	Long:  "Compare this shell's environment against the saved profiles and print the matching one, if any.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := profile.NewStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		profiles, err := store.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		current := profile.MatchCurrent(profiles, os.Getenv)
		if current == nil {
			fmt.Println("No saved profile matches this shell's environment")
			return
		}

		fmt.Printf("Current profile: %s\n", current.Name)
		fmt.Printf("Provider: %s\n", current.Provider)
		fmt.Printf("URL: %s\n", current.BaseURL())
		fmt.Printf("Model: %s\n", current.Model())
	},
}
