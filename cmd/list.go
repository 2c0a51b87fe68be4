package cmd

import (
	"fmt"
	"os"

	"ccprofile/internal/profile"
	"ccprofile/internal/utils"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all saved profiles",
	Long:  "List all saved profiles with masked tokens. The profile matching the current environment is marked with *.",
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

		if len(profiles) == 0 {
			fmt.Println("No profiles saved")
			return
		}

		current := profile.MatchCurrent(profiles, os.Getenv)

		fmt.Println("Saved profiles:")
		for i := range profiles {
			p := &profiles[i]

			var authInfo string
			if p.HasToken() {
				authInfo = "Token: " + utils.MaskToken(p.AuthToken())
			} else {
				authInfo = "Token: (none)"
			}

			marker := " "
			if current != nil && current.FileKey == p.FileKey {
				marker = "*"
			}

			fmt.Printf("%s %s [%s]: %s (URL: %s, Model: %s)\n",
				marker, p.Name, p.Provider, authInfo, p.BaseURL(), p.Model())
		}

		if current != nil {
			fmt.Printf("\n* matches this shell's environment\n")
		}
	},
}
