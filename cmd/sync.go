package cmd

import (
	"fmt"
	"os"

	"ccprofile/internal/claude"
	"ccprofile/internal/profile"

	"github.com/spf13/cobra"
)

var syncSettingsPath string

func init() {
	syncCmd.Flags().StringVar(&syncSettingsPath, "settings", "",
		"settings.json path (default ~/.claude/settings.json)")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync <name>",
	Short: "Write a profile's environment into Claude Code settings.json",
	Long: `Write the named profile's environment into the env block of Claude
Code's settings.json. Only the keys this tool manages are touched; every
other setting and env entry is preserved.`,
	Args: cobra.ExactArgs(1),
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

		path := syncSettingsPath
		if path == "" {
			path, err = claude.SettingsPath()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		if err := claude.SyncSettings(path, p); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Synced profile '%s' to %s\n", p.Name, path)
	},
}
