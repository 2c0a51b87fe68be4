package cmd

import (
	"fmt"
	"os"

	"ccprofile/internal/profile"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Print a profile's environment as shell export statements",
	Long: `Print a profile's environment as shell export statements, one per line.

Apply them to the current shell with:
  eval "$(ccprofile export <name>)"`,
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

		fmt.Print(profile.ExportStatements(p))
	},
}
