package cmd

import (
	"fmt"

	"github.com/isostatics/isoframe/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of isoframe",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("isoframe v%s\n", version.Version)
		fmt.Println("Isostatic Frame Equilibrium Solver")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
