package cmd

import (
	"fmt"
	"os"

	"github.com/isostatics/isoframe/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage frame parameter files",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter YAML parameter file",
	Long: `Write a parameter file with the default geometry (Lab=1, Lbc=3,
Hcd=1) and zero loads, ready to edit and feed back via --config.

Example:
  isoframe config init frame.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "frame.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %s already exists\n", path)
			os.Exit(1)
		}

		if err := config.Save(path, config.Default()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Parameter file written to %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}
