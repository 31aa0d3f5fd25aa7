package cmd

import (
	"fmt"
	"os"

	"github.com/isostatics/isoframe/internal/config"
	"github.com/isostatics/isoframe/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	sketchConfigFile string
	sketchOutputFile string
)

var sketchCmd = &cobra.Command{
	Use:   "sketch",
	Short: "Export a schematic of the frame structure",
	Long: `Draw the A-B-C-D frame with its supports, applied forces and
distributed load, and export it as an image (png/svg/pdf by
extension).

Examples:
  # Default geometry, PNG output
  isoframe sketch --output frame.png

  # From a parameter file
  isoframe sketch --config frame.yaml --output out/frame.svg`,
	Run: runSketch,
}

func init() {
	rootCmd.AddCommand(sketchCmd)

	sketchCmd.Flags().StringVarP(&sketchConfigFile, "config", "c", "", "YAML parameter file")
	sketchCmd.Flags().StringVarP(&sketchOutputFile, "output", "o", "", "Output image file [required]")

	sketchCmd.MarkFlagRequired("output")
}

func runSketch(cmd *cobra.Command, args []string) {
	cfg := config.Default()
	if sketchConfigFile != "" {
		loaded, err := config.Load(sketchConfigFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading %s: %v\n", sketchConfigFile, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := diagram.ExportStructureDiagram(cfg.Parameters(), sketchOutputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Structure schematic exported to %s\n", sketchOutputFile)
}
