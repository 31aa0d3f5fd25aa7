package cmd

import (
	"fmt"
	"os"

	"github.com/isostatics/isoframe/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "isoframe",
	Short: "Isostatic Frame Statics Tool",
	Long: `isoframe - Isostatic Frame Equilibrium Solver

A CLI tool for the static analysis of a planar isostatic frame
(four nodes A-B-C-D: a roller at B, a pin at C and a rigid
vertical offset C-D) under horizontal point forces and a uniform
distributed load.

This tool helps structural engineers perform:
  - Support reaction calculation from the equilibrium equations
  - Shear and bending moment distributions along B-C
  - Equation transcripts for hand-calculation checks
  - Structure and internal-force diagrams (terminal and image export)`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   isoframe v%-46s║\n", version.Version)
		fmt.Println("  ║   Isostatic Frame Equilibrium Solver                      ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the static analysis of the A-B-C-D planar frame:")
		fmt.Println("  reactions, shear and bending moment diagrams.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Support reactions from the three equilibrium equations")
		fmt.Println("    • Closed-form V(x) and M(x) along the B-C span")
		fmt.Println("    • Hand-calculation equation transcript")
		fmt.Println("    • ASCII schematic and diagram export (png/svg/pdf)")
		fmt.Println()
		fmt.Println("  Use 'isoframe --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
