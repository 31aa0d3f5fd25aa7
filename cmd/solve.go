package cmd

import (
	"fmt"
	"os"

	"github.com/isostatics/isoframe/internal/config"
	"github.com/isostatics/isoframe/internal/diagram"
	"github.com/isostatics/isoframe/internal/frame"
	"github.com/isostatics/isoframe/internal/report"
	"github.com/spf13/cobra"
)

var (
	// Load inputs
	solveHa  float64
	solveHd  float64
	solvePbc float64

	// Geometry inputs
	solveLab float64
	solveLbc float64
	solveHcd float64

	// Options
	solveConfigFile  string
	solveShowDiagram bool
	solveExportFile  string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the frame equilibrium and report reactions and V/M",
	Long: `Compute the support reactions and the internal force distributions
of the A-B-C-D frame from the applied loads and geometry.

The solver applies the three planar equilibrium equations:
  I.   ΣFh = 0  →  Hc = Ha − Hd
  II.  ΣFv = 0  →  Vb + Vc = −Pbc·Lbc
  III. ΣMc = 0  →  Vb = −Pbc·Lbc/2 − Hd·Hcd/Lbc

and reports the shear V(x) and bending moment M(x) along B-C in
closed form. Parameters may come from flags, from a YAML file
(--config), or both; flags override file values.

Examples:
  # The reference problem
  isoframe solve --ha 1 --hd 3 --pbc -2 --lbc 3 --hcd 1

  # From a parameter file, with terminal diagrams
  isoframe solve --config frame.yaml --diagram

  # Export the V/M diagrams as an image
  isoframe solve --ha 1 --hd 3 --pbc -2 --lbc 3 --hcd 1 --export forces.png`,
	Run: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	// Load flags
	solveCmd.Flags().Float64Var(&solveHa, "ha", 0, "Horizontal point force at node A (kN)")
	solveCmd.Flags().Float64Var(&solveHd, "hd", 0, "Horizontal point force at node D (kN)")
	solveCmd.Flags().Float64VarP(&solvePbc, "pbc", "p", 0, "Uniform distributed load over B-C (kN/m)")

	// Geometry flags
	solveCmd.Flags().Float64Var(&solveLab, "lab", config.DefaultLab, "Span A-B (m), drawing only")
	solveCmd.Flags().Float64Var(&solveLbc, "lbc", config.DefaultLbc, "Span B-C (m) [must be non-zero]")
	solveCmd.Flags().Float64Var(&solveHcd, "hcd", config.DefaultHcd, "Offset height C-D (m)")

	// Options
	solveCmd.Flags().StringVarP(&solveConfigFile, "config", "c", "", "YAML parameter file")
	solveCmd.Flags().BoolVarP(&solveShowDiagram, "diagram", "d", false, "Show ASCII schematic and V/M diagrams")
	solveCmd.Flags().StringVarP(&solveExportFile, "export", "e", "", "Export V/M diagrams to an image file (png/svg/pdf)")
}

func runSolve(cmd *cobra.Command, args []string) {
	params, err := solveParameters(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := frame.Solve(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("        ISOSTATIC FRAME A-B-C-D - EQUILIBRIUM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Print(report.InputTable(params))
	fmt.Println()

	fmt.Print(report.Transcript(params, result))
	fmt.Println()

	fmt.Print(report.ReactionTable(result.Reactions))
	fmt.Println()

	r := result.Reactions
	fmt.Printf("  ╔═════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  Hc = %.2f kN   Vb = %.2f kN   Vc = %.2f kN  \n", r.Hc, r.Vb, r.Vc)
	fmt.Printf("  ╚═════════════════════════════════════════════════╝\n")
	fmt.Println()

	if solveShowDiagram {
		fmt.Print(diagram.DrawStructure(params))
		fmt.Print(diagram.ShearDiagram(result, params.Lbc))
		fmt.Print(diagram.MomentDiagram(result, params.Lbc))
		fmt.Println()
	}

	if solveExportFile != "" {
		if err := diagram.ExportForceDiagrams(params, result, solveExportFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting diagrams: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  Diagrams exported to %s\n", solveExportFile)
		fmt.Println()
	}
}

// solveParameters merges the parameter file (if any) with the flags;
// flags set on the command line take precedence over file values.
func solveParameters(cmd *cobra.Command) (frame.StructureParameters, error) {
	cfg := config.Default()
	if solveConfigFile != "" {
		loaded, err := config.Load(solveConfigFile)
		if err != nil {
			return frame.StructureParameters{}, fmt.Errorf("loading %s: %w", solveConfigFile, err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("ha") {
		cfg.Ha = solveHa
	}
	if flags.Changed("hd") {
		cfg.Hd = solveHd
	}
	if flags.Changed("pbc") {
		cfg.Pbc = solvePbc
	}
	if flags.Changed("lab") {
		cfg.Lab = solveLab
	}
	if flags.Changed("lbc") {
		cfg.Lbc = solveLbc
	}
	if flags.Changed("hcd") {
		cfg.Hcd = solveHcd
	}

	return cfg.Parameters(), nil
}
