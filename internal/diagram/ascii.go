package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/isostatics/isoframe/internal/frame"
)

// Width in characters of the A-C baseline in the ASCII sketch.
const baselineChars = 48

// DrawStructure creates an ASCII schematic of the A-B-C-D frame with
// support glyphs, applied-force arrows and the distributed load over B-C.
// Arrow directions follow the sign of the applied values.
func DrawStructure(p frame.StructureParameters) string {
	var sb strings.Builder

	// Horizontal positions scaled to the baseline width. Degenerate
	// geometry collapses to fixed positions.
	total := p.Lab + p.Lbc
	bCol := baselineChars / 4
	if total > 0 && p.Lab >= 0 && p.Lbc > 0 {
		bCol = int(p.Lab / total * float64(baselineChars))
	}
	if bCol < 2 {
		bCol = 2
	}
	if bCol > baselineChars-4 {
		bCol = baselineChars - 4
	}
	cCol := baselineChars

	sb.WriteString("\n")
	sb.WriteString("  STRUCTURE SCHEMATIC\n")
	sb.WriteString("  ───────────────────\n\n")

	// Node D and the C-D riser, drawn above the baseline.
	riser := 2
	pad := strings.Repeat(" ", cCol+2)
	sb.WriteString(fmt.Sprintf("%sD %s Hd = %.2f kN\n", pad, arrowFor(p.Hd), p.Hd))
	for i := 0; i < riser; i++ {
		label := ""
		if i == riser/2 {
			label = fmt.Sprintf("  Hcd = %.2f m", p.Hcd)
		}
		sb.WriteString(fmt.Sprintf("%s│%s\n", pad, label))
	}

	// Distributed load arrows spanning B-C.
	if p.Pbc != 0 {
		loadArrow := "↓"
		if p.Pbc > 0 {
			loadArrow = "↑"
		}
		var load strings.Builder
		load.WriteString(strings.Repeat(" ", bCol+2))
		for i := bCol; i <= cCol; i++ {
			if (i-bCol)%4 == 0 {
				load.WriteString(loadArrow)
			} else {
				load.WriteString(" ")
			}
		}
		sb.WriteString(fmt.Sprintf("%s  Pbc = %.2f kN/m\n", load.String(), p.Pbc))
	}

	// Baseline A────B────C.
	sb.WriteString("  A")
	sb.WriteString(strings.Repeat("─", bCol-1))
	sb.WriteString("B")
	sb.WriteString(strings.Repeat("─", cCol-bCol-1))
	sb.WriteString("C\n")

	// Support glyphs: roller under B, pin under C.
	var sup strings.Builder
	sup.WriteString(strings.Repeat(" ", bCol+2))
	sup.WriteString("◬")
	sup.WriteString(strings.Repeat(" ", cCol-bCol-1))
	sup.WriteString("△")
	sb.WriteString(sup.String() + "\n")

	sb.WriteString(fmt.Sprintf("  %s Ha = %.2f kN (at A)\n", arrowFor(p.Ha), p.Ha))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ◬ = simple support (roller) at B\n")
	sb.WriteString("  △ = pinned support at C\n")
	sb.WriteString(fmt.Sprintf("  Lab = %.2f m, Lbc = %.2f m\n", p.Lab, p.Lbc))

	return sb.String()
}

// arrowFor picks the arrow glyph for a signed horizontal force. Positive
// points in the +x direction.
func arrowFor(force float64) string {
	if force < 0 {
		return "←"
	}
	return "→"
}

// ShearDiagram renders the shear distribution V(x) over [0, Lbc] as a
// terminal plot.
func ShearDiagram(res *frame.Result, lbc float64) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  SHEAR DIAGRAM V(x), x from B\n")
	sb.WriteString("  ────────────────────────────\n\n")
	sb.WriteString(plotSeries(res.V, lbc))
	sb.WriteString(fmt.Sprintf("\n  V(x) = %s  kN,  x ∈ [0, %.2f] m\n", res.V, lbc))

	return sb.String()
}

// MomentDiagram renders the bending moment distribution M(x) over [0, Lbc]
// as a terminal plot.
func MomentDiagram(res *frame.Result, lbc float64) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  BENDING MOMENT DIAGRAM M(x), x from B\n")
	sb.WriteString("  ─────────────────────────────────────\n\n")
	sb.WriteString(plotSeries(res.M, lbc))
	sb.WriteString(fmt.Sprintf("\n  M(x) = %s  kN·m,  x ∈ [0, %.2f] m\n", res.M, lbc))

	return sb.String()
}

func plotSeries(p frame.Polynomial, lbc float64) string {
	// asciigraph cannot scale a perfectly flat series; report it as text.
	if p.IsZero() {
		return "  (identically zero over the span)\n"
	}

	data := p.Samples(0, lbc, 60)
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Offset(3),
		asciigraph.Precision(2),
	) + "\n"
}
