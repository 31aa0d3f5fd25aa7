// Package report formats the solver's output as an engineer-facing
// hand-calculation transcript. It only displays values computed by the
// solver; nothing is re-derived here.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/isostatics/isoframe/internal/frame"
)

// Transcript renders the three equilibrium equations with the substituted
// numeric values, followed by the internal force expressions along B-C.
func Transcript(p frame.StructureParameters, res *frame.Result) string {
	var sb strings.Builder
	r := res.Reactions

	sb.WriteString("EQUILIBRIUM EQUATIONS:\n")
	sb.WriteString("───────────────────────────────────────────────────────────────\n")

	sb.WriteString("  I. Horizontal equilibrium (ΣFh = 0)\n")
	sb.WriteString(fmt.Sprintf("     Hc = Ha − Hd = %.2f − %.2f = %.2f kN\n", p.Ha, p.Hd, r.Hc))
	sb.WriteString("\n")

	sb.WriteString("  II. Vertical equilibrium (ΣFv = 0)\n")
	sb.WriteString(fmt.Sprintf("     Vbc = Pbc·Lbc = %.2f·%.2f = %.2f kN\n", p.Pbc, p.Lbc, p.Pbc*p.Lbc))
	sb.WriteString(fmt.Sprintf("     Vb + Vc = −Vbc = %.2f kN\n", -p.Pbc*p.Lbc))
	sb.WriteString("\n")

	sb.WriteString("  III. Moment equilibrium about C (ΣMc = 0)\n")
	sb.WriteString(fmt.Sprintf("     Vb = −Pbc·Lbc/2 − Hd·Hcd/Lbc = %.2f kN\n", r.Vb))
	sb.WriteString(fmt.Sprintf("     Vc = −Vbc − Vb = %.2f kN\n", r.Vc))
	sb.WriteString("\n")

	sb.WriteString("INTERNAL FORCES ALONG B-C (x from B):\n")
	sb.WriteString("───────────────────────────────────────────────────────────────\n")
	sb.WriteString(fmt.Sprintf("  N    = Ha = %.2f kN\n", r.N))
	sb.WriteString(fmt.Sprintf("  V(x) = %s  kN\n", res.V))
	sb.WriteString(fmt.Sprintf("  M(x) = %s  kN·m\n", res.M))
	sb.WriteString("\n")
	sb.WriteString("  Degree of static determinacy: isostatic\n")

	return sb.String()
}

// InputTable renders the structure parameters as an aligned table.
func InputTable(p frame.StructureParameters) string {
	var sb strings.Builder

	sb.WriteString("INPUT DATA:\n")
	sb.WriteString("───────────────────────────────────────────────────────────────\n")
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Horizontal force at A (Ha):\t%.2f kN\n", p.Ha)
	fmt.Fprintf(w, "  Horizontal force at D (Hd):\t%.2f kN\n", p.Hd)
	fmt.Fprintf(w, "  Distributed load B-C (Pbc):\t%.2f kN/m\n", p.Pbc)
	fmt.Fprintf(w, "  Span A-B (Lab):\t%.2f m\n", p.Lab)
	fmt.Fprintf(w, "  Span B-C (Lbc):\t%.2f m\n", p.Lbc)
	fmt.Fprintf(w, "  Offset height C-D (Hcd):\t%.2f m\n", p.Hcd)
	w.Flush()

	return sb.String()
}

// ReactionTable renders the computed reactions as an aligned table.
func ReactionTable(r frame.ReactionSet) string {
	var sb strings.Builder

	sb.WriteString("SUPPORT REACTIONS:\n")
	sb.WriteString("───────────────────────────────────────────────────────────────\n")
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Horizontal reaction at C (Hc):\t%.2f kN\n", r.Hc)
	fmt.Fprintf(w, "  Vertical reaction at B (Vb):\t%.2f kN\n", r.Vb)
	fmt.Fprintf(w, "  Vertical reaction at C (Vc):\t%.2f kN\n", r.Vc)
	fmt.Fprintf(w, "  Axial force in B-C (N):\t%.2f kN\n", r.N)
	w.Flush()

	return sb.String()
}
