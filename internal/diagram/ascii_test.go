package diagram

import (
	"strings"
	"testing"

	"github.com/isostatics/isoframe/internal/frame"
)

func referenceCase(t *testing.T) (frame.StructureParameters, *frame.Result) {
	t.Helper()
	p := frame.StructureParameters{Ha: 1, Hd: 3, Pbc: -2, Lab: 1, Lbc: 3, Hcd: 1}
	res, err := frame.Solve(p)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return p, res
}

func TestDrawStructure(t *testing.T) {
	p, _ := referenceCase(t)
	out := DrawStructure(p)

	for _, want := range []string{
		"A", "B", "C", "D",
		"◬", "△", // support glyphs
		"↓", // downward load arrows for negative Pbc
		"Ha = 1.00 kN",
		"Hd = 3.00 kN",
		"Pbc = -2.00 kN/m",
		"Hcd = 1.00 m",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("schematic missing %q\n%s", want, out)
		}
	}
}

func TestDrawStructure_UpwardLoadAndNegativeForces(t *testing.T) {
	p := frame.StructureParameters{Ha: -1, Hd: -2, Pbc: 3, Lab: 1, Lbc: 3, Hcd: 1}
	out := DrawStructure(p)

	if !strings.Contains(out, "↑") {
		t.Error("positive Pbc should draw upward arrows")
	}
	if !strings.Contains(out, "←") {
		t.Error("negative horizontal forces should draw left arrows")
	}
}

func TestDrawStructure_NoLoadArrowsWhenZero(t *testing.T) {
	p := frame.StructureParameters{Lab: 1, Lbc: 3, Hcd: 1}
	out := DrawStructure(p)

	if strings.Contains(out, "↓") || strings.Contains(out, "↑") {
		t.Error("zero Pbc should not draw load arrows")
	}
}

func TestShearAndMomentDiagrams(t *testing.T) {
	p, res := referenceCase(t)

	shear := ShearDiagram(res, p.Lbc)
	if !strings.Contains(shear, "V(x) = 2.00 − 2.00·x") {
		t.Errorf("shear diagram missing expression\n%s", shear)
	}
	if len(strings.Split(shear, "\n")) < 10 {
		t.Error("shear diagram should contain a plot body")
	}

	moment := MomentDiagram(res, p.Lbc)
	if !strings.Contains(moment, "M(x) = 2.00·x − 1.00·x²") {
		t.Errorf("moment diagram missing expression\n%s", moment)
	}
}

func TestDiagrams_ZeroCase(t *testing.T) {
	p := frame.StructureParameters{Lab: 1, Lbc: 3, Hcd: 1}
	res, err := frame.Solve(p)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	out := ShearDiagram(res, p.Lbc)
	if !strings.Contains(out, "identically zero") {
		t.Errorf("flat shear should be reported as zero, got\n%s", out)
	}
	out = MomentDiagram(res, p.Lbc)
	if !strings.Contains(out, "identically zero") {
		t.Errorf("flat moment should be reported as zero, got\n%s", out)
	}
}
