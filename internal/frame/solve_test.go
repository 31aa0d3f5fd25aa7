package frame

import (
	"errors"
	"math"
	"testing"
)

func TestSolve_ReferenceScenario(t *testing.T) {
	p := StructureParameters{Ha: 1.0, Hd: 3.0, Pbc: -2.0, Lab: 1.0, Lbc: 3.0, Hcd: 1.0}

	res, err := Solve(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Reactions.Hc != -2.0 {
		t.Errorf("Hc = %v, want -2.0", res.Reactions.Hc)
	}
	if res.Reactions.Vb != 2.0 {
		t.Errorf("Vb = %v, want 2.0", res.Reactions.Vb)
	}
	if res.Reactions.Vc != 4.0 {
		t.Errorf("Vc = %v, want 4.0", res.Reactions.Vc)
	}
	if res.Reactions.N != 1.0 {
		t.Errorf("N = %v, want 1.0", res.Reactions.N)
	}

	// V(x) = 2 - 2x, M(x) = 2x - x²
	if !res.V.Equal(Polynomial{2, -2}, 1e-12) {
		t.Errorf("V = %v, want {2, -2}", res.V)
	}
	if !res.M.Equal(Polynomial{0, 2, -1}, 1e-12) {
		t.Errorf("M = %v, want {0, 2, -1}", res.M)
	}
}

func TestSolve_NoLoad(t *testing.T) {
	p := StructureParameters{Lab: 1.0, Lbc: 3.0, Hcd: 1.0}

	res, err := Solve(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Reactions != (ReactionSet{}) {
		t.Errorf("reactions = %+v, want all zero", res.Reactions)
	}
	if !res.V.IsZero() {
		t.Errorf("V = %v, want zero polynomial", res.V)
	}
	if !res.M.IsZero() {
		t.Errorf("M = %v, want zero polynomial", res.M)
	}
}

func TestSolve_ZeroSpan(t *testing.T) {
	p := StructureParameters{Ha: 1.0, Hd: 3.0, Pbc: -2.0, Lbc: 0, Hcd: 1.0}

	res, err := Solve(p)
	if err == nil {
		t.Fatal("expected error for Lbc = 0")
	}
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("error = %v, want ErrInvalidGeometry", err)
	}
	if res != nil {
		t.Errorf("result = %+v, want nil on error", res)
	}
}

func TestSolve_NonFiniteInput(t *testing.T) {
	tests := []struct {
		name string
		p    StructureParameters
	}{
		{"nan load", StructureParameters{Pbc: math.NaN(), Lbc: 3.0}},
		{"inf force", StructureParameters{Ha: math.Inf(1), Lbc: 3.0}},
		{"inf span", StructureParameters{Lbc: math.Inf(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.p)
			if !errors.Is(err, ErrNotFinite) {
				t.Errorf("error = %v, want ErrNotFinite", err)
			}
		})
	}
}

func TestSolve_EquilibriumIdentities(t *testing.T) {
	// Algebraic identities that must hold for any valid input set.
	params := []StructureParameters{
		{Ha: 1, Hd: 3, Pbc: -2, Lab: 1, Lbc: 3, Hcd: 1},
		{Ha: -5.5, Hd: 2.25, Pbc: 4, Lab: 2, Lbc: 6, Hcd: 0.5},
		{Ha: 0, Hd: -1, Pbc: 0, Lab: 1, Lbc: 2, Hcd: 3},
		{Ha: 10, Hd: 10, Pbc: -0.5, Lab: 0.5, Lbc: 4, Hcd: 2},
		// Negative span: not a realizable length, but valid algebra.
		{Ha: 1, Hd: 1, Pbc: 1, Lab: 1, Lbc: -2, Hcd: 1},
	}

	const eps = 1e-9
	for _, p := range params {
		res, err := Solve(p)
		if err != nil {
			t.Fatalf("Solve(%+v): %v", p, err)
		}
		r := res.Reactions

		if got, want := r.Hc, round2(p.Ha-p.Hd); got != want {
			t.Errorf("Hc = %v, want Ha-Hd = %v (params %+v)", got, want, p)
		}
		if got, want := r.Vb+r.Vc, round2(-p.Pbc*p.Lbc); math.Abs(got-want) > 0.011 {
			t.Errorf("Vb+Vc = %v, want -Pbc*Lbc = %v (params %+v)", got, want, p)
		}
		if got, want := r.N, round2(p.Ha); got != want {
			t.Errorf("N = %v, want Ha = %v (params %+v)", got, want, p)
		}

		// Shear boundary values, against the exact (unrounded) Vb.
		vbExact := -p.Pbc*p.Lbc/2 - p.Hd*p.Hcd/p.Lbc
		if got := res.V.Eval(0); math.Abs(got-vbExact) > eps {
			t.Errorf("V(0) = %v, want %v (params %+v)", got, vbExact, p)
		}
		if got, want := res.V.Eval(p.Lbc), vbExact+p.Pbc*p.Lbc; math.Abs(got-want) > eps {
			t.Errorf("V(Lbc) = %v, want %v (params %+v)", got, want, p)
		}

		// Moment identities: M(0) = 0 and dM/dx = V.
		if got := res.M.Eval(0); got != 0 {
			t.Errorf("M(0) = %v, want 0 (params %+v)", got, p)
		}
		if !res.M.Derivative().Equal(res.V, eps) {
			t.Errorf("dM/dx = %v, want V = %v (params %+v)", res.M.Derivative(), res.V, p)
		}
	}
}

func TestSolve_Idempotent(t *testing.T) {
	p := StructureParameters{Ha: 2.5, Hd: -1.5, Pbc: 3, Lab: 1, Lbc: 4, Hcd: 2}

	first, err := Solve(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Solve(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Reactions != second.Reactions {
		t.Errorf("reactions differ across calls: %+v vs %+v", first.Reactions, second.Reactions)
	}
	if !first.V.Equal(second.V, 0) || !first.M.Equal(second.M, 0) {
		t.Error("internal force polynomials differ across calls")
	}
}

func TestSolve_LabDoesNotAffectReactions(t *testing.T) {
	base := StructureParameters{Ha: 1, Hd: 3, Pbc: -2, Lab: 1, Lbc: 3, Hcd: 1}
	moved := base
	moved.Lab = 7.5

	a, err := Solve(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Solve(moved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Reactions != b.Reactions {
		t.Errorf("Lab changed reactions: %+v vs %+v", a.Reactions, b.Reactions)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.004, 1.0},
		{1.006, 1.01},
		{-1.006, -1.01},
		{-0.001, 0},
		{0, 0},
		{1.23456, 1.23},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
