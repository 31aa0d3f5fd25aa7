package frame

import (
	"fmt"
	"math"
)

// Sign convention (held fixed across the tool):
//
//	Hc = Ha − Hd                       horizontal equilibrium, ΣFh = 0
//	Vb + Vc = −Pbc·Lbc                 vertical equilibrium, ΣFv = 0
//	Vb = −Pbc·Lbc/2 − Hd·Hcd/Lbc       moments about the pin C, ΣMc = 0
//	N  = Ha                            no axial load beyond the force at A
//	V(x) = Vb + Pbc·x                  shear along B-C, x measured from B
//	M(x) = ∫₀ˣ V(t) dt                 moment as running integral, M(0) = 0

// Solve computes the support reactions and the internal force
// distributions of the frame from its parameters.
//
// Reactions are rounded to two decimals; V and M keep exact coefficients.
// Solve is a pure function: identical inputs give identical outputs.
func Solve(p StructureParameters) (*Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	// Horizontal equilibrium
	hc := p.Ha - p.Hd

	// Vertical equilibrium: total distributed load over B-C
	vbc := p.Pbc * p.Lbc

	// Moment equilibrium about C: the load resultant acts at mid-span
	// (lever arm Lbc/2) and Hd acts through the offset height Hcd.
	vb := -p.Pbc*p.Lbc/2 - p.Hd*p.Hcd/p.Lbc
	vc := -vbc - vb

	// Axial normal force in B-C
	n := p.Ha

	v := Polynomial{vb, p.Pbc}
	m := v.Integrate()

	return &Result{
		Reactions: ReactionSet{
			Hc: round2(hc),
			Vb: round2(vb),
			Vc: round2(vc),
			N:  round2(n),
		},
		V: v,
		M: m,
	}, nil
}

// validate rejects inputs the equilibrium equations cannot handle. The
// Lbc check must come before any division; everything else is total over
// the reals, so physically odd values (negative lengths, zero loads) pass
// through as plain algebra.
func (p StructureParameters) validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"Ha", p.Ha},
		{"Hd", p.Hd},
		{"Pbc", p.Pbc},
		{"Lab", p.Lab},
		{"Lbc", p.Lbc},
		{"Hcd", p.Hcd},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s=%v", ErrNotFinite, f.name, f.value)
		}
	}
	if p.Lbc == 0 {
		return fmt.Errorf("%w: span Lbc must be non-zero (moment equation divides by it)", ErrInvalidGeometry)
	}
	return nil
}

// round2 rounds half away from zero to two decimals, normalizing -0.
func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}
