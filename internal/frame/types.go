package frame

// StructureParameters describes the loading and geometry of the A-B-C-D frame.
//
// The frame topology is fixed: segment A-B runs horizontally into the roller
// support at B, segment B-C spans between the roller at B and the pin at C,
// and segment C-D is a rigid vertical offset rising from C. Horizontal point
// forces act at A and D; a uniform transverse load acts over B-C.
type StructureParameters struct {
	// Applied loads
	Ha  float64 // Horizontal point force at node A (kN)
	Hd  float64 // Horizontal point force at node D (kN)
	Pbc float64 // Uniform distributed load over B-C (kN/m)

	// Geometry (m)
	Lab float64 // Length of segment A-B (drawing only, no effect on reactions)
	Lbc float64 // Length of segment B-C
	Hcd float64 // Height of the vertical offset C-D
}

// ReactionSet holds the four support reactions, rounded to two decimals.
type ReactionSet struct {
	Hc float64 // Horizontal reaction at the pin C (kN)
	Vb float64 // Vertical reaction at the roller B (kN)
	Vc float64 // Vertical reaction at the pin C (kN)
	N  float64 // Axial normal force in segment B-C (kN)
}

// Result is the full output of the equilibrium solver: the support
// reactions plus the internal force distributions along B-C. V and M are
// kept with exact (unrounded) coefficients; display rounding is a
// presentation concern.
type Result struct {
	Reactions ReactionSet

	V Polynomial // Shear V(x) for x in [0, Lbc], measured from B (kN)
	M Polynomial // Bending moment M(x) = integral of V, M(0) = 0 (kN·m)
}
