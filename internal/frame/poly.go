package frame

import (
	"fmt"
	"math"
	"strings"
)

// Polynomial is a univariate real polynomial stored as ascending
// coefficients: p[0] + p[1]·x + p[2]·x² + ...
//
// The shear and moment distributions of the fixed frame topology are always
// degree ≤ 2, so explicit coefficient arithmetic replaces a general symbolic
// engine. A nil or empty Polynomial is the zero polynomial.
type Polynomial []float64

// Eval evaluates the polynomial at x using Horner's method.
func (p Polynomial) Eval(x float64) float64 {
	var y float64
	for i := len(p) - 1; i >= 0; i-- {
		y = y*x + p[i]
	}
	return y
}

// Degree returns the degree of the polynomial, ignoring trailing zero
// coefficients. The zero polynomial has degree 0.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i > 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return 0
}

// IsZero reports whether every coefficient is zero.
func (p Polynomial) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// Integrate returns the antiderivative with zero constant term, so that
// the integral evaluates to zero at x = 0.
func (p Polynomial) Integrate() Polynomial {
	q := make(Polynomial, len(p)+1)
	for i, c := range p {
		q[i+1] = c / float64(i+1)
	}
	return q
}

// Derivative returns the first derivative.
func (p Polynomial) Derivative() Polynomial {
	if len(p) <= 1 {
		return Polynomial{0}
	}
	q := make(Polynomial, len(p)-1)
	for i := 1; i < len(p); i++ {
		q[i-1] = p[i] * float64(i)
	}
	return q
}

// Add returns the coefficient-wise sum p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	r := make(Polynomial, n)
	for i := range r {
		if i < len(p) {
			r[i] += p[i]
		}
		if i < len(q) {
			r[i] += q[i]
		}
	}
	return r
}

// Scale returns k·p.
func (p Polynomial) Scale(k float64) Polynomial {
	q := make(Polynomial, len(p))
	for i, c := range p {
		q[i] = k * c
	}
	return q
}

// Equal reports whether p and q agree coefficient-wise within eps,
// treating missing trailing coefficients as zero.
func (p Polynomial) Equal(q Polynomial, eps float64) bool {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	for i := 0; i < n; i++ {
		var a, b float64
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		if math.Abs(a-b) > eps {
			return false
		}
	}
	return true
}

// Samples evaluates the polynomial at n evenly spaced points across
// [from, to], inclusive of both endpoints. Used for plotting.
func (p Polynomial) Samples(from, to float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range out {
		out[i] = p.Eval(from + float64(i)*step)
	}
	return out
}

// superscripts for the powers that can occur in this problem.
var superscripts = map[int]string{2: "²", 3: "³"}

// String renders the polynomial with coefficients rounded to two decimals
// for display, e.g. "2.00 − 2.00·x" or "2.00·x − 1.00·x²". Rounding here is
// cosmetic only; the stored coefficients stay exact.
func (p Polynomial) String() string {
	var sb strings.Builder
	for i, c := range p {
		// Terms that round to zero are dropped unless nothing else prints.
		if math.Abs(c) < 0.005 {
			continue
		}
		if sb.Len() == 0 {
			if c < 0 {
				sb.WriteString("−")
			}
		} else if c < 0 {
			sb.WriteString(" − ")
		} else {
			sb.WriteString(" + ")
		}
		sb.WriteString(fmt.Sprintf("%.2f", math.Abs(c)))
		if i >= 1 {
			sb.WriteString("·x")
			if s, ok := superscripts[i]; ok {
				sb.WriteString(s)
			} else if i > 1 {
				sb.WriteString(fmt.Sprintf("^%d", i))
			}
		}
	}
	if sb.Len() == 0 {
		return "0.00"
	}
	return sb.String()
}
