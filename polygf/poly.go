// Package polygf implements polynomial arithmetic over gf64.Element: the
// monic normalization, modular reduction, Euclidean division, GCD, and
// characteristic-2 squaring that the PinSketch decoder builds on.
//
// Every operation here is value-returning: a Poly received by any
// function in this package is never mutated in place, and every computed
// result is built in a freshly allocated slice; only Normalize returns a
// trimmed view of its receiver's slice, which nothing here writes through. This is
// a deliberate departure from the reference Python implementation's
// mix of in-place list mutation and aliasing through a hand-rolled
// "stack" of slots, which the spec calls out as ambiguous; value
// semantics throughout make the decoder's recursion trivially safe to
// reason about at the cost of a few extra allocations, which is the
// right trade for a component whose inputs are at most a few hundred
// coefficients.
package polygf

import "github.com/perlin-network/minisketch-go/gf64"

// Poly is a polynomial over GF(2^64), coefficients stored ascending:
// c[i] is the coefficient of x^i. A normalized Poly never has a
// trailing zero coefficient; the zero polynomial is the empty slice.
type Poly struct {
	c []gf64.Element
}

// New builds a Poly from coefficients in ascending order (c[i] is the
// coefficient of x^i) and normalizes it, trimming any trailing zeros.
func New(c []gf64.Element) Poly {
	cp := make([]gf64.Element, len(c))
	copy(cp, c)
	return Poly{c: cp}.Normalize()
}

// Zero returns the zero polynomial.
func Zero() Poly { return Poly{} }

// One returns the constant polynomial 1.
func One() Poly { return Poly{c: []gf64.Element{gf64.One}} }

// Normalize trims trailing zero coefficients, producing the canonical
// representation required before any degree-based comparison.
func (p Poly) Normalize() Poly {
	n := len(p.c)
	for n > 0 && p.c[n-1].IsZero() {
		n--
	}
	return Poly{c: p.c[:n:n]}
}

// Degree returns the index of the highest nonzero coefficient, or -1
// for the zero polynomial. Poly must be normalized for this to be
// accurate; New and every operation in this package return normalized
// values.
func (p Poly) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.c) == 0 }

// Coeff returns the coefficient of x^i, or zero if i exceeds the
// polynomial's degree.
func (p Poly) Coeff(i int) gf64.Element {
	if i < 0 || i >= len(p.c) {
		return gf64.Zero
	}
	return p.c[i]
}

// Coeffs returns a copy of the ascending coefficient slice.
func (p Poly) Coeffs() []gf64.Element {
	out := make([]gf64.Element, len(p.c))
	copy(out, p.c)
	return out
}

// Clone returns a deep copy of p so that callers can mutate the result
// without aliasing p's backing array.
func (p Poly) Clone() Poly {
	out := make([]gf64.Element, len(p.c))
	copy(out, p.c)
	return Poly{c: out}
}

// WithCoeff returns a copy of p with the coefficient of x^i set to v,
// growing the backing array if necessary. Used by the trace map (§4.5)
// to force the x^1 term of an accumulated trace polynomial without
// disturbing the rest of its coefficients.
func (p Poly) WithCoeff(i int, v gf64.Element) Poly {
	n := len(p.c)
	if i >= n {
		n = i + 1
	}
	out := make([]gf64.Element, n)
	copy(out, p.c)
	out[i] = v
	return Poly{c: out}.Normalize()
}

// Monic returns a fresh copy of p scaled so its leading coefficient is
// 1. It fails on the zero polynomial, which has no leading coefficient.
func (p Poly) Monic() (Poly, error) {
	p = p.Normalize()
	if p.IsZero() {
		return Poly{}, ErrZeroPolynomial
	}
	lead := p.c[len(p.c)-1]
	if lead == gf64.One {
		return p.Clone(), nil
	}

	inv, err := gf64.Inv(lead)
	if err != nil {
		// Unreachable: p is normalized and nonzero, so lead != 0.
		return Poly{}, err
	}

	out := make([]gf64.Element, len(p.c))
	for i, c := range p.c[:len(p.c)-1] {
		out[i] = gf64.Mul(inv, c)
	}
	out[len(out)-1] = gf64.One
	return Poly{c: out}, nil
}
