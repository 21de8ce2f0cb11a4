package decode

import (
	"github.com/perlin-network/minisketch-go/gf64"
	"github.com/perlin-network/minisketch-go/polygf"
)

// FindRoots factors a locator polynomial into its roots using the
// Berlekamp Trace Algorithm (spec.md §4.5). An error return means the
// polynomial did not split over GF(2^64) — the expected signal that
// the true symmetric difference exceeded the sketch's capacity.
func FindRoots(loc polygf.Poly) ([]uint64, error) {
	loc = loc.Normalize()
	if loc.IsZero() {
		return nil, ErrDecodeFailed
	}

	monic, err := loc.Monic()
	if err != nil {
		return nil, err
	}
	if monic.Degree() == 0 {
		return []uint64{}, nil
	}

	roots, ok := findRootsRec(monic, 0)
	if !ok {
		return nil, ErrDecodeFailed
	}
	return toUint64(roots), nil
}

// findRootsRec recurses on factors of f (always monic, degree >= 1),
// returning the accumulated roots and whether factoring succeeded.
// depth is the recursion depth (0 for the top-level call) and feeds the
// depth bound of spec.md §4.5 step 3. Each call tries at most traceDepth
// values of beta; once isSeparable has passed, those values (1, x, x^2,
// ..., x^63 — a basis of the field) always separate two distinct roots.
//
// Throughout, every Poly passed to a recursive call is produced by
// Monic/DivMod — fresh allocations, never the same backing array as
// the Poly the caller is holding — so there is no aliasing between
// sibling branches of the recursion.
func findRootsRec(f polygf.Poly, depth int) ([]gf64.Element, bool) {
	switch f.Degree() {
	case 0:
		return nil, true
	case 1:
		// f = x + c (monic), whose root is c.
		return []gf64.Element{f.Coeff(0)}, true
	}

	beta := gf64.One
	t, err := traceMod(beta, f)
	if err != nil {
		return nil, false
	}

	sep, err := isSeparable(t, f)
	if err != nil || !sep {
		return nil, false
	}

	for trial := 0; ; trial++ {
		// Beyond this depth, no remaining beta can plausibly split a
		// factor of this degree: 2^(64-depth) has fallen at or below
		// deg(f)-1, the point past which splitting is statistically
		// impossible (spec.md §4.5 step 3).
		shift := traceDepth - depth
		if trial >= traceDepth || shift <= 0 || (uint64(f.Degree()-1)>>uint(shift)) != 0 {
			return nil, false
		}

		g, err := polygf.GCD(t, f)
		if err != nil {
			return nil, false
		}

		if g.Degree() > 0 && g.Degree() < f.Degree() {
			gm, err := g.Monic()
			if err != nil {
				return nil, false
			}
			quotient, _, err := polygf.DivMod(f, gm)
			if err != nil {
				return nil, false
			}

			leftRoots, ok := findRootsRec(gm, depth+1)
			if !ok {
				return nil, false
			}
			rightRoots, ok := findRootsRec(quotient, depth+1)
			if !ok {
				return nil, false
			}
			return append(leftRoots, rightRoots...), true
		}

		beta = gf64.Mul(beta, 2)
		t, err = traceMod(beta, f)
		if err != nil {
			return nil, false
		}
	}
}

func toUint64(elems []gf64.Element) []uint64 {
	out := make([]uint64, len(elems))
	for i, e := range elems {
		out[i] = uint64(e)
	}
	return out
}
