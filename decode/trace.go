package decode

import (
	"github.com/perlin-network/minisketch-go/gf64"
	"github.com/perlin-network/minisketch-go/polygf"
)

// traceDepth is the number of terms in the trace map
// Tr(y) = y + y^2 + y^4 + ... + y^(2^63) (traceDepth-1 squarings),
// matching GF(2^64)'s extension degree over GF(2).
const traceDepth = 64

// traceMod computes t(x) = Tr_beta(x) mod f, where
// Tr_beta(x) = sum_{i=0}^{63} (beta*x)^(2^i) (spec.md §4.5 step 1).
//
// It accumulates the trace by repeated squaring: starting from the
// degree-1 polynomial beta*x, each round squares the running
// polynomial (the characteristic-2 spreading map, polygf.Square) and
// re-adds the beta*x term — squaring alone always zeroes the x^1
// coefficient, so forcing it back to beta after each squaring is
// exactly the "+ (beta*x)^(2^i)" step of the sum — then reduces modulo
// f to keep the degree bounded.
func traceMod(beta gf64.Element, f polygf.Poly) (polygf.Poly, error) {
	t := polygf.New([]gf64.Element{gf64.Zero, beta})

	for i := 0; i < traceDepth-1; i++ {
		t = polygf.Square(t)
		t = t.WithCoeff(1, beta)

		var err error
		t, err = polygf.Mod(t, f)
		if err != nil {
			return polygf.Poly{}, err
		}
	}
	return t, nil
}

// isSeparable reports whether f splits completely into distinct linear
// factors over GF(2^64), using the trace polynomial t already computed
// for f (spec.md §4.5 step 2). A separable polynomial with all its
// roots in the base field satisfies t(x)^2 = t(x) mod f; this check
// only needs to run once per branch of the recursion, since it does
// not depend on which beta produced t.
func isSeparable(t, f polygf.Poly) (bool, error) {
	residual := polygf.Add(polygf.Square(t), t)
	r, err := polygf.Mod(residual, f)
	if err != nil {
		return false, err
	}
	return r.IsZero(), nil
}
