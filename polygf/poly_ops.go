package polygf

import "github.com/perlin-network/minisketch-go/gf64"

// Add returns a+b, coefficient-wise. Characteristic 2 makes this the
// same operation as subtraction, so there is no separate Sub.
func Add(a, b Poly) Poly {
	n := len(a.c)
	if len(b.c) > n {
		n = len(b.c)
	}
	out := make([]gf64.Element, n)
	for i := 0; i < n; i++ {
		out[i] = gf64.Add(a.Coeff(i), b.Coeff(i))
	}
	return Poly{c: out}.Normalize()
}

// Square returns a*a via the characteristic-2 "spreading" identity:
// (sum a_i x^i)^2 = sum a_i^2 x^(2i). Odd-indexed coefficients of the
// result are always zero.
func Square(a Poly) Poly {
	a = a.Normalize()
	if a.IsZero() {
		return a
	}
	out := make([]gf64.Element, 2*len(a.c)-1)
	for i, ci := range a.c {
		out[2*i] = gf64.Mul(ci, ci)
	}
	return Poly{c: out}.Normalize()
}

// Mod reduces val modulo the monic polynomial mod, returning the
// remainder (degree < deg(mod)). mod must be monic and nonzero; if
// deg(val) < deg(mod), val is returned unchanged. Reduction proceeds
// from the highest remaining degree downward, canceling one leading
// coefficient of the working value per step by subtracting (XORing) a
// shifted copy of mod scaled by that coefficient — mod's own leading
// coefficient being 1 is exactly what makes this cancellation exact.
func Mod(val, mod Poly) (Poly, error) {
	mod = mod.Normalize()
	if mod.IsZero() {
		return Poly{}, ErrModulusZero
	}
	if mod.c[len(mod.c)-1] != gf64.One {
		return Poly{}, ErrModulusNotMonic
	}

	v := val.Normalize().Coeffs()
	dm := mod.Degree()

	for len(v)-1 >= dm {
		deg := len(v) - 1
		term := v[deg]
		v = v[:deg]
		if term.IsZero() {
			continue
		}
		base := deg - dm
		for x := 0; x < dm; x++ {
			v[base+x] = gf64.Add(v[base+x], gf64.Mul(term, mod.c[x]))
		}
	}
	return Poly{c: v}.Normalize(), nil
}

// DivMod returns the quotient and remainder of dividing val by the
// monic polynomial mod, such that val = quotient*mod + remainder and
// deg(remainder) < deg(mod).
func DivMod(val, mod Poly) (quotient, remainder Poly, err error) {
	mod = mod.Normalize()
	if mod.IsZero() {
		return Poly{}, Poly{}, ErrModulusZero
	}
	if mod.c[len(mod.c)-1] != gf64.One {
		return Poly{}, Poly{}, ErrModulusNotMonic
	}

	v := val.Normalize().Coeffs()
	dm := mod.Degree()

	if len(v)-1 < dm {
		return Zero(), Poly{c: v}.Normalize(), nil
	}

	q := make([]gf64.Element, len(v)-dm)
	for len(v)-1 >= dm {
		deg := len(v) - 1
		term := v[deg]
		v = v[:deg]
		base := deg - dm
		q[base] = term
		if term.IsZero() {
			continue
		}
		for x := 0; x < dm; x++ {
			v[base+x] = gf64.Add(v[base+x], gf64.Mul(mod.c[x], term))
		}
	}
	return Poly{c: q}.Normalize(), Poly{c: v}.Normalize(), nil
}

// GCD returns the monic greatest common divisor of a and b via the
// classical Euclidean algorithm, reducing with Mod at each step and
// re-monicizing the remainder before the next round (Mod itself only
// accepts a monic modulus).
func GCD(a, b Poly) (Poly, error) {
	a, b = a.Normalize(), b.Normalize()
	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	for !b.IsZero() {
		if b.Degree() == 0 {
			// A nonzero constant divides everything: the gcd is 1.
			return One(), nil
		}

		bm, err := b.Monic()
		if err != nil {
			return Poly{}, err
		}
		r, err := Mod(a, bm)
		if err != nil {
			return Poly{}, err
		}
		a, b = bm, r
	}

	if a.IsZero() {
		return Zero(), nil
	}
	return a.Monic()
}
