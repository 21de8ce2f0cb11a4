package decode

import (
	"github.com/perlin-network/minisketch-go/gf64"
	"github.com/perlin-network/minisketch-go/polygf"
)

// BerlekampMassey finds the minimal-length linear recurrence satisfied
// by the expanded sketch s (spec.md §4.5): the shortest polynomial L
// such that for all n' >= deg(L),
//
//	s[n'] + sum_{i=1}^{deg(L)} L[i]*s[n'-i] = 0.
//
// Internally the classic LFSR-synthesis recurrence is expressed with
// the constant term fixed at index 0 (current[0] == 1 throughout,
// lag-indexed coefficients growing outward); that is the natural
// representation for the recurrence itself, but it is the reverse of
// this codebase's ascending/monic polynomial convention (coefficient
// of x^i at index i, leading coefficient at the *top*). So the raw
// LFSR state is reversed before being handed back as a polygf.Poly —
// exactly the step the reference implementation performs by calling
// reversed() on the result before root-finding.
func BerlekampMassey(s []gf64.Element) polygf.Poly {
	raw := runLFSR(s)

	rev := make([]gf64.Element, len(raw))
	for i, v := range raw {
		rev[len(raw)-1-i] = v
	}
	return polygf.New(rev)
}

// runLFSR performs the lag-indexed Berlekamp–Massey recurrence. current
// is the best-so-far annihilator, prev the annihilator at the last
// length change, b the discrepancy captured at that length change, and
// x the distance (in steps) since that change. Every slice here is
// freshly allocated whenever its contents change identity, so current
// and prev never alias each other's backing array.
func runLFSR(s []gf64.Element) []gf64.Element {
	current := []gf64.Element{gf64.One}
	prev := []gf64.Element{gf64.One}
	b := gf64.One
	bInv := gf64.One
	haveInv := true

	for n := range s {
		d := s[n]
		for i := 1; i < len(current); i++ {
			d = gf64.Add(d, gf64.Mul(s[n-i], current[i]))
		}
		if d.IsZero() {
			continue
		}

		x := n + 1 - (len(current) - 1) - (len(prev) - 1)

		if !haveInv {
			var err error
			bInv, err = gf64.Inv(b)
			if err != nil {
				// b is always a discrepancy captured at a length
				// change, which by construction is nonzero.
				panic("decode: impossible zero discrepancy captured as b")
			}
			haveInv = true
		}

		swap := 2*(len(current)-1) <= n

		var savedCurrent []gf64.Element
		if swap {
			savedCurrent = current
			newLen := len(prev) + x
			if newLen < len(current) {
				newLen = len(current)
			}
			grown := make([]gf64.Element, newLen)
			copy(grown, current)
			current = grown
		}

		mul := gf64.Mul(d, bInv)
		for i := range prev {
			current[i+x] = gf64.Add(current[i+x], gf64.Mul(prev[i], mul))
		}

		if swap {
			prev = savedCurrent
			b = d
			haveInv = false
		}
	}
	return current
}
