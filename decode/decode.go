// Package decode implements the PinSketch decoder (component E): the
// Berlekamp–Massey synthesis of the locator polynomial and the
// Berlekamp Trace Algorithm that factors it into the elements of the
// symmetric difference. Decode is the one operation in this module
// where a failure return is an expected outcome, not a bug — see
// ErrDecodeFailed.
package decode

import "github.com/perlin-network/minisketch-go/gf64"

// Decode recovers the symmetric difference from an expanded (2n
// element) sketch. Its result is a set (order unspecified); an error
// of ErrDecodeFailed means the true symmetric difference exceeded the
// sketch's capacity, the expected failure mode per spec.md §7.
func Decode(expanded []uint64) ([]uint64, error) {
	elems := make([]gf64.Element, len(expanded))
	for i, v := range expanded {
		elems[i] = gf64.Element(v)
	}

	locator := BerlekampMassey(elems)
	return FindRoots(locator)
}
