// Package minisketch implements PinSketch, a compact set-reconciliation
// primitive. Two parties each hold a set of 64-bit identifiers; each
// computes a fixed-size sketch of a chosen capacity n. Combining the
// two sketches by element-wise XOR and decoding the result recovers
// the symmetric difference of the two sets, provided it has at most n
// elements — independent of how large either set actually is.
//
// The four operations below are thin wrappers over the gf64, polygf,
// sketch, and decode packages, which implement the field arithmetic,
// polynomial arithmetic, encoder, and decoder respectively. Hashing
// application-level items down to uint64 identifiers, transporting
// sketches between peers, and persisting sets are all the caller's
// responsibility; none of that is this package's concern.
package minisketch

import (
	"github.com/perlin-network/minisketch-go/decode"
	"github.com/perlin-network/minisketch-go/sketch"
)

// Sketch is the compressed, capacity-n representation of a set.
type Sketch = sketch.Sketch

// Encode builds the compressed sketch of items at the given capacity.
func Encode(items []uint64, capacity int) Sketch {
	return sketch.Encode(items, capacity)
}

// Combine returns the sketch of the symmetric difference of the two
// sets that produced a and b. Both must share the same capacity.
func Combine(a, b Sketch) (Sketch, error) {
	return sketch.Combine(a, b)
}

// Expand lifts a compressed sketch to the 2n-element form the decoder
// requires, via the Frobenius endomorphism.
func Expand(s Sketch) []uint64 {
	return sketch.Expand(s)
}

// Decode recovers the symmetric difference from an expanded sketch. An
// error return (decode.ErrDecodeFailed) means the true symmetric
// difference exceeded the sketch's capacity.
func Decode(expanded []uint64) ([]uint64, error) {
	return decode.Decode(expanded)
}

// Reconcile is a convenience wrapper over Combine, Expand, and Decode
// for the common case of recovering A△B given each side's compressed
// sketch — exactly the combine→expand→decode pipeline spec.md's
// concrete scenarios walk through.
func Reconcile(a, b Sketch) ([]uint64, error) {
	combined, err := Combine(a, b)
	if err != nil {
		return nil, err
	}
	return Decode(Expand(combined))
}
