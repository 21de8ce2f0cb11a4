// Package sketch implements the PinSketch encoder, its Frobenius lift,
// and the wire codec for sketches — components C and D of the design.
// The hard part (decoding) lives in the sibling decode package; this
// package only ever produces or combines fixed-size vectors of field
// elements.
package sketch

import "github.com/perlin-network/minisketch-go/gf64"

// Sketch is the compressed, n-element representation of a set or
// multiset: s[k] = sum over items m of m^(2k+1), evaluated in GF(2^64).
// Two sketches built with the same capacity combine into the sketch of
// their symmetric difference by element-wise XOR (Combine).
type Sketch []uint64

// Encoder accumulates a sketch incrementally: items can be folded in
// one at a time (Add) without ever materializing the input multiset,
// which is what makes encoding "online" per spec.md §4.3.
type Encoder struct {
	acc []gf64.Element
}

// NewEncoder returns an Encoder for the given capacity, initialized to
// the empty sketch (all zeros).
func NewEncoder(capacity int) *Encoder {
	return &Encoder{acc: make([]gf64.Element, capacity)}
}

// Add folds one item's odd power sums into the running sketch. It
// maintains m^1, m^3, m^5, ... incrementally by multiplying by m^2
// each step, rather than recomputing m^(2k+1) from scratch for every
// k, so a capacity-n encoder costs O(n) field multiplications per item.
func (e *Encoder) Add(item uint64) {
	m := gf64.Element(item)
	msq := gf64.Mul(m, m)
	cur := m
	for k := range e.acc {
		e.acc[k] = gf64.Add(e.acc[k], cur)
		cur = gf64.Mul(cur, msq)
	}
}

// Merge folds another encoder's accumulated sketch into this one. Both
// encoders must share the same capacity.
func (e *Encoder) Merge(other *Encoder) error {
	if len(e.acc) != len(other.acc) {
		return ErrCapacityMismatch
	}
	for i := range e.acc {
		e.acc[i] = gf64.Add(e.acc[i], other.acc[i])
	}
	return nil
}

// Sketch returns the current compressed sketch.
func (e *Encoder) Sketch() Sketch {
	out := make(Sketch, len(e.acc))
	for i, c := range e.acc {
		out[i] = uint64(c)
	}
	return out
}

// Encode is a convenience wrapper that builds the compressed sketch of
// items at the given capacity in one call. Duplicate items cancel out
// in pairs under the XOR combination the same way they would across
// two separate sketches, so encode([]uint64{}, n) and encoding any
// even-multiplicity multiset both yield the all-zero sketch.
func Encode(items []uint64, capacity int) Sketch {
	enc := NewEncoder(capacity)
	for _, item := range items {
		enc.Add(item)
	}
	return enc.Sketch()
}

// Expand applies the Frobenius lift (spec.md §4.4), turning the n
// odd-indexed power sums of a compressed sketch into the full
// 2n-element sequence s_1..s_2n the decoder needs. Even-indexed power
// sums are recovered for free via s_2j = (s_j)^2, so only half the
// coefficients ever need to cross the wire.
func Expand(s Sketch) []uint64 {
	out := make([]uint64, 2*len(s))
	for i := range out {
		if i&1 == 0 {
			out[i] = s[i/2]
		} else {
			base := gf64.Element(out[i/2])
			out[i] = uint64(gf64.Mul(base, base))
		}
	}
	return out
}
