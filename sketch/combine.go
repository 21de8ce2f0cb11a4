package sketch

import "github.com/templexxx/xorsimd"

// Combine returns the element-wise XOR of two sketches built at the
// same capacity — the sketch of their symmetric difference. It rejects
// sketches of unequal length at the boundary rather than silently
// truncating or padding.
//
// The XOR itself is delegated to xorsimd, which picks the widest
// vector instruction set the running CPU supports; a sketch's wire
// form is just a flat byte buffer, so there is no reason to XOR it
// coefficient-by-coefficient in a Go loop when a SIMD bulk-XOR routine
// already exists for exactly this shape of problem.
func Combine(a, b Sketch) (Sketch, error) {
	if len(a) != len(b) {
		return nil, ErrCapacityMismatch
	}

	ab, bb := Marshal(a), Marshal(b)
	out := make([]byte, len(ab))
	xorsimd.Encode(out, [][]byte{ab, bb})

	return Unmarshal(out)
}
