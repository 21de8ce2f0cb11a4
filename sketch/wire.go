package sketch

import "encoding/binary"

// Marshal serializes a sketch to its wire representation: n
// little-endian u64s, concatenated, with no framing, length prefix, or
// checksum (spec.md §6 — capacity is negotiated out of band).
func Marshal(s Sketch) []byte {
	buf := make([]byte, 8*len(s))
	for i, v := range s {
		binary.LittleEndian.PutUint64(buf[i*8:], v)
	}
	return buf
}

// Unmarshal parses a wire-format buffer into a Sketch. The wire format
// carries no capacity: the result has len(buf)/8 coefficients, and
// Unmarshal does not check that count against any expected capacity.
func Unmarshal(buf []byte) (Sketch, error) {
	if len(buf)%8 != 0 {
		return nil, ErrInvalidWireLength
	}
	out := make(Sketch, len(buf)/8)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return out, nil
}
