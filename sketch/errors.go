package sketch

import "github.com/pkg/errors"

// ErrCapacityMismatch is returned by Combine when its two sketches were
// not built with the same capacity — they cannot be meaningfully XORed
// together, since each coefficient position has a different algebraic
// meaning at each capacity.
var ErrCapacityMismatch = errors.New("sketch: capacity mismatch")

// ErrInvalidWireLength is returned by Unmarshal when the supplied byte
// buffer is not a whole multiple of 8 bytes (one little-endian u64 per
// sketch coefficient, per the wire format in spec.md §6).
var ErrInvalidWireLength = errors.New("sketch: wire buffer length must be a multiple of 8")
