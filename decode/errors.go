package decode

import "github.com/pkg/errors"

// ErrDecodeFailed is returned when the Berlekamp–Massey locator
// polynomial does not split completely over GF(2^64) — the expected,
// non-exceptional outcome when the true symmetric difference exceeds
// the sketch's capacity. Callers should treat it as a signal to
// retransmit with a larger capacity, not as a programming error.
var ErrDecodeFailed = errors.New("decode: sketch did not decode (capacity likely exceeded)")
