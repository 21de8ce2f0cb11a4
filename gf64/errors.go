package gf64

import "errors"

// ErrZeroInverse is returned by Inv when asked to invert the zero element.
// Zero has no multiplicative inverse in any field; this is a caller error,
// not a decode failure.
var ErrZeroInverse = errors.New("gf64: cannot invert zero")
