package polygf

import "errors"

var (
	// ErrZeroPolynomial is returned by Monic when asked to normalize the
	// zero polynomial, which has no leading coefficient to invert.
	ErrZeroPolynomial = errors.New("polygf: zero polynomial has no monic form")

	// ErrModulusNotMonic is returned by Mod and DivMod when the modulus
	// polynomial is not monic, violating their contract.
	ErrModulusNotMonic = errors.New("polygf: modulus must be monic")

	// ErrModulusZero is returned by Mod and DivMod when the modulus
	// polynomial is zero.
	ErrModulusZero = errors.New("polygf: modulus must be nonzero")
)
