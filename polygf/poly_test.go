package polygf

import (
	"math/rand/v2"
	"testing"

	"github.com/perlin-network/minisketch-go/gf64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randPoly(r *rand.Rand, degree int) Poly {
	c := make([]gf64.Element, degree+1)
	for i := range c {
		c[i] = gf64.Element(r.Uint64())
	}
	if c[degree].IsZero() {
		c[degree] = gf64.One
	}
	return New(c)
}

func TestNormalizeTrimsTrailingZeros(t *testing.T) {
	p := New([]gf64.Element{1, 2, 0, 0})
	assert.Equal(t, 1, p.Degree())
}

func TestZeroPolynomialDegreeIsMinusOne(t *testing.T) {
	assert.Equal(t, -1, Zero().Degree())
	assert.True(t, Zero().IsZero())
}

func TestMonicFailsOnZero(t *testing.T) {
	_, err := Zero().Monic()
	require.ErrorIs(t, err, ErrZeroPolynomial)
}

func TestMonicProducesLeadingOne(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	for i := 0; i < 64; i++ {
		p := randPoly(r, 1+r.IntN(5))
		m, err := p.Monic()
		require.NoError(t, err)
		assert.Equal(t, gf64.One, m.Coeff(m.Degree()))
		assert.Equal(t, p.Degree(), m.Degree())
	}
}

func TestSquareMatchesMultiplyBySelf(t *testing.T) {
	r := rand.New(rand.NewPCG(2, 2))
	for i := 0; i < 32; i++ {
		p := randPoly(r, r.IntN(6))
		sq := Square(p)
		mul := multiplyNaive(p, p)
		assert.Equal(t, mul.Coeffs(), sq.Coeffs())
	}
}

// multiplyNaive is a schoolbook polynomial multiply used only to check
// Square's spreading-map shortcut against the textbook definition.
func multiplyNaive(a, b Poly) Poly {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	out := make([]gf64.Element, a.Degree()+b.Degree()+1)
	for i := 0; i <= a.Degree(); i++ {
		for j := 0; j <= b.Degree(); j++ {
			out[i+j] = gf64.Add(out[i+j], gf64.Mul(a.Coeff(i), b.Coeff(j)))
		}
	}
	return New(out)
}

func TestDivModReconstructsVal(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 3))
	for i := 0; i < 64; i++ {
		mod, err := randPoly(r, 1+r.IntN(4)).Monic()
		require.NoError(t, err)
		val := randPoly(r, mod.Degree()+r.IntN(6))

		q, rem, err := DivMod(val, mod)
		require.NoError(t, err)
		assert.Less(t, rem.Degree(), mod.Degree())

		reconstructed := Add(multiplyNaive(q, mod), rem)
		assert.Equal(t, val.Coeffs(), reconstructed.Coeffs())
	}
}

func TestModRejectsNonMonicModulus(t *testing.T) {
	mod := New([]gf64.Element{1, 2})
	_, err := Mod(One(), mod)
	require.ErrorIs(t, err, ErrModulusNotMonic)
}

func TestModLeavesLowerDegreeValUnchanged(t *testing.T) {
	mod := New([]gf64.Element{7, 1})
	val := New([]gf64.Element{3})
	rem, err := Mod(val, mod)
	require.NoError(t, err)
	assert.Equal(t, val.Coeffs(), rem.Coeffs())
}

func TestGCDOfProductAndFactorIsFactor(t *testing.T) {
	a, err := New([]gf64.Element{5, 1}).Monic()
	require.NoError(t, err)
	b, err := New([]gf64.Element{9, 1}).Monic()
	require.NoError(t, err)
	product := multiplyNaive(a, b)

	g, err := GCD(product, a)
	require.NoError(t, err)
	assert.Equal(t, a.Coeffs(), g.Coeffs())
}

func TestGCDSharedFactorIsRecovered(t *testing.T) {
	shared, err := New([]gf64.Element{11, 1}).Monic()
	require.NoError(t, err)
	other1, err := New([]gf64.Element{3, 1}).Monic()
	require.NoError(t, err)
	other2, err := New([]gf64.Element{99, 1}).Monic()
	require.NoError(t, err)

	p := multiplyNaive(shared, other1)
	q := multiplyNaive(shared, other2)

	g, err := GCD(p, q)
	require.NoError(t, err)
	assert.Equal(t, shared.Coeffs(), g.Coeffs())
}
