package decode

import (
	"testing"

	"github.com/perlin-network/minisketch-go/gf64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// powerSums builds the expanded (2n) power-sum sequence of a small set
// directly, bypassing the sketch package, so Berlekamp–Massey can be
// exercised in isolation (spec.md §8 concrete scenario 5).
func powerSums(items []uint64, count int) []gf64.Element {
	out := make([]gf64.Element, count)
	for i := range out {
		var sum gf64.Element
		for _, item := range items {
			sum = gf64.Add(sum, gf64.Exp(gf64.Element(item), uint64(i+1)))
		}
		out[i] = sum
	}
	return out
}

func TestBerlekampMasseyRecoversDegreeAndRoots(t *testing.T) {
	items := []uint64{5000, 3000, 2000}
	s := powerSums(items, 2*len(items))

	loc := BerlekampMassey(s)
	assert.Equal(t, len(items), loc.Degree())
	assert.Equal(t, gf64.One, loc.Coeff(loc.Degree()))

	roots, err := FindRoots(loc)
	require.NoError(t, err)
	assert.ElementsMatch(t, items, roots)
}

func TestBerlekampMasseyOnEmptySequenceIsTrivial(t *testing.T) {
	s := make([]gf64.Element, 6)
	loc := BerlekampMassey(s)
	assert.Equal(t, 0, loc.Degree())
}
