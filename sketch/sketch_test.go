package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEmptySetIsAllZero(t *testing.T) {
	s := Encode(nil, 5)
	for _, c := range s {
		assert.Equal(t, uint64(0), c)
	}
}

func TestEncodeIsOnlineEquivalentToAccumulated(t *testing.T) {
	items := []uint64{1000, 2000, 3000, 4000}
	whole := Encode(items, 6)

	enc := NewEncoder(6)
	for _, item := range items {
		enc.Add(item)
	}
	assert.Equal(t, []uint64(whole), []uint64(enc.Sketch()))
}

func TestSelfReconciliationIsZero(t *testing.T) {
	items := []uint64{5000, 3000, 2000}
	a := Encode(items, 3)
	b := Encode(items, 3)

	combined, err := Combine(a, b)
	require.NoError(t, err)
	for _, c := range combined {
		assert.Equal(t, uint64(0), c)
	}
}

func TestCombineRejectsCapacityMismatch(t *testing.T) {
	a := Encode([]uint64{1}, 3)
	b := Encode([]uint64{1}, 4)
	_, err := Combine(a, b)
	require.ErrorIs(t, err, ErrCapacityMismatch)
}

func TestCombineIsElementwiseXor(t *testing.T) {
	a := Sketch{1, 2, 3}
	b := Sketch{4, 5, 6}
	out, err := Combine(a, b)
	require.NoError(t, err)
	assert.Equal(t, Sketch{1 ^ 4, 2 ^ 5, 3 ^ 6}, out)
}

func TestExpandDoublesLength(t *testing.T) {
	s := Encode([]uint64{42, 99}, 4)
	expanded := Expand(s)
	assert.Len(t, expanded, 8)
	for j, v := range s {
		assert.Equal(t, v, expanded[2*j])
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	s := Sketch{1, 2, 3, 0xFFFFFFFFFFFFFFFF}
	buf := Marshal(s)
	require.Len(t, buf, 32)

	got, err := Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestUnmarshalRejectsBadLength(t *testing.T) {
	_, err := Unmarshal([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidWireLength)
}

func TestMergeRejectsCapacityMismatch(t *testing.T) {
	a := NewEncoder(3)
	b := NewEncoder(4)
	err := a.Merge(b)
	require.ErrorIs(t, err, ErrCapacityMismatch)
}
