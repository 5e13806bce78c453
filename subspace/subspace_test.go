package subspace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryAddIndependentAndDependent(t *testing.T) {
	b := New(3, DefaultEpsilon)

	added, err := b.TryAdd([]float64{1, 0, 0})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = b.TryAdd([]float64{2, 0, 0}) // parallel, dependent
	require.NoError(t, err)
	assert.False(t, added)

	added, err = b.TryAdd([]float64{0, 1, 0})
	require.NoError(t, err)
	assert.True(t, added)

	assert.Equal(t, 2, b.Dim())
}

func TestInSpan(t *testing.T) {
	b := New(3, DefaultEpsilon)
	_, _ = b.TryAdd([]float64{1, 0, 0})
	_, _ = b.TryAdd([]float64{0, 1, 0})

	in, err := b.InSpan([]float64{3, 4, 0})
	require.NoError(t, err)
	assert.True(t, in)

	in, err = b.InSpan([]float64{0, 0, 1})
	require.NoError(t, err)
	assert.False(t, in)
}

func TestOrthogonalComplement(t *testing.T) {
	b := New(3, DefaultEpsilon)
	_, _ = b.TryAdd([]float64{1, 0, 0})
	_, _ = b.TryAdd([]float64{0, 1, 0})

	n, err := b.OrthogonalComplement()
	require.NoError(t, err)

	// n must be orthogonal to both basis vectors and unit length.
	assert.InDelta(t, 0, n[0], 1e-9)
	assert.InDelta(t, 0, n[1], 1e-9)
	assert.InDelta(t, 1, math.Abs(n[2]), 1e-9)
}

func TestOrthogonalComplementFullErrors(t *testing.T) {
	b := New(2, DefaultEpsilon)
	_, _ = b.TryAdd([]float64{1, 0})
	_, _ = b.TryAdd([]float64{0, 1})

	_, err := b.OrthogonalComplement()
	assert.ErrorIs(t, err, ErrFull)
}
