package curveinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfclab/sfclab/curve"
)

func TestAnalyzeMortonD(t *testing.T) {
	spec, err := curve.MortonD(2, 2)
	require.NoError(t, err)

	a, err := Analyze(spec)
	require.NoError(t, err)

	assert.Contains(t, a.Reachable, 0)
	assert.Len(t, a.Reachable, 1)
	require.Contains(t, a.PolytopesByState, 0)

	verts, err := a.PolytopesByState[0].Faces(0)
	require.NoError(t, err)
	assert.Len(t, verts, 4)
}

func TestAnalyzeHilbert2D(t *testing.T) {
	spec, err := curve.Hilbert2D()
	require.NoError(t, err)

	a, err := Analyze(spec)
	require.NoError(t, err)

	assert.False(t, a.OpponentInconsistent)
	for _, s := range []int{0, 1, 2, 3} {
		assert.Contains(t, a.Reachable, s)
	}
	assert.True(t, a.HasPalindrome, "Hilbert-2D's opponent table must satisfy opponent[j] = b-1-j")
}

// TestAnalyzePeano2D checks the other curve required to have
// has_palindrome == true: the base-3 Peano curve as curve.PeanoD(2, 3)
// builds it, with its 2-state (identity / point-reflected) meander
// orientation model.
func TestAnalyzePeano2D(t *testing.T) {
	spec, err := curve.PeanoD(2, 3)
	require.NoError(t, err)

	a, err := Analyze(spec)
	require.NoError(t, err)

	assert.False(t, a.OpponentInconsistent)
	assert.True(t, a.HasPalindrome, "Peano-2D(k=3)'s opponent table must satisfy opponent[j] = b-1-j")
}

func TestAnalyzeSierpinski2D(t *testing.T) {
	spec, err := curve.SierpinskiD(2)
	require.NoError(t, err)

	a, err := Analyze(spec)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, a.Reachable)
}
