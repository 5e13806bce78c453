package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidSpec(t *testing.T, s *Specification, err error, wantD int) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, wantD, s.D)
	b := s.BranchingFactor()
	for _, row := range s.Grammar {
		assert.Len(t, row, b)
	}
	for _, row := range s.TransitionMats {
		for _, m := range row {
			assert.True(t, m.IsColumnAffine(DefaultEpsilon))
		}
	}
}

func TestMortonD(t *testing.T) {
	s, err := MortonD(2, 2)
	assertValidSpec(t, s, err, 2)
	assert.Equal(t, 1, s.NumStates())
	assert.Equal(t, 4, s.BranchingFactor())
}

func TestPeanoD(t *testing.T) {
	s, err := PeanoD(2, 3)
	assertValidSpec(t, s, err, 2)
	assert.Equal(t, 2, s.NumStates())
	assert.Equal(t, 9, s.BranchingFactor())
}

func TestHilbert2D(t *testing.T) {
	s, err := Hilbert2D()
	assertValidSpec(t, s, err, 2)
	assert.Equal(t, 4, s.NumStates())
	assert.Equal(t, 4, s.BranchingFactor())

	// Every state's grammar must only reference valid state indices.
	for _, row := range s.Grammar {
		for _, st := range row {
			assert.True(t, st >= 0 && st < 4)
		}
	}
}

func TestHilbert3D(t *testing.T) {
	s, err := Hilbert3D()
	assertValidSpec(t, s, err, 3)
	assert.Equal(t, 8, s.NumStates())
	assert.Equal(t, 8, s.BranchingFactor())
}

func TestSierpinskiD(t *testing.T) {
	s, err := SierpinskiD(2)
	assertValidSpec(t, s, err, 2)
	assert.Equal(t, 3, s.BranchingFactor())

	s3, err := SierpinskiD(3)
	assertValidSpec(t, s3, err, 3)
	assert.Equal(t, 4, s3.BranchingFactor())
}

func TestBetaOmegaCurve(t *testing.T) {
	s, err := BetaOmegaCurve()
	assertValidSpec(t, s, err, 2)
	assert.Equal(t, 2, s.NumStates())
}

func TestGosperCurve(t *testing.T) {
	s, err := GosperCurve()
	assertValidSpec(t, s, err, 2)
	assert.Equal(t, 7, s.BranchingFactor())
}

func TestCustomCurve1(t *testing.T) {
	s, err := CustomCurve1()
	assertValidSpec(t, s, err, 2)
}

func TestGrammarRowLengthRejected(t *testing.T) {
	root := unitCubeCorners(2)
	grammar := [][]int{{0, 0}, {0, 0, 0}}
	_, err := New(2, root, grammar, nil)
	assert.ErrorIs(t, err, ErrGrammarRowLength)
}

func TestEmptyGrammarRejected(t *testing.T) {
	root := unitCubeCorners(2)
	_, err := New(2, root, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyGrammar)
}
