package pointmat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := NewDense(0, 2)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestFromColumnsAndAt(t *testing.T) {
	m, err := FromColumns([][]float64{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestOutOfBounds(t *testing.T) {
	m, _ := NewDense(2, 2)
	_, err := m.At(5, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestMul(t *testing.T) {
	// parent square unit points, transition selects midpoint of first edge.
	parent, _ := FromColumns([][]float64{{0, 0}, {1, 0}})
	transition, _ := NewDense(2, 1)
	_ = transition.Set(0, 0, 0.5)
	_ = transition.Set(1, 0, 0.5)

	child, err := parent.Mul(transition)
	require.NoError(t, err)
	assert.Equal(t, 2, child.Rows())
	assert.Equal(t, 1, child.Cols())
	v0, _ := child.At(0, 0)
	v1, _ := child.At(1, 0)
	assert.Equal(t, 0.5, v0)
	assert.Equal(t, 0.0, v1)
}

func TestIsColumnAffine(t *testing.T) {
	m, _ := NewDense(2, 1)
	_ = m.Set(0, 0, 0.3)
	_ = m.Set(1, 0, 0.7)
	assert.True(t, m.IsColumnAffine(1e-9))

	_ = m.Set(1, 0, 0.6)
	assert.False(t, m.IsColumnAffine(1e-9))
}
