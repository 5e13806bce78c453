package multidim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultAndSet(t *testing.T) {
	a := New[int](2, -1)

	v, err := a.Get(3, 4)
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	require.NoError(t, a.Set(42, 3, 4))
	v, err = a.Get(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestContainsNotDefault(t *testing.T) {
	a := New[int](1, 0)
	ok, err := a.ContainsNotDefault(5)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, a.Set(0, 5)) // explicit write of the default value
	ok, err = a.ContainsNotDefault(5)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRankMismatch(t *testing.T) {
	a := New[int](2, 0)
	_, err := a.Get(1)
	assert.ErrorIs(t, err, ErrRankMismatch)
}

func TestGrowthExtendsDims(t *testing.T) {
	a := New[int](2, 0)
	require.NoError(t, a.Set(1, 0, 0))
	require.NoError(t, a.Set(1, 3, 2))
	assert.Equal(t, []int{4, 3}, a.Dims())
}

func TestEmitGoLiteral(t *testing.T) {
	a := New[int](2, 0)
	require.NoError(t, a.Set(1, 0, 0))
	require.NoError(t, a.Set(2, 0, 1))
	require.NoError(t, a.Set(3, 1, 0))
	require.NoError(t, a.Set(4, 1, 1))

	var sb strings.Builder
	require.NoError(t, a.EmitGoLiteral(&sb, "tbl", "int"))
	out := sb.String()
	assert.Contains(t, out, "var tbl")
	assert.Contains(t, out, "{{1, 2}, {3, 4}}")
}
