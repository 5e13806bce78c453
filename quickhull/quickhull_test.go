package quickhull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfclab/sfclab/pointmat"
	"github.com/sfclab/sfclab/polytope"
	"github.com/sfclab/sfclab/subspace"
)

// TestBuildUnitSquare matches the concrete seed scenario: 4 vertices,
// 4 edges, 1 interior face for the unit square.
func TestBuildUnitSquare(t *testing.T) {
	points, err := pointmat.FromColumns([][]float64{
		{0, 0}, {1, 0}, {0, 1}, {1, 1},
	})
	require.NoError(t, err)

	poly, err := Build(points)
	require.NoError(t, err)

	verts, err := poly.Faces(0)
	require.NoError(t, err)
	edges, err := poly.Faces(1)
	require.NoError(t, err)
	interior, err := poly.Faces(2)
	require.NoError(t, err)

	assert.Len(t, verts, 4)
	assert.Len(t, edges, 4)
	assert.Len(t, interior, 1)
}

// TestBuildUnitCube matches the concrete seed scenario: 8 vertices,
// 12 edges, 6 (non-simplicial, 4-vertex) facets, 1 interior face.
func TestBuildUnitCube(t *testing.T) {
	var cols [][]float64
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{0, 1} {
			for _, z := range []float64{0, 1} {
				cols = append(cols, []float64{x, y, z})
			}
		}
	}
	points, err := pointmat.FromColumns(cols)
	require.NoError(t, err)

	poly, err := Build(points)
	require.NoError(t, err)

	verts, err := poly.Faces(0)
	require.NoError(t, err)
	edges, err := poly.Faces(1)
	require.NoError(t, err)
	facets, err := poly.Faces(2)
	require.NoError(t, err)
	interior, err := poly.Faces(3)
	require.NoError(t, err)

	assert.Len(t, verts, 8)
	assert.Len(t, edges, 12)
	assert.Len(t, facets, 6)
	assert.Len(t, interior, 1)
	for _, f := range facets {
		assert.Equal(t, 4, f.Vertices.Size())
	}
}

func TestBuildInsufficientPoints(t *testing.T) {
	points, err := pointmat.FromColumns([][]float64{{0, 0}, {1, 0}})
	require.NoError(t, err)

	_, err = Build(points)
	assert.ErrorIs(t, err, ErrInsufficientPoints)
}

// facetNormalOffset recomputes a facet's outward normal and offset directly
// from its vertex set and the original point matrix, independent of
// quickhull's own internal faceInfo.normal/offset bookkeeping, so that
// TestSignedDistanceWithinEpsilon is checking the geometry itself rather
// than echoing back whatever the implementation already computed.
func facetNormalOffset(t *testing.T, points *pointmat.Dense, f *polytope.Face, centroid []float64) ([]float64, float64) {
	t.Helper()
	d := points.Rows()
	verts := f.Vertices.Elements()
	require.GreaterOrEqual(t, len(verts), d)

	basis := subspace.New(d, DefaultEpsilon)
	base, err := points.Column(int(verts[0]))
	require.NoError(t, err)
	for _, v := range verts[1:] {
		col, err := points.Column(int(v))
		require.NoError(t, err)
		diff := make([]float64, d)
		for i := range diff {
			diff[i] = col[i] - base[i]
		}
		_, err = basis.TryAdd(diff)
		require.NoError(t, err)
	}
	require.Equal(t, d-1, basis.Dim())

	normal, err := basis.OrthogonalComplement()
	require.NoError(t, err)

	toCentroid := make([]float64, d)
	for i := range base {
		toCentroid[i] = centroid[i] - base[i]
	}
	if dot(normal, toCentroid) > 0 {
		for i := range normal {
			normal[i] = -normal[i]
		}
	}
	return normal, dot(normal, base)
}

func centroidOf(t *testing.T, points *pointmat.Dense) []float64 {
	t.Helper()
	d, n := points.Rows(), points.Cols()
	c := make([]float64, d)
	for j := 0; j < n; j++ {
		col, err := points.Column(j)
		require.NoError(t, err)
		for i := range c {
			c[i] += col[i] / float64(n)
		}
	}
	return c
}

// TestSignedDistanceWithinEpsilon checks that for every facet F and every
// input point p, signed_distance(p, F) <= eps, by recomputing each facet's
// normal/offset from its own vertex set (see facetNormalOffset) rather than
// trusting the value quickhull assigned it.
func TestSignedDistanceWithinEpsilon(t *testing.T) {
	cases := []struct {
		name     string
		points   [][]float64
		facetDim int
	}{
		{
			name:     "unit square",
			points:   [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			facetDim: 1,
		},
		{
			name: "unit cube",
			points: func() [][]float64 {
				var cols [][]float64
				for _, x := range []float64{0, 1} {
					for _, y := range []float64{0, 1} {
						for _, z := range []float64{0, 1} {
							cols = append(cols, []float64{x, y, z})
						}
					}
				}
				return cols
			}(),
			facetDim: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			points, err := pointmat.FromColumns(tc.points)
			require.NoError(t, err)

			poly, err := Build(points)
			require.NoError(t, err)

			facets, err := poly.Faces(tc.facetDim)
			require.NoError(t, err)
			require.NotEmpty(t, facets)

			centroid := centroidOf(t, points)
			for _, f := range facets {
				normal, offset := facetNormalOffset(t, points, f, centroid)
				for j := 0; j < points.Cols(); j++ {
					col, err := points.Column(j)
					require.NoError(t, err)
					signedDist := dot(normal, col) - offset
					assert.LessOrEqual(t, signedDist, DefaultEpsilon,
						"facet %v point %d: signed distance %g exceeds eps", f.Vertices, j, signedDist)
				}
			}
		})
	}
}
