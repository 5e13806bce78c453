package quickhull

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sfclab/sfclab/subspace"
)

// vertexIndicesOf descends through children to the 0-faces beneath idx,
// returning the (deduplicated) point column indices of those vertices.
// Complexity: O(#descendants).
func (qh *quickHull) vertexIndicesOf(idx int) []int {
	seen := map[int]bool{}
	var out []int
	var dfs func(int)
	dfs = func(cur int) {
		f := qh.arena[cur]
		if f.dim == 0 {
			v, _ := f.vertices.AnyElement()
			vi := int(v)
			if !seen[vi] {
				seen[vi] = true
				out = append(out, vi)
			}
			return
		}
		for c := range f.children {
			dfs(c)
		}
	}
	dfs(idx)
	return out
}

func dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// computeFacetGeometry derives the outward normal and offset of the facet
// at arena index idx from the affine hull of its vertices, oriented away
// from the simplex's barycentre (innerPoint).
// Complexity: O(d^3) dominated by the subspace QR factorization.
func (qh *quickHull) computeFacetGeometry(idx int) error {
	verts := qh.vertexIndicesOf(idx)
	if len(verts) < qh.d {
		return ErrDegenerate
	}

	basis := subspace.New(qh.d, qh.eps)
	base, err := qh.pts.Column(verts[0])
	if err != nil {
		return err
	}
	for _, v := range verts[1:] {
		col, err := qh.pts.Column(v)
		if err != nil {
			return err
		}
		diff := make([]float64, qh.d)
		for k := range diff {
			diff[k] = col[k] - base[k]
		}
		if _, err := basis.TryAdd(diff); err != nil {
			return err
		}
	}
	if basis.Dim() != qh.d-1 {
		return ErrDegenerate
	}

	normal, err := basis.OrthogonalComplement()
	if err != nil {
		return err
	}

	toInner := make([]float64, qh.d)
	for i := range base {
		toInner[i] = base[i] - qh.innerPoint[i]
	}
	if dot(normal, toInner) < 0 {
		for i := range normal {
			normal[i] = -normal[i]
		}
	}

	qh.arena[idx].normal = normal
	qh.arena[idx].offset = dot(normal, base)
	return nil
}

// signedDistance evaluates n·p - offset for the facet's hyperplane.
// Complexity: O(d).
func (qh *quickHull) signedDistance(f *faceInfo, pointIdx int) float64 {
	col, _ := qh.pts.Column(pointIdx)
	return dot(f.normal, col) - f.offset
}
