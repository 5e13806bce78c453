package quickhull

import (
	"github.com/sfclab/sfclab/natset"
	"github.com/sfclab/sfclab/polytope"
)

// propagateVertexLabels fills in the vertex sets of every non-simplicial
// face, which are left empty during the main loop because they are only
// knowable once the algorithm terminates: for each 0-face, climb the
// parent chain, inserting the vertex's index into every ancestor's set.
// Complexity: O(sum over 0-faces of #ancestors).
func (qh *quickHull) propagateVertexLabels() {
	for idx, f := range qh.arena {
		if f.deleted || f.dim != 0 {
			continue
		}
		vRaw, _ := f.vertices.AnyElement()

		visited := map[int]bool{}
		var climb func(int)
		climb = func(cur int) {
			for p := range qh.arena[cur].parents {
				if !visited[p] {
					visited[p] = true
					qh.arena[p].vertices.Insert(vRaw)
					climb(p)
				}
			}
		}
		climb(idx)
	}
}

// export assigns each live face a ConvexPolytope index, relinks
// parent/child references, synthesises the top-level interior d-face, and
// canonicalises the result via ConvexPolytope.Sort.
func (qh *quickHull) export() (*polytope.ConvexPolytope, error) {
	qh.propagateVertexLabels()

	poly := polytope.New(qh.d)
	type loc struct{ dim, idx int }
	mapping := make(map[int]loc, len(qh.arena))

	for dim := 0; dim <= qh.d-1; dim++ {
		for arenaIdx, f := range qh.arena {
			if f.deleted || f.dim != dim {
				continue
			}
			polyIdx, err := poly.AddFace(&polytope.Face{Dim: dim, Vertices: f.vertices})
			if err != nil {
				return nil, err
			}
			mapping[arenaIdx] = loc{dim, polyIdx}
		}
	}

	for arenaIdx, f := range qh.arena {
		if f.deleted || f.dim > qh.d-1 {
			continue
		}
		l := mapping[arenaIdx]
		faces, err := poly.Faces(l.dim)
		if err != nil {
			return nil, err
		}
		pf := faces[l.idx]
		for p := range f.parents {
			if pl, ok := mapping[p]; ok {
				pf.ParentIndexes = append(pf.ParentIndexes, pl.idx)
			}
		}
		for c := range f.children {
			if cl, ok := mapping[c]; ok {
				pf.ChildIndexes = append(pf.ChildIndexes, cl.idx)
			}
		}
	}

	facetFaces, err := poly.Faces(qh.d - 1)
	if err != nil {
		return nil, err
	}
	interiorVerts := natset.New()
	childIdxs := make([]int, len(facetFaces))
	for i, ff := range facetFaces {
		childIdxs[i] = i
		for _, v := range ff.Vertices.Elements() {
			interiorVerts.Insert(v)
		}
	}
	interiorIdx, err := poly.AddFace(&polytope.Face{
		Dim:          qh.d,
		Vertices:     interiorVerts,
		ChildIndexes: childIdxs,
	})
	if err != nil {
		return nil, err
	}
	for _, ff := range facetFaces {
		ff.ParentIndexes = append(ff.ParentIndexes, interiorIdx)
	}

	if err := poly.Sort(); err != nil {
		return nil, err
	}
	return poly, nil
}
