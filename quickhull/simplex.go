package quickhull

import (
	"math/bits"
	"sort"
	"strconv"
	"strings"

	"github.com/sfclab/sfclab/natset"
	"github.com/sfclab/sfclab/subspace"
)

// initializeSimplex picks an initial d+1 affinely independent vertex set,
// builds the full initial face lattice over it (every non-empty subset of
// size 1..d), computes outward normals for the d+1 facets, and assigns every
// remaining point to the first facet that sees it.
func (qh *quickHull) initializeSimplex() error {
	n := qh.pts.Cols()
	basis := subspace.New(qh.d, qh.eps)

	simplexVerts := []int{0}
	base, err := qh.pts.Column(0)
	if err != nil {
		return err
	}

	for i := 1; i < n && len(simplexVerts) < qh.d+1; i++ {
		col, err := qh.pts.Column(i)
		if err != nil {
			return err
		}
		diff := make([]float64, qh.d)
		for k := range diff {
			diff[k] = col[k] - base[k]
		}
		added, err := basis.TryAdd(diff)
		if err != nil {
			return err
		}
		if added {
			simplexVerts = append(simplexVerts, i)
		}
	}
	if len(simplexVerts) < qh.d+1 {
		return ErrDegenerate
	}

	inSimplex := make(map[int]bool, len(simplexVerts))
	for _, v := range simplexVerts {
		inSimplex[v] = true
	}
	for i := 0; i < n; i++ {
		if !inSimplex[i] {
			qh.unprocessed = append(qh.unprocessed, i)
		}
	}

	qh.innerPoint = make([]float64, qh.d)
	for _, v := range simplexVerts {
		col, err := qh.pts.Column(v)
		if err != nil {
			return err
		}
		for k := range col {
			qh.innerPoint[k] += col[k] / float64(len(simplexVerts))
		}
	}

	faceIdxBySet := map[string]int{}
	for _, v := range simplexVerts {
		idx := qh.addArena(newFaceInfo(0, natset.FromElements(uint(v))))
		faceIdxBySet[setKey([]int{v})] = idx
	}

	for size := 2; size <= qh.d; size++ {
		for _, subset := range subsetsOfSize(simplexVerts, size) {
			vs := natset.New()
			for _, e := range subset {
				vs.Insert(uint(e))
			}
			idx := qh.addArena(newFaceInfo(size-1, vs))
			faceIdxBySet[setKey(subset)] = idx
			for _, omit := range subset {
				child := removeElem(subset, omit)
				if cIdx, ok := faceIdxBySet[setKey(child)]; ok {
					qh.arena[idx].children[cIdx] = struct{}{}
					qh.arena[cIdx].parents[idx] = struct{}{}
				}
			}
		}
	}

	for _, subset := range subsetsOfSize(simplexVerts, qh.d) {
		idx := faceIdxBySet[setKey(subset)]
		qh.arena[idx].isFacet = true
		if err := qh.computeFacetGeometry(idx); err != nil {
			return err
		}
		qh.markFacet(idx)
		touched := map[int]bool{}
		qh.walkDescendants(idx, touched, func(d int) { qh.arena[d].numAncestorFacets++ })
	}

	for _, p := range qh.unprocessed {
		for _, fIdx := range qh.facetOrder {
			if !qh.liveFacets[fIdx] {
				continue
			}
			if qh.signedDistance(qh.arena[fIdx], p) > qh.eps {
				qh.arena[fIdx].outsideSet = append(qh.arena[fIdx].outsideSet, p)
				break
			}
		}
	}

	qh.queue = append(qh.queue, qh.facetOrder...)
	return nil
}

// subsetsOfSize enumerates every subset of elems with exactly size members,
// in a stable order derived from increasing bitmask value. len(elems) is
// always small (d+1, the simplex vertex count), so a bitmask scan is simplest.
func subsetsOfSize(elems []int, size int) [][]int {
	n := len(elems)
	var out [][]int
	for mask := 1; mask < (1 << n); mask++ {
		if bits.OnesCount(uint(mask)) != size {
			continue
		}
		s := make([]int, 0, size)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				s = append(s, elems[i])
			}
		}
		out = append(out, s)
	}
	return out
}

// removeElem returns a copy of subset with x removed.
func removeElem(subset []int, x int) []int {
	out := make([]int, 0, len(subset)-1)
	for _, v := range subset {
		if v != x {
			out = append(out, v)
		}
	}
	return out
}

// setKey builds a canonical lookup key for a set of vertex indices.
func setKey(s []int) string {
	cp := append([]int(nil), s...)
	sort.Ints(cp)
	parts := make([]string, len(cp))
	for i, v := range cp {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
