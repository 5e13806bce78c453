package quickhull

import "github.com/sfclab/sfclab/natset"

// visibilityBFS traverses the facet-adjacency graph (facets connected
// through a shared ridge: a common (d-2)-dim child) starting from startFacet,
// classifying every reached facet as "above" (strictly sees the point),
// "inside" (coplanar within epsilon) or skipped (strictly below, not
// expanded through).
// Complexity: O(#facets reached).
func (qh *quickHull) visibilityBFS(pointIdx, startFacet int) (above, inside map[int]bool) {
	above = map[int]bool{}
	inside = map[int]bool{}
	visited := map[int]bool{startFacet: true}
	queue := []int{startFacet}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		f := qh.arena[idx]
		sd := qh.signedDistance(f, pointIdx)

		switch {
		case sd > qh.eps:
			above[idx] = true
			qh.enqueueAdjacentFacets(idx, visited, &queue)
		case sd >= -qh.eps:
			inside[idx] = true
			qh.enqueueAdjacentFacets(idx, visited, &queue)
		default:
			// strictly below: do not expand through it.
		}
	}
	return above, inside
}

// enqueueAdjacentFacets appends every live facet sharing a ridge with fIdx
// that has not yet been visited.
func (qh *quickHull) enqueueAdjacentFacets(fIdx int, visited map[int]bool, queue *[]int) {
	f := qh.arena[fIdx]
	for c := range f.children {
		for p := range qh.arena[c].parents {
			if p == fIdx || visited[p] {
				continue
			}
			if qh.arena[p].isFacet && qh.liveFacets[p] {
				visited[p] = true
				*queue = append(*queue, p)
			}
		}
	}
}

// walkDescendants DFS-descends through children below rootIdx, visiting
// every distinct descendant exactly once and applying apply to it. rootIdx
// itself is not visited.
func (qh *quickHull) walkDescendants(rootIdx int, touched map[int]bool, apply func(int)) {
	var dfs func(int)
	dfs = func(idx int) {
		for c := range qh.arena[idx].children {
			if !touched[c] {
				touched[c] = true
				apply(c)
				dfs(c)
			}
		}
	}
	dfs(rootIdx)
}

// addPoint implements the main per-point update when promoting a point
// outside the current hull: it removes every face entirely on the visible
// side of the promoted point, grows a
// new vertex/edge/.../facet chain connecting the point to the visible
// boundary, and rebuilds bookkeeping (numAncestorFacets, p, z) for the
// surviving lattice.
func (qh *quickHull) addPoint(pointIdx int, startFacet int) error {
	above, inside := qh.visibilityBFS(pointIdx, startFacet)

	touchedAbove := map[int]bool{}
	for f := range above {
		qh.walkDescendants(f, touchedAbove, func(idx int) { qh.arena[idx].p++ })
	}
	touchedInside := map[int]bool{}
	for f := range inside {
		qh.walkDescendants(f, touchedInside, func(idx int) { qh.arena[idx].z++ })
	}

	// Step 3: vertex corner + collect visible vertices.
	newVertexIdx := qh.addArena(newFaceInfo(0, natset.FromElements(uint(pointIdx))))

	var connectFaces []int
	for idx := range touchedAbove {
		f := qh.arena[idx]
		if f.dim == 0 && f.p > 0 {
			f.facesToConnect[newVertexIdx] = struct{}{}
			connectFaces = append(connectFaces, idx)
		}
	}

	// Step 4: dimension-ascending connect, k = 1..d-1.
	for k := 1; k <= qh.d-1; k++ {
		var next []int
		for _, fIdx := range connectFaces {
			f := qh.arena[fIdx]
			childSet := map[int]struct{}{fIdx: {}}
			for c := range f.facesToConnect {
				childSet[c] = struct{}{}
			}

			newFace := newFaceInfo(k, natset.New())
			newIdx := qh.addArena(newFace)
			for c := range childSet {
				newFace.children[c] = struct{}{}
				qh.arena[c].parents[newIdx] = struct{}{}
			}
			next = append(next, newIdx)

			for pIdx := range f.parents {
				parent := qh.arena[pIdx]
				switch classify(parent) {
				case statusConnect:
					parent.facesToConnect[newIdx] = struct{}{}
				case statusExtend:
					parent.children[newIdx] = struct{}{}
					newFace.parents[pIdx] = struct{}{}
				case statusRemove, statusKeep:
					// ignored: the parent either vanishes or survives untouched.
				}
			}
		}
		connectFaces = next
	}

	// Step 5: the faces produced by the last ascent (dim d-1) are the new facets.
	newFacets := connectFaces
	for _, idx := range newFacets {
		f := qh.arena[idx]
		f.isFacet = true
		if err := qh.computeFacetGeometry(idx); err != nil {
			return err
		}
		touched := map[int]bool{}
		qh.walkDescendants(idx, touched, func(d int) { qh.arena[d].numAncestorFacets++ })
		qh.markFacet(idx)
	}

	// Step 6: mark REMOVE faces, redistribute outside sets, sweep.
	for idx := range touchedAbove {
		if classify(qh.arena[idx]) == statusRemove {
			qh.arena[idx].shouldRemove = true
		}
	}
	for fIdx := range above {
		facet := qh.arena[fIdx]
		for _, pt := range facet.outsideSet {
			if pt == pointIdx {
				continue
			}
			if qh.redistributeOutsidePoint(pt, newFacets) {
				continue
			}
			for iIdx := range inside {
				insideFacet := qh.arena[iIdx]
				if insideFacet.isFacet && qh.signedDistance(insideFacet, pt) > qh.eps {
					insideFacet.outsideSet = append(insideFacet.outsideSet, pt)
					break
				}
			}
		}
		delete(qh.liveFacets, fIdx)
		facet.deleted = true
	}

	touchedDec := map[int]bool{}
	for fIdx := range above {
		qh.walkDescendants(fIdx, touchedDec, func(d int) {
			qh.arena[d].numAncestorFacets--
			qh.arena[d].p--
		})
	}
	for idx := range touchedAbove {
		if qh.arena[idx].shouldRemove && !qh.arena[idx].deleted {
			qh.deleteFaceRecursively(idx)
		}
	}

	// Step 7: inside bookkeeping for cross-ridges between new and old facets.
	for idx := range touchedInside {
		f := qh.arena[idx]
		if f.z == 0 {
			f.numAncestorFacets++
		} else {
			f.z--
		}
	}

	// Step 8: clear per-step bookkeeping.
	for idx := range touchedAbove {
		qh.arena[idx].facesToConnect = map[int]struct{}{}
	}
	for idx := range touchedInside {
		qh.arena[idx].facesToConnect = map[int]struct{}{}
	}

	qh.queue = append(qh.queue, newFacets...)
	return nil
}

// redistributeOutsidePoint assigns pt to the first new facet that sees it.
func (qh *quickHull) redistributeOutsidePoint(pt int, newFacets []int) bool {
	for _, nf := range newFacets {
		if qh.signedDistance(qh.arena[nf], pt) > qh.eps {
			qh.arena[nf].outsideSet = append(qh.arena[nf].outsideSet, pt)
			return true
		}
	}
	return false
}

// deleteFaceRecursively removes a REMOVE-classified face and cascades the
// deletion to any child left with no remaining live parent.
func (qh *quickHull) deleteFaceRecursively(idx int) {
	f := qh.arena[idx]
	if f.deleted {
		return
	}
	f.deleted = true
	delete(qh.liveFacets, idx)
	for c := range f.children {
		delete(qh.arena[c].parents, idx)
		if len(qh.arena[c].parents) == 0 {
			qh.deleteFaceRecursively(c)
		}
	}
}
