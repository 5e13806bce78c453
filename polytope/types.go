// Package polytope defines ConvexPolytope and Face, the face-lattice output
// of quickhull.
//
// A ConvexPolytope holds, for each dimension 0…d, the ordered list of faces
// of that dimension. Each face records its vertex set (as a natset.NatSet)
// and the indices of its parent faces (one dimension up) and child faces
// (one dimension down). Once built by quickhull, a ConvexPolytope is
// canonicalised by Sort and never mutated again. It carries no mutex, since
// a polytope is built once, synchronously, by a single QuickHull run (see
// the core's concurrency model: no component holds process-wide state).
package polytope

import (
	"errors"
	"sort"

	"github.com/sfclab/sfclab/natset"
)

// Sentinel errors for polytope operations.
var (
	// ErrDimOutOfRange indicates a dimension argument outside [0, d].
	ErrDimOutOfRange = errors.New("polytope: dimension out of range")

	// ErrFaceIndexOutOfRange indicates a face index outside the bounds of
	// faces[dim].
	ErrFaceIndexOutOfRange = errors.New("polytope: face index out of range")

	// ErrAlreadySorted indicates a mutating call (AddFace) after Sort has run.
	ErrAlreadySorted = errors.New("polytope: polytope already sorted, no further mutation allowed")
)

// Face is one face of a ConvexPolytope: its vertex set and the indices of
// its parents (dim+1 faces containing it) and children (dim-1 faces it
// contains).
//
// Invariant: for every parent/child link, child.Vertices is a subset of
// parent.Vertices (and, for simplicial regions of the lattice, exactly one
// vertex smaller).
type Face struct {
	Dim           int
	Vertices      *natset.NatSet
	ParentIndexes []int // indices into the owning ConvexPolytope.faces[Dim+1]
	ChildIndexes  []int // indices into the owning ConvexPolytope.faces[Dim-1]
}

// ConvexPolytope is a vector of vectors of Face, indexed by dimension 0…d.
type ConvexPolytope struct {
	ambientDim int
	faces      [][]*Face // faces[k] holds every face of dimension k
	sorted     bool
}

// New creates an empty ConvexPolytope for a polytope embedded in R^ambientDim
// (so faces range over dimensions 0…ambientDim, ambientDim itself being the
// single synthetic interior face added by quickhull's export step).
func New(ambientDim int) *ConvexPolytope {
	p := &ConvexPolytope{ambientDim: ambientDim}
	p.faces = make([][]*Face, ambientDim+1)
	for k := range p.faces {
		p.faces[k] = nil
	}
	return p
}

// AmbientDim returns d, the embedding dimension.
func (p *ConvexPolytope) AmbientDim() int { return p.ambientDim }

// Faces returns the ordered faces of the given dimension. The returned slice
// must not be mutated by the caller.
func (p *ConvexPolytope) Faces(dim int) ([]*Face, error) {
	if dim < 0 || dim > p.ambientDim {
		return nil, ErrDimOutOfRange
	}
	return p.faces[dim], nil
}

// AddFace appends f to dimension f.Dim's face list and returns its index.
// Returns ErrAlreadySorted once Sort has run.
// Complexity: O(1) amortized.
func (p *ConvexPolytope) AddFace(f *Face) (int, error) {
	if p.sorted {
		return 0, ErrAlreadySorted
	}
	if f.Dim < 0 || f.Dim > p.ambientDim {
		return 0, ErrDimOutOfRange
	}
	idx := len(p.faces[f.Dim])
	p.faces[f.Dim] = append(p.faces[f.Dim], f)
	return idx, nil
}

// FindFace returns the index of the face of the given dimension whose
// vertex set equals vs, or (0, false) if none exists.
// Complexity: O(#faces at that dimension).
func (p *ConvexPolytope) FindFace(dim int, vs *natset.NatSet) (int, bool) {
	if dim < 0 || dim > p.ambientDim {
		return 0, false
	}
	for i, f := range p.faces[dim] {
		if f.Vertices.Equal(vs) {
			return i, true
		}
	}
	return 0, false
}

// Sort canonicalises the lattice: within each dimension, faces are ordered
// by natset.NatSet.CanonicalKey (min of the vertex set and its reflection
// about the highest vertex index across the whole polytope), with ties
// broken by the vertex set itself. Parent/child index lists are rewritten
// to track the new positions. Sort is idempotent but further AddFace calls
// are rejected afterward.
// Complexity: O(F log F) for F total faces, plus O(F) for relinking.
func (p *ConvexPolytope) Sort() error {
	maxIndex := p.maxVertexIndex()

	// oldToNew[dim][oldIndex] = newIndex
	oldToNew := make([][]int, len(p.faces))
	for dim, faces := range p.faces {
		order := make([]int, len(faces))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			fa, fb := faces[order[a]], faces[order[b]]
			ka, kb := fa.Vertices.CanonicalKey(maxIndex), fb.Vertices.CanonicalKey(maxIndex)
			if c := ka.Compare(kb); c != 0 {
				return c < 0
			}
			return fa.Vertices.Compare(fb.Vertices) < 0
		})

		newFaces := make([]*Face, len(faces))
		mapping := make([]int, len(faces))
		for newIdx, oldIdx := range order {
			newFaces[newIdx] = faces[oldIdx]
			mapping[oldIdx] = newIdx
		}
		p.faces[dim] = newFaces
		oldToNew[dim] = mapping
	}

	for dim, faces := range p.faces {
		for _, f := range faces {
			if dim+1 < len(oldToNew) {
				remap(f.ParentIndexes, oldToNew[dim+1])
			}
			if dim-1 >= 0 {
				remap(f.ChildIndexes, oldToNew[dim-1])
			}
		}
	}

	p.sorted = true
	return nil
}

func remap(indexes []int, mapping []int) {
	for i, old := range indexes {
		indexes[i] = mapping[old]
	}
}

// maxVertexIndex returns the largest vertex index appearing anywhere in the
// polytope, used as the reflection point b in NatSet.CanonicalKey.
func (p *ConvexPolytope) maxVertexIndex() uint {
	var max uint
	for _, faces := range p.faces {
		for _, f := range faces {
			for _, v := range f.Vertices.Elements() {
				if v > max {
					max = v
				}
			}
		}
	}
	return max
}

// EulerCharacteristic computes Sum_k (-1)^k |faces_k|. For a convex
// d-polytope's full face lattice, including the synthetic interior d-face
// quickhull adds in its export step, this equals 1 for every d (e.g.
// 4-4+1 for a square, 8-12+6-1 for a cube).
func (p *ConvexPolytope) EulerCharacteristic() int {
	sum := 0
	sign := 1
	for _, faces := range p.faces {
		sum += sign * len(faces)
		sign = -sign
	}
	return sum
}
