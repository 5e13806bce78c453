// Package quickhull computes the full face lattice (every dimension,
// including non-simplicial facets, with bidirectional parent/child links)
// of the convex hull of a point set in R^d.
//
// Unlike textbook QuickHull, which yields only the facets of a simplicial
// hull, this implementation exports the entire face poset via an
// incremental add-point procedure: a new point merges the facets it sees
// and the faces "ascend" dimension by dimension to reconnect the lattice
// around it (see addpoint.go).
package quickhull

import "errors"

// ErrInsufficientPoints indicates fewer than d+1 points were supplied.
var ErrInsufficientPoints = errors.New("quickhull: fewer than d+1 points supplied")

// ErrDegenerate indicates the input lacks d+1 affinely independent vertices
// (no valid initial simplex could be built), or a would-be facet lacks d
// affinely independent vertices.
var ErrDegenerate = errors.New("quickhull: input lacks d affinely independent vertices")
