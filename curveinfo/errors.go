package curveinfo

import "errors"

// ErrSpecificationDegenerate wraps a QuickHull failure encountered while
// computing the polytope for some reachable state: it propagates verbatim
// per the analysis's documented failure semantics.
var ErrSpecificationDegenerate = errors.New("curveinfo: specification is degenerate")

// Invalid is the sentinel "no such neighbor/opponent/parent-facet" value
// used as every table's default cell.
const Invalid = -1

// DefaultEpsilon is the absolute tolerance used for the coincident-column
// adjacency test.
const DefaultEpsilon = 1e-9
