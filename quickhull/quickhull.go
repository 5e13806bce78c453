package quickhull

import (
	"github.com/sfclab/sfclab/natset"
	"github.com/sfclab/sfclab/pointmat"
	"github.com/sfclab/sfclab/polytope"
)

// DefaultEpsilon is the fixed absolute tolerance for hyperplane side tests
// (spec's design notes flag this as something to reconsider for
// specifications whose transition matrices shrink cells exponentially;
// WithEpsilon lets a caller rescale it for such regimes).
const DefaultEpsilon = 1e-9

// Option configures a Build invocation.
type Option func(*config)

type config struct {
	eps float64
}

func defaultConfig() config {
	return config{eps: DefaultEpsilon}
}

// WithEpsilon overrides the absolute hyperplane-side-test tolerance.
func WithEpsilon(eps float64) Option {
	if eps <= 0 {
		panic("quickhull: WithEpsilon requires eps > 0")
	}
	return func(c *config) { c.eps = eps }
}

// faceInfo is one arena-owned node of the cyclic parent/child face graph
// built during a single Build call. Per the design notes, all face-to-face
// links are indices into the arena (never pointers); the arena is discarded
// once the caller's ConvexPolytope has been exported.
type faceInfo struct {
	dim      int
	vertices *natset.NatSet

	parents  map[int]struct{}
	children map[int]struct{}

	// facesToConnect is transient bookkeeping used only during the current
	// add_point call.
	facesToConnect map[int]struct{}

	numAncestorFacets int
	p, z              int
	shouldRemove      bool
	deleted           bool

	// facet-only fields (populated once dim == d-1 and isFacet is set).
	isFacet    bool
	normal     []float64
	offset     float64
	outsideSet []int
}

func newFaceInfo(dim int, vs *natset.NatSet) *faceInfo {
	return &faceInfo{
		dim:            dim,
		vertices:       vs,
		parents:        map[int]struct{}{},
		children:       map[int]struct{}{},
		facesToConnect: map[int]struct{}{},
	}
}

// faceStatus is the face-status algebra from the data model: given
// n = numAncestorFacets - p - z, a face's fate during the current add_point
// call is determined by the sign of n together with whether p is positive.
type faceStatus int

const (
	statusKeep faceStatus = iota
	statusConnect
	statusRemove
	statusExtend
)

func classify(f *faceInfo) faceStatus {
	n := f.numAncestorFacets - f.p - f.z
	switch {
	case n > 0 && f.p == 0:
		return statusKeep
	case n > 0 && f.p > 0:
		return statusConnect
	case n == 0 && f.p > 0:
		return statusRemove
	default: // n == 0 && p == 0
		return statusExtend
	}
}

// quickHull holds the mutable state of a single Build call: the arena of
// faces, the live-facet set, the work queue and the input points.
type quickHull struct {
	d   int
	pts *pointmat.Dense
	eps float64

	arena       []*faceInfo
	liveFacets  map[int]bool
	facetOrder  []int // append-only creation order, for deterministic iteration
	queue       []int
	unprocessed []int
	innerPoint  []float64
}

func (qh *quickHull) addArena(f *faceInfo) int {
	qh.arena = append(qh.arena, f)
	return len(qh.arena) - 1
}

func (qh *quickHull) markFacet(idx int) {
	qh.liveFacets[idx] = true
	qh.facetOrder = append(qh.facetOrder, idx)
}

// Build turns a d×N point matrix (one column per candidate vertex) into a
// ConvexPolytope with a complete face lattice.
//
// Fails with ErrInsufficientPoints if N < d+1, or ErrDegenerate if the input
// lacks d+1 affinely independent vertices.
// Complexity: O(N) outside-set point promotions in the worst case, each
// touching O(F) faces of the current hull.
func Build(points *pointmat.Dense, opts ...Option) (*polytope.ConvexPolytope, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	d := points.Rows()
	n := points.Cols()
	if n < d+1 {
		return nil, ErrInsufficientPoints
	}

	qh := &quickHull{
		d:          d,
		pts:        points,
		eps:        cfg.eps,
		liveFacets: map[int]bool{},
	}
	if err := qh.initializeSimplex(); err != nil {
		return nil, err
	}
	if err := qh.run(); err != nil {
		return nil, err
	}
	return qh.export()
}

// run drains the facet work queue: for each live facet with a non-empty
// outside set, the furthest outside point is promoted via addPoint.
func (qh *quickHull) run() error {
	for len(qh.queue) > 0 {
		idx := qh.queue[0]
		qh.queue = qh.queue[1:]
		if !qh.liveFacets[idx] {
			continue
		}
		f := qh.arena[idx]
		if len(f.outsideSet) == 0 {
			continue
		}
		best := f.outsideSet[0]
		bestDist := qh.signedDistance(f, best)
		for _, p := range f.outsideSet[1:] {
			if d := qh.signedDistance(f, p); d > bestDist {
				bestDist = d
				best = p
			}
		}
		if err := qh.addPoint(best, idx); err != nil {
			return err
		}
	}
	return nil
}
