// Package curveinfo implements the curve-information analysis: given a
// curve.Specification, it derives the combinatorial face lattice of each
// reachable state (via quickhull), then the neighbor, opponent and
// parent-facet tables that let sfcalgo answer "who is adjacent to me"
// queries without re-deriving geometry at query time.
package curveinfo

import (
	"fmt"
	"math"

	"github.com/sfclab/sfclab/completion"
	"github.com/sfclab/sfclab/curve"
	"github.com/sfclab/sfclab/multidim"
	"github.com/sfclab/sfclab/natset"
	"github.com/sfclab/sfclab/pointmat"
	"github.com/sfclab/sfclab/polytope"
	"github.com/sfclab/sfclab/quickhull"
)

// Analysis is the result of Analyze: polytopes_by_state, reachable,
// neighbor_table, opponent_table, parent_facet_table, opponent_inconsistent
// and has_palindrome.
type Analysis struct {
	PolytopesByState map[int]*polytope.ConvexPolytope
	Reachable        []int

	// NeighborTable is indexed [slot][parentState][facet] -> sibling slot.
	NeighborTable *multidim.Array[int]
	// OpponentTable is indexed [slot][parentState][oppositeParentState][facet] -> opposite slot.
	OpponentTable *multidim.Array[int]
	// ParentFacetTable is indexed [slot][parentState][facet] -> facet of parent.
	ParentFacetTable *multidim.Array[int]

	OpponentInconsistent bool
	HasPalindrome        bool
}

// pairKey identifies a worklist item for the opponent-table pass: two
// adjacent cells of states A and B, glued along A's facet FA / B's facet FB.
type pairKey struct{ A, B, FA, FB int }

// Analyze runs the full curve-information analysis on spec using the
// default coincident-column tolerance.
func Analyze(spec *curve.Specification) (*Analysis, error) {
	return AnalyzeEpsilon(spec, DefaultEpsilon)
}

// AnalyzeEpsilon runs the analysis with a caller-supplied coincident-column
// tolerance, for specifications whose transition matrices shrink cells at a
// rate that makes the default tolerance too coarse or too tight.
func AnalyzeEpsilon(spec *curve.Specification, eps float64) (*Analysis, error) {
	nodePoints := map[int]*pointmat.Dense{0: spec.RootPoints}
	polytopesByState := map[int]*polytope.ConvexPolytope{}

	expand := func(state int) []int {
		children := make([]int, 0, len(spec.Grammar[state]))
		for slot, childState := range spec.Grammar[state] {
			if _, ok := nodePoints[childState]; !ok {
				childPts, err := nodePoints[state].Mul(spec.TransitionMats[state][slot])
				if err == nil {
					nodePoints[childState] = childPts
				}
			}
			children = append(children, childState)
		}
		return children
	}

	res, err := completion.Run([]int{0}, expand, completion.WithOnVisit[int](func(state int) error {
		poly, err := quickhull.Build(nodePoints[state])
		if err != nil {
			return fmt.Errorf("%w: state %d: %v", ErrSpecificationDegenerate, state, err)
		}
		polytopesByState[state] = poly
		return nil
	}))
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		PolytopesByState: polytopesByState,
		Reachable:        res.Order,
		NeighborTable:    multidim.New[int](3, Invalid),
		OpponentTable:    multidim.New[int](4, Invalid),
		ParentFacetTable: multidim.New[int](3, Invalid),
		HasPalindrome:    true,
	}

	b := spec.BranchingFactor()
	d := spec.D

	var pairSeeds []pairKey
	for _, s := range res.Order {
		parentPts := nodePoints[s]
		childPts := make([]*pointmat.Dense, b)
		for slot := 0; slot < b; slot++ {
			cp, err := parentPts.Mul(spec.TransitionMats[s][slot])
			if err != nil {
				continue
			}
			childPts[slot] = cp
		}

		for i := 0; i < b; i++ {
			for j := i + 1; j < b; j++ {
				if childPts[i] == nil || childPts[j] == nil {
					continue
				}
				si, sj := spec.Grammar[s][i], spec.Grammar[s][j]
				setI, setJ := coincidentColumns(childPts[i], childPts[j], eps)
				if setI.Size() == 0 {
					continue
				}
				polyI, okPolyI := a.PolytopesByState[si]
				polyJ, okPolyJ := a.PolytopesByState[sj]
				if !okPolyI || !okPolyJ {
					continue
				}
				fi, okI := polyI.FindFace(d-1, setI)
				fj, okJ := polyJ.FindFace(d-1, setJ)
				if !okI || !okJ {
					continue
				}
				_ = a.NeighborTable.Set(j, i, s, fi)
				_ = a.NeighborTable.Set(i, j, s, fj)
				pairSeeds = append(pairSeeds, pairKey{si, sj, fi, fj})
			}
		}
	}

	pairExpand := func(p pairKey) []pairKey {
		var next []pairKey
		aPtsBase, okA := nodePoints[p.A]
		bPtsBase, okB := nodePoints[p.B]
		if !okA || !okB {
			return nil
		}
		for i := 0; i < b; i++ {
			for j := 0; j < b; j++ {
				aPts, err1 := aPtsBase.Mul(spec.TransitionMats[p.A][i])
				bPts, err2 := bPtsBase.Mul(spec.TransitionMats[p.B][j])
				if err1 != nil || err2 != nil {
					continue
				}
				setI, setJ := coincidentColumns(aPts, bPts, eps)
				if setI.Size() == 0 {
					continue
				}
				siChild, sjChild := spec.Grammar[p.A][i], spec.Grammar[p.B][j]
				polyI, okPolyI := a.PolytopesByState[siChild]
				polyJ, okPolyJ := a.PolytopesByState[sjChild]
				if !okPolyI || !okPolyJ {
					continue
				}
				fi, okI := polyI.FindFace(d-1, setI)
				fj, okJ := polyJ.FindFace(d-1, setJ)
				if !okI || !okJ {
					continue
				}

				if existing, _ := a.OpponentTable.Get(i, p.A, p.B, fi); existing != Invalid && existing != j {
					a.OpponentInconsistent = true
				}
				_ = a.OpponentTable.Set(j, i, p.A, p.B, fi)
				_ = a.OpponentTable.Set(i, j, p.B, p.A, fj)
				_ = a.ParentFacetTable.Set(p.FA, i, p.A, fi)
				_ = a.ParentFacetTable.Set(p.FB, j, p.B, fj)

				next = append(next, pairKey{siChild, sjChild, fi, fj})
			}
		}
		return next
	}

	if _, err := completion.Run(pairSeeds, pairExpand); err != nil {
		return nil, err
	}

	checkPalindrome(a, b)
	return a, nil
}

// checkPalindrome tests the modified palindrome property over every written
// cell of the opponent table: opponent[j][...] = v must satisfy v = b-1-j.
func checkPalindrome(a *Analysis, b int) {
	dims := a.OpponentTable.Dims()
	if len(dims) != 4 {
		return
	}
	for i := 0; i < dims[0]; i++ {
		for pa := 0; pa < dims[1]; pa++ {
			for pb := 0; pb < dims[2]; pb++ {
				for f := 0; f < dims[3]; f++ {
					ok, _ := a.OpponentTable.ContainsNotDefault(i, pa, pb, f)
					if !ok {
						continue
					}
					v, _ := a.OpponentTable.Get(i, pa, pb, f)
					if v != b-1-i {
						a.HasPalindrome = false
					}
				}
			}
		}
	}
}

// coincidentColumns finds every pair of columns (one from p, one from q)
// whose Euclidean distance is below eps, returning the matched column
// indices of p and of q as two NatSets.
// Complexity: O(Cols(p) * Cols(q) * rows).
func coincidentColumns(p, q *pointmat.Dense, eps float64) (*natset.NatSet, *natset.NatSet) {
	setP, setQ := natset.New(), natset.New()
	for i := 0; i < p.Cols(); i++ {
		pc, err := p.Column(i)
		if err != nil {
			continue
		}
		for j := 0; j < q.Cols(); j++ {
			qc, err := q.Column(j)
			if err != nil {
				continue
			}
			if euclideanDist(pc, qc) < eps {
				setP.Insert(uint(i))
				setQ.Insert(uint(j))
			}
		}
	}
	return setP, setQ
}

func euclideanDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
