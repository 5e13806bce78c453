// Package sfcalgo implements the neighbor and state algorithms for the
// standard curves: Hilbert in 2D/3D, the generic Peano construction in
// arbitrary dimension, Morton, and Sierpinski in 2D. Morton2D.Neighbor and
// Hilbert2DState run in O(1); TableAlgo and Sierpinski2D take O(level) per
// query.
//
// Every algorithm shares the contract: given a linear position pos in
// [0, b^level) and a facet index, return the neighbor position at the same
// level, or Invalid if none exists (the position lies on the boundary of
// the whole curve).
package sfcalgo

import (
	"github.com/sfclab/sfclab/curve"
	"github.com/sfclab/sfclab/curveinfo"
)

// Invalid is the sentinel "no neighbor" return value.
const Invalid int64 = -1

// TableAlgo is the generic table-driven neighbor algorithm: given the
// neighbor, opponent and parent-facet tables a curveinfo.Analysis produces
// for a curve.Specification, it answers Neighbor queries by climbing levels
// on a NeighborTable miss and descending via the OpponentTable, exactly the
// schema spec'd for Hilbert-2D/3D and the generic Peano curve — generalized
// here into one engine that is driven by the tables rather than a literal
// per-curve transcription of them.
type TableAlgo struct {
	branching int
	grammar   [][]int
	analysis  *curveinfo.Analysis
}

// NewTableAlgo builds a TableAlgo from a curve specification, running
// curveinfo.Analyze once at construction time.
func NewTableAlgo(spec *curve.Specification) (*TableAlgo, error) {
	a, err := curveinfo.Analyze(spec)
	if err != nil {
		return nil, err
	}
	return &TableAlgo{branching: spec.BranchingFactor(), grammar: spec.Grammar, analysis: a}, nil
}

// Analysis exposes the underlying curve-information analysis, e.g. for
// inspecting HasPalindrome or OpponentInconsistent.
func (t *TableAlgo) Analysis() *curveinfo.Analysis { return t.analysis }

// Neighbor returns the neighbor of pos (encoded as level base-b digits, LSB
// first being the finest-grain slot) across the given facet, or Invalid.
//
// Complexity: O(level) on every call, since the base-b digits of pos and the
// grammar states along its root path are derived up front each time. The
// climb stops at the first NeighborTable hit; only positions whose neighbor
// lies under a higher common ancestor also climb and descend (via the
// OpponentTable) through the levels in between.
func (t *TableAlgo) Neighbor(pos uint64, level, facet int) int64 {
	b := uint64(t.branching)
	if level <= 0 {
		return Invalid
	}

	digits := make([]int, level)
	p := pos
	for i := 0; i < level; i++ {
		digits[i] = int(p % b)
		p /= b
	}

	states := make([]int, level+1)
	states[level] = 0
	for k := level - 1; k >= 1; k-- {
		states[k] = t.grammar[states[k+1]][digits[k]]
	}

	facetsClimbed := make([]int, level)
	curFacet := facet
	foundHeight := -1
	siblingSlot := -1

	for c := 1; c <= level; c++ {
		i := digits[c-1]
		parentState := states[c]
		facetsClimbed[c-1] = curFacet

		if j, err := t.analysis.NeighborTable.Get(i, parentState, curFacet); err == nil && j != curveinfo.Invalid {
			foundHeight = c
			siblingSlot = j
			break
		}
		pf, err := t.analysis.ParentFacetTable.Get(i, parentState, curFacet)
		if err != nil || pf == curveinfo.Invalid {
			return Invalid
		}
		curFacet = pf
	}
	if foundHeight == -1 {
		return Invalid
	}

	newStates := make([]int, level+1)
	newDigits := make([]int, level)
	for k := foundHeight + 1; k <= level; k++ {
		newStates[k] = states[k]
	}
	newStates[foundHeight] = states[foundHeight]
	newStates[foundHeight-1] = t.grammar[states[foundHeight]][siblingSlot]
	newDigits[foundHeight-1] = siblingSlot

	for k := foundHeight - 1; k >= 1; k-- {
		origDigit := digits[k-1]
		origState := states[k]
		newState := newStates[k]
		f := facetsClimbed[k-1]
		nd, err := t.analysis.OpponentTable.Get(origDigit, origState, newState, f)
		if err != nil || nd == curveinfo.Invalid {
			return Invalid
		}
		newDigits[k-1] = nd
		newStates[k-1] = t.grammar[newState][nd]
	}

	var result uint64
	for k := level - 1; k >= 0; k-- {
		result = result*b + uint64(newDigits[k])
	}
	return int64(result)
}

// State returns the grammar state of the block at the finest level
// containing pos (the state one level above pos's own leaf slot), folding
// the grammar digit by digit from the root. Amortized O(level).
func (t *TableAlgo) State(pos uint64, level int) int {
	b := uint64(t.branching)
	if level <= 0 {
		return 0
	}
	digits := make([]int, level)
	p := pos
	for i := 0; i < level; i++ {
		digits[i] = int(p % b)
		p /= b
	}
	state := 0
	for k := level - 1; k >= 1; k-- {
		state = t.grammar[state][digits[k]]
	}
	return state
}
