// Package curve implements CurveSpecification: the root point embedding,
// production grammar and per-production transition matrices that describe
// a space-filling curve as a geometric production system.
//
// Two root-embedding models are supported, following the local/global
// distinction a KD-curve specification needs: Local curves (constructed via
// NewUnitCube) embed their root polytope as the unit d-cube and are what
// curveinfo.Analyze consumes to build its tables; Global curves (via
// NewKDCurve) embed the grammar into a caller-supplied root polytope, e.g.
// an arbitrary bounding box a mesh defines.
package curve

import (
	"errors"
	"fmt"

	"github.com/sfclab/sfclab/pointmat"
)

// Sentinel errors — the SpecShape category of the error taxonomy: a
// malformed specification is a fatal, structural defect in caller input.
var (
	// ErrEmptyGrammar indicates a specification with zero states.
	ErrEmptyGrammar = errors.New("curve: grammar must have at least one state")

	// ErrGrammarRowLength indicates grammar[s].len() != b for some state s.
	ErrGrammarRowLength = errors.New("curve: grammar row length disagrees with branching factor")

	// ErrTransitionShape indicates a transition matrix with an incompatible
	// row or column count.
	ErrTransitionShape = errors.New("curve: transition matrix has incompatible shape")

	// ErrNotColumnAffine indicates a transition matrix whose columns do not
	// sum to 1, violating the "child = parent * transition" affine contract.
	ErrNotColumnAffine = errors.New("curve: transition matrix is not column-affine")
)

// DefaultEpsilon is used for the column-affine validation check.
const DefaultEpsilon = 1e-9

// Specification is a CurveSpecification: embedding dimension, root point
// matrix, grammar (state, slot) -> state, and per-(state,slot) transition
// matrices.
type Specification struct {
	D              int
	RootPoints     *pointmat.Dense
	Grammar        [][]int
	TransitionMats [][]*pointmat.Dense
}

// BranchingFactor returns b, the number of children per cell.
func (s *Specification) BranchingFactor() int {
	if len(s.Grammar) == 0 {
		return 0
	}
	return len(s.Grammar[0])
}

// NumStates returns the number of grammar non-terminals.
func (s *Specification) NumStates() int { return len(s.Grammar) }

// validate checks the CurveSpecification invariants: every grammar row has
// length b, and every transition matrix is column-affine with a row count
// matching its parent's vertex count.
func validate(s *Specification) error {
	if len(s.Grammar) == 0 {
		return ErrEmptyGrammar
	}
	b := len(s.Grammar[0])
	for st, row := range s.Grammar {
		if len(row) != b {
			return fmt.Errorf("curve: state %d: %w", st, ErrGrammarRowLength)
		}
	}
	for st, row := range s.TransitionMats {
		for slot, m := range row {
			if !m.IsColumnAffine(DefaultEpsilon) {
				return fmt.Errorf("curve: state %d slot %d: %w", st, slot, ErrNotColumnAffine)
			}
		}
	}
	return nil
}

// New constructs a Specification from its raw components and validates it.
func New(d int, root *pointmat.Dense, grammar [][]int, transitions [][]*pointmat.Dense) (*Specification, error) {
	s := &Specification{D: d, RootPoints: root, Grammar: grammar, TransitionMats: transitions}
	if err := validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// NewUnitCube builds the "local" root embedding used by curveinfo.Analyze:
// the unit d-cube with 2^d corners in standard bit order (vertex v has
// coordinate a equal to bit a of v).
func NewUnitCube(d int) *pointmat.Dense {
	return unitCubeCorners(d)
}

// NewKDCurve builds a "global" curve specification: the same grammar and
// transition matrices a KD-curve factory produces, but embedded into a
// caller-supplied root polytope rather than the unit cube — e.g. an
// arbitrary bounding box of a mesh.
func NewKDCurve(d int, rootPoints *pointmat.Dense, grammar [][]int, transitions [][]*pointmat.Dense) (*Specification, error) {
	return New(d, rootPoints, grammar, transitions)
}
