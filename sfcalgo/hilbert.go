package sfcalgo

import (
	"math/bits"

	"github.com/sfclab/sfclab/curve"
)

// Hilbert2D builds the table-driven neighbor algorithm for the 2D Hilbert
// curve (b=4, 4 states, 4 facets), its tables populated offline from the
// curve-information analysis of curve.Hilbert2D.
func Hilbert2D() (*TableAlgo, error) {
	spec, err := curve.Hilbert2D()
	if err != nil {
		return nil, err
	}
	return NewTableAlgo(spec)
}

// Hilbert3D builds the table-driven neighbor algorithm for the 3D Hilbert
// curve (b=8), its tables populated offline from the curve-information
// analysis of curve.Hilbert3D.
func Hilbert3D() (*TableAlgo, error) {
	spec, err := curve.Hilbert3D()
	if err != nil {
		return nil, err
	}
	return NewTableAlgo(spec)
}

// GenericPeano builds the table-driven neighbor algorithm for the generic
// Peano curve in dimension d with per-axis branching k.
func GenericPeano(d, k int) (*TableAlgo, error) {
	spec, err := curve.PeanoD(d, k)
	if err != nil {
		return nil, err
	}
	return NewTableAlgo(spec)
}

// Hilbert2DState computes the 2D Hilbert curve's state at position pos
// (level L, i.e. pos has 2L significant bits) in O(1), exploiting a fixed
// algebraic identity of the 2D Hilbert grammar's orientation-XOR lattice
// instead of folding the grammar digit by digit.
func Hilbert2DState(pos uint64, level int) int {
	bitWidth := 2 * level
	a := pos & mortonEvenMask
	b := (pos >> 1) & mortonEvenMask
	flipMask := mortonEvenMask >> uint(64-bitWidth)

	hi := bits.OnesCount64(a&b) % 2
	lo := bits.OnesCount64(flipMask^(a|b)) % 2
	return 2*hi + lo
}
