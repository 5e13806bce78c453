package sfcalgo

// PeanoToMultiIndex and MultiToPeanoIndex convert between a Peano-curve
// linear index and its per-axis grid coordinates, a direct port of
// PeanoAlgorithms::peanoToMultiIndex / ::multiToPeanoIndex
// (src/sfc/PeanoAlgorithms.hpp:444,475 in the source this package's curves
// are distilled from). Both read/write pIndex as level*d base-3 digits,
// processed level-major and axis-descending, carrying a per-axis
// "orientation" flip bit that toggles every other axis whenever the current
// axis reads digit 1 (the meander's center column/row) — this is the
// authentic multi-axis generalization curve.PeanoD's 2-state orientation
// model simplifies away; it exists here as a standalone index conversion,
// independent of curve.PeanoD's Specification form.

// flipPeanoOrientation toggles every axis's flip bit except dim, mirroring
// PeanoOrientation<d>::flipExcept.
func flipPeanoOrientation(orientation []bool, dim int) {
	for i := range orientation {
		if i != dim {
			orientation[i] = !orientation[i]
		}
	}
}

// PeanoToMultiIndex converts a Peano linear index at the given level (depth)
// and dimension d into its multi-index: one coordinate per axis, each in
// [0, 3^level).
// Complexity: O(level*d).
func PeanoToMultiIndex(pIndex uint64, d, level int) []int {
	multi := make([]int, d)
	if level <= 0 {
		return multi
	}

	total := d * level
	digits := make([]int, total)
	p := pIndex
	for i := 0; i < total; i++ {
		digits[i] = int(p % 3)
		p /= 3
	}

	orientation := make([]bool, d)
	k := total - 1
	for l := 0; l < level; l++ {
		for dim := d - 1; dim >= 0; dim-- {
			digit := digits[k]
			k--
			v := digit
			if orientation[dim] {
				v = 2 - digit
			}
			multi[dim] = multi[dim]*3 + v
			if digit == 1 {
				flipPeanoOrientation(orientation, dim)
			}
		}
	}
	return multi
}

// MultiToPeanoIndex converts a multi-index (one coordinate per axis) at the
// given level back into its Peano linear index. Returns false if any
// coordinate is outside [0, 3^level).
// Complexity: O(level*d).
func MultiToPeanoIndex(multi []int, level int) (uint64, bool) {
	d := len(multi)
	bound := 1
	for i := 0; i < level; i++ {
		bound *= 3
	}
	m := make([]int, d)
	copy(m, multi)
	for _, v := range m {
		if v < 0 || v >= bound {
			return 0, false
		}
	}
	if level <= 0 {
		return 0, true
	}

	divisor := 1
	for i := 0; i < level-1; i++ {
		divisor *= 3
	}

	orientation := make([]bool, d)
	var pIndex uint64
	for l := 0; l < level; l++ {
		for dim := d - 1; dim >= 0; dim-- {
			pIndex *= 3
			quot := m[dim] / divisor
			m[dim] = m[dim] % divisor
			digit := quot
			if orientation[dim] {
				digit = 2 - quot
			}
			pIndex += uint64(digit)
			if quot == 1 {
				flipPeanoOrientation(orientation, dim)
			}
		}
		divisor /= 3
	}
	return pIndex, true
}
