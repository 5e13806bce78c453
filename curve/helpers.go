package curve

import "github.com/sfclab/sfclab/pointmat"

// cornerBits returns the d coordinate bits of vertex index v of a d-cube, in
// the standard convention: coordinate a equals bit a of v.
func cornerBits(v, d int) []int {
	bits := make([]int, d)
	for a := 0; a < d; a++ {
		bits[a] = (v >> uint(a)) & 1
	}
	return bits
}

// unitCubeCorners builds the 2^d corners of the unit d-cube as columns, in
// standard bit order.
func unitCubeCorners(d int) *pointmat.Dense {
	n := 1 << uint(d)
	cols := make([][]float64, n)
	for v := 0; v < n; v++ {
		bits := cornerBits(v, d)
		col := make([]float64, d)
		for a, b := range bits {
			col[a] = float64(b)
		}
		cols[v] = col
	}
	m, _ := pointmat.FromColumns(cols)
	return m
}

// simplexCorners builds the d+1 vertices of the standard d-simplex (the
// origin plus the d unit basis vectors) as columns.
func simplexCorners(d int) *pointmat.Dense {
	cols := make([][]float64, d+1)
	cols[0] = make([]float64, d)
	for i := 1; i <= d; i++ {
		col := make([]float64, d)
		col[i-1] = 1
		cols[i] = col
	}
	m, _ := pointmat.FromColumns(cols)
	return m
}

func intPow(k, d int) int {
	out := 1
	for i := 0; i < d; i++ {
		out *= k
	}
	return out
}

// digitsBaseK decomposes idx into d base-k digits, least significant axis first.
func digitsBaseK(idx, d, k int) []int {
	digits := make([]int, d)
	for a := 0; a < d; a++ {
		digits[a] = idx % k
		idx /= k
	}
	return digits
}

// gridSubdivisionTransitions returns the k^d transition matrices (each
// 2^d x 2^d) expressing the 2^d corners of each of the k^d axis-aligned
// sub-cubes of the unit d-cube as affine (multilinear) combinations of the
// parent's 2^d corners. Child index childIdx corresponds to the sub-cube
// whose per-axis grid position is digitsBaseK(childIdx, d, k).
//
// The weight of parent vertex v in child corner c's combination is the
// standard multilinear interpolation weight, which is a genuine convex
// combination: it is exact regardless of the parent's actual geometric
// embedding, which is why the curve's recursive self-similarity carries
// through any global root embedding.
func gridSubdivisionTransitions(d, k int) []*pointmat.Dense {
	n := 1 << uint(d)
	numChildren := intPow(k, d)
	out := make([]*pointmat.Dense, numChildren)

	for childIdx := 0; childIdx < numChildren; childIdx++ {
		digits := digitsBaseK(childIdx, d, k)
		m, _ := pointmat.NewDense(n, n)
		for c := 0; c < n; c++ {
			cBits := cornerBits(c, d)
			t := make([]float64, d)
			for a := range t {
				t[a] = (float64(digits[a]) + float64(cBits[a])) / float64(k)
			}
			for v := 0; v < n; v++ {
				vBits := cornerBits(v, d)
				w := 1.0
				for a := 0; a < d; a++ {
					if vBits[a] == 1 {
						w *= t[a]
					} else {
						w *= 1 - t[a]
					}
				}
				_ = m.Set(v, c, w)
			}
		}
		out[childIdx] = m
	}
	return out
}

// childIdxOfBits packs d axis bits (each 0/1) into a child index consistent
// with digitsBaseK(idx, d, 2).
func childIdxOfBits(bits []int) int {
	idx := 0
	for a := len(bits) - 1; a >= 0; a-- {
		idx = idx*2 + bits[a]
	}
	return idx
}
