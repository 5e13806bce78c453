// Package subspace maintains an orthonormal basis of a linear subspace of
// R^n incrementally, answers "is this vector in-span?", and produces a
// vector orthogonal to the whole basis — the two primitives quickhull needs
// for affine-independence testing (initial simplex construction) and facet
// normal computation.
//
// Where the prior implementation this module descends from used Eigen's
// fullPivLu().kernel(), this package uses gonum's QR factorization: stacking
// the basis vectors as the columns of an n×k matrix A and factorizing
// A = QR, the trailing columns of Q span the orthogonal complement of A's
// column space whenever A has full column rank k < n.
package subspace

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrDimensionMismatch indicates a vector of the wrong length was supplied.
var ErrDimensionMismatch = errors.New("subspace: vector dimension mismatch")

// ErrFull indicates OrthogonalComplement was called on a basis that already
// spans the whole ambient space (no complement exists).
var ErrFull = errors.New("subspace: basis already spans the ambient space")

// DefaultEpsilon is the default absolute tolerance for in-span tests,
// matching the fixed ε = 1e-9 used for hyperplane side tests elsewhere.
const DefaultEpsilon = 1e-9

// Basis incrementally maintains an orthonormal basis of a subspace of R^n.
type Basis struct {
	n       int
	eps     float64
	vectors []*mat.VecDense // orthonormal, in insertion order
}

// New creates an empty basis of a subspace of R^n.
func New(n int, eps float64) *Basis {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	return &Basis{n: n, eps: eps}
}

// Dim returns the current rank of the maintained basis.
// Complexity: O(1).
func (b *Basis) Dim() int { return len(b.vectors) }

// residual projects v out of the current basis and returns the leftover
// component (v minus its projection onto span(vectors)).
// Complexity: O(k*n) for k basis vectors.
func (b *Basis) residual(v []float64) (*mat.VecDense, error) {
	if len(v) != b.n {
		return nil, ErrDimensionMismatch
	}
	r := mat.NewVecDense(b.n, append([]float64(nil), v...))
	for _, u := range b.vectors {
		coef := mat.Dot(r, u)
		r.AddScaledVec(r, -coef, u)
	}
	return r, nil
}

// InSpan reports whether v lies within the current subspace (its residual
// norm after projection is within epsilon).
// Complexity: O(k*n).
func (b *Basis) InSpan(v []float64) (bool, error) {
	r, err := b.residual(v)
	if err != nil {
		return false, err
	}
	return mat.Norm(r, 2) <= b.eps, nil
}

// TryAdd attempts to add v to the basis. It returns true if v was linearly
// independent of the current basis (and so was added, after normalization),
// false if v was already in span.
// Complexity: O(k*n).
func (b *Basis) TryAdd(v []float64) (bool, error) {
	r, err := b.residual(v)
	if err != nil {
		return false, err
	}
	norm := mat.Norm(r, 2)
	if norm <= b.eps {
		return false, nil
	}
	r.ScaleVec(1/norm, r)
	b.vectors = append(b.vectors, r)
	return true, nil
}

// OrthogonalComplement returns a unit vector orthogonal to every vector in
// the current basis. Requires Dim() < n. When Dim() == n-1 the returned
// vector is the (unique up to sign) normal direction of the hyperplane
// spanned by the basis — exactly what quickhull needs for a facet normal.
// Complexity: O(n*k^2) dominated by the QR factorization of the n×k basis matrix.
func (b *Basis) OrthogonalComplement() ([]float64, error) {
	k := len(b.vectors)
	if k >= b.n {
		return nil, ErrFull
	}
	a := mat.NewDense(b.n, k, nil)
	for j, v := range b.vectors {
		for i := 0; i < b.n; i++ {
			a.Set(i, j, v.AtVec(i))
		}
	}
	var qr mat.QR
	qr.Factorize(a)
	var q mat.Dense
	qr.QTo(&q)

	// Q's column k (0-indexed, first column beyond the basis rank) is
	// orthogonal to every column of A for a full column-rank A.
	out := make([]float64, b.n)
	for i := 0; i < b.n; i++ {
		out[i] = q.At(i, k)
	}
	return out, nil
}
