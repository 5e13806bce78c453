// Package multidim implements a growable rank-r lookup table with a default
// value, used by curveinfo to back the neighbor, opponent and parent-facet
// tables, and by sfcalgo to hold the precomputed level tables.
//
// Any read of an out-of-range cell returns the logical default; any write
// grows the array along every dimension to include the written index.
package multidim

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrRankMismatch indicates an index tuple whose length does not match the
// array's fixed rank.
var ErrRankMismatch = errors.New("multidim: index tuple length does not match rank")

// ErrNegativeIndex indicates a negative index component (indices are
// non-negative natural-number coordinates).
var ErrNegativeIndex = errors.New("multidim: index must be non-negative")

// Array is a growable rank-r nested lookup table over T, with default value
// Def. A cell is "not default" only after an explicit Set at that index.
type Array[T any] struct {
	Rank int
	Def  T

	data map[string]T
	dims []int // dims[i] = 1 + max index ever written along dimension i
}

// New creates an empty rank-r array with default value def.
// Complexity: O(r) for the dims slice.
func New[T any](rank int, def T) *Array[T] {
	return &Array[T]{
		Rank: rank,
		Def:  def,
		data: make(map[string]T),
		dims: make([]int, rank),
	}
}

func key(idx []int) string {
	var b strings.Builder
	for i, v := range idx {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

func (a *Array[T]) validate(idx []int) error {
	if len(idx) != a.Rank {
		return ErrRankMismatch
	}
	for _, v := range idx {
		if v < 0 {
			return ErrNegativeIndex
		}
	}
	return nil
}

// Get returns the value at idx, or Def if no write ever materialised it.
// Complexity: O(r) to build the key.
func (a *Array[T]) Get(idx ...int) (T, error) {
	if err := a.validate(idx); err != nil {
		var zero T
		return zero, err
	}
	if v, ok := a.data[key(idx)]; ok {
		return v, nil
	}
	return a.Def, nil
}

// Set writes v at idx, growing every dimension's extent to cover idx.
// Complexity: O(r).
func (a *Array[T]) Set(v T, idx ...int) error {
	if err := a.validate(idx); err != nil {
		return err
	}
	a.data[key(idx)] = v
	for i, x := range idx {
		if x+1 > a.dims[i] {
			a.dims[i] = x + 1
		}
	}
	return nil
}

// ContainsNotDefault reports whether idx was explicitly written (regardless
// of whether the written value happens to equal Def).
// Complexity: O(r).
func (a *Array[T]) ContainsNotDefault(idx ...int) (bool, error) {
	if err := a.validate(idx); err != nil {
		return false, err
	}
	_, ok := a.data[key(idx)]
	return ok, nil
}

// Dims returns the current materialised extent along each dimension (one
// past the maximum index ever written, per dimension).
// Complexity: O(r).
func (a *Array[T]) Dims() []int {
	out := make([]int, len(a.dims))
	copy(out, a.dims)
	return out
}

// EmitGoLiteral serialises the array as a nested Go composite-literal
// declaration, `var <arrayName> = [...][n1]...<elemType>{...}`, over the
// rectangular hull [0,dims[0])×...×[0,dims[r-1]). Cells never written emit
// Def. This is a textual, human-readable emitter — not bit-compatible with
// any in-memory layout — intended to seed hand-checked constant tables for
// the sfcalgo package the way the multidim tables were themselves derived.
// Complexity: O(product of dims).
func (a *Array[T]) EmitGoLiteral(w io.Writer, arrayName, elemType string) error {
	dims := a.Dims()
	if len(dims) == 0 {
		_, err := fmt.Fprintf(w, "var %s %s = %v\n", arrayName, elemType, a.Def)
		return err
	}
	if _, err := fmt.Fprintf(w, "var %s = %s%s\n", arrayName, literalType(elemType, dims), func() string {
		var b strings.Builder
		a.emitLevel(&b, dims, nil)
		return b.String()
	}()); err != nil {
		return err
	}
	return nil
}

// literalType builds the "[...][n1]...[n(r-1)]elemType" array-type prefix
// for r dims: only the outermost length is inferred, as Go requires.
func literalType(elemType string, dims []int) string {
	var b strings.Builder
	for i, n := range dims {
		if i == 0 {
			b.WriteString("[...]")
		} else {
			fmt.Fprintf(&b, "[%d]", n)
		}
	}
	b.WriteString(elemType)
	return b.String()
}

func (a *Array[T]) emitLevel(b *strings.Builder, dims []int, prefix []int) {
	depth := len(prefix)
	b.WriteString("{")
	for i := 0; i < dims[depth]; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		idx := append(append([]int{}, prefix...), i)
		if depth == len(dims)-1 {
			v, _ := a.Get(idx...)
			fmt.Fprintf(b, "%v", v)
		} else {
			a.emitLevel(b, dims, idx)
		}
	}
	b.WriteString("}")
}
