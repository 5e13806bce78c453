// Package natset implements NatSet, an ordered set of small non-negative
// integers used throughout the polytope and curve packages as a face's
// vertex-set key.
//
// Iteration is always ascending. Equality is by content. The hash is a
// XOR-fold over a fixed bit width and is maintained incrementally on every
// insert/remove so membership-indexed lookups (used heavily by quickhull and
// curveinfo) stay cheap.
//
// Complexity: Insert/Remove/Contains are O(1) amortized (backed by a
// bitset.BitSet); Size is O(1); iteration (Elements/ReverseAt) is O(n) in the
// number of set bits.
package natset

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ErrEmpty indicates an operation required a non-empty NatSet (e.g. AnyElement).
var ErrEmpty = errors.New("natset: set is empty")

// hashBits is the fixed bit width W used by the XOR-fold hash.
const hashBits = 32

// NatSet is an ordered set of small non-negative integers with a
// content-derived, incrementally maintained hash.
type NatSet struct {
	bits *bitset.BitSet
	n    uint // cached cardinality
	hash uint32
}

// New creates an empty NatSet.
// Complexity: O(1).
func New() *NatSet {
	return &NatSet{bits: bitset.New(0)}
}

// FromElements creates a NatSet containing exactly the given elements.
// Complexity: O(k) for k elements.
func FromElements(elems ...uint) *NatSet {
	s := New()
	for _, e := range elems {
		s.Insert(e)
	}
	return s
}

// foldBit returns the single XOR-fold contribution of element v.
func foldBit(v uint) uint32 {
	return uint32(1) << (v % hashBits)
}

// Insert adds v to the set. Returns true if v was newly added.
// Complexity: O(1) amortized.
func (s *NatSet) Insert(v uint) bool {
	if s.bits.Test(v) {
		return false
	}
	s.bits.Set(v)
	s.n++
	s.hash ^= foldBit(v)
	return true
}

// Remove deletes v from the set. Returns true if v was present.
// Complexity: O(1) amortized.
func (s *NatSet) Remove(v uint) bool {
	if !s.bits.Test(v) {
		return false
	}
	s.bits.Clear(v)
	s.n--
	s.hash ^= foldBit(v) // XOR-fold self-inverts
	return true
}

// Contains reports whether v is a member of the set.
// Complexity: O(1).
func (s *NatSet) Contains(v uint) bool {
	return s.bits.Test(v)
}

// Size returns the cardinality of the set.
// Complexity: O(1).
func (s *NatSet) Size() int {
	return int(s.n)
}

// Hash returns the incrementally maintained XOR-fold hash.
// Complexity: O(1).
func (s *NatSet) Hash() uint32 {
	return s.hash
}

// AnyElement returns some element of the set; used where the caller has
// already established the set is non-empty. Returns ErrEmpty otherwise.
// Complexity: O(W/64) worst case to find the first set word.
func (s *NatSet) AnyElement() (uint, error) {
	v, ok := s.bits.NextSet(0)
	if !ok {
		return 0, ErrEmpty
	}
	return v, nil
}

// Elements returns the members of the set in ascending order.
// Complexity: O(n).
func (s *NatSet) Elements() []uint {
	out := make([]uint, 0, s.n)
	for v, ok := s.bits.NextSet(0); ok; v, ok = s.bits.NextSet(v + 1) {
		out = append(out, v)
	}
	return out
}

// ReverseAt returns {b - v | v in s}, the set reflected about b.
// Complexity: O(n).
func (s *NatSet) ReverseAt(b uint) *NatSet {
	out := New()
	for _, v := range s.Elements() {
		out.Insert(b - v)
	}
	return out
}

// Equal reports whether s and t contain exactly the same elements.
// Complexity: O(n) (hash short-circuits most unequal pairs).
func (s *NatSet) Equal(t *NatSet) bool {
	if s.hash != t.hash || s.n != t.n {
		return false
	}
	// With equal cardinality, containment means equality; unlike
	// bitset.Equal this does not depend on how far the bitsets have grown.
	return s.bits.IsSuperSet(t.bits)
}

// Compare returns <0, 0, >0 comparing s and t lexicographically on their
// ascending element lists (shorter prefix-equal sets sort first).
// Complexity: O(n).
func (s *NatSet) Compare(t *NatSet) int {
	a, b := s.Elements(), t.Elements()
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Clone returns an independent copy of s.
// Complexity: O(n).
func (s *NatSet) Clone() *NatSet {
	out := New()
	for _, v := range s.Elements() {
		out.Insert(v)
	}
	return out
}

// String renders the set as "[v0 v1 ...]" in ascending order.
func (s *NatSet) String() string {
	return fmt.Sprintf("%v", s.Elements())
}

// CanonicalKey returns min(s, s.ReverseAt(maxIndex)) by Compare, used by
// polytope.Sort to canonicalise face ordering.
// Complexity: O(n).
func (s *NatSet) CanonicalKey(maxIndex uint) *NatSet {
	r := s.ReverseAt(maxIndex)
	if s.Compare(r) <= 0 {
		return s
	}
	return r
}
