package zip

import (
	"errors"
	"fmt"

	assert "github.com/arl/assertgo"
	"github.com/sanity-io/litter"

	"github.com/CodeSheep123/multi-container/seq"
)

// ErrOutOfRange reports a checked index at or past Len.
var ErrOutOfRange = errors.New("zip: index out of range")

var _ = Iterator[View2[int, string]]((*Zip2[int, string])(nil))

// Zip2 owns two sequences and presents them as one logical sequence of
// pairs. The sequences are deep-copied at construction and never shared
// afterwards; the only way out is through views and iterators.
//
// The logical length is the length of the shorter sequence. Elements past
// it are inert: they stay addressable on the longer sequence directly (S0,
// S1) but not through the zipped surface.
type Zip2[T0, T1 any] struct {
	s0   seq.Sequence[T0]
	s1   seq.Sequence[T1]
	caps seq.Capability
}

func NewZip2[T0, T1 any](s0 seq.Sequence[T0], s1 seq.Sequence[T1]) *Zip2[T0, T1] {
	return &Zip2[T0, T1]{
		s0:   s0.Clone(),
		s1:   s1.Clone(),
		caps: s0.Caps() & s1.Caps(),
	}
}

// Caps is the intersection of the owned sequences' capabilities, computed
// once at construction. Operations gated on a capability outside this set
// panic.
func (z *Zip2[T0, T1]) Caps() seq.Capability {
	return z.caps
}

func (z *Zip2[T0, T1]) require(c seq.Capability, op string) {
	if !z.caps.Has(c) {
		panic(fmt.Sprintf("zip: %s needs %s on every owned sequence, container has %s", op, c, z.caps))
	}
}

// S0 returns the first owned sequence. Mutating it directly bypasses the
// lockstep operations and can desynchronize the sequences.
func (z *Zip2[T0, T1]) S0() seq.Sequence[T0] {
	return z.s0
}

func (z *Zip2[T0, T1]) S1() seq.Sequence[T1] {
	return z.s1
}

func (z *Zip2[T0, T1]) Len() int {
	return min(z.s0.Len(), z.s1.Len())
}

// IsEmpty is true only when every owned sequence is empty. With diverging
// raw lengths this differs from Len() == 0; the asymmetry is kept on
// purpose.
func (z *Zip2[T0, T1]) IsEmpty() bool {
	return z.s0.Len() == 0 && z.s1.Len() == 0
}

// Index returns a view over logical position i without a bounds check.
// Indexing at or past Len is a contract violation.
func (z *Zip2[T0, T1]) Index(i int) View2[T0, T1] {
	assert.True(i >= 0 && i < z.Len())
	return View2[T0, T1]{first: z.s0.At(i), second: z.s1.At(i)}
}

// At is the checked variant of Index.
func (z *Zip2[T0, T1]) At(i int) (View2[T0, T1], error) {
	if i < 0 || i >= z.Len() {
		return View2[T0, T1]{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, z.Len())
	}
	return z.Index(i), nil
}

func (z *Zip2[T0, T1]) Front() View2[T0, T1] {
	return z.Index(0)
}

func (z *Zip2[T0, T1]) Back() View2[T0, T1] {
	return z.Index(z.Len() - 1)
}

func (z *Zip2[T0, T1]) Begin() Iter2[T0, T1] {
	return Iter2[T0, T1]{z: z, pos: 0}
}

func (z *Zip2[T0, T1]) End() Iter2[T0, T1] {
	return Iter2[T0, T1]{z: z, pos: z.Len()}
}

func (z *Zip2[T0, T1]) Scan(fn func(v View2[T0, T1])) {
	for i := 0; i < z.Len(); i++ {
		fn(z.Index(i))
	}
}

func (z *Zip2[T0, T1]) ScanIf(fn func(v View2[T0, T1]) bool) {
	for i := 0; i < z.Len(); i++ {
		if !fn(z.Index(i)) {
			break
		}
	}
}

func (z *Zip2[T0, T1]) ScanBack(fn func(v View2[T0, T1])) {
	z.require(seq.CapBidirectional, "ScanBack")
	for i := z.Len() - 1; i >= 0; i-- {
		fn(z.Index(i))
	}
}

func (z *Zip2[T0, T1]) ScanBackIf(fn func(v View2[T0, T1]) bool) {
	z.require(seq.CapBidirectional, "ScanBackIf")
	for i := z.Len() - 1; i >= 0; i-- {
		if !fn(z.Index(i)) {
			break
		}
	}
}

func (z *Zip2[T0, T1]) Clear() {
	z.s0.Clear()
	z.s1.Clear()
}

// PushBack appends one pair, each value at its own sequence's end. It is
// gated on CapAppend: a container holding any fixed-capacity sequence does
// not have this operation.
func (z *Zip2[T0, T1]) PushBack(t Tuple2[T0, T1]) {
	z.require(seq.CapAppend, "PushBack")
	z.s0.Insert(z.s0.Len(), t.First)
	z.s1.Insert(z.s1.Len(), t.Second)
}

// PopBack removes the last element of every owned sequence. Calling it on
// an empty container is a contract violation.
func (z *Zip2[T0, T1]) PopBack() {
	assert.True(!z.IsEmpty())
	z.s0.Remove(z.s0.Len()-1, z.s0.Len())
	z.s1.Remove(z.s1.Len()-1, z.s1.Len())
}

// Insert inserts one pair before pos and returns an iterator to it.
// Capacity headroom is validated on every sequence before any sequence is
// mutated, so a bounded overflow never leaves the container desynchronized.
func (z *Zip2[T0, T1]) Insert(pos Iter2[T0, T1], t Tuple2[T0, T1]) Iter2[T0, T1] {
	return z.InsertN(pos, 1, t)
}

// InsertN inserts n copies of t before pos.
func (z *Zip2[T0, T1]) InsertN(pos Iter2[T0, T1], n int, t Tuple2[T0, T1]) Iter2[T0, T1] {
	assert.True(pos.z == z)
	assert.True(pos.pos >= 0 && pos.pos <= z.Len())
	reserve(z.s0, n)
	reserve(z.s1, n)
	z.s0.Insert(pos.pos, repeat(t.First, n)...)
	z.s1.Insert(pos.pos, repeat(t.Second, n)...)
	return Iter2[T0, T1]{z: z, pos: pos.pos}
}

// InsertRange inserts the logical elements [first, last) before pos. Both
// bounds must be iterators over this same container forming a valid
// half-open range; the values are snapshotted before any sequence is
// mutated, so the source range may overlap the insertion point.
func (z *Zip2[T0, T1]) InsertRange(pos, first, last Iter2[T0, T1]) Iter2[T0, T1] {
	assert.True(pos.z == z && first.z == z && last.z == z)
	assert.True(first.pos <= last.pos)
	n := last.pos - first.pos
	v0 := make([]T0, 0, n)
	v1 := make([]T1, 0, n)
	for i := first.pos; i < last.pos; i++ {
		v := z.Index(i)
		v0 = append(v0, *v.first)
		v1 = append(v1, *v.second)
	}
	reserve(z.s0, n)
	reserve(z.s1, n)
	z.s0.Insert(pos.pos, v0...)
	z.s1.Insert(pos.pos, v1...)
	return Iter2[T0, T1]{z: z, pos: pos.pos}
}

// Erase removes the logical element at pos and returns an iterator to the
// position after it.
func (z *Zip2[T0, T1]) Erase(pos Iter2[T0, T1]) Iter2[T0, T1] {
	next := pos
	next.pos++
	return z.EraseRange(pos, next)
}

// EraseRange removes the logical elements [first, last) from every owned
// sequence.
func (z *Zip2[T0, T1]) EraseRange(first, last Iter2[T0, T1]) Iter2[T0, T1] {
	assert.True(first.z == z && last.z == z)
	assert.True(first.pos <= last.pos && last.pos <= z.Len())
	z.s0.Remove(first.pos, last.pos)
	z.s1.Remove(first.pos, last.pos)
	return Iter2[T0, T1]{z: z, pos: first.pos}
}

// Swap exchanges logical elements i and j in every owned sequence.
func (z *Zip2[T0, T1]) Swap(i, j int) {
	swapAt(z.s0, i, j)
	swapAt(z.s1, i, j)
}

// Dump renders the logical elements for debugging.
func (z *Zip2[T0, T1]) Dump() string {
	tuples := make([]Tuple2[T0, T1], 0, z.Len())
	z.Scan(func(v View2[T0, T1]) {
		tuples = append(tuples, v.Get())
	})
	return litter.Sdump(tuples)
}

func reserve[T any](s seq.Sequence[T], n int) {
	if c := s.Cap(); c >= 0 && s.Len()+n > c {
		panic(fmt.Sprintf("zip: inserting %d elements exceeds sequence capacity %d", n, c))
	}
}

func repeat[T any](v T, n int) []T {
	vs := make([]T, n)
	for i := range vs {
		vs[i] = v
	}
	return vs
}

func swapAt[T any](s seq.Sequence[T], i, j int) {
	p, q := s.At(i), s.At(j)
	*p, *q = *q, *p
}
