package zip

import (
	"fmt"

	assert "github.com/arl/assertgo"
	"github.com/sanity-io/litter"

	"github.com/CodeSheep123/multi-container/seq"
)

var _ = Iterator[View3[int, string, bool]]((*Zip3[int, string, bool])(nil))

// Zip3 owns three sequences and presents them as one logical sequence of
// triples. See Zip2 for the ownership, length and capability semantics.
type Zip3[T0, T1, T2 any] struct {
	s0   seq.Sequence[T0]
	s1   seq.Sequence[T1]
	s2   seq.Sequence[T2]
	caps seq.Capability
}

func NewZip3[T0, T1, T2 any](s0 seq.Sequence[T0], s1 seq.Sequence[T1], s2 seq.Sequence[T2]) *Zip3[T0, T1, T2] {
	return &Zip3[T0, T1, T2]{
		s0:   s0.Clone(),
		s1:   s1.Clone(),
		s2:   s2.Clone(),
		caps: s0.Caps() & s1.Caps() & s2.Caps(),
	}
}

func (z *Zip3[T0, T1, T2]) Caps() seq.Capability {
	return z.caps
}

func (z *Zip3[T0, T1, T2]) require(c seq.Capability, op string) {
	if !z.caps.Has(c) {
		panic(fmt.Sprintf("zip: %s needs %s on every owned sequence, container has %s", op, c, z.caps))
	}
}

func (z *Zip3[T0, T1, T2]) S0() seq.Sequence[T0] {
	return z.s0
}

func (z *Zip3[T0, T1, T2]) S1() seq.Sequence[T1] {
	return z.s1
}

func (z *Zip3[T0, T1, T2]) S2() seq.Sequence[T2] {
	return z.s2
}

func (z *Zip3[T0, T1, T2]) Len() int {
	return min(z.s0.Len(), z.s1.Len(), z.s2.Len())
}

func (z *Zip3[T0, T1, T2]) IsEmpty() bool {
	return z.s0.Len() == 0 && z.s1.Len() == 0 && z.s2.Len() == 0
}

func (z *Zip3[T0, T1, T2]) Index(i int) View3[T0, T1, T2] {
	assert.True(i >= 0 && i < z.Len())
	return View3[T0, T1, T2]{first: z.s0.At(i), second: z.s1.At(i), third: z.s2.At(i)}
}

func (z *Zip3[T0, T1, T2]) At(i int) (View3[T0, T1, T2], error) {
	if i < 0 || i >= z.Len() {
		return View3[T0, T1, T2]{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, z.Len())
	}
	return z.Index(i), nil
}

func (z *Zip3[T0, T1, T2]) Front() View3[T0, T1, T2] {
	return z.Index(0)
}

func (z *Zip3[T0, T1, T2]) Back() View3[T0, T1, T2] {
	return z.Index(z.Len() - 1)
}

func (z *Zip3[T0, T1, T2]) Begin() Iter3[T0, T1, T2] {
	return Iter3[T0, T1, T2]{z: z, pos: 0}
}

func (z *Zip3[T0, T1, T2]) End() Iter3[T0, T1, T2] {
	return Iter3[T0, T1, T2]{z: z, pos: z.Len()}
}

func (z *Zip3[T0, T1, T2]) Scan(fn func(v View3[T0, T1, T2])) {
	for i := 0; i < z.Len(); i++ {
		fn(z.Index(i))
	}
}

func (z *Zip3[T0, T1, T2]) ScanIf(fn func(v View3[T0, T1, T2]) bool) {
	for i := 0; i < z.Len(); i++ {
		if !fn(z.Index(i)) {
			break
		}
	}
}

func (z *Zip3[T0, T1, T2]) ScanBack(fn func(v View3[T0, T1, T2])) {
	z.require(seq.CapBidirectional, "ScanBack")
	for i := z.Len() - 1; i >= 0; i-- {
		fn(z.Index(i))
	}
}

func (z *Zip3[T0, T1, T2]) ScanBackIf(fn func(v View3[T0, T1, T2]) bool) {
	z.require(seq.CapBidirectional, "ScanBackIf")
	for i := z.Len() - 1; i >= 0; i-- {
		if !fn(z.Index(i)) {
			break
		}
	}
}

func (z *Zip3[T0, T1, T2]) Clear() {
	z.s0.Clear()
	z.s1.Clear()
	z.s2.Clear()
}

func (z *Zip3[T0, T1, T2]) PushBack(t Tuple3[T0, T1, T2]) {
	z.require(seq.CapAppend, "PushBack")
	z.s0.Insert(z.s0.Len(), t.First)
	z.s1.Insert(z.s1.Len(), t.Second)
	z.s2.Insert(z.s2.Len(), t.Third)
}

func (z *Zip3[T0, T1, T2]) PopBack() {
	assert.True(!z.IsEmpty())
	z.s0.Remove(z.s0.Len()-1, z.s0.Len())
	z.s1.Remove(z.s1.Len()-1, z.s1.Len())
	z.s2.Remove(z.s2.Len()-1, z.s2.Len())
}

func (z *Zip3[T0, T1, T2]) Insert(pos Iter3[T0, T1, T2], t Tuple3[T0, T1, T2]) Iter3[T0, T1, T2] {
	return z.InsertN(pos, 1, t)
}

func (z *Zip3[T0, T1, T2]) InsertN(pos Iter3[T0, T1, T2], n int, t Tuple3[T0, T1, T2]) Iter3[T0, T1, T2] {
	assert.True(pos.z == z)
	assert.True(pos.pos >= 0 && pos.pos <= z.Len())
	reserve(z.s0, n)
	reserve(z.s1, n)
	reserve(z.s2, n)
	z.s0.Insert(pos.pos, repeat(t.First, n)...)
	z.s1.Insert(pos.pos, repeat(t.Second, n)...)
	z.s2.Insert(pos.pos, repeat(t.Third, n)...)
	return Iter3[T0, T1, T2]{z: z, pos: pos.pos}
}

func (z *Zip3[T0, T1, T2]) InsertRange(pos, first, last Iter3[T0, T1, T2]) Iter3[T0, T1, T2] {
	assert.True(pos.z == z && first.z == z && last.z == z)
	assert.True(first.pos <= last.pos)
	n := last.pos - first.pos
	v0 := make([]T0, 0, n)
	v1 := make([]T1, 0, n)
	v2 := make([]T2, 0, n)
	for i := first.pos; i < last.pos; i++ {
		v := z.Index(i)
		v0 = append(v0, *v.first)
		v1 = append(v1, *v.second)
		v2 = append(v2, *v.third)
	}
	reserve(z.s0, n)
	reserve(z.s1, n)
	reserve(z.s2, n)
	z.s0.Insert(pos.pos, v0...)
	z.s1.Insert(pos.pos, v1...)
	z.s2.Insert(pos.pos, v2...)
	return Iter3[T0, T1, T2]{z: z, pos: pos.pos}
}

func (z *Zip3[T0, T1, T2]) Erase(pos Iter3[T0, T1, T2]) Iter3[T0, T1, T2] {
	next := pos
	next.pos++
	return z.EraseRange(pos, next)
}

func (z *Zip3[T0, T1, T2]) EraseRange(first, last Iter3[T0, T1, T2]) Iter3[T0, T1, T2] {
	assert.True(first.z == z && last.z == z)
	assert.True(first.pos <= last.pos && last.pos <= z.Len())
	z.s0.Remove(first.pos, last.pos)
	z.s1.Remove(first.pos, last.pos)
	z.s2.Remove(first.pos, last.pos)
	return Iter3[T0, T1, T2]{z: z, pos: first.pos}
}

func (z *Zip3[T0, T1, T2]) Swap(i, j int) {
	swapAt(z.s0, i, j)
	swapAt(z.s1, i, j)
	swapAt(z.s2, i, j)
}

func (z *Zip3[T0, T1, T2]) Dump() string {
	tuples := make([]Tuple3[T0, T1, T2], 0, z.Len())
	z.Scan(func(v View3[T0, T1, T2]) {
		tuples = append(tuples, v.Get())
	})
	return litter.Sdump(tuples)
}
