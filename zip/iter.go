package zip

import (
	assert "github.com/arl/assertgo"

	"github.com/CodeSheep123/multi-container/seq"
)

// Iter2 addresses one logical position of a Zip2. It is a plain value:
// copies advance independently, and two iterators are equal (==) exactly
// when they address the same position of the same container. The zero value
// has no target and must not be dereferenced.
//
// Prev needs every owned sequence to declare seq.CapBidirectional; Advance
// and Distance need seq.CapRandomAccess. The capability set is fixed when
// the container is built, so calling a gated operation on a container that
// lacks it is a misuse of the type, not a data-dependent failure, and
// panics.
type Iter2[T0, T1 any] struct {
	z   *Zip2[T0, T1]
	pos int
}

type Iter3[T0, T1, T2 any] struct {
	z   *Zip3[T0, T1, T2]
	pos int
}

func (it Iter2[T0, T1]) Valid() bool {
	return it.z != nil && it.pos >= 0 && it.pos < it.z.Len()
}

func (it Iter2[T0, T1]) Pos() int {
	return it.pos
}

// View dereferences the iterator into a reference-mode view over the
// current position of every sequence.
func (it Iter2[T0, T1]) View() View2[T0, T1] {
	assert.True(it.Valid())
	return it.z.Index(it.pos)
}

// Tuple copies the current logical element.
func (it Iter2[T0, T1]) Tuple() Tuple2[T0, T1] {
	return it.View().Get()
}

func (it *Iter2[T0, T1]) Next() {
	it.pos++
}

func (it *Iter2[T0, T1]) Prev() {
	it.z.require(seq.CapBidirectional, "Prev")
	it.pos--
}

func (it *Iter2[T0, T1]) Advance(n int) {
	it.z.require(seq.CapRandomAccess, "Advance")
	it.pos += n
}

// Distance returns the offset delta to another iterator over the same
// container. Iterators from different containers have no defined distance.
func (it Iter2[T0, T1]) Distance(to Iter2[T0, T1]) int {
	it.z.require(seq.CapRandomAccess, "Distance")
	assert.True(it.z == to.z)
	return to.pos - it.pos
}

func (it Iter3[T0, T1, T2]) Valid() bool {
	return it.z != nil && it.pos >= 0 && it.pos < it.z.Len()
}

func (it Iter3[T0, T1, T2]) Pos() int {
	return it.pos
}

func (it Iter3[T0, T1, T2]) View() View3[T0, T1, T2] {
	assert.True(it.Valid())
	return it.z.Index(it.pos)
}

func (it Iter3[T0, T1, T2]) Tuple() Tuple3[T0, T1, T2] {
	return it.View().Get()
}

func (it *Iter3[T0, T1, T2]) Next() {
	it.pos++
}

func (it *Iter3[T0, T1, T2]) Prev() {
	it.z.require(seq.CapBidirectional, "Prev")
	it.pos--
}

func (it *Iter3[T0, T1, T2]) Advance(n int) {
	it.z.require(seq.CapRandomAccess, "Advance")
	it.pos += n
}

func (it Iter3[T0, T1, T2]) Distance(to Iter3[T0, T1, T2]) int {
	it.z.require(seq.CapRandomAccess, "Distance")
	assert.True(it.z == to.z)
	return to.pos - it.pos
}
