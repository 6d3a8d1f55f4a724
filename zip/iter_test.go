package zip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodeSheep123/multi-container/zip"
)

func TestIterZeroValue(t *testing.T) {
	var it zip.Iter2[int, string]
	assert.False(t, it.Valid())
}

func TestIterEquality(t *testing.T) {
	z := newIntStr(t)
	other := newIntStr(t)

	assert.True(t, z.Begin() == z.Begin())
	assert.False(t, z.Begin() == z.End())
	// same positions over a different container never compare equal
	assert.False(t, z.Begin() == other.Begin())

	it := z.Begin()
	it.Advance(3)
	assert.True(t, it == z.End())
}

func TestIterCopyIsIndependent(t *testing.T) {
	z := newIntStr(t)

	it := z.Begin()
	cp := it
	cp.Next()

	assert.Equal(t, 0, it.Pos())
	assert.Equal(t, 1, cp.Pos())
}

func TestIterWalk(t *testing.T) {
	z := newIntStr(t)

	var ints []int
	for it := z.Begin(); it != z.End(); it.Next() {
		ints = append(ints, *it.View().First())
	}
	assert.Equal(t, []int{1, 2, 3}, ints)

	it := z.End()
	it.Prev()
	assert.Equal(t, "c", *it.View().Second())
	it.Prev()
	assert.Equal(t, "b", *it.View().Second())
}

func TestIterArithmetic(t *testing.T) {
	z := newIntStr(t)

	it := z.Begin()
	it.Advance(2)
	assert.Equal(t, 3, *it.View().First())
	it.Advance(-2)
	assert.Equal(t, 1, *it.View().First())

	assert.Equal(t, 3, it.Distance(z.End()))
	assert.Equal(t, -3, z.End().Distance(it))
	assert.Equal(t, 0, it.Distance(z.Begin()))
}

func TestIterDerefMatchesIndex(t *testing.T) {
	z := newIntStr(t)

	for i := 0; i < z.Len(); i++ {
		it := z.Begin()
		it.Advance(i)
		assert.True(t, zip.ViewEq2(z.Index(i), it.View()))

		// and they alias the same storage
		*it.View().First() = i * 10
		assert.Equal(t, i*10, *z.Index(i).First())
	}
}

func TestIterTuple(t *testing.T) {
	z := newIntStr(t)
	it := z.Begin()
	it.Next()
	assert.Equal(t, zip.Tuple2[int, string]{First: 2, Second: "b"}, it.Tuple())
}
