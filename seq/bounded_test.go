package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodeSheep123/multi-container/seq"
)

func TestBounded(t *testing.T) {
	b := seq.NewBounded(4, "a", "b")
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 4, b.Cap())

	b.Insert(1, "x", "y")
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, "a", *b.At(0))
	assert.Equal(t, "x", *b.At(1))
	assert.Equal(t, "y", *b.At(2))
	assert.Equal(t, "b", *b.At(3))

	b.Remove(0, 2)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "y", *b.At(0))

	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 4, b.Cap())
}

func TestBoundedOverflowPanics(t *testing.T) {
	b := seq.NewBounded(2, 1)
	b.Insert(1, 2)
	assert.Panics(t, func() {
		b.Insert(0, 3)
	})
	assert.Panics(t, func() {
		seq.NewBounded(1, 1, 2)
	})
}

func TestBoundedCaps(t *testing.T) {
	b := seq.NewBounded[int](8)
	assert.False(t, b.Caps().Has(seq.CapAppend))
	assert.True(t, b.Caps().Has(seq.CapRandomAccess))
	assert.True(t, b.Caps().Has(seq.CapBidirectional))
}

func TestBoundedClone(t *testing.T) {
	b := seq.NewBounded(3, 1, 2)
	c := b.Clone()
	assert.Equal(t, 3, c.Cap())

	*c.At(1) = 20
	assert.Equal(t, 2, *b.At(1))

	c.Insert(c.Len(), 3)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 3, c.Len())
}
