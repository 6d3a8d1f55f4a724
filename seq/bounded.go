package seq

import "fmt"

var _ = Sequence[struct{}]((*Bounded[struct{}])(nil))

// Bounded is a fixed-capacity array sequence. It never grows past the
// capacity given at construction and therefore does not declare CapAppend.
type Bounded[T any] struct {
	elems    []T
	capacity int
}

func NewBounded[T any](capacity int, args ...T) *Bounded[T] {
	if capacity < len(args) {
		panic(fmt.Sprintf("seq: bounded capacity %d smaller than initial length %d", capacity, len(args)))
	}
	elems := make([]T, len(args), capacity)
	copy(elems, args)
	return &Bounded[T]{elems: elems, capacity: capacity}
}

func (b *Bounded[T]) Len() int {
	return len(b.elems)
}

func (b *Bounded[T]) Cap() int {
	return b.capacity
}

func (b *Bounded[T]) At(i int) *T {
	return &b.elems[i]
}

func (b *Bounded[T]) Insert(i int, vs ...T) {
	if len(b.elems)+len(vs) > b.capacity {
		panic(fmt.Sprintf("seq: bounded capacity %d exceeded", b.capacity))
	}
	b.elems = append(b.elems, vs...)
	copy(b.elems[i+len(vs):], b.elems[i:])
	copy(b.elems[i:], vs)
}

func (b *Bounded[T]) Remove(i, j int) {
	b.elems = append(b.elems[:i], b.elems[j:]...)
}

func (b *Bounded[T]) Clear() {
	b.elems = b.elems[:0]
}

func (b *Bounded[T]) Caps() Capability {
	return CapRandomAccess | CapBidirectional
}

func (b *Bounded[T]) Clone() Sequence[T] {
	elems := make([]T, len(b.elems), b.capacity)
	copy(elems, b.elems)
	return &Bounded[T]{elems: elems, capacity: b.capacity}
}
