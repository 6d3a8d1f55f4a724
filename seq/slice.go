package seq

var _ = Sequence[struct{}]((*Slice[struct{}])(nil))

// Slice is a growable array sequence.
type Slice[T any] []T

func NewSlice[T any](args ...T) *Slice[T] {
	result := make(Slice[T], len(args))
	copy(result, args)
	return &result
}

func (s *Slice[T]) Len() int {
	return len(*s)
}

func (s *Slice[T]) Cap() int {
	return -1
}

func (s *Slice[T]) At(i int) *T {
	return &(*s)[i]
}

func (s *Slice[T]) Insert(i int, vs ...T) {
	if len(vs) == 0 {
		return
	}
	*s = append(*s, vs...)
	copy((*s)[i+len(vs):], (*s)[i:])
	copy((*s)[i:], vs)
}

func (s *Slice[T]) Remove(i, j int) {
	*s = append((*s)[:i], (*s)[j:]...)
}

func (s *Slice[T]) Clear() {
	*s = (*s)[:0]
}

func (s *Slice[T]) Caps() Capability {
	return CapAppend | CapRandomAccess | CapBidirectional
}

func (s *Slice[T]) Clone() Sequence[T] {
	newSlice := make(Slice[T], s.Len())
	copy(newSlice, *s)
	return &newSlice
}
