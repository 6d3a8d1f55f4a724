// Package seq defines the capability surface a sequence type must expose to
// the zip containers, plus concrete sequences: Slice (growable array),
// Bounded (fixed-capacity array) and Linked (doubly-linked list).
package seq

// Sequence is ordered, index-addressable element storage. At returns a
// pointer to the live element, so writes through it are visible to every
// other reader of the sequence; pointers obtained from At follow the
// invalidation rules of the concrete type (a Slice reallocation invalidates
// all of them, a Linked never does).
//
// Cap reports the maximum number of elements the sequence can hold, or -1
// when unbounded. Callers inserting into a bounded sequence must check the
// headroom first; overflowing it is a contract violation.
type Sequence[T any] interface {
	Len() int
	Cap() int
	At(i int) *T
	Insert(i int, vs ...T)
	Remove(i, j int)
	Clear()
	Caps() Capability
	Clone() Sequence[T]
}
