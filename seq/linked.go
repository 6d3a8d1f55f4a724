package seq

var _ = Sequence[struct{}]((*Linked[struct{}])(nil))

// Linked is a doubly-linked sequence. At walks from the nearer end, so it
// does not declare CapRandomAccess; element pointers stay valid across
// inserts and removes of other positions.
type Linked[T any] struct {
	head   *linkedNode[T]
	tail   *linkedNode[T]
	length int
}

type linkedNode[T any] struct {
	prev  *linkedNode[T]
	next  *linkedNode[T]
	value T
}

func NewLinked[T any](args ...T) *Linked[T] {
	result := &Linked[T]{}
	result.Insert(0, args...)
	return result
}

func (l *Linked[T]) Len() int {
	return l.length
}

func (l *Linked[T]) Cap() int {
	return -1
}

func (l *Linked[T]) At(i int) *T {
	return &l.nodeAt(i).value
}

// nodeAt returns the i-th node, or nil when i == length.
func (l *Linked[T]) nodeAt(i int) *linkedNode[T] {
	if i == l.length {
		return nil
	}
	if i < l.length/2 {
		node := l.head
		for ; i > 0; i-- {
			node = node.next
		}
		return node
	}
	node := l.tail
	for i = l.length - 1 - i; i > 0; i-- {
		node = node.prev
	}
	return node
}

func (l *Linked[T]) Insert(i int, vs ...T) {
	for k := len(vs) - 1; k >= 0; k-- {
		l.insertBefore(l.nodeAt(i), vs[k])
	}
}

// insertBefore links a new node in front of at; at == nil appends at the tail.
func (l *Linked[T]) insertBefore(at *linkedNode[T], v T) {
	node := &linkedNode[T]{value: v}
	if at == nil {
		node.prev = l.tail
		if l.tail != nil {
			l.tail.next = node
		} else {
			l.head = node
		}
		l.tail = node
	} else {
		node.prev = at.prev
		node.next = at
		if at.prev != nil {
			at.prev.next = node
		} else {
			l.head = node
		}
		at.prev = node
	}
	l.length++
}

func (l *Linked[T]) Remove(i, j int) {
	for ; j > i; j-- {
		l.unlink(l.nodeAt(i))
	}
}

func (l *Linked[T]) unlink(node *linkedNode[T]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	l.length--
}

func (l *Linked[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.length = 0
}

func (l *Linked[T]) Caps() Capability {
	return CapAppend | CapBidirectional
}

func (l *Linked[T]) Clone() Sequence[T] {
	result := &Linked[T]{}
	for node := l.head; node != nil; node = node.next {
		result.insertBefore(nil, node.value)
	}
	return result
}
