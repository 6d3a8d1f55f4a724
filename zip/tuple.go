package zip

import "cmp"

// Tuple2 is a value-mode tuple: every slot owns an independent copy. It is
// the payload type for lockstep mutation and the temporary type for
// algorithms (search keys, sort pivots).
type Tuple2[T0, T1 any] struct {
	First  T0
	Second T1
}

type Tuple3[T0, T1, T2 any] struct {
	First  T0
	Second T1
	Third  T2
}

// Less2 orders tuples by the first slot only; remaining slots never break
// ties. Callers must not rely on a lexicographic fallback, there is none.
func Less2[T0 cmp.Ordered, T1 any](lhs, rhs Tuple2[T0, T1]) bool {
	return lhs.First < rhs.First
}

func Less3[T0 cmp.Ordered, T1, T2 any](lhs, rhs Tuple3[T0, T1, T2]) bool {
	return lhs.First < rhs.First
}
