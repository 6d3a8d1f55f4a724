package zip

// Find2 linearly searches for the first logical element equal, slot by
// slot, to the value-mode tuple t. It returns End when nothing matches.
func Find2[T0, T1 comparable](z *Zip2[T0, T1], t Tuple2[T0, T1]) Iter2[T0, T1] {
	for it := z.Begin(); it != z.End(); it.Next() {
		if it.View().Get() == t {
			return it
		}
	}
	return z.End()
}

func Find3[T0, T1, T2 comparable](z *Zip3[T0, T1, T2], t Tuple3[T0, T1, T2]) Iter3[T0, T1, T2] {
	for it := z.Begin(); it != z.End(); it.Next() {
		if it.View().Get() == t {
			return it
		}
	}
	return z.End()
}

// Contains2 reports whether some logical element equals t slot by slot.
func Contains2[T0, T1 comparable](z *Zip2[T0, T1], t Tuple2[T0, T1]) bool {
	return Find2(z, t) != z.End()
}

func Contains3[T0, T1, T2 comparable](z *Zip3[T0, T1, T2], t Tuple3[T0, T1, T2]) bool {
	return Find3(z, t) != z.End()
}
