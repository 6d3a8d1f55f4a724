package zip

// Iterator is the scan surface the zip containers share with generic
// helpers: Zip2 satisfies Iterator[View2] and Zip3 satisfies
// Iterator[View3].
type Iterator[T any] interface {
	ScanIf(fn func(elem T) bool)
	Scan(fn func(elem T))
	Len() int
}

func Any[T any](iter Iterator[T], fn func(elem T) bool) bool {
	result := false
	iter.ScanIf(func(elem T) bool {
		if fn(elem) {
			result = true
			return false
		}
		return true
	})
	return result
}

func All[T any](iter Iterator[T], fn func(elem T) bool) bool {
	result := true
	iter.ScanIf(func(elem T) bool {
		if !fn(elem) {
			result = false
			return false
		}
		return true
	})
	return result
}

func Fold[T, U any](iter Iterator[T], init U, fn func(acc U, elem T) U) U {
	var acc = init
	iter.Scan(func(elem T) {
		acc = fn(acc, elem)
	})
	return acc
}

func Collect[T any](iter Iterator[T]) []T {
	result := make([]T, 0, iter.Len())
	iter.Scan(func(elem T) {
		result = append(result, elem)
	})
	return result
}
