package zip

import (
	"cmp"

	"github.com/CodeSheep123/multi-container/seq"
)

// Sort2 reorders the whole container by the permutation that sorts
// sequence 0 ascending: the first-slot-only ordering applied through the
// lockstep Swap, so both sequences move together.
func Sort2[T0 cmp.Ordered, T1 any](z *Zip2[T0, T1]) {
	z.require(seq.CapRandomAccess, "Sort2")
	sortContainer(func(i, j int) bool {
		return *z.s0.At(i) < *z.s0.At(j)
	}, z.Swap, z.Len())
}

func Sort3[T0 cmp.Ordered, T1, T2 any](z *Zip3[T0, T1, T2]) {
	z.require(seq.CapRandomAccess, "Sort3")
	sortContainer(func(i, j int) bool {
		return *z.s0.At(i) < *z.s0.At(j)
	}, z.Swap, z.Len())
}

// SortBy2 reorders the container by a caller ordering over value-mode
// tuples.
func SortBy2[T0, T1 any](z *Zip2[T0, T1], fn func(lhs, rhs Tuple2[T0, T1]) bool) {
	z.require(seq.CapRandomAccess, "SortBy2")
	sortContainer(func(i, j int) bool {
		return fn(z.Index(i).Get(), z.Index(j).Get())
	}, z.Swap, z.Len())
}

func SortBy3[T0, T1, T2 any](z *Zip3[T0, T1, T2], fn func(lhs, rhs Tuple3[T0, T1, T2]) bool) {
	z.require(seq.CapRandomAccess, "SortBy3")
	sortContainer(func(i, j int) bool {
		return fn(z.Index(i).Get(), z.Index(j).Get())
	}, z.Swap, z.Len())
}

func sortContainer(less func(i, j int) bool, swap func(i, j int), length int) {
	sortQuick(sortLessSwap{less, swap}, 0, length, sortMaxDepth(length))
}

type sortLessSwap struct {
	Less func(i, j int) bool
	Swap func(i, j int)
}

func sortQuick(data sortLessSwap, a, b, maxDepth int) {
	for b-a > 12 {
		if maxDepth == 0 {
			sortHeap(data, a, b)
			return
		}
		maxDepth--
		mlo, mhi := sortDoPivot(data, a, b)
		if mlo-a < b-mhi {
			sortQuick(data, a, mlo, maxDepth)
			a = mhi
		} else {
			sortQuick(data, mhi, b, maxDepth)
			b = mlo
		}
	}
	if b-a > 1 {
		for i := a + 6; i < b; i++ {
			if data.Less(i, i-6) {
				data.Swap(i, i-6)
			}
		}
		sortInsertion(data, a, b)
	}
}

func sortMaxDepth(n int) int {
	var depth int
	for i := n; i > 0; i >>= 1 {
		depth++
	}
	return depth * 2
}

func sortInsertion(data sortLessSwap, a, b int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && data.Less(j, j-1); j-- {
			data.Swap(j, j-1)
		}
	}
}

func sortShiftDown(data sortLessSwap, lo, hi, first int) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			break
		}
		if child+1 < hi && data.Less(first+child, first+child+1) {
			child++
		}
		if !data.Less(first+root, first+child) {
			return
		}
		data.Swap(first+root, first+child)
		root = child
	}
}

func sortHeap(data sortLessSwap, a, b int) {
	first := a
	lo := 0
	hi := b - a
	for i := (hi - 1) / 2; i >= 0; i-- {
		sortShiftDown(data, i, hi, first)
	}
	for i := hi - 1; i >= 0; i-- {
		data.Swap(first, first+i)
		sortShiftDown(data, lo, i, first)
	}
}

func sortMedianOfThree(data sortLessSwap, m1, m0, m2 int) {
	if data.Less(m1, m0) {
		data.Swap(m1, m0)
	}
	if data.Less(m2, m1) {
		data.Swap(m2, m1)
		if data.Less(m1, m0) {
			data.Swap(m1, m0)
		}
	}
}

func sortDoPivot(data sortLessSwap, lo, hi int) (midlo, midhi int) {
	m := int(uint(lo+hi) >> 1)
	if hi-lo > 40 {
		s := (hi - lo) / 8
		sortMedianOfThree(data, lo, lo+s, lo+2*s)
		sortMedianOfThree(data, m, m-s, m+s)
		sortMedianOfThree(data, hi-1, hi-1-s, hi-1-2*s)
	}
	sortMedianOfThree(data, lo, m, hi-1)
	pivot := lo
	a, c := lo+1, hi-1
	for ; a < c && data.Less(a, pivot); a++ {
	}
	b := a
	for {
		for ; b < c && !data.Less(pivot, b); b++ {
		}
		for ; b < c && data.Less(pivot, c-1); c-- {
		}
		if b >= c {
			break
		}
		data.Swap(b, c-1)
		b++
		c--
	}
	protect := hi-c < 5
	if !protect && hi-c < (hi-lo)/4 {
		dups := 0
		if !data.Less(pivot, hi-1) {
			data.Swap(c, hi-1)
			c++
			dups++
		}
		if !data.Less(b-1, pivot) {
			b--
			dups++
		}
		if !data.Less(m, pivot) {
			data.Swap(m, b-1)
			b--
			dups++
		}
		protect = dups > 1
	}
	if protect {
		for {
			for ; a < b && !data.Less(b-1, pivot); b-- {
			}
			for ; a < b && data.Less(a, pivot); a++ {
			}
			if a >= b {
				break
			}
			data.Swap(a, b-1)
			a++
			b--
		}
	}
	data.Swap(pivot, b-1)
	return b - 1, c
}
