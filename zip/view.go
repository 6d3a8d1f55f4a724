package zip

import "cmp"

// View2 is a reference-mode tuple: every slot aliases a live element.
// Copying a view copies the aliases, so reads and writes through the copy
// still reach the same elements. A view never owns storage and follows the
// invalidation rules of the sequences it points into.
type View2[T0, T1 any] struct {
	first  *T0
	second *T1
}

type View3[T0, T1, T2 any] struct {
	first  *T0
	second *T1
	third  *T2
}

func NewView2[T0, T1 any](first *T0, second *T1) View2[T0, T1] {
	return View2[T0, T1]{first: first, second: second}
}

func NewView3[T0, T1, T2 any](first *T0, second *T1, third *T2) View3[T0, T1, T2] {
	return View3[T0, T1, T2]{first: first, second: second, third: third}
}

func (v View2[T0, T1]) First() *T0 {
	return v.first
}

func (v View2[T0, T1]) Second() *T1 {
	return v.second
}

// Refs decomposes the view into its slot pointers. The pointers stay live
// references into the owned sequences however the caller stores them.
func (v View2[T0, T1]) Refs() (*T0, *T1) {
	return v.first, v.second
}

// Get copies the aliased elements into a value-mode tuple. This is the only
// view-to-tuple conversion; there is no conversion back.
func (v View2[T0, T1]) Get() Tuple2[T0, T1] {
	return Tuple2[T0, T1]{First: *v.first, Second: *v.second}
}

// Set writes the tuple's values through to the aliased elements.
func (v View2[T0, T1]) Set(t Tuple2[T0, T1]) {
	*v.first = t.First
	*v.second = t.Second
}

// Assign copies the elements aliased by other onto the elements aliased by
// v. The aliases themselves never change.
func (v View2[T0, T1]) Assign(other View2[T0, T1]) {
	*v.first = *other.first
	*v.second = *other.second
}

// Swap exchanges the aliased elements, not the references.
func (v View2[T0, T1]) Swap(other View2[T0, T1]) {
	*v.first, *other.first = *other.first, *v.first
	*v.second, *other.second = *other.second, *v.second
}

func (v View3[T0, T1, T2]) First() *T0 {
	return v.first
}

func (v View3[T0, T1, T2]) Second() *T1 {
	return v.second
}

func (v View3[T0, T1, T2]) Third() *T2 {
	return v.third
}

func (v View3[T0, T1, T2]) Refs() (*T0, *T1, *T2) {
	return v.first, v.second, v.third
}

func (v View3[T0, T1, T2]) Get() Tuple3[T0, T1, T2] {
	return Tuple3[T0, T1, T2]{First: *v.first, Second: *v.second, Third: *v.third}
}

func (v View3[T0, T1, T2]) Set(t Tuple3[T0, T1, T2]) {
	*v.first = t.First
	*v.second = t.Second
	*v.third = t.Third
}

func (v View3[T0, T1, T2]) Assign(other View3[T0, T1, T2]) {
	*v.first = *other.first
	*v.second = *other.second
	*v.third = *other.third
}

func (v View3[T0, T1, T2]) Swap(other View3[T0, T1, T2]) {
	*v.first, *other.first = *other.first, *v.first
	*v.second, *other.second = *other.second, *v.second
	*v.third, *other.third = *other.third, *v.third
}

// ViewEq2 compares all slots element-wise.
func ViewEq2[T0, T1 comparable](lhs, rhs View2[T0, T1]) bool {
	return *lhs.first == *rhs.first && *lhs.second == *rhs.second
}

func ViewEq3[T0, T1, T2 comparable](lhs, rhs View3[T0, T1, T2]) bool {
	return *lhs.first == *rhs.first && *lhs.second == *rhs.second && *lhs.third == *rhs.third
}

// ViewLess2 applies the first-slot-only ordering to views.
func ViewLess2[T0 cmp.Ordered, T1 any](lhs, rhs View2[T0, T1]) bool {
	return *lhs.first < *rhs.first
}

func ViewLess3[T0 cmp.Ordered, T1, T2 any](lhs, rhs View3[T0, T1, T2]) bool {
	return *lhs.first < *rhs.first
}
