package vec

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// This file contains package-level generic functions for operations that
// either change the element type (Vec[T] → Vec[R]) or need a tighter
// constraint than the `any` that Vec[T] is declared with.
//
// Go generics do not allow methods to introduce their own type parameters or
// narrow the receiver's, so these operations must be stand-alone functions.

// Number is the set of element types that convert to each other with a plain
// Go conversion.
type Number interface {
	constraints.Integer | constraints.Float
}

// Map applies fn to every element and returns a new Vec[R] of the same
// length. fn is called once per element, in order.
//
//	labels := vec.Map(vec.New(1, 2, 3), strconv.Itoa)
func Map[T, R any](v *Vec[T], fn func(T) R) *Vec[R] {
	out := make([]R, len(v.items))
	for i, item := range v.items {
		out[i] = fn(item)
	}
	return &Vec[R]{items: out}
}

// Convert is [Map] under the name used for element-type conversion. There is
// no implicit conversion between Vec types; spell out fn.
func Convert[T, R any](v *Vec[T], fn func(T) R) *Vec[R] { return Map(v, fn) }

// ConvertNumber converts every element of v to U with a Go conversion.
//
//	floats := vec.ConvertNumber[float64](vec.New(1, 2, 3))
func ConvertNumber[U, T Number](v *Vec[T]) *Vec[U] {
	return Map(v, func(n T) U { return U(n) })
}

// EmplaceNumber converts n to the element type and inserts it at pos.
func EmplaceNumber[T, N Number](v *Vec[T], pos int, n N) (int, error) {
	return v.Emplace(pos, T(n))
}

// Min returns the smallest element, or [ErrEmptyContainer].
func Min[T constraints.Ordered](v *Vec[T]) (T, error) {
	_, m, err := v.MinFunc(compare[T])
	return m, err
}

// Max returns the largest element, or [ErrEmptyContainer].
func Max[T constraints.Ordered](v *Vec[T]) (T, error) {
	_, m, err := v.MaxFunc(compare[T])
	return m, err
}

// MinIndex returns the position and value of the smallest element.
// Ties resolve to the first occurrence.
//
//	i, n, _ := vec.MinIndex(vec.New(5, 3, 9, 1)) // 3, 1
func MinIndex[T constraints.Ordered](v *Vec[T]) (int, T, error) {
	return v.MinFunc(compare[T])
}

// MaxIndex returns the position and value of the largest element.
// Ties resolve to the first occurrence.
func MaxIndex[T constraints.Ordered](v *Vec[T]) (int, T, error) {
	return v.MaxFunc(compare[T])
}

// Sort returns a new Vec with the elements in ascending order.
// The sort is stable.
func Sort[T constraints.Ordered](v *Vec[T]) *Vec[T] {
	out := v.All()
	slices.SortStableFunc(out, compare[T])
	return &Vec[T]{items: out}
}

// IsSorted reports whether v is in ascending order.
func IsSorted[T constraints.Ordered](v *Vec[T]) bool {
	return slices.IsSortedFunc(v.items, compare[T])
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Vec[T]) bool {
	return slices.Equal(a.items, b.items)
}

// IndexOf returns the position of the first element equal to value, or -1.
func IndexOf[T comparable](v *Vec[T], value T) int {
	return slices.Index(v.items, value)
}

func compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
