package vec

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"golang.org/x/exp/slices"
)

// Vec is a generic, growable, indexable sequence of T.
//
// Derived-sequence operations (Filter, Take, SortFunc, [Map], [Sort], …)
// return a *new* Vec and leave the receiver unchanged. Mutators (PushBack,
// Insert, Erase, Resize, …) modify the receiver in place.
//
// # Creating a vector
//
//	v := vec.New(1, 2, 3, 4, 5)
//	v := vec.From([]string{"a", "b", "c"})
//	v := vec.Filled(3, "x")
//	v := vec.Empty[int]()
//
// The zero value is an empty vector ready to use.
//
// # Checked and unchecked access
//
// [Vec.At] bounds-checks and returns [ErrOutOfRange]; [Vec.AtOr] substitutes
// a fallback instead of failing; [Vec.Index] skips the check and panics like
// a slice index when pos is out of range.
//
// # Invalidation
//
// Slices returned by [Vec.Data], pointers returned by [Vec.Ref] and
// [Vec.EmplaceBack], and every [Cursor] are valid only until the next
// structural mutation. Cursors detect this and return [ErrStaleCursor];
// slices and pointers cannot, so re-fetch them after mutating.
//
// # Concurrency
//
// A Vec is not synchronised. Any number of goroutines may read the same
// vector as long as none of them mutates it.
type Vec[T any] struct {
	items []T
	gen   uint64
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Vec from a variadic list of items (copied).
func New[T any](items ...T) *Vec[T] {
	return From(items)
}

// From creates a Vec from a slice (the slice is copied).
func From[T any](items []T) *Vec[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Vec[T]{items: dst}
}

// Empty creates an empty Vec of type T.
func Empty[T any]() *Vec[T] {
	return &Vec[T]{items: []T{}}
}

// Make creates a Vec holding n zero values. A negative n yields an empty Vec.
func Make[T any](n int) *Vec[T] {
	return &Vec[T]{items: make([]T, max(n, 0))}
}

// Filled creates a Vec holding n copies of value.
func Filled[T any](n int, value T) *Vec[T] {
	items := make([]T, max(n, 0))
	for i := range items {
		items[i] = value
	}
	return &Vec[T]{items: items}
}

// FromSeq creates a Vec from every value yielded by seq, in order.
func FromSeq[T any](seq iter.Seq[T]) *Vec[T] {
	items := []T{}
	for item := range seq {
		items = append(items, item)
	}
	return &Vec[T]{items: items}
}

// FromSequence copies the elements of s, in order.
func FromSequence[T any](s Sequence[T]) *Vec[T] {
	items := make([]T, 0, s.Len())
	for item := range s.Values() {
		items = append(items, item)
	}
	return &Vec[T]{items: items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Copy, move & assignment
// ─────────────────────────────────────────────────────────────────────────────

// Clone returns an independent copy of v.
func (v *Vec[T]) Clone() *Vec[T] { return From(v.items) }

// Assign replaces the contents of v with a copy of other's elements.
func (v *Vec[T]) Assign(other *Vec[T]) {
	if v == other {
		return
	}
	v.AssignList(other.items...)
}

// AssignList replaces the contents of v with a copy of items.
func (v *Vec[T]) AssignList(items ...T) {
	dst := make([]T, len(items))
	copy(dst, items)
	v.items = dst
	v.touch()
}

// Move transfers v's storage to a new Vec and leaves v empty.
// No elements are copied.
func (v *Vec[T]) Move() *Vec[T] {
	out := &Vec[T]{items: v.items}
	v.items = nil
	v.touch()
	return out
}

// MoveFrom takes over other's storage and leaves other empty.
func (v *Vec[T]) MoveFrom(other *Vec[T]) {
	if v == other {
		return
	}
	v.items = other.items
	other.items = nil
	v.touch()
	other.touch()
}

// Swap exchanges the storage of v and other without copying elements.
func (v *Vec[T]) Swap(other *Vec[T]) {
	if v == other {
		return
	}
	v.items, other.items = other.items, v.items
	v.touch()
	other.touch()
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// At returns the element at pos, or an error wrapping [ErrOutOfRange].
func (v *Vec[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= len(v.items) {
		var zero T
		return zero, outOfRange(pos, len(v.items))
	}
	return v.items[pos], nil
}

// AtOr returns the element at pos, or fallback when pos is out of range.
func (v *Vec[T]) AtOr(pos int, fallback T) T {
	if pos < 0 || pos >= len(v.items) {
		return fallback
	}
	return v.items[pos]
}

// Index returns the element at pos without a bounds check of its own.
// It panics like a slice index expression when pos is out of range.
func (v *Vec[T]) Index(pos int) T { return v.items[pos] }

// Set overwrites the element at pos.
func (v *Vec[T]) Set(pos int, value T) error {
	if pos < 0 || pos >= len(v.items) {
		return outOfRange(pos, len(v.items))
	}
	v.items[pos] = value
	return nil
}

// Ref returns a pointer to the stored element at pos.
// The pointer is valid until the next structural mutation of v.
func (v *Vec[T]) Ref(pos int) (*T, error) {
	if pos < 0 || pos >= len(v.items) {
		return nil, outOfRange(pos, len(v.items))
	}
	return &v.items[pos], nil
}

// Front returns the first element, or [ErrEmptyContainer].
func (v *Vec[T]) Front() (T, error) {
	if len(v.items) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: front", ErrEmptyContainer)
	}
	return v.items[0], nil
}

// Back returns the last element, or [ErrEmptyContainer].
func (v *Vec[T]) Back() (T, error) {
	if len(v.items) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: back", ErrEmptyContainer)
	}
	return v.items[len(v.items)-1], nil
}

// Data returns the backing storage itself, not a copy.
// The slice is valid until the next structural mutation of v.
func (v *Vec[T]) Data() []T { return v.items }

// All returns a copy of the stored elements.
func (v *Vec[T]) All() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// ToSlice is an alias for [Vec.All].
func (v *Vec[T]) ToSlice() []T { return v.All() }

// Mask returns the elements whose corresponding mask entry is true, in order.
// mask must have exactly Len() entries; otherwise [ErrLengthMismatch] is
// returned.
func (v *Vec[T]) Mask(mask Sequence[bool]) (*Vec[T], error) {
	if n := mask.Len(); n != len(v.items) {
		return nil, fmt.Errorf("%w: mask has %d entries, vector has %d", ErrLengthMismatch, n, len(v.items))
	}
	out := make([]T, 0, len(v.items))
	i := 0
	for keep := range mask.Values() {
		if i == len(v.items) {
			break
		}
		if keep {
			out = append(out, v.items[i])
		}
		i++
	}
	return &Vec[T]{items: out}, nil
}

// Gather returns one element per entry of indices: out[k] = v[indices[k]].
// Any index outside [0, Len()-1] fails the whole call with [ErrOutOfRange].
func (v *Vec[T]) Gather(indices Sequence[int]) (*Vec[T], error) {
	out := make([]T, 0, indices.Len())
	for idx := range indices.Values() {
		if idx < 0 || idx >= len(v.items) {
			return nil, outOfRange(idx, len(v.items))
		}
		out = append(out, v.items[idx])
	}
	return &Vec[T]{items: out}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Values yields every element in storage order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(v.items); i++ {
			if !yield(v.items[i]) {
				return
			}
		}
	}
}

// Enumerate yields (position, element) pairs in storage order.
func (v *Vec[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(v.items); i++ {
			if !yield(i, v.items[i]) {
				return
			}
		}
	}
}

// Backward yields (position, element) pairs from the last element to the
// first.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(v.items) - 1; i >= 0; i-- {
			if i >= len(v.items) {
				continue
			}
			if !yield(i, v.items[i]) {
				return
			}
		}
	}
}

// Each calls fn(item, index) for every element.
func (v *Vec[T]) Each(fn func(T, int)) {
	for i, item := range v.items {
		fn(item, i)
	}
}

// Tap calls fn(v) for side-effects and returns v for further chaining.
func (v *Vec[T]) Tap(fn func(*Vec[T])) *Vec[T] {
	fn(v)
	return v
}

// Dump prints v to stdout and returns v for chaining.
func (v *Vec[T]) Dump() *Vec[T] {
	fmt.Println(v.String())
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Capacity
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return len(v.items) }

// Cap returns the number of elements v can hold before it must reallocate.
func (v *Vec[T]) Cap() int { return cap(v.items) }

// IsEmpty reports whether v holds no elements.
func (v *Vec[T]) IsEmpty() bool { return len(v.items) == 0 }

// IsNotEmpty reports whether v holds at least one element.
func (v *Vec[T]) IsNotEmpty() bool { return len(v.items) > 0 }

// Reserve ensures Cap() >= n without changing the elements.
func (v *Vec[T]) Reserve(n int) {
	if n <= cap(v.items) {
		return
	}
	v.items = slices.Grow(v.items, n-len(v.items))
	v.touch()
}

// ShrinkToFit reallocates the storage so that Cap() == Len().
func (v *Vec[T]) ShrinkToFit() {
	if cap(v.items) == len(v.items) {
		return
	}
	dst := make([]T, len(v.items))
	copy(dst, v.items)
	v.items = dst
	v.touch()
}

// ─────────────────────────────────────────────────────────────────────────────
// Modifiers
// ─────────────────────────────────────────────────────────────────────────────

// Clear removes every element. Capacity is kept.
func (v *Vec[T]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
	v.touch()
}

// Erase removes the element at pos, shifting later elements left.
// It returns pos, which now addresses the element that followed the erased
// one (or Len() if the last element was erased).
func (v *Vec[T]) Erase(pos int) (int, error) {
	if pos < 0 || pos >= len(v.items) {
		return pos, outOfRange(pos, len(v.items))
	}
	v.items = slices.Delete(v.items, pos, pos+1)
	v.touch()
	return pos, nil
}

// EraseRange removes the elements in [first, last) and returns first.
func (v *Vec[T]) EraseRange(first, last int) (int, error) {
	if first < 0 || first > last || last > len(v.items) {
		return first, fmt.Errorf("%w: [%d, %d) of %d", ErrInvalidRange, first, last, len(v.items))
	}
	if first == last {
		return first, nil
	}
	v.items = slices.Delete(v.items, first, last)
	v.touch()
	return first, nil
}

// PushBack appends values at the end.
func (v *Vec[T]) PushBack(values ...T) {
	v.items = append(v.items, values...)
	v.touch()
}

// EmplaceBack appends a zero value, lets init fill it in place, and returns a
// pointer to the new element. init may be nil.
//
//	p := points.EmplaceBack(func(p *Point) { p.X, p.Y = 1, 2 })
func (v *Vec[T]) EmplaceBack(init func(*T)) *T {
	var zero T
	v.items = append(v.items, zero)
	v.touch()
	p := &v.items[len(v.items)-1]
	if init != nil {
		init(p)
	}
	return p
}

// Emplace inserts value at pos, shifting later elements right, and returns
// pos. pos may equal Len() to append.
func (v *Vec[T]) Emplace(pos int, value T) (int, error) {
	return v.Insert(pos, value)
}

// Insert inserts values at pos, shifting later elements right, and returns
// pos.
func (v *Vec[T]) Insert(pos int, values ...T) (int, error) {
	if pos < 0 || pos > len(v.items) {
		return pos, outOfRange(pos, len(v.items))
	}
	v.items = slices.Insert(v.items, pos, values...)
	v.touch()
	return pos, nil
}

// PopBack removes and returns the last element, or [ErrEmptyContainer].
func (v *Vec[T]) PopBack() (T, error) {
	var zero T
	n := len(v.items)
	if n == 0 {
		return zero, fmt.Errorf("%w: pop", ErrEmptyContainer)
	}
	last := v.items[n-1]
	v.items[n-1] = zero
	v.items = v.items[:n-1]
	v.touch()
	return last, nil
}

// Resize grows v with zero values, or truncates it, to exactly n elements.
// A negative n is treated as 0.
func (v *Vec[T]) Resize(n int) {
	var zero T
	v.ResizeWith(n, zero)
}

// ResizeWith grows v with copies of value, or truncates it, to exactly n
// elements. A negative n is treated as 0.
func (v *Vec[T]) ResizeWith(n int, value T) {
	n = max(n, 0)
	if n <= len(v.items) {
		clear(v.items[n:])
		v.items = v.items[:n]
		v.touch()
		return
	}
	v.items = slices.Grow(v.items, n-len(v.items))
	for len(v.items) < n {
		v.items = append(v.items, value)
	}
	v.touch()
}

// ─────────────────────────────────────────────────────────────────────────────
// Derived sequences (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new Vec with only the elements for which fn returns true.
func (v *Vec[T]) Filter(fn func(T) bool) *Vec[T] {
	out := make([]T, 0, len(v.items))
	for _, item := range v.items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return &Vec[T]{items: out}
}

// Reject is the complement of [Vec.Filter].
func (v *Vec[T]) Reject(fn func(T) bool) *Vec[T] {
	return v.Filter(func(item T) bool { return !fn(item) })
}

// Take returns a new Vec with the first n elements.
// n greater than Len() (or negative) fails with [ErrOutOfRange].
func (v *Vec[T]) Take(n int) (*Vec[T], error) {
	if n < 0 || n > len(v.items) {
		return nil, fmt.Errorf("%w: take %d of %d", ErrOutOfRange, n, len(v.items))
	}
	return From(v.items[:n]), nil
}

// Reverse returns a new Vec with the elements in reverse order.
func (v *Vec[T]) Reverse() *Vec[T] {
	out := v.All()
	slices.Reverse(out)
	return &Vec[T]{items: out}
}

// SortFunc returns a new Vec sorted by less.
// The sort is stable: equal elements keep their original order.
func (v *Vec[T]) SortFunc(less func(a, b T) bool) *Vec[T] {
	out := v.All()
	slices.SortStableFunc(out, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
	return &Vec[T]{items: out}
}

// MinFunc returns the position and value of the smallest element according
// to cmp. Ties resolve to the first occurrence.
func (v *Vec[T]) MinFunc(cmp func(a, b T) int) (int, T, error) {
	return v.extreme(cmp, -1)
}

// MaxFunc returns the position and value of the largest element according
// to cmp. Ties resolve to the first occurrence.
func (v *Vec[T]) MaxFunc(cmp func(a, b T) int) (int, T, error) {
	return v.extreme(cmp, 1)
}

func (v *Vec[T]) extreme(cmp func(a, b T) int, sign int) (int, T, error) {
	if len(v.items) == 0 {
		var zero T
		return -1, zero, fmt.Errorf("%w: min/max", ErrEmptyContainer)
	}
	best := 0
	for i := 1; i < len(v.items); i++ {
		if cmp(v.items[i], v.items[best])*sign > 0 {
			best = i
		}
	}
	return best, v.items[best], nil
}

// Contains reports whether at least one element satisfies fn.
func (v *Vec[T]) Contains(fn func(T) bool) bool {
	return v.Search(fn) >= 0
}

// Search returns the position of the first element satisfying fn, or -1.
func (v *Vec[T]) Search(fn func(T) bool) int {
	return slices.IndexFunc(v.items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Rendering
// ─────────────────────────────────────────────────────────────────────────────

// String renders v as "{ e0, e1, … }"; an empty Vec renders as "{  }".
// Elements are formatted with %v. It implements [fmt.Stringer] for both Vec
// and *Vec, so a Vec held by value renders the same way.
func (v Vec[T]) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, item := range v.items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, item)
	}
	b.WriteString(" }")
	return b.String()
}

// WriteTo writes the [Vec.String] form of v to w. It implements [io.WriterTo].
func (v *Vec[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.String())
	return int64(n), err
}

// MarshalJSON encodes v as a JSON array. An empty Vec encodes as [].
// The value receiver lets a Vec stored by value (struct field, map value)
// encode as an array too.
func (v Vec[T]) MarshalJSON() ([]byte, error) {
	if v.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.items)
}

// UnmarshalJSON replaces the contents of v with the decoded JSON array.
// JSON null is accepted and leaves v empty, as it does for a plain slice.
// On error v is left unchanged.
func (v *Vec[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	v.items = items
	v.touch()
	return nil
}

// touch records a structural mutation so that outstanding cursors go stale.
func (v *Vec[T]) touch() { v.gen++ }

func outOfRange(pos, n int) error {
	return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, pos, n)
}
