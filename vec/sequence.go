package vec

import "iter"

// Sequence is the read-only, positional surface satisfied by [Vec][T].
//
// Accept Sequence in your own functions when you only need to read elements
// by position, so that callers can pass a *Vec or any other indexable
// container. [Vec.Mask], [Vec.Gather] and [FromSequence] take a Sequence.
type Sequence[T any] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at pos, or an error wrapping ErrOutOfRange.
	At(pos int) (T, error)

	// Values yields every element in storage order.
	Values() iter.Seq[T]
}

// Slice adapts a plain Go slice to [Sequence] without copying it.
//
//	picked, err := v.Mask(vec.Slice[bool]{true, false, true})
type Slice[T any] []T

// Len returns len(s).
func (s Slice[T]) Len() int { return len(s) }

// At returns s[pos], or an error wrapping ErrOutOfRange.
func (s Slice[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= len(s) {
		var zero T
		return zero, outOfRange(pos, len(s))
	}
	return s[pos], nil
}

// Values yields the elements of s in order.
func (s Slice[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s {
			if !yield(item) {
				return
			}
		}
	}
}
