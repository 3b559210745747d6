package vec

import "errors"

// Sentinel errors returned by Vec operations.
//
// Use [errors.Is] for comparisons; most call sites wrap them with the
// offending position or length:
//
//	_, err := v.At(10)
//	if errors.Is(err, vec.ErrOutOfRange) {
//	    // position was >= Len()
//	}
var (
	// ErrOutOfRange is returned when a position or count is outside
	// [0, Len()-1] (or [0, Len()] for counts).
	ErrOutOfRange = errors.New("vec: position out of range")

	// ErrEmptyContainer is returned when an operation requires at least one
	// element but the vector is empty.
	ErrEmptyContainer = errors.New("vec: operation on empty vector")

	// ErrLengthMismatch is returned by Mask when the mask and the vector have
	// different lengths.
	ErrLengthMismatch = errors.New("vec: length mismatch")

	// ErrInvalidRange is returned by EraseRange when first > last or either
	// bound falls outside [0, Len()].
	ErrInvalidRange = errors.New("vec: invalid range")

	// ErrStaleCursor is returned when a Cursor is used after the vector it
	// was taken from has been structurally modified.
	ErrStaleCursor = errors.New("vec: cursor invalidated by mutation")
)
