// Package vec provides Vec, a generic growable array with checked access and
// a small set of functional helpers (map, filter, sort, min/max with index,
// mask selection, gather).
//
// # Overview
//
// [Vec][T] owns a slice of T and exposes construction, access, iteration,
// capacity control and in-place mutation, plus derived-sequence operations
// that return a new Vec:
//
//	evens := vec.New(0, 1, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12).
//	    Filter(func(n int) bool { return n%2 == 0 })
//	fmt.Println(evens) // { 0, 4, 6, 8, 10, 12 }
//
// # Errors
//
// Checked operations return sentinel errors ([ErrOutOfRange],
// [ErrEmptyContainer], [ErrLengthMismatch], [ErrInvalidRange],
// [ErrStaleCursor]) wrapped with the offending position or length. A failed
// call never leaves the vector partially modified. [Vec.Index] is the one
// deliberately unchecked accessor.
//
// # Type-transforming and ordered operations
//
// Methods cannot introduce type parameters, so operations that change the
// element type or require an ordered T are package-level functions:
//
//	labels := vec.Map(v, strconv.Itoa)
//	lo, _ := vec.Min(v)
//	i, hi, _ := vec.MaxIndex(v)
//	sorted := vec.Sort(v)
//
// Package-level functions: [Map], [Convert], [ConvertNumber],
// [EmplaceNumber], [Min], [Max], [MinIndex], [MaxIndex], [Sort], [IsSorted],
// [Equal], [IndexOf].
//
// # Rendering
//
// A Vec prints as "{ 1, 2, 3 }" via [fmt.Stringer] and [io.WriterTo], and
// encodes as a JSON array.
package vec
