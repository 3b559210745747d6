package vec

// Cursor is a position handle into a Vec that knows when it has gone stale.
//
// Every structural mutation of the vector (push, pop, insert, erase, resize,
// clear, reallocation, swap, move, assignment) invalidates all cursors taken
// before it. Using a stale cursor returns [ErrStaleCursor] instead of reading
// whatever now lives at that position.
//
// Erasing through a cursor hands back a fresh one at the same position, so
// erase-while-iterating stays checked:
//
//	for c := v.Cursor(0); c.Valid(); {
//	    n, _ := c.Get()
//	    if n%2 == 0 {
//	        c, _ = c.Erase()
//	        continue
//	    }
//	    c = c.Next()
//	}
type Cursor[T any] struct {
	v   *Vec[T]
	pos int
	gen uint64
}

// Cursor returns a cursor at pos. pos is not checked until the cursor is used.
func (v *Vec[T]) Cursor(pos int) Cursor[T] {
	return Cursor[T]{v: v, pos: pos, gen: v.gen}
}

// Pos returns the position the cursor points at.
func (c Cursor[T]) Pos() int { return c.pos }

// Valid reports whether the cursor is current and points at an element.
func (c Cursor[T]) Valid() bool {
	return c.fresh() && c.pos >= 0 && c.pos < len(c.v.items)
}

// Next returns a cursor one position further on. It does not re-check
// freshness; the next Get or Erase does.
func (c Cursor[T]) Next() Cursor[T] {
	c.pos++
	return c
}

// Get returns the element under the cursor.
func (c Cursor[T]) Get() (T, error) {
	if !c.fresh() {
		var zero T
		return zero, ErrStaleCursor
	}
	return c.v.At(c.pos)
}

// Set overwrites the element under the cursor. Overwriting is not a
// structural mutation, so other cursors stay valid.
func (c Cursor[T]) Set(value T) error {
	if !c.fresh() {
		return ErrStaleCursor
	}
	return c.v.Set(c.pos, value)
}

// Erase removes the element under the cursor and returns a fresh cursor at
// the same position, now addressing the following element.
func (c Cursor[T]) Erase() (Cursor[T], error) {
	if !c.fresh() {
		return c, ErrStaleCursor
	}
	pos, err := c.v.Erase(c.pos)
	if err != nil {
		return c, err
	}
	return c.v.Cursor(pos), nil
}

func (c Cursor[T]) fresh() bool {
	return c.v != nil && c.gen == c.v.gen
}
