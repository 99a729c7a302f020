package vector

import (
	"io"
	"iter"
)

// IntoIter hands the ownership of v over to an Iterator.
// The caller should not use v afterwards.
func IntoIter[S, A any](v Vector[S, A]) *Iterator[S, A] {
	return &Iterator[S, A]{vec: v}
}

// Iterator is a single pass, front to back iteration over an owned Vector.
// Closing the Iterator releases the Vector if it holds resources (io.Closer).
type Iterator[S, A any] struct {
	vec Vector[S, A]
	cur cursor[S]
}

var (
	_ Producer[any] = (*Iterator[any, any])(nil)
	_ SizeHinter    = (*Iterator[any, any])(nil)
	_ io.Closer     = (*Iterator[any, any])(nil)
)

func (i *Iterator[S, A]) Next() (S, bool) { return i.cur.next(i.vec) }

// SizeHint reports the length of the vector as the lower bound, without an upper bound.
func (i *Iterator[S, A]) SizeHint() (int, int, bool) { return i.vec.Len(), 0, false }

// Len asserts exact size, and returns the length of the vector at the time of the call.
func (i *Iterator[S, A]) Len() int { return i.vec.Len() }

// Seq drains the remaining elements in a range loop.
func (i *Iterator[S, A]) Seq() iter.Seq[S] { return i.cur.seq(i.vec) }

func (i *Iterator[S, A]) Close() error {
	i.cur.done = true
	if c, ok := i.vec.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Iter borrows r for a single pass, front to back iteration.
// r must not be mutated while the RefIterator is in use.
func Iter[S any](r Reader[S]) *RefIterator[S] {
	return &RefIterator[S]{vec: r}
}

// RefIterator is the borrowing counterpart of Iterator.
type RefIterator[S any] struct {
	vec Reader[S]
	cur cursor[S]
}

var (
	_ Producer[any] = (*RefIterator[any])(nil)
	_ SizeHinter    = (*RefIterator[any])(nil)
	_ io.Closer     = (*RefIterator[any])(nil)
)

func (i *RefIterator[S]) Next() (S, bool) { return i.cur.next(i.vec) }

func (i *RefIterator[S]) SizeHint() (int, int, bool) { return i.vec.Len(), 0, false }

func (i *RefIterator[S]) Len() int { return i.vec.Len() }

func (i *RefIterator[S]) Seq() iter.Seq[S] { return i.cur.seq(i.vec) }

// Close stops the iteration, the borrowed vector is left untouched.
func (i *RefIterator[S]) Close() error {
	i.cur.done = true
	return nil
}

// All returns an iter.Seq that borrows r for each range loop separately.
func All[S any](r Reader[S]) iter.Seq[S] {
	return func(yield func(S) bool) {
		for v := range Iter(r).Seq() {
			if !yield(v) {
				return
			}
		}
	}
}

type cursor[S any] struct {
	index int
	done  bool
}

func (c *cursor[S]) next(r Reader[S]) (S, bool) {
	var zero S
	if c.done {
		return zero, false
	}
	v, err := r.Get(c.index)
	c.index++
	if err != nil {
		c.done = true
		return zero, false
	}
	return v, true
}

func (c *cursor[S]) seq(r Reader[S]) iter.Seq[S] {
	return func(yield func(S) bool) {
		for {
			v, ok := c.next(r)
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
