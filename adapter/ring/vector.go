// Package ring implements a vector.Vector on top of a growable ring buffer.
//
// Unlike a plain slice, elements can be added or removed at the front in constant time,
// and Insert/Remove only move the elements of the shorter side.
package ring

import (
	"math/bits"

	"go.llib.dev/vectorkit/port/vector"
)

const minCapacity = 2

// Vector is a ring buffer backed vector.Vector.
// The ring size is always zero or a power of two, and it is what Cap reports.
type Vector[T any] struct {
	buf    []T
	head   int
	length int
}

var _ vector.Vector[any, any] = (*Vector[any])(nil)

func NewVector[T any]() *Vector[T] { return &Vector[T]{} }

func (v *Vector[T]) Len() int { return v.length }

func (v *Vector[T]) IsEmpty() bool { return v.length == 0 }

func (v *Vector[T]) Cap() int { return len(v.buf) }

func (v *Vector[T]) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	if need := v.length + additional; len(v.buf) < need {
		v.resize(roundUp(need))
	}
}

// ShrinkToFit reduces the ring to the smallest power of two that still fits the elements.
func (v *Vector[T]) ShrinkToFit() {
	if v.length == 0 {
		v.buf, v.head = nil, 0
		return
	}
	if size := roundUp(v.length); size < len(v.buf) {
		v.resize(size)
	}
}

func (v *Vector[T]) Clear() {
	var zero T
	for i := 0; i < v.length; i++ {
		v.buf[v.slot(i)] = zero
	}
	v.head, v.length = 0, 0
}

func (v *Vector[T]) Push(val T) {
	v.grow()
	v.buf[v.slot(v.length)] = val
	v.length++
}

// PushFront prepends val in constant time.
func (v *Vector[T]) PushFront(val T) {
	v.grow()
	v.head = v.slot(-1)
	v.buf[v.head] = val
	v.length++
}

// PopFront removes and returns the first element.
func (v *Vector[T]) PopFront() (T, bool) {
	var zero T
	if v.length == 0 {
		return zero, false
	}
	val := v.buf[v.head]
	v.buf[v.head] = zero
	v.head = v.slot(1)
	v.length--
	return val, true
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() (T, bool) {
	var zero T
	if v.length == 0 {
		return zero, false
	}
	last := v.slot(v.length - 1)
	val := v.buf[last]
	v.buf[last] = zero
	v.length--
	return val, true
}

func (v *Vector[T]) Insert(index int, val T) error {
	if err := vector.IndexCheck(index, v.length+1); err != nil {
		return err
	}
	v.grow()
	if index < v.length/2 {
		v.head = v.slot(-1)
		for i := 0; i < index; i++ {
			v.buf[v.slot(i)] = v.buf[v.slot(i+1)]
		}
	} else {
		for i := v.length; index < i; i-- {
			v.buf[v.slot(i)] = v.buf[v.slot(i-1)]
		}
	}
	v.buf[v.slot(index)] = val
	v.length++
	return nil
}

func (v *Vector[T]) Remove(index int) error {
	if err := vector.IndexCheck(index, v.length); err != nil {
		return err
	}
	var zero T
	if index < v.length/2 {
		for i := index; 0 < i; i-- {
			v.buf[v.slot(i)] = v.buf[v.slot(i-1)]
		}
		v.buf[v.head] = zero
		v.head = v.slot(1)
	} else {
		for i := index; i < v.length-1; i++ {
			v.buf[v.slot(i)] = v.buf[v.slot(i+1)]
		}
		v.buf[v.slot(v.length-1)] = zero
	}
	v.length--
	return nil
}

func (v *Vector[T]) Swap(i, j int) error {
	if err := vector.IndexCheck(i, v.length); err != nil {
		return err
	}
	if err := vector.IndexCheck(j, v.length); err != nil {
		return err
	}
	si, sj := v.slot(i), v.slot(j)
	v.buf[si], v.buf[sj] = v.buf[sj], v.buf[si]
	return nil
}

func (v *Vector[T]) Get(index int) (T, error) {
	if err := vector.IndexCheck(index, v.length); err != nil {
		var zero T
		return zero, err
	}
	return v.buf[v.slot(index)], nil
}

// GetUnchecked wraps around the ring, an out of range index reads a free or an unrelated slot.
func (v *Vector[T]) GetUnchecked(index int) T {
	return v.buf[v.slot(index)]
}

func (v *Vector[T]) Set(index int, val T) error {
	if err := vector.IndexCheck(index, v.length); err != nil {
		return err
	}
	v.buf[v.slot(index)] = val
	return nil
}

func (v *Vector[T]) SetUnchecked(index int, val T) {
	v.buf[v.slot(index)] = val
}

// slot maps a logical index to its position in buf.
func (v *Vector[T]) slot(index int) int {
	return (v.head + index) & (len(v.buf) - 1)
}

func (v *Vector[T]) grow() {
	if v.length < len(v.buf) {
		return
	}
	v.resize(max(minCapacity, len(v.buf)*2))
}

// resize moves the elements into a new ring of the given size, starting at position zero.
func (v *Vector[T]) resize(size int) {
	buf := make([]T, size)
	if v.length != 0 {
		n := copy(buf, v.buf[v.head:min(v.head+v.length, len(v.buf))])
		copy(buf[n:], v.buf[:v.length-n])
	}
	v.buf, v.head = buf, 0
}

func roundUp(n int) int {
	if n <= minCapacity {
		return minCapacity
	}
	return 1 << bits.Len(uint(n-1))
}
