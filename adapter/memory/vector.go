package memory

import (
	"slices"

	"go.llib.dev/vectorkit/port/vector"
)

// Vector is a Go slice backed vector.Vector.
// Storage and argument types are the same, values are stored as they are.
type Vector[T any] struct {
	items []T
}

var _ vector.Vector[any, any] = (*Vector[any])(nil)

func NewVector[T any]() *Vector[T] { return &Vector[T]{} }

// VectorOf makes a Vector from the given values.
func VectorOf[T any](vs ...T) *Vector[T] {
	return vector.FromSlice[T, T](NewVector[T], vs)
}

func (v *Vector[T]) Len() int { return len(v.items) }

func (v *Vector[T]) IsEmpty() bool { return len(v.items) == 0 }

func (v *Vector[T]) Cap() int { return cap(v.items) }

func (v *Vector[T]) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	v.items = slices.Grow(v.items, additional)
}

func (v *Vector[T]) ShrinkToFit() {
	if len(v.items) == cap(v.items) {
		return
	}
	if len(v.items) == 0 {
		v.items = nil
		return
	}
	items := make([]T, len(v.items))
	copy(items, v.items)
	v.items = items
}

// Clear keeps the capacity, but zeroes the released slots so the garbage collector can reclaim them.
func (v *Vector[T]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
}

func (v *Vector[T]) Push(val T) {
	v.items = append(v.items, val)
}

func (v *Vector[T]) Insert(index int, val T) error {
	if err := vector.IndexCheck(index, len(v.items)+1); err != nil {
		return err
	}
	v.items = slices.Insert(v.items, index, val)
	return nil
}

func (v *Vector[T]) Remove(index int) error {
	if err := vector.IndexCheck(index, len(v.items)); err != nil {
		return err
	}
	v.items = slices.Delete(v.items, index, index+1)
	return nil
}

func (v *Vector[T]) Swap(i, j int) error {
	if err := vector.IndexCheck(i, len(v.items)); err != nil {
		return err
	}
	if err := vector.IndexCheck(j, len(v.items)); err != nil {
		return err
	}
	v.items[i], v.items[j] = v.items[j], v.items[i]
	return nil
}

func (v *Vector[T]) Get(index int) (T, error) {
	if err := vector.IndexCheck(index, len(v.items)); err != nil {
		var zero T
		return zero, err
	}
	return v.items[index], nil
}

// GetUnchecked panics with a runtime error when index is out of range.
func (v *Vector[T]) GetUnchecked(index int) T {
	return v.items[index]
}

func (v *Vector[T]) Set(index int, val T) error {
	if err := vector.IndexCheck(index, len(v.items)); err != nil {
		return err
	}
	v.items[index] = val
	return nil
}

func (v *Vector[T]) SetUnchecked(index int, val T) {
	v.items[index] = val
}
