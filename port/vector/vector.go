// Package vector is a port for growable, index addressable sequence containers.
//
// A Vector may keep its elements in Go memory, in a packed buffer or in storage owned by a foreign runtime.
// The element type it returns on read (S, the storage type) may differ from the type it accepts on write (A, the argument type),
// for example when the backend keeps a different representation than what the caller hands in.
// Each implementation documents its conversion path between A and S.
//
// Operations that take an index come in two flavours.
// The checked ones validate the index with IndexCheck and report ErrOutOfRange.
// The unchecked ones (GetUnchecked, SetUnchecked) skip validation,
// and they are meant for hot paths where the index was already validated by the caller.
// Calling them with an out of range index is a programming error, and the outcome is up to the implementation.
package vector

// Reader is the read-only subset of a Vector.
type Reader[S any] interface {
	// Len returns the number of live elements.
	Len() int
	// IsEmpty reports whether Len is zero.
	IsEmpty() bool
	// Get returns the element at index.
	// It fails with ErrOutOfRange when index is not in [0, Len()).
	Get(index int) (S, error)
	// GetUnchecked returns the element at index without bounds checking.
	// The caller guarantees that index is in [0, Len()).
	GetUnchecked(index int) S
}

// Vector is the capability contract of a growable sequence container.
//
// S is the storage type returned when an element is read,
// A is the argument type accepted when an element is written.
//
// Cap() >= Len() holds after every call.
type Vector[S, A any] interface {
	Reader[S]
	// Cap returns the number of allocated element slots.
	Cap() int
	// Reserve ensures that Cap() >= Len() + additional.
	// It never shrinks the capacity and never removes elements.
	Reserve(additional int)
	// ShrinkToFit reduces the capacity toward Len() without removing or reordering elements.
	ShrinkToFit()
	// Clear removes every element.
	// What happens with the capacity is up to the implementation.
	Clear()
	// Push appends v to the end of the vector.
	Push(v A)
	// Insert places v at index and shifts the elements from index one position later.
	// Len() itself is a valid index, and it means append.
	Insert(index int, v A) error
	// Remove deletes the element at index and shifts the following elements one position earlier.
	Remove(index int) error
	// Swap exchanges the elements at i and j.
	// Swapping an index with itself is a successful no-op.
	Swap(i, j int) error
	// Set overwrites the element at index, the length doesn't change.
	Set(index int, v A) error
	// SetUnchecked overwrites the element at index without bounds checking.
	// The caller guarantees that index is in [0, Len()).
	SetUnchecked(index int, v A)
}

// Maker constructs a new, empty Vector.
type Maker[V any] func() V
