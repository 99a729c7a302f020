package vector

import (
	"fmt"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrOutOfRange errorkit.Error = "out of range"

// IndexError describes an index that fell outside of the valid [0, Len) range.
type IndexError struct {
	Index int
	Len   int
}

func (err *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds 0..%d", ErrOutOfRange, err.Index, err.Len)
}

func (err *IndexError) Unwrap() error { return ErrOutOfRange }

// IndexCheck validates that index is in the half-open range of [0, length).
//
// The insertion point check of an Insert can be expressed as IndexCheck(index, length+1).
func IndexCheck(index, length int) error {
	if index < 0 || length <= index {
		return &IndexError{Index: index, Len: length}
	}
	return nil
}
