// Package arena implements vectors that pack their elements into a single contiguous buffer.
package arena

import (
	"slices"

	"go.llib.dev/vectorkit/port/vector"
)

// Strings stores byte strings back to back in one buffer, together with the end offset of each element.
//
// It accepts []byte arguments and returns string values.
// Written bytes are copied into the buffer, so the caller is free to reuse its slice.
// Reads convert the packed bytes with string(...), so the returned value never aliases the buffer.
type Strings struct {
	buf  []byte
	ends []int
}

var _ vector.Vector[string, []byte] = (*Strings)(nil)

func NewStrings() *Strings { return &Strings{} }

func (s *Strings) Len() int { return len(s.ends) }

func (s *Strings) IsEmpty() bool { return len(s.ends) == 0 }

// Cap is the number of element slots in the offset table.
func (s *Strings) Cap() int { return cap(s.ends) }

// Size is the number of bytes that the packed elements take up.
func (s *Strings) Size() int { return len(s.buf) }

func (s *Strings) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	s.ends = slices.Grow(s.ends, additional)
}

func (s *Strings) ShrinkToFit() {
	s.buf = fit(s.buf)
	s.ends = fit(s.ends)
}

func (s *Strings) Clear() {
	s.buf = s.buf[:0]
	s.ends = s.ends[:0]
}

func (s *Strings) Push(v []byte) {
	s.buf = append(s.buf, v...)
	s.ends = append(s.ends, len(s.buf))
}

func (s *Strings) Insert(index int, v []byte) error {
	if err := vector.IndexCheck(index, len(s.ends)+1); err != nil {
		return err
	}
	if index == len(s.ends) {
		s.Push(v)
		return nil
	}
	start, _ := s.bounds(index)
	s.buf = slices.Insert(s.buf, start, v...)
	s.ends = slices.Insert(s.ends, index, start+len(v))
	s.shift(index+1, len(v))
	return nil
}

func (s *Strings) Remove(index int) error {
	if err := vector.IndexCheck(index, len(s.ends)); err != nil {
		return err
	}
	start, end := s.bounds(index)
	s.buf = slices.Delete(s.buf, start, end)
	s.ends = slices.Delete(s.ends, index, index+1)
	s.shift(index, start-end)
	return nil
}

func (s *Strings) Swap(i, j int) error {
	if err := vector.IndexCheck(i, len(s.ends)); err != nil {
		return err
	}
	if err := vector.IndexCheck(j, len(s.ends)); err != nil {
		return err
	}
	if i == j {
		return nil
	}
	a, b := s.GetUnchecked(i), s.GetUnchecked(j)
	s.SetUnchecked(i, []byte(b))
	s.SetUnchecked(j, []byte(a))
	return nil
}

func (s *Strings) Get(index int) (string, error) {
	if err := vector.IndexCheck(index, len(s.ends)); err != nil {
		return "", err
	}
	return s.GetUnchecked(index), nil
}

func (s *Strings) GetUnchecked(index int) string {
	start, end := s.bounds(index)
	return string(s.buf[start:end])
}

func (s *Strings) Set(index int, v []byte) error {
	if err := vector.IndexCheck(index, len(s.ends)); err != nil {
		return err
	}
	s.SetUnchecked(index, v)
	return nil
}

func (s *Strings) SetUnchecked(index int, v []byte) {
	start, end := s.bounds(index)
	s.buf = slices.Replace(s.buf, start, end, v...)
	s.shift(index, len(v)-(end-start))
}

func (s *Strings) bounds(index int) (start, end int) {
	if 0 < index {
		start = s.ends[index-1]
	}
	return start, s.ends[index]
}

// shift moves the end offsets from index onward by delta bytes.
func (s *Strings) shift(index, delta int) {
	if delta == 0 {
		return
	}
	for i := index; i < len(s.ends); i++ {
		s.ends[i] += delta
	}
}

func fit[T any](vs []T) []T {
	if len(vs) == cap(vs) {
		return vs
	}
	if len(vs) == 0 {
		return nil
	}
	out := make([]T, len(vs))
	copy(out, vs)
	return out
}
