package vector

import "iter"

// Producer yields values one by one until it reports false.
type Producer[T any] interface {
	Next() (T, bool)
}

// SizeHinter is an optional Producer capability to estimate the remaining values.
// When bounded is false, upper carries no meaning.
type SizeHinter interface {
	SizeHint() (lower, upper int, bounded bool)
}

// WithCapacity makes a new Vector with room for at least capacity elements.
func WithCapacity[S, A any, V Vector[S, A]](mk Maker[V], capacity int) V {
	v := mk()
	v.Reserve(capacity)
	return v
}

// FromIter makes a new Vector from the values of src, in the order they were produced.
//
// When src is a SizeHinter, the hinted size is reserved upfront:
// the upper bound when it is known, otherwise the lower bound.
func FromIter[S, A any, V Vector[S, A]](mk Maker[V], src Producer[A]) V {
	var capacity int
	if sh, ok := src.(SizeHinter); ok {
		lower, upper, bounded := sh.SizeHint()
		capacity = lower
		if bounded {
			capacity = upper
		}
	}
	v := WithCapacity[S, A](mk, capacity)
	for {
		a, ok := src.Next()
		if !ok {
			break
		}
		v.Push(a)
	}
	return v
}

// FromSeq makes a new Vector from the values of an iter.Seq.
func FromSeq[S, A any, V Vector[S, A]](mk Maker[V], src iter.Seq[A]) V {
	v := mk()
	for a := range src {
		v.Push(a)
	}
	return v
}

// FromSlice makes a new Vector from the elements of src.
func FromSlice[S, A any, V Vector[S, A]](mk Maker[V], src []A) V {
	return FromIter[S, A](mk, &sliceProducer[A]{vs: src})
}

// ToSlice copies the elements of the vector into a newly allocated slice.
func ToSlice[S any](r Reader[S]) []S {
	var (
		length = r.Len()
		out    = make([]S, 0, length)
	)
	for i := 0; i < length; i++ {
		out = append(out, r.GetUnchecked(i))
	}
	return out
}

type sliceProducer[T any] struct {
	vs    []T
	index int
}

func (p *sliceProducer[T]) Next() (T, bool) {
	if len(p.vs) <= p.index {
		var zero T
		return zero, false
	}
	v := p.vs[p.index]
	p.index++
	return v, true
}

func (p *sliceProducer[T]) SizeHint() (int, int, bool) {
	n := len(p.vs) - p.index
	return n, n, true
}
