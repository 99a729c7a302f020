package vector_test

import (
	"errors"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
	"go.llib.dev/vectorkit/adapter/memory"
	"go.llib.dev/vectorkit/port/vector"
)

type closableVector struct {
	*memory.Vector[int]
	closed   bool
	closeErr error
}

func (v *closableVector) Close() error {
	v.closed = true
	return v.closeErr
}

func TestIntoIter(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(1, 7), t.Random.Int)
	})
	subject := let.Var(s, func(t *testcase.T) *closableVector {
		return &closableVector{Vector: memory.VectorOf(values.Get(t)...)}
	})
	itr := let.Var(s, func(t *testcase.T) *vector.Iterator[int, int] {
		return vector.IntoIter[int, int](subject.Get(t))
	})

	s.Test("elements are produced front to back", func(t *testcase.T) {
		var got []int
		for v := range itr.Get(t).Seq() {
			got = append(got, v)
		}
		assert.Equal(t, values.Get(t), got)
	})

	s.Test("Seq continues from where Next left off", func(t *testcase.T) {
		first, ok := itr.Get(t).Next()
		assert.True(t, ok)
		assert.Equal(t, values.Get(t)[0], first)

		var rest []int
		for v := range itr.Get(t).Seq() {
			rest = append(rest, v)
		}
		assert.Equal(t, values.Get(t)[1:], rest)
	})

	s.Test("Len reports the length of the vector at the time of the query", func(t *testcase.T) {
		assert.Equal(t, len(values.Get(t)), itr.Get(t).Len())
		_, _ = itr.Get(t).Next()
		assert.Equal(t, len(values.Get(t)), itr.Get(t).Len())
	})

	s.Test("Close releases the owned vector", func(t *testcase.T) {
		assert.NoError(t, itr.Get(t).Close())
		assert.True(t, subject.Get(t).closed)

		_, ok := itr.Get(t).Next()
		assert.False(t, ok, "closed iterator should not produce values")
	})

	s.Test("Close reports the release failure", func(t *testcase.T) {
		expErr := errors.New(t.Random.String())
		subject.Get(t).closeErr = expErr
		assert.ErrorIs(t, itr.Get(t).Close(), expErr)
	})

	s.Test("Close on a vector without resources", func(t *testcase.T) {
		itr := vector.IntoIter[int, int](memory.NewVector[int]())
		assert.NoError(t, itr.Close())
	})
}

func TestIter(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []int {
		return random.Slice(t.Random.IntBetween(1, 7), t.Random.Int)
	})
	subject := let.Var(s, func(t *testcase.T) *memory.Vector[int] {
		return memory.VectorOf(values.Get(t)...)
	})
	itr := let.Var(s, func(t *testcase.T) *vector.RefIterator[int] {
		return vector.Iter[int](subject.Get(t))
	})

	s.Test("elements are produced front to back", func(t *testcase.T) {
		var got []int
		for {
			v, ok := itr.Get(t).Next()
			if !ok {
				break
			}
			got = append(got, v)
		}
		assert.Equal(t, values.Get(t), got)
	})

	s.Test("an exhausted iterator stays exhausted even when the vector grows afterwards", func(t *testcase.T) {
		for range itr.Get(t).Seq() {
		}
		subject.Get(t).Push(t.Random.Int())
		subject.Get(t).Push(t.Random.Int())

		_, ok := itr.Get(t).Next()
		assert.False(t, ok)
	})

	s.Test("size hint reports the vector length without an upper bound", func(t *testcase.T) {
		lower, _, bounded := itr.Get(t).SizeHint()
		assert.Equal(t, len(values.Get(t)), lower)
		assert.False(t, bounded)
	})

	s.Test("breaking out of a range loop leaves the rest for later", func(t *testcase.T) {
		for range itr.Get(t).Seq() {
			break
		}
		var rest []int
		for v := range itr.Get(t).Seq() {
			rest = append(rest, v)
		}
		assert.Equal(t, values.Get(t)[1:], rest)
	})

	s.Test("Close stops the iteration without touching the vector", func(t *testcase.T) {
		assert.NoError(t, itr.Get(t).Close())
		_, ok := itr.Get(t).Next()
		assert.False(t, ok)
		assert.Equal(t, values.Get(t), vector.ToSlice[int](subject.Get(t)))
	})
}

func TestAll(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("every range loop starts from the front", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(1, 7), t.Random.Int)
		v := memory.VectorOf(vs...)
		seq := vector.All[int](v)

		for range 3 {
			var got []int
			for e := range seq {
				got = append(got, e)
			}
			assert.Equal(t, vs, got)
		}
	})
}
