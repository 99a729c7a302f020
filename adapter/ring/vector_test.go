package ring_test

import (
	"slices"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/vectorkit/adapter/ring"
	"go.llib.dev/vectorkit/port/vector"
	"go.llib.dev/vectorkit/port/vector/vectorcontract"
)

func TestVector(t *testing.T) {
	testcase.RunSuite(t,
		vectorcontract.Vector[int, int](func(tb testing.TB) vector.Vector[int, int] {
			return ring.NewVector[int]()
		}),
		vectorcontract.Vector[string, string](func(tb testing.TB) vector.Vector[string, string] {
			return ring.NewVector[string]()
		}),
	)
}

func TestVector_scenario(t *testing.T) {
	v := ring.NewVector[int]()
	v.Push(10)
	v.Push(20)
	v.Push(30)
	assert.Equal(t, 3, v.Len())

	assert.NoError(t, v.Insert(1, 99))
	assert.Equal(t, []int{10, 99, 20, 30}, vector.ToSlice[int](v))

	assert.NoError(t, v.Remove(0))
	assert.Equal(t, []int{99, 20, 30}, vector.ToSlice[int](v))

	_, err := v.Get(5)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)

	assert.NoError(t, v.Swap(0, 2))
	assert.Equal(t, []int{30, 20, 99}, vector.ToSlice[int](v))
}

func TestVector_ring(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := let.Var(s, func(t *testcase.T) *ring.Vector[int] {
		return ring.NewVector[int]()
	})

	s.Test("capacity is always a power of two", func(t *testcase.T) {
		v := subject.Get(t)
		t.Random.Repeat(1, 100, func() { v.Push(t.Random.Int()) })
		assert.True(t, v.Len() <= v.Cap())
		assert.Equal(t, 0, v.Cap()&(v.Cap()-1))

		v.Reserve(t.Random.IntBetween(1, 300))
		assert.Equal(t, 0, v.Cap()&(v.Cap()-1))
	})

	s.Test("PushFront prepends", func(t *testcase.T) {
		v := subject.Get(t)
		v.Push(2)
		v.PushFront(1)
		v.PushFront(0)
		v.Push(3)
		assert.Equal(t, []int{0, 1, 2, 3}, vector.ToSlice[int](v))
	})

	s.Test("PopFront and PopBack take from the ends", func(t *testcase.T) {
		v := subject.Get(t)
		for _, n := range []int{1, 2, 3} {
			v.Push(n)
		}

		got, ok := v.PopFront()
		assert.True(t, ok)
		assert.Equal(t, 1, got)

		got, ok = v.PopBack()
		assert.True(t, ok)
		assert.Equal(t, 3, got)

		assert.Equal(t, []int{2}, vector.ToSlice[int](v))
	})

	s.Test("popping an empty ring reports no value", func(t *testcase.T) {
		v := subject.Get(t)
		_, ok := v.PopFront()
		assert.False(t, ok)
		_, ok = v.PopBack()
		assert.False(t, ok)
	})

	s.Test("elements keep their order when the ring wraps around and grows", func(t *testcase.T) {
		v := subject.Get(t)
		for i := 0; i < 4; i++ {
			v.Push(i)
		}
		_, _ = v.PopFront()
		_, _ = v.PopFront()
		v.Push(4)
		v.Push(5)
		assert.Equal(t, 4, v.Cap(), "the ring should have wrapped around without growing")

		v.Push(6)
		assert.Equal(t, []int{2, 3, 4, 5, 6}, vector.ToSlice[int](v))
	})

	s.Test("ShrinkToFit keeps the elements of a wrapped ring", func(t *testcase.T) {
		v := subject.Get(t)
		v.Reserve(16)
		for i := 0; i < 3; i++ {
			v.PushFront(i)
		}
		v.ShrinkToFit()
		assert.Equal(t, 4, v.Cap())
		assert.Equal(t, []int{2, 1, 0}, vector.ToSlice[int](v))
	})

	s.Test("random edits match a slice", func(t *testcase.T) {
		var (
			v   = subject.Get(t)
			exp = []int{}
		)
		t.Random.Repeat(64, 256, func() {
			n := t.Random.Int()
			switch t.Random.IntN(5) {
			case 0:
				v.Push(n)
				exp = append(exp, n)
			case 1:
				v.PushFront(n)
				exp = slices.Insert(exp, 0, n)
			case 2:
				i := t.Random.IntN(len(exp) + 1)
				assert.NoError(t, v.Insert(i, n))
				exp = slices.Insert(exp, i, n)
			case 3:
				if len(exp) == 0 {
					return
				}
				i := t.Random.IntN(len(exp))
				assert.NoError(t, v.Remove(i))
				exp = slices.Delete(exp, i, i+1)
			case 4:
				if _, ok := v.PopFront(); ok {
					exp = exp[1:]
				}
			}
		})
		assert.Equal(t, len(exp), v.Len())
		assert.Equal(t, exp, vector.ToSlice[int](v))
	})
}
