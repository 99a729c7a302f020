package vector_test

import (
	"errors"
	"fmt"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/vectorkit/port/vector"
)

func TestIndexCheck(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		index  = let.Var[int](s, nil)
		length = let.Var(s, func(t *testcase.T) int {
			return t.Random.IntBetween(1, 42)
		})
	)
	act := let.Act(func(t *testcase.T) error {
		return vector.IndexCheck(index.Get(t), length.Get(t))
	})

	s.When("index is within range", func(s *testcase.Spec) {
		index.Let(s, func(t *testcase.T) int {
			return t.Random.IntN(length.Get(t))
		})

		s.Then("it succeeds", func(t *testcase.T) {
			assert.NoError(t, act(t))
		})
	})

	s.When("index is the last valid position", func(s *testcase.Spec) {
		index.Let(s, func(t *testcase.T) int {
			return length.Get(t) - 1
		})

		s.Then("it succeeds", func(t *testcase.T) {
			assert.NoError(t, act(t))
		})
	})

	s.When("index equals the length", func(s *testcase.Spec) {
		index.Let(s, func(t *testcase.T) int {
			return length.Get(t)
		})

		s.Then("it reports out of range", func(t *testcase.T) {
			assert.ErrorIs(t, act(t), vector.ErrOutOfRange)
		})

		s.Then("the error carries the index and the bound", func(t *testcase.T) {
			var ierr *vector.IndexError
			assert.True(t, errors.As(act(t), &ierr))
			assert.Equal(t, index.Get(t), ierr.Index)
			assert.Equal(t, length.Get(t), ierr.Len)
		})

		s.Then("the message tells both the index and the bound", func(t *testcase.T) {
			assert.Contains(t, act(t).Error(), "out of range")
			assert.Contains(t, act(t).Error(), fmt.Sprintf("index %d out of bounds 0..%d", index.Get(t), length.Get(t)))
		})
	})

	s.When("index is negative", func(s *testcase.Spec) {
		index.Let(s, func(t *testcase.T) int {
			return -1 * t.Random.IntBetween(1, 42)
		})

		s.Then("it reports out of range", func(t *testcase.T) {
			assert.ErrorIs(t, act(t), vector.ErrOutOfRange)
		})
	})

	s.When("length is zero", func(s *testcase.Spec) {
		length.LetValue(s, 0)
		index.LetValue(s, 0)

		s.Then("every index is out of range", func(t *testcase.T) {
			assert.ErrorIs(t, act(t), vector.ErrOutOfRange)
		})
	})
}
