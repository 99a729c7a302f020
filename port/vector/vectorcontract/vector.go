package vectorcontract

import (
	"errors"
	"fmt"
	"reflect"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/vectorkit/port/vector"
)

// Vector is the behavioural contract of vector.Vector.
// The Make function must return an empty vector.
func Vector[S, A any](mk contract.Make[vector.Vector[S, A]], opts ...Option[S, A]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config[S, A]](opts)

	subject := let.Var(s, func(t *testcase.T) vector.Vector[S, A] {
		return mk(t)
	})

	// values are the argument values the subject is filled up with in the "vector contains values" contexts.
	values := let.Var(s, func(t *testcase.T) []A {
		return c.makeArgs(t, t.Random.IntBetween(3, 7))
	})

	withValues := func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) vector.Vector[S, A] {
			v := subject.Super(t)
			for _, a := range values.Get(t) {
				v.Push(a)
			}
			return v
		})
	}

	thenUnchanged := func(t *testcase.T) {
		t.Helper()
		assert.Equal(t, c.toStorages(values.Get(t)), vector.ToSlice[S](subject.Get(t)))
	}

	s.Test("a new vector is empty", func(t *testcase.T) {
		v := subject.Get(t)
		assert.Equal(t, 0, v.Len())
		assert.True(t, v.IsEmpty())
		assert.True(t, 0 <= v.Cap())
		assert.Empty(t, vector.ToSlice[S](v))
	})

	s.Describe("#Push", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) A {
			return c.makeArg(t)
		})
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).Push(value.Get(t))
		})

		s.Then("the length increases by one", func(t *testcase.T) {
			before := subject.Get(t).Len()
			act(t)
			assert.Equal(t, before+1, subject.Get(t).Len())
			assert.False(t, subject.Get(t).IsEmpty())
		})

		s.Then("the value becomes the last element", func(t *testcase.T) {
			act(t)
			v := subject.Get(t)
			got, err := v.Get(v.Len() - 1)
			assert.NoError(t, err)
			assert.Equal(t, c.toStorage(value.Get(t)), got)
		})

		s.Then("capacity covers the length", func(t *testcase.T) {
			act(t)
			assert.True(t, subject.Get(t).Len() <= subject.Get(t).Cap())
		})

		s.When("vector contains values", func(s *testcase.Spec) {
			withValues(s)

			s.Then("values are kept in the order of pushing", func(t *testcase.T) {
				act(t)
				exp := c.toStorages(append(append([]A{}, values.Get(t)...), value.Get(t)))
				assert.Equal(t, exp, vector.ToSlice[S](subject.Get(t)))
			})
		})
	})

	s.Describe("#Get", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (S, error) {
			return subject.Get(t).Get(index.Get(t))
		})

		s.When("vector is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it fails with out of range", func(t *testcase.T) {
				_, err := act(t)
				assert.ErrorIs(t, err, vector.ErrOutOfRange)
			})
		})

		s.When("vector contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index points to an existing element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the element is returned", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, c.toStorage(values.Get(t)[index.Get(t)]), got)
				})
			})

			s.And("index is the last element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) - 1
				})

				s.Then("it succeeds", func(t *testcase.T) {
					_, err := act(t)
					assert.NoError(t, err)
				})
			})

			s.And("index equals the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("it fails with an out of range error that tells the index and the bound", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, vector.ErrOutOfRange)

					var ierr *vector.IndexError
					assert.True(t, errors.As(err, &ierr))
					assert.Equal(t, index.Get(t), ierr.Index)
					assert.Equal(t, len(values.Get(t)), ierr.Len)
				})
			})

			s.And("index is beyond the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(1, 42)
				})

				s.Then("it fails with out of range", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, vector.ErrOutOfRange)
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return -1 * t.Random.IntBetween(1, 42)
				})

				s.Then("it fails with out of range", func(t *testcase.T) {
					_, err := act(t)
					assert.ErrorIs(t, err, vector.ErrOutOfRange)
				})
			})
		})
	})

	s.Describe("#GetUnchecked", func(s *testcase.Spec) {
		withValues(s)

		s.Then("it returns the same elements as #Get within range", func(t *testcase.T) {
			v := subject.Get(t)
			for i := 0; i < v.Len(); i++ {
				exp, err := v.Get(i)
				assert.NoError(t, err)
				assert.Equal(t, exp, v.GetUnchecked(i))
			}
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) A {
				return c.makeArg(t)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return subject.Get(t).Set(index.Get(t), value.Get(t))
		})

		s.When("vector is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it fails with out of range", func(t *testcase.T) {
				assert.ErrorIs(t, act(t), vector.ErrOutOfRange)
				assert.Equal(t, 0, subject.Get(t).Len())
			})
		})

		s.When("vector contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index points to an existing element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the element is overwritten", func(t *testcase.T) {
					assert.NoError(t, act(t))

					got, err := subject.Get(t).Get(index.Get(t))
					assert.NoError(t, err)
					assert.Equal(t, c.toStorage(value.Get(t)), got)
				})

				s.Then("the length remains the same", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
				})

				s.Then("apart from the changed element, everything else remains the same", func(t *testcase.T) {
					assert.NoError(t, act(t))

					exp := c.toStorages(values.Get(t))
					exp[index.Get(t)] = c.toStorage(value.Get(t))
					assert.Equal(t, exp, vector.ToSlice[S](subject.Get(t)))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("it fails with out of range and leaves the vector untouched", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), vector.ErrOutOfRange)
					thenUnchanged(t)
				})
			})
		})
	})

	s.Describe("#SetUnchecked", func(s *testcase.Spec) {
		withValues(s)

		s.Then("it overwrites in range elements like #Set", func(t *testcase.T) {
			var (
				v     = subject.Get(t)
				index = t.Random.IntN(v.Len())
				value = c.makeArg(t)
			)
			v.SetUnchecked(index, value)

			got, err := v.Get(index)
			assert.NoError(t, err)
			assert.Equal(t, c.toStorage(value), got)
			assert.Equal(t, len(values.Get(t)), v.Len())
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) A {
				return c.makeArg(t)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return subject.Get(t).Insert(index.Get(t), value.Get(t))
		})

		s.When("vector is empty", func(s *testcase.Spec) {
			s.And("index is zero", func(s *testcase.Spec) {
				index.LetValue(s, 0)

				s.Then("the value becomes the only element", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, []S{c.toStorage(value.Get(t))}, vector.ToSlice[S](subject.Get(t)))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(1, 42)
				})

				s.Then("it fails with out of range", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), vector.ErrOutOfRange)
					assert.Equal(t, 0, subject.Get(t).Len())
				})
			})
		})

		s.When("vector contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index points to an existing element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the value is placed at the index and the rest shifts one position later", func(t *testcase.T) {
					assert.NoError(t, act(t))

					var (
						vs  = values.Get(t)
						i   = index.Get(t)
						exp []S
					)
					exp = append(exp, c.toStorages(vs[:i])...)
					exp = append(exp, c.toStorage(value.Get(t)))
					exp = append(exp, c.toStorages(vs[i:])...)
					assert.Equal(t, exp, vector.ToSlice[S](subject.Get(t)))
				})

				s.Then("the length increases by one", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, len(values.Get(t))+1, subject.Get(t).Len())
					assert.True(t, subject.Get(t).Len() <= subject.Get(t).Cap())
				})

				s.Then("removing at the same index restores the original elements", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.NoError(t, subject.Get(t).Remove(index.Get(t)))
					thenUnchanged(t)
				})
			})

			s.And("index equals the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("the value is appended", func(t *testcase.T) {
					assert.NoError(t, act(t))

					v := subject.Get(t)
					assert.Equal(t, len(values.Get(t))+1, v.Len())
					got, err := v.Get(v.Len() - 1)
					assert.NoError(t, err)
					assert.Equal(t, c.toStorage(value.Get(t)), got)
				})
			})

			s.And("index is beyond the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(1, 42)
				})

				s.Then("it fails with out of range and leaves the vector untouched", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), vector.ErrOutOfRange)
					thenUnchanged(t)
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.LetValue(s, -1)

				s.Then("it fails with out of range and leaves the vector untouched", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), vector.ErrOutOfRange)
					thenUnchanged(t)
				})
			})
		})
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act(func(t *testcase.T) error {
			return subject.Get(t).Remove(index.Get(t))
		})

		s.When("vector is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it fails with out of range", func(t *testcase.T) {
				assert.ErrorIs(t, act(t), vector.ErrOutOfRange)
			})
		})

		s.When("vector contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index points to an existing element", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the element is removed and the rest shifts one position earlier", func(t *testcase.T) {
					assert.NoError(t, act(t))

					var (
						vs  = values.Get(t)
						i   = index.Get(t)
						exp []S
					)
					exp = append(exp, c.toStorages(vs[:i])...)
					exp = append(exp, c.toStorages(vs[i+1:])...)
					assert.Equal(t, exp, vector.ToSlice[S](subject.Get(t)))
				})

				s.Then("the length shrinks by one", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, len(values.Get(t))-1, subject.Get(t).Len())
				})
			})

			s.And("index equals the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("it fails with out of range and leaves the vector untouched", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), vector.ErrOutOfRange)
					thenUnchanged(t)
				})
			})
		})
	})

	s.Describe("#Swap", func(s *testcase.Spec) {
		var (
			i = let.Var[int](s, nil)
			j = let.Var[int](s, nil)
		)
		act := let.Act(func(t *testcase.T) error {
			return subject.Get(t).Swap(i.Get(t), j.Get(t))
		})

		s.When("vector is empty", func(s *testcase.Spec) {
			i.LetValue(s, 0)
			j.LetValue(s, 0)

			s.Then("it fails with out of range", func(t *testcase.T) {
				assert.ErrorIs(t, act(t), vector.ErrOutOfRange)
			})
		})

		s.When("vector contains values", func(s *testcase.Spec) {
			withValues(s)

			s.And("both indexes point to existing elements", func(s *testcase.Spec) {
				i.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})
				j.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the elements are exchanged", func(t *testcase.T) {
					assert.NoError(t, act(t))

					exp := c.toStorages(values.Get(t))
					exp[i.Get(t)], exp[j.Get(t)] = exp[j.Get(t)], exp[i.Get(t)]
					assert.Equal(t, exp, vector.ToSlice[S](subject.Get(t)))
				})
			})

			s.And("the two indexes are the same", func(s *testcase.Spec) {
				i.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})
				j.Let(s, func(t *testcase.T) int {
					return i.Get(t)
				})

				s.Then("it is a successful no-op", func(t *testcase.T) {
					assert.NoError(t, act(t))
					thenUnchanged(t)
				})
			})

			s.And("the first index is out of bound", func(s *testcase.Spec) {
				i.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})
				j.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("it fails with out of range and leaves the vector untouched", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), vector.ErrOutOfRange)
					thenUnchanged(t)
				})
			})

			s.And("the second index is out of bound", func(s *testcase.Spec) {
				i.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})
				j.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("it fails with out of range and leaves the vector untouched", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), vector.ErrOutOfRange)
					thenUnchanged(t)
				})
			})
		})
	})

	s.Describe("#Clear", func(s *testcase.Spec) {
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).Clear()
		})

		s.When("vector contains values", func(s *testcase.Spec) {
			withValues(s)

			s.Then("every element is removed", func(t *testcase.T) {
				act(t)

				v := subject.Get(t)
				assert.Equal(t, 0, v.Len())
				assert.True(t, v.IsEmpty())
				assert.True(t, v.Len() <= v.Cap())
			})

			s.Then("previously valid indexes become invalid", func(t *testcase.T) {
				act(t)

				_, err := subject.Get(t).Get(0)
				assert.ErrorIs(t, err, vector.ErrOutOfRange)
			})

			s.Then("the vector remains usable", func(t *testcase.T) {
				act(t)

				value := c.makeArg(t)
				subject.Get(t).Push(value)
				assert.Equal(t, []S{c.toStorage(value)}, vector.ToSlice[S](subject.Get(t)))
			})
		})
	})

	s.Describe("#Reserve", func(s *testcase.Spec) {
		additional := let.Var(s, func(t *testcase.T) int {
			return t.Random.IntBetween(1, 64)
		})
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).Reserve(additional.Get(t))
		})

		s.Then("capacity makes room for the additional elements", func(t *testcase.T) {
			act(t)

			v := subject.Get(t)
			assert.True(t, v.Len()+additional.Get(t) <= v.Cap())
		})

		s.When("vector contains values", func(s *testcase.Spec) {
			withValues(s)

			s.Then("capacity makes room for the additional elements after the existing ones", func(t *testcase.T) {
				act(t)

				v := subject.Get(t)
				assert.True(t, len(values.Get(t))+additional.Get(t) <= v.Cap())
			})

			s.Then("elements are kept", func(t *testcase.T) {
				act(t)
				thenUnchanged(t)
			})

			s.And("additional is not positive", func(s *testcase.Spec) {
				additional.Let(s, func(t *testcase.T) int {
					return -1 * t.Random.IntBetween(0, 7)
				})

				s.Then("capacity doesn't shrink", func(t *testcase.T) {
					before := subject.Get(t).Cap()
					act(t)
					assert.True(t, before <= subject.Get(t).Cap())
					thenUnchanged(t)
				})
			})
		})
	})

	s.Describe("#ShrinkToFit", func(s *testcase.Spec) {
		act := let.Act0(func(t *testcase.T) {
			subject.Get(t).ShrinkToFit()
		})

		s.When("vector has extra capacity", func(s *testcase.Spec) {
			withValues(s)

			s.Before(func(t *testcase.T) {
				subject.Get(t).Reserve(t.Random.IntBetween(8, 64))
			})

			s.Then("capacity is reduced but still covers the length", func(t *testcase.T) {
				before := subject.Get(t).Cap()
				act(t)

				v := subject.Get(t)
				assert.True(t, v.Cap() <= before)
				assert.True(t, v.Len() <= v.Cap())
			})

			s.Then("elements are kept in order", func(t *testcase.T) {
				act(t)
				thenUnchanged(t)
			})
		})

		s.When("vector is empty", func(s *testcase.Spec) {
			s.Then("it doesn't fail", func(t *testcase.T) {
				act(t)
				assert.Equal(t, 0, subject.Get(t).Len())
			})
		})
	})

	s.Test("capacity covers the length after every kind of operation", func(t *testcase.T) {
		v := subject.Get(t)
		check := func(op string) {
			t.Helper()
			assert.True(t, v.Len() <= v.Cap(),
				assert.MessageF("after %s, Len: %d Cap: %d", op, v.Len(), v.Cap()))
		}
		ops := []func(){
			func() { v.Push(c.makeArg(t)); check("Push") },
			func() { _ = v.Insert(t.Random.IntBetween(0, v.Len()), c.makeArg(t)); check("Insert") },
			func() { _ = v.Remove(t.Random.IntBetween(0, v.Len())); check("Remove") },
			func() { _ = v.Swap(t.Random.IntBetween(0, v.Len()), t.Random.IntBetween(0, v.Len())); check("Swap") },
			func() { _ = v.Set(t.Random.IntBetween(0, v.Len()), c.makeArg(t)); check("Set") },
			func() { v.Reserve(t.Random.IntBetween(0, 16)); check("Reserve") },
			func() { v.ShrinkToFit(); check("ShrinkToFit") },
		}
		t.Random.Repeat(32, 64, func() {
			t.Random.Pick(ops).(func())()
		})
		v.Clear()
		check("Clear")
	})

	s.Describe("derived operations", func(s *testcase.Spec) {
		maker := func(t *testcase.T) vector.Maker[vector.Vector[S, A]] {
			return func() vector.Vector[S, A] { return mk(t) }
		}

		s.Test("WithCapacity makes an empty vector with the reserved capacity", func(t *testcase.T) {
			n := t.Random.IntBetween(1, 64)
			v := vector.WithCapacity[S, A](maker(t), n)
			assert.Equal(t, 0, v.Len())
			assert.True(t, n <= v.Cap())
		})

		s.Test("FromSlice keeps the order of the source", func(t *testcase.T) {
			vs := c.makeArgs(t, t.Random.IntBetween(0, 16))
			v := vector.FromSlice[S, A](maker(t), vs)
			assert.Equal(t, c.toStorages(vs), vector.ToSlice[S](v))
			assert.True(t, len(vs) <= v.Cap())
		})

		s.Test("FromSeq keeps the order of the source", func(t *testcase.T) {
			vs := c.makeArgs(t, t.Random.IntBetween(0, 16))
			v := vector.FromSeq[S, A](maker(t), func(yield func(A) bool) {
				for _, a := range vs {
					if !yield(a) {
						return
					}
				}
			})
			assert.Equal(t, c.toStorages(vs), vector.ToSlice[S](v))
		})

		s.Test("ToSlice returns a copy", func(t *testcase.T) {
			vs := c.makeArgs(t, t.Random.IntBetween(1, 7))
			v := vector.FromSlice[S, A](maker(t), vs)
			out := vector.ToSlice[S](v)
			v.Clear()
			assert.Equal(t, c.toStorages(vs), out)
		})
	})

	s.Describe("iteration", func(s *testcase.Spec) {
		withValues(s)

		drain := func(t *testcase.T, next func() (S, bool)) []S {
			var out []S
			for {
				v, ok := next()
				if !ok {
					break
				}
				out = append(out, v)
				assert.True(t, len(out) <= len(values.Get(t)), "iterator produced more elements than expected")
			}
			return out
		}

		s.Test("owning iterator yields every element once, then stays exhausted", func(t *testcase.T) {
			itr := vector.IntoIter(subject.Get(t))
			n := len(values.Get(t))

			lower, _, bounded := itr.SizeHint()
			assert.Equal(t, n, lower)
			assert.False(t, bounded)
			assert.Equal(t, n, itr.Len())

			assert.Equal(t, c.toStorages(values.Get(t)), drain(t, itr.Next))
			t.Random.Repeat(1, 3, func() {
				_, ok := itr.Next()
				assert.False(t, ok)
			})
			assert.NoError(t, itr.Close())
		})

		s.Test("borrowing iterator yields every element once, then stays exhausted", func(t *testcase.T) {
			itr := vector.Iter[S](subject.Get(t))
			n := len(values.Get(t))

			lower, _, bounded := itr.SizeHint()
			assert.Equal(t, n, lower)
			assert.False(t, bounded)
			assert.Equal(t, n, itr.Len())

			assert.Equal(t, c.toStorages(values.Get(t)), drain(t, itr.Next))
			_, ok := itr.Next()
			assert.False(t, ok)
			assert.NoError(t, itr.Close())

			// borrowing leaves the vector intact
			thenUnchanged(t)
		})

		s.Test("All is traversable more than once", func(t *testcase.T) {
			exp := c.toStorages(values.Get(t))
			for range 2 {
				var got []S
				for v := range vector.All[S](subject.Get(t)) {
					got = append(got, v)
				}
				assert.Equal(t, exp, got)
			}
		})

		s.Test("FromIter collects an iterator of the vector into a new one", func(t *testcase.T) {
			if reflect.TypeFor[S]() != reflect.TypeFor[A]() {
				t.Skip("storage values can't be written back when the storage and argument types differ")
			}
			src := vector.Iter[S](subject.Get(t))
			got := vector.FromIter[S, A](func() vector.Vector[S, A] { return mk(t) }, producerAs[S, A]{src})
			assert.Equal(t, c.toStorages(values.Get(t)), vector.ToSlice[S](got))
		})
	})

	return s.AsSuite(fmt.Sprintf("Vector[%s, %s]", reflect.TypeFor[S]().String(), reflect.TypeFor[A]().String()))
}

// producerAs converts the storage values of a producer into argument values of the same type.
type producerAs[S, A any] struct {
	vector.Producer[S]
}

func (p producerAs[S, A]) Next() (A, bool) {
	v, ok := p.Producer.Next()
	if !ok {
		var zero A
		return zero, false
	}
	return any(v).(A), true
}

func (p producerAs[S, A]) SizeHint() (int, int, bool) {
	if sh, ok := p.Producer.(vector.SizeHinter); ok {
		return sh.SizeHint()
	}
	return 0, 0, false
}
