package vectorcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
)

type Config[S, A any] struct {
	// MakeArg makes an argument value that can be written into the vector.
	// By default, a random value is made with testcase's random.
	MakeArg func(testing.TB) A
	// ToStorage tells what a written argument value reads back as.
	// It is required when the storage and the argument types differ.
	ToStorage func(A) S
}

type Option[S, A any] option.Option[Config[S, A]]

var _ Option[any, any] = Config[any, any]{}

func (c Config[S, A]) Configure(o *Config[S, A]) {
	o.MakeArg = zerokit.Coalesce(c.MakeArg, o.MakeArg)
	o.ToStorage = zerokit.Coalesce(c.ToStorage, o.ToStorage)
}

func (c Config[S, A]) makeArg(tb testing.TB) A {
	if c.MakeArg != nil {
		return c.MakeArg(tb)
	}
	t := testcase.ToT(&tb)
	return t.Random.Make(*new(A)).(A)
}

func (c Config[S, A]) makeArgs(tb testing.TB, n int) []A {
	var vs = make([]A, 0, n)
	for i := 0; i < n; i++ {
		vs = append(vs, c.makeArg(tb))
	}
	return vs
}

func (c Config[S, A]) toStorage(a A) S {
	if c.ToStorage != nil {
		return c.ToStorage(a)
	}
	s, ok := any(a).(S)
	if !ok {
		panic(fmt.Sprintf("vectorcontract: Config.ToStorage is required to read %T back as %T", a, *new(S)))
	}
	return s
}

func (c Config[S, A]) toStorages(as []A) []S {
	var out = make([]S, 0, len(as))
	for _, a := range as {
		out = append(out, c.toStorage(a))
	}
	return out
}
