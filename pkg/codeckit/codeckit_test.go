package codeckit_test

import (
	"bytes"
	"testing"

	"go.llib.dev/frameless/port/codec"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/vectorkit/pkg/codeckit"
)

type Sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Tags  []string
}

func TestCodecs(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := let.Var[codec.Codec](s, nil)

	s.Context("CBOR", func(s *testcase.Spec) {
		subject.LetValue(s, codeckit.CBOR{})
		itRoundTrips(s, subject)

		s.Test("encoding is canonical", func(t *testcase.T) {
			a, err := subject.Get(t).Marshal(map[string]int{"b": 2, "a": 1, "c": 3})
			assert.NoError(t, err)
			b, err := subject.Get(t).Marshal(map[string]int{"c": 3, "a": 1, "b": 2})
			assert.NoError(t, err)
			assert.True(t, bytes.Equal(a, b))
		})
	})

	s.Context("JSON", func(s *testcase.Spec) {
		subject.LetValue(s, codeckit.JSON{})
		itRoundTrips(s, subject)

		s.Test("output is plain json", func(t *testcase.T) {
			data, err := subject.Get(t).Marshal(Sample{Name: "x", Count: 1})
			assert.NoError(t, err)
			assert.Contains(t, string(data), `"name":"x"`)
		})
	})
}

func itRoundTrips(s *testcase.Spec, subject testcase.Var[codec.Codec]) {
	s.Test("round trip", func(t *testcase.T) {
		exp := Sample{
			Name:  t.Random.String(),
			Count: t.Random.Int(),
			Tags:  []string{t.Random.String(), t.Random.String()},
		}
		data, err := subject.Get(t).Marshal(exp)
		assert.NoError(t, err)

		var got Sample
		assert.NoError(t, subject.Get(t).Unmarshal(data, &got))
		assert.Equal(t, exp, got)
	})

	s.Test("malformed input yields an error", func(t *testcase.T) {
		var got Sample
		assert.Error(t, subject.Get(t).Unmarshal([]byte{0xff, 0x00, '{'}, &got))
	})
}

func TestLookup(t *testing.T) {
	s := testcase.NewSpec(t)

	name := let.Var[string](s, nil)
	act := let.Act2(func(t *testcase.T) (codec.Codec, error) {
		return codeckit.Lookup(name.Get(t))
	})

	s.When("name is cbor", func(s *testcase.Spec) {
		name.LetValue(s, "cbor")

		s.Then("CBOR is returned", func(t *testcase.T) {
			c, err := act(t)
			assert.NoError(t, err)
			assert.Equal[codec.Codec](t, codeckit.CBOR{}, c)
		})
	})

	s.When("name is json", func(s *testcase.Spec) {
		name.LetValue(s, "json")

		s.Then("JSON is returned", func(t *testcase.T) {
			c, err := act(t)
			assert.NoError(t, err)
			assert.Equal[codec.Codec](t, codeckit.JSON{}, c)
		})
	})

	s.When("name is unknown", func(s *testcase.Spec) {
		name.Let(s, func(t *testcase.T) string {
			return "x-" + t.Random.StringNC(5, "abcdef")
		})

		s.Then("it fails with ErrUnknownCodec", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, err, codeckit.ErrUnknownCodec)
		})
	})

	s.Test("Names lists every known codec", func(t *testcase.T) {
		assert.Equal(t, []string{"cbor", "json"}, codeckit.Names())
	})
}
