/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"dirpx.dev/enumx/apis"
)

type code uint8

type label string

func TestNewRawValue_Accepted(t *testing.T) {
	cases := []struct {
		in   any
		want apis.RawValue
	}{
		{"RED", apis.StringRaw("RED")},
		{"", apis.StringRaw("")},
		{label("x"), apis.StringRaw("x")},
		{0, apis.IntRaw(0)},
		{int8(-3), apis.IntRaw(-3)},
		{int64(math.MinInt64), apis.IntRaw(math.MinInt64)},
		{uint64(math.MaxInt64), apis.IntRaw(math.MaxInt64)},
		{code(7), apis.IntRaw(7)},
		{apis.IntRaw(9), apis.IntRaw(9)},
	}
	for _, tc := range cases {
		got, err := apis.NewRawValue(tc.in)
		require.NoError(t, err, "%T(%v)", tc.in, tc.in)
		assert.Equal(t, tc.want, got, "%T(%v)", tc.in, tc.in)
	}
}

func TestNewRawValue_Rejected(t *testing.T) {
	for _, in := range []any{nil, 1.5, float32(2), true, []byte("x"), struct{}{}, uint64(math.MaxInt64) + 1, apis.RawValue{}} {
		_, err := apis.NewRawValue(in)
		require.ErrorIs(t, err, apis.ErrInvalidRawValueKind, "%T", in)
		require.ErrorIs(t, err, apis.ErrDefinition)
	}
}

func TestRawValue_Accessors(t *testing.T) {
	i := apis.IntRaw(42)
	s := apis.StringRaw("42")
	assert.NotEqual(t, i, s, "integer 42 and string \"42\" differ")

	n, ok := i.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)
	_, ok = i.Str()
	assert.False(t, ok)
	assert.Equal(t, apis.RawInt, i.Kind())
	assert.Equal(t, int64(42), i.Interface())
	assert.Equal(t, "42", i.Quote())

	str, ok := s.Str()
	assert.True(t, ok)
	assert.Equal(t, "42", str)
	assert.Equal(t, `"42"`, s.Quote())
	assert.Equal(t, "string", s.Kind().String())

	var zero apis.RawValue
	assert.False(t, zero.IsValid())
	assert.Nil(t, zero.Interface())
	assert.Equal(t, "<invalid>", zero.String())
}

func TestRawValue_IntegerProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.Int64().Draw(rt, "n")
		got, err := apis.NewRawValue(n)
		require.NoError(rt, err)
		require.Equal(rt, apis.IntRaw(n), got)

		if n >= 0 {
			fromUint, err := apis.NewRawValue(uint64(n))
			require.NoError(rt, err)
			require.Equal(rt, got, fromUint)
		}
	})
}

func TestError(t *testing.T) {
	err := error(&apis.Error{
		Kind:   apis.DuplicateRawValue,
		Enum:   "Color",
		Raw:    apis.StringRaw("X"),
		Detail: "factory #2 repeats the raw value of factory #0",
	})
	assert.Equal(t,
		`enumx: duplicate raw value: enum "Color", raw value "X": factory #2 repeats the raw value of factory #0`,
		err.Error())
	assert.True(t, errors.Is(err, apis.ErrDuplicateRawValue))
	assert.True(t, errors.Is(err, apis.ErrDefinition))
	assert.False(t, errors.Is(err, apis.ErrLookup))

	lookup := &apis.Error{Kind: apis.NoSuchRawValue, Enum: "Level", Raw: apis.IntRaw(4)}
	assert.Equal(t, `enumx: no such raw value: enum "Level", raw value 4`, lookup.Error())
	assert.ErrorIs(t, lookup, apis.ErrLookup)

	usage := &apis.Error{Kind: apis.TypeMismatch}
	assert.ErrorIs(t, usage, apis.ErrUsage)
	assert.Equal(t, "enumx: type mismatch", usage.Error())
}

func TestKindAndClassStrings(t *testing.T) {
	assert.Equal(t, "factory panic", apis.FactoryPanic.String())
	assert.Equal(t, "Unknown(99)", apis.Kind(99).String())
	assert.Equal(t, apis.ClassDefinition, apis.SerializableMember.Class())
	assert.Equal(t, "lookup", apis.NoSuchRawValue.Class().String())
	assert.Equal(t, "Unknown(0)", apis.Class(0).String())
}

func TestState(t *testing.T) {
	assert.Equal(t, "Resolving", apis.Resolving.String())
	assert.Equal(t, "Unknown(7)", apis.State(7).String())
	assert.False(t, apis.Resolving.Terminal())
	assert.True(t, apis.Failed.Terminal())
	assert.True(t, apis.Resolved.Terminal())
}
