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

// Package enumxtest provides testify-style assertions for enums declared
// with enumx.
package enumxtest

import (
	"fmt"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/apis"
)

type tHelper interface {
	Helper()
}

// AssertValuesCount asserts that e resolves to exactly want members.
func AssertValuesCount[T any, P enumx.Member[T]](t assert.TestingT, e *enumx.Enum[T, P], want int, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	vals, err := e.Values()
	if !assert.NoError(t, err, msgAndArgs...) {
		return false
	}
	return assert.Equal(t, want, vals.Len(), append([]any{
		fmt.Sprintf("enum %q contains unexpected amount of values (%d instead of %d)", e.Name(), vals.Len(), want),
	}, msgAndArgs...)...)
}

// AssertRawValue asserts that m carries the raw value want.
func AssertRawValue(t assert.TestingT, want any, m apis.Member, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if m == nil {
		return assert.Fail(t, "member is nil", msgAndArgs...)
	}
	raw, err := apis.NewRawValue(want)
	if !assert.NoError(t, err, msgAndArgs...) {
		return false
	}
	return assert.Equal(t, raw, m.RawValue(), msgAndArgs...)
}

// AssertRawValues asserts that e has exactly the members of want and that
// each of them carries its key as raw value:
//
//	enumxtest.AssertRawValues(t, Colors, map[any]*Color{
//	    "RED":   Red(),
//	    "GREEN": Green(),
//	})
func AssertRawValues[T any, P enumx.Member[T]](t assert.TestingT, e *enumx.Enum[T, P], want map[any]P, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if len(want) == 0 {
		return assert.Fail(t, "want must not be empty", msgAndArgs...)
	}
	ok := AssertValuesCount(t, e, len(want), msgAndArgs...)
	for raw, m := range want {
		if m == nil {
			ok = assert.Fail(t, fmt.Sprintf("member for raw value %v is nil", raw), msgAndArgs...) && ok
			continue
		}
		ok = AssertRawValue(t, raw, m, msgAndArgs...) && ok
		if got, err := e.ValueOf(raw); assert.NoError(t, err, msgAndArgs...) {
			ok = assert.Same(t, m, got, msgAndArgs...) && ok
		} else {
			ok = false
		}
	}
	return ok
}
