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

package apis

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// RawKind is the scalar kind carried by a RawValue.
type RawKind uint8

const (
	// RawInvalid marks the zero RawValue. No member ever carries it.
	RawInvalid RawKind = iota
	// RawInt is any Go integer, normalized to int64.
	RawInt
	// RawString is any Go string kind.
	RawString
)

// String returns "int", "string" or "invalid".
func (k RawKind) String() string {
	switch k {
	case RawInt:
		return "int"
	case RawString:
		return "string"
	default:
		return "invalid"
	}
}

// RawValue is the scalar discriminator of an enum member: an integer or a
// string. RawValue is comparable and is used directly as a map key, so
// int 1 and string "1" are different raw values.
type RawValue struct {
	kind RawKind
	i    int64
	s    string
}

// IntRaw returns an integer RawValue.
func IntRaw(i int64) RawValue { return RawValue{kind: RawInt, i: i} }

// StringRaw returns a string RawValue.
func StringRaw(s string) RawValue { return RawValue{kind: RawString, s: s} }

// NewRawValue converts v into a RawValue.
//
// Accepted inputs are RawValue itself, every signed and unsigned integer
// kind (including named types such as `type Code uint8`) and every string
// kind. Unsigned values above math.MaxInt64 and every other kind (floats,
// bools, nil, composite values) are rejected with an *Error of kind
// InvalidRawValueKind whose Enum field is empty; callers fill it in.
func NewRawValue(v any) (RawValue, error) {
	switch x := v.(type) {
	case RawValue:
		if x.kind == RawInvalid {
			return RawValue{}, invalidKind(v)
		}
		return x, nil
	case string:
		return StringRaw(x), nil
	case int:
		return IntRaw(int64(x)), nil
	case int64:
		return IntRaw(x), nil
	}

	if v == nil {
		return RawValue{}, invalidKind(v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return StringRaw(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntRaw(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return RawValue{}, &Error{
				Kind:   InvalidRawValueKind,
				Detail: fmt.Sprintf("%T value %d overflows int64", v, u),
			}
		}
		return IntRaw(int64(u)), nil
	default:
		return RawValue{}, invalidKind(v)
	}
}

func invalidKind(v any) error {
	return &Error{
		Kind:   InvalidRawValueKind,
		Detail: fmt.Sprintf("%T(%v) is neither an integer nor a string", v, v),
	}
}

// Kind returns the scalar kind.
func (r RawValue) Kind() RawKind { return r.kind }

// IsValid reports whether r carries an integer or a string.
func (r RawValue) IsValid() bool { return r.kind != RawInvalid }

// Int returns the integer value and whether r is an integer.
func (r RawValue) Int() (int64, bool) { return r.i, r.kind == RawInt }

// Str returns the string value and whether r is a string.
func (r RawValue) Str() (string, bool) { return r.s, r.kind == RawString }

// Interface returns the value as int64, string, or nil when invalid.
func (r RawValue) Interface() any {
	switch r.kind {
	case RawInt:
		return r.i
	case RawString:
		return r.s
	default:
		return nil
	}
}

// String renders integers in decimal and strings verbatim.
func (r RawValue) String() string {
	switch r.kind {
	case RawInt:
		return strconv.FormatInt(r.i, 10)
	case RawString:
		return r.s
	default:
		return "<invalid>"
	}
}

// Quote renders r for diagnostics: strings are quoted, integers are not.
func (r RawValue) Quote() string {
	if r.kind == RawString {
		return strconv.Quote(r.s)
	}
	return r.String()
}
