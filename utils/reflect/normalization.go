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

package reflect

import (
	"encoding"
	"encoding/gob"
	"encoding/json"
	"errors"
	"reflect"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/internal/core"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the member type is an anonymous
	// struct or is not a struct at all.
	ErrReflectTypeNotNamed = errors.New("reflect: member type must be a named struct")
	// ErrReflectNotMember indicates that the member struct does not embed
	// enumx.Base by value.
	ErrReflectNotMember = errors.New("reflect: member type does not embed enumx.Base by value")
)

var memberType = reflect.TypeFor[apis.Member]()

// NormalizeMember returns the canonical member type (*T) for t.
//
// Normalization policy:
//   - T (a struct)  -> *T
//   - *T            -> *T
//   - anything else (**T, slices, maps, unnamed structs) -> ErrReflectTypeNotNamed
//
// The returned type must embed enumx.Base by value and still implement
// apis.Member; embedding *Base, not embedding it at all, or shadowing a
// Member method with a different signature yields ErrReflectNotMember.
func NormalizeMember(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	if t.Kind() == reflect.Struct {
		t = reflect.PointerTo(t)
	}
	if t.Kind() != reflect.Pointer {
		return nil, ErrReflectTypeNotNamed
	}
	elem := t.Elem()
	if elem.Kind() != reflect.Struct || elem.Name() == "" {
		return nil, ErrReflectTypeNotNamed
	}
	b, ok := core.Of(reflect.New(elem).Interface())
	if !ok || b == nil || !t.Implements(memberType) {
		return nil, ErrReflectNotMember
	}
	return t, nil
}

// snapshotHooks lists the restore-side interfaces: each one lets a decoder
// fill a member from bytes, which would mint a second instance. Marshal-only
// hooks are harmless and are not listed.
var snapshotHooks = []struct {
	name string
	typ  reflect.Type
}{
	{"encoding.BinaryUnmarshaler", reflect.TypeFor[encoding.BinaryUnmarshaler]()},
	{"encoding.TextUnmarshaler", reflect.TypeFor[encoding.TextUnmarshaler]()},
	{"json.Unmarshaler", reflect.TypeFor[json.Unmarshaler]()},
	{"gob.GobDecoder", reflect.TypeFor[gob.GobDecoder]()},
}

// SnapshotHooks returns the names of the restore interfaces that t
// (or *t, for non-pointer t) implements, in a fixed order.
func SnapshotHooks(t reflect.Type) []string {
	if t == nil {
		return nil
	}
	if t.Kind() != reflect.Pointer {
		t = reflect.PointerTo(t)
	}
	var out []string
	for _, h := range snapshotHooks {
		if t.Implements(h.typ) {
			out = append(out, h.name)
		}
	}
	return out
}
