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

// Package core holds the member base embedded by every enum member type and
// the sealed operations the registry uses to bind it.
package core

import (
	"fmt"
	"reflect"

	"dirpx.dev/enumx/apis"
)

// Owner identifies one enum inside one registry. Members point at their
// Owner; two members are comparable only if they share it.
type Owner struct {
	// Type is the member type (*T).
	Type reflect.Type
	// Name is the display name.
	Name string
}

// Base must be embedded by value in every enum member struct:
//
//	type Color struct {
//	    enumx.Base
//	    Hex string
//	}
//
// Base is bound exactly once, by the registry, while the enum is resolved.
// A member has no clone, marshal or restore operation; the registry is the
// only source of instances. Copying a member by value is reported by
// go vet (copylocks).
type Base struct {
	noCopy noCopy
	raw    apis.RawValue
	owner  *Owner
}

// RawValue returns the member's raw value.
func (b *Base) RawValue() apis.RawValue { return b.raw }

// EnumName returns the display name of the owning enum, or "" when unbound.
func (b *Base) EnumName() string {
	if b.owner == nil {
		return ""
	}
	return b.owner.Name
}

// EnumType returns the member type of the owning enum, or nil when unbound.
func (b *Base) EnumType() reflect.Type {
	if b.owner == nil {
		return nil
	}
	return b.owner.Type
}

// Equals reports whether other is this very member.
// Comparing against a member of another enum fails with TypeMismatch.
func (b *Base) Equals(other apis.Member) (bool, error) {
	ob, ok := Of(other)
	if !ok || ob == nil || b.owner == nil || ob.owner == nil || ob.owner != b.owner {
		return false, &apis.Error{
			Kind:   apis.TypeMismatch,
			Enum:   b.EnumName(),
			Raw:    b.raw,
			Detail: fmt.Sprintf("cannot compare with %s", describe(other, ob)),
		}
	}
	return ob == b, nil
}

// String renders the member as "<enum>(<raw>)".
func (b *Base) String() string {
	return b.EnumName() + "(" + b.raw.String() + ")"
}

func (b *Base) enumBase() *Base { return b }

type member interface {
	enumBase() *Base
}

// Of returns the Base embedded in v. It reports false when v does not embed
// Base; it returns a nil *Base when v is a nil pointer.
func Of(v any) (*Base, bool) {
	m, ok := v.(member)
	if !ok {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, true
	}
	return m.enumBase(), true
}

// Bind stamps raw and owner onto an unbound Base. It reports false and
// changes nothing when b is nil or already bound.
func Bind(b *Base, raw apis.RawValue, owner *Owner) bool {
	if b == nil || b.owner != nil || owner == nil {
		return false
	}
	b.raw = raw
	b.owner = owner
	return true
}

// OwnerOf returns the owner b is bound to.
func OwnerOf(b *Base) *Owner {
	if b == nil {
		return nil
	}
	return b.owner
}

func describe(other apis.Member, ob *Base) string {
	switch {
	case other == nil:
		return "nil member"
	case ob == nil || ob.owner == nil:
		return fmt.Sprintf("unbound %T", other)
	default:
		return fmt.Sprintf("member of enum %q", ob.owner.Name)
	}
}

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

// Lock is a no-op used by go vet's copylocks checker.
func (*noCopy) Lock() {}

// Unlock is a no-op used by go vet's copylocks checker.
func (*noCopy) Unlock() {}
