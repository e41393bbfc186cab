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

package enumx

import (
	"reflect"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/utils/ordered"
)

// Member is the constraint of typed enums: P is *T and T embeds Base.
type Member[T any] interface {
	*T
	apis.Member
}

// Factory produces one member of a typed enum through m.
type Factory[T any, P Member[T]] func(m *Minter[T, P]) P

// Minter constructs members while the enum is being resolved. After
// resolution it only returns the existing members.
type Minter[T any, P Member[T]] struct {
	m apis.Minter
}

// Create returns a new member carrying raw. On failure it returns nil and
// the error fails the enum; outside resolution it returns the existing
// member (or nil when there is none).
func (m *Minter[T, P]) Create(raw any) P {
	// During the pass the minter keeps the error and fails the enum with it;
	// afterwards nil just means there is no such member.
	p, _ := m.TryCreate(raw)
	return p
}

// TryCreate is Create with the error exposed.
func (m *Minter[T, P]) TryCreate(raw any) (P, error) {
	v, err := m.m.Create(raw)
	if err != nil {
		return nil, err
	}
	return v.(P), nil
}

// Raw returns a factory for the member carrying raw. Each init function
// runs on the fresh member before it is published.
//
//	var Colors = enumx.Define[Color]("Color",
//	    enumx.Raw[Color]("RED", func(c *Color) { c.Hex = "#ff0000" }),
//	)
func Raw[T any, P Member[T]](raw any, init ...func(P)) Factory[T, P] {
	return func(m *Minter[T, P]) P {
		p := m.Create(raw)
		if p == nil {
			return nil
		}
		for _, f := range init {
			f(p)
		}
		return p
	}
}

// Enum is the typed handle of one registered enum.
type Enum[T any, P Member[T]] struct {
	reg  apis.Registry
	typ  reflect.Type
	vals atomic.Pointer[ordered.Map[RawValue, P]]
}

// Define registers an enum in the process-wide registry. It is meant for
// package-level variables and panics if the definition is rejected.
// An empty name is derived from the member type.
func Define[T any, P Member[T]](name string, factories ...Factory[T, P]) *Enum[T, P] {
	e, err := DefineIn(defaultRegistry, name, factories...)
	if err != nil {
		panic(err)
	}
	return e
}

// DefineIn registers an enum in reg.
func DefineIn[T any, P Member[T]](reg apis.Registry, name string, factories ...Factory[T, P]) (*Enum[T, P], error) {
	fs := make([]apis.Factory, len(factories))
	for i, f := range factories {
		if f == nil {
			continue
		}
		fs[i] = func(m apis.Minter) any {
			return f(&Minter[T, P]{m: m})
		}
	}
	typ := reflect.TypeFor[P]()
	if err := reg.Register(apis.Definition{Type: typ, Name: name, Factories: fs}); err != nil {
		return nil, err
	}
	return &Enum[T, P]{reg: reg, typ: typ}, nil
}

// Name returns the display name.
func (e *Enum[T, P]) Name() string {
	name, _ := e.reg.Name(e.typ)
	return name
}

// Type returns the member type (*T).
func (e *Enum[T, P]) Type() reflect.Type { return e.typ }

// Registry returns the registry holding the enum.
func (e *Enum[T, P]) Registry() apis.Registry { return e.reg }

// State returns the resolution state.
func (e *Enum[T, P]) State() State { return e.reg.State(e.typ) }

// Values resolves the enum if needed and returns its members in
// declaration order.
func (e *Enum[T, P]) Values() (*ordered.Map[RawValue, P], error) {
	if v := e.vals.Load(); v != nil {
		return v, nil
	}
	vals, err := e.reg.Values(e.typ)
	if err != nil {
		return nil, err
	}
	e.vals.CompareAndSwap(nil, ordered.Convert(vals, func(m apis.Member) P { return m.(P) }))
	return e.vals.Load(), nil
}

// ValueOf returns the member carrying raw.
func (e *Enum[T, P]) ValueOf(raw any) (P, error) {
	vals, err := e.Values()
	if err != nil {
		return nil, err
	}
	rv, err := apis.NewRawValue(raw)
	if err == nil {
		if p, ok := vals.Get(rv); ok {
			return p, nil
		}
	}
	// Let the registry build the lookup error.
	m, err := e.reg.ValueOf(e.typ, raw)
	if err != nil {
		return nil, err
	}
	return m.(P), nil
}

// MustValueOf is ValueOf that panics on error. It suits accessor
// functions for well-known members:
//
//	func Red() *Color { return Colors.MustValueOf("RED") }
func (e *Enum[T, P]) MustValueOf(raw any) P {
	p, err := e.ValueOf(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Contains reports whether the enum resolves and has a member carrying raw.
func (e *Enum[T, P]) Contains(raw any) bool {
	_, err := e.ValueOf(raw)
	return err == nil
}

// Len returns the number of members, or 0 if the enum fails to resolve.
func (e *Enum[T, P]) Len() int {
	vals, err := e.Values()
	if err != nil {
		return 0
	}
	return vals.Len()
}
