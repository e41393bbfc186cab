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

// Package enumx provides enumerated types whose members are process-wide
// singletons.
//
// An enum is a named Go struct that embeds Base, plus an ordered list of
// factories that each produce one member. Members are always handled as
// pointers, and the registry guarantees that exactly one instance exists per
// (enum, raw value) pair. Pointer equality is therefore member identity:
//
//	type Color struct {
//	    enumx.Base
//	    Hex string
//	}
//
//	var Colors = enumx.Define[Color]("Color",
//	    enumx.Raw[Color]("RED", func(c *Color) { c.Hex = "#ff0000" }),
//	    enumx.Raw[Color]("GREEN", func(c *Color) { c.Hex = "#00ff00" }),
//	    enumx.Raw[Color]("BLUE", func(c *Color) { c.Hex = "#0000ff" }),
//	)
//
//	func Red() *Color { return Colors.MustValueOf("RED") }
//
//	Red() == Red() // always true
//
// # Raw values
//
// Each member carries a raw value, an integer or a string, that is unique
// within its enum. Any Go integer kind is accepted and normalized to int64;
// any string kind is accepted as a string. Integer 1 and string "1" are
// different raw values.
//
// # Lazy resolution
//
// Define only records the definition. The factories run the first time the
// enum is accessed (Values, ValueOf, Contains, Len, ...), exactly once, even
// under concurrent first access. The outcome is cached for the lifetime of
// the registry:
//
//   - On success the members are frozen in declaration order.
//
//   - On failure (a factory returned something that is not a fresh member of
//     this enum, two members share a raw value, a raw value is neither an
//     integer nor a string, a factory panicked, ...) the enum is poisoned:
//     every later access returns the same *Error. Definition failures
//     are programmer defects; ResolveAll surfaces all of them at start-up.
//
// # The construction gate
//
// Factories receive a Minter. While the enum is being resolved,
// Minter.Create allocates a brand-new member. Once resolution is over the
// same call only returns existing members, so no code path outside the
// factories can ever mint a second instance. Members have no clone or
// restore operation, and member types that implement a restore hook
// (gob, binary, text or JSON unmarshalling) are rejected unless configured
// otherwise. Marshalling a member out is allowed.
//
// A factory cannot refer to the Enum variable it is declared in: the
// compiler reports that as an initialization cycle. Well-known members are
// exposed through accessor functions instead, as Red above.
//
// # Registries
//
// Define uses a process-wide registry (see Registry, Config, SetConfig).
// DefineIn targets any apis.Registry, which tests use to get isolated,
// disposable registries. The registry package holds the implementation;
// the config package builds its configuration (zap logger, naming chain,
// serializable rule).
//
// # Errors
//
// All enum errors are *Error values. Use errors.Is with a kind sentinel
// (ErrNoSuchRawValue, ErrDuplicateRawValue, ...) or a class sentinel
// (ErrDefinition, ErrLookup, ErrUsage), or errors.As to read the enum name
// and raw value.
package enumx
