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
	"reflect"

	"dirpx.dev/enumx/utils/ordered"
)

// Values is the resolved, frozen mapping raw value -> member of one enum,
// in declaration order.
type Values = ordered.Map[RawValue, Member]

// Registry is the process-wide store of enum definitions and their lazily
// resolved members. Implementations must be safe for concurrent use.
type Registry interface {
	// Register adds an enum definition. It does not run any factory.
	// Registering a type that is already registered is an error.
	Register(def Definition) error

	// Values returns the members of the enum whose member type is t,
	// resolving the enum on first access.
	Values(t reflect.Type) (*Values, error)

	// ValueOf returns the member of t whose raw value is raw.
	ValueOf(t reflect.Type, raw any) (Member, error)

	// Create is the construction gate outside resolution: it never builds a
	// new member and behaves exactly like ValueOf.
	Create(t reflect.Type, raw any) (Member, error)

	// State returns the resolution state of t. A type that was never
	// registered also reports Unresolved; use Name to tell the two apart.
	State(t reflect.Type) State

	// Name returns the display name of t if t is registered.
	Name(t reflect.Type) (name string, ok bool)

	// Entries returns a snapshot for diagnostics, in registration order.
	Entries() []Entry

	// Count returns the number of registered enums.
	Count() int

	// ResolveAll resolves every registered enum and returns the combined
	// definition errors, if any.
	ResolveAll() error

	// Config returns the current configuration.
	Config() Config

	// Configure replaces the configuration. Enums that are already resolved
	// are not affected.
	Configure(cfg Config)
}

// Entry is a single enum in a Registry snapshot.
type Entry struct {
	// Type is the member type (*T).
	Type reflect.Type
	// Name is the display name.
	Name string
	// State is the resolution state at snapshot time.
	State State
	// Members is the number of resolved members (0 unless Resolved).
	Members int
}
