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

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/internal/core"
	"dirpx.dev/enumx/registry"
)

// Base must be embedded by value in every enum member struct.
type Base = core.Base

type (
	// RawValue is the integer or string discriminator of a member.
	RawValue = apis.RawValue
	// State is the resolution state of an enum.
	State = apis.State
	// Error is the structured error returned by enum operations.
	Error = apis.Error
	// Kind identifies the failure carried by an Error.
	Kind = apis.Kind
)

// Resolution states.
const (
	Unresolved = apis.Unresolved
	Resolving  = apis.Resolving
	Resolved   = apis.Resolved
	Failed     = apis.Failed
)

// Error sentinels, for use with errors.Is.
var (
	ErrDefinition = apis.ErrDefinition
	ErrLookup     = apis.ErrLookup
	ErrUsage      = apis.ErrUsage

	ErrWrongFactoryResult  = apis.ErrWrongFactoryResult
	ErrForeignTypeResult   = apis.ErrForeignTypeResult
	ErrDuplicateRawValue   = apis.ErrDuplicateRawValue
	ErrInvalidRawValueKind = apis.ErrInvalidRawValueKind
	ErrSerializableMember  = apis.ErrSerializableMember
	ErrFactoryPanic        = apis.ErrFactoryPanic
	ErrReentrantResolution = apis.ErrReentrantResolution
	ErrNoSuchRawValue      = apis.ErrNoSuchRawValue
	ErrTypeMismatch        = apis.ErrTypeMismatch
)

// IntRaw returns an integer RawValue.
func IntRaw(i int64) RawValue { return apis.IntRaw(i) }

// StringRaw returns a string RawValue.
func StringRaw(s string) RawValue { return apis.StringRaw(s) }

// defaultRegistry holds every enum declared with Define.
var defaultRegistry = registry.New(config.DefaultConfig())

// Registry returns the process-wide registry used by Define.
func Registry() apis.Registry {
	return defaultRegistry
}

// Config returns the configuration of the process-wide registry.
func Config() apis.Config {
	return defaultRegistry.Config()
}

// SetConfig replaces the configuration of the process-wide registry.
// Enums keep their names; enums that already resolved keep their outcome.
func SetConfig(cfg apis.Config) {
	defaultRegistry.Configure(cfg)
}

// Configure applies opts on top of the default configuration and installs
// the result on the process-wide registry.
func Configure(opts ...config.Option) {
	SetConfig(config.NewConfig(opts...))
}

// Values returns the members of the enum whose member type is t, from the
// process-wide registry.
func Values(t reflect.Type) (*apis.Values, error) {
	return defaultRegistry.Values(t)
}

// ValueOf returns the member of t carrying raw, from the process-wide
// registry.
func ValueOf(t reflect.Type, raw any) (apis.Member, error) {
	return defaultRegistry.ValueOf(t, raw)
}

// Entries lists the enums of the process-wide registry.
func Entries() []apis.Entry {
	return defaultRegistry.Entries()
}

// ResolveAll resolves every enum of the process-wide registry and returns
// all definition errors combined. Call it at start-up to fail fast:
//
//	if err := enumx.ResolveAll(); err != nil {
//	    log.Fatal(err)
//	}
func ResolveAll() error {
	return defaultRegistry.ResolveAll()
}
