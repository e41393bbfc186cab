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

// Package registry implements apis.Registry: enum registration, lazy
// compute-once resolution behind a gatekeeping minter, and lookups.
package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/internal/core"
	uref "dirpx.dev/enumx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("enumx(registry): nil reflect.Type provided")
	// ErrNilFactory is returned when a definition lists a nil factory.
	ErrNilFactory = errors.New("enumx(registry): nil factory provided")
	// ErrConflictingRegistration indicates an attempt to register
	// the same member type twice.
	ErrConflictingRegistration = errors.New("enumx(registry): conflicting enum registration")
	// ErrUnknownEnum is returned when a type was never registered.
	ErrUnknownEnum = errors.New("enumx(registry): enum type is not registered")
)

// New constructs a Registry configured by cfg. Nil fields of cfg are filled
// by config.Normalize.
func New(cfg apis.Config) apis.Registry {
	r := &registry{}
	r.Configure(cfg)
	return r
}

// registry is the Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the current configuration snapshot.
	cfg atomic.Pointer[apis.Config]
	// mu guards the write path and order.
	mu sync.Mutex
	// m maps the member type (*T) to its entry.
	m sync.Map // map[reflect.Type]*entry
	// order lists entries in registration order.
	order []*entry
}

// Register validates def and stores it. No factory runs here.
func (r *registry) Register(def apis.Definition) error {
	// Validate inputs early.
	if def.Type == nil {
		return ErrNilType
	}
	t, err := uref.NormalizeMember(def.Type)
	if err != nil {
		return fmt.Errorf("enumx(registry): cannot register %v: %w", def.Type, err)
	}
	for i, f := range def.Factories {
		if f == nil {
			return fmt.Errorf("%w: factory #%d of %v", ErrNilFactory, i, t)
		}
	}

	// Fast read path.
	if _, ok := r.m.Load(t); ok {
		return fmt.Errorf("%w: %v", ErrConflictingRegistration, t)
	}

	cfg := r.Config()
	name := def.Name
	if name == "" {
		name = cfg.Naming.ResolveType(t)
	}
	if name == "" {
		name = t.Elem().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if _, ok := r.m.Load(t); ok {
		return fmt.Errorf("%w: %v", ErrConflictingRegistration, t)
	}

	e := newEntry(&core.Owner{Type: t, Name: name}, def.Factories)
	r.m.Store(t, e)
	r.order = append(r.order, e)

	cfg.Logger.Debug("enum registered",
		zap.String("enum", name),
		zap.Stringer("type", t),
		zap.Int("factories", len(e.factories)),
	)
	return nil
}

// Values resolves t on first access and returns its frozen members.
func (r *registry) Values(t reflect.Type) (*apis.Values, error) {
	e, err := r.lookup(t)
	if err != nil {
		return nil, err
	}
	return e.resolve(r)
}

// ValueOf returns the member of t carrying raw.
func (r *registry) ValueOf(t reflect.Type, raw any) (apis.Member, error) {
	e, err := r.lookup(t)
	if err != nil {
		return nil, err
	}
	return r.valueOf(e, raw)
}

// Create never constructs: outside a resolution pass it is a lookup.
func (r *registry) Create(t reflect.Type, raw any) (apis.Member, error) {
	e, err := r.lookup(t)
	if err != nil {
		return nil, err
	}
	return r.redirect(e, raw)
}

// State returns the resolution state of t; unknown types are Unresolved.
func (r *registry) State(t reflect.Type) apis.State {
	e, err := r.lookup(t)
	if err != nil {
		return apis.Unresolved
	}
	return e.State()
}

// Name returns the display name of t.
func (r *registry) Name(t reflect.Type) (string, bool) {
	e, err := r.lookup(t)
	if err != nil {
		return "", false
	}
	return e.owner.Name, true
}

// Entries returns a snapshot for diagnostics, in registration order.
func (r *registry) Entries() []apis.Entry {
	entries := r.snapshot()
	out := make([]apis.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.describe())
	}
	return out
}

// Count returns the number of registered enums.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// ResolveAll resolves every registered enum. Failures are combined; one
// broken enum does not stop the others from resolving.
func (r *registry) ResolveAll() error {
	var errs error
	for _, e := range r.snapshot() {
		if _, err := e.resolve(r); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Config returns the current configuration.
func (r *registry) Config() apis.Config {
	return *r.cfg.Load()
}

// Configure swaps the configuration. Entries already registered keep
// their names; resolutions that already happened are not repeated.
func (r *registry) Configure(cfg apis.Config) {
	cfg = config.Normalize(cfg)
	r.cfg.Store(&cfg)
}

func (r *registry) snapshot() []*entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entry, len(r.order))
	copy(out, r.order)
	return out
}

// lookup finds the entry for t, accepting either T or *T.
func (r *registry) lookup(t reflect.Type) (*entry, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if t.Kind() != reflect.Pointer {
		t = reflect.PointerTo(t)
	}
	if v, ok := r.m.Load(t); ok {
		return v.(*entry), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownEnum, t)
}

func (r *registry) valueOf(e *entry, raw any) (apis.Member, error) {
	vals, err := e.resolve(r)
	if err != nil {
		return nil, err
	}
	rv, err := apis.NewRawValue(raw)
	if err != nil {
		return nil, &apis.Error{
			Kind:   apis.NoSuchRawValue,
			Enum:   e.owner.Name,
			Detail: fmt.Sprintf("%T(%v) cannot name a member: raw values are integers or strings", raw, raw),
		}
	}
	if m, ok := vals.Get(rv); ok {
		return m, nil
	}
	return nil, &apis.Error{Kind: apis.NoSuchRawValue, Enum: e.owner.Name, Raw: rv}
}

// redirect serves Create outside a resolution pass.
func (r *registry) redirect(e *entry, raw any) (apis.Member, error) {
	r.Config().Logger.Debug("create redirected to lookup",
		zap.String("enum", e.owner.Name),
		zap.Any("raw", raw),
	)
	return r.valueOf(e, raw)
}
