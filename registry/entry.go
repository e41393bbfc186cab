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

package registry

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/internal/core"
	"dirpx.dev/enumx/utils/ordered"
	uref "dirpx.dev/enumx/utils/reflect"
)

// entry is one registered enum.
type entry struct {
	owner     *core.Owner
	factories []apis.Factory

	once   sync.Once
	state  atomic.Uint32 // apis.State
	values *apis.Values
	err    error

	// pass is the goroutine running the resolution pass, 0 outside it.
	pass   atomic.Int64
	active atomic.Pointer[minter]
}

func newEntry(owner *core.Owner, factories []apis.Factory) *entry {
	fs := make([]apis.Factory, len(factories))
	copy(fs, factories)
	return &entry{owner: owner, factories: fs}
}

// State returns the current resolution state.
func (e *entry) State() apis.State {
	return apis.State(e.state.Load())
}

// resolve runs the resolution pass once. Every later call returns the
// cached mapping or the cached error. Other goroutines arriving during the
// pass wait for it; the pass's own goroutine gets ReentrantResolution.
func (e *entry) resolve(r *registry) (*apis.Values, error) {
	if e.State() == apis.Resolving {
		if err := e.reentered(); err != nil {
			return nil, err
		}
	}
	e.once.Do(func() {
		e.pass.Store(goroutineID())
		e.state.Store(uint32(apis.Resolving))
		vals, err := r.build(e)
		e.pass.Store(0)

		// values and err are published before the terminal state.
		e.values, e.err = vals, err
		log := r.Config().Logger
		if err != nil {
			e.state.Store(uint32(apis.Failed))
			log.Error("enum resolution failed", zap.String("enum", e.owner.Name), zap.Error(err))
			return
		}
		e.state.Store(uint32(apis.Resolved))
		log.Debug("enum resolved", zap.String("enum", e.owner.Name), zap.Int("members", vals.Len()))
	})
	return e.values, e.err
}

// reentered reports a factory asking for its own enum. Waiting on once
// from inside the pass would never return, so the pass fails instead.
func (e *entry) reentered() error {
	id := e.pass.Load()
	if id == 0 || id != goroutineID() {
		return nil
	}
	err := &apis.Error{
		Kind:   apis.ReentrantResolution,
		Enum:   e.owner.Name,
		Detail: "a factory asked for its own enum while it was being resolved",
	}
	if m := e.active.Load(); m != nil {
		m.fail(err)
	}
	return err
}

func (e *entry) describe() apis.Entry {
	out := apis.Entry{Type: e.owner.Type, Name: e.owner.Name, State: e.State()}
	if out.State == apis.Resolved {
		out.Members = e.values.Len()
	}
	return out
}

// build invokes every factory of e in order through a fresh minter and
// validates what they return. The minter is closed on every exit path.
func (r *registry) build(e *entry) (*apis.Values, error) {
	m := newMinter(r, e)
	e.active.Store(m)
	defer func() {
		e.active.Store(nil)
		m.close()
	}()

	if r.Config().RejectSerializable {
		if hooks := uref.SnapshotHooks(e.owner.Type); len(hooks) > 0 {
			return nil, &apis.Error{
				Kind:   apis.SerializableMember,
				Enum:   e.owner.Name,
				Detail: fmt.Sprintf("%v implements %v; members cannot be restored from bytes", e.owner.Type, hooks),
			}
		}
	}

	b := ordered.NewBuilder[apis.RawValue, apis.Member](len(e.factories))
	for i, f := range e.factories {
		out, err := m.invoke(i, f)
		if err != nil {
			return nil, err
		}
		member, err := e.check(i, out)
		if err != nil {
			return nil, err
		}
		raw := member.RawValue()
		if !b.Insert(raw, member) {
			first, _ := b.Index(raw)
			return nil, &apis.Error{
				Kind:   apis.DuplicateRawValue,
				Enum:   e.owner.Name,
				Raw:    raw,
				Detail: fmt.Sprintf("factory #%d repeats the raw value of factory #%d", i, first),
			}
		}
	}
	return b.Freeze(), nil
}

// check validates one factory result.
func (e *entry) check(i int, out any) (apis.Member, error) {
	b, ok := core.Of(out)
	if !ok || b == nil {
		return nil, &apis.Error{
			Kind:   apis.WrongFactoryResult,
			Enum:   e.owner.Name,
			Detail: fmt.Sprintf("factory #%d returned %s, want a %v created by the minter", i, describeResult(out), e.owner.Type),
		}
	}
	if got := reflect.TypeOf(out); got != e.owner.Type {
		return nil, &apis.Error{
			Kind:   apis.ForeignTypeResult,
			Enum:   e.owner.Name,
			Raw:    b.RawValue(),
			Detail: fmt.Sprintf("factory #%d returned %v, want %v", i, got, e.owner.Type),
		}
	}
	switch owner := core.OwnerOf(b); {
	case owner == nil:
		return nil, &apis.Error{
			Kind:   apis.WrongFactoryResult,
			Enum:   e.owner.Name,
			Detail: fmt.Sprintf("factory #%d returned a %v that was not created by the minter", i, e.owner.Type),
		}
	case owner != e.owner:
		return nil, &apis.Error{
			Kind:   apis.ForeignTypeResult,
			Enum:   e.owner.Name,
			Raw:    b.RawValue(),
			Detail: fmt.Sprintf("factory #%d returned a member owned by another registry", i),
		}
	}
	// NormalizeMember guaranteed *T implements apis.Member at registration.
	return out.(apis.Member), nil
}

func describeResult(out any) string {
	if out == nil {
		return "nil"
	}
	if rv := reflect.ValueOf(out); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Sprintf("nil %T", out)
	}
	return fmt.Sprintf("%T(%v)", out, out)
}
