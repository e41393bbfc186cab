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
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/internal/core"
)

// minter is the construction gate of one resolution pass. While open,
// Create allocates and binds a new member; once closed it is a lookup.
type minter struct {
	r    *registry
	e    *entry
	open atomic.Bool

	mu  sync.Mutex
	err error // first failure of the current factory call
}

// Compile-time check that minter satisfies apis.Minter.
var _ apis.Minter = (*minter)(nil)

func newMinter(r *registry, e *entry) *minter {
	m := &minter{r: r, e: e}
	m.open.Store(true)
	return m
}

func (m *minter) close() {
	m.open.Store(false)
}

// Create implements apis.Minter.
func (m *minter) Create(raw any) (apis.Member, error) {
	if !m.open.Load() {
		return m.r.redirect(m.e, raw)
	}

	rv, err := apis.NewRawValue(raw)
	if err != nil {
		var ae *apis.Error
		if errors.As(err, &ae) {
			ae.Enum = m.e.owner.Name
		}
		m.fail(err)
		return nil, err
	}

	v := reflect.New(m.e.owner.Type.Elem()).Interface()
	b, _ := core.Of(v)
	core.Bind(b, rv, m.e.owner)
	return v.(apis.Member), nil
}

// invoke calls f with the minter and reports the first error recorded
// during the call, or a recovered panic.
func (m *minter) invoke(i int, f apis.Factory) (out any, err error) {
	m.take()
	defer func() {
		if p := recover(); p != nil {
			// An error recorded before the panic is the cause.
			if ferr := m.take(); ferr != nil {
				out, err = nil, ferr
				return
			}
			out, err = nil, &apis.Error{
				Kind:   apis.FactoryPanic,
				Enum:   m.e.owner.Name,
				Detail: fmt.Sprintf("factory #%d panicked: %v", i, p),
			}
		}
	}()

	out = f(m)
	if ferr := m.take(); ferr != nil {
		return nil, ferr
	}
	return out, nil
}

func (m *minter) fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err == nil {
		m.err = err
	}
}

func (m *minter) take() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	err := m.err
	m.err = nil
	return err
}
