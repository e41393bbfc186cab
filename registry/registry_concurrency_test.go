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

package registry_test

import (
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/registry"
)

// TestConcurrentFirstAccess verifies that concurrent first callers trigger a
// single resolution pass and all observe the same members.
func TestConcurrentFirstAccess(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	var calls atomic.Int32
	release := make(chan struct{})
	slow := func(raw string) apis.Factory {
		return func(m apis.Minter) any {
			calls.Add(1)
			<-release
			v, _ := m.Create(raw)
			return v
		}
	}
	if err := reg.Register(apis.Definition{
		Type:      colorType,
		Factories: []apis.Factory{slow("RED"), slow("GREEN"), slow("BLUE")},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	workers := runtime.GOMAXPROCS(0) * 4
	got := make([]apis.Member, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			m, err := reg.ValueOf(colorType, "GREEN")
			if err != nil {
				t.Errorf("worker %d: %v", id, err)
				return
			}
			got[id] = m
		}(w)
	}
	close(release)
	wg.Wait()

	if n := calls.Load(); n != 3 {
		t.Fatalf("factories ran %d times, want 3", n)
	}
	for id, m := range got {
		if m != got[0] {
			t.Fatalf("worker %d observed a different member: %p vs %p", id, m, got[0])
		}
	}
}

// TestConcurrentRegisterAndResolve hammers registration, lookup and
// diagnostics from many goroutines.
func TestConcurrentRegisterAndResolve(t *testing.T) {
	reg := registry.New(config.DefaultConfig())
	types := []reflect.Type{colorType, shadeType, levelType}
	defs := map[reflect.Type][]apis.Factory{
		colorType: colors(),
		shadeType: {mint("LIGHT"), mint("DARK")},
		levelType: {mint(1), mint(2), mint(3), mint(4)},
	}

	var registered atomic.Int32
	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Writers: every type is offered many times; exactly one wins.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				typ := types[(i+id)%len(types)]
				if err := reg.Register(apis.Definition{Type: typ, Factories: defs[typ]}); err == nil {
					registered.Add(1)
				}
			}
		}(w)
	}

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				typ := types[(i+id)%len(types)]
				if vals, err := reg.Values(typ); err == nil && vals.Len() != len(defs[typ]) {
					t.Errorf("%v: got %d members, want %d", typ, vals.Len(), len(defs[typ]))
					return
				}
				_ = reg.State(typ)
				_ = reg.Count()
				_ = reg.Entries()
			}
		}(w)
	}
	wg.Wait()

	if n := registered.Load(); n != int32(len(types)) {
		t.Fatalf("successful registrations: got %d want %d", n, len(types))
	}
	if err := reg.ResolveAll(); err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}
	for _, e := range reg.Entries() {
		if e.State != apis.Resolved || e.Members != len(defs[e.Type]) {
			t.Fatalf("entry %v: state=%v members=%d", e.Type, e.State, e.Members)
		}
	}
}

// TestValues_Property checks that any set of distinct raw values resolves in
// declaration order, and that repeating one of them fails the enum.
func TestValues_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		raws := rapid.SliceOfNDistinct(rapid.Int64(), 0, 16, rapid.ID[int64]).Draw(rt, "raws")

		reg := registry.New(config.DefaultConfig())
		fs := make([]apis.Factory, 0, len(raws)+1)
		want := make([]apis.RawValue, 0, len(raws))
		for _, r := range raws {
			fs = append(fs, mint(r))
			want = append(want, apis.IntRaw(r))
		}
		require.NoError(rt, reg.Register(apis.Definition{Type: levelType, Factories: fs}))

		vals, err := reg.Values(levelType)
		require.NoError(rt, err)
		require.Equal(rt, want, vals.Keys())
		for i, r := range raws {
			m, err := reg.ValueOf(levelType, r)
			require.NoError(rt, err)
			_, at := vals.At(i)
			require.Same(rt, at, m)
		}

		if len(raws) == 0 {
			return
		}
		dup := rapid.SampledFrom(raws).Draw(rt, "dup")
		broken := registry.New(config.DefaultConfig())
		require.NoError(rt, broken.Register(apis.Definition{Type: levelType, Factories: append(fs, mint(dup))}))
		_, err = broken.Values(levelType)
		require.ErrorIs(rt, err, apis.ErrDuplicateRawValue)
		var ae *apis.Error
		require.ErrorAs(rt, err, &ae)
		require.Equal(rt, apis.IntRaw(dup), ae.Raw)
	})
}

// TestStringRaw_Property checks that string raw values round-trip through
// lookup and never collide with integers.
func TestStringRaw_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Draw(rt, "s")
		n := rapid.Int().Draw(rt, "n")

		reg := registry.New(config.DefaultConfig())
		require.NoError(rt, reg.Register(apis.Definition{Type: levelType, Factories: []apis.Factory{mint(s), mint(n)}}))

		byStr, err := reg.ValueOf(levelType, s)
		require.NoError(rt, err)
		byInt, err := reg.ValueOf(levelType, n)
		require.NoError(rt, err)
		require.NotSame(rt, byStr, byInt)
		require.Equal(rt, apis.StringRaw(s), byStr.RawValue())
	})
}
