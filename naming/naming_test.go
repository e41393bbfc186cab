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

package naming_test

import (
	"path"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/internal/core"
	"dirpx.dev/enumx/naming"
)

// Local test types.
type plainEnum struct{ core.Base }

type namedEnum struct{ core.Base }

func (*namedEnum) EnumName() string { return "custom.Name" } // overrides Base

type genericEnum[T any] struct{ core.Base }

type fixedStrategy string

func (s fixedStrategy) TryResolveType(reflect.Type) (string, bool) { return string(s), s != "" }

func TestNamerStrategy_TryResolveType(t *testing.T) {
	s := naming.NewNamerStrategy()

	// Overridden EnumName -> handled = true, for both T and *T.
	for _, typ := range []reflect.Type{reflect.TypeFor[*namedEnum](), reflect.TypeFor[namedEnum]()} {
		got, ok := s.TryResolveType(typ)
		if !ok || got != "custom.Name" {
			t.Fatalf("TryResolveType(%v): got (%q,%v), want (custom.Name,true)", typ, got, ok)
		}
	}

	// Base alone answers "" on a zero member -> falls through.
	got, ok := s.TryResolveType(reflect.TypeFor[*plainEnum]())
	if ok || got != "" {
		t.Fatalf("TryResolveType(plain): got (%q,%v), want ('',false)", got, ok)
	}

	// Non-struct and nil types are never handled.
	for _, typ := range []reflect.Type{nil, reflect.TypeFor[int](), reflect.TypeFor[*int]()} {
		if got, ok := s.TryResolveType(typ); ok || got != "" {
			t.Fatalf("TryResolveType(%v): got (%q,%v), want ('',false)", typ, got, ok)
		}
	}
}

func TestReflectStrategy_TryResolveType(t *testing.T) {
	s := naming.NewReflectStrategy()

	cases := []struct {
		name     string
		typ      reflect.Type
		expected string
		handled  bool
	}{
		{"struct", reflect.TypeFor[plainEnum](), "naming_test.plainEnum", true},
		{"ptr", reflect.TypeFor[*plainEnum](), "naming_test.plainEnum", true},
		{"generic strips params", reflect.TypeFor[*genericEnum[int]](), "naming_test.genericEnum", true},
		{"builtin has no package", reflect.TypeFor[string](), "string", true},
		{"anonymous", reflect.TypeFor[struct{ X int }](), "", false},
		{"nil", nil, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.TryResolveType(tc.typ)
			if ok != tc.handled || got != tc.expected {
				t.Fatalf("got (%q,%v), want (%q,%v)", got, ok, tc.expected, tc.handled)
			}
		})
	}
}

// TestDefault_Order verifies resolution priority:
// 1. An overridden EnumName wins.
// 2. Otherwise the reflect-derived "pkg.Type" is used.
func TestDefault_Order(t *testing.T) {
	res := naming.Default()

	if got := res.ResolveType(reflect.TypeFor[*namedEnum]()); got != "custom.Name" {
		t.Fatalf("Namer priority broken: got %q want %q", got, "custom.Name")
	}

	got := res.ResolveType(reflect.TypeFor[*plainEnum]())
	wantPkg := path.Base(reflect.TypeFor[plainEnum]().PkgPath())
	if !strings.HasPrefix(got, wantPkg+".") {
		t.Fatalf("unexpected name: %q (want prefix %q.)", got, wantPkg)
	}
}

func TestNew_SkipsNilAndFallsThrough(t *testing.T) {
	res := naming.New(nil, fixedStrategy(""), fixedStrategy("second"))
	if got := res.ResolveType(reflect.TypeFor[*plainEnum]()); got != "second" {
		t.Fatalf("got %q, want %q", got, "second")
	}

	empty := naming.New()
	if got := empty.ResolveType(reflect.TypeFor[*plainEnum]()); got != "" {
		t.Fatalf("empty chain: got %q, want empty", got)
	}
}

// TestDefault_Concurrent stresses the memoization path under concurrency.
func TestDefault_Concurrent(t *testing.T) {
	res := naming.Default()

	types := []reflect.Type{
		reflect.TypeFor[*plainEnum](),
		reflect.TypeFor[*namedEnum](),
		reflect.TypeFor[*genericEnum[string]](),
	}
	expect := []string{"naming_test.plainEnum", "custom.Name", "naming_test.genericEnum"}

	workers := runtime.GOMAXPROCS(0) * 4
	iters := 2000

	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan string, workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				idx := i % len(types)
				if got := res.ResolveType(types[idx]); got != expect[idx] {
					errCh <- got
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errCh)
	for e := range errCh {
		t.Fatalf("concurrent resolve mismatch: got=%q", e)
	}
}

// Compile-time checks.
var (
	_ apis.Resolver = naming.Default()
	_ apis.Namer    = (*namedEnum)(nil)
)
