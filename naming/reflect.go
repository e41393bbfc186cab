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

package naming

import (
	"path"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/enumx/apis"
)

// NewReflectStrategy creates an apis.Strategy that names a member type
// "pkg.Type" from its reflect.Type, with memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. It dereferences one pointer
// level, strips generic instantiation parameters and prefixes the last
// element of the package path.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// typeNameCache caches resolved names by type.
var typeNameCache sync.Map // key: reflect.Type, val: string

// TryResolveType computes the name for t. Unnamed types are not handled.
func (reflectStrategy) TryResolveType(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	name := byType(t)
	return name, name != ""
}

// byType resolves the name for t with memoization.
func byType(t reflect.Type) string {
	if v, ok := typeNameCache.Load(t); ok {
		return v.(string)
	}

	base := t
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	name := stripTypeParams(base.Name())
	if name != "" {
		if p := base.PkgPath(); p != "" {
			name = path.Base(p) + "." + name
		}
	}

	typeNameCache.Store(t, name)
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
