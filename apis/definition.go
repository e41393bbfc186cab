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

import "reflect"

// Minter is handed to factories while their enum is being resolved.
//
// During the resolution pass Create constructs a brand-new member carrying
// raw and returns it uncached; the registry caches it once the factory
// returns. Once the pass is over the minter no longer constructs anything:
// Create then behaves exactly like Registry.ValueOf and returns the cached
// singleton (or the lookup error).
type Minter interface {
	Create(raw any) (Member, error)
}

// Factory produces one member of an enum. It is called exactly once, during
// resolution, and must return the member created through m.
type Factory func(m Minter) any

// Definition declares an enum: its member type and the ordered list of
// member factories.
type Definition struct {
	// Type is the member type. Either T or *T may be given; the registry
	// always keys by *T. T must be a named struct that embeds enumx.Base
	// by value.
	Type reflect.Type
	// Name is the display name used in errors and logs. When empty it is
	// derived by Config.Naming.
	Name string
	// Factories are invoked in order during resolution.
	Factories []Factory
}
