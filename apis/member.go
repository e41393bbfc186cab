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

// Member is implemented by every enum member. Member types get it by
// embedding enumx.Base by value in a named struct; members are always used
// through pointers so that pointer equality is identity.
type Member interface {
	// RawValue returns the discriminator that identifies the member within
	// its enum.
	RawValue() RawValue
	// EnumName returns the display name of the owning enum.
	EnumName() string
	// EnumType returns the member type (*T) of the owning enum.
	EnumType() reflect.Type
	// Equals reports whether other is the same member. Comparing members of
	// different enums is a usage error (TypeMismatch), not false.
	Equals(other Member) (bool, error)
}
