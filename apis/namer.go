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

// Namer lets a member type choose the display name of its enum when the
// definition leaves Name empty. Base implements EnumName by returning the
// owning enum's name, which is empty on a zero member; override it on the
// member type to return a constant:
//
//	type Color struct{ enumx.Base }
//
//	func (*Color) EnumName() string { return "palette.color" }
//
// The naming strategy calls EnumName on a freshly allocated zero member, so
// implementations must not depend on instance state.
type Namer interface {
	EnumName() string
}
