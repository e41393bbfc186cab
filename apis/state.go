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

import "fmt"

// State is the resolution state of one enum in a registry.
//
//	Unresolved -> Resolving -> Resolved
//	                        -> Failed
//
// Resolved and Failed are terminal. A Failed enum is never retried: its
// definition is immutable, so every access reports the same error.
type State uint32

const (
	// Unresolved: registered, never accessed.
	Unresolved State = iota
	// Resolving: factories are running.
	Resolving
	// Resolved: the member mapping is frozen and cached.
	Resolved
	// Failed: the definition is malformed; the error is cached.
	Failed
)

// String returns a stable identifier suitable for logs and diagnostics.
// Unknown values render as "Unknown(<n>)" and never panic.
func (s State) String() string {
	switch s {
	case Unresolved:
		return "Unresolved"
	case Resolving:
		return "Resolving"
	case Resolved:
		return "Resolved"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(s))
	}
}

// Terminal reports whether s can no longer change.
func (s State) Terminal() bool {
	return s == Resolved || s == Failed
}
