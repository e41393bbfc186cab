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

import "go.uber.org/zap"

// Config carries the knobs of a Registry.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Logger receives registration and resolution events. Nil means no logging.
	Logger *zap.Logger

	// RejectSerializable makes resolution fail with SerializableMember when
	// the member type implements a restore hook (see SerializableMember).
	// Restoring a member from bytes would mint a second instance of a
	// singleton.
	RejectSerializable bool

	// Naming derives display names for definitions that do not set one.
	// Nil falls back to the reflect-derived "pkg.Type".
	Naming Resolver
}
