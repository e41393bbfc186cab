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

package config

import (
	"go.uber.org/zap"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/naming"
)

const (
	// DefaultRejectSerializable represents the default for RejectSerializable.
	// When true, member types with snapshot/restore hooks fail resolution.
	DefaultRejectSerializable = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Normalize(cfg)
}

// DefaultConfig is the default configuration used when none is provided:
// no logging, serializable members rejected, default naming chain.
func DefaultConfig() apis.Config {
	return apis.Config{
		Logger:             zap.NewNop(),
		RejectSerializable: DefaultRejectSerializable,
		Naming:             naming.Default(),
	}
}

// Normalize fills nil Logger and Naming with their defaults.
func Normalize(cfg apis.Config) apis.Config {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Naming == nil {
		cfg.Naming = naming.Default()
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithLogger sets the Logger option. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *apis.Config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.Logger = l
	}
}

// WithRejectSerializable sets the RejectSerializable option.
func WithRejectSerializable(reject bool) Option {
	return func(c *apis.Config) {
		c.RejectSerializable = reject
	}
}

// WithNaming sets the Naming option.
// A nil resolver resets to the default chain.
func WithNaming(r apis.Resolver) Option {
	return func(c *apis.Config) {
		if r == nil {
			c.Naming = naming.Default()
			return
		}
		c.Naming = r
	}
}
