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

package config_test

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/naming"
)

type fixedStrategy string

func (s fixedStrategy) TryResolveType(reflect.Type) (string, bool) { return string(s), true }

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	if got.RejectSerializable != config.DefaultRejectSerializable {
		t.Fatalf("RejectSerializable = %v, want %v", got.RejectSerializable, config.DefaultRejectSerializable)
	}
	if got.Logger == nil {
		t.Fatal("Logger = nil, want a no-op logger")
	}
	if got.Naming == nil {
		t.Fatal("Naming = nil, want the default chain")
	}
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	def := config.DefaultConfig()
	got := config.NewConfig()
	if got.RejectSerializable != def.RejectSerializable {
		t.Fatalf("NewConfig() = %+v, want default %+v", got, def)
	}
	if got.Logger == nil || got.Naming == nil {
		t.Fatalf("NewConfig() left nil fields: %+v", got)
	}
}

func TestWithRejectSerializable(t *testing.T) {
	c := config.NewConfig(config.WithRejectSerializable(false))
	if c.RejectSerializable {
		t.Fatalf("RejectSerializable = %v, want false", c.RejectSerializable)
	}

	c2 := config.NewConfig(config.WithRejectSerializable(true))
	if !c2.RejectSerializable {
		t.Fatalf("RejectSerializable = %v, want true", c2.RejectSerializable)
	}
}

func TestWithLogger(t *testing.T) {
	l := zap.NewExample()
	c := config.NewConfig(config.WithLogger(l))
	if c.Logger != l {
		t.Fatalf("Logger = %p, want %p", c.Logger, l)
	}

	c2 := config.NewConfig(config.WithLogger(nil))
	if c2.Logger == nil {
		t.Fatal("WithLogger(nil) must fall back to a no-op logger")
	}
}

func TestWithNaming(t *testing.T) {
	r := naming.New(fixedStrategy("fixed"))
	c := config.NewConfig(config.WithNaming(r))
	if got := c.Naming.ResolveType(reflect.TypeFor[int]()); got != "fixed" {
		t.Fatalf("Naming.ResolveType = %q, want %q", got, "fixed")
	}

	c2 := config.NewConfig(config.WithNaming(nil))
	if c2.Naming == nil {
		t.Fatal("WithNaming(nil) must reset to the default chain")
	}
}

func TestNormalize_FillsNilFields(t *testing.T) {
	c := config.Normalize(apis.Config{})
	if c.Logger == nil || c.Naming == nil {
		t.Fatalf("Normalize left nil fields: %+v", c)
	}
	if c.RejectSerializable {
		t.Fatal("Normalize must not touch RejectSerializable")
	}
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithRejectSerializable(true),
		config.WithRejectSerializable(false),
		config.WithNaming(naming.New(fixedStrategy("first"))),
		config.WithNaming(naming.New(fixedStrategy("last"))),
	)

	if c.RejectSerializable {
		t.Errorf("RejectSerializable = %v, want false (last option wins)", c.RejectSerializable)
	}
	if got := c.Naming.ResolveType(reflect.TypeFor[int]()); got != "last" {
		t.Errorf("Naming = %q, want last (last option wins)", got)
	}
}
