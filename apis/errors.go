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

import (
	"errors"
	"strconv"
	"strings"
)

// Class groups error kinds by who is at fault.
type Class uint8

const (
	// ClassDefinition marks a malformed enum definition. It is fatal for the
	// enum: resolution is aborted and every later access fails the same way.
	ClassDefinition Class = iota + 1
	// ClassLookup marks a raw value that names no member of a valid enum.
	ClassLookup
	// ClassUsage marks a caller defect such as comparing members of
	// different enums.
	ClassUsage
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassDefinition:
		return "definition"
	case ClassLookup:
		return "lookup"
	case ClassUsage:
		return "usage"
	default:
		return "Unknown(" + strconv.Itoa(int(c)) + ")"
	}
}

// Kind identifies a specific failure.
type Kind uint8

const (
	// WrongFactoryResult: a factory returned something other than a member
	// minted for the enum being resolved (nil, a scalar, a struct value, a
	// hand-built &T{}).
	WrongFactoryResult Kind = iota + 1
	// ForeignTypeResult: a factory returned a member of another enum type,
	// or of the same Go type owned by another registry.
	ForeignTypeResult
	// DuplicateRawValue: two members of one enum share a raw value.
	DuplicateRawValue
	// InvalidRawValueKind: a member was created with a raw value that is
	// neither an integer nor a string.
	InvalidRawValueKind
	// SerializableMember: the member type implements a restore hook
	// (encoding.BinaryUnmarshaler, encoding.TextUnmarshaler,
	// json.Unmarshaler or gob.GobDecoder). Marshal-only hooks are allowed:
	// writing a member out cannot mint a second instance.
	SerializableMember
	// FactoryPanic: a factory panicked while the enum was being resolved.
	FactoryPanic
	// ReentrantResolution: a factory asked for its own enum while that enum
	// was being resolved.
	ReentrantResolution
	// NoSuchRawValue: the enum has no member with the requested raw value.
	NoSuchRawValue
	// TypeMismatch: two members of different enums were compared.
	TypeMismatch
)

var kindText = map[Kind]string{
	WrongFactoryResult:  "wrong factory result",
	ForeignTypeResult:   "foreign type result",
	DuplicateRawValue:   "duplicate raw value",
	InvalidRawValueKind: "invalid raw value kind",
	SerializableMember:  "serializable member",
	FactoryPanic:        "factory panic",
	ReentrantResolution: "re-entrant resolution",
	NoSuchRawValue:      "no such raw value",
	TypeMismatch:        "type mismatch",
}

// String returns a short, stable description of k.
func (k Kind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return "Unknown(" + strconv.Itoa(int(k)) + ")"
}

// Class returns the class k belongs to.
func (k Kind) Class() Class {
	switch k {
	case NoSuchRawValue:
		return ClassLookup
	case TypeMismatch:
		return ClassUsage
	default:
		return ClassDefinition
	}
}

var (
	// ErrDefinition matches every definition-class *Error.
	ErrDefinition = errors.New("enumx: malformed enum definition")
	// ErrLookup matches every lookup-class *Error.
	ErrLookup = errors.New("enumx: lookup failed")
	// ErrUsage matches every usage-class *Error.
	ErrUsage = errors.New("enumx: invalid usage")

	// ErrWrongFactoryResult matches *Error values of kind WrongFactoryResult.
	ErrWrongFactoryResult = errors.New("enumx: " + WrongFactoryResult.String())
	// ErrForeignTypeResult matches *Error values of kind ForeignTypeResult.
	ErrForeignTypeResult = errors.New("enumx: " + ForeignTypeResult.String())
	// ErrDuplicateRawValue matches *Error values of kind DuplicateRawValue.
	ErrDuplicateRawValue = errors.New("enumx: " + DuplicateRawValue.String())
	// ErrInvalidRawValueKind matches *Error values of kind InvalidRawValueKind.
	ErrInvalidRawValueKind = errors.New("enumx: " + InvalidRawValueKind.String())
	// ErrSerializableMember matches *Error values of kind SerializableMember.
	ErrSerializableMember = errors.New("enumx: " + SerializableMember.String())
	// ErrFactoryPanic matches *Error values of kind FactoryPanic.
	ErrFactoryPanic = errors.New("enumx: " + FactoryPanic.String())
	// ErrReentrantResolution matches *Error values of kind ReentrantResolution.
	ErrReentrantResolution = errors.New("enumx: " + ReentrantResolution.String())
	// ErrNoSuchRawValue matches *Error values of kind NoSuchRawValue.
	ErrNoSuchRawValue = errors.New("enumx: " + NoSuchRawValue.String())
	// ErrTypeMismatch matches *Error values of kind TypeMismatch.
	ErrTypeMismatch = errors.New("enumx: " + TypeMismatch.String())
)

var kindSentinel = map[Kind]error{
	WrongFactoryResult:  ErrWrongFactoryResult,
	ForeignTypeResult:   ErrForeignTypeResult,
	DuplicateRawValue:   ErrDuplicateRawValue,
	InvalidRawValueKind: ErrInvalidRawValueKind,
	SerializableMember:  ErrSerializableMember,
	FactoryPanic:        ErrFactoryPanic,
	ReentrantResolution: ErrReentrantResolution,
	NoSuchRawValue:      ErrNoSuchRawValue,
	TypeMismatch:        ErrTypeMismatch,
}

// Error is the structured error returned by every enum operation.
//
// Use errors.Is with a kind sentinel (ErrDuplicateRawValue, ...) or a class
// sentinel (ErrDefinition, ErrLookup, ErrUsage), or errors.As to inspect the
// fields.
type Error struct {
	// Kind is the failure kind.
	Kind Kind
	// Enum is the display name of the enum involved.
	Enum string
	// Raw is the offending raw value; invalid when not applicable.
	Raw RawValue
	// Detail is free-form context (factory position, dynamic types, ...).
	Detail string
}

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("enumx: ")
	b.WriteString(e.Kind.String())
	if e.Enum != "" {
		b.WriteString(": enum ")
		b.WriteString(strconv.Quote(e.Enum))
	}
	if e.Raw.IsValid() {
		b.WriteString(", raw value ")
		b.WriteString(e.Raw.Quote())
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap exposes the kind and class sentinels to errors.Is.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if s, ok := kindSentinel[e.Kind]; ok {
		out = append(out, s)
	}
	switch e.Kind.Class() {
	case ClassDefinition:
		out = append(out, ErrDefinition)
	case ClassLookup:
		out = append(out, ErrLookup)
	case ClassUsage:
		out = append(out, ErrUsage)
	}
	return out
}
