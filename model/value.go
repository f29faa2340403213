// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package model defines the value-model contract consumed by the seal package.
//
// The contract is deliberately small: a Value with an observable Kind, a
// Composite capability surface for descriptor introspection and definition,
// and a descriptor sum type (DataDescriptor / AccessorDescriptor). Any runtime
// that can satisfy these interfaces can have its object graphs hardened; the
// object package provides the reference implementation used by the tests.
//
// # Ownership Model
//
// The model package owns no values. Composites are identified by interface
// identity (pointer equality of the underlying implementation), which is what
// the seal package's membership sets rely on.
//
// # Thread Safety
//
// Interfaces in this package make no concurrency promises of their own.
// Implementations document their own guarantees; the reference object package
// is single-threaded.
package model

// Kind classifies a value by its observable category.
type Kind int

const (
	// KindNull is the absent/placeholder value.
	KindNull Kind = iota

	// KindBool is a boolean primitive.
	KindBool

	// KindInt is an integer primitive.
	KindInt

	// KindFloat is a floating-point primitive.
	KindFloat

	// KindString is a string primitive.
	KindString

	// KindObject is an object-like composite with a property table.
	KindObject

	// KindFunction is a function-like composite (callable, with its own
	// property table).
	KindFunction
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Value is any value in the host model, primitive or composite.
type Value interface {
	// Kind reports the value's observable category.
	Kind() Kind
}

// Composite is a value with its own property table. Primitives never
// implement Composite.
//
// The methods are exactly the collaborator capabilities the hardener
// consumes: ordered own-key enumeration (all key kinds), descriptor
// read/write, prototype-link read, and structural freeze.
type Composite interface {
	Value

	// OwnKeys returns the composite's own property keys in definition
	// order. The returned slice is owned by the caller.
	OwnKeys() []Key

	// OwnDescriptor returns the descriptor for an own property, or
	// ok=false when the key is not an own property.
	OwnDescriptor(key Key) (Descriptor, bool)

	// DefineOwn creates or replaces an own property. Implementations must
	// reject definitions on frozen composites and redefinitions of
	// non-configurable properties (a value update on a writable
	// non-configurable data property is the one permitted exception).
	DefineOwn(key Key, desc Descriptor) error

	// Prototype returns the prototype link, or nil when there is none.
	Prototype() Composite

	// Freeze applies a structural freeze: no property may be added,
	// removed, or reconfigured afterwards, and remaining writable data
	// properties are clamped to non-writable. Freeze is idempotent.
	Freeze()

	// Frozen reports whether Freeze has been applied.
	Frozen() bool
}

// Callable is a function-like composite.
type Callable interface {
	Composite

	// Call invokes the function. The receiver is the value the call was
	// dispatched through; setters rely on it to distinguish direct writes
	// from writes that arrived through a prototype-chain lookup.
	Call(receiver Value, args []Value) (Value, error)
}
