// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package object is the reference implementation of the model contract: a
// prototype-linked dynamic object runtime with inheritance-by-assignment
// semantics.
//
// Reads walk the prototype chain and call accessor getters with the original
// receiver. Writes that resolve to an inherited writable data property create
// a shadowing own property on the receiver; writes that resolve to an
// accessor call its setter with the original receiver. These are exactly the
// semantics the seal package's override-safe accessor rewrite depends on.
//
// # Thread Safety
//
// Objects are NOT safe for concurrent use. The seal package requires callers
// to serialize overlapping operations on shared graphs; the same rule applies
// here.
//
// # Lifecycle
//
// An object is mutable from creation until Freeze() is called, after which
// its property table is permanently structural-frozen: no additions,
// removals, or reconfigurations, and data properties become non-writable.
package object

import "errors"

// Sentinel errors for object operations.
var (
	// ErrFrozen is returned when defining a property on a frozen
	// composite.
	ErrFrozen = errors.New("composite is frozen")

	// ErrNonConfigurable is returned when redefining a non-configurable
	// property. Updating the value of a writable non-configurable data
	// property is permitted; everything else is rejected.
	ErrNonConfigurable = errors.New("property is non-configurable")

	// ErrReadOnlyProperty is returned when assigning to a non-writable
	// data property, own or inherited.
	ErrReadOnlyProperty = errors.New("property is read-only")

	// ErrNoSetter is returned when assigning to an accessor property that
	// has no setter.
	ErrNoSetter = errors.New("accessor property has no setter")

	// ErrPrimitiveReceiver is returned when a write must create an own
	// property but the receiver is not a composite.
	ErrPrimitiveReceiver = errors.New("receiver cannot hold own properties")
)
