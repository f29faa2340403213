// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package model

// Descriptor is the property-descriptor sum type: a property is either a
// stored value (DataDescriptor) or a getter/setter pair
// (AccessorDescriptor). The interface is sealed; no third variant exists.
type Descriptor interface {
	// IsEnumerable reports the enumerable attribute.
	IsEnumerable() bool

	// IsConfigurable reports the configurable attribute. Non-configurable
	// properties cannot be redefined or removed.
	IsConfigurable() bool

	isDescriptor()
}

// DataDescriptor describes a property holding a stored value.
type DataDescriptor struct {
	// Value is the stored value.
	Value Value

	// Writable permits value updates through ordinary assignment.
	Writable bool

	// Enumerable is the enumerable attribute.
	Enumerable bool

	// Configurable permits redefinition and removal.
	Configurable bool
}

// IsEnumerable implements Descriptor.
func (d DataDescriptor) IsEnumerable() bool { return d.Enumerable }

// IsConfigurable implements Descriptor.
func (d DataDescriptor) IsConfigurable() bool { return d.Configurable }

func (DataDescriptor) isDescriptor() {}

// AccessorDescriptor describes a property backed by a getter/setter pair.
// Either function may be nil (write-only or read-only accessors).
type AccessorDescriptor struct {
	// Get is called on property reads, with the original receiver.
	Get Callable

	// Set is called on property writes, with the original receiver.
	Set Callable

	// Enumerable is the enumerable attribute.
	Enumerable bool

	// Configurable permits redefinition and removal.
	Configurable bool
}

// IsEnumerable implements Descriptor.
func (d AccessorDescriptor) IsEnumerable() bool { return d.Enumerable }

// IsConfigurable implements Descriptor.
func (d AccessorDescriptor) IsConfigurable() bool { return d.Configurable }

func (AccessorDescriptor) isDescriptor() {}
