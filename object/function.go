// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package object

import "github.com/AleutianAI/AleutianSeal/model"

// NativeImpl is the Go implementation behind a Func.
type NativeImpl func(receiver model.Value, args []model.Value) (model.Value, error)

// Func is a function-like composite: callable, with its own property table
// and an optional prototype link. Funcs are graph nodes like any other
// composite and are hardened the same way.
type Func struct {
	name  string
	impl  NativeImpl
	proto model.Composite
	properties
}

// NewFunc creates a function with the given diagnostic name. A nil impl is
// valid and calls return Null.
func NewFunc(name string, impl NativeImpl) *Func {
	return &Func{name: name, impl: impl}
}

// NewFuncWithPrototype creates a function with a prototype link.
func NewFuncWithPrototype(name string, impl NativeImpl, proto model.Composite) *Func {
	return &Func{name: name, impl: impl, proto: proto}
}

// Name returns the diagnostic name.
func (f *Func) Name() string {
	return f.name
}

// Kind implements model.Value.
func (f *Func) Kind() model.Kind {
	return model.KindFunction
}

// Prototype implements model.Composite.
func (f *Func) Prototype() model.Composite {
	return f.proto
}

// Call implements model.Callable.
func (f *Func) Call(receiver model.Value, args []model.Value) (model.Value, error) {
	if f.impl == nil {
		return Null{}, nil
	}
	return f.impl(receiver, args)
}

// Get reads a property through the function's prototype chain.
func (f *Func) Get(key model.Key) (model.Value, error) {
	return chainGet(f, f, key)
}

// Set writes a property with the same semantics as Object.Set.
func (f *Func) Set(key model.Key, value model.Value) error {
	return chainSet(f, f, key, value)
}
