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

import (
	"fmt"

	"github.com/AleutianAI/AleutianSeal/model"
)

// Object is a prototype-linked dynamic object.
type Object struct {
	proto model.Composite
	properties
}

// New creates an object with the given prototype. A nil prototype is valid
// and terminates prototype-chain walks.
func New(proto model.Composite) *Object {
	return &Object{proto: proto}
}

// Kind implements model.Value.
func (o *Object) Kind() model.Kind {
	return model.KindObject
}

// Prototype implements model.Composite.
func (o *Object) Prototype() model.Composite {
	return o.proto
}

// Get reads a property through the prototype chain. Accessor getters are
// called with o as the receiver. A key absent from the whole chain reads as
// Null.
func (o *Object) Get(key model.Key) (model.Value, error) {
	return chainGet(o, o, key)
}

// Set writes a property with inheritance-by-assignment semantics:
//
//   - own writable data property: value is updated in place
//   - accessor anywhere on the chain: its setter is called with o as the
//     receiver (no setter fails with ErrNoSetter)
//   - inherited writable data property: a shadowing own property is created
//     on o
//   - non-writable data property anywhere on the chain: fails with
//     ErrReadOnlyProperty
//   - key absent from the whole chain: a fresh own property is created on o
func (o *Object) Set(key model.Key, value model.Value) error {
	return chainSet(o, o, key, value)
}

// chainGet resolves a read of key starting at target on behalf of receiver.
func chainGet(target model.Composite, receiver model.Value, key model.Key) (model.Value, error) {
	desc, ok := target.OwnDescriptor(key)
	if !ok {
		if proto := target.Prototype(); proto != nil {
			return chainGet(proto, receiver, key)
		}
		return Null{}, nil
	}
	switch d := desc.(type) {
	case model.DataDescriptor:
		return d.Value, nil
	case model.AccessorDescriptor:
		if d.Get == nil {
			return Null{}, nil
		}
		return d.Get.Call(receiver, nil)
	}
	return Null{}, nil
}

// chainSet resolves a write of key starting at target on behalf of receiver.
func chainSet(target model.Composite, receiver model.Value, key model.Key, value model.Value) error {
	desc, ok := target.OwnDescriptor(key)
	if !ok {
		if proto := target.Prototype(); proto != nil {
			return chainSet(proto, receiver, key, value)
		}
		return defineOnReceiver(receiver, key, value)
	}
	switch d := desc.(type) {
	case model.AccessorDescriptor:
		if d.Set == nil {
			return fmt.Errorf("set %s: %w", key, ErrNoSetter)
		}
		_, err := d.Set.Call(receiver, []model.Value{value})
		return err
	case model.DataDescriptor:
		if !d.Writable {
			return fmt.Errorf("set %s: %w", key, ErrReadOnlyProperty)
		}
		if model.Value(target) == receiver {
			d.Value = value
			return target.DefineOwn(key, d)
		}
		return defineOnReceiver(receiver, key, value)
	}
	return defineOnReceiver(receiver, key, value)
}

// defineOnReceiver creates a fresh writable/enumerable/configurable own data
// property on the receiver, shadowing anything inherited.
func defineOnReceiver(receiver model.Value, key model.Key, value model.Value) error {
	rc, ok := receiver.(model.Composite)
	if !ok {
		return fmt.Errorf("set %s: %w", key, ErrPrimitiveReceiver)
	}
	return rc.DefineOwn(key, model.DataDescriptor{
		Value:        value,
		Writable:     true,
		Enumerable:   true,
		Configurable: true,
	})
}
