// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package seal

import (
	"fmt"

	"github.com/AleutianAI/AleutianSeal/model"
)

// guardFunc is the function composite backing generated getter/setter
// pairs. Guards carry no property table and no prototype, so hardening one
// is trivially a freeze. Defined here rather than borrowed from a value
// model so the hardener works against any model implementation.
type guardFunc struct {
	name   string
	impl   func(receiver model.Value, args []model.Value) (model.Value, error)
	frozen bool
}

// Kind implements model.Value.
func (g *guardFunc) Kind() model.Kind {
	return model.KindFunction
}

// OwnKeys implements model.Composite. Guards hold no own properties.
func (g *guardFunc) OwnKeys() []model.Key {
	return nil
}

// OwnDescriptor implements model.Composite.
func (g *guardFunc) OwnDescriptor(model.Key) (model.Descriptor, bool) {
	return nil, false
}

// DefineOwn implements model.Composite. Guards are frozen at creation and
// never accept properties.
func (g *guardFunc) DefineOwn(key model.Key, _ model.Descriptor) error {
	return fmt.Errorf("define %s on %s: guard functions hold no properties", key, g.name)
}

// Prototype implements model.Composite.
func (g *guardFunc) Prototype() model.Composite {
	return nil
}

// Freeze implements model.Composite.
func (g *guardFunc) Freeze() {
	g.frozen = true
}

// Frozen implements model.Composite.
func (g *guardFunc) Frozen() bool {
	return g.frozen
}

// Call implements model.Callable.
func (g *guardFunc) Call(receiver model.Value, args []model.Value) (model.Value, error) {
	return g.impl(receiver, args)
}

// makeGuards builds the override-safe accessor pair replacing a configurable
// data property.
//
// The getter always returns the captured value. The setter distinguishes by
// receiver identity: a write whose receiver is the hardened node itself is a
// tamper attempt and fails with a ReadOnlyViolationError; a write that
// reached the property through a prototype-chain lookup on a descendant
// instead installs a fresh writable own property on that descendant,
// preserving inheritance-by-assignment shadowing. Both guards are frozen
// before they are returned.
func (h *Hardener) makeGuards(node model.Composite, key model.Key, captured model.Value, path string) (model.Callable, model.Callable) {
	name := key.String()

	get := &guardFunc{
		name: "get " + name,
		impl: func(model.Value, []model.Value) (model.Value, error) {
			return captured, nil
		},
	}
	set := &guardFunc{
		name: "set " + name,
		impl: func(receiver model.Value, args []model.Value) (model.Value, error) {
			if receiver == model.Value(node) {
				return nil, &ReadOnlyViolationError{Key: key, Path: path}
			}
			rc, ok := receiver.(model.Composite)
			if !ok {
				return nil, &ReadOnlyViolationError{Key: key, Path: path}
			}
			var next model.Value
			if len(args) > 0 {
				next = args[0]
			}
			return nil, rc.DefineOwn(key, model.DataDescriptor{
				Value:        next,
				Writable:     true,
				Enumerable:   true,
				Configurable: true,
			})
		},
	}

	get.Freeze()
	set.Freeze()
	return get, set
}
