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

// properties is the ordered own-property table shared by Object and Func.
// Keys keep definition order; redefinition does not move a key.
type properties struct {
	keys   []model.Key
	slots  map[model.Key]model.Descriptor
	frozen bool
}

// OwnKeys returns the own property keys in definition order.
func (p *properties) OwnKeys() []model.Key {
	out := make([]model.Key, len(p.keys))
	copy(out, p.keys)
	return out
}

// OwnDescriptor returns the descriptor for an own property.
func (p *properties) OwnDescriptor(key model.Key) (model.Descriptor, bool) {
	desc, ok := p.slots[key]
	return desc, ok
}

// DefineOwn creates or replaces an own property.
//
// Frozen tables reject all definitions. Non-configurable properties reject
// redefinition, with one exception mirroring the host-runtime contract: a
// writable non-configurable data property may have its value replaced as
// long as every attribute is unchanged.
func (p *properties) DefineOwn(key model.Key, desc model.Descriptor) error {
	if p.frozen {
		return fmt.Errorf("define %s: %w", key, ErrFrozen)
	}
	existing, ok := p.slots[key]
	if !ok {
		if p.slots == nil {
			p.slots = make(map[model.Key]model.Descriptor)
		}
		p.keys = append(p.keys, key)
		p.slots[key] = desc
		return nil
	}
	if existing.IsConfigurable() {
		p.slots[key] = desc
		return nil
	}
	if allowsValueUpdate(existing, desc) {
		p.slots[key] = desc
		return nil
	}
	return fmt.Errorf("define %s: %w", key, ErrNonConfigurable)
}

// allowsValueUpdate reports whether replacing existing with next is a pure
// value update on a writable non-configurable data property.
func allowsValueUpdate(existing, next model.Descriptor) bool {
	ed, ok := existing.(model.DataDescriptor)
	if !ok || !ed.Writable {
		return false
	}
	nd, ok := next.(model.DataDescriptor)
	if !ok {
		return false
	}
	return nd.Writable == ed.Writable &&
		nd.Enumerable == ed.Enumerable &&
		nd.Configurable == ed.Configurable
}

// Freeze applies a structural freeze: marks every descriptor
// non-configurable, clamps data writability, and blocks all later
// definitions. Idempotent.
func (p *properties) Freeze() {
	if p.frozen {
		return
	}
	p.frozen = true
	for key, desc := range p.slots {
		switch d := desc.(type) {
		case model.DataDescriptor:
			d.Writable = false
			d.Configurable = false
			p.slots[key] = d
		case model.AccessorDescriptor:
			d.Configurable = false
			p.slots[key] = d
		}
	}
}

// Frozen reports whether Freeze has been applied.
func (p *properties) Frozen() bool {
	return p.frozen
}
