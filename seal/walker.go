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

import "github.com/AleutianAI/AleutianSeal/model"

// ownProperty is a snapshot of one own property taken before the node is
// rewritten. Traversal reads values from the snapshot, never from the node
// after it has been locked down.
type ownProperty struct {
	key  model.Key
	desc model.Descriptor
}

// pass holds the per-invocation state of one harden call. A pass is created
// fresh at call start and discarded at call end regardless of outcome; only
// commit touches the hardener's long-lived fringe.
type pass struct {
	h *Hardener

	// workset is the identity set of nodes discovered this call and not
	// already in the fringe. A node is in at most one of {fringe, workset}.
	workset map[model.Composite]struct{}

	// order is the workset in discovery order. The fixpoint loop walks it
	// while hardening appends to it.
	order []model.Composite

	// paths records each node's first-discovered access path from the
	// root. Diagnostic only.
	paths map[model.Composite]string

	// protos records each distinct prototype encountered, keyed to the
	// path of the first node it was seen on. Prototypes are validated
	// after the fixpoint, not traversed.
	protos map[model.Composite]string
}

func newPass(h *Hardener) *pass {
	return &pass{
		h:       h,
		workset: make(map[model.Composite]struct{}),
		paths:   make(map[model.Composite]string),
		protos:  make(map[model.Composite]string),
	}
}

// run executes the whole pass: enqueue the root, drive the fixpoint,
// validate prototypes, commit.
func (p *pass) run(root model.Value) error {
	if err := p.enqueue(root, rootPath); err != nil {
		return err
	}
	if err := p.fixpoint(); err != nil {
		return err
	}
	if err := p.checkPrototypes(); err != nil {
		return err
	}
	p.commit()
	return nil
}

// enqueue adds a discovered value to the workset. Primitives and nil are
// ignored; so are nodes already in the fringe or the workset, which is what
// makes cycles safe. A composite of unrecognized kind fails the pass.
func (p *pass) enqueue(v model.Value, path string) error {
	if v == nil {
		return nil
	}
	node, ok := v.(model.Composite)
	if !ok {
		return nil
	}
	switch node.Kind() {
	case model.KindObject, model.KindFunction:
	default:
		return &TypeKindError{Kind: node.Kind(), Path: path}
	}
	if p.h.fringe.Has(node) {
		return nil
	}
	if _, seen := p.workset[node]; seen {
		return nil
	}
	p.workset[node] = struct{}{}
	p.order = append(p.order, node)
	if _, known := p.paths[node]; !known {
		p.paths[node] = path
	}
	return nil
}

// fixpoint visits every workset member exactly once, in discovery order.
// Hardening a node appends its outbound links to order, so the loop bound
// grows until no new nodes appear. Dedup in enqueue guarantees termination.
func (p *pass) fixpoint() error {
	for i := 0; i < len(p.order); i++ {
		if err := p.hardenNode(p.order[i]); err != nil {
			return err
		}
	}
	return nil
}

// hardenNode rewrites and freezes one node, then enqueues its outbound
// links.
//
// The ordering is load-bearing: the node is fully hardened before its
// prototype or any property value is read for traversal. Descriptor access
// on a virtualized node can run arbitrary observer code, and that code must
// find the node already locked down rather than inspectable-but-mutable.
func (p *pass) hardenNode(node model.Composite) error {
	path := p.paths[node]

	if p.h.prepare != nil {
		p.h.prepare(node)
	}

	// Snapshot the full own-descriptor set before any rewriting.
	keys := node.OwnKeys()
	snapshot := make([]ownProperty, 0, len(keys))
	for _, key := range keys {
		desc, ok := node.OwnDescriptor(key)
		if !ok {
			continue
		}
		snapshot = append(snapshot, ownProperty{key: key, desc: desc})
	}

	for _, prop := range snapshot {
		// Non-configurable properties are left untouched; the freeze
		// below clamps any remaining writability. This branch is
		// load-bearing for host-runtime compatibility; do not widen it.
		if !prop.desc.IsConfigurable() {
			continue
		}
		pathname := path + "." + prop.key.String()
		switch d := prop.desc.(type) {
		case model.DataDescriptor:
			get, set := p.h.makeGuards(node, prop.key, d.Value, path)
			err := node.DefineOwn(prop.key, model.AccessorDescriptor{
				Get:          get,
				Set:          set,
				Enumerable:   d.Enumerable,
				Configurable: false,
			})
			if err != nil {
				return err
			}
			if err := p.enqueue(get, pathname+"(get)"); err != nil {
				return err
			}
			if err := p.enqueue(set, pathname+"(set)"); err != nil {
				return err
			}
		case model.AccessorDescriptor:
			d.Configurable = false
			if err := node.DefineOwn(prop.key, d); err != nil {
				return err
			}
		}
	}

	node.Freeze()

	// The node is locked down; only now are its links read.
	if proto := node.Prototype(); proto != nil {
		if _, seen := p.protos[proto]; !seen {
			p.protos[proto] = path
		}
	}
	for _, prop := range snapshot {
		pathname := path + "." + prop.key.String()
		switch d := prop.desc.(type) {
		case model.DataDescriptor:
			if err := p.enqueue(d.Value, pathname); err != nil {
				return err
			}
		case model.AccessorDescriptor:
			if d.Get != nil {
				if err := p.enqueue(d.Get, pathname+"(get)"); err != nil {
					return err
				}
			}
			if d.Set != nil {
				if err := p.enqueue(d.Set, pathname+"(set)"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// commit merges the workset into the fringe. Called only after the whole
// pass has succeeded, so a failed call leaves the fringe exactly as it was.
func (p *pass) commit() {
	for _, node := range p.order {
		p.h.fringe.Add(node)
	}
}
