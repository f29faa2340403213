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

// MembershipSet is the minimum capability an externally supplied fringe set
// must expose. Construction additionally requires the add capability of
// FringeSet; a set with membership-only capability is rejected with a
// ConfigError.
type MembershipSet interface {
	// Has reports whether the node is a member.
	Has(node model.Composite) bool
}

// FringeSet is the full capability surface the hardener needs from a fringe
// set: membership plus monotone insertion.
type FringeSet interface {
	MembershipSet

	// Add inserts the node. Adding an existing member is a no-op.
	Add(node model.Composite)
}

// Fringe is the default fringe set: an identity-keyed table of composites
// treated as already immutable. Traversal and prototype validation stop at
// its members.
//
// The table holds strong references. The original design calls for weak
// membership, but Go offers no weak identity set; the retention-behavior
// change is an accepted simplification — a fringe member is immutable and
// shared, and keeping it alive is harmless in practice.
//
// Fringe is NOT safe for concurrent use, matching the hardener's
// external-synchronization requirement.
type Fringe struct {
	members map[model.Composite]struct{}
}

// NewFringe creates a fringe seeded with the given members. Nil entries are
// ignored.
func NewFringe(initial ...model.Composite) *Fringe {
	f := &Fringe{members: make(map[model.Composite]struct{}, len(initial))}
	for _, node := range initial {
		f.Add(node)
	}
	return f
}

// Has implements MembershipSet.
func (f *Fringe) Has(node model.Composite) bool {
	_, ok := f.members[node]
	return ok
}

// Add implements FringeSet. Nil nodes are ignored.
func (f *Fringe) Add(node model.Composite) {
	if node == nil {
		return
	}
	f.members[node] = struct{}{}
}

// Len returns the number of members.
func (f *Fringe) Len() int {
	return len(f.members)
}
