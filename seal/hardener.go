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
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AleutianAI/AleutianSeal/model"
)

// rootPath is the diagnostic access path assigned to the root value.
const rootPath = "<root>"

// Options configures a Hardener.
type Options struct {
	// Fringe, when non-nil, is an externally supplied fringe set shared
	// with other hardeners. It must also implement FringeSet (the add
	// capability); construction fails with a ConfigError otherwise. The
	// initial members passed to New are merged into it. When nil, a
	// private Fringe is created.
	Fringe MembershipSet

	// Prepare, when non-nil, is invoked on each node immediately before
	// it is hardened. It lets a collaborator normalize exotic objects
	// while they are still mutable.
	Prepare func(node model.Composite)
}

// Hardener makes object graphs transitively immutable. Create one with New;
// the only operation is Harden (or HardenContext). See the package
// documentation for the design and the concurrency contract.
type Hardener struct {
	fringe  FringeSet
	prepare func(node model.Composite)

	// Counters for Stats. Plain ints: the hardener is single-threaded by
	// contract.
	invocations   int64
	nodesHardened int64
}

// New creates a Hardener.
//
// Inputs:
//
//   - initial: nodes seeded into the fringe as already immutable or
//     externally trusted. Traversal and prototype validation stop at them.
//     Nil entries are ignored.
//   - opts: see Options.
//
// Outputs:
//
//   - *Hardener: the hardener. Nil on error.
//   - error: a *ConfigError when opts.Fringe lacks the add capability.
func New(initial []model.Composite, opts Options) (*Hardener, error) {
	var fringe FringeSet
	if opts.Fringe != nil {
		fs, ok := opts.Fringe.(FringeSet)
		if !ok {
			return nil, &ConfigError{Reason: "fringe set has membership capability but no add capability"}
		}
		fringe = fs
		for _, node := range initial {
			if node != nil {
				fringe.Add(node)
			}
		}
	} else {
		fringe = NewFringe(initial...)
	}
	return &Hardener{fringe: fringe, prepare: opts.Prepare}, nil
}

// Harden makes root and everything transitively reachable from it
// permanently tamper-proof, and returns root itself. Equivalent to
// HardenContext with a background context.
func (h *Hardener) Harden(root model.Value) (model.Value, error) {
	return h.HardenContext(context.Background(), root)
}

// HardenContext hardens the graph reachable from root.
//
// Description:
//
//	Runs one bounded pass: the root is enqueued, every discovered node is
//	rewritten into override-safe form and structurally frozen (discovering
//	further nodes into the same pass), every encountered prototype is
//	validated as processed, and on success the whole processed set is
//	merged into the fringe. Primitive roots pass through untouched.
//
// Inputs:
//
//   - ctx: carries the trace span only. The pass is synchronous and has no
//     suspension points; it is never cancelled mid-flight.
//   - root: the value to harden. May be primitive or nil.
//
// Outputs:
//
//   - model.Value: root, same identity, on success.
//   - error: a *TypeKindError from traversal or a *UnreachablePrototypeError
//     from post-validation. On error nothing is committed to the fringe; a
//     retry starts from the same pre-call fringe state.
//
// Limitations:
//
//   - Not safe for concurrent use; callers serialize overlapping calls.
//   - Hardening already applied to individual nodes before a failure is not
//     rolled back.
func (h *Hardener) HardenContext(ctx context.Context, root model.Value) (model.Value, error) {
	start := time.Now()
	invocationID := uuid.NewString()[:12]

	ctx, span := startHardenSpan(ctx, invocationID, root)
	defer span.End()

	p := newPass(h)
	err := p.run(root)

	h.invocations++
	recordHardenMetrics(ctx, time.Since(start), len(p.order), err == nil)

	if err != nil {
		slog.Debug("harden pass failed",
			slog.String("invocation_id", invocationID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	h.nodesHardened += int64(len(p.order))
	setHardenSpanResult(span, len(p.order))
	slog.Debug("harden pass complete",
		slog.String("invocation_id", invocationID),
		slog.Int("nodes_hardened", len(p.order)),
	)
	return root, nil
}

// HardenerStats is a point-in-time snapshot of a hardener's counters.
type HardenerStats struct {
	// Invocations is the number of harden calls, successful or not.
	Invocations int64

	// NodesHardened is the total number of nodes committed to the fringe
	// by successful calls.
	NodesHardened int64

	// FringeLen is the fringe size, or -1 when the fringe set does not
	// expose a length.
	FringeLen int
}

// Stats returns a snapshot of the hardener's counters.
func (h *Hardener) Stats() HardenerStats {
	stats := HardenerStats{
		Invocations:   h.invocations,
		NodesHardened: h.nodesHardened,
		FringeLen:     -1,
	}
	if sized, ok := h.fringe.(interface{ Len() int }); ok {
		stats.FringeLen = sized.Len()
	}
	return stats
}
