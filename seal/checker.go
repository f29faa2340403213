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

// checkPrototypes validates the pass post-condition: every prototype
// encountered during the fixpoint must be in the fringe or in this pass's
// workset. A prototype satisfying neither is still mutable, which would
// corrupt every instance inheriting through it, so the whole call fails
// before anything is committed.
func (p *pass) checkPrototypes() error {
	for proto, path := range p.protos {
		if p.h.fringe.Has(proto) {
			continue
		}
		if _, ok := p.workset[proto]; ok {
			continue
		}
		return &UnreachablePrototypeError{
			Prototype: describeValue(proto),
			Path:      path,
		}
	}
	return nil
}

// describeValue renders a best-effort diagnostic name for a value. The
// value may be arbitrarily hostile (a virtualized composite whose methods
// panic), so formatting failures degrade to a generic label rather than
// masking the underlying violation.
func describeValue(v model.Value) (desc string) {
	defer func() {
		if recover() != nil {
			desc = "unprintable value"
		}
	}()
	return fmt.Sprintf("%s node (%T)", v.Kind(), v)
}
