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

// Primitive values. None of these implement model.Composite, so graph
// traversal ignores them.

// Null is the absent value. Reads of missing properties produce Null.
type Null struct{}

// Kind implements model.Value.
func (Null) Kind() model.Kind { return model.KindNull }

// Bool is a boolean primitive.
type Bool bool

// Kind implements model.Value.
func (Bool) Kind() model.Kind { return model.KindBool }

// Int is an integer primitive.
type Int int64

// Kind implements model.Value.
func (Int) Kind() model.Kind { return model.KindInt }

// Float is a floating-point primitive.
type Float float64

// Kind implements model.Value.
func (Float) Kind() model.Kind { return model.KindFloat }

// String is a string primitive.
type String string

// Kind implements model.Value.
func (String) Kind() model.Kind { return model.KindString }
