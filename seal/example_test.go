// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package seal_test

import (
	"errors"
	"fmt"

	"github.com/AleutianAI/AleutianSeal/model"
	"github.com/AleutianAI/AleutianSeal/object"
	"github.com/AleutianAI/AleutianSeal/seal"
)

// ExampleHardener hardens a shared object and shows that direct writes fail
// while prototype-based shadowing on descendants keeps working.
func ExampleHardener() {
	version := model.StringKey("version")

	shared := object.New(nil)
	_ = shared.DefineOwn(version, model.DataDescriptor{
		Value:        object.Int(1),
		Writable:     true,
		Enumerable:   true,
		Configurable: true,
	})

	hardener, _ := seal.New(nil, seal.Options{})
	if _, err := hardener.Harden(shared); err != nil {
		fmt.Println("harden failed:", err)
		return
	}

	// Direct mutation of the hardened object is rejected.
	err := shared.Set(version, object.Int(2))
	fmt.Println("direct write rejected:", errors.Is(err, seal.ErrReadOnly))

	// A descendant can still shadow the inherited property.
	local := object.New(shared)
	_ = local.Set(version, object.Int(2))
	v, _ := local.Get(version)
	fmt.Println("descendant shadow:", v)

	inherited, _ := shared.Get(version)
	fmt.Println("shared unchanged:", inherited)

	// Output:
	// direct write rejected: true
	// descendant shadow: 2
	// shared unchanged: 1
}
