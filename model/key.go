// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package model

import "fmt"

// Symbol is an identity-keyed non-string property key. Two symbols are equal
// only when they are the same *Symbol; the description is diagnostic only.
type Symbol struct {
	// Description is a human-readable label for diagnostics.
	Description string
}

// NewSymbol creates a fresh symbol with the given description.
func NewSymbol(description string) *Symbol {
	return &Symbol{Description: description}
}

// Key is a property key: either a string name or a symbol. The zero value is
// the empty string key. Key is comparable and usable as a map key; symbol
// keys compare by symbol identity.
type Key struct {
	name string
	sym  *Symbol
}

// StringKey returns a string-named key.
func StringKey(name string) Key {
	return Key{name: name}
}

// SymbolKey returns a symbol-named key.
func SymbolKey(sym *Symbol) Key {
	return Key{sym: sym}
}

// IsSymbol reports whether the key is symbol-named.
func (k Key) IsSymbol() bool {
	return k.sym != nil
}

// Name returns the string name, or "" for symbol keys.
func (k Key) Name() string {
	return k.name
}

// Symbol returns the symbol, or nil for string keys.
func (k Key) Symbol() *Symbol {
	return k.sym
}

// String renders the key in diagnostic form. Symbol keys render as
// [Symbol(description)].
func (k Key) String() string {
	if k.sym != nil {
		return fmt.Sprintf("[Symbol(%s)]", k.sym.Description)
	}
	return k.name
}
