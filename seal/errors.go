// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package seal makes object graphs transitively immutable.
//
// Harden takes a root value and walks everything reachable from it through
// own-property values, accessor functions, and prototype links, rewriting
// each node into an override-safe, structurally frozen form. Once a call
// succeeds, no later code can mutate shared state or monkey-patch shared
// behavior reachable through the root. The package is the trust primitive
// object-capability layers build on; it implements no attenuation or
// sandboxing policy of its own.
//
// # Design
//
// Traversal is an explicit work queue with identity-based deduplication, so
// cyclic and self-referential graphs terminate without recursion hazards.
// Each node is fully hardened (rewritten and frozen) before its prototype or
// property values are read for traversal: property access may run arbitrary
// observer code on virtualized values, and that code must find the node
// already locked down.
//
// Data properties are rewritten into accessor pairs rather than simply made
// non-writable. The generated setter rejects direct writes to the hardened
// node but still creates a shadowing own property when the write arrives
// through a prototype-chain lookup on a descendant, preserving
// inheritance-by-assignment semantics for unhardened descendants.
//
// # Thread Safety
//
// A Hardener is NOT safe for concurrent use. Overlapping calls sharing a
// fringe or overlapping reachable graphs must be serialized by the caller;
// the package takes no locks.
//
// # Lifecycle
//
// The fringe — the set of nodes treated as already immutable — is created at
// construction and only grows, for the hardener's whole lifetime. All other
// state is per-invocation and discarded when the call returns, whatever the
// outcome. Failed calls commit nothing to the fringe; hardening already
// applied to individual nodes before the failure is not rolled back, since an
// override-safe frozen node is a valid terminal state on its own.
package seal

import (
	"errors"
	"fmt"

	"github.com/AleutianAI/AleutianSeal/model"
)

// Sentinel errors for harden operations. The structured error types below
// wrap these, so errors.Is works against the sentinel and errors.As against
// the type.
var (
	// ErrConfig indicates an invalid hardener configuration, raised at
	// construction.
	ErrConfig = errors.New("invalid hardener configuration")

	// ErrTypeKind indicates a composite whose observable category is
	// neither object-like nor function-like. Defensive; unreachable under
	// well-behaved value models.
	ErrTypeKind = errors.New("unrecognized composite kind")

	// ErrReadOnly indicates a direct assignment to a hardened property on
	// its own node.
	ErrReadOnly = errors.New("write to hardened property")

	// ErrUnreachablePrototype indicates a prototype that is neither in
	// the fringe nor part of the hardened set. A single mutable prototype
	// voids the immutability guarantee of everything inheriting from it.
	ErrUnreachablePrototype = errors.New("prototype not hardened")
)

// ConfigError reports an invalid Options value at construction.
type ConfigError struct {
	// Reason describes the rejected configuration.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s", ErrConfig, e.Reason)
}

// Unwrap returns ErrConfig for errors.Is support.
func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

// TypeKindError reports a composite with an unrecognized kind, discovered
// during traversal.
type TypeKindError struct {
	// Kind is the offending category.
	Kind model.Kind

	// Path is the access path at which the value was discovered.
	Path string
}

// Error implements the error interface.
func (e *TypeKindError) Error() string {
	return fmt.Sprintf("%v: kind %s at %s", ErrTypeKind, e.Kind, e.Path)
}

// Unwrap returns ErrTypeKind for errors.Is support.
func (e *TypeKindError) Unwrap() error {
	return ErrTypeKind
}

// ReadOnlyViolationError reports a direct assignment to a hardened property.
// It is raised by the generated setter at the assignment site, not during
// the harden call itself.
type ReadOnlyViolationError struct {
	// Key is the property that was assigned.
	Key model.Key

	// Path is the access path the property was hardened under.
	Path string
}

// Error implements the error interface.
func (e *ReadOnlyViolationError) Error() string {
	return fmt.Sprintf("%v: %s at %s", ErrReadOnly, e.Key, e.Path)
}

// Unwrap returns ErrReadOnly for errors.Is support.
func (e *ReadOnlyViolationError) Unwrap() error {
	return ErrReadOnly
}

// UnreachablePrototypeError reports the post-condition failure of a harden
// call: a prototype encountered during the pass is neither in the fringe nor
// in the hardened set. The call commits nothing.
type UnreachablePrototypeError struct {
	// Prototype is a best-effort description of the offending prototype.
	Prototype string

	// Path is the access path of the node whose prototype is unreachable.
	Path string
}

// Error implements the error interface.
func (e *UnreachablePrototypeError) Error() string {
	return fmt.Sprintf("%v: %s (prototype of %s)", ErrUnreachablePrototype, e.Prototype, e.Path)
}

// Unwrap returns ErrUnreachablePrototype for errors.Is support.
func (e *UnreachablePrototypeError) Unwrap() error {
	return ErrUnreachablePrototype
}
