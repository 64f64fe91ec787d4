// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import (
	"errors"
	"fmt"

	"github.com/sysarchio/sysarch/model"
)

// Errors returned by the abstraction layer. Failures of the underlying
// store (see the model package sentinels, e.g. [model.ErrRemoveRoot]) are
// wrapped with %w and pass through unchanged.
var (
	// ErrConversion is returned when an element's kind does not match the
	// requested abstraction type.
	ErrConversion = errors.New("element kind does not match the abstraction type")

	// ErrAlreadyExists is returned when another item already fulfills the
	// requested role, such as a second root composition for one system.
	ErrAlreadyExists = errors.New("the item already exists")

	// ErrNoRootComposition is returned by mapping operations that require
	// a designated root composition.
	ErrNoRootComposition = errors.New("no root composition has been configured for the system")

	// ErrNotBeneathRoot is returned when a component is not instantiated,
	// directly or transitively, beneath the root composition.
	ErrNotBeneathRoot = errors.New("the component is not instantiated beneath the root composition")

	// ErrMissingTypeRef is returned when a prototype lacks the reference
	// to its component type, leaving a containment chain incomplete.
	ErrMissingTypeRef = errors.New("the prototype has no type reference")

	// ErrInterfaceMismatch is returned when a signal mapping is attempted
	// on a port whose interface is not a sender/receiver interface.
	ErrInterfaceMismatch = errors.New("the port does not use a sender/receiver interface")

	// ErrMembership is returned when a mapped item does not belong where
	// the mapping claims, e.g. a data element from a different interface.
	ErrMembership = errors.New("the item is not a member of the referenced container")

	// ErrCompositionCycle is returned when an operation would create a
	// cycle in the composition hierarchy.
	ErrCompositionCycle = errors.New("operation would create a cycle in the composition hierarchy")
)

func conversionError(el *model.Element, dest string) error {
	return fmt.Errorf("cannot convert %v element to %s: %w", el.Kind(), dest, ErrConversion)
}
