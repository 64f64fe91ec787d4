// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "errors"

// Sentinel errors returned by the element store. Higher layers wrap these
// with %w and match them with [errors.Is]; they are never replaced with
// layer-specific variants, so a store failure always surfaces unchanged.
var (
	// ErrRemoveRoot is returned when removal of the model root is attempted.
	ErrRemoveRoot = errors.New("the root element cannot be removed")

	// ErrDetached is returned when an operation requires an element that is
	// part of a model, but the element has been removed.
	ErrDetached = errors.New("element is detached from the model")

	// ErrAttached is returned when an operation requires a detached element,
	// such as adopting a cloned subtree.
	ErrAttached = errors.New("element is already part of a model")

	// ErrInvalidName is returned for empty names and names containing a
	// path separator.
	ErrInvalidName = errors.New("invalid element name")

	// ErrDuplicateName is returned when creating or adopting an element
	// whose path is already taken.
	ErrDuplicateName = errors.New("an element with this name already exists")

	// ErrNotIdentifiable is returned when a path or name is requested for
	// an element kind that has neither.
	ErrNotIdentifiable = errors.New("element kind is not identifiable")

	// ErrKindMismatch is returned when an element kind is not allowed in
	// the requested role, e.g. a named kind passed to [Element.CreateChild].
	ErrKindMismatch = errors.New("element kind is not allowed here")

	// ErrPathNotFound is returned when no element exists at a given path,
	// including resolution of dangling references.
	ErrPathNotFound = errors.New("no element exists at the given path")

	// ErrReferenceNotFound is returned when an element holds no reference
	// with the requested name.
	ErrReferenceNotFound = errors.New("reference not found")
)
