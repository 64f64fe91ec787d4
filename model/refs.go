// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"slices"
)

// Reference fields. A reference stores the target's path, validated and
// resolved at assignment time, and is re-resolved against the path index on
// every read. Every write also updates the model's reverse-reference index,
// so "who points at this path" is always answerable without a tree scan.

// SetReference sets the reference field with the given name to the given
// target, replacing an existing field of the same name. The target must be
// identifiable and attached to the same model.
func (e *Element) SetReference(name string, target *Element) error {
	path, err := e.checkRefTarget(target)
	if err != nil {
		return err
	}
	for i, r := range e.refs {
		if r.Name == name {
			e.model.removeRefSource(r.Path, e, name)
			e.refs[i].Path = path
			e.model.addRefSource(path, e, name)
			return nil
		}
	}
	e.refs = append(e.refs, Ref{Name: name, Path: path})
	e.model.addRefSource(path, e, name)
	return nil
}

// AddReference appends a reference field with the given name and target,
// regardless of whether the name is already present. It is used for ordered
// reference lists such as the context chain of a mapping record.
func (e *Element) AddReference(name string, target *Element) error {
	path, err := e.checkRefTarget(target)
	if err != nil {
		return err
	}
	e.refs = append(e.refs, Ref{Name: name, Path: path})
	e.model.addRefSource(path, e, name)
	return nil
}

func (e *Element) checkRefTarget(target *Element) (string, error) {
	if e.model == nil {
		return "", ErrDetached
	}
	if target == nil {
		return "", fmt.Errorf("nil reference target: %w", ErrPathNotFound)
	}
	path, err := target.Path()
	if err != nil {
		return "", fmt.Errorf("reference target %v: %w", target.kind, err)
	}
	if target.model != e.model {
		return "", fmt.Errorf("reference target %q belongs to a different model: %w", path, ErrDetached)
	}
	return path, nil
}

// Reference resolves the first reference field with the given name. It
// returns [ErrReferenceNotFound] if the element holds no such field, and
// [ErrPathNotFound] if the field dangles because its target was removed.
func (e *Element) Reference(name string) (*Element, error) {
	if e.model == nil {
		return nil, ErrDetached
	}
	for _, r := range e.refs {
		if r.Name == name {
			target, ok := e.model.ElementAt(r.Path)
			if !ok {
				return nil, fmt.Errorf("reference %q to %q: %w", name, r.Path, ErrPathNotFound)
			}
			return target, nil
		}
	}
	return nil, fmt.Errorf("reference %q: %w", name, ErrReferenceNotFound)
}

// ReferencePath returns the stored target path of the first reference field
// with the given name, without resolving it.
func (e *Element) ReferencePath(name string) (string, bool) {
	for _, r := range e.refs {
		if r.Name == name {
			return r.Path, true
		}
	}
	return "", false
}

// References returns a copy of the element's reference fields in order.
func (e *Element) References() []Ref {
	return slices.Clone(e.refs)
}

// ClearReference removes the first reference field with the given name.
// It reports whether a field was removed; clearing an absent reference is
// not an error.
func (e *Element) ClearReference(name string) bool {
	for i, r := range e.refs {
		if r.Name == name {
			e.dropRef(i, r)
			return true
		}
	}
	return false
}

// ClearReferenceTo removes the first reference field with the given name
// whose stored target path equals path. This is the precise form used when
// one of several same-named fields dangles.
func (e *Element) ClearReferenceTo(name, path string) bool {
	for i, r := range e.refs {
		if r.Name == name && r.Path == path {
			e.dropRef(i, r)
			return true
		}
	}
	return false
}

func (e *Element) dropRef(i int, r Ref) {
	e.refs = slices.Delete(e.refs, i, i+1)
	if e.model != nil {
		e.model.removeRefSource(r.Path, e, r.Name)
	}
}
