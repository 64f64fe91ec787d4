// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Element is one node of the hierarchical model. Elements are created
// through [Element.CreateChild], [Element.CreateNamedChild] and
// [Element.GetOrCreateChild]; free-standing elements exist only as the
// result of [Element.Clone]. An element owns its children and holds a
// non-owning back-pointer to its parent. Cross-subtree relations are
// expressed exclusively through reference fields, which store the target's
// path and are resolved against the model's path index on every read.
type Element struct {

	// Props is a property map for scalar attribute values of the element,
	// such as a category tag. Use [Element.SetProp], [Element.Prop] and
	// [Element.DeleteProp] for access; the field is exported for deep
	// copying during [Element.Clone].
	Props map[string]any

	kind     Kind
	name     string
	id       uuid.UUID
	model    *Model
	parent   *Element
	children []*Element
	refs     []Ref
}

// Ref is one reference field of an element: a named, non-owning edge to the
// identifiable element at Path. The same name may appear more than once on
// one element, forming an ordered reference list.
type Ref struct {
	Name string
	Path string
}

func newElement(m *Model, kind Kind, name string) *Element {
	return &Element{
		kind:  kind,
		name:  name,
		id:    uuid.New(),
		model: m,
	}
}

// Kind returns the element's kind tag.
func (e *Element) Kind() Kind { return e.kind }

// Name returns the element's identity name, or "" for kinds that are not
// identifiable.
func (e *Element) Name() string { return e.name }

// UUID returns the element's unique id, assigned at creation and preserved
// across moves but not across [Element.Clone].
func (e *Element) UUID() uuid.UUID { return e.id }

// Model returns the model the element belongs to, or nil if the element has
// been removed.
func (e *Element) Model() *Model { return e.model }

// Parent returns the element's parent, or nil for the root and for detached
// elements.
func (e *Element) Parent() *Element { return e.parent }

// Detached reports whether the element has been removed from its model.
func (e *Element) Detached() bool { return e.model == nil }

// String implements [fmt.Stringer] for debugging output.
func (e *Element) String() string {
	if e == nil {
		return "nil"
	}
	if path, err := e.Path(); err == nil {
		return path
	}
	return "<" + e.kind.String() + ">"
}

// Paths:

// Path returns the unique address of the element: the / separated identity
// names of its identifiable ancestors, ending in its own name. The root
// element has the path "/". Detached elements have no path, and elements of
// non-identifiable kinds are only addressable through their nearest
// identifiable ancestor.
func (e *Element) Path() (string, error) {
	if e.model == nil {
		return "", ErrDetached
	}
	if e.parent == nil {
		return "/", nil
	}
	if !e.kind.Identifiable() {
		return "", fmt.Errorf("%v: %w", e.kind, ErrNotIdentifiable)
	}
	var parts []string
	for cur := e; cur != nil; cur = cur.parent {
		if cur.kind.Identifiable() {
			parts = append(parts, cur.name)
		}
	}
	slices.Reverse(parts)
	return "/" + strings.Join(parts, "/"), nil
}

// NamedParent returns the nearest identifiable ancestor of the element, or
// nil if there is none below the root.
func (e *Element) NamedParent() *Element {
	for cur := e.parent; cur != nil; cur = cur.parent {
		if cur.kind.Identifiable() {
			return cur
		}
	}
	return nil
}

// basePath returns the path prefix for named children of e: the path of e
// itself if identifiable, otherwise of its nearest identifiable ancestor.
// The root contributes the empty prefix.
func (e *Element) basePath() (string, error) {
	anchor := e
	if !anchor.kind.Identifiable() {
		anchor = e.NamedParent()
	}
	if anchor == nil {
		if e.model == nil {
			return "", ErrDetached
		}
		return "", nil
	}
	path, err := anchor.Path()
	if err != nil {
		return "", err
	}
	return path, nil
}

// Children:

// HasChildren returns whether the element has any children.
func (e *Element) HasChildren() bool { return len(e.children) > 0 }

// NumChildren returns the number of children of the element.
func (e *Element) NumChildren() int { return len(e.children) }

// Child returns the child at the given index, or nil if the index is out of
// range.
func (e *Element) Child(i int) *Element {
	if i < 0 || i >= len(e.children) {
		return nil
	}
	return e.children[i]
}

// Children returns the element's children in order. The returned slice is
// owned by the element and must not be modified.
func (e *Element) Children() []*Element { return e.children }

// ChildByName returns the first identifiable child with the given name, or
// nil if there is none.
func (e *Element) ChildByName(name string) *Element {
	idx := slices.IndexFunc(e.children, func(c *Element) bool { return c.name == name })
	if idx < 0 {
		return nil
	}
	return e.children[idx]
}

// ChildByKind returns the first child of the given kind, or nil.
func (e *Element) ChildByKind(kind Kind) *Element {
	idx := slices.IndexFunc(e.children, func(c *Element) bool { return c.kind == kind })
	if idx < 0 {
		return nil
	}
	return e.children[idx]
}

// ChildrenByKind returns all children of the given kind, in order.
func (e *Element) ChildrenByKind(kind Kind) []*Element {
	var out []*Element
	for _, c := range e.children {
		if c.kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// CreateChild creates a new anonymous child of the given kind at the end of
// the children list. Identifiable kinds must be created with
// [Element.CreateNamedChild] instead.
func (e *Element) CreateChild(kind Kind) (*Element, error) {
	if e.model == nil {
		return nil, ErrDetached
	}
	if kind.Identifiable() {
		return nil, fmt.Errorf("create %v: identifiable kinds need a name: %w", kind, ErrKindMismatch)
	}
	child := newElement(e.model, kind, "")
	child.parent = e
	e.children = append(e.children, child)
	return child, nil
}

// GetOrCreateChild returns the first child of the given anonymous kind,
// creating it if it does not exist yet. It is the standard way to reach the
// structural container elements that group children of one class.
func (e *Element) GetOrCreateChild(kind Kind) (*Element, error) {
	if c := e.ChildByKind(kind); c != nil {
		return c, nil
	}
	return e.CreateChild(kind)
}

// CreateNamedChild creates a new identifiable child of the given kind and
// name at the end of the children list and registers it in the model's path
// index. The name must be unique among the named elements below the same
// identifiable ancestor.
func (e *Element) CreateNamedChild(kind Kind, name string) (*Element, error) {
	if e.model == nil {
		return nil, ErrDetached
	}
	if !kind.Identifiable() {
		return nil, fmt.Errorf("create %v: %w", kind, ErrNotIdentifiable)
	}
	if err := checkName(name); err != nil {
		return nil, err
	}
	base, err := e.basePath()
	if err != nil {
		return nil, err
	}
	path := base + "/" + name
	if _, ok := e.model.paths[path]; ok {
		return nil, fmt.Errorf("create %q: %w", path, ErrDuplicateName)
	}
	child := newElement(e.model, kind, name)
	child.parent = e
	e.children = append(e.children, child)
	e.model.paths[path] = child
	return child, nil
}

// checkName rejects names that cannot form a path segment.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidName)
	}
	if strings.ContainsAny(name, "/ \t\n") {
		return fmt.Errorf("name %q: %w", name, ErrInvalidName)
	}
	return nil
}

// Removal:

// Remove detaches the element and its entire subtree from the model. This
// is the store-level primitive: it scrubs the subtree from the path index
// and withdraws the subtree's own outgoing references from the reverse
// index, but references held elsewhere that point into the removed subtree
// are left dangling. Referentially safe removal is layered on top of this
// primitive.
func (e *Element) Remove() error {
	if e.model == nil {
		return ErrDetached
	}
	if e.parent == nil {
		return ErrRemoveRoot
	}
	m := e.model
	parent := e.parent
	idx := slices.Index(parent.children, e)
	if idx < 0 {
		return fmt.Errorf("element %v not in parent's children: %w", e, ErrDetached)
	}
	m.unregisterSubtree(e)
	parent.children = slices.Delete(parent.children, idx, idx+1)
	e.parent = nil
	return nil
}

// AdoptChild attaches a detached subtree, typically produced by
// [Element.Clone], as the last child of e. The subtree root must be
// identifiable. If any named element of the subtree collides with an
// existing path, nothing is attached.
func (e *Element) AdoptChild(child *Element) error {
	if e.model == nil {
		return ErrDetached
	}
	if child.model != nil || child.parent != nil {
		return fmt.Errorf("adopt %v: %w", child, ErrAttached)
	}
	if !child.kind.Identifiable() {
		return fmt.Errorf("adopt %v: %w", child.kind, ErrNotIdentifiable)
	}
	base, err := e.basePath()
	if err != nil {
		return err
	}
	if err := e.model.checkSubtreePaths(child, base); err != nil {
		return err
	}
	child.parent = e
	e.children = append(e.children, child)
	e.model.registerSubtree(child)
	return nil
}

// Properties:

// SetProp sets the given property of the element to the given value.
func (e *Element) SetProp(key string, value any) {
	if e.Props == nil {
		e.Props = map[string]any{}
	}
	e.Props[key] = value
}

// Prop returns the property value for the given key, or nil if it is not
// set.
func (e *Element) Prop(key string) any { return e.Props[key] }

// DeleteProp deletes the property with the given key.
func (e *Element) DeleteProp(key string) {
	if e.Props == nil {
		return
	}
	delete(e.Props, key)
}
