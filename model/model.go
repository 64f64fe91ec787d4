// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"slices"

	"github.com/Masterminds/semver/v3"
)

// defaultSchemaVersion is the schema version assigned to new models.
const defaultSchemaVersion = "1.0.0"

// Model owns an element tree and the two indexes over it: the path index,
// mapping every identifiable element's path to the element, and the
// reverse-reference index, mapping a target path to the elements holding
// reference fields to it. Both indexes are maintained incrementally on
// every structural or reference write; they are never recomputed by a full
// tree scan.
//
// A Model performs no locking. Values may be shared across goroutines for
// concurrent reading, but structural mutation must be serialized by the
// caller.
type Model struct {
	root     *Element
	version  *semver.Version
	paths    map[string]*Element
	refIndex map[string][]RefSource
}

// RefSource identifies one reference field in the reverse-reference index:
// the element holding the field and the field's name.
type RefSource struct {
	Holder  *Element
	RefName string
}

// New returns a new empty model containing only the root element.
func New() *Model {
	m := &Model{
		paths:    map[string]*Element{},
		refIndex: map[string][]RefSource{},
	}
	m.version = semver.MustParse(defaultSchemaVersion)
	m.root = newElement(m, KindRoot, "")
	return m
}

// Root returns the model's root element.
func (m *Model) Root() *Element { return m.root }

// SchemaVersion returns the model's schema version.
func (m *Model) SchemaVersion() *semver.Version { return m.version }

// SetSchemaVersion sets the model's schema version from a semantic version
// string.
func (m *Model) SetSchemaVersion(v string) error {
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("schema version %q: %w", v, err)
	}
	m.version = ver
	return nil
}

// ElementAt returns the identifiable element at the given path.
func (m *Model) ElementAt(path string) (*Element, bool) {
	if path == "/" {
		return m.root, true
	}
	e, ok := m.paths[path]
	return e, ok
}

// ReferencesTo returns the reference fields elsewhere in the model whose
// stored target path equals the given path, in the order the references
// were written. The result is a copy; it stays valid while the model is
// mutated.
func (m *Model) ReferencesTo(path string) []RefSource {
	return slices.Clone(m.refIndex[path])
}

// NumElements returns the number of identifiable elements in the model,
// not counting the root.
func (m *Model) NumElements() int { return len(m.paths) }

// Index maintenance:

func (m *Model) addRefSource(path string, holder *Element, name string) {
	m.refIndex[path] = append(m.refIndex[path], RefSource{Holder: holder, RefName: name})
}

func (m *Model) removeRefSource(path string, holder *Element, name string) {
	sources := m.refIndex[path]
	idx := slices.IndexFunc(sources, func(s RefSource) bool {
		return s.Holder == holder && s.RefName == name
	})
	if idx < 0 {
		return
	}
	sources = slices.Delete(sources, idx, idx+1)
	if len(sources) == 0 {
		delete(m.refIndex, path)
	} else {
		m.refIndex[path] = sources
	}
}

// unregisterSubtree scrubs the subtree rooted at e from both indexes and
// marks every element in it as detached. Paths are computed before any
// state is cleared, while the ancestor chain is still intact.
func (m *Model) unregisterSubtree(e *Element) {
	var all []*Element
	e.WalkDown(func(c *Element) bool {
		all = append(all, c)
		return Continue
	})
	for _, c := range all {
		if c.kind.Identifiable() {
			if path, err := c.Path(); err == nil && m.paths[path] == c {
				delete(m.paths, path)
			}
		}
	}
	for _, c := range all {
		for _, r := range c.refs {
			m.removeRefSource(r.Path, c, r.Name)
		}
	}
	for _, c := range all {
		c.model = nil
	}
}

// checkSubtreePaths verifies that attaching the subtree rooted at e under
// the given base path would not collide with any registered path.
func (m *Model) checkSubtreePaths(e *Element, base string) error {
	return m.walkSubtreePaths(e, base, func(path string, _ *Element) error {
		if _, ok := m.paths[path]; ok {
			return fmt.Errorf("adopt %q: %w", path, ErrDuplicateName)
		}
		return nil
	})
}

// registerSubtree enters the subtree rooted at e, already attached to its
// new parent, into the path index and re-registers its outgoing references.
func (m *Model) registerSubtree(e *Element) {
	base, err := e.parent.basePath()
	if err != nil {
		return
	}
	e.WalkDown(func(c *Element) bool {
		c.model = m
		return Continue
	})
	_ = m.walkSubtreePaths(e, base, func(path string, c *Element) error {
		m.paths[path] = c
		return nil
	})
	e.WalkDown(func(c *Element) bool {
		for _, r := range c.refs {
			m.addRefSource(r.Path, c, r.Name)
		}
		return Continue
	})
}

// walkSubtreePaths calls fun with the prospective path of every
// identifiable element in the subtree rooted at e, assuming e's named
// ancestor path is base. The walk works on detached subtrees, where
// [Element.Path] is unavailable.
func (m *Model) walkSubtreePaths(e *Element, base string, fun func(path string, c *Element) error) error {
	type item struct {
		el   *Element
		base string
	}
	stack := []item{{e, base}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		childBase := it.base
		if it.el.kind.Identifiable() {
			path := it.base + "/" + it.el.name
			if err := fun(path, it.el); err != nil {
				return err
			}
			childBase = path
		}
		for i := it.el.NumChildren() - 1; i >= 0; i-- {
			stack = append(stack, item{it.el.Child(i), childBase})
		}
	}
	return nil
}
