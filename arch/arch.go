// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import (
	"strings"

	"github.com/sysarchio/sysarch/model"
)

// Wrapper is implemented by all abstraction types in this package. Every
// wrapper is a thin, typed view of one element in the underlying store;
// two wrappers denote the same model object exactly when their Elem
// pointers are equal.
type Wrapper interface {
	// Elem returns the underlying model element.
	Elem() *model.Element
}

// removable is the subset of wrappers supporting referentially safe
// removal.
type removable interface {
	Wrapper
	Remove(deep bool) error
}

// elemBase provides the common part of all wrappers.
type elemBase struct {
	el *model.Element
}

func (b elemBase) Elem() *model.Element { return b.el }

// Name returns the identity name of the wrapped element.
func (b elemBase) Name() string { return b.el.Name() }

// Path returns the unique address of the wrapped element.
func (b elemBase) Path() (string, error) { return b.el.Path() }

// Reference field names used by the abstraction layer.
const (
	refType               = "type"
	refInterface          = "interface"
	refComposition        = "composition"
	refCompuMethod        = "compuMethod"
	refUnit               = "unit"
	refDataConstraint     = "dataConstraint"
	refContextComposition = "contextComposition"
	refContextComponent   = "contextComponent"
	refTargetComponent    = "targetComponent"
	refTargetDataElement  = "targetDataElement"
	refContextPort        = "contextPort"
	refNode               = "node"
	refSignal             = "signal"
)

// Property keys used by the abstraction layer.
const (
	propCategory = "category"
)

// Model is the entry point of the abstraction layer: it owns an element
// store and hands out typed wrappers over it. Calls through the abstraction
// layer and direct calls into the store may be mixed freely.
type Model struct {
	store *model.Model
}

// New returns a new empty model.
func New() *Model {
	return &Model{store: model.New()}
}

// Store returns the underlying element store.
func (m *Model) Store() *model.Model { return m.store }

// ElementAt returns the element at the given path.
func (m *Model) ElementAt(path string) (*model.Element, bool) {
	return m.store.ElementAt(path)
}

// FindOrCreatePackage returns the package at the given path, such as
// "/Types/Units", creating it and any missing ancestor packages.
func (m *Model) FindOrCreatePackage(path string) (*Package, error) {
	cur := m.store.Root()
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		parent := cur
		if cur.Kind() == model.KindPackage {
			var err error
			parent, err = cur.GetOrCreateChild(model.KindPackages)
			if err != nil {
				return nil, err
			}
		}
		next := parent.ChildByName(seg)
		if next == nil {
			var err error
			next, err = parent.CreateNamedChild(model.KindPackage, seg)
			if err != nil {
				return nil, err
			}
		} else if next.Kind() != model.KindPackage {
			return nil, conversionError(next, "Package")
		}
		cur = next
	}
	if cur.Kind() != model.KindPackage {
		return nil, conversionError(cur, "Package")
	}
	return &Package{elemBase{cur}}, nil
}
