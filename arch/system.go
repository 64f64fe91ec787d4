// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import (
	"fmt"

	"github.com/sysarchio/sysarch/model"
)

// SystemCategory describes the completeness level of a system description.
type SystemCategory string

const (
	SystemDescription SystemCategory = "SYSTEM_DESCRIPTION"
	SystemExtract     SystemCategory = "SYSTEM_EXTRACT"
	NodeExtract       SystemCategory = "NODE_EXTRACT"
)

// System is the top level container tying a root composition, hardware
// nodes, signals and mappings together. Use [Package.CreateSystem] to
// create one.
type System struct{ elemBase }

// SystemFrom wraps the given element as a [System].
func SystemFrom(el *model.Element) (*System, error) {
	if el.Kind() != model.KindSystem {
		return nil, conversionError(el, "System")
	}
	return &System{elemBase{el}}, nil
}

// Category returns the category of the system.
func (s *System) Category() SystemCategory {
	cat, _ := s.el.Prop(propCategory).(string)
	return SystemCategory(cat)
}

// SetRootComposition designates the given composition type as the root of
// the system. A system has at most one root composition.
func (s *System) SetRootComposition(name string, comp *CompositionType) (*RootCompositionPrototype, error) {
	if _, ok := s.RootComposition(); ok {
		return nil, fmt.Errorf("%w: system %q already has a root composition", ErrAlreadyExists, s.Name())
	}
	roots, err := s.el.GetOrCreateChild(model.KindRootCompositions)
	if err != nil {
		return nil, err
	}
	el, err := roots.CreateNamedChild(model.KindRootCompositionPrototype, name)
	if err != nil {
		return nil, err
	}
	if err := el.SetReference(refComposition, comp.Elem()); err != nil {
		return nil, err
	}
	return &RootCompositionPrototype{elemBase{el}}, nil
}

// RootComposition returns the root composition prototype of the system,
// if one has been set.
func (s *System) RootComposition() (*RootCompositionPrototype, bool) {
	roots := s.el.ChildByKind(model.KindRootCompositions)
	if roots == nil {
		return nil, false
	}
	el := roots.ChildByKind(model.KindRootCompositionPrototype)
	if el == nil {
		return nil, false
	}
	return &RootCompositionPrototype{elemBase{el}}, true
}

// FindOrCreateMapping returns the system mapping with the given name,
// creating it if it does not exist yet.
func (s *System) FindOrCreateMapping(name string) (*SystemMapping, error) {
	maps, err := s.el.GetOrCreateChild(model.KindMappings)
	if err != nil {
		return nil, err
	}
	if el := maps.ChildByName(name); el != nil {
		return SystemMappingFrom(el)
	}
	el, err := maps.CreateNamedChild(model.KindSystemMapping, name)
	if err != nil {
		return nil, err
	}
	return &SystemMapping{elemBase{el}}, nil
}

// Mappings returns the system mappings of the system in order.
func (s *System) Mappings() []*SystemMapping {
	maps := s.el.ChildByKind(model.KindMappings)
	if maps == nil {
		return nil
	}
	var out []*SystemMapping
	for _, c := range maps.ChildrenByKind(model.KindSystemMapping) {
		out = append(out, &SystemMapping{elemBase{c}})
	}
	return out
}

// Remove removes the system and everything below it from the model.
func (s *System) Remove(deep bool) error {
	return genericRemove(s.el, deep)
}
