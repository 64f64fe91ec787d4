// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import (
	"fmt"

	"github.com/sysarchio/sysarch/model"
)

// ComponentType is implemented by the component type kinds of the model:
// [CompositionType], [ApplicationComponentType], [ServiceComponentType]
// and [SensorActuatorComponentType].
type ComponentType interface {
	Wrapper

	// Instances returns every component prototype typed by this
	// component type, anywhere in the model.
	Instances() []*ComponentPrototype

	// ParentCompositions returns the compositions that contain an
	// instance of this component type.
	ParentCompositions() []*CompositionType

	Remove(deep bool) error
	isComponentType()
}

func (t *CompositionType) isComponentType()             {}
func (t *ApplicationComponentType) isComponentType()    {}
func (t *ServiceComponentType) isComponentType()        {}
func (t *SensorActuatorComponentType) isComponentType() {}

// ComponentTypeFrom wraps the given element as the matching [ComponentType].
func ComponentTypeFrom(el *model.Element) (ComponentType, error) {
	switch el.Kind() {
	case model.KindComposition:
		return &CompositionType{componentBase{elemBase{el}}}, nil
	case model.KindApplicationComponent:
		return &ApplicationComponentType{componentBase{elemBase{el}}}, nil
	case model.KindServiceComponent:
		return &ServiceComponentType{componentBase{elemBase{el}}}, nil
	case model.KindSensorActuatorComponent:
		return &SensorActuatorComponentType{componentBase{elemBase{el}}}, nil
	default:
		return nil, conversionError(el, "ComponentType")
	}
}

// componentBase carries the behavior shared by all component type kinds:
// the port group and the reverse lookups over typed prototypes.
type componentBase struct{ elemBase }

func (b *componentBase) createPort(kind model.Kind, name string, iface PortInterface) (*Port, error) {
	ports, err := b.el.GetOrCreateChild(model.KindPorts)
	if err != nil {
		return nil, err
	}
	el, err := ports.CreateNamedChild(kind, name)
	if err != nil {
		return nil, err
	}
	if err := el.SetReference(refInterface, iface.Elem()); err != nil {
		return nil, err
	}
	return &Port{elemBase{el}}, nil
}

// CreateProvidedPort adds a provided port typed by the given interface.
func (b *componentBase) CreateProvidedPort(name string, iface PortInterface) (*Port, error) {
	return b.createPort(model.KindProvidedPort, name, iface)
}

// CreateRequiredPort adds a required port typed by the given interface.
func (b *componentBase) CreateRequiredPort(name string, iface PortInterface) (*Port, error) {
	return b.createPort(model.KindRequiredPort, name, iface)
}

// CreateProvidedRequiredPort adds a bidirectional port typed by the given
// interface.
func (b *componentBase) CreateProvidedRequiredPort(name string, iface PortInterface) (*Port, error) {
	return b.createPort(model.KindProvidedRequiredPort, name, iface)
}

// Ports returns the ports of the component type in order.
func (b *componentBase) Ports() []*Port {
	ports := b.el.ChildByKind(model.KindPorts)
	if ports == nil {
		return nil
	}
	var out []*Port
	for _, c := range ports.Children() {
		switch c.Kind() {
		case model.KindProvidedPort, model.KindRequiredPort, model.KindProvidedRequiredPort:
			out = append(out, &Port{elemBase{c}})
		}
	}
	return out
}

// Instances returns every component prototype typed by this component
// type, anywhere in the model.
func (b *componentBase) Instances() []*ComponentPrototype {
	path, err := b.el.Path()
	if err != nil {
		return nil
	}
	var out []*ComponentPrototype
	for _, src := range b.el.Model().ReferencesTo(path) {
		if src.RefName == refType && src.Holder.Kind() == model.KindComponentPrototype {
			out = append(out, &ComponentPrototype{elemBase{src.Holder}})
		}
	}
	return out
}

// ParentCompositions returns the compositions that contain an instance of
// this component type. A composition containing several instances appears
// once per instance.
func (b *componentBase) ParentCompositions() []*CompositionType {
	var out []*CompositionType
	for _, inst := range b.Instances() {
		if parent, ok := inst.ParentComposition(); ok {
			out = append(out, parent)
		}
	}
	return out
}

// CompositionType is a component type that contains instances of other
// component types. Use [Package.CreateCompositionType] to create one.
type CompositionType struct{ componentBase }

// CompositionTypeFrom wraps the given element as a [CompositionType].
func CompositionTypeFrom(el *model.Element) (*CompositionType, error) {
	if el.Kind() != model.KindComposition {
		return nil, conversionError(el, "CompositionType")
	}
	return &CompositionType{componentBase{elemBase{el}}}, nil
}

// CreateComponent adds an instance of the given component type to the
// composition. Instantiating the composition inside itself, directly or
// through a chain of nested compositions, is rejected.
func (t *CompositionType) CreateComponent(name string, typ ComponentType) (*ComponentPrototype, error) {
	if inner, ok := typ.(*CompositionType); ok {
		if inner.el == t.el || inner.IsAncestorOf(t) {
			return nil, fmt.Errorf("%w: %q cannot contain %q", ErrCompositionCycle, t.Name(), inner.Name())
		}
	}
	comps, err := t.el.GetOrCreateChild(model.KindComponents)
	if err != nil {
		return nil, err
	}
	el, err := comps.CreateNamedChild(model.KindComponentPrototype, name)
	if err != nil {
		return nil, err
	}
	if err := el.SetReference(refType, typ.Elem()); err != nil {
		return nil, err
	}
	return &ComponentPrototype{elemBase{el}}, nil
}

// Components returns the component prototypes of the composition in order.
func (t *CompositionType) Components() []*ComponentPrototype {
	comps := t.el.ChildByKind(model.KindComponents)
	if comps == nil {
		return nil
	}
	var out []*ComponentPrototype
	for _, c := range comps.ChildrenByKind(model.KindComponentPrototype) {
		out = append(out, &ComponentPrototype{elemBase{c}})
	}
	return out
}

// IsAncestorOf reports whether other is instantiated beneath t, directly
// or through any chain of nested compositions. The walk over instantiating
// compositions is bounded, so reference cycles cannot hang it.
func (t *CompositionType) IsAncestorOf(other ComponentType) bool {
	work := []*model.Element{other.Elem()}
	for i := 0; i < ancestryIterationLimit && len(work) > 0; i++ {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		ct, err := ComponentTypeFrom(cur)
		if err != nil {
			continue
		}
		for _, parent := range ct.ParentCompositions() {
			if parent.el == t.el {
				return true
			}
			work = append(work, parent.el)
		}
	}
	return false
}

// Remove removes the composition from the model. Its component prototypes
// and ports are removed first so that their own references are cleaned up.
func (t *CompositionType) Remove(deep bool) error {
	for _, proto := range t.Components() {
		if err := proto.Remove(deep); err != nil {
			return err
		}
	}
	for _, port := range t.Ports() {
		if err := port.Remove(deep); err != nil {
			return err
		}
	}
	return genericRemove(t.el, deep)
}

// ApplicationComponentType is an atomic component type holding application
// behavior. Use [Package.CreateApplicationComponentType] to create one.
type ApplicationComponentType struct{ componentBase }

// Remove removes the component type from the model, removing its ports
// first so that their own references are cleaned up.
func (t *ApplicationComponentType) Remove(deep bool) error {
	return removeAtomicComponent(&t.componentBase, deep)
}

// ServiceComponentType is an atomic component type providing a platform
// service. Use [Package.CreateServiceComponentType] to create one.
type ServiceComponentType struct{ componentBase }

// Remove removes the component type from the model, removing its ports
// first so that their own references are cleaned up.
func (t *ServiceComponentType) Remove(deep bool) error {
	return removeAtomicComponent(&t.componentBase, deep)
}

// SensorActuatorComponentType is an atomic component type wrapping a
// sensor or actuator. Use [Package.CreateSensorActuatorComponentType] to
// create one.
type SensorActuatorComponentType struct{ componentBase }

// Remove removes the component type from the model, removing its ports
// first so that their own references are cleaned up.
func (t *SensorActuatorComponentType) Remove(deep bool) error {
	return removeAtomicComponent(&t.componentBase, deep)
}

func removeAtomicComponent(b *componentBase, deep bool) error {
	for _, port := range b.Ports() {
		if err := port.Remove(deep); err != nil {
			return err
		}
	}
	return genericRemove(b.el, deep)
}

// ComponentPrototype is an instance of a component type inside a
// composition. Use [CompositionType.CreateComponent] to create one.
type ComponentPrototype struct{ elemBase }

// ComponentPrototypeFrom wraps the given element as a [ComponentPrototype].
func ComponentPrototypeFrom(el *model.Element) (*ComponentPrototype, error) {
	if el.Kind() != model.KindComponentPrototype {
		return nil, conversionError(el, "ComponentPrototype")
	}
	return &ComponentPrototype{elemBase{el}}, nil
}

// Type returns the component type the prototype instantiates.
func (p *ComponentPrototype) Type() (ComponentType, error) {
	target, err := p.el.Reference(refType)
	if err != nil {
		return nil, fmt.Errorf("%w: prototype %q: %w", ErrMissingTypeRef, p.Name(), err)
	}
	return ComponentTypeFrom(target)
}

// ParentComposition returns the composition the prototype belongs to.
func (p *ComponentPrototype) ParentComposition() (*CompositionType, bool) {
	parent := p.el.NamedParent()
	if parent == nil || parent.Kind() != model.KindComposition {
		return nil, false
	}
	return &CompositionType{componentBase{elemBase{parent}}}, true
}

// Remove removes the prototype from its composition.
func (p *ComponentPrototype) Remove(deep bool) error {
	return genericRemove(p.el, deep)
}

// RootCompositionPrototype designates the composition type that forms the
// root of a system. Use [System.SetRootComposition] to create one.
type RootCompositionPrototype struct{ elemBase }

// Composition returns the composition type the root prototype designates.
func (p *RootCompositionPrototype) Composition() (*CompositionType, error) {
	target, err := p.el.Reference(refComposition)
	if err != nil {
		return nil, fmt.Errorf("%w: root prototype %q: %w", ErrMissingTypeRef, p.Name(), err)
	}
	return CompositionTypeFrom(target)
}

// Remove removes the root prototype from its system.
func (p *RootCompositionPrototype) Remove(deep bool) error {
	return genericRemove(p.el, deep)
}
