// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import (
	"fmt"

	"github.com/sysarchio/sysarch/model"
)

// SystemMapping collects the deployment decisions of a system: which
// component prototypes run on which hardware nodes and which data
// elements travel on which signals. Use [System.FindOrCreateMapping] to
// create one.
type SystemMapping struct{ elemBase }

// SystemMappingFrom wraps the given element as a [SystemMapping].
func SystemMappingFrom(el *model.Element) (*SystemMapping, error) {
	if el.Kind() != model.KindSystemMapping {
		return nil, conversionError(el, "SystemMapping")
	}
	return &SystemMapping{elemBase{el}}, nil
}

// System returns the system the mapping belongs to.
func (m *SystemMapping) System() (*System, bool) {
	parent := m.el.NamedParent()
	if parent == nil || parent.Kind() != model.KindSystem {
		return nil, false
	}
	return &System{elemBase{parent}}, true
}

// MapComponentToNode records that the given component prototype runs on
// the given hardware node. The instance chain from the system's root
// composition down to the prototype is resolved and stored with the
// record, so the mapping stays unambiguous when the same component type
// is instantiated more than once.
func (m *SystemMapping) MapComponentToNode(name string, proto *ComponentPrototype, node *HardwareNode) (*ComponentToNodeMapping, error) {
	sys, ok := m.System()
	if !ok {
		return nil, conversionError(m.el, "System")
	}
	rootProto, ok := sys.RootComposition()
	if !ok {
		return nil, fmt.Errorf("%w: system %q", ErrNoRootComposition, sys.Name())
	}
	rootComp, err := rootProto.Composition()
	if err != nil {
		return nil, err
	}
	chain, err := ResolveInstanceChain(rootComp, proto)
	if err != nil {
		return nil, err
	}

	cms, err := m.el.GetOrCreateChild(model.KindComponentMappings)
	if err != nil {
		return nil, err
	}
	el, err := cms.CreateNamedChild(model.KindComponentToNodeMapping, name)
	if err != nil {
		return nil, err
	}
	if err := el.SetReference(refContextComposition, rootProto.el); err != nil {
		return nil, err
	}
	for _, ctx := range chain {
		if err := el.AddReference(refContextComponent, ctx.el); err != nil {
			return nil, err
		}
	}
	if err := el.SetReference(refTargetComponent, proto.el); err != nil {
		return nil, err
	}
	if err := el.SetReference(refNode, node.el); err != nil {
		return nil, err
	}
	return &ComponentToNodeMapping{elemBase{el}}, nil
}

// MapDataElementToSignal records that the given data element, accessed
// through the given port on the prototypes of contextChain, travels on
// the given signal. The port must be typed by a sender receiver
// interface, the data element must belong to that interface, and the
// last prototype of a non-empty context chain must instantiate the
// port's component type. Nothing is written until all checks pass.
func (m *SystemMapping) MapDataElementToSignal(signal *Signal, dataElement *DataElement, port *Port, contextChain []*ComponentPrototype, rootProto *RootCompositionPrototype) error {
	iface, err := port.Interface()
	if err != nil {
		return err
	}
	sr, ok := iface.(*SenderReceiverInterface)
	if !ok {
		return fmt.Errorf("%w: port %q is not typed by a sender receiver interface", ErrInterfaceMismatch, port.Name())
	}
	owner, ok := dataElement.Interface()
	if !ok || owner.el != sr.el {
		return fmt.Errorf("%w: data element %q does not belong to interface %q", ErrMembership, dataElement.Name(), sr.Name())
	}
	if len(contextChain) > 0 {
		last := contextChain[len(contextChain)-1]
		typ, err := last.Type()
		if err != nil {
			return err
		}
		portOwner, err := port.ComponentType()
		if err != nil {
			return err
		}
		if typ.Elem() != portOwner.Elem() {
			return fmt.Errorf("%w: prototype %q does not instantiate the component type of port %q", ErrMembership, last.Name(), port.Name())
		}
	}

	dms, err := m.el.GetOrCreateChild(model.KindDataMappings)
	if err != nil {
		return err
	}
	el, err := dms.CreateChild(model.KindSignalMapping)
	if err != nil {
		return err
	}
	if err := el.SetReference(refContextPort, port.el); err != nil {
		return err
	}
	if err := el.SetReference(refTargetDataElement, dataElement.el); err != nil {
		return err
	}
	for _, ctx := range contextChain {
		if err := el.AddReference(refContextComponent, ctx.el); err != nil {
			return err
		}
	}
	if rootProto != nil {
		if err := el.SetReference(refContextComposition, rootProto.el); err != nil {
			return err
		}
	}
	return el.SetReference(refSignal, signal.el)
}

// ComponentMappings returns the component to node mapping records of the
// mapping in order.
func (m *SystemMapping) ComponentMappings() []*ComponentToNodeMapping {
	cms := m.el.ChildByKind(model.KindComponentMappings)
	if cms == nil {
		return nil
	}
	var out []*ComponentToNodeMapping
	for _, c := range cms.ChildrenByKind(model.KindComponentToNodeMapping) {
		out = append(out, &ComponentToNodeMapping{elemBase{c}})
	}
	return out
}

// SignalMappings returns the signal mapping records of the mapping in
// order.
func (m *SystemMapping) SignalMappings() []*SignalMapping {
	dms := m.el.ChildByKind(model.KindDataMappings)
	if dms == nil {
		return nil
	}
	var out []*SignalMapping
	for _, c := range dms.ChildrenByKind(model.KindSignalMapping) {
		out = append(out, &SignalMapping{el: c})
	}
	return out
}

// Remove removes the mapping and all its records from the model.
func (m *SystemMapping) Remove(deep bool) error {
	return genericRemove(m.el, deep)
}

// ComponentToNodeMapping is one record of a [SystemMapping] placing a
// component prototype on a hardware node.
type ComponentToNodeMapping struct{ elemBase }

// TargetComponent returns the mapped component prototype.
func (c *ComponentToNodeMapping) TargetComponent() (*ComponentPrototype, error) {
	target, err := c.el.Reference(refTargetComponent)
	if err != nil {
		return nil, err
	}
	return ComponentPrototypeFrom(target)
}

// Node returns the hardware node the prototype is mapped to.
func (c *ComponentToNodeMapping) Node() (*HardwareNode, error) {
	target, err := c.el.Reference(refNode)
	if err != nil {
		return nil, err
	}
	return HardwareNodeFrom(target)
}

// ContextComponents returns the stored instance chain from the root
// composition down to the target prototype, excluding the target.
func (c *ComponentToNodeMapping) ContextComponents() []*ComponentPrototype {
	var out []*ComponentPrototype
	for _, ref := range c.el.References() {
		if ref.Name != refContextComponent {
			continue
		}
		target, ok := c.el.Model().ElementAt(ref.Path)
		if !ok {
			continue
		}
		if proto, err := ComponentPrototypeFrom(target); err == nil {
			out = append(out, proto)
		}
	}
	return out
}

// Remove removes the mapping record.
func (c *ComponentToNodeMapping) Remove(deep bool) error {
	return genericRemove(c.el, deep)
}

// SignalMapping is one record of a [SystemMapping] placing a data element
// on a signal. The record itself is anonymous; it lives and dies with its
// mapping.
type SignalMapping struct{ el *model.Element }

// Elem returns the underlying store element of the record.
func (s *SignalMapping) Elem() *model.Element { return s.el }

// Port returns the port the mapped access goes through.
func (s *SignalMapping) Port() (*Port, error) {
	target, err := s.el.Reference(refContextPort)
	if err != nil {
		return nil, err
	}
	return PortFrom(target)
}

// DataElement returns the mapped data element.
func (s *SignalMapping) DataElement() (*DataElement, error) {
	target, err := s.el.Reference(refTargetDataElement)
	if err != nil {
		return nil, err
	}
	return DataElementFrom(target)
}

// Signal returns the signal carrying the data element.
func (s *SignalMapping) Signal() (*Signal, error) {
	target, err := s.el.Reference(refSignal)
	if err != nil {
		return nil, err
	}
	return SignalFrom(target)
}

// ContextComponents returns the stored context chain of the record.
func (s *SignalMapping) ContextComponents() []*ComponentPrototype {
	var out []*ComponentPrototype
	for _, ref := range s.el.References() {
		if ref.Name != refContextComponent {
			continue
		}
		target, ok := s.el.Model().ElementAt(ref.Path)
		if !ok {
			continue
		}
		if proto, err := ComponentPrototypeFrom(target); err == nil {
			out = append(out, proto)
		}
	}
	return out
}
