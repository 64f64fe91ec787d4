// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import "github.com/sysarchio/sysarch/model"

// Port is a provided, required or bidirectional port on a component type.
// Every port is typed by a [PortInterface].
type Port struct{ elemBase }

// PortFrom wraps the given element as a [Port].
func PortFrom(el *model.Element) (*Port, error) {
	switch el.Kind() {
	case model.KindProvidedPort, model.KindRequiredPort, model.KindProvidedRequiredPort:
		return &Port{elemBase{el}}, nil
	default:
		return nil, conversionError(el, "Port")
	}
}

// Interface returns the port interface the port is typed by.
func (p *Port) Interface() (PortInterface, error) {
	target, err := p.el.Reference(refInterface)
	if err != nil {
		return nil, err
	}
	return PortInterfaceFrom(target)
}

// ComponentType returns the component type the port belongs to.
func (p *Port) ComponentType() (ComponentType, error) {
	parent := p.el.NamedParent()
	if parent == nil {
		return nil, conversionError(p.el, "ComponentType")
	}
	return ComponentTypeFrom(parent)
}

// Remove removes the port from its component type. Signal mappings routed
// through the port are removed as well.
func (p *Port) Remove(deep bool) error {
	return genericRemove(p.el, deep)
}
