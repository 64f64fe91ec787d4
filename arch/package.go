// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import (
	"slices"

	"github.com/sysarchio/sysarch/model"
)

// Package is the basic grouping element of a model. Packages nest, and all
// other identifiable elements live inside a package. Use
// [Model.FindOrCreatePackage] to obtain one.
type Package struct{ elemBase }

// PackageFrom wraps the given element as a Package.
func PackageFrom(el *model.Element) (*Package, error) {
	if el.Kind() != model.KindPackage {
		return nil, conversionError(el, "Package")
	}
	return &Package{elemBase{el}}, nil
}

// createElement creates a named element in the package's elements
// container.
func (p *Package) createElement(kind model.Kind, name string) (*model.Element, error) {
	els, err := p.el.GetOrCreateChild(model.KindElements)
	if err != nil {
		return nil, err
	}
	return els.CreateNamedChild(kind, name)
}

// CreateSubpackage creates a subpackage with the given name.
func (p *Package) CreateSubpackage(name string) (*Package, error) {
	pkgs, err := p.el.GetOrCreateChild(model.KindPackages)
	if err != nil {
		return nil, err
	}
	el, err := pkgs.CreateNamedChild(model.KindPackage, name)
	if err != nil {
		return nil, err
	}
	return &Package{elemBase{el}}, nil
}

// CreateSystem creates a system with the given name and category in the
// package.
func (p *Package) CreateSystem(name string, category SystemCategory) (*System, error) {
	el, err := p.createElement(model.KindSystem, name)
	if err != nil {
		return nil, err
	}
	el.SetProp(propCategory, string(category))
	return &System{elemBase{el}}, nil
}

// CreateCompositionType creates a composition component type with the given
// name in the package.
func (p *Package) CreateCompositionType(name string) (*CompositionType, error) {
	el, err := p.createElement(model.KindComposition, name)
	if err != nil {
		return nil, err
	}
	return &CompositionType{componentBase{elemBase{el}}}, nil
}

// CreateApplicationComponentType creates an atomic application component
// type with the given name in the package.
func (p *Package) CreateApplicationComponentType(name string) (*ApplicationComponentType, error) {
	el, err := p.createElement(model.KindApplicationComponent, name)
	if err != nil {
		return nil, err
	}
	return &ApplicationComponentType{componentBase{elemBase{el}}}, nil
}

// CreateServiceComponentType creates an atomic service component type with
// the given name in the package.
func (p *Package) CreateServiceComponentType(name string) (*ServiceComponentType, error) {
	el, err := p.createElement(model.KindServiceComponent, name)
	if err != nil {
		return nil, err
	}
	return &ServiceComponentType{componentBase{elemBase{el}}}, nil
}

// CreateSensorActuatorComponentType creates an atomic sensor/actuator
// component type with the given name in the package.
func (p *Package) CreateSensorActuatorComponentType(name string) (*SensorActuatorComponentType, error) {
	el, err := p.createElement(model.KindSensorActuatorComponent, name)
	if err != nil {
		return nil, err
	}
	return &SensorActuatorComponentType{componentBase{elemBase{el}}}, nil
}

// CreateSenderReceiverInterface creates a sender/receiver interface with
// the given name in the package.
func (p *Package) CreateSenderReceiverInterface(name string) (*SenderReceiverInterface, error) {
	el, err := p.createElement(model.KindSenderReceiverInterface, name)
	if err != nil {
		return nil, err
	}
	return &SenderReceiverInterface{elemBase{el}}, nil
}

// CreateClientServerInterface creates a client/server interface with the
// given name in the package.
func (p *Package) CreateClientServerInterface(name string) (*ClientServerInterface, error) {
	el, err := p.createElement(model.KindClientServerInterface, name)
	if err != nil {
		return nil, err
	}
	return &ClientServerInterface{elemBase{el}}, nil
}

// CreatePrimitiveType creates a primitive data type with the given name and
// category in the package. The compu method, unit and data constraint are
// optional shared leaf definitions; pass nil to omit one.
func (p *Package) CreatePrimitiveType(name string, category PrimitiveCategory, compuMethod *CompuMethod, unit *Unit, constraint *DataConstraint) (*PrimitiveType, error) {
	el, err := p.createElement(model.KindPrimitiveType, name)
	if err != nil {
		return nil, err
	}
	el.SetProp(propCategory, string(category))
	pt := &PrimitiveType{elemBase{el}}
	if err := pt.SetCompuMethod(compuMethod); err != nil {
		return nil, err
	}
	if err := pt.SetUnit(unit); err != nil {
		return nil, err
	}
	if err := pt.SetDataConstraint(constraint); err != nil {
		return nil, err
	}
	return pt, nil
}

// CreateArrayType creates an array data type with the given name and
// element type in the package. The array's element descriptor is created
// along with it.
func (p *Package) CreateArrayType(name string, elementType DataType) (*ArrayType, error) {
	el, err := p.createElement(model.KindArrayType, name)
	if err != nil {
		return nil, err
	}
	at := &ArrayType{elemBase{el}}
	desc, err := el.CreateNamedChild(model.KindArrayElement, "Element")
	if err != nil {
		return nil, err
	}
	if err := desc.SetReference(refType, elementType.Elem()); err != nil {
		return nil, err
	}
	return at, nil
}

// CreateRecordType creates an empty record data type with the given name in
// the package. Use [RecordType.CreateRecordElement] to add fields.
func (p *Package) CreateRecordType(name string) (*RecordType, error) {
	el, err := p.createElement(model.KindRecordType, name)
	if err != nil {
		return nil, err
	}
	return &RecordType{elemBase{el}}, nil
}

// CreateUnit creates a unit with the given name in the package.
func (p *Package) CreateUnit(name string) (*Unit, error) {
	el, err := p.createElement(model.KindUnit, name)
	if err != nil {
		return nil, err
	}
	return &Unit{elemBase{el}}, nil
}

// CreateDataConstraint creates a data constraint with the given name in the
// package.
func (p *Package) CreateDataConstraint(name string) (*DataConstraint, error) {
	el, err := p.createElement(model.KindDataConstraint, name)
	if err != nil {
		return nil, err
	}
	return &DataConstraint{elemBase{el}}, nil
}

// CreateCompuMethod creates a computation method with the given name in the
// package.
func (p *Package) CreateCompuMethod(name string) (*CompuMethod, error) {
	el, err := p.createElement(model.KindCompuMethod, name)
	if err != nil {
		return nil, err
	}
	return &CompuMethod{elemBase{el}}, nil
}

// CreateSignal creates a system signal with the given name in the package.
func (p *Package) CreateSignal(name string) (*Signal, error) {
	el, err := p.createElement(model.KindSignal, name)
	if err != nil {
		return nil, err
	}
	return &Signal{elemBase{el}}, nil
}

// CreateHardwareNode creates a hardware execution node with the given name
// in the package.
func (p *Package) CreateHardwareNode(name string) (*HardwareNode, error) {
	el, err := p.createElement(model.KindHardwareNode, name)
	if err != nil {
		return nil, err
	}
	return &HardwareNode{elemBase{el}}, nil
}

// Remove removes the package from the model: first every contained element
// and subpackage through its own referentially safe removal, then the
// package itself.
func (p *Package) Remove(deep bool) error {
	if pkgs := p.el.ChildByKind(model.KindPackages); pkgs != nil {
		for _, c := range slices.Clone(pkgs.Children()) {
			if c.Detached() || c.Kind() != model.KindPackage {
				continue
			}
			if err := (&Package{elemBase{c}}).Remove(deep); err != nil {
				return err
			}
		}
	}
	if els := p.el.ChildByKind(model.KindElements); els != nil {
		for _, c := range slices.Clone(els.Children()) {
			if c.Detached() {
				continue
			}
			w, err := wrapRemovable(c)
			if err != nil {
				return err
			}
			if err := w.Remove(deep); err != nil {
				return err
			}
		}
	}
	return detach(p.el)
}
