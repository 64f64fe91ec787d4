// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import (
	"github.com/sysarchio/sysarch/model"
)

// PortInterface is implemented by the port interface kinds of the model:
// [SenderReceiverInterface] and [ClientServerInterface].
type PortInterface interface {
	Wrapper
	Remove(deep bool) error
	isPortInterface()
}

func (i *SenderReceiverInterface) isPortInterface() {}
func (i *ClientServerInterface) isPortInterface()   {}

// PortInterfaceFrom wraps the given element as the matching [PortInterface].
func PortInterfaceFrom(el *model.Element) (PortInterface, error) {
	switch el.Kind() {
	case model.KindSenderReceiverInterface:
		return &SenderReceiverInterface{elemBase{el}}, nil
	case model.KindClientServerInterface:
		return &ClientServerInterface{elemBase{el}}, nil
	default:
		return nil, conversionError(el, "PortInterface")
	}
}

// SenderReceiverInterface is a port interface carrying typed data
// elements. Use [Package.CreateSenderReceiverInterface] to create one.
type SenderReceiverInterface struct{ elemBase }

// CreateDataElement adds a data element with the given name and data type
// to the interface.
func (i *SenderReceiverInterface) CreateDataElement(name string, dataType DataType) (*DataElement, error) {
	des, err := i.el.GetOrCreateChild(model.KindDataElements)
	if err != nil {
		return nil, err
	}
	el, err := des.CreateNamedChild(model.KindDataElement, name)
	if err != nil {
		return nil, err
	}
	if err := el.SetReference(refType, dataType.Elem()); err != nil {
		return nil, err
	}
	return &DataElement{elemBase{el}}, nil
}

// DataElements returns the data elements of the interface in order.
func (i *SenderReceiverInterface) DataElements() []*DataElement {
	des := i.el.ChildByKind(model.KindDataElements)
	if des == nil {
		return nil
	}
	var out []*DataElement
	for _, c := range des.ChildrenByKind(model.KindDataElement) {
		out = append(out, &DataElement{elemBase{c}})
	}
	return out
}

// Remove removes the interface from the model. Its data elements are
// removed first so that their own references are cleaned up; ports typed
// by the interface are removed as well.
func (i *SenderReceiverInterface) Remove(deep bool) error {
	for _, de := range i.DataElements() {
		if err := de.Remove(deep); err != nil {
			return err
		}
	}
	return genericRemove(i.el, deep)
}

// ClientServerInterface is a port interface carrying callable operations.
// Use [Package.CreateClientServerInterface] to create one.
type ClientServerInterface struct{ elemBase }

// CreateOperation adds an operation with the given name to the interface.
func (i *ClientServerInterface) CreateOperation(name string) (*Operation, error) {
	ops, err := i.el.GetOrCreateChild(model.KindOperations)
	if err != nil {
		return nil, err
	}
	el, err := ops.CreateNamedChild(model.KindOperation, name)
	if err != nil {
		return nil, err
	}
	return &Operation{elemBase{el}}, nil
}

// Operations returns the operations of the interface in order.
func (i *ClientServerInterface) Operations() []*Operation {
	ops := i.el.ChildByKind(model.KindOperations)
	if ops == nil {
		return nil
	}
	var out []*Operation
	for _, c := range ops.ChildrenByKind(model.KindOperation) {
		out = append(out, &Operation{elemBase{c}})
	}
	return out
}

// Remove removes the interface from the model. Its operations are removed
// first; ports typed by the interface are removed as well.
func (i *ClientServerInterface) Remove(deep bool) error {
	for _, op := range i.Operations() {
		if err := op.Remove(deep); err != nil {
			return err
		}
	}
	return genericRemove(i.el, deep)
}

// DataElement is a typed data element of a [SenderReceiverInterface].
type DataElement struct{ elemBase }

// DataElementFrom wraps the given element as a [DataElement].
func DataElementFrom(el *model.Element) (*DataElement, error) {
	if el.Kind() != model.KindDataElement {
		return nil, conversionError(el, "DataElement")
	}
	return &DataElement{elemBase{el}}, nil
}

// Interface returns the sender receiver interface the data element
// belongs to.
func (d *DataElement) Interface() (*SenderReceiverInterface, bool) {
	parent := d.el.NamedParent()
	if parent == nil || parent.Kind() != model.KindSenderReceiverInterface {
		return nil, false
	}
	return &SenderReceiverInterface{elemBase{parent}}, true
}

// SetDataType sets the data type of the element.
func (d *DataElement) SetDataType(t DataType) error {
	return d.el.SetReference(refType, t.Elem())
}

// DataType returns the data type of the element.
func (d *DataElement) DataType() (DataType, bool) {
	target, err := d.el.Reference(refType)
	if err != nil {
		return nil, false
	}
	dt, err := DataTypeFrom(target)
	if err != nil {
		return nil, false
	}
	return dt, true
}

// Remove removes the data element from its interface. With deep, its data
// type is also removed if nothing else references it anymore. Signal
// mappings targeting the element are removed as well.
func (d *DataElement) Remove(deep bool) error {
	dt, hasType := d.DataType()
	parents, err := referenceParents(d.el)
	if err != nil {
		return err
	}
	if err := detach(d.el); err != nil {
		return err
	}
	if deep && hasType {
		if err := pruneIfUnused(dt); err != nil {
			return err
		}
	}
	return cleanupReferrers(parents, deep)
}

// Operation is a callable operation of a [ClientServerInterface].
type Operation struct{ elemBase }

// Remove removes the operation from its interface.
func (o *Operation) Remove(deep bool) error {
	return genericRemove(o.el, deep)
}
