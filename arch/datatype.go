// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import (
	"github.com/sysarchio/sysarch/model"
)

// PrimitiveCategory describes the value space of a primitive data type.
type PrimitiveCategory string

const (
	PrimitiveValue   PrimitiveCategory = "VALUE"
	PrimitiveBoolean PrimitiveCategory = "BOOLEAN"
	PrimitiveString  PrimitiveCategory = "STRING"
)

// DataType is implemented by the data types of the model: [PrimitiveType],
// [ArrayType] and [RecordType].
type DataType interface {
	Wrapper
	Remove(deep bool) error
	isDataType()
}

func (t *PrimitiveType) isDataType() {}
func (t *ArrayType) isDataType()     {}
func (t *RecordType) isDataType()    {}

// DataTypeFrom wraps the given element as the matching [DataType].
func DataTypeFrom(el *model.Element) (DataType, error) {
	switch el.Kind() {
	case model.KindPrimitiveType:
		return &PrimitiveType{elemBase{el}}, nil
	case model.KindArrayType:
		return &ArrayType{elemBase{el}}, nil
	case model.KindRecordType:
		return &RecordType{elemBase{el}}, nil
	default:
		return nil, conversionError(el, "DataType")
	}
}

// PrimitiveType is a primitive data type. It may reference up to three
// shared leaf definitions: a compu method, a unit and a data constraint.
// Use [Package.CreatePrimitiveType] to create one.
type PrimitiveType struct{ elemBase }

// Category returns the primitive category of the data type.
func (t *PrimitiveType) Category() PrimitiveCategory {
	cat, _ := t.el.Prop(propCategory).(string)
	return PrimitiveCategory(cat)
}

// SetCompuMethod sets or, for nil, clears the compu method reference.
func (t *PrimitiveType) SetCompuMethod(cm *CompuMethod) error {
	if cm == nil {
		t.el.ClearReference(refCompuMethod)
		return nil
	}
	return t.el.SetReference(refCompuMethod, cm.el)
}

// CompuMethod returns the referenced compu method, if any.
func (t *PrimitiveType) CompuMethod() (*CompuMethod, bool) {
	target, err := t.el.Reference(refCompuMethod)
	if err != nil {
		return nil, false
	}
	return &CompuMethod{elemBase{target}}, true
}

// SetUnit sets or, for nil, clears the unit reference.
func (t *PrimitiveType) SetUnit(unit *Unit) error {
	if unit == nil {
		t.el.ClearReference(refUnit)
		return nil
	}
	return t.el.SetReference(refUnit, unit.el)
}

// Unit returns the referenced unit, if any.
func (t *PrimitiveType) Unit() (*Unit, bool) {
	target, err := t.el.Reference(refUnit)
	if err != nil {
		return nil, false
	}
	return &Unit{elemBase{target}}, true
}

// SetDataConstraint sets or, for nil, clears the data constraint reference.
func (t *PrimitiveType) SetDataConstraint(dc *DataConstraint) error {
	if dc == nil {
		t.el.ClearReference(refDataConstraint)
		return nil
	}
	return t.el.SetReference(refDataConstraint, dc.el)
}

// DataConstraint returns the referenced data constraint, if any.
func (t *PrimitiveType) DataConstraint() (*DataConstraint, bool) {
	target, err := t.el.Reference(refDataConstraint)
	if err != nil {
		return nil, false
	}
	return &DataConstraint{elemBase{target}}, true
}

// Remove removes the primitive data type from the model. With deep, the
// compu method, unit and data constraint it referenced are also removed if
// nothing else references them anymore.
func (t *PrimitiveType) Remove(deep bool) error {
	cm, hasCM := t.CompuMethod()
	unit, hasUnit := t.Unit()
	dc, hasDC := t.DataConstraint()
	parents, err := referenceParents(t.el)
	if err != nil {
		return err
	}
	if err := detach(t.el); err != nil {
		return err
	}
	if deep {
		if hasCM {
			if err := pruneIfUnused(cm); err != nil {
				return err
			}
		}
		if hasUnit {
			if err := pruneIfUnused(unit); err != nil {
				return err
			}
		}
		if hasDC {
			if err := pruneIfUnused(dc); err != nil {
				return err
			}
		}
	}
	return cleanupReferrers(parents, deep)
}

// ArrayType is an array data type. Its element descriptor, created together
// with the type, references the element data type. Use
// [Package.CreateArrayType] to create one.
type ArrayType struct{ elemBase }

// ArrayElement returns the array's element descriptor.
func (t *ArrayType) ArrayElement() (*ArrayElement, bool) {
	el := t.el.ChildByKind(model.KindArrayElement)
	if el == nil {
		return nil, false
	}
	return &ArrayElement{elemBase{el}}, true
}

// Remove removes the array data type from the model, removing the element
// descriptor first so that its own references are cleaned up.
func (t *ArrayType) Remove(deep bool) error {
	if desc, ok := t.ArrayElement(); ok {
		if err := desc.Remove(deep); err != nil {
			return err
		}
	}
	parents, err := referenceParents(t.el)
	if err != nil {
		return err
	}
	if err := detach(t.el); err != nil {
		return err
	}
	return cleanupReferrers(parents, deep)
}

// ArrayElement is the element descriptor of an [ArrayType].
type ArrayElement struct{ elemBase }

// SetDataType sets the element data type of the descriptor.
func (e *ArrayElement) SetDataType(t DataType) error {
	return e.el.SetReference(refType, t.Elem())
}

// DataType returns the element data type of the descriptor.
func (e *ArrayElement) DataType() (DataType, bool) {
	target, err := e.el.Reference(refType)
	if err != nil {
		return nil, false
	}
	dt, err := DataTypeFrom(target)
	if err != nil {
		return nil, false
	}
	return dt, true
}

// Remove removes the element descriptor. With deep, the element data type
// is also removed if nothing else references it anymore.
func (e *ArrayElement) Remove(deep bool) error {
	dt, hasType := e.DataType()
	parents, err := referenceParents(e.el)
	if err != nil {
		return err
	}
	if err := detach(e.el); err != nil {
		return err
	}
	if deep && hasType {
		if err := pruneIfUnused(dt); err != nil {
			return err
		}
	}
	return cleanupReferrers(parents, deep)
}

// RecordType is a record data type with one field descriptor per field.
// Use [Package.CreateRecordType] to create one.
type RecordType struct{ elemBase }

// CreateRecordElement adds a field descriptor with the given name and data
// type to the record.
func (t *RecordType) CreateRecordElement(name string, dataType DataType) (*RecordElement, error) {
	els, err := t.el.GetOrCreateChild(model.KindElements)
	if err != nil {
		return nil, err
	}
	el, err := els.CreateNamedChild(model.KindRecordElement, name)
	if err != nil {
		return nil, err
	}
	if err := el.SetReference(refType, dataType.Elem()); err != nil {
		return nil, err
	}
	return &RecordElement{elemBase{el}}, nil
}

// RecordElements returns the field descriptors of the record in order.
func (t *RecordType) RecordElements() []*RecordElement {
	els := t.el.ChildByKind(model.KindElements)
	if els == nil {
		return nil
	}
	var out []*RecordElement
	for _, c := range els.ChildrenByKind(model.KindRecordElement) {
		out = append(out, &RecordElement{elemBase{c}})
	}
	return out
}

// Remove removes the record data type from the model, removing the field
// descriptors first so that their own references are cleaned up.
func (t *RecordType) Remove(deep bool) error {
	for _, fd := range t.RecordElements() {
		if err := fd.Remove(deep); err != nil {
			return err
		}
	}
	parents, err := referenceParents(t.el)
	if err != nil {
		return err
	}
	if err := detach(t.el); err != nil {
		return err
	}
	return cleanupReferrers(parents, deep)
}

// RecordElement is a field descriptor of a [RecordType].
type RecordElement struct{ elemBase }

// SetDataType sets the field data type of the descriptor.
func (e *RecordElement) SetDataType(t DataType) error {
	return e.el.SetReference(refType, t.Elem())
}

// DataType returns the field data type of the descriptor.
func (e *RecordElement) DataType() (DataType, bool) {
	target, err := e.el.Reference(refType)
	if err != nil {
		return nil, false
	}
	dt, err := DataTypeFrom(target)
	if err != nil {
		return nil, false
	}
	return dt, true
}

// Remove removes the field descriptor. With deep, the field data type is
// also removed if nothing else references it anymore.
func (e *RecordElement) Remove(deep bool) error {
	dt, hasType := e.DataType()
	parents, err := referenceParents(e.el)
	if err != nil {
		return err
	}
	if err := detach(e.el); err != nil {
		return err
	}
	if deep && hasType {
		if err := pruneIfUnused(dt); err != nil {
			return err
		}
	}
	return cleanupReferrers(parents, deep)
}

// Unit is a shared physical unit definition referenced by primitive data
// types and compu methods.
type Unit struct{ elemBase }

// Remove removes the unit from the model. Referencing primitive types and
// compu methods keep everything except the dangling unit reference.
func (u *Unit) Remove(deep bool) error {
	return genericRemove(u.el, deep)
}

// DataConstraint is a shared value constraint definition referenced by
// primitive data types.
type DataConstraint struct{ elemBase }

// Remove removes the data constraint from the model.
func (d *DataConstraint) Remove(deep bool) error {
	return genericRemove(d.el, deep)
}

// CompuMethod is a shared computation method definition referenced by
// primitive data types. It may itself reference a [Unit].
type CompuMethod struct{ elemBase }

// SetUnit sets or, for nil, clears the unit reference of the compu method.
func (c *CompuMethod) SetUnit(unit *Unit) error {
	if unit == nil {
		c.el.ClearReference(refUnit)
		return nil
	}
	return c.el.SetReference(refUnit, unit.el)
}

// Unit returns the referenced unit, if any.
func (c *CompuMethod) Unit() (*Unit, bool) {
	target, err := c.el.Reference(refUnit)
	if err != nil {
		return nil, false
	}
	return &Unit{elemBase{target}}, true
}

// Remove removes the compu method from the model. With deep, its unit is
// also removed if nothing else references it anymore.
func (c *CompuMethod) Remove(deep bool) error {
	unit, hasUnit := c.Unit()
	parents, err := referenceParents(c.el)
	if err != nil {
		return err
	}
	if err := detach(c.el); err != nil {
		return err
	}
	if deep && hasUnit {
		if err := pruneIfUnused(unit); err != nil {
			return err
		}
	}
	return cleanupReferrers(parents, deep)
}
