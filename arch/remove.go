// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import (
	"errors"
	"fmt"

	"github.com/sysarchio/sysarch/model"
)

// refParent records one inbound reference to an element that is about to
// be removed. holder is the element carrying the reference and named is
// the identifiable element the cleanup decision is made for; the two
// differ only when the reference sits on an anonymous record.
type refParent struct {
	named   *model.Element
	holder  *model.Element
	refName string
	path    string
}

// referenceParents captures the inbound references of el before it is
// detached. A detached element has no inbound references.
func referenceParents(el *model.Element) ([]refParent, error) {
	path, err := el.Path()
	if err != nil {
		if errors.Is(err, model.ErrDetached) {
			return nil, nil
		}
		return nil, err
	}
	var out []refParent
	for _, src := range el.Model().ReferencesTo(path) {
		named := src.Holder
		if !named.Kind().Identifiable() {
			named = src.Holder.NamedParent()
			if named == nil {
				continue
			}
		}
		out = append(out, refParent{named: named, holder: src.Holder, refName: src.RefName, path: path})
	}
	return out, nil
}

// detach removes el from the store. An already detached element is left
// alone, so cascading cleanup paths that reach the same element twice
// stay silent.
func detach(el *model.Element) error {
	err := el.Remove()
	if errors.Is(err, model.ErrDetached) {
		return nil
	}
	return err
}

// genericRemove is the removal path shared by elements without owned
// dependents: capture the inbound references, detach, then clean up the
// referrers.
func genericRemove(el *model.Element, deep bool) error {
	parents, err := referenceParents(el)
	if err != nil {
		return err
	}
	if err := detach(el); err != nil {
		return err
	}
	return cleanupReferrers(parents, deep)
}

func cleanupReferrers(parents []refParent, deep bool) error {
	for _, rp := range parents {
		if err := cleanupReferrer(rp, deep); err != nil {
			return err
		}
	}
	return nil
}

// cleanupReferrer repairs one referrer after its target was detached.
// Referrers that exist only to carry the reference are removed whole;
// referrers with an independent purpose keep everything except the
// dangling reference. A referrer that an earlier cleanup step already
// detached needs nothing.
func cleanupReferrer(rp refParent, deep bool) error {
	if rp.named.Detached() {
		return nil
	}
	switch rp.named.Kind() {
	case model.KindComponentPrototype,
		model.KindRootCompositionPrototype,
		model.KindProvidedPort,
		model.KindRequiredPort,
		model.KindProvidedRequiredPort,
		model.KindDataElement,
		model.KindArrayElement,
		model.KindRecordElement,
		model.KindComponentToNodeMapping:
		w, err := wrapRemovable(rp.named)
		if err != nil {
			return err
		}
		return w.Remove(deep)
	case model.KindSystemMapping:
		if rp.holder.Kind() == model.KindSignalMapping {
			return detach(rp.holder)
		}
		rp.holder.ClearReferenceTo(rp.refName, rp.path)
		return nil
	case model.KindPrimitiveType, model.KindCompuMethod:
		rp.holder.ClearReferenceTo(rp.refName, rp.path)
		return nil
	default:
		return fmt.Errorf("cleanup of dangling reference %q: unhandled referrer kind %s", rp.refName, rp.named.Kind())
	}
}

// wrapRemovable wraps an identifiable element in the removable wrapper
// matching its kind.
func wrapRemovable(el *model.Element) (removable, error) {
	switch el.Kind() {
	case model.KindPackage:
		return &Package{elemBase{el}}, nil
	case model.KindSystem:
		return &System{elemBase{el}}, nil
	case model.KindSystemMapping:
		return &SystemMapping{elemBase{el}}, nil
	case model.KindComponentToNodeMapping:
		return &ComponentToNodeMapping{elemBase{el}}, nil
	case model.KindRootCompositionPrototype:
		return &RootCompositionPrototype{elemBase{el}}, nil
	case model.KindComposition:
		return &CompositionType{componentBase{elemBase{el}}}, nil
	case model.KindApplicationComponent:
		return &ApplicationComponentType{componentBase{elemBase{el}}}, nil
	case model.KindServiceComponent:
		return &ServiceComponentType{componentBase{elemBase{el}}}, nil
	case model.KindSensorActuatorComponent:
		return &SensorActuatorComponentType{componentBase{elemBase{el}}}, nil
	case model.KindComponentPrototype:
		return &ComponentPrototype{elemBase{el}}, nil
	case model.KindProvidedPort, model.KindRequiredPort, model.KindProvidedRequiredPort:
		return &Port{elemBase{el}}, nil
	case model.KindSenderReceiverInterface:
		return &SenderReceiverInterface{elemBase{el}}, nil
	case model.KindClientServerInterface:
		return &ClientServerInterface{elemBase{el}}, nil
	case model.KindDataElement:
		return &DataElement{elemBase{el}}, nil
	case model.KindOperation:
		return &Operation{elemBase{el}}, nil
	case model.KindPrimitiveType:
		return &PrimitiveType{elemBase{el}}, nil
	case model.KindArrayType:
		return &ArrayType{elemBase{el}}, nil
	case model.KindRecordType:
		return &RecordType{elemBase{el}}, nil
	case model.KindArrayElement:
		return &ArrayElement{elemBase{el}}, nil
	case model.KindRecordElement:
		return &RecordElement{elemBase{el}}, nil
	case model.KindUnit:
		return &Unit{elemBase{el}}, nil
	case model.KindDataConstraint:
		return &DataConstraint{elemBase{el}}, nil
	case model.KindCompuMethod:
		return &CompuMethod{elemBase{el}}, nil
	case model.KindSignal:
		return &Signal{elemBase{el}}, nil
	case model.KindHardwareNode:
		return &HardwareNode{elemBase{el}}, nil
	default:
		return nil, conversionError(el, "removable")
	}
}

// isUsed reports whether any reference in the model points at el. A
// detached element is never used.
func isUsed(el *model.Element) bool {
	if el.Detached() {
		return false
	}
	path, err := el.Path()
	if err != nil {
		return false
	}
	return len(el.Model().ReferencesTo(path)) > 0
}

// IsUsed reports whether any reference in the model points at the wrapped
// element.
func IsUsed(w Wrapper) bool {
	return isUsed(w.Elem())
}

// pruneIfUnused removes a shared definition once nothing references it
// anymore. Used during deep removal on the units, constraints, compu
// methods and data types a removed element pointed at.
func pruneIfUnused(w removable) error {
	if isUsed(w.Elem()) {
		return nil
	}
	return w.Remove(true)
}
