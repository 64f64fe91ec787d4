// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "strconv"

// Kind identifies the class of an [Element]. The set of kinds is closed;
// structural code throughout this module switches exhaustively over it, so
// a new kind must be threaded through those switches before it can be used.
type Kind int32

const (
	// KindNone is the zero value and never appears in a model.
	KindNone Kind = iota

	// KindRoot is the kind of the single root element owned by a [Model].
	KindRoot

	// Structural container kinds. Containers are never identifiable; they
	// group children of one class below an identifiable element and
	// contribute nothing to paths.

	// KindElements groups the elements owned by a package, and the field
	// descriptors of a record data type.
	KindElements

	// KindPackages groups the subpackages of a package.
	KindPackages

	// KindComponents groups the component prototypes of a composition.
	KindComponents

	// KindPorts groups the ports of a component type.
	KindPorts

	// KindDataElements groups the data elements of a sender/receiver
	// interface.
	KindDataElements

	// KindOperations groups the operations of a client/server interface.
	KindOperations

	// KindRootCompositions groups the root composition prototypes of a
	// system.
	KindRootCompositions

	// KindMappings groups the system mappings of a system.
	KindMappings

	// KindComponentMappings groups the component-to-node mapping records
	// of a system mapping.
	KindComponentMappings

	// KindDataMappings groups the data-element-to-signal mapping records
	// of a system mapping.
	KindDataMappings

	// KindSignalMapping is a data-element-to-signal mapping record. The
	// record is anonymous: it exists only to hold an ordered group of
	// references and is addressed through its enclosing system mapping.
	KindSignalMapping

	// Identifiable kinds. Elements of these kinds carry a name that is
	// unique among the named elements below the same identifiable
	// ancestor, and are addressable by path.

	// KindPackage is a package, the basic grouping element of a model.
	KindPackage

	// KindSystem describes one complete system configuration.
	KindSystem

	// KindSystemMapping holds the mapping records of a system.
	KindSystemMapping

	// KindComponentToNodeMapping maps a component prototype to the
	// hardware node that executes it.
	KindComponentToNodeMapping

	// KindRootCompositionPrototype designates a composition type as the
	// root of a system's composition hierarchy.
	KindRootCompositionPrototype

	// KindComposition is a component type that contains other components.
	KindComposition

	// KindApplicationComponent is an atomic application component type.
	KindApplicationComponent

	// KindServiceComponent is an atomic service component type.
	KindServiceComponent

	// KindSensorActuatorComponent is an atomic sensor/actuator component
	// type.
	KindSensorActuatorComponent

	// KindComponentPrototype is one instantiation of a component type
	// inside a composition.
	KindComponentPrototype

	// KindProvidedPort, KindRequiredPort and KindProvidedRequiredPort are
	// the port prototypes of a component type.
	KindProvidedPort
	KindRequiredPort
	KindProvidedRequiredPort

	// KindSenderReceiverInterface is a port interface carrying data
	// elements.
	KindSenderReceiverInterface

	// KindClientServerInterface is a port interface carrying operations.
	KindClientServerInterface

	// KindDataElement is a data element of a sender/receiver interface.
	KindDataElement

	// KindOperation is an operation of a client/server interface.
	KindOperation

	// KindPrimitiveType, KindArrayType and KindRecordType are the data
	// types of the model.
	KindPrimitiveType
	KindArrayType
	KindRecordType

	// KindArrayElement is the element descriptor of an array data type.
	KindArrayElement

	// KindRecordElement is a field descriptor of a record data type.
	KindRecordElement

	// KindUnit, KindDataConstraint and KindCompuMethod are shared leaf
	// definitions referenced by primitive data types.
	KindUnit
	KindDataConstraint
	KindCompuMethod

	// KindSignal is a system signal.
	KindSignal

	// KindHardwareNode is a hardware execution node.
	KindHardwareNode

	kindCount
)

var kindNames = []string{
	"None",
	"Root",
	"Elements",
	"Packages",
	"Components",
	"Ports",
	"DataElements",
	"Operations",
	"RootCompositions",
	"Mappings",
	"ComponentMappings",
	"DataMappings",
	"SignalMapping",
	"Package",
	"System",
	"SystemMapping",
	"ComponentToNodeMapping",
	"RootCompositionPrototype",
	"Composition",
	"ApplicationComponent",
	"ServiceComponent",
	"SensorActuatorComponent",
	"ComponentPrototype",
	"ProvidedPort",
	"RequiredPort",
	"ProvidedRequiredPort",
	"SenderReceiverInterface",
	"ClientServerInterface",
	"DataElement",
	"Operation",
	"PrimitiveType",
	"ArrayType",
	"RecordType",
	"ArrayElement",
	"RecordElement",
	"Unit",
	"DataConstraint",
	"CompuMethod",
	"Signal",
	"HardwareNode",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Identifiable reports whether elements of this kind carry a name and are
// addressable by path.
func (k Kind) Identifiable() bool {
	return k >= KindPackage && k < kindCount
}
