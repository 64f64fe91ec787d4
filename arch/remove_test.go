// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/sysarchio/sysarch/arch"
	"github.com/sysarchio/sysarch/model"
)

// noDangling asserts that no reference in the model still points at the
// given path.
func noDanglingTo(t *testing.T, m *Model, path string) {
	t.Helper()
	assert.Empty(t, m.Store().ReferencesTo(path), "dangling references to %s", path)
}

func TestRemoveUnitClearsReferrers(t *testing.T) {
	f := build(t)
	require.NoError(t, f.unit.Remove(false))

	// The primitive type survives with only the unit reference cleared.
	assert.False(t, f.prim.Elem().Detached())
	_, ok := f.prim.Unit()
	assert.False(t, ok)
	noDanglingTo(t, f.m, "/Demo/Volt")
}

func TestRemoveDataTypeRemovesDataElements(t *testing.T) {
	f := build(t)
	arr, err := f.pkg.CreateArrayType("VoltArray", f.prim)
	require.NoError(t, err)
	rec, err := f.pkg.CreateRecordType("Sample")
	require.NoError(t, err)
	fld, err := rec.CreateRecordElement("Value", f.prim)
	require.NoError(t, err)

	require.NoError(t, f.prim.Remove(false))

	// Data elements and type descriptors carrying the type go with it;
	// their parents survive.
	assert.True(t, f.de.Elem().Detached())
	assert.False(t, f.iface.Elem().Detached())
	assert.True(t, fld.Elem().Detached())
	assert.False(t, rec.Elem().Detached())
	desc, ok := arr.ArrayElement()
	assert.False(t, ok, "descriptor still present: %v", desc)
	assert.False(t, arr.Elem().Detached())
	noDanglingTo(t, f.m, "/Demo/Voltage")
}

func TestRemoveInterfaceRemovesPorts(t *testing.T) {
	f := build(t)
	require.NoError(t, f.iface.Remove(false))

	assert.True(t, f.port.Elem().Detached())
	assert.True(t, f.de.Elem().Detached())
	assert.False(t, f.appA.Elem().Detached())
	assert.Empty(t, f.appA.Ports())
	noDanglingTo(t, f.m, "/Demo/I")
}

func TestRemoveComponentTypeRemovesPrototypes(t *testing.T) {
	f := build(t)
	require.NoError(t, f.appA.Remove(false))

	assert.True(t, f.protoA.Elem().Detached())
	assert.False(t, f.mid.Elem().Detached())
	assert.Empty(t, f.mid.Components())
	noDanglingTo(t, f.m, "/Demo/A")

	// Cleaning up an already removed prototype again is a silent no-op.
	require.NoError(t, f.protoA.Remove(false))
}

func TestRemoveCompositionCascades(t *testing.T) {
	f := build(t)
	require.NoError(t, f.mid.Remove(false))

	assert.True(t, f.protoA.Elem().Detached())
	assert.True(t, f.protoMid.Elem().Detached())
	assert.False(t, f.rootC.Elem().Detached())
	assert.False(t, f.appA.Elem().Detached())
	noDanglingTo(t, f.m, "/Demo/Mid")
}

func TestShallowRemoveKeepsSharedLeaves(t *testing.T) {
	f := build(t)
	require.NoError(t, f.prim.Remove(false))

	assert.False(t, f.unit.Elem().Detached())
	noDanglingTo(t, f.m, "/Demo/Voltage")
}

func TestDeepRemovePrunesUnusedLeaves(t *testing.T) {
	f := build(t)
	cm, err := f.pkg.CreateCompuMethod("Scale")
	require.NoError(t, err)
	require.NoError(t, cm.SetUnit(f.unit))
	require.NoError(t, f.prim.SetCompuMethod(cm))

	require.NoError(t, f.prim.Remove(true))

	// The compu method was only used by the removed type; the unit it
	// referenced in turn becomes unused and is pruned as well.
	assert.True(t, cm.Elem().Detached())
	assert.True(t, f.unit.Elem().Detached())
}

func TestDeepRemoveKeepsUsedLeaves(t *testing.T) {
	f := build(t)
	other, err := f.pkg.CreatePrimitiveType("Current", PrimitiveValue, nil, f.unit, nil)
	require.NoError(t, err)

	require.NoError(t, f.prim.Remove(true))
	assert.False(t, f.unit.Elem().Detached())
	assert.True(t, IsUsed(f.unit))

	require.NoError(t, other.Remove(true))
	assert.True(t, f.unit.Elem().Detached())
}

func TestDeepRemoveDataElementPrunesType(t *testing.T) {
	f := build(t)
	require.NoError(t, f.de.Remove(true))

	// The data element was the type's only user; the unit stays behind
	// only while the type needs it.
	assert.True(t, f.prim.Elem().Detached())
	assert.True(t, f.unit.Elem().Detached())
	assert.False(t, f.iface.Elem().Detached())
}

func TestIsUsed(t *testing.T) {
	f := build(t)
	assert.True(t, IsUsed(f.unit))
	assert.True(t, IsUsed(f.prim))
	assert.False(t, IsUsed(f.sig))

	require.NoError(t, f.prim.Remove(false))
	assert.False(t, IsUsed(f.unit))
	assert.False(t, IsUsed(f.prim))
}

func TestRemovePackage(t *testing.T) {
	f := build(t)
	sub, err := f.pkg.CreateSubpackage("Sub")
	require.NoError(t, err)
	subUnit, err := sub.CreateUnit("Ampere")
	require.NoError(t, err)

	require.NoError(t, f.pkg.Remove(false))
	assert.True(t, f.pkg.Elem().Detached())
	assert.True(t, sub.Elem().Detached())
	assert.True(t, subUnit.Elem().Detached())
	assert.Equal(t, 0, f.m.Store().NumElements())
	assert.False(t, f.m.Store().Root().HasChildren())
}

func TestRemoveRootRejected(t *testing.T) {
	m := New()
	assert.ErrorIs(t, m.Store().Root().Remove(), model.ErrRemoveRoot)
}
