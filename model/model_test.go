// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/sysarchio/sysarch/model"
)

func TestCreateNamedChild(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	assert.Equal(t, "Pkg", pkg.Name())
	assert.Equal(t, m.Root(), pkg.Parent())
	assert.Equal(t, m, pkg.Model())

	path, err := pkg.Path()
	require.NoError(t, err)
	assert.Equal(t, "/Pkg", path)

	got, ok := m.ElementAt("/Pkg")
	require.True(t, ok)
	assert.Equal(t, pkg, got)
	assert.Equal(t, 1, m.NumElements())
}

func TestRootPath(t *testing.T) {
	m := New()
	path, err := m.Root().Path()
	require.NoError(t, err)
	assert.Equal(t, "/", path)

	got, ok := m.ElementAt("/")
	require.True(t, ok)
	assert.Equal(t, m.Root(), got)
}

func TestContainersDoNotAppearInPaths(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	els, err := pkg.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	sig, err := els.CreateNamedChild(KindSignal, "Sig")
	require.NoError(t, err)

	path, err := sig.Path()
	require.NoError(t, err)
	assert.Equal(t, "/Pkg/Sig", path)

	_, err = els.Path()
	assert.ErrorIs(t, err, ErrNotIdentifiable)
	assert.Equal(t, pkg, sig.NamedParent())
}

func TestGetOrCreateChild(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	a, err := pkg.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	b, err := pkg.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, pkg.NumChildren())
}

func TestDuplicateNameRejected(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	els, err := pkg.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	_, err = els.CreateNamedChild(KindSignal, "Sig")
	require.NoError(t, err)

	// Same identity name below the same named ancestor, even from a
	// different container, collides.
	_, err = els.CreateNamedChild(KindUnit, "Sig")
	assert.ErrorIs(t, err, ErrDuplicateName)
	pkgs, err := pkg.GetOrCreateChild(KindPackages)
	require.NoError(t, err)
	_, err = pkgs.CreateNamedChild(KindPackage, "Sig")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestInvalidNames(t *testing.T) {
	m := New()
	for _, name := range []string{"", "a/b", "a b", "a\tb", "a\nb"} {
		_, err := m.Root().CreateNamedChild(KindPackage, name)
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
}

func TestCreateChildKindChecks(t *testing.T) {
	m := New()
	_, err := m.Root().CreateChild(KindPackage)
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = m.Root().CreateNamedChild(KindElements, "X")
	assert.ErrorIs(t, err, ErrNotIdentifiable)
}

func TestRemoveRootRejected(t *testing.T) {
	m := New()
	assert.ErrorIs(t, m.Root().Remove(), ErrRemoveRoot)
}

func TestRemoveScrubsIndexes(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	els, err := pkg.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	unit, err := els.CreateNamedChild(KindUnit, "Volt")
	require.NoError(t, err)
	prim, err := els.CreateNamedChild(KindPrimitiveType, "Voltage")
	require.NoError(t, err)
	require.NoError(t, prim.SetReference("unit", unit))

	require.NoError(t, prim.Remove())
	assert.True(t, prim.Detached())
	assert.Nil(t, prim.Parent())
	_, ok := m.ElementAt("/Pkg/Voltage")
	assert.False(t, ok)

	// The removed element's outgoing reference is withdrawn from the
	// reverse index.
	assert.Empty(t, m.ReferencesTo("/Pkg/Volt"))

	// Removing again reports the detached state.
	assert.ErrorIs(t, prim.Remove(), ErrDetached)
}

func TestRemoveSubtree(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	pkgs, err := pkg.GetOrCreateChild(KindPackages)
	require.NoError(t, err)
	sub, err := pkgs.CreateNamedChild(KindPackage, "Sub")
	require.NoError(t, err)
	els, err := sub.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	sig, err := els.CreateNamedChild(KindSignal, "Sig")
	require.NoError(t, err)

	require.NoError(t, pkg.Remove())
	for _, e := range []*Element{pkg, pkgs, sub, els, sig} {
		assert.True(t, e.Detached())
	}
	assert.Equal(t, 0, m.NumElements())
	assert.False(t, m.Root().HasChildren())
}

func TestReferences(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	els, err := pkg.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	unit, err := els.CreateNamedChild(KindUnit, "Volt")
	require.NoError(t, err)
	prim, err := els.CreateNamedChild(KindPrimitiveType, "Voltage")
	require.NoError(t, err)

	require.NoError(t, prim.SetReference("unit", unit))
	got, err := prim.Reference("unit")
	require.NoError(t, err)
	assert.Equal(t, unit, got)

	srcs := m.ReferencesTo("/Pkg/Volt")
	require.Len(t, srcs, 1)
	assert.Equal(t, prim, srcs[0].Holder)
	assert.Equal(t, "unit", srcs[0].RefName)

	// Replacing the field keeps the index in step.
	unit2, err := els.CreateNamedChild(KindUnit, "Millivolt")
	require.NoError(t, err)
	require.NoError(t, prim.SetReference("unit", unit2))
	assert.Empty(t, m.ReferencesTo("/Pkg/Volt"))
	assert.Len(t, m.ReferencesTo("/Pkg/Millivolt"), 1)
	assert.Len(t, prim.References(), 1)
}

func TestReferenceErrors(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	els, err := pkg.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	prim, err := els.CreateNamedChild(KindPrimitiveType, "Voltage")
	require.NoError(t, err)

	_, err = prim.Reference("unit")
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	// A reference target must be identifiable and attached.
	assert.ErrorIs(t, prim.SetReference("unit", nil), ErrPathNotFound)
	err = prim.SetReference("unit", els)
	assert.ErrorIs(t, err, ErrNotIdentifiable)

	other := New()
	foreign, err := other.Root().CreateNamedChild(KindUnit, "Volt")
	require.NoError(t, err)
	assert.ErrorIs(t, prim.SetReference("unit", foreign), ErrDetached)
}

func TestDanglingReference(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	els, err := pkg.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	unit, err := els.CreateNamedChild(KindUnit, "Volt")
	require.NoError(t, err)
	prim, err := els.CreateNamedChild(KindPrimitiveType, "Voltage")
	require.NoError(t, err)
	require.NoError(t, prim.SetReference("unit", unit))

	require.NoError(t, unit.Remove())
	_, err = prim.Reference("unit")
	assert.ErrorIs(t, err, ErrPathNotFound)
	path, ok := prim.ReferencePath("unit")
	require.True(t, ok)
	assert.Equal(t, "/Pkg/Volt", path)

	assert.True(t, prim.ClearReferenceTo("unit", "/Pkg/Volt"))
	_, err = prim.Reference("unit")
	assert.ErrorIs(t, err, ErrReferenceNotFound)
	assert.False(t, prim.ClearReference("unit"))
}

func TestAddReferenceOrdered(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	els, err := pkg.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	rec, err := els.CreateNamedChild(KindComponentToNodeMapping, "Rec")
	require.NoError(t, err)
	a, err := els.CreateNamedChild(KindComponentPrototype, "A")
	require.NoError(t, err)
	b, err := els.CreateNamedChild(KindComponentPrototype, "B")
	require.NoError(t, err)

	require.NoError(t, rec.AddReference("context", a))
	require.NoError(t, rec.AddReference("context", b))
	refs := rec.References()
	require.Len(t, refs, 2)
	assert.Equal(t, "/Pkg/A", refs[0].Path)
	assert.Equal(t, "/Pkg/B", refs[1].Path)

	// The precise clear form removes only the matching entry.
	assert.True(t, rec.ClearReferenceTo("context", "/Pkg/A"))
	refs = rec.References()
	require.Len(t, refs, 1)
	assert.Equal(t, "/Pkg/B", refs[0].Path)
	assert.Empty(t, m.ReferencesTo("/Pkg/A"))
}

func TestWalkDown(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	els, err := pkg.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	_, err = els.CreateNamedChild(KindSignal, "A")
	require.NoError(t, err)
	_, err = els.CreateNamedChild(KindSignal, "B")
	require.NoError(t, err)

	var kinds []Kind
	m.Root().WalkDown(func(e *Element) bool {
		kinds = append(kinds, e.Kind())
		return Continue
	})
	assert.Equal(t, []Kind{KindRoot, KindPackage, KindElements, KindSignal, KindSignal}, kinds)

	// Break prunes the branch below the container.
	kinds = nil
	m.Root().WalkDown(func(e *Element) bool {
		kinds = append(kinds, e.Kind())
		return e.Kind() != KindElements
	})
	assert.Equal(t, []Kind{KindRoot, KindPackage, KindElements}, kinds)
}

func TestWalkUp(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	els, err := pkg.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	sig, err := els.CreateNamedChild(KindSignal, "Sig")
	require.NoError(t, err)

	var kinds []Kind
	finished := sig.WalkUp(func(e *Element) bool {
		kinds = append(kinds, e.Kind())
		return Continue
	})
	assert.True(t, finished)
	assert.Equal(t, []Kind{KindSignal, KindElements, KindPackage, KindRoot}, kinds)
}

func TestCloneAndAdopt(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	els, err := pkg.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	unit, err := els.CreateNamedChild(KindUnit, "Volt")
	require.NoError(t, err)
	prim, err := els.CreateNamedChild(KindPrimitiveType, "Voltage")
	require.NoError(t, err)
	prim.SetProp("category", "VALUE")
	require.NoError(t, prim.SetReference("unit", unit))

	clone := prim.Clone()
	assert.True(t, clone.Detached())
	assert.NotEqual(t, prim.UUID(), clone.UUID())
	assert.Equal(t, "VALUE", clone.Prop("category"))

	// The clone cannot land on the original's path.
	assert.ErrorIs(t, els.AdoptChild(clone), ErrDuplicateName)

	other, err := m.Root().CreateNamedChild(KindPackage, "Other")
	require.NoError(t, err)
	oels, err := other.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	require.NoError(t, oels.AdoptChild(clone))
	path, err := clone.Path()
	require.NoError(t, err)
	assert.Equal(t, "/Other/Voltage", path)

	// The adopted clone's reference resolves to the original target and
	// is registered in the reverse index.
	got, err := clone.Reference("unit")
	require.NoError(t, err)
	assert.Equal(t, unit, got)
	assert.Len(t, m.ReferencesTo("/Pkg/Volt"), 2)

	// Prop maps are independent after the deep copy.
	clone.SetProp("category", "BOOLEAN")
	assert.Equal(t, "VALUE", prim.Prop("category"))
}

func TestAdoptChildChecks(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	els, err := pkg.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	sig, err := els.CreateNamedChild(KindSignal, "Sig")
	require.NoError(t, err)

	// Attached elements cannot be adopted a second time.
	assert.ErrorIs(t, m.Root().AdoptChild(sig), ErrAttached)
}

func TestSchemaVersion(t *testing.T) {
	m := New()
	assert.Equal(t, "1.0.0", m.SchemaVersion().String())
	require.NoError(t, m.SetSchemaVersion("1.2.0"))
	assert.Equal(t, "1.2.0", m.SchemaVersion().String())
	assert.Error(t, m.SetSchemaVersion("not-a-version"))
}

func TestSnapshotYAML(t *testing.T) {
	m := New()
	pkg, err := m.Root().CreateNamedChild(KindPackage, "Pkg")
	require.NoError(t, err)
	els, err := pkg.GetOrCreateChild(KindElements)
	require.NoError(t, err)
	unit, err := els.CreateNamedChild(KindUnit, "Volt")
	require.NoError(t, err)
	prim, err := els.CreateNamedChild(KindPrimitiveType, "Voltage")
	require.NoError(t, err)
	require.NoError(t, prim.SetReference("unit", unit))

	out, err := m.SnapshotYAML()
	require.NoError(t, err)
	s := string(out)
	assert.True(t, strings.Contains(s, "schemaVersion: 1.0.0"), s)
	assert.True(t, strings.Contains(s, "name: Voltage"), s)
	assert.True(t, strings.Contains(s, "path: /Pkg/Volt"), s)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Package", KindPackage.String())
	assert.True(t, KindPackage.Identifiable())
	assert.False(t, KindElements.Identifiable())
	assert.False(t, KindRoot.Identifiable())
}
