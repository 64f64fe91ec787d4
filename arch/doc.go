// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arch provides the typed abstraction layer over the element
// store in [github.com/sysarchio/sysarch/model]. Wrappers such as
// [Package], [CompositionType] and [SystemMapping] give each element kind
// a focused API, enforce the structural rules of the domain, and keep the
// model free of dangling references when elements are removed.
//
// Removal is the central service of the package. Every wrapper's Remove
// takes a deep flag: a shallow removal detaches the element and repairs
// the elements that referenced it, a deep removal additionally prunes the
// shared definitions (units, constraints, compu methods, data types) the
// removed element pointed at, if nothing else references them anymore.
// Referrers that exist only to carry the broken reference are removed
// whole; referrers with an independent purpose keep everything except
// the dangling reference.
package arch
