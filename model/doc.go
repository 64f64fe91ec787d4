// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model implements the hierarchical element store underlying a
// system-architecture description: a tree of [Kind]-tagged elements, where
// identifiable elements are addressed by / separated identity paths and
// cross-subtree relations are typed reference fields resolved by path.
//
// The store maintains two indexes incrementally: a path index for direct
// lookup, and a reverse-reference index answering "which reference fields
// point at this path". The reverse index is what makes referentially safe
// removal affordable; it is updated on every reference write and on subtree
// removal, never by scanning the tree.
//
// The store knows nothing about the meaning of element kinds beyond
// identifiability. Domain semantics, including cascading removal and
// instance-chain resolution, live in the arch package built on top.
package model
