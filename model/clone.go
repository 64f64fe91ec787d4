// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"log/slog"
	"slices"

	"github.com/jinzhu/copier"
)

// Clone returns a detached deep copy of the element and its subtree. The
// copies receive fresh UUIDs. Reference fields keep their stored target
// paths, so references into the original tree resolve to the original
// targets once the clone is attached with [Element.AdoptChild]; references
// between elements of the cloned subtree must be rewritten by the caller if
// the clone is attached under a different path.
func (e *Element) Clone() *Element {
	nc := newElement(nil, e.kind, e.name)
	if e.Props != nil {
		if err := copier.CopyWithOption(&nc.Props, &e.Props, copier.Option{DeepCopy: true}); err != nil {
			slog.Error("model.Element.Clone: property copy failed", "element", e, "err", err)
		}
	}
	nc.refs = slices.Clone(e.refs)
	for _, c := range e.children {
		cc := c.Clone()
		cc.parent = nc
		nc.children = append(nc.children, cc)
	}
	return nc
}
