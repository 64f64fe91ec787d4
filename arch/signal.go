// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import "github.com/sysarchio/sysarch/model"

// Signal is a communication signal that data elements can be mapped to.
// Use [Package.CreateSignal] to create one.
type Signal struct{ elemBase }

// SignalFrom wraps the given element as a [Signal].
func SignalFrom(el *model.Element) (*Signal, error) {
	if el.Kind() != model.KindSignal {
		return nil, conversionError(el, "Signal")
	}
	return &Signal{elemBase{el}}, nil
}

// Remove removes the signal from the model. Signal mappings carrying the
// signal are removed as well.
func (s *Signal) Remove(deep bool) error {
	return genericRemove(s.el, deep)
}

// HardwareNode is an execution node that component prototypes can be
// mapped to. Use [Package.CreateHardwareNode] to create one.
type HardwareNode struct{ elemBase }

// HardwareNodeFrom wraps the given element as a [HardwareNode].
func HardwareNodeFrom(el *model.Element) (*HardwareNode, error) {
	if el.Kind() != model.KindHardwareNode {
		return nil, conversionError(el, "HardwareNode")
	}
	return &HardwareNode{elemBase{el}}, nil
}

// Remove removes the hardware node from the model. Component mapping
// records targeting the node are removed as well.
func (n *HardwareNode) Remove(deep bool) error {
	return genericRemove(n.el, deep)
}
