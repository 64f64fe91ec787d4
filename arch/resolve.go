// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arch

import "fmt"

// ancestryIterationLimit bounds the ancestry walks over instantiating
// compositions. Type graphs with reference cycles terminate instead of
// looping.
const ancestryIterationLimit = 1000

// ResolveInstanceChain computes the chain of component prototypes leading
// from root down to proto, excluding proto itself. A prototype placed
// directly inside root yields an empty chain.
//
// A component type instantiated in several compositions has several valid
// chains; the first instantiation found wins. Reporting all chains, or
// letting the caller disambiguate, could replace this later.
func ResolveInstanceChain(root *CompositionType, proto *ComponentPrototype) ([]*ComponentPrototype, error) {
	current, ok := proto.ParentComposition()
	if !ok {
		return nil, fmt.Errorf("%w: prototype %q has no parent composition", ErrNotBeneathRoot, proto.Name())
	}
	if current.Elem() == root.Elem() {
		return nil, nil
	}
	if !root.IsAncestorOf(current) {
		return nil, fmt.Errorf("%w: %q is not instantiated beneath %q", ErrNotBeneathRoot, proto.Name(), root.Name())
	}

	var chain []*ComponentPrototype
	for i := 0; i < ancestryIterationLimit; i++ {
		var next *ComponentPrototype
		for _, inst := range current.Instances() {
			parent, ok := inst.ParentComposition()
			if !ok {
				continue
			}
			if parent.Elem() == root.Elem() || root.IsAncestorOf(parent) {
				next = inst
				break
			}
		}
		if next == nil {
			return nil, fmt.Errorf("%w: no instantiation of %q beneath %q", ErrNotBeneathRoot, current.Name(), root.Name())
		}
		chain = append(chain, next)
		parent, _ := next.ParentComposition()
		if parent.Elem() == root.Elem() {
			reverse(chain)
			return chain, nil
		}
		current = parent
	}
	return nil, fmt.Errorf("%w: ancestry of %q did not reach %q", ErrNotBeneathRoot, proto.Name(), root.Name())
}

func reverse(chain []*ComponentPrototype) {
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
}
