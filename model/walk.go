// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

const (
	// Continue = true can be returned from walk functions to continue
	// processing down the tree, as compared to Break = false which stops
	// this branch.
	Continue = true

	// Break = false can be returned from walk functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the element and all of its parents,
// sequentially in the current goroutine. It stops walking if the function
// returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
func (e *Element) WalkUp(fun func(e *Element) bool) bool {
	for cur := e; cur != nil; cur = cur.parent {
		if !fun(cur) {
			return false
		}
	}
	return true
}

// WalkDown calls the given function on the element and all of its children
// in depth-first order, sequentially in the current goroutine. It stops
// walking the current branch if the function returns [Break] and keeps
// walking if it returns [Continue]. The walk is non-recursive.
func (e *Element) WalkDown(fun func(e *Element) bool) {
	stack := []*Element{e}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fun(cur) {
			continue
		}
		for i := cur.NumChildren() - 1; i >= 0; i-- {
			stack = append(stack, cur.Child(i))
		}
	}
}
