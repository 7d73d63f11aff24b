// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docking

// MultiUpdate brackets a sequence of tree changes with [StartUpdate] and
// [EndUpdate], so that controls suspend their layout once and resume it once,
// however deeply the changes nest. Always end it with a deferred call:
//
//	u := m.BeginUpdate()
//	defer u.End()
type MultiUpdate struct {
	root  Element
	ended bool
}

// NewMultiUpdate propagates [StartUpdate] from the given element
// and returns the guard that ends it.
func NewMultiUpdate(root Element) *MultiUpdate {
	root.PropagateAction(StartUpdate, nil)
	return &MultiUpdate{root: root}
}

// End propagates [EndUpdate]. Calling it more than once has no effect.
func (u *MultiUpdate) End() {
	if u.ended {
		return
	}
	u.ended = true
	u.root.PropagateAction(EndUpdate, nil)
}
