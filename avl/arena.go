// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// node fields stored as parallel slices indexed by slot
type arena struct {
	keys   []int
	left   []Slot
	right  []Slot
	height []int
}

func newArena(n int) arena {
	return arena{
		keys:   make([]int, n),
		left:   make([]Slot, n),
		right:  make([]Slot, n),
		height: make([]int, n),
	}
}

// set every slot to the sentinel
func (a *arena) clear() {
	for i := range a.keys {
		a.clearSlot(Slot(i))
	}
}

func (a *arena) clearSlot(p Slot) {
	a.keys[p] = sentinel
	a.left[p] = None
	a.right[p] = None
	a.height[p] = sentinel
}

// a freshly allocated node is a leaf
func (a *arena) initialise(p Slot, key int) {
	a.keys[p] = key
	a.left[p] = None
	a.right[p] = None
	a.height[p] = 1
}
