// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, zero for None
func (a *arena) heightOf(p Slot) int {
	if None == p {
		return 0
	}
	return a.height[p]
}

// right height minus left height
func (a *arena) balanceFactor(p Slot) int {
	return a.heightOf(a.right[p]) - a.heightOf(a.left[p])
}

// must be called after any change to the children of p
func (a *arena) fixHeight(p Slot) {
	hl := a.heightOf(a.left[p])
	hr := a.heightOf(a.right[p])
	if hl > hr {
		a.height[p] = hl + 1
	} else {
		a.height[p] = hr + 1
	}
}

// single LL rotation, returns the new sub-tree root
func (a *arena) rotateRight(p Slot) Slot {
	q := a.left[p]
	a.left[p] = a.right[q]
	a.right[q] = p
	a.fixHeight(p)
	a.fixHeight(q)
	return q
}

// single RR rotation, returns the new sub-tree root
func (a *arena) rotateLeft(q Slot) Slot {
	p := a.right[q]
	a.right[q] = a.left[p]
	a.left[p] = q
	a.fixHeight(q)
	a.fixHeight(p)
	return p
}

// restore the AVL condition at p, whose children are already
// balanced and differ in height by at most two
func (a *arena) balance(p Slot) Slot {
	a.fixHeight(p)
	switch a.balanceFactor(p) {
	case +2:
		if a.balanceFactor(a.right[p]) < 0 {
			// double RL rotation
			a.right[p] = a.rotateRight(a.right[p])
		}
		return a.rotateLeft(p)
	case -2:
		if a.balanceFactor(a.left[p]) > 0 {
			// double LR rotation
			a.left[p] = a.rotateLeft(a.left[p])
		}
		return a.rotateRight(p)
	}
	return p
}
