// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/slotavl/fault"
)

// Check - run all consistency checks, returning the first failure
func (tree *Tree) Check() error {
	if !tree.CheckAllocator() {
		return fault.ErrAllocatorState
	}
	if !tree.CheckOrder() {
		return fault.ErrTreeOrder
	}
	if !tree.CheckHeights() {
		return fault.ErrTreeHeight
	}
	if !tree.CheckBalance() {
		return fault.ErrTreeBalance
	}
	return nil
}

// CheckOrder - keys must be strictly ascending in order
func (tree *Tree) CheckOrder() bool {
	first := true
	previous := 0
	return tree.inOrder(func(p Slot) bool {
		k := tree.nodes.keys[p]
		if !first && k <= previous {
			tree.failf("order: slot: %d key: %d  follows: %d", p, k, previous)
			return false
		}
		first = false
		previous = k
		return true
	})
}

// CheckHeights - every live slot's height must agree with its children
func (tree *Tree) CheckHeights() bool {
	for _, p := range tree.liveSlots() {
		hl := tree.nodes.heightOf(tree.nodes.left[p])
		hr := tree.nodes.heightOf(tree.nodes.right[p])
		expected := hl + 1
		if hr > hl {
			expected = hr + 1
		}
		if tree.nodes.height[p] != expected {
			tree.failf("height: slot: %d  actual: %d  expected: %d", p, tree.nodes.height[p], expected)
			return false
		}
	}
	return true
}

// CheckBalance - every live slot's balance factor must be -1, 0 or +1
func (tree *Tree) CheckBalance() bool {
	for _, p := range tree.liveSlots() {
		if bf := tree.nodes.balanceFactor(p); bf < -1 || bf > 1 {
			tree.failf("balance: slot: %d key: %d  factor: %+d", p, tree.nodes.keys[p], bf)
			return false
		}
	}
	return true
}

// CheckAllocator - the live slots must be exactly those reachable
// from the root, and the free list must be a consistent permutation
func (tree *Tree) CheckAllocator() bool {
	al := &tree.alloc
	n := al.capacity()
	if al.size < 0 || al.size > n {
		tree.failf("allocator: size: %d  capacity: %d", al.size, n)
		return false
	}
	for i, p := range al.freeList {
		if p < 0 || int(p) >= n || al.positionOf[p] != i {
			tree.failf("allocator: position: %d  slot: %d  is not inverse", i, p)
			return false
		}
	}
	for _, p := range al.freeList[:al.boundary()] {
		if sentinel != tree.nodes.height[p] || None != tree.nodes.left[p] || None != tree.nodes.right[p] {
			tree.failf("allocator: free slot: %d is not cleared", p)
			return false
		}
	}

	count := 0
	ok := tree.inOrder(func(p Slot) bool {
		if !al.isLive(p) {
			tree.failf("allocator: reachable slot: %d is free", p)
			return false
		}
		count += 1
		return true
	})
	if !ok {
		return false
	}
	if count != al.size {
		tree.failf("allocator: reachable: %d  live: %d", count, al.size)
		return false
	}
	return true
}

// slots in the live part of the free list
func (tree *Tree) liveSlots() []Slot {
	return tree.alloc.freeList[tree.alloc.boundary():]
}

// in-order visit of every reachable slot with its own stack, so that a
// damaged tree cannot overflow the path stack; false if f stops the
// walk or a slot is reached twice
func (tree *Tree) inOrder(f func(p Slot) bool) bool {
	n := tree.alloc.capacity()
	seen := make([]bool, n)
	stack := make([]Slot, 0, len(tree.path.slots))
	p := tree.root
	for None != p || len(stack) > 0 {
		for None != p {
			if p < 0 || int(p) >= n || seen[p] {
				tree.failf("walk: slot: %d is invalid or shared", p)
				return false
			}
			seen[p] = true
			stack = append(stack, p)
			p = tree.nodes.left[p]
		}
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(q) {
			return false
		}
		p = tree.nodes.right[q]
	}
	return true
}

func (tree *Tree) failf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Errorf(format, arguments...)
	}
}
