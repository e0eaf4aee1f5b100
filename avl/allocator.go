// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/slotavl/fault"
)

// slot allocator
//
// freeList is a permutation of all slots: positions [0, N-size)
// hold free slots and positions [N-size, N) hold live ones.
// positionOf is its inverse, so freeList[positionOf[p]] == p for
// every slot.  Allocation takes the free slot just below the
// boundary, deallocation swaps the released slot with the live slot
// at the boundary, so both are O(1) for any slot.
type allocator struct {
	size       int
	freeList   []Slot
	positionOf []int
}

func newAllocator(n int) allocator {
	return allocator{
		freeList:   make([]Slot, n),
		positionOf: make([]int, n),
	}
}

func (al *allocator) clear() {
	for i := range al.freeList {
		al.freeList[i] = Slot(i)
		al.positionOf[i] = i
	}
	al.size = 0
}

func (al *allocator) capacity() int {
	return len(al.freeList)
}

// first position in freeList holding a live slot
func (al *allocator) boundary() int {
	return len(al.freeList) - al.size
}

func (al *allocator) isLive(p Slot) bool {
	if p < 0 || int(p) >= len(al.positionOf) {
		return false
	}
	return al.positionOf[p] >= al.boundary()
}

// take a free slot
func (al *allocator) allocate() (Slot, error) {
	if al.size == len(al.freeList) {
		return None, fault.ErrCapacityExhausted
	}
	position := al.boundary() - 1
	p := al.freeList[position]
	al.positionOf[p] = position
	al.size += 1
	return p, nil
}

// release a live slot
func (al *allocator) deallocate(p Slot) {
	if !al.isLive(p) {
		fault.Panicf("avl: deallocate slot: %d is not live", p)
	}
	boundary := al.boundary()
	position := al.positionOf[p]

	moved := al.freeList[boundary]
	al.freeList[boundary] = p
	al.freeList[position] = moved
	al.positionOf[moved] = position
	al.positionOf[p] = boundary

	al.size -= 1
}

// allocate a new leaf node holding key
func (tree *Tree) newNode(key int) (Slot, error) {
	p, err := tree.alloc.allocate()
	if nil != err {
		return None, err
	}
	tree.nodes.initialise(p, key)
	return p, nil
}

// return a node's slot to the allocator
func (tree *Tree) freeNode(p Slot) {
	tree.alloc.deallocate(p)
	tree.nodes.clearSlot(p)
}
