// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotavl/fault"
)

// Slot - index of a node in the arena
type Slot int

// None - the sentinel slot, i.e. no node
const None Slot = -1

// written to every integer field of a cleared slot
const sentinel = -1

// Tree - type to hold the root slot of a tree and the storage
// for all of its nodes
type Tree struct {
	root    Slot
	nodes   arena
	alloc   allocator
	path    pathStack // ancestors visited by insert and remove
	minPath pathStack // left spine visited by removeMin
	log     *logger.L
}

// New - create an initially empty tree that can hold up to
// capacity keys
func New(capacity int) (*Tree, error) {
	if capacity < 1 {
		return nil, fault.ErrInvalidCapacity
	}
	depth := maximumHeight(capacity)
	tree := &Tree{
		nodes:   newArena(capacity),
		alloc:   newAllocator(capacity),
		path:    newPathStack(depth),
		minPath: newPathStack(depth),
	}
	tree.Clear()
	return tree, nil
}

// worst case height of an AVL tree of n nodes is
// 1.44*log2(n + 2) - 0.328, e.g. n = 512 gives 12.64
func maximumHeight(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}

// Clear - reset every slot to the sentinel and release them all
func (tree *Tree) Clear() {
	tree.nodes.clear()
	tree.alloc.clear()
	tree.path.reset()
	tree.minPath.reset()
	tree.root = None
	if nil != tree.log {
		tree.log.Debugf("cleared: capacity: %d  path depth: %d", tree.Capacity(), len(tree.path.slots))
	}
}

// SetLog - attach a logger channel
func (tree *Tree) SetLog(log *logger.L) error {
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	tree.log = log
	return nil
}

// IsEmpty - true if tree contains no keys
func (tree *Tree) IsEmpty() bool {
	return None == tree.root
}

// Count - number of keys currently in the tree
func (tree *Tree) Count() int {
	return tree.alloc.size
}

// Capacity - maximum number of keys the tree can hold
func (tree *Tree) Capacity() int {
	return tree.alloc.capacity()
}

// Root - return the root slot of the tree, None if empty
func (tree *Tree) Root() Slot {
	return tree.root
}

// Height - number of levels in the tree
func (tree *Tree) Height() int {
	return tree.nodes.heightOf(tree.root)
}

// Key - read the key stored in a live slot
func (tree *Tree) Key(p Slot) int {
	tree.mustBeLive(p)
	return tree.nodes.keys[p]
}

// Left - left child of a live slot
func (tree *Tree) Left(p Slot) Slot {
	tree.mustBeLive(p)
	return tree.nodes.left[p]
}

// Right - right child of a live slot
func (tree *Tree) Right(p Slot) Slot {
	tree.mustBeLive(p)
	return tree.nodes.right[p]
}

// NodeHeight - height of the sub-tree rooted at a live slot
func (tree *Tree) NodeHeight(p Slot) int {
	tree.mustBeLive(p)
	return tree.nodes.height[p]
}

func (tree *Tree) mustBeLive(p Slot) {
	if !tree.alloc.isLive(p) {
		fault.Panicf("avl: slot: %d is not live", p)
	}
}
