// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/slotavl/fault"
)

// Remove - removes a specific key from the tree
//
// returns false if the key was not present
func (tree *Tree) Remove(key int) bool {
	root, removed := tree.remove(tree.root, key)
	tree.root = root
	return removed
}

// internal delete routine, returns the possibly updated root
func (tree *Tree) remove(p Slot, key int) (Slot, bool) {
	root := p

	tree.path.reset()
search:
	for {
		if None == p { // key not in tree
			return root, false
		}
		k := tree.nodes.keys[p]
		switch {
		case key < k:
			tree.path.push(p, goLeft)
			p = tree.nodes.left[p]
		case key > k:
			tree.path.push(p, goRight)
			p = tree.nodes.right[p]
		default:
			break search
		}
	}

	q := tree.nodes.left[p]
	r := tree.nodes.right[p]
	tree.freeNode(p)

	// the right sub-tree's minimum takes the place of p
	replacement := q
	if None != r {
		min := tree.findMin(r)
		tree.nodes.right[min] = tree.removeMin(r)
		tree.nodes.left[min] = q
		replacement = tree.nodes.balance(min)
	}
	return tree.unwind(replacement), true
}

// lowest node in a sub-tree
func (tree *Tree) findMin(p Slot) Slot {
	if None == p {
		fault.Panicf("avl: findMin of empty sub-tree")
	}
	for None != tree.nodes.left[p] {
		p = tree.nodes.left[p]
	}
	return p
}

// detach the lowest node of a non-empty sub-tree, returning the new
// rebalanced sub-tree root
func (tree *Tree) removeMin(p Slot) Slot {
	s := &tree.minPath
	s.reset()
	for None != tree.nodes.left[p] {
		s.push(p, goLeft)
		p = tree.nodes.left[p]
	}

	// a minimum has no left child, so its right child replaces it
	replacement := tree.nodes.right[p]
	for {
		q, _, ok := s.pop()
		if !ok {
			return replacement
		}
		tree.nodes.left[q] = replacement
		replacement = tree.nodes.balance(q)
	}
}
