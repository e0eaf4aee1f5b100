// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if the key is in the tree
func (tree *Tree) Contains(key int) bool {
	return tree.contains(tree.root, key)
}

func (tree *Tree) contains(p Slot, key int) bool {
	return None != tree.search(p, key)
}

// Search - find the slot holding a specific key, None if absent
func (tree *Tree) Search(key int) Slot {
	return tree.search(tree.root, key)
}

func (tree *Tree) search(p Slot, key int) Slot {
	for None != p {
		k := tree.nodes.keys[p]
		switch {
		case key < k:
			p = tree.nodes.left[p]
		case key > k:
			p = tree.nodes.right[p]
		default:
			return p
		}
	}
	return None
}
