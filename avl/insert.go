// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a key to the tree
//
// returns true if the key was added, false if it was already present.
// If the arena is full fault.ErrCapacityExhausted is returned and the
// tree is unchanged.
func (tree *Tree) Insert(key int) (bool, error) {
	root, added, err := tree.insert(tree.root, key)
	if nil != err {
		if nil != tree.log {
			tree.log.Warnf("insert: %d  count: %d  error: %s", key, tree.Count(), err)
		}
		return false, err
	}
	tree.root = root
	return added, nil
}

// internal routine for insert, returns the possibly updated root
func (tree *Tree) insert(p Slot, key int) (Slot, bool, error) {
	root := p

	tree.path.reset()
	for None != p {
		k := tree.nodes.keys[p]
		switch {
		case key < k:
			tree.path.push(p, goLeft)
			p = tree.nodes.left[p]
		case key > k:
			tree.path.push(p, goRight)
			p = tree.nodes.right[p]
		default:
			return root, false, nil
		}
	}

	n, err := tree.newNode(key)
	if nil != err {
		return root, false, err
	}
	return tree.unwind(n), true, nil
}
