// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the lowest key, false if the tree is empty
func (tree *Tree) First() (int, bool) {
	if None == tree.root {
		return 0, false
	}
	return tree.nodes.keys[tree.findMin(tree.root)], true
}

// Last - return the highest key, false if the tree is empty
func (tree *Tree) Last() (int, bool) {
	p := tree.root
	if None == p {
		return 0, false
	}
	for None != tree.nodes.right[p] {
		p = tree.nodes.right[p]
	}
	return tree.nodes.keys[p], true
}

// Next - given a key, return the lowest key in the tree that is
// greater, or false if there is none.  The given key need not be
// in the tree.
func (tree *Tree) Next(key int) (int, bool) {
	found := None
	for p := tree.root; None != p; {
		if tree.nodes.keys[p] > key {
			found = p
			p = tree.nodes.left[p]
		} else {
			p = tree.nodes.right[p]
		}
	}
	if None == found {
		return 0, false
	}
	return tree.nodes.keys[found], true
}

// Prev - given a key, return the highest key in the tree that is
// lower, or false if there is none
func (tree *Tree) Prev(key int) (int, bool) {
	found := None
	for p := tree.root; None != p; {
		if tree.nodes.keys[p] < key {
			found = p
			p = tree.nodes.right[p]
		} else {
			p = tree.nodes.left[p]
		}
	}
	if None == found {
		return 0, false
	}
	return tree.nodes.keys[found], true
}

// Walk - call f for every key in ascending order until it returns
// false
//
// each step is a fresh descent for the successor of the last key
// visited, so f may read or modify the tree: keys inserted above the
// current key are visited and keys removed before they are reached
// are not
func (tree *Tree) Walk(f func(key int) bool) {
	key, ok := tree.First()
	for ok {
		if !f(key) {
			return
		}
		key, ok = tree.Next(key)
	}
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.Count())
	tree.Walk(func(key int) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
