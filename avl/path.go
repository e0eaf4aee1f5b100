// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/slotavl/fault"
)

// branch taken when leaving a slot on the way down
type direction int8

const (
	goLeft  direction = iota
	goRight direction = iota
)

// bounded stack of (slot, direction) pairs replacing the call stack
// of a recursive descent
type pathStack struct {
	slots      []Slot
	directions []direction
	depth      int
}

func newPathStack(n int) pathStack {
	return pathStack{
		slots:      make([]Slot, n),
		directions: make([]direction, n),
	}
}

func (s *pathStack) reset() {
	s.depth = 0
}

func (s *pathStack) isEmpty() bool {
	return 0 == s.depth
}

func (s *pathStack) push(p Slot, d direction) {
	if s.depth == len(s.slots) {
		fault.Panicf("avl: path overflow at depth: %d", s.depth)
	}
	s.slots[s.depth] = p
	s.directions[s.depth] = d
	s.depth += 1
}

// remove the deepest entry, false when empty
func (s *pathStack) pop() (Slot, direction, bool) {
	if 0 == s.depth {
		return None, goLeft, false
	}
	s.depth -= 1
	return s.slots[s.depth], s.directions[s.depth], true
}

// relink each ancestor on the recorded path to the rebalanced
// sub-tree below it, deepest first, and return the new root
func (tree *Tree) unwind(p Slot) Slot {
	for {
		q, d, ok := tree.path.pop()
		if !ok {
			return p
		}
		if goLeft == d {
			tree.nodes.left[q] = p
		} else {
			tree.nodes.right[q] = p
		}
		p = tree.nodes.balance(q)
	}
}
