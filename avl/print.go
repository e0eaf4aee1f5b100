// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// one pending line of output
type printItem struct {
	p      Slot
	prefix string
	br     branch
	level  int
	ready  bool // children already scheduled
}

// Print - display an ASCII graphic representation of the tree,
// right sub-tree uppermost; returns the maximum depth
func (tree *Tree) Print(w io.Writer) int {
	if None == tree.root {
		return 0
	}
	depth := 0
	stack := []printItem{{p: tree.root, br: rootBranch, level: 1}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		p := item.p

		if item.ready {
			tree.printNode(w, item)
			continue
		}
		if item.level > depth {
			depth = item.level
		}

		// pushed in reverse: right is printed first, then p, then left
		if l := tree.nodes.left[p]; None != l {
			t := "       "
			if rightBranch == item.br {
				t = "|      "
			}
			stack = append(stack, printItem{p: l, prefix: item.prefix + t, br: leftBranch, level: item.level + 1})
		}
		item.ready = true
		stack = append(stack, item)
		if r := tree.nodes.right[p]; None != r {
			t := "       "
			if leftBranch == item.br {
				t = "|      "
			}
			stack = append(stack, printItem{p: r, prefix: item.prefix + t, br: rightBranch, level: item.level + 1})
		}
	}
	return depth
}

func (tree *Tree) printNode(w io.Writer, item printItem) {
	switch item.br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", item.prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", item.prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", item.prefix)
	}
	p := item.p
	fmt.Fprintf(w, "%d @%d h:%d %+2d\n", tree.nodes.keys[p], p, tree.nodes.height[p], tree.nodes.balanceFactor(p))
}
