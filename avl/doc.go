// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of integer keys held in a fixed
// size arena, with no recursion and no allocation after New
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Separate trees never share storage and can be used
//       from separate go routines.
//
// Every node lives in a slot of parallel key/left/right/height
// slices, and a node is referred to by its Slot index.  Slots are
// handed out and reclaimed by an allocator that keeps a free list
// and the reverse position of every slot in that list, so any live
// slot can be released in constant time.
//
// Insert and Remove descend iteratively, recording the visited
// slots and branch directions in a path stack sized to the AVL
// worst case height, then walk that path backwards to relink and
// rebalance each ancestor.
//
// Inserting a key that is already present and removing a key that
// is absent are both no-ops, reported only by a false result.
package avl
