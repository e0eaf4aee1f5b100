// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

// DefaultCapacity - used when a script does not give a capacity
const DefaultCapacity = 512

// action names
const (
	ActionInsert   = "insert"
	ActionRemove   = "remove"
	ActionPresent  = "present"
	ActionAbsent   = "absent"
	ActionCount    = "count"
	ActionOverflow = "overflow"
	ActionClear    = "clear"
)

// KeySet - the operations a script drives
type KeySet interface {
	Insert(key int) (bool, error)
	Remove(key int) bool
	Contains(key int) bool
	Count() int
	Clear()
}

// Operation - one scripted step
type Operation struct {
	Action string `gluamapper:"action" hcl:"action" json:"action"`
	Keys   []int  `gluamapper:"keys" hcl:"keys" json:"keys"`
	Count  int    `gluamapper:"count" hcl:"count" json:"count"`
}

// Script - a named sequence of operations against one tree
type Script struct {
	Name       string      `gluamapper:"name" hcl:"name" json:"name"`
	Capacity   int         `gluamapper:"capacity" hcl:"capacity" json:"capacity"`
	Operations []Operation `gluamapper:"operations" hcl:"operation" json:"operations"`
}

// Result - what a script did
type Result struct {
	Name       string `json:"name"`
	Inserted   int    `json:"inserted"`
	Duplicates int    `json:"duplicates"`
	Removed    int    `json:"removed"`
	Missing    int    `json:"missing"`
	Rejected   int    `json:"rejected"`
	Count      int    `json:"count"`
}
