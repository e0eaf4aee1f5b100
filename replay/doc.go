// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package replay - run scripted sequences of key operations
//
// A Script names a capacity and a list of operations.  Run applies
// one script to any KeySet.  RunAll builds a separate avl.Tree for
// each script and runs them concurrently, one go routine per tree,
// so no tree storage is ever shared.
//
// Actions:
//
//   insert   - insert each key, duplicates are counted
//   remove   - remove each key, absent keys are counted
//   present  - each key must be in the set
//   absent   - each key must not be in the set
//   count    - the set must hold exactly Count keys
//   overflow - each insert must fail with capacity exhausted
//   clear    - empty the set
package replay
