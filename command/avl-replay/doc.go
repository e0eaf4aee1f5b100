// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-replay - run scripted insert/remove sequences against
// arena-backed AVL trees
//
// Each tree in the configuration file gets its own fixed capacity
// tree; all trees are run concurrently and verified when their
// script finishes.
//
//   avl-replay --config-file=avl-replay.conf [--print] [--verbose]
package main
