// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua or HCL configuration file
//
// A Lua file is executed and must return a table, so most of base
// Lua is available such as loops to generate key lists and getenv to
// extract environment supplied items.  An HCL file is decoded to
// maps and then mapped with mapstructure.  Struct fields are matched
// with the "gluamapper" and "hcl" tags respectively.
package configuration
