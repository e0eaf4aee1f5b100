// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotavl/fault"
)

// Run - apply every operation of a script to a key set
//
// stops at the first failed operation or when the context is done
func Run(ctx context.Context, set KeySet, script Script, log *logger.L) (Result, error) {
	result := Result{
		Name: script.Name,
	}

	for i, op := range script.Operations {
		if err := ctx.Err(); nil != err {
			return result, err
		}
		if err := apply(set, op, &result); nil != err {
			if nil != log {
				log.Errorf("%s: operation[%d]: %s  error: %s", script.Name, i, op.Action, err)
			}
			result.Count = set.Count()
			return result, err
		}
		if nil != log {
			log.Debugf("%s: operation[%d]: %s %v", script.Name, i, op.Action, op.Keys)
		}
	}

	result.Count = set.Count()
	return result, nil
}

func apply(set KeySet, op Operation, result *Result) error {
	switch op.Action {
	case ActionInsert:
		for _, key := range op.Keys {
			added, err := set.Insert(key)
			if nil != err {
				return err
			}
			if added {
				result.Inserted += 1
			} else {
				result.Duplicates += 1
			}
		}

	case ActionRemove:
		for _, key := range op.Keys {
			if set.Remove(key) {
				result.Removed += 1
			} else {
				result.Missing += 1
			}
		}

	case ActionPresent:
		for _, key := range op.Keys {
			if !set.Contains(key) {
				return fault.ErrKeyNotPresent
			}
		}

	case ActionAbsent:
		for _, key := range op.Keys {
			if set.Contains(key) {
				return fault.ErrKeyPresent
			}
		}

	case ActionCount:
		if set.Count() != op.Count {
			return fault.ErrCountMismatch
		}

	case ActionOverflow:
		for _, key := range op.Keys {
			_, err := set.Insert(key)
			if !fault.IsErrLength(err) {
				return fault.ErrCapacityNotExhausted
			}
			result.Rejected += 1
		}

	case ActionClear:
		set.Clear()

	default:
		return fault.ErrUnknownAction
	}
	return nil
}
