// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"context"

	"github.com/bitmark-inc/logger"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/slotavl/avl"
	"github.com/bitmark-inc/slotavl/counter"
	"github.com/bitmark-inc/slotavl/fault"
)

// every tree is a key set
var _ KeySet = (*avl.Tree)(nil)

// Totals - results summed over all scripts
type Totals struct {
	Scripts    counter.Counter
	Inserted   counter.Counter
	Duplicates counter.Counter
	Removed    counter.Counter
	Missing    counter.Counter
	Rejected   counter.Counter
}

func (t *Totals) add(r Result) {
	t.Scripts.Increment()
	t.Inserted.Add(uint64(r.Inserted))
	t.Duplicates.Add(uint64(r.Duplicates))
	t.Removed.Add(uint64(r.Removed))
	t.Missing.Add(uint64(r.Missing))
	t.Rejected.Add(uint64(r.Rejected))
}

// Outcome - a finished script and the tree it built
type Outcome struct {
	Result
	Tree *avl.Tree
}

// RunAll - run each script on its own new tree, concurrently
//
// the first failure cancels the remaining scripts; every finished
// tree is verified with Check before it is accepted
func RunAll(ctx context.Context, scripts []Script, log *logger.L, totals *Totals) ([]Outcome, error) {
	if 0 == len(scripts) {
		return nil, fault.ErrMissingTrees
	}

	outcomes := make([]Outcome, len(scripts))
	g, ctx := errgroup.WithContext(ctx)

	for i := range scripts {
		i := i
		g.Go(func() error {
			script := scripts[i]
			capacity := script.Capacity
			if 0 == capacity {
				capacity = DefaultCapacity
			}

			tree, err := avl.New(capacity)
			if nil != err {
				return err
			}
			if nil != log {
				_ = tree.SetLog(log)
				log.Infof("%s: start  capacity: %d  operations: %d", script.Name, capacity, len(script.Operations))
			}

			result, err := Run(ctx, tree, script, log)
			if nil != err {
				return err
			}
			if err := tree.Check(); nil != err {
				return err
			}

			if nil != totals {
				totals.add(result)
			}
			outcomes[i] = Outcome{
				Result: result,
				Tree:   tree,
			}
			if nil != log {
				log.Infof("%s: finished  count: %d  height: %d", script.Name, result.Count, tree.Height())
			}
			return nil
		})
	}

	if err := g.Wait(); nil != err {
		return nil, err
	}
	return outcomes, nil
}
