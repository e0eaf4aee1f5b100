// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/slotavl/fault"
	"github.com/bitmark-inc/slotavl/replay"
	"github.com/bitmark-inc/slotavl/replay/mocks"
)

func TestRunCallsInOrder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockKeySet(ctl)

	gomock.InOrder(
		m.EXPECT().Insert(5).Return(true, nil),
		m.EXPECT().Insert(1).Return(true, nil),
		m.EXPECT().Insert(1).Return(false, nil),
		m.EXPECT().Remove(5).Return(true),
		m.EXPECT().Remove(9).Return(false),
		m.EXPECT().Contains(1).Return(true),
		m.EXPECT().Contains(5).Return(false),
		m.EXPECT().Count().Return(1),
		m.EXPECT().Clear(),
		m.EXPECT().Count().Return(0),
	)

	script := replay.Script{
		Name: "ordered",
		Operations: []replay.Operation{
			{Action: replay.ActionInsert, Keys: []int{5, 1, 1}},
			{Action: replay.ActionRemove, Keys: []int{5, 9}},
			{Action: replay.ActionPresent, Keys: []int{1}},
			{Action: replay.ActionAbsent, Keys: []int{5}},
			{Action: replay.ActionCount, Count: 1},
			{Action: replay.ActionClear},
		},
	}

	result, err := replay.Run(context.Background(), m, script, nil)
	assert.Nil(t, err)
	assert.Equal(t, replay.Result{
		Name:       "ordered",
		Inserted:   2,
		Duplicates: 1,
		Removed:    1,
		Missing:    1,
		Count:      0,
	}, result)
}

func TestRunStopsOnInsertError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockKeySet(ctl)

	gomock.InOrder(
		m.EXPECT().Insert(1).Return(true, nil),
		m.EXPECT().Insert(2).Return(false, fault.ErrCapacityExhausted),
		m.EXPECT().Count().Return(1),
	)

	script := replay.Script{
		Name: "full",
		Operations: []replay.Operation{
			{Action: replay.ActionInsert, Keys: []int{1, 2, 3}},
			{Action: replay.ActionRemove, Keys: []int{1}},
		},
	}

	result, err := replay.Run(context.Background(), m, script, nil)
	assert.Equal(t, fault.ErrCapacityExhausted, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Count)
}

func TestRunOverflow(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockKeySet(ctl)

	gomock.InOrder(
		m.EXPECT().Insert(7).Return(false, fault.ErrCapacityExhausted),
		m.EXPECT().Insert(8).Return(true, nil),
		m.EXPECT().Count().Return(4),
	)

	script := replay.Script{
		Name: "overflow",
		Operations: []replay.Operation{
			{Action: replay.ActionOverflow, Keys: []int{7, 8}},
		},
	}

	result, err := replay.Run(context.Background(), m, script, nil)
	assert.Equal(t, fault.ErrCapacityNotExhausted, err)
	assert.Equal(t, 1, result.Rejected)
}

func TestRunChecks(t *testing.T) {
	checks := []struct {
		op       replay.Operation
		setup    func(m *mocks.MockKeySet)
		expected error
	}{
		{
			op:       replay.Operation{Action: replay.ActionPresent, Keys: []int{3}},
			setup:    func(m *mocks.MockKeySet) { m.EXPECT().Contains(3).Return(false) },
			expected: fault.ErrKeyNotPresent,
		},
		{
			op:       replay.Operation{Action: replay.ActionAbsent, Keys: []int{3}},
			setup:    func(m *mocks.MockKeySet) { m.EXPECT().Contains(3).Return(true) },
			expected: fault.ErrKeyPresent,
		},
		{
			op:       replay.Operation{Action: replay.ActionCount, Count: 2},
			setup:    func(m *mocks.MockKeySet) { m.EXPECT().Count().Return(5) },
			expected: fault.ErrCountMismatch,
		},
		{
			op:       replay.Operation{Action: "rotate"},
			setup:    func(m *mocks.MockKeySet) {},
			expected: fault.ErrUnknownAction,
		},
	}

	for i, c := range checks {
		ctl := gomock.NewController(t)
		m := mocks.NewMockKeySet(ctl)
		c.setup(m)
		m.EXPECT().Count().Return(0) // final count after failure

		script := replay.Script{
			Name:       "check",
			Operations: []replay.Operation{c.op},
		}
		_, err := replay.Run(context.Background(), m, script, nil)
		assert.Equal(t, c.expected, err, "%d: %s", i, c.op.Action)
		ctl.Finish()
	}
}

func TestRunCancelled(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockKeySet(ctl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	script := replay.Script{
		Name: "cancelled",
		Operations: []replay.Operation{
			{Action: replay.ActionInsert, Keys: []int{1}},
		},
	}
	_, err := replay.Run(ctx, m, script, nil)
	assert.Equal(t, context.Canceled, err)
}
