// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0
//
// Adapted from github.com/ajroetker/go-highway hwy/contrib/workerpool tests.

package workerpool

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/mmbench/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	assert.Equal(t, 4, pool.NumWorkers())
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	assert.Equal(t, runtime.GOMAXPROCS(0), pool.NumWorkers())
}

// TestRun_EachRangeOnce writes every row exactly once across repeated runs.
func TestRun_EachRangeOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	const n = 103
	ranges, err := partition.Rows(n, 4)
	require.NoError(t, err)

	for run := 0; run < 3; run++ {
		hits := make([]int32, n)
		var calls atomic.Int32
		err = pool.Run(ranges, func(r partition.RowRange) error {
			calls.Add(1)
			for i := r.Start; i < r.End; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
			return nil
		})
		require.NoError(t, err)
		assert.EqualValues(t, len(ranges), calls.Load())
		for i, h := range hits {
			require.EqualValues(t, 1, h, "run %d row %d", run, i)
		}
	}
}

// TestRun_MoreRangesThanWorkers queues the surplus tasks instead of dropping them.
func TestRun_MoreRangesThanWorkers(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	ranges, err := partition.Rows(64, 16)
	require.NoError(t, err)

	var rows atomic.Int64
	require.NoError(t, pool.Run(ranges, func(r partition.RowRange) error {
		rows.Add(int64(r.Len()))
		return nil
	}))
	assert.EqualValues(t, 64, rows.Load())
}

// TestRun_FirstErrorInRangeOrder returns the lowest-index failure after the barrier.
func TestRun_FirstErrorInRangeOrder(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	boom := errors.New("boom")
	other := errors.New("other")
	ranges, err := partition.Rows(9, 3)
	require.NoError(t, err)

	var done atomic.Int32
	err = pool.Run(ranges, func(r partition.RowRange) error {
		defer done.Add(1)
		switch r.Start {
		case 3:
			return boom
		case 6:
			return other
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "[3,6)")
	assert.EqualValues(t, 3, done.Load(), "barrier must wait for every task")
}

func TestRun_EmptyAndClosed(t *testing.T) {
	pool := New(2)
	require.NoError(t, pool.Run(nil, func(partition.RowRange) error { return errors.New("unreachable") }))

	pool.Close()
	pool.Close() // idempotent

	err := pool.Run([]partition.RowRange{{Start: 0, End: 1}}, func(partition.RowRange) error { return nil })
	assert.ErrorIs(t, err, ErrClosed)
}
