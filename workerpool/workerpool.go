// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0
//
// Adapted from github.com/ajroetker/go-highway hwy/contrib/workerpool:
// Run replaces ParallelFor with one task per partition.RowRange and
// collects per-range errors.

// Package workerpool provides a persistent, reusable worker pool for row-banded
// computation. Unlike per-run goroutine spawning, a Pool is created once and
// reused across many timed runs; each Run still submits exactly one task per
// row range and blocks on a barrier until all of them have finished.
//
// Usage:
//
//	pool := workerpool.New(threads)
//	defer pool.Close()
//
//	for run := 0; run < runs; run++ {
//	    err := pool.Run(ranges, func(r partition.RowRange) error {
//	        return kernel(r.Start, r.End)
//	    })
//	}
package workerpool

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/mmbench/partition"
)

// ErrClosed is returned by Run after Close.
var ErrClosed = errors.New("workerpool: pool is closed")

// Pool is a persistent worker pool that can be reused across many parallel
// runs. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
	// mu serializes Run against Close so no send hits a closed channel.
	mu sync.RWMutex
}

// workItem represents a single task of one run.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run executes fn once per range and blocks until every call returned.
//
// Tasks are picked up by whichever worker is free; completion order is
// unspecified. When more ranges than workers are given, the extra tasks
// queue until a worker frees up. The returned error is the first non-nil
// error in range order, wrapped with the offending range.
func (p *Pool) Run(ranges []partition.RowRange, fn func(r partition.RowRange) error) error {
	if len(ranges) == 0 {
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed.Load() {
		return ErrClosed
	}

	errs := make([]error, len(ranges))
	var wg sync.WaitGroup
	wg.Add(len(ranges))

	for i, r := range ranges {
		p.workC <- workItem{
			fn: func() {
				errs[i] = fn(r)
			},
			barrier: &wg,
		}
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("workerpool: range %v: %w", ranges[i], err)
		}
	}

	return nil
}
