// SPDX-License-Identifier: MIT

package mmm

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mmbench/matrix"
	"github.com/katalvlaran/mmbench/partition"
	"github.com/katalvlaran/mmbench/workerpool"
)

const (
	opSequential   = "Sequential"
	opParallel     = "Parallel"
	opPoolParallel = "PoolParallel"
)

// ParallelFunc computes s.Par with one worker per range and returns only
// after every worker finished.
type ParallelFunc func(s *Store, ranges []partition.RowRange) error

// Sequential computes Seq = A × B on the calling goroutine,
// iterating row → column → inner index.
func Sequential(s *Store) error {
	if !s.Ready() {
		return storeErrorf(opSequential, ErrStoreEmpty)
	}
	if err := matrix.MulRange(s.seq, s.a, s.b, 0, s.size); err != nil {
		return storeErrorf(opSequential, err)
	}

	return nil
}

// Parallel computes Par = A × B with exactly len(ranges) goroutines, spawned
// for this call only. Each goroutine is handed a row band of Par covering its
// range and writes nothing else. The errgroup's Wait is the join barrier.
//
// ranges must tile [0, Size()) (see partition.Validate); this is checked
// before any goroutine starts.
func Parallel(s *Store, ranges []partition.RowRange) error {
	if err := checkParallel(s, ranges); err != nil {
		return storeErrorf(opParallel, err)
	}

	var g errgroup.Group
	for _, r := range ranges {
		g.Go(func() error {
			return mulBand(s, r)
		})
	}
	if err := g.Wait(); err != nil {
		return storeErrorf(opParallel, err)
	}

	return nil
}

// PoolParallel returns a ParallelFunc that submits one task per range to a
// persistent pool instead of spawning goroutines.
func PoolParallel(p *workerpool.Pool) ParallelFunc {
	return func(s *Store, ranges []partition.RowRange) error {
		if err := checkParallel(s, ranges); err != nil {
			return storeErrorf(opPoolParallel, err)
		}
		if err := p.Run(ranges, func(r partition.RowRange) error {
			return mulBand(s, r)
		}); err != nil {
			return storeErrorf(opPoolParallel, err)
		}

		return nil
	}
}

func checkParallel(s *Store, ranges []partition.RowRange) error {
	if !s.Ready() {
		return ErrStoreEmpty
	}

	return partition.Validate(s.size, ranges)
}

// mulBand is one worker's share: rows [r.Start, r.End) of Par.
func mulBand(s *Store, r partition.RowRange) error {
	if r.Len() == 0 {
		return nil
	}
	band, err := s.par.View(r.Start, 0, r.Len(), s.size)
	if err != nil {
		return fmt.Errorf("worker %v: %w", r, err)
	}
	if err = matrix.MulBand(band, s.a, s.b); err != nil {
		return fmt.Errorf("worker %v: %w", r, err)
	}

	return nil
}
