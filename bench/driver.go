// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/mmbench/matrix"
	"github.com/katalvlaran/mmbench/mmm"
	"github.com/katalvlaran/mmbench/partition"
)

// Run executes the benchmark described by cfg and returns its report.
//
// Sequence:
//  1. Validate cfg and, in parallel mode, partition the rows (no allocation on failure).
//  2. Warm-up: init → mode-appropriate multiply → free, untimed.
//  3. cfg.Runs sequential passes, each on a fresh store.
//  4. Parallel mode: cfg.Runs parallel passes, then VerifyPair against the
//     last sequential pass.
//
// When verification fails the complete report is returned together with an
// error wrapping ErrVerification.
func Run(cfg Config, opts ...Option) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()

	r := &runner{cfg: cfg, opt: gatherOptions(opts...)}
	if cfg.Mode == ModeParallel {
		ranges, err := partition.Rows(cfg.Size, cfg.Threads)
		if err != nil {
			return nil, fmt.Errorf("bench: %w", err)
		}
		r.ranges = ranges
		r.parallel = mmm.Parallel
		if r.opt.pool != nil {
			r.parallel = mmm.PoolParallel(r.opt.pool)
		}
	}

	return r.run()
}

// runner holds the state of one Run call.
type runner struct {
	cfg      Config
	opt      options
	ranges   []partition.RowRange
	parallel mmm.ParallelFunc
}

func (r *runner) newStore() (*mmm.Store, error) {
	s, err := mmm.NewStore(r.cfg.Size, r.cfg.Fill)
	if err != nil {
		return nil, err
	}
	if err = s.Init(); err != nil {
		return nil, err
	}

	return s, nil
}

// timed measures f with the configured clock.
func (r *runner) timed(f func() error) (time.Duration, error) {
	start := r.opt.now()
	err := f()

	return r.opt.now().Sub(start), err
}

func (r *runner) run() (*Report, error) {
	log := r.opt.log
	rep := &Report{
		Mode:    r.cfg.Mode,
		Threads: r.cfg.Threads,
		Size:    r.cfg.Size,
		Runs:    r.cfg.Runs,
		Fill:    r.cfg.Fill.Name(),
	}
	log.Info().
		Stringer("mode", r.cfg.Mode).
		Int("threads", r.cfg.Threads).
		Int("size", r.cfg.Size).
		Int("runs", r.cfg.Runs).
		Str("fill", rep.Fill).
		Bool("pool", r.opt.pool != nil).
		Bool("fresh_parallel_store", r.cfg.FreshParallelStore).
		Msg("benchmark started")
	if r.ranges != nil {
		log.Debug().
			Ints("rows_per_worker", partition.Sizes(r.ranges)).
			Int("rows_total", partition.Total(r.ranges)).
			Msg("rows partitioned")
	}

	if err := r.warmUp(); err != nil {
		return nil, fmt.Errorf("bench: warm-up: %w", err)
	}

	lastSeq, err := r.sequentialPasses(rep)
	if err != nil {
		return nil, fmt.Errorf("bench: sequential: %w", err)
	}
	if r.cfg.Mode == ModeSequential {
		return rep, nil
	}
	defer lastSeq.Free()

	par, err := r.parallelPasses(rep)
	if err != nil {
		return nil, fmt.Errorf("bench: parallel: %w", err)
	}
	defer par.Free()

	rep.MaxDiff, err = mmm.VerifyPair(lastSeq, par)
	if err != nil {
		return nil, fmt.Errorf("bench: verify: %w", err)
	}
	rep.Verified, err = matrix.AllClose(lastSeq.Seq(), par.Par(), matrix.WithEpsilon(r.cfg.Epsilon))
	if err != nil {
		return nil, fmt.Errorf("bench: verify: %w", err)
	}
	if !rep.Verified {
		log.Warn().
			Float64("max_diff", rep.MaxDiff).
			Float64("epsilon", r.cfg.Epsilon).
			Msg("verification failed")
		return rep, fmt.Errorf("max diff %g > %g: %w", rep.MaxDiff, r.cfg.Epsilon, ErrVerification)
	}
	log.Info().Float64("max_diff", rep.MaxDiff).Float64("speedup", rep.Speedup()).Msg("benchmark finished")

	return rep, nil
}

// warmUp primes caches and the allocator with one untimed, mode-appropriate pass.
func (r *runner) warmUp() error {
	s, err := r.newStore()
	if err != nil {
		return err
	}
	defer s.Free()

	r.opt.log.Debug().Msg("warm-up")
	if r.cfg.Mode == ModeParallel {
		return r.parallel(s, r.ranges)
	}

	return mmm.Sequential(s)
}

// sequentialPasses runs the timed sequential loop. In parallel mode the last
// pass's store is returned still allocated, for verification.
func (r *runner) sequentialPasses(rep *Report) (*mmm.Store, error) {
	var last *mmm.Store
	for run := 0; run < r.cfg.Runs; run++ {
		s, err := r.newStore()
		if err != nil {
			return nil, err
		}
		d, err := r.timed(func() error { return mmm.Sequential(s) })
		if err != nil {
			s.Free()
			return nil, err
		}
		rep.SeqTimes = append(rep.SeqTimes, d)
		r.opt.log.Debug().Int("run", run).Dur("elapsed", d).Msg("sequential pass")

		if run == r.cfg.Runs-1 && r.cfg.Mode == ModeParallel {
			last = s
			continue
		}
		s.Free()
	}

	return last, nil
}

// parallelPasses runs the timed parallel loop and returns the store holding
// the last parallel result.
func (r *runner) parallelPasses(rep *Report) (*mmm.Store, error) {
	s, err := r.newStore()
	if err != nil {
		return nil, err
	}
	for run := 0; run < r.cfg.Runs; run++ {
		if r.cfg.FreshParallelStore && run > 0 {
			s.Free()
			if s, err = r.newStore(); err != nil {
				return nil, err
			}
		}
		d, err := r.timed(func() error { return r.parallel(s, r.ranges) })
		if err != nil {
			s.Free()
			return nil, err
		}
		rep.ParTimes = append(rep.ParTimes, d)
		r.opt.log.Debug().Int("run", run).Dur("elapsed", d).Msg("parallel pass")
	}

	return s, nil
}

// safeRatio returns num/den, or NaN when den is zero.
func safeRatio(num, den float64) float64 {
	if den == 0 {
		return math.NaN()
	}

	return num / den
}
