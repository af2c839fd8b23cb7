// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mmbench/matrix"
	"github.com/katalvlaran/mmbench/mmm"
)

// DefaultRuns is the number of timed passes averaged per mode.
const DefaultRuns = 4

// Mode selects which execution paths are measured.
type Mode int

const (
	// ModeSequential measures the single-goroutine product only.
	ModeSequential Mode = iota

	// ModeParallel measures both paths and verifies them against each other.
	ModeParallel
)

// Mode tokens accepted on the command line.
const (
	TokenSequential = "S"
	TokenParallel   = "P"
)

// String returns the lower-case mode name used in reports.
func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModeParallel:
		return "parallel"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps the literal tokens "S" and "P" to a Mode.
func ParseMode(tok string) (Mode, error) {
	switch tok {
	case TokenSequential:
		return ModeSequential, nil
	case TokenParallel:
		return ModeParallel, nil
	}

	return 0, fmt.Errorf("%q: %w", tok, ErrInvalidMode)
}

// Config describes one benchmark invocation.
//
// Fields:
//   - Mode: sequential only, or sequential + parallel.
//   - Threads: worker count; forced to 1 in sequential mode.
//   - Size: matrix dimension.
//   - Runs: timed passes per mode.
//   - Fill: operand population scheme (nil → index fill).
//   - Epsilon: verification tolerance on the max abs difference.
//   - FreshParallelStore: allocate a new store for every parallel pass.
type Config struct {
	Mode               Mode
	Threads            int
	Size               int
	Runs               int
	Fill               mmm.Fill
	Epsilon            float64
	FreshParallelStore bool
}

// DefaultConfig returns a sequential configuration with documented defaults.
// Size is left at 0 and must be set by the caller.
func DefaultConfig() Config {
	return Config{
		Mode:    ModeSequential,
		Threads: 1,
		Runs:    DefaultRuns,
		Fill:    mmm.FillIndex(),
		Epsilon: matrix.DefaultEpsilon,
	}
}

// Validate checks c without allocating anything.
// Order: mode → size → threads → threads vs size → runs → epsilon.
func (c Config) Validate() error {
	if c.Mode != ModeSequential && c.Mode != ModeParallel {
		return fmt.Errorf("Config.Validate: %v: %w", c.Mode, ErrInvalidMode)
	}
	if c.Size <= 0 {
		return fmt.Errorf("Config.Validate: size %d: %w", c.Size, ErrInvalidSize)
	}
	if c.Threads <= 0 {
		return fmt.Errorf("Config.Validate: threads %d: %w", c.Threads, ErrInvalidThreads)
	}
	if c.Mode == ModeParallel && c.Threads > c.Size {
		return fmt.Errorf("Config.Validate: threads %d > size %d: %w", c.Threads, c.Size, ErrTooManyThreads)
	}
	if c.Runs <= 0 {
		return fmt.Errorf("Config.Validate: runs %d: %w", c.Runs, ErrInvalidRuns)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("Config.Validate: epsilon %v: %w", c.Epsilon, ErrInvalidEpsilon)
	}

	return nil
}

// normalized returns a copy with mode-dependent defaults applied.
func (c Config) normalized() Config {
	if c.Mode == ModeSequential {
		c.Threads = 1
	}
	if c.Fill == nil {
		c.Fill = mmm.FillIndex()
	}

	return c
}
