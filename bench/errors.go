// SPDX-License-Identifier: MIT

package bench

import "errors"

var (
	// ErrInvalidMode indicates a mode other than sequential or parallel.
	ErrInvalidMode = errors.New("bench: invalid mode")

	// ErrInvalidSize indicates a non-positive matrix size.
	ErrInvalidSize = errors.New("bench: size must be a positive integer")

	// ErrInvalidThreads indicates a non-positive thread count.
	ErrInvalidThreads = errors.New("bench: threads must be a positive integer")

	// ErrTooManyThreads indicates more threads than matrix rows in parallel mode.
	ErrTooManyThreads = errors.New("bench: threads must not exceed size")

	// ErrInvalidRuns indicates a non-positive number of timed runs.
	ErrInvalidRuns = errors.New("bench: runs must be a positive integer")

	// ErrInvalidEpsilon indicates a negative or non-finite verification tolerance.
	ErrInvalidEpsilon = errors.New("bench: epsilon must be finite and >= 0")

	// ErrVerification indicates that the parallel result diverged from the
	// sequential one by more than the configured tolerance.
	ErrVerification = errors.New("bench: parallel result differs from sequential result")
)
