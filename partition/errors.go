// SPDX-License-Identifier: MIT

package partition

import "errors"

var (
	// ErrInvalidSize indicates a non-positive number of rows.
	ErrInvalidSize = errors.New("partition: size must be > 0")

	// ErrInvalidWorkers indicates a non-positive worker count.
	ErrInvalidWorkers = errors.New("partition: workers must be > 0")

	// ErrTooManyWorkers indicates more workers than rows; every worker must own at least one row.
	ErrTooManyWorkers = errors.New("partition: workers must not exceed size")

	// ErrGap indicates that consecutive ranges leave rows uncovered.
	ErrGap = errors.New("partition: ranges leave a gap")

	// ErrOverlap indicates that two ranges share at least one row.
	ErrOverlap = errors.New("partition: ranges overlap")

	// ErrCoverage indicates that the ranges do not start at 0 or do not end at size.
	ErrCoverage = errors.New("partition: ranges do not cover [0, size)")

	// ErrEmptyRange indicates a range with End < Start.
	ErrEmptyRange = errors.New("partition: range end precedes start")
)
