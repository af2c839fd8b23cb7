// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"

	"github.com/samber/lo"
)

// RowRange is a half-open interval of row indices [Start, End) owned by one worker.
type RowRange struct {
	Start int // first row, inclusive
	End   int // one past the last row, exclusive
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int { return r.End - r.Start }

// Contains reports whether row lies in [Start, End).
func (r RowRange) Contains(row int) bool { return row >= r.Start && row < r.End }

// String renders the range as "[start,end)".
func (r RowRange) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Rows partitions [0, size) into exactly `workers` contiguous ranges.
//
// Algorithm:
//  1. q = size / workers (integer division).
//  2. Range i = [i*q, (i+1)*q).
//  3. The last range's End is forced to size, absorbing size % workers rows.
//
// Errors (checked in this order, before anything is allocated):
//   - ErrInvalidSize: size ≤ 0.
//   - ErrInvalidWorkers: workers ≤ 0.
//   - ErrTooManyWorkers: workers > size.
//
// Complexity: O(workers) time and memory.
func Rows(size, workers int) ([]RowRange, error) {
	if size <= 0 {
		return nil, fmt.Errorf("Rows(%d,%d): %w", size, workers, ErrInvalidSize)
	}
	if workers <= 0 {
		return nil, fmt.Errorf("Rows(%d,%d): %w", size, workers, ErrInvalidWorkers)
	}
	if workers > size {
		return nil, fmt.Errorf("Rows(%d,%d): %w", size, workers, ErrTooManyWorkers)
	}

	q := size / workers
	ranges := make([]RowRange, workers)
	for i := range ranges {
		ranges[i] = RowRange{Start: i * q, End: (i + 1) * q}
	}
	ranges[workers-1].End = size

	return ranges, nil
}

// Validate checks that ranges, taken in order, tile [0, size) exactly.
//
// Ranges must be ascending; an out-of-order slice is reported as a gap or
// an overlap at the first offending position. Zero-length ranges are legal.
//
// Errors: ErrInvalidSize, ErrCoverage, ErrEmptyRange, ErrOverlap, ErrGap.
// Complexity: O(len(ranges)).
func Validate(size int, ranges []RowRange) error {
	if size <= 0 {
		return fmt.Errorf("Validate(%d): %w", size, ErrInvalidSize)
	}
	if len(ranges) == 0 || ranges[0].Start != 0 {
		return fmt.Errorf("Validate(%d): first range must start at 0: %w", size, ErrCoverage)
	}

	var prev RowRange
	for i, r := range ranges {
		if r.End < r.Start {
			return fmt.Errorf("Validate(%d): range %d %v: %w", size, i, r, ErrEmptyRange)
		}
		if i > 0 {
			switch {
			case r.Start < prev.End:
				return fmt.Errorf("Validate(%d): ranges %d %v and %d %v: %w", size, i-1, prev, i, r, ErrOverlap)
			case r.Start > prev.End:
				return fmt.Errorf("Validate(%d): ranges %d %v and %d %v: %w", size, i-1, prev, i, r, ErrGap)
			}
		}
		prev = r
	}
	if prev.End != size {
		return fmt.Errorf("Validate(%d): last range ends at %d: %w", size, prev.End, ErrCoverage)
	}

	return nil
}

// Sizes returns the row count of every range, in order.
func Sizes(ranges []RowRange) []int {
	return lo.Map(ranges, func(r RowRange, _ int) int { return r.Len() })
}

// Total returns the number of rows covered by ranges (counting overlaps twice).
func Total(ranges []RowRange) int {
	return lo.SumBy(ranges, func(r RowRange) int { return r.Len() })
}
