// Package partition splits the rows of a square matrix into contiguous,
// disjoint ranges, one per worker.
//
// ✨ Contract:
//   - Rows(size, workers) returns exactly `workers` ranges.
//   - Range i is [i*q, (i+1)*q) with q = size / workers.
//   - The last range always ends at size, absorbing the remainder rows.
//   - The union of all ranges is [0, size): no gaps, no overlaps.
//
// ⚙️ Usage:
//
//	ranges, err := partition.Rows(1000, 8)
//	if err != nil {
//	  // ErrInvalidSize, ErrInvalidWorkers or ErrTooManyWorkers
//	}
//	for _, r := range ranges {
//	  go work(r.Start, r.End)
//	}
//
// Validate checks an arbitrary slice of ranges against the same coverage
// contract and is used as a guard before any worker is started.
package partition
