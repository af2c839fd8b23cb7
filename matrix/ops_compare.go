// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison of two same-shaped matrices.
//
// Purpose:
//   - MaxAbsDiff is the verifier's core: max |a[i,j] - b[i,j]| over all cells.
//   - AllClose turns it into a pass/fail decision under an absolute tolerance.

package matrix

import (
	"fmt"
	"math"
)

const (
	opMaxAbsDiff = "MaxAbsDiff"
	opAllClose   = "AllClose"
)

// MaxAbsDiff returns the maximum absolute element-wise difference of a and b.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: if both are *Dense, scan the flat buffers; otherwise use At in i→j order.
//
// Behavior highlights:
//   - Returns 0 for identical matrices.
//   - A NaN difference short-circuits and is returned as NaN, so it can
//     never be mistaken for agreement.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}

	var maxDiff, d float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				d = math.Abs(da.data[idx] - db.data[idx])
				if math.IsNaN(d) {
					return d, nil
				}
				if d > maxDiff {
					maxDiff = d
				}
			}

			return maxDiff, nil
		}
	}

	var (
		i, j   int
		av, bv float64
		err    error
	)
	rows, cols := a.Rows(), a.Cols()
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return 0, matrixErrorf(opMaxAbsDiff, fmt.Errorf("a: %w", err))
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, matrixErrorf(opMaxAbsDiff, fmt.Errorf("b: %w", err))
			}
			d = math.Abs(av - bv)
			if math.IsNaN(d) {
				return d, nil
			}
			if d > maxDiff {
				maxDiff = d
			}
		}
	}

	return maxDiff, nil
}

// AllClose reports whether MaxAbsDiff(a, b) ≤ eps (DefaultEpsilon unless WithEpsilon is given).
// Errors: same as MaxAbsDiff.
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	d, err := MaxAbsDiff(a, b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return d <= o.eps, nil
}
