// SPDX-License-Identifier: MIT

package mmm

import (
	"fmt"

	"github.com/katalvlaran/mmbench/matrix"
)

const (
	opVerify     = "Verify"
	opVerifyPair = "VerifyPair"
)

// Verify returns max |Seq[i][j] - Par[i][j]| within one store.
func Verify(s *Store) (float64, error) {
	if !s.Ready() {
		return 0, storeErrorf(opVerify, ErrStoreEmpty)
	}
	d, err := matrix.MaxAbsDiff(s.seq, s.par)
	if err != nil {
		return 0, storeErrorf(opVerify, err)
	}

	return d, nil
}

// VerifyPair compares the sequential result held by seq with the parallel
// result held by par. Both stores must be ready and of equal size.
func VerifyPair(seq, par *Store) (float64, error) {
	if !seq.Ready() || !par.Ready() {
		return 0, storeErrorf(opVerifyPair, ErrStoreEmpty)
	}
	if seq.size != par.size {
		return 0, storeErrorf(opVerifyPair, fmt.Errorf("%d vs %d: %w", seq.size, par.size, ErrSizeMismatch))
	}
	d, err := matrix.MaxAbsDiff(seq.seq, par.par)
	if err != nil {
		return 0, storeErrorf(opVerifyPair, err)
	}

	return d, nil
}
