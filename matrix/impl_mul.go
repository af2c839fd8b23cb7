// SPDX-License-Identifier: MIT
// Package matrix: row-banded product kernels C[start:end, :] = A[start:end, :] × B.
//
// Purpose:
//   - One canonical triple loop shared by the sequential and the parallel paths,
//     so both produce bit-identical output for the same operands.
//   - Band granularity: a caller owning rows [start,end) of the destination can
//     compute exactly those rows without touching the rest of the buffer.
//
// Notes:
//   - Loop order is fixed: row → column → inner index, with a local accumulator
//     starting at ZeroSum. No zero-skipping, no blocking, no reordering.
package matrix

import "fmt"

// ZeroSum is the initial accumulator value for every inner product.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMulBand  = "MulBand"
	opMulRange = "MulRange"
	opMulInto  = "MulInto"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateProduct checks operands and destination for a full-shape product dst = a × b.
// Order: nil → inner dimension → destination shape → aliasing.
func validateProduct(dst, a, b *Dense) error {
	if dst == nil || a == nil || b == nil {
		return ErrNilMatrix
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return err
	}
	if rows, cols := dst.Shape(); rows != a.r || cols != b.c {
		return validatorErrorf("validateProduct: destination", ErrDimensionMismatch)
	}
	if dst.sharesStorage(a) || dst.sharesStorage(b) {
		return ErrAliasing
	}

	return nil
}

// MulBand computes the rows of a × b that the band covers and writes them
// through the band into its base matrix.
// MAIN DESCRIPTION:
//   - The band must span the full width of its base (Origin col == 0,
//     Cols == base.Cols); its rows select the rows of a that are multiplied.
//
// Implementation:
//   - Stage 1: validate band, operands, and aliasing.
//   - Stage 2: i→j→k triple loop over flat buffers; assign each sum once.
//
// Behavior highlights:
//   - Writes only rows [r0, r0+Rows()) of the base; a and b are only read.
//   - Safe to run concurrently for disjoint bands of the same base.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrBadShape (band not full width), ErrAliasing.
//
// Determinism:
//   - Fixed loop order; identical output for identical inputs, regardless of banding.
//
// Complexity:
//   - Time O(h*n*c) for a band of height h, Space O(1).
func MulBand(band *MatrixView, a, b *Dense) error {
	if band == nil || band.base == nil {
		return matrixErrorf(opMulBand, ErrNilMatrix)
	}
	dst := band.base
	if err := validateProduct(dst, a, b); err != nil {
		return matrixErrorf(opMulBand, err)
	}
	r0, c0 := band.Origin()
	if c0 != 0 || band.Cols() != dst.c {
		return matrixErrorf(opMulBand, ErrBadShape)
	}
	mulRows(dst, a, b, r0, r0+band.Rows())

	return nil
}

// MulRange computes rows [start, end) of dst = a × b.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAliasing, ErrOutOfRange.
// Complexity: O((end-start)*n*c).
func MulRange(dst, a, b *Dense, start, end int) error {
	if err := validateProduct(dst, a, b); err != nil {
		return matrixErrorf(opMulRange, err)
	}
	if err := ValidateRowRange(dst.r, start, end); err != nil {
		return matrixErrorf(opMulRange, err)
	}
	mulRows(dst, a, b, start, end)

	return nil
}

// MulInto computes the full product dst = a × b.
func MulInto(dst, a, b *Dense) error {
	if err := validateProduct(dst, a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}
	mulRows(dst, a, b, 0, dst.r)

	return nil
}

// mulRows is the unchecked kernel shared by every entry point.
// da layout: i*n + k; db layout: k*c + j; dst layout: i*c + j.
func mulRows(dst, a, b *Dense, start, end int) {
	var (
		i, j, k          int
		rowA, rowD, offB int
		n, c             = a.c, b.c
		sum              float64
	)
	for i = start; i < end; i++ {
		rowA = i * n
		rowD = i * c
		for j = 0; j < c; j++ {
			sum = ZeroSum
			offB = j
			for k = 0; k < n; k++ {
				sum += a.data[rowA+k] * b.data[offB]
				offB += c
			}
			dst.data[rowD+j] = sum
		}
	}
}
