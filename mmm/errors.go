// SPDX-License-Identifier: MIT

package mmm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a non-positive matrix size.
	ErrInvalidSize = errors.New("mmm: size must be > 0")

	// ErrStoreEmpty indicates that the store was never initialised or was freed.
	ErrStoreEmpty = errors.New("mmm: store holds no matrices")

	// ErrNotResult indicates that Reset was asked to clear a matrix that is not Seq or Par.
	ErrNotResult = errors.New("mmm: matrix is not a result of this store")

	// ErrSizeMismatch indicates that two stores of different sizes were compared.
	ErrSizeMismatch = errors.New("mmm: stores differ in size")

	// ErrUnknownFill indicates an unrecognised fill scheme name.
	ErrUnknownFill = errors.New("mmm: unknown fill scheme")
)

// storeErrorf wraps err with an operation tag.
func storeErrorf(op string, err error) error {
	return fmt.Errorf("mmm.%s: %w", op, err)
}
