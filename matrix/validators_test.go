// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mmbench/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidators covers the nil → shape priority of the composite validators.
func TestValidators(t *testing.T) {
	sq := MustDense(t, 3, 3)
	rect := MustDense(t, 3, 2)
	var typedNil *matrix.Dense

	require.NoError(t, matrix.ValidateNotNil(sq))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateBinarySameShape(sq, sq.Clone()))
	require.ErrorIs(t, matrix.ValidateBinarySameShape(sq, rect), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, rect), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(sq, rect))
	require.ErrorIs(t, matrix.ValidateMulCompatible(rect, rect), matrix.ErrDimensionMismatch)
}

func TestValidateRowRange(t *testing.T) {
	require.NoError(t, matrix.ValidateRowRange(4, 0, 4))
	require.NoError(t, matrix.ValidateRowRange(4, 2, 2))
	require.ErrorIs(t, matrix.ValidateRowRange(4, -1, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateRowRange(4, 3, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateRowRange(4, 0, 5), matrix.ErrOutOfRange)
}
