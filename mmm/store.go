// SPDX-License-Identifier: MIT

package mmm

import (
	"fmt"

	"github.com/katalvlaran/mmbench/matrix"
)

const (
	opInit  = "Init"
	opReset = "Reset"
)

// Store is the explicit context of one benchmark phase. It exclusively owns
// the operands A, B and the results Seq, Par; multipliers borrow them.
//
// Lifecycle: NewStore → Init → (multiply/verify)* → Free. Init may be called
// again after Free; calling it on a ready store reallocates everything.
type Store struct {
	size int
	fill Fill

	a, b     *matrix.Dense
	seq, par *matrix.Dense
}

// NewStore validates size and binds the fill scheme; nothing is allocated yet.
// A nil fill selects FillIndex.
func NewStore(size int, fill Fill) (*Store, error) {
	if size <= 0 {
		return nil, fmt.Errorf("NewStore(%d): %w", size, ErrInvalidSize)
	}
	if fill == nil {
		fill = FillIndex()
	}

	return &Store{size: size, fill: fill}, nil
}

// Size returns the matrix dimension.
func (s *Store) Size() int { return s.size }

// Fill returns the scheme used to populate A and B.
func (s *Store) Fill() Fill { return s.fill }

// Ready reports whether the four matrices are allocated. A nil store is never ready.
func (s *Store) Ready() bool { return s != nil && s.a != nil }

// Init allocates all four matrices, fills A and B, and leaves Seq and Par zeroed.
func (s *Store) Init() error {
	var err error
	mats := make([]*matrix.Dense, 4)
	for i := range mats {
		if mats[i], err = matrix.NewSquare(s.size); err != nil {
			return storeErrorf(opInit, err)
		}
	}
	if err = s.fill.Populate(mats[0], mats[1]); err != nil {
		return storeErrorf(opInit, fmt.Errorf("fill %s: %w", s.fill.Name(), err))
	}
	s.a, s.b, s.seq, s.par = mats[0], mats[1], mats[2], mats[3]

	return nil
}

// Free drops every matrix so the memory can be reclaimed. Safe to call twice.
func (s *Store) Free() {
	s.a, s.b, s.seq, s.par = nil, nil, nil, nil
}

// Reset zeroes one of the store's result matrices in place.
func (s *Store) Reset(m *matrix.Dense) error {
	if !s.Ready() {
		return storeErrorf(opReset, ErrStoreEmpty)
	}
	if m == nil || (m != s.seq && m != s.par) {
		return storeErrorf(opReset, ErrNotResult)
	}
	m.Zero()

	return nil
}

// A returns the left operand (nil when the store is empty).
func (s *Store) A() *matrix.Dense { return s.a }

// B returns the right operand (nil when the store is empty).
func (s *Store) B() *matrix.Dense { return s.b }

// Seq returns the sequential result (nil when the store is empty).
func (s *Store) Seq() *matrix.Dense { return s.seq }

// Par returns the parallel result (nil when the store is empty).
func (s *Store) Par() *matrix.Dense { return s.par }
