// SPDX-License-Identifier: MIT

package mmm

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/mmbench/matrix"
)

// Fill names.
const (
	FillNameIndex  = "index"
	FillNameOnes   = "ones"
	FillNameSeeded = "seeded"
)

// Fill populates the operands of a freshly allocated store.
// Implementations must be deterministic: the same size (and seed) always
// yields the same A and B.
type Fill interface {
	Name() string
	Populate(a, b *matrix.Dense) error
}

// FillIndex returns the default scheme A[i][j] = i, B[i][j] = j,
// whose product is C[i][j] = size*i*j.
func FillIndex() Fill { return indexFill{} }

// FillOnes returns the all-ones scheme; every product element equals size.
func FillOnes() Fill { return onesFill{} }

// FillSeeded returns uniform [0,1) operands drawn from a PCG stream seeded with seed.
func FillSeeded(seed uint64) Fill { return seededFill{seed: seed} }

// ParseFill maps a scheme name to a Fill. seed is only used by "seeded".
func ParseFill(name string, seed uint64) (Fill, error) {
	switch name {
	case FillNameIndex, "":
		return FillIndex(), nil
	case FillNameOnes:
		return FillOnes(), nil
	case FillNameSeeded:
		return FillSeeded(seed), nil
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownFill)
}

type indexFill struct{}

func (indexFill) Name() string { return FillNameIndex }

func (indexFill) Populate(a, b *matrix.Dense) error {
	if err := a.Apply(func(i, _ int, _ float64) float64 { return float64(i) }); err != nil {
		return err
	}

	return b.Apply(func(_, j int, _ float64) float64 { return float64(j) })
}

type onesFill struct{}

func (onesFill) Name() string { return FillNameOnes }

func (onesFill) Populate(a, b *matrix.Dense) error {
	one := func(int, int, float64) float64 { return 1 }
	if err := a.Apply(one); err != nil {
		return err
	}

	return b.Apply(one)
}

type seededFill struct{ seed uint64 }

func (f seededFill) Name() string { return fmt.Sprintf("%s(%d)", FillNameSeeded, f.seed) }

// Populate draws A then B from one stream in row-major order.
func (f seededFill) Populate(a, b *matrix.Dense) error {
	rng := rand.New(rand.NewPCG(f.seed, f.seed^0x9e3779b97f4a7c15))
	next := func(int, int, float64) float64 { return rng.Float64() }
	if err := a.Apply(next); err != nil {
		return err
	}

	return b.Apply(next)
}
