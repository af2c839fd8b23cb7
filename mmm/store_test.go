package mmm_test

import (
	"testing"

	"github.com/katalvlaran/mmbench/matrix"
	"github.com/katalvlaran/mmbench/mmm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustStore builds and initialises a store or fails the test.
func mustStore(t testing.TB, size int, fill mmm.Fill) *mmm.Store {
	t.Helper()
	s, err := mmm.NewStore(size, fill)
	require.NoError(t, err)
	require.NoError(t, s.Init())

	return s
}

func TestNewStore_InvalidSize(t *testing.T) {
	_, err := mmm.NewStore(0, nil)
	assert.ErrorIs(t, err, mmm.ErrInvalidSize)

	_, err = mmm.NewStore(-3, mmm.FillOnes())
	assert.ErrorIs(t, err, mmm.ErrInvalidSize)
}

func TestStore_Lifecycle(t *testing.T) {
	s, err := mmm.NewStore(4, nil)
	require.NoError(t, err)
	assert.False(t, s.Ready())
	assert.Equal(t, mmm.FillNameIndex, s.Fill().Name())
	assert.Nil(t, s.A())

	require.NoError(t, s.Init())
	require.True(t, s.Ready())
	for _, m := range []*matrix.Dense{s.A(), s.B(), s.Seq(), s.Par()} {
		require.NotNil(t, m)
		r, c := m.Shape()
		assert.Equal(t, [2]int{4, 4}, [2]int{r, c})
	}
	// Results start zeroed; operands follow the index fill.
	v, err := s.Seq().At(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	v, err = s.A().At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	v, err = s.B().At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	s.Free()
	assert.False(t, s.Ready())
	assert.Nil(t, s.Par())
	s.Free() // idempotent

	// Store can be re-initialised after Free.
	require.NoError(t, s.Init())
	assert.True(t, s.Ready())
}

// TestStore_InitFreshBuffers: every Init yields new, independent matrices.
func TestStore_InitFreshBuffers(t *testing.T) {
	s := mustStore(t, 3, nil)
	first := s.Seq()
	require.NoError(t, first.Set(0, 0, 42))

	require.NoError(t, s.Init())
	assert.NotSame(t, first, s.Seq())
	v, err := s.Seq().At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestStore_Reset(t *testing.T) {
	s := mustStore(t, 3, mmm.FillOnes())
	require.NoError(t, mmm.Sequential(s))

	require.NoError(t, s.Reset(s.Seq()))
	s.Seq().Do(func(i, j int, v float64) bool {
		assert.Equal(t, 0.0, v, "Seq[%d][%d]", i, j)
		return true
	})

	assert.ErrorIs(t, s.Reset(s.A()), mmm.ErrNotResult)
	assert.ErrorIs(t, s.Reset(nil), mmm.ErrNotResult)

	s.Free()
	assert.ErrorIs(t, s.Reset(nil), mmm.ErrStoreEmpty)
}

func TestParseFill(t *testing.T) {
	for name, want := range map[string]string{
		"":       mmm.FillNameIndex,
		"index":  mmm.FillNameIndex,
		"ones":   mmm.FillNameOnes,
		"seeded": "seeded(7)",
	} {
		f, err := mmm.ParseFill(name, 7)
		require.NoError(t, err, name)
		assert.Equal(t, want, f.Name())
	}

	_, err := mmm.ParseFill("random", 0)
	assert.ErrorIs(t, err, mmm.ErrUnknownFill)
}

// TestFillSeeded_Reproducible: same seed → same operands; other seed → different.
func TestFillSeeded_Reproducible(t *testing.T) {
	s1 := mustStore(t, 8, mmm.FillSeeded(11))
	s2 := mustStore(t, 8, mmm.FillSeeded(11))
	s3 := mustStore(t, 8, mmm.FillSeeded(12))

	d, err := matrix.MaxAbsDiff(s1.A(), s2.A())
	require.NoError(t, err)
	assert.Zero(t, d)
	d, err = matrix.MaxAbsDiff(s1.B(), s2.B())
	require.NoError(t, err)
	assert.Zero(t, d)

	d, err = matrix.MaxAbsDiff(s1.A(), s3.A())
	require.NoError(t, err)
	assert.NotZero(t, d)

	s1.A().Do(func(i, j int, v float64) bool {
		assert.True(t, v >= 0 && v < 1, "A[%d][%d]=%v", i, j, v)
		return true
	})
}
