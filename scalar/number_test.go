package scalar_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/scalar"
)

func TestBetween_Inclusive(t *testing.T) {
	t.Parallel()

	seen := map[int]bool{}
	for range 500 {
		v, err := scalar.Between(-2, 2)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, -2)
		assert.LessOrEqual(t, v, 2)
		seen[v] = true
	}

	assert.Len(t, seen, 5, "both bounds must be reachable")
}

func TestBetween_Widths(t *testing.T) {
	t.Parallel()

	for range 200 {
		i8, err := scalar.Between[int8](-128, 127)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, i8, int8(-128))

		u8, err := scalar.Between[uint8](250, 255)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, u8, uint8(250))

		u64, err := scalar.Between[uint64](math.MaxUint64-3, math.MaxUint64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, u64, uint64(math.MaxUint64-3))

		i64 := scalar.MustBetween[int64](math.MinInt64, math.MaxInt64)
		_ = i64

		f, err := scalar.Between(1.5, 2.5)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, f, 1.5)
		assert.LessOrEqual(t, f, 2.5)

		d, err := scalar.Between(time.Second, time.Minute)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, d, time.Second)
		assert.LessOrEqual(t, d, time.Minute)
	}
}

func TestBetween_Equal(t *testing.T) {
	t.Parallel()

	v, err := scalar.Between(7, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestBetween_InvalidRange(t *testing.T) {
	t.Parallel()

	_, err := scalar.Between(3, 2)
	require.ErrorIs(t, err, scalar.ErrInvalidRange)

	_, err = scalar.Between(1.0, -1.0)
	require.ErrorIs(t, err, scalar.ErrInvalidRange)

	assert.Panics(t, func() { scalar.MustBetween(uint(9), uint(1)) })
}

func TestFloatFullRange(t *testing.T) {
	t.Parallel()

	for range 100 {
		f := scalar.Float64()
		assert.False(t, math.IsInf(f, 0))
		assert.False(t, math.IsNaN(f))

		f32 := scalar.Float32()
		assert.False(t, math.IsInf(float64(f32), 0))
	}
}

func TestBoolWithProbability(t *testing.T) {
	t.Parallel()

	for range 100 {
		v, err := scalar.BoolWithProbability(1)
		require.NoError(t, err)
		assert.True(t, v)

		v, err = scalar.BoolWithProbability(0)
		require.NoError(t, err)
		assert.False(t, v)
	}

	_, err := scalar.BoolWithProbability(1.1)
	require.ErrorIs(t, err, scalar.ErrInvalidRange)

	_, err = scalar.BoolWithProbability(-0.1)
	require.ErrorIs(t, err, scalar.ErrInvalidRange)
}

func TestCheckRange(t *testing.T) {
	t.Parallel()

	require.NoError(t, scalar.CheckRange(0, 0))
	require.NoError(t, scalar.CheckRange(3, 6))
	require.ErrorIs(t, scalar.CheckRange(-1, 3), scalar.ErrInvalidRange)
	require.ErrorIs(t, scalar.CheckRange(4, 3), scalar.ErrInvalidRange)
}
