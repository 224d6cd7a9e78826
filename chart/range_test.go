package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNiceStep(t *testing.T) {
	tests := []struct {
		raw, want float64
	}{
		{0.2, 0.2},
		{0.17, 0.2},
		{0.023, 0.025},
		{0.00004, 0.00005},
		{0.6, 1},
		{7, 10},
		{1, 1},
		{0, 1},
		{math.NaN(), 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, niceStep(tt.raw), tt.want*1e-9, "raw %v", tt.raw)
	}
}

func TestDecimalsFor(t *testing.T) {
	assert.Equal(t, 0, decimalsFor(1))
	assert.Equal(t, 0, decimalsFor(50))
	assert.Equal(t, 1, decimalsFor(0.5))
	assert.Equal(t, 3, decimalsFor(0.025))
	assert.Equal(t, 5, decimalsFor(0.00005))
}

func TestTicks(t *testing.T) {
	ticks, step := ContinuousRange{Min: 0, Max: 1}.Ticks(5)
	assert.InDelta(t, 0.2, step, 1e-12)
	require.Len(t, ticks, 6)
	for i, v := range ticks {
		assert.InDelta(t, float64(i)*0.2, v, 1e-12)
	}

	ticks, _ = ContinuousRange{Min: -1, Max: 1}.Ticks(4)
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, ticks)
	assert.False(t, math.Signbit(ticks[2]))
}

func TestTicksStayInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Float64Range(-1000, 1000).Draw(t, "min")
		span := rapid.Float64Range(1e-3, 1000).Draw(t, "span")
		target := rapid.IntRange(2, 10).Draw(t, "target")
		r := ContinuousRange{Min: lo, Max: lo + span}

		ticks, step := r.Ticks(target)
		require.NotEmpty(t, ticks)
		require.Greater(t, step, 0.0)
		slack := step * 1e-5
		for i, v := range ticks {
			require.GreaterOrEqual(t, v, r.Min-slack)
			require.LessOrEqual(t, v, r.Max+slack)
			if i > 0 {
				require.InDelta(t, step, v-ticks[i-1], slack)
			}
		}
	})
}

func TestTicksFarFromZero(t *testing.T) {
	r := ContinuousRange{Min: 1e17, Max: 1e17 + 32}
	ticks, step := r.Ticks(5)
	assert.Equal(t, []float64{r.Min, r.Max}, ticks)
	assert.Equal(t, r.Delta(), step)

	ticks, _ = ContinuousRange{Min: 1e300, Max: 1.0000001e300}.Ticks(6)
	assert.Len(t, ticks, 2)
}

func TestTicksInvalidRange(t *testing.T) {
	ticks, step := ContinuousRange{Min: -1.7e308, Max: 1.7e308}.Ticks(6)
	assert.Empty(t, ticks)
	assert.Zero(t, step)
}

func TestTicksAreBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-1e300, 1e300).Draw(t, "a")
		b := rapid.Float64Range(-1e300, 1e300).Draw(t, "b")
		target := rapid.IntRange(1, 10).Draw(t, "target")
		r := ContinuousRange{Min: math.Min(a, b), Max: math.Max(a, b)}
		if !r.IsValid() {
			return
		}
		ticks, _ := r.Ticks(target)
		require.NotEmpty(t, ticks)
		require.LessOrEqual(t, len(ticks), 4*target+2)
	})
}

func TestRangeIsValid(t *testing.T) {
	assert.True(t, ContinuousRange{Min: 0, Max: 1}.IsValid())
	assert.False(t, ContinuousRange{Min: 1, Max: 1}.IsValid())
	assert.False(t, ContinuousRange{Min: 0, Max: math.Inf(1)}.IsValid())
	assert.False(t, ContinuousRange{Min: -math.MaxFloat64, Max: math.MaxFloat64}.IsValid())
}
