package chart

import (
	"math"
)

// ContinuousRange is a closed interval of data values mapped onto an axis.
type ContinuousRange struct {
	Min float64
	Max float64
}

// IsValid reports whether the range is non-empty and its bounds and width
// are finite.
func (r ContinuousRange) IsValid() bool {
	return isFinite(r.Min) && isFinite(r.Max) && r.Max > r.Min && isFinite(r.Delta())
}

// Delta returns the width of the range.
func (r ContinuousRange) Delta() float64 {
	return r.Max - r.Min
}

// Ticks returns evenly spaced round values inside the range, aiming for
// about target intervals, and the spacing between them. When round values
// cannot be stepped through at float64 precision it returns just the two
// bounds. An invalid range has no ticks.
func (r ContinuousRange) Ticks(target int) ([]float64, float64) {
	if !r.IsValid() {
		return nil, 0
	}
	if target < 1 {
		target = 1
	}
	step := niceStep(r.Delta() / float64(target))
	limit := 4*target + 2
	var ticks []float64
	for k := math.Ceil(r.Min/step - 1e-6); k*step <= r.Max+step*1e-6; k++ {
		if k+1 == k || len(ticks) == limit {
			return []float64{r.Min, r.Max}, r.Delta()
		}
		v := k * step
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		ticks = append(ticks, v)
	}
	return ticks, step
}

// niceStep rounds raw up to 1, 2, 2.5 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 || !isFinite(raw) {
		return 1
	}
	base := math.Pow(10, math.Floor(math.Log10(raw)))
	f := raw / base
	switch {
	case f <= 1:
		f = 1
	case f <= 2:
		f = 2
	case f <= 2.5:
		f = 2.5
	case f <= 5:
		f = 5
	default:
		f = 10
	}
	return f * base
}

// decimalsFor returns the number of decimals needed to print multiples of
// step without rounding.
func decimalsFor(step float64) int {
	for d := 0; d < 15; d++ {
		s := step * math.Pow(10, float64(d))
		if math.Abs(s-math.Round(s)) < 1e-6 {
			return d
		}
	}
	return 15
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
