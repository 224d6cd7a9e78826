package chart

import (
	"image/color"
)

// Dataset is the paired labels and values of one chart, in display order.
type Dataset struct {
	Labels []string
	Values []float64
}

// Validate checks that the dataset is non-empty, that every label has a
// value, that labels are unique and that values are finite.
func (d Dataset) Validate() error {
	if len(d.Labels) != len(d.Values) {
		return invalidf("%d labels but %d values", len(d.Labels), len(d.Values))
	}
	if len(d.Labels) == 0 {
		return invalidf("no bars")
	}
	seen := make(map[string]struct{}, len(d.Labels))
	for i, l := range d.Labels {
		if _, ok := seen[l]; ok {
			return invalidf("duplicate label %q", l)
		}
		seen[l] = struct{}{}
		if !isFinite(d.Values[i]) {
			return invalidf("value %v of %q is not finite", d.Values[i], l)
		}
	}
	return nil
}

// BarStyle is the appearance of the bars. Colors are reused cyclically;
// an empty list selects DefaultColors. EdgeWidth is in points and zero
// disables the outline. Alpha of zero means opaque.
type BarStyle struct {
	Colors    []color.Color
	EdgeColor color.Color
	EdgeWidth float64
	Alpha     float64
}

func (s BarStyle) validate() error {
	if s.Alpha < 0 || s.Alpha > 1 {
		return invalidf("alpha %v outside [0, 1]", s.Alpha)
	}
	if s.EdgeWidth < 0 || !isFinite(s.EdgeWidth) {
		return invalidf("edge width %v", s.EdgeWidth)
	}
	for i, c := range s.Colors {
		if c == nil {
			return invalidf("color %d is nil", i)
		}
	}
	return nil
}

// color returns the fill of bar i with the style opacity applied.
func (s BarStyle) color(i int) color.Color {
	colors := s.Colors
	if len(colors) == 0 {
		colors = DefaultColors
	}
	return WithAlpha(colors[i%len(colors)], s.opacity())
}

func (s BarStyle) edge() color.Color {
	if s.EdgeColor == nil || s.EdgeWidth == 0 {
		return nil
	}
	return WithAlpha(s.EdgeColor, s.opacity())
}

func (s BarStyle) opacity() float64 {
	if s.Alpha == 0 {
		return 1
	}
	return s.Alpha
}

// Annotation places Format(value) above each bar, with the bottom of the
// text at value+Offset in data units. A nil Format prints the shortest
// exact decimal.
type Annotation struct {
	Format ValueFormatter
	Offset float64
}

func (a Annotation) format(v float64) string {
	if a.Format == nil {
		return ShortestFormatter("")(v)
	}
	return a.Format(v)
}

// Metadata is the text around a chart and where it is written.
type Metadata struct {
	Title      string
	XAxisLabel string
	YAxisLabel string
	OutputPath string
}
