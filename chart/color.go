package chart

import (
	"image/color"
	"math"

	"github.com/cockroachdb/errors"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ColorWhite is used for bar edges and dark theme text.
	ColorWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	// ColorBlack is the dark theme background.
	ColorBlack = color.NRGBA{A: 255}

	// DefaultColors is the bar palette used when a style names no colors.
	DefaultColors = []color.Color{
		MustHex("#FF6B6B"),
		MustHex("#4ECDC4"),
		MustHex("#45B7D1"),
		MustHex("#96CEB4"),
	}
)

// ParseHex parses a "#rrggbb" or "#rgb" color.
func ParseHex(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustHex is ParseHex for literals; it panics on malformed input.
func MustHex(s string) color.Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha scales the opacity of c by alpha, which is clamped to [0, 1].
func WithAlpha(c color.Color, alpha float64) color.Color {
	alpha = math.Max(0, math.Min(1, alpha))
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * alpha))
	return n
}
