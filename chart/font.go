package chart

import (
	"math"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// TextStyle selects the font of a piece of text. Size is in points.
type TextStyle struct {
	Size float64
	Bold bool
}

var (
	fontsOnce   sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
	fontsErr    error
)

// loadFonts parses the embedded Go fonts, which cover Latin and Cyrillic.
// Parsed fonts are immutable and shared by every chart.
func loadFonts() (regular, bold *truetype.Font, err error) {
	fontsOnce.Do(func() {
		if regularFont, fontsErr = truetype.Parse(goregular.TTF); fontsErr != nil {
			fontsErr = errors.Wrap(fontsErr, "parsing regular font")
			return
		}
		if boldFont, fontsErr = truetype.Parse(gobold.TTF); fontsErr != nil {
			fontsErr = errors.Wrap(fontsErr, "parsing bold font")
		}
	})
	return regularFont, boldFont, fontsErr
}

type textMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height is the line height without leading.
func (m textMetrics) Height() float64 {
	return m.Ascent + m.Descent
}

// fontCache hands out faces for one resolution. font.Face is not safe for
// concurrent use, so each chart render owns its own cache.
type fontCache struct {
	dpi     float64
	regular *truetype.Font
	bold    *truetype.Font
	faces   map[TextStyle]font.Face
}

func newFontCache(dpi float64) (*fontCache, error) {
	regular, bold, err := loadFonts()
	if err != nil {
		return nil, err
	}
	return &fontCache{
		dpi:     dpi,
		regular: regular,
		bold:    bold,
		faces:   make(map[TextStyle]font.Face),
	}, nil
}

func (fc *fontCache) font(ts TextStyle) *truetype.Font {
	if ts.Bold {
		return fc.bold
	}
	return fc.regular
}

func (fc *fontCache) face(ts TextStyle) font.Face {
	if f, ok := fc.faces[ts]; ok {
		return f
	}
	f := truetype.NewFace(fc.font(ts), &truetype.Options{
		Size:    ts.Size,
		DPI:     fc.dpi,
		Hinting: font.HintingNone,
	})
	fc.faces[ts] = f
	return f
}

func (fc *fontCache) measure(s string, ts TextStyle) textMetrics {
	face := fc.face(ts)
	m := face.Metrics()
	return textMetrics{
		Width:   unfix(font.MeasureString(face, s)),
		Ascent:  unfix(m.Ascent),
		Descent: unfix(m.Descent),
	}
}

func fix(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func unfix(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func point(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fix(x), Y: fix(y)}
}
