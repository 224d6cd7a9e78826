package chart

import (
	"image/color"
)

const (
	// DefaultDPI is the output resolution in dots per inch.
	DefaultDPI = 150.0
	// DefaultWidth is the canvas width in inches.
	DefaultWidth = 10.0
	// DefaultHeight is the canvas height in inches.
	DefaultHeight = 6.0
	// DefaultBarWidthRatio is the share of each category slot a bar covers.
	DefaultBarWidthRatio = 0.8

	defaultTickCount   = 6
	defaultTickLength  = 3.5 // points
	defaultTickPad     = 3.5
	defaultLabelPad    = 4.0
	defaultLineWidth   = 0.8
	defaultRangeMargin = 0.05
	tightPadInches     = 0.1
	pointsPerInch      = 72.0
)

// Theme holds the colors and font sizes shared by every element of a chart.
// Font sizes and TitlePad are in points.
type Theme struct {
	Background color.Color
	Foreground color.Color
	GridAlpha  float64

	FontSize           float64
	LabelFontSize      float64
	TitleFontSize      float64
	AnnotationFontSize float64
	TitlePad           float64
}

// DarkTheme is white text and a faint white grid on black.
func DarkTheme() Theme {
	return Theme{
		Background:         ColorBlack,
		Foreground:         ColorWhite,
		GridAlpha:          0.3,
		FontSize:           14,
		LabelFontSize:      16,
		TitleFontSize:      18,
		AnnotationFontSize: 12,
		TitlePad:           20,
	}
}

// LightTheme is DarkTheme with the colors inverted.
func LightTheme() Theme {
	t := DarkTheme()
	t.Background = ColorWhite
	t.Foreground = ColorBlack
	return t
}

// withDefaults fills zero fields from DarkTheme. The zero Theme is
// DarkTheme, grid included.
func (t Theme) withDefaults() Theme {
	d := DarkTheme()
	if t == (Theme{}) {
		return d
	}
	if t.Background == nil {
		t.Background = d.Background
	}
	if t.Foreground == nil {
		t.Foreground = d.Foreground
	}
	if t.FontSize <= 0 {
		t.FontSize = d.FontSize
	}
	if t.LabelFontSize <= 0 {
		t.LabelFontSize = d.LabelFontSize
	}
	if t.TitleFontSize <= 0 {
		t.TitleFontSize = d.TitleFontSize
	}
	if t.AnnotationFontSize <= 0 {
		t.AnnotationFontSize = d.AnnotationFontSize
	}
	return t
}

// Canvas is the figure size. Zero fields select the defaults.
type Canvas struct {
	WidthInches  float64
	HeightInches float64
	DPI          float64
}

// GetWidth returns the width in inches or DefaultWidth.
func (c Canvas) GetWidth() float64 {
	if c.WidthInches > 0 {
		return c.WidthInches
	}
	return DefaultWidth
}

// GetHeight returns the height in inches or DefaultHeight.
func (c Canvas) GetHeight() float64 {
	if c.HeightInches > 0 {
		return c.HeightInches
	}
	return DefaultHeight
}

// GetDPI returns the resolution or DefaultDPI.
func (c Canvas) GetDPI() float64 {
	if c.DPI > 0 {
		return c.DPI
	}
	return DefaultDPI
}
