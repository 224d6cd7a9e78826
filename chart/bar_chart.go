package chart

import (
	"bytes"
	"image/color"
	"io"
	"math"

	"github.com/cockroachdb/errors"
)

// XAxis names the category axis.
type XAxis struct {
	Name string
}

// YAxis names the value axis. ValueFormatter formats tick labels and Range
// fixes the axis limits; without them ticks print just enough decimals and
// the range grows to fit the bars and their annotations.
type YAxis struct {
	Name           string
	ValueFormatter ValueFormatter
	Range          *ContinuousRange
}

// BarChart is a single series bar chart with a value printed above each bar.
type BarChart struct {
	Title string
	XAxis XAxis
	YAxis YAxis

	Canvas Canvas
	Theme  Theme
	// BarWidthRatio is the share of each category slot covered by its bar.
	BarWidthRatio float64

	Data       Dataset
	Style      BarStyle
	Annotation Annotation
}

// GetBarWidthRatio returns BarWidthRatio or DefaultBarWidthRatio.
func (bc *BarChart) GetBarWidthRatio() float64 {
	if bc.BarWidthRatio > 0 && bc.BarWidthRatio <= 1 {
		return bc.BarWidthRatio
	}
	return DefaultBarWidthRatio
}

// TextLayout is a positioned string. X and Y are the left end of the
// baseline, except for Rotated text where they are the left and bottom
// edges of the turned text.
type TextLayout struct {
	Text    string
	Style   TextStyle
	X       float64
	Y       float64
	Width   float64
	Rotated bool
}

// Tick is a labeled value on the y axis at pixel row Pos.
type Tick struct {
	Value float64
	Pos   float64
	Label TextLayout
}

// BarLayout is the geometry of one bar, its category label and annotation.
type BarLayout struct {
	Label      string
	Value      float64
	Box        Box
	Center     float64
	Fill       color.Color
	Edge       color.Color
	EdgeWidth  float64
	Tick       TextLayout
	Annotation TextLayout
}

// Layout is everything needed to paint a chart. It depends only on the
// chart configuration, so equal charts produce equal layouts.
type Layout struct {
	Width      int
	Height     int
	DPI        float64
	Plot       Box
	Range      ContinuousRange
	TickLength float64

	YTicks []Tick
	Bars   []BarLayout

	Title  TextLayout
	XLabel TextLayout
	YLabel TextLayout
}

// YPos maps a data value to a pixel row.
func (l *Layout) YPos(v float64) float64 {
	return l.Plot.Bottom - (v-l.Range.Min)/l.Range.Delta()*l.Plot.Height()
}

func (l *Layout) texts() []TextLayout {
	var out []TextLayout
	for _, t := range l.YTicks {
		out = append(out, t.Label)
	}
	for _, b := range l.Bars {
		out = append(out, b.Tick, b.Annotation)
	}
	return append(out, l.XLabel, l.YLabel, l.Title)
}

// Validate checks the dataset and the bar style.
func (bc *BarChart) Validate() error {
	if err := bc.Data.Validate(); err != nil {
		return err
	}
	if err := bc.Style.validate(); err != nil {
		return err
	}
	if !isFinite(bc.Annotation.Offset) {
		return invalidf("annotation offset %v", bc.Annotation.Offset)
	}
	return nil
}

// Layout validates the chart and computes its geometry.
func (bc *BarChart) Layout() (*Layout, error) {
	if err := bc.Validate(); err != nil {
		return nil, err
	}
	fonts, err := newFontCache(bc.Canvas.GetDPI())
	if err != nil {
		return nil, err
	}
	return bc.layout(fonts)
}

// Render lays the chart out, paints it with a renderer from rp and writes
// the encoded image to w.
func (bc *BarChart) Render(rp RendererProvider, w io.Writer) error {
	l, err := bc.Layout()
	if err != nil {
		return err
	}
	r, err := rp(l.Width, l.Height, l.DPI)
	if err != nil {
		return err
	}
	if err := bc.paint(r, l); err != nil {
		return err
	}
	return ioFailure(r.Save(w), "encoding chart %q", bc.Title)
}

// Save renders the chart in the format named by the extension of path and
// replaces path with the result. Nothing is written when rendering fails.
func (bc *BarChart) Save(path string) error {
	rp, err := ProviderForPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := bc.Render(rp, &buf); err != nil {
		return errors.Wrapf(err, "rendering %s", path)
	}
	return writeFileAtomic(path, buf.Bytes())
}

func (bc *BarChart) layout(fonts *fontCache) (*Layout, error) {
	th := bc.Theme.withDefaults()
	dpi := bc.Canvas.GetDPI()
	pt := dpi / pointsPerInch
	l := &Layout{
		Width:      int(math.Round(bc.Canvas.GetWidth() * dpi)),
		Height:     int(math.Round(bc.Canvas.GetHeight() * dpi)),
		DPI:        dpi,
		TickLength: defaultTickLength * pt,
	}

	tickStyle := TextStyle{Size: th.FontSize}
	labelStyle := TextStyle{Size: th.LabelFontSize, Bold: true}
	titleStyle := TextStyle{Size: th.TitleFontSize, Bold: true}
	annotationStyle := TextStyle{Size: th.AnnotationFontSize, Bold: true}

	margin := th.FontSize * pt
	tickPad := defaultTickPad * pt
	labelPad := defaultLabelPad * pt
	tick := fonts.measure("", tickStyle)

	// Vertical extent first: the y range depends on the plot height.
	top := margin
	if bc.Title != "" {
		m := fonts.measure(bc.Title, titleStyle)
		l.Title = TextLayout{Text: bc.Title, Style: titleStyle, Y: top + m.Ascent, Width: m.Width}
		top += m.Height() + th.TitlePad*pt
	}
	bottom := float64(l.Height) - margin
	if bc.XAxis.Name != "" {
		m := fonts.measure(bc.XAxis.Name, labelStyle)
		l.XLabel = TextLayout{Text: bc.XAxis.Name, Style: labelStyle, Y: bottom - m.Descent, Width: m.Width}
		bottom -= m.Height() + labelPad
	}
	bottom -= tick.Height() + tickPad + l.TickLength
	left := margin
	if bc.YAxis.Name != "" {
		m := fonts.measure(bc.YAxis.Name, labelStyle)
		l.YLabel = TextLayout{Text: bc.YAxis.Name, Style: labelStyle, X: margin, Width: m.Width, Rotated: true}
		left += m.Height() + labelPad
	}
	l.Plot = Box{Top: top, Bottom: bottom, Left: left, Right: float64(l.Width) - margin}
	if l.Plot.Height() <= 0 {
		return nil, invalidf("canvas %dx%d leaves no room for the plot", l.Width, l.Height)
	}

	annotation := fonts.measure("", annotationStyle)
	rng, err := bc.yRange(l.Plot.Height(), annotation.Height())
	if err != nil {
		return nil, err
	}
	l.Range = rng

	values, step := rng.Ticks(defaultTickCount)
	format := bc.YAxis.ValueFormatter
	if format == nil {
		format = FixedFormatter(decimalsFor(step), "")
	}
	widest := 0.0
	for _, v := range values {
		text := format(v)
		m := fonts.measure(text, tickStyle)
		widest = math.Max(widest, m.Width)
		l.YTicks = append(l.YTicks, Tick{
			Value: v,
			Label: TextLayout{Text: text, Style: tickStyle, Width: m.Width},
		})
	}
	l.Plot.Left += widest + tickPad + l.TickLength
	if l.Plot.Width() <= 0 {
		return nil, invalidf("canvas %dx%d leaves no room for the plot", l.Width, l.Height)
	}
	for i := range l.YTicks {
		t := &l.YTicks[i]
		t.Pos = l.YPos(t.Value)
		t.Label.X = l.Plot.Left - l.TickLength - tickPad - t.Label.Width
		t.Label.Y = t.Pos + (tick.Ascent-tick.Descent)/2
	}

	cx, cy := l.Plot.Center()
	l.Title.X = cx - l.Title.Width/2
	l.XLabel.X = cx - l.XLabel.Width/2
	l.YLabel.Y = cy + l.YLabel.Width/2

	n := len(bc.Data.Values)
	slot := l.Plot.Width() / float64(n)
	half := slot * bc.GetBarWidthRatio() / 2
	base := l.YPos(math.Max(rng.Min, math.Min(rng.Max, 0)))
	for i, v := range bc.Data.Values {
		label := bc.Data.Labels[i]
		center := l.Plot.Left + slot*(float64(i)+0.5)
		y := l.YPos(v)
		text := bc.Annotation.format(v)
		am := fonts.measure(text, annotationStyle)
		tm := fonts.measure(label, tickStyle)
		l.Bars = append(l.Bars, BarLayout{
			Label:     label,
			Value:     v,
			Box:       Box{Left: center - half, Right: center + half, Top: math.Min(y, base), Bottom: math.Max(y, base)},
			Center:    center,
			Fill:      bc.Style.color(i),
			Edge:      bc.Style.edge(),
			EdgeWidth: bc.Style.EdgeWidth * pt,
			Tick: TextLayout{
				Text:  label,
				Style: tickStyle,
				X:     center - tm.Width/2,
				Y:     l.Plot.Bottom + l.TickLength + tickPad + tick.Ascent,
				Width: tm.Width,
			},
			Annotation: TextLayout{
				Text:  text,
				Style: annotationStyle,
				X:     center - am.Width/2,
				Y:     l.YPos(v+bc.Annotation.Offset) - am.Descent,
				Width: am.Width,
			},
		})
	}
	return l, nil
}

// yRange returns the fixed axis range or one that starts at zero, covers
// every bar with a small margin and leaves room for each annotation of
// textHeight pixels above value+offset.
func (bc *BarChart) yRange(plotHeight, textHeight float64) (ContinuousRange, error) {
	if r := bc.YAxis.Range; r != nil {
		if !r.IsValid() {
			return ContinuousRange{}, invalidf("y range [%v, %v]", r.Min, r.Max)
		}
		return *r, nil
	}
	lo, hi := 0.0, 0.0
	for _, v := range bc.Data.Values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	lo *= 1 + defaultRangeMargin
	hi *= 1 + defaultRangeMargin
	usable := plotHeight*(1-defaultRangeMargin) - textHeight
	for _, v := range bc.Data.Values {
		top := v + bc.Annotation.Offset
		if usable > 0 {
			hi = math.Max(hi, lo+(top-lo)*plotHeight/usable)
		} else {
			hi = math.Max(hi, top)
		}
	}
	if hi <= lo {
		hi = lo + 1
	}
	rng := ContinuousRange{Min: lo, Max: hi}
	if !rng.IsValid() {
		return ContinuousRange{}, invalidf("values do not fit a finite y range [%v, %v]", lo, hi)
	}
	return rng, nil
}

func (bc *BarChart) paint(r Renderer, l *Layout) error {
	th := bc.Theme.withDefaults()
	line := defaultLineWidth * l.DPI / pointsPerInch

	r.Clear(th.Background)
	if th.GridAlpha > 0 {
		grid := WithAlpha(th.Foreground, th.GridAlpha)
		for _, t := range l.YTicks {
			r.Line(l.Plot.Left, t.Pos, l.Plot.Right, t.Pos, grid, line)
		}
		for _, b := range l.Bars {
			r.Line(b.Center, l.Plot.Top, b.Center, l.Plot.Bottom, grid, line)
		}
	}
	for _, b := range l.Bars {
		r.FillBox(b.Box, b.Fill)
		if b.Edge != nil {
			r.StrokeBox(b.Box, b.Edge, b.EdgeWidth)
		}
	}

	r.StrokeBox(l.Plot, th.Foreground, line)
	for _, t := range l.YTicks {
		r.Line(l.Plot.Left-l.TickLength, t.Pos, l.Plot.Left, t.Pos, th.Foreground, line)
	}
	for _, b := range l.Bars {
		r.Line(b.Center, l.Plot.Bottom, b.Center, l.Plot.Bottom+l.TickLength, th.Foreground, line)
	}
	for _, t := range l.texts() {
		if err := r.Text(t, th.Foreground); err != nil {
			return err
		}
	}
	return nil
}
