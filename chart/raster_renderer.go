package chart

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/freetype"
	"github.com/golang/freetype/raster"
	"golang.org/x/image/font"
)

var errUnsupportedFormat = errors.New("unsupported image format")

type encoder func(w io.Writer, m image.Image) error

type rasterRenderer struct {
	img        *image.RGBA
	dpi        float64
	fonts      *fontCache
	rasterizer *raster.Rasterizer
	painter    *raster.RGBAPainter
	background color.Color
	encode     encoder
}

func newRasterRenderer(width, height int, dpi float64, encode encoder) (Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidf("canvas of %dx%d pixels", width, height)
	}
	fonts, err := newFontCache(dpi)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rz := raster.NewRasterizer(width, height)
	// Strokes overlap themselves at joins and box outlines are drawn as an
	// outer and a reversed inner contour.
	rz.UseNonZeroWinding = true
	return &rasterRenderer{
		img:        img,
		dpi:        dpi,
		fonts:      fonts,
		rasterizer: rz,
		painter:    raster.NewRGBAPainter(img),
		background: color.Transparent,
		encode:     encode,
	}, nil
}

func (r *rasterRenderer) Clear(c color.Color) {
	r.background = c
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *rasterRenderer) FillBox(b Box, c color.Color) {
	r.addBox(b, false)
	r.paint(c)
}

func (r *rasterRenderer) StrokeBox(b Box, c color.Color, width float64) {
	if width <= 0 {
		return
	}
	inner := b.Grow(-width / 2)
	r.addBox(b.Grow(width/2), false)
	if !inner.IsEmpty() {
		r.addBox(inner, true)
	}
	r.paint(c)
}

func (r *rasterRenderer) Line(x0, y0, x1, y1 float64, c color.Color, width float64) {
	if width <= 0 {
		return
	}
	var p raster.Path
	p.Start(point(x0, y0))
	p.Add1(point(x1, y1))
	raster.Stroke(r.rasterizer, p, fix(width), raster.ButtCapper, raster.BevelJoiner)
	r.paint(c)
}

func (r *rasterRenderer) Text(t TextLayout, c color.Color) error {
	if t.Text == "" {
		return nil
	}
	if t.Rotated {
		return r.rotatedText(t, c)
	}
	_, err := r.context(t.Style, r.img, c).DrawString(t.Text, point(t.X, t.Y))
	return errors.Wrapf(err, "drawing %q", t.Text)
}

// rotatedText draws t turned a quarter counterclockwise, reading upwards
// with the glyph tops facing left. t.X is the left edge and t.Y the bottom
// edge of the rotated text.
func (r *rasterRenderer) rotatedText(t TextLayout, c color.Color) error {
	m := r.fonts.measure(t.Text, t.Style)
	w := int(math.Ceil(m.Width)) + 2
	h := int(math.Ceil(m.Height())) + 2
	flat := image.NewRGBA(image.Rect(0, 0, w, h))
	if _, err := r.context(t.Style, flat, c).DrawString(t.Text, point(1, 1+m.Ascent)); err != nil {
		return errors.Wrapf(err, "drawing %q", t.Text)
	}
	rot := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rot.SetRGBA(y, w-1-x, flat.RGBAAt(x, y))
		}
	}
	x0 := int(math.Round(t.X))
	y0 := int(math.Round(t.Y)) - w
	draw.Draw(r.img, image.Rect(x0, y0, x0+h, y0+w), rot, image.Point{}, draw.Over)
	return nil
}

func (r *rasterRenderer) Save(w io.Writer) error {
	pad := int(math.Round(r.dpi * tightPadInches))
	return r.encode(w, TightCrop(r.img, r.background, pad))
}

func (r *rasterRenderer) context(ts TextStyle, dst draw.Image, c color.Color) *freetype.Context {
	ctx := freetype.NewContext()
	ctx.SetDPI(r.dpi)
	ctx.SetFont(r.fonts.font(ts))
	ctx.SetFontSize(ts.Size)
	ctx.SetHinting(font.HintingNone)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))
	return ctx
}

// addBox adds b as a closed contour, clockwise on screen unless reverse.
func (r *rasterRenderer) addBox(b Box, reverse bool) {
	pts := [4][2]float64{
		{b.Left, b.Top},
		{b.Right, b.Top},
		{b.Right, b.Bottom},
		{b.Left, b.Bottom},
	}
	if reverse {
		pts[1], pts[3] = pts[3], pts[1]
	}
	r.rasterizer.Start(point(pts[0][0], pts[0][1]))
	for _, p := range pts[1:] {
		r.rasterizer.Add1(point(p[0], p[1]))
	}
	r.rasterizer.Add1(point(pts[0][0], pts[0][1]))
}

func (r *rasterRenderer) paint(c color.Color) {
	r.painter.SetColor(c)
	r.rasterizer.Rasterize(r.painter)
	r.rasterizer.Clear()
}
