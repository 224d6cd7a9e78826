package chart_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zloyboy/benchchart/chart"
)

func savePNG(t *testing.T, r chart.Renderer) image.Image {
	var buf bytes.Buffer
	require.NoError(t, r.Save(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	return img
}

func assertColor(t *testing.T, want color.Color, got color.Color) {
	wr, wg, wb, wa := want.RGBA()
	gr, gg, gb, ga := got.RGBA()
	assert.Equal(t, [4]uint32{wr, wg, wb, wa}, [4]uint32{gr, gg, gb, ga})
}

func TestRasterFillBoxIsCropped(t *testing.T) {
	r, err := chart.PNG(100, 100, 150)
	require.NoError(t, err)
	r.Clear(chart.ColorBlack)
	red := color.NRGBA{R: 255, A: 255}
	r.FillBox(chart.Box{Top: 10, Left: 10, Right: 20, Bottom: 20}, red)

	img := savePNG(t, r)
	// 15 pixels of padding at 150 DPI, clipped by the canvas edge
	assert.Equal(t, image.Rect(0, 0, 35, 35), img.Bounds())
	assertColor(t, red, img.At(15, 15))
	assertColor(t, chart.ColorBlack, img.At(25, 25))
}

func TestRasterStrokeBoxLeavesInsideEmpty(t *testing.T) {
	r, err := chart.PNG(100, 100, 72)
	require.NoError(t, err)
	r.Clear(chart.ColorBlack)
	r.StrokeBox(chart.Box{Top: 20, Left: 20, Right: 60, Bottom: 60}, chart.ColorWhite, 4)

	img := savePNG(t, r)
	// the ring spans 18..62, cropped with a 7 pixel pad
	require.Equal(t, image.Rect(0, 0, 58, 58), img.Bounds())
	assertColor(t, chart.ColorWhite, img.At(9, 29))
	assertColor(t, chart.ColorBlack, img.At(29, 29))
}

func TestRasterBlendsAlpha(t *testing.T) {
	r, err := chart.PNG(40, 40, 72)
	require.NoError(t, err)
	r.Clear(chart.ColorBlack)
	r.FillBox(chart.Box{Top: 0, Left: 0, Right: 40, Bottom: 40}, chart.WithAlpha(chart.ColorWhite, 0.5))

	img := savePNG(t, r)
	got, _, _, _ := img.At(20, 20).RGBA()
	assert.InDelta(t, 0x8000, got, 0x200)
}

func TestRasterText(t *testing.T) {
	r, err := chart.PNG(300, 100, 150)
	require.NoError(t, err)
	r.Clear(chart.ColorBlack)
	require.NoError(t, r.Text(chart.TextLayout{Text: "0.000326с", Style: chart.TextStyle{Size: 12, Bold: true}, X: 10, Y: 50}, chart.ColorWhite))
	require.NoError(t, r.Text(chart.TextLayout{Text: "время", Style: chart.TextStyle{Size: 12}, X: 250, Y: 90, Rotated: true}, chart.ColorWhite))

	img := savePNG(t, r)
	assert.Less(t, img.Bounds().Dx(), 300+1)
	assert.Less(t, img.Bounds().Dy(), 100+1)
}

func TestRendererRejectsEmptyCanvas(t *testing.T) {
	_, err := chart.PNG(0, 10, 150)
	assert.Error(t, err)
}
