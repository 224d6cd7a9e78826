package chart

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Renderer paints a laid out chart. Coordinates are canvas pixels and
// widths are pixels as well.
type Renderer interface {
	// Clear fills the whole canvas with c, which also becomes the color
	// trimmed away by Save.
	Clear(c color.Color)
	FillBox(b Box, c color.Color)
	// StrokeBox outlines b with a line of the given width centered on its
	// edges.
	StrokeBox(b Box, c color.Color, width float64)
	Line(x0, y0, x1, y1 float64, c color.Color, width float64)
	Text(t TextLayout, c color.Color) error
	// Save tight-crops the canvas and encodes it to w.
	Save(w io.Writer) error
}

// RendererProvider creates a renderer for a canvas of the given pixel size.
type RendererProvider func(width, height int, dpi float64) (Renderer, error)

// PNG renders to a PNG image.
func PNG(width, height int, dpi float64) (Renderer, error) {
	return newRasterRenderer(width, height, dpi, png.Encode)
}

// JPEG renders to a JPEG image.
func JPEG(width, height int, dpi float64) (Renderer, error) {
	return newRasterRenderer(width, height, dpi, func(w io.Writer, m image.Image) error {
		return jpeg.Encode(w, m, &jpeg.Options{Quality: 95})
	})
}

// BMP renders to a BMP image.
func BMP(width, height int, dpi float64) (Renderer, error) {
	return newRasterRenderer(width, height, dpi, bmp.Encode)
}

// TIFF renders to a deflate compressed TIFF image.
func TIFF(width, height int, dpi float64) (Renderer, error) {
	return newRasterRenderer(width, height, dpi, func(w io.Writer, m image.Image) error {
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	})
}

// ProviderForPath picks the renderer matching the file extension of path.
func ProviderForPath(path string) (RendererProvider, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return nil, ioFailure(errUnsupportedFormat, "writing %s: extension %q", path, ext)
	}
}
