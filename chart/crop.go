package chart

import (
	"image"
	"image/color"
	"image/draw"
)

// TightCrop returns a copy of img trimmed to the pixels that differ from
// background, keeping pad pixels of margin. An image with nothing drawn on
// it is returned unchanged.
func TightCrop(img *image.RGBA, background color.Color, pad int) *image.RGBA {
	if background == nil {
		background = color.Transparent
	}
	bg := color.RGBAModel.Convert(background).(color.RGBA)
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == bg {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX {
		return img
	}
	crop := image.Rect(minX-pad, minY-pad, maxX+1+pad, maxY+1+pad).Intersect(b)
	out := image.NewRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	draw.Draw(out, out.Bounds(), img, crop.Min, draw.Src)
	return out
}
