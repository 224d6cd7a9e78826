package chart

// Box is a rectangle in canvas pixels. Y grows downwards.
type Box struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Center returns the middle point of the box.
func (b Box) Center() (x, y float64) {
	return b.Left + b.Width()/2, b.Top + b.Height()/2
}

// Grow returns the box expanded by d on every side. A negative d shrinks it.
func (b Box) Grow(d float64) Box {
	return Box{
		Top:    b.Top - d,
		Left:   b.Left - d,
		Right:  b.Right + d,
		Bottom: b.Bottom + d,
	}
}

// IsEmpty reports whether the box encloses no area.
func (b Box) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}
