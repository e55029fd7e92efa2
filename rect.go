package gfx

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned rectangle with float32 position and size.
type Rect struct {
	X, Y, Width, Height float32
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// String returns a human-readable representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("X=%g, Y=%g, Width=%g, Height=%g", r.X, r.Y, r.Width, r.Height)
}

// RectI is an axis-aligned rectangle with integer position and size,
// used for pixel areas such as display and title-safe regions.
type RectI struct {
	X, Y, Width, Height int
}

// RectIFromImage converts an image.Rectangle to a RectI.
func RectIFromImage(r image.Rectangle) RectI {
	return RectI{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Image converts the rectangle to an image.Rectangle.
func (r RectI) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Rect converts the rectangle to float32 coordinates.
func (r RectI) Rect() Rect {
	return Rect{X: float32(r.X), Y: float32(r.Y), Width: float32(r.Width), Height: float32(r.Height)}
}

// String returns a human-readable representation of the rectangle.
func (r RectI) String() string {
	return fmt.Sprintf("X=%d, Y=%d, Width=%d, Height=%d", r.X, r.Y, r.Width, r.Height)
}
