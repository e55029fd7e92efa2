package gfx

import (
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// Size is a width/height pair.
//
// Fields may be assigned directly. The constructors reject NaN components,
// so a Size built through them always compares reliably with ==.
type Size struct {
	Width, Height float32
}

// EmptySize is the zero Size.
var EmptySize = Size{}

// NewSize creates a Size from a width and height.
// It returns an error wrapping ErrInvalidArgument if either value is NaN.
func NewSize(width, height float32) (Size, error) {
	if isNaN(width) {
		return Size{}, fmt.Errorf("%w: size width is NaN", ErrInvalidArgument)
	}
	if isNaN(height) {
		return Size{}, fmt.Errorf("%w: size height is NaN", ErrInvalidArgument)
	}
	return Size{Width: width, Height: height}, nil
}

// NewUniformSize creates a Size with both components set to v.
func NewUniformSize(v float32) (Size, error) {
	return NewSize(v, v)
}

// SizeFromVec2 creates a Size from a vector (x = width, y = height).
func SizeFromVec2(v f32.Vec2) (Size, error) {
	return NewSize(v[0], v[1])
}

// IsEmpty reports whether both components are exactly zero.
func (s Size) IsEmpty() bool {
	return s.Width == 0 && s.Height == 0
}

// WH returns the width and height.
func (s Size) WH() (width, height float32) {
	return s.Width, s.Height
}

// Equal reports whether both components are exactly equal.
func (s Size) Equal(other Size) bool {
	return s == other
}

// Vec2 returns the size as a vector (x = width, y = height).
func (s Size) Vec2() f32.Vec2 {
	return f32.Vec2{s.Width, s.Height}
}

// Extent3D converts the size to a single-layer GPU texture extent.
// Components are rounded up; negative components become 0.
func (s Size) Extent3D() gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              extent(s.Width),
		Height:             extent(s.Height),
		DepthOrArrayLayers: 1,
	}
}

// String returns a human-readable representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("Width=%g, Height=%g", s.Width, s.Height)
}

func extent(v float32) uint32 {
	if !(v > 0) {
		return 0
	}
	c := math.Ceil(float64(v))
	if c >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(c)
}

func isNaN(v float32) bool {
	return v != v
}
