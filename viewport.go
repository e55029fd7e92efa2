package gfx

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/gfx/internal/mat4"
)

// Viewport is a screen-space rectangle plus the depth range that normalized
// device depth is mapped into.
//
// A Viewport is immutable; its fields are exposed through accessors only.
// No constructor validates its input: negative sizes or an inverted depth
// range are stored as given and flow through the derived computations.
//
// Viewport values are comparable with ==, which is exact. Use Equal for the
// tolerant comparison appropriate for computed display geometry.
type Viewport struct {
	x, y          float32
	width, height float32
	minDepth      float32
	maxDepth      float32
}

// NewViewport creates a viewport with the default depth range [0,1].
func NewViewport(x, y, width, height float32) Viewport {
	return NewViewportDepth(x, y, width, height, 0, 1)
}

// NewViewportSize creates a viewport at the origin with the default depth
// range [0,1].
func NewViewportSize(width, height float32) Viewport {
	return NewViewportDepth(0, 0, width, height, 0, 1)
}

// NewViewportDepth creates a viewport with an explicit depth range.
func NewViewportDepth(x, y, width, height, minDepth, maxDepth float32) Viewport {
	return Viewport{
		x:        x,
		y:        y,
		width:    width,
		height:   height,
		minDepth: minDepth,
		maxDepth: maxDepth,
	}
}

// ViewportFromRect creates a viewport covering r with depth range [0,1].
func ViewportFromRect(r Rect) Viewport {
	return NewViewport(r.X, r.Y, r.Width, r.Height)
}

// ViewportFromRectI creates a viewport covering r with depth range [0,1].
func ViewportFromRectI(r RectI) Viewport {
	return NewViewport(float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height))
}

// ViewportFromVec4 creates a viewport from (x, y, width, height) with depth
// range [0,1].
func ViewportFromVec4(v f32.Vec4) Viewport {
	return NewViewport(v[0], v[1], v[2], v[3])
}

// X returns the left edge.
func (v Viewport) X() float32 { return v.x }

// Y returns the top edge.
func (v Viewport) Y() float32 { return v.y }

// Width returns the width.
func (v Viewport) Width() float32 { return v.width }

// Height returns the height.
func (v Viewport) Height() float32 { return v.height }

// MinDepth returns the depth that NDC z = 0 maps to.
func (v Viewport) MinDepth() float32 { return v.minDepth }

// MaxDepth returns the depth that NDC z = 1 maps to.
func (v Viewport) MaxDepth() float32 { return v.maxDepth }

// Bounds returns the viewport rectangle.
func (v Viewport) Bounds() Rect {
	return Rect{X: v.x, Y: v.y, Width: v.width, Height: v.height}
}

// Size returns the viewport dimensions.
func (v Viewport) Size() Size {
	return Size{Width: v.width, Height: v.height}
}

// Vec4 returns (x, y, width, height).
func (v Viewport) Vec4() f32.Vec4 {
	return f32.Vec4{v.x, v.y, v.width, v.height}
}

// AspectRatio returns width / height, or 0 if the height is within
// tolerance of zero. Negative heights produce a negative ratio.
func (v Viewport) AspectRatio() float32 {
	if isZero(v.height) {
		return 0
	}
	return v.width / v.height
}

// Project maps a point in object space to viewport space.
//
// The point is transformed by worldViewProjection, divided by its w unless
// w is already 1, and the resulting NDC coordinates are mapped to pixels
// (Y flipped) and to the depth range. A degenerate matrix yields non-finite
// components.
func (v Viewport) Project(source f32.Vec3, worldViewProjection f32.Mat4) f32.Vec3 {
	p := mat4.Transform(source, worldViewProjection)
	if w := mat4.W(source, worldViewProjection); !isOne(w) {
		p = f32.Vec3{p[0] / w, p[1] / w, p[2] / w}
	}
	return f32.Vec3{
		(p[0]+1)*0.5*v.width + v.x,
		(1-p[1])*0.5*v.height + v.y,
		p[2]*(v.maxDepth-v.minDepth) + v.minDepth,
	}
}

// ProjectWVP is Project with the transform given as separate matrices,
// combined as world * view * projection.
func (v Viewport) ProjectWVP(source f32.Vec3, world, view, projection f32.Mat4) f32.Vec3 {
	return v.Project(source, combine(world, view, projection))
}

// Unproject maps a point in viewport space back to object space. It is the
// inverse of Project for the same matrix.
//
// If worldViewProjection is singular the result is NaN. A zero depth range
// is not guarded and produces non-finite depth.
func (v Viewport) Unproject(source f32.Vec3, worldViewProjection f32.Mat4) f32.Vec3 {
	inv, _ := mat4.Invert(worldViewProjection)
	return v.unproject(source, inv)
}

// UnprojectWVP is Unproject with the transform given as separate matrices,
// combined as world * view * projection.
func (v Viewport) UnprojectWVP(source f32.Vec3, world, view, projection f32.Mat4) f32.Vec3 {
	return v.Unproject(source, combine(world, view, projection))
}

// UnprojectChecked is Unproject but returns an error wrapping
// ErrSingularMatrix instead of a NaN result when worldViewProjection has no
// inverse.
func (v Viewport) UnprojectChecked(source f32.Vec3, worldViewProjection f32.Mat4) (f32.Vec3, error) {
	inv, ok := mat4.Invert(worldViewProjection)
	if !ok {
		Logger().Debug("gfx: unproject with singular matrix", "viewport", v)
		return f32.Vec3{}, fmt.Errorf("unproject %v: %w", source, ErrSingularMatrix)
	}
	return v.unproject(source, inv), nil
}

func (v Viewport) unproject(source f32.Vec3, inv f32.Mat4) f32.Vec3 {
	ndc := f32.Vec3{
		(source[0]-v.x)/v.width*2 - 1,
		-((source[1]-v.y)/v.height*2 - 1),
		(source[2] - v.minDepth) / (v.maxDepth - v.minDepth),
	}
	w := mat4.W(ndc, inv)
	p := mat4.Transform(ndc, inv)
	if !isOne(w) {
		p = f32.Vec3{p[0] / w, p[1] / w, p[2] / w}
	}
	return p
}

func combine(world, view, projection f32.Mat4) f32.Mat4 {
	return mat4.Mul(mat4.Mul(world, view), projection)
}

// Equal reports whether every field of v is approximately equal to the
// corresponding field of other.
func (v Viewport) Equal(other Viewport) bool {
	return nearEqual(v.x, other.x) &&
		nearEqual(v.y, other.y) &&
		nearEqual(v.width, other.width) &&
		nearEqual(v.height, other.height) &&
		nearEqual(v.minDepth, other.minDepth) &&
		nearEqual(v.maxDepth, other.maxDepth)
}

// String returns a human-readable representation of the viewport.
func (v Viewport) String() string {
	return fmt.Sprintf("X=%g, Y=%g, Width=%g, Height=%g, MinDepth=%g, MaxDepth=%g",
		v.x, v.y, v.width, v.height, v.minDepth, v.maxDepth)
}
