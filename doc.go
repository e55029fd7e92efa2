// Package gfx provides the small value types shared across the gogpu math
// stack: Size, Color, Rect, RectI and Viewport.
//
// # Overview
//
// Every type is a plain value. Nothing here allocates, blocks or holds
// shared state, so values can be copied freely and read from any goroutine.
//
//	import "github.com/gogpu/gfx"
//
//	vp := gfx.NewViewport(0, 0, 800, 600)
//	screen := vp.Project(point, worldViewProjection)
//
// # Vectors and Matrices
//
// Vectors and matrices are the golang.org/x/image/math/f32 types. Matrices
// are row-major and follow the row-vector convention (v' = v * M), so a
// combined transform is built as world * view * projection.
//
// # Coordinate System
//
// Screen space uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Normalized device coordinates have +Y up and depth in [0,1]; Project and
// Unproject flip Y when mapping between the two.
//
// # Colors
//
// Color is a 4-byte RGBA value whose packed form is the RGBA8Unorm texel
// layout. It bridges to image/color and to gputypes.Color.
package gfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
