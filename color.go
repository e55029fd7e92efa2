package gfx

import (
	"fmt"
	stdcolor "image/color"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/gfx/internal/color"
)

// ColorFormat is the GPU texture format whose texel layout matches
// Color.Packed.
const ColorFormat = gputypes.TextureFormatRGBA8Unorm

// PackedVector is implemented by pixel types that store normalized channels
// in a packed integer representation.
type PackedVector interface {
	// PackFromVector4 replaces the packed value with the given normalized
	// RGBA channels. Channels are clamped to [0,1].
	PackFromVector4(v f32.Vec4)

	// ToVector4 returns the channels as normalized RGBA floats in [0,1].
	ToVector4() f32.Vec4
}

var (
	_ PackedVector   = (*Color)(nil)
	_ stdcolor.Color = Color{}
)

// Color is a 32-bit RGBA color, one byte per channel, not premultiplied.
//
// Its packed form holds R in the low byte and A in the high byte, so the
// little-endian memory layout is R, G, B, A.
type Color struct {
	R, G, B, A uint8
}

// NewColor creates a color from byte components.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromPacked creates a color from its packed RGBA value.
func ColorFromPacked(packed uint32) Color {
	return Color{
		R: uint8(packed),
		G: uint8(packed >> 8),
		B: uint8(packed >> 16),
		A: uint8(packed >> 24),
	}
}

// ColorFromVector4 creates a color from normalized RGBA channels.
func ColorFromVector4(v f32.Vec4) Color {
	var c Color
	c.PackFromVector4(v)
	return c
}

// Packed returns the packed RGBA value.
func (c Color) Packed() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// ToVector4 returns the channels as normalized floats in [0,1].
func (c Color) ToVector4() f32.Vec4 {
	r, g, b, a := color.UnpackRGBA(c.Packed())
	return f32.Vec4{r, g, b, a}
}

// PackFromVector4 replaces c with the given normalized channels.
func (c *Color) PackFromVector4(v f32.Vec4) {
	*c = ColorFromPacked(color.PackRGBA(v[0], v[1], v[2], v[3]))
}

// ARGB returns the color in the platform ARGB order (A in the high byte,
// B in the low byte).
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ColorFromARGB creates a color from a platform ARGB value.
func ColorFromARGB(argb uint32) Color {
	return Color{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}

// RGBA implements the image/color.Color interface.
// It returns alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// ColorFromStd converts any image/color.Color to a Color.
func ColorFromStd(c stdcolor.Color) Color {
	n, _ := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// GPU converts the color to a gputypes.Color with channels in [0,1],
// suitable for clear values and blend constants.
func (c Color) GPU() gputypes.Color {
	v := c.ToVector4()
	return gputypes.Color{
		R: float64(v[0]),
		G: float64(v[1]),
		B: float64(v[2]),
		A: float64(v[3]),
	}
}

// ColorFromGPU converts a gputypes.Color to a Color.
// Channels are clamped to [0,1] and rounded to 8 bits.
func ColorFromGPU(c gputypes.Color) Color {
	return ColorFromVector4(f32.Vec4{float32(c.R), float32(c.G), float32(c.B), float32(c.A)})
}

// Linear returns the color with its RGB channels decoded from sRGB to
// linear light. Alpha is never gamma-encoded and is only normalized.
func (c Color) Linear() f32.Vec4 {
	return f32.Vec4{
		color.DecodeSRGB(c.R),
		color.DecodeSRGB(c.G),
		color.DecodeSRGB(c.B),
		color.Dequantize(c.A),
	}
}

// ColorFromLinear encodes linear-light RGB channels to sRGB bytes.
func ColorFromLinear(v f32.Vec4) Color {
	return Color{
		R: color.EncodeSRGB(v[0]),
		G: color.EncodeSRGB(v[1]),
		B: color.EncodeSRGB(v[2]),
		A: color.Quantize(v[3]),
	}
}

// Equal reports whether all four channels are equal.
func (c Color) Equal(other Color) bool {
	return c == other
}

// String returns a human-readable representation of the color.
func (c Color) String() string {
	return fmt.Sprintf("R=%d, G=%d, B=%d, A=%d", c.R, c.G, c.B, c.A)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Unrecognized lengths yield opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8
	a = 255

	switch len(hex) {
	case 3: // RGB
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
	case 4: // RGBA
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
		a = parseHex(hex[3:4]) * 17
	case 6: // RRGGBB
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
	case 8: // RRGGBBAA
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
		a = parseHex(hex[6:8])
	default:
		return Black
	}

	return Color{R: r, G: g, B: b, A: a}
}

// parseHex parses up to two hex digits. Parsing stops at the first
// invalid digit.
func parseHex(s string) uint8 {
	var v uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			v = v<<4 | (c - '0')
		case 'a' <= c && c <= 'f':
			v = v<<4 | (c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v = v<<4 | (c - 'A' + 10)
		default:
			return v
		}
	}
	return v
}

// Common colors
var (
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Red         = Color{R: 255, A: 255}
	Green       = Color{G: 255, A: 255}
	Blue        = Color{B: 255, A: 255}
	Yellow      = Color{R: 255, G: 255, A: 255}
	Cyan        = Color{G: 255, B: 255, A: 255}
	Magenta     = Color{R: 255, B: 255, A: 255}
	Transparent = Color{}
)
