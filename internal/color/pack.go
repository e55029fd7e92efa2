// Package color provides the packing and transfer-function helpers behind
// gfx.Color.
//
// A packed value stores one channel per byte: R in bits 0-7, G in bits 8-15,
// B in bits 16-23 and A in bits 24-31. Written little-endian, the bytes are
// in R, G, B, A order, matching the RGBA8Unorm texture layout.
package color

// PackRGBA packs normalized channels into a 32-bit RGBA value.
// Channels are clamped to [0,1] and rounded to the nearest 8-bit level.
func PackRGBA(r, g, b, a float32) uint32 {
	return uint32(Quantize(r)) |
		uint32(Quantize(g))<<8 |
		uint32(Quantize(b))<<16 |
		uint32(Quantize(a))<<24
}

// UnpackRGBA expands a packed RGBA value into normalized channels in [0,1].
func UnpackRGBA(packed uint32) (r, g, b, a float32) {
	return Dequantize(uint8(packed)),
		Dequantize(uint8(packed >> 8)),
		Dequantize(uint8(packed >> 16)),
		Dequantize(uint8(packed >> 24))
}

// Quantize clamps v to [0,1] and converts it to a byte with rounding.
// NaN maps to 0.
func Quantize(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// Dequantize maps a byte [0,255] to float32 [0,1].
func Dequantize(v uint8) float32 {
	return float32(v) / 255.0
}
