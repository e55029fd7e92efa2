package color

import "math"

// decodeLUT maps an sRGB byte to its linear value.
var decodeLUT [256]float32

// encodeLUT maps a 12-bit linear level to an sRGB byte.
var encodeLUT [4096]uint8

func init() {
	for i := range decodeLUT {
		decodeLUT[i] = SRGBToLinear(float32(i) / 255.0)
	}
	for i := range encodeLUT {
		encodeLUT[i] = Quantize(LinearToSRGB(float32(i) / 4095.0))
	}
}

// SRGBToLinear applies the sRGB EOTF to a component in [0,1].
//
//	s <= 0.04045: s/12.92
//	otherwise:    ((s+0.055)/1.055)^2.4
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB applies the sRGB OETF to a component in [0,1].
//
//	l <= 0.0031308: l*12.92
//	otherwise:      1.055*l^(1/2.4) - 0.055
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// DecodeSRGB converts an sRGB-encoded byte to a linear component.
//
//	DecodeSRGB(128) // ~0.2159, not 0.5
func DecodeSRGB(s uint8) float32 {
	return decodeLUT[s]
}

// EncodeSRGB converts a linear component to an sRGB-encoded byte.
// Input is clamped to [0,1]; the table has 12-bit precision.
//
//	EncodeSRGB(0.5) // 188, not 128
func EncodeSRGB(l float32) uint8 {
	if !(l > 0) {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	return encodeLUT[int(l*4095.0+0.5)]
}
