package color

import (
	"math"
	"testing"
)

func TestPackRGBA_Layout(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float32
		want       uint32
	}{
		{"zero", 0, 0, 0, 0, 0x00000000},
		{"opaque white", 1, 1, 1, 1, 0xFFFFFFFF},
		{"red", 1, 0, 0, 0, 0x000000FF},
		{"green", 0, 1, 0, 0, 0x0000FF00},
		{"blue", 0, 0, 1, 0, 0x00FF0000},
		{"alpha", 0, 0, 0, 1, 0xFF000000},
		{"clamped", -1, 2, 0, 1, 0xFF00FF00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PackRGBA(tt.r, tt.g, tt.b, tt.a)
			if got != tt.want {
				t.Errorf("PackRGBA(%v, %v, %v, %v) = %#08x, want %#08x",
					tt.r, tt.g, tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestUnpackRGBA(t *testing.T) {
	r, g, b, a := UnpackRGBA(0x80FF0033)
	if !floatNear(r, 0x33/255.0, 1e-6) || g != 0 || b != 1 || !floatNear(a, 0x80/255.0, 1e-6) {
		t.Errorf("UnpackRGBA(0x80FF0033) = (%v, %v, %v, %v)", r, g, b, a)
	}
}

// TestPackRoundTrip checks every 8-bit level survives pack/unpack
// within one quantization step.
func TestPackRoundTrip(t *testing.T) {
	const maxError = 1.0 / 255.0

	for i := 0; i <= 255; i++ {
		v := float32(i) / 255.0
		r, g, b, a := UnpackRGBA(PackRGBA(v, 1-v, v/2, v))
		for _, c := range []struct{ got, want float32 }{
			{r, v}, {g, 1 - v}, {b, v / 2}, {a, v},
		} {
			if diff := math.Abs(float64(c.got - c.want)); diff > maxError {
				t.Errorf("round-trip %d/255: got %v, want %v (diff %v)", i, c.got, c.want, diff)
			}
		}
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"half", 0.5, 128},
		{"below range", -0.5, 0},
		{"above range", 1.5, 255},
		{"NaN", float32(math.NaN()), 0},
		{"rounds down", 1.4 / 255.0, 1},
		{"rounds up", 1.6 / 255.0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.input); got != tt.want {
				t.Errorf("Quantize(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestDequantize(t *testing.T) {
	for i := 0; i <= 255; i++ {
		if got := Quantize(Dequantize(uint8(i))); got != uint8(i) {
			t.Errorf("Quantize(Dequantize(%d)) = %d", i, got)
		}
	}
}

func BenchmarkPackRGBA(b *testing.B) {
	var p uint32
	for i := 0; i < b.N; i++ {
		p = PackRGBA(0.2, 0.4, 0.6, 0.8)
	}
	_ = p
}

// floatNear checks if two float32 values are within epsilon of each other.
func floatNear(a, b, epsilon float32) bool {
	return math.Abs(float64(a-b)) < float64(epsilon)
}
