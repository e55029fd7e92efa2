package gfx

import (
	"image"
	"testing"
)

func TestRectI_Image(t *testing.T) {
	r := RectI{X: 10, Y: 20, Width: 30, Height: 40}
	want := image.Rect(10, 20, 40, 60)
	if got := r.Image(); got != want {
		t.Errorf("Image() = %v, want %v", got, want)
	}
	if back := RectIFromImage(want); back != r {
		t.Errorf("RectIFromImage(%v) = %v, want %v", want, back, r)
	}
}

func TestRectI_Rect(t *testing.T) {
	r := RectI{X: -1, Y: 2, Width: 3, Height: 4}.Rect()
	if r != (Rect{X: -1, Y: 2, Width: 3, Height: 4}) {
		t.Errorf("Rect() = %v", r)
	}
	if r.Size() != (Size{Width: 3, Height: 4}) {
		t.Errorf("Size() = %v", r.Size())
	}
}

func TestRect_String(t *testing.T) {
	tests := []struct {
		name string
		s    interface{ String() string }
		want string
	}{
		{"float", Rect{X: 0.5, Y: 1, Width: 2, Height: 3}, "X=0.5, Y=1, Width=2, Height=3"},
		{"int", RectI{X: 1, Y: 2, Width: 3, Height: 4}, "X=1, Y=2, Width=3, Height=4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
