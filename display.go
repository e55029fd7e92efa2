package gfx

// ViewportScaling controls how a back buffer is fitted into an output area.
type ViewportScaling int

const (
	// ScalingNone places the back buffer unscaled at the top-left of the
	// output, clipped to the output size (default).
	ScalingNone ViewportScaling = iota

	// ScalingStretch stretches the back buffer over the whole output.
	ScalingStretch

	// ScalingAspectRatioStretch scales the back buffer as large as possible
	// while keeping its aspect ratio, centered with letterbox or pillarbox
	// bars.
	ScalingAspectRatioStretch
)

// String returns the scaling mode name.
func (s ViewportScaling) String() string {
	switch s {
	case ScalingNone:
		return "None"
	case ScalingStretch:
		return "Stretch"
	case ScalingAspectRatioStretch:
		return "AspectRatioStretch"
	default:
		return "Unknown"
	}
}

// ParseViewportScaling returns the scaling mode with the given name as
// produced by String. Unknown names report false.
func ParseViewportScaling(name string) (ViewportScaling, bool) {
	for _, s := range []ViewportScaling{ScalingNone, ScalingStretch, ScalingAspectRatioStretch} {
		if s.String() == name {
			return s, true
		}
	}
	return ScalingNone, false
}

// ComputeDisplayArea returns the area of an output surface that a back
// buffer occupies under the given scaling mode.
//
// ScalingAspectRatioStretch requires backBufferHeight > 0 and panics
// otherwise. Unknown modes behave as ScalingNone.
func ComputeDisplayArea(scaling ViewportScaling, backBufferWidth, backBufferHeight, outputWidth, outputHeight int) RectI {
	var area RectI
	switch scaling {
	case ScalingStretch:
		area = RectI{Width: outputWidth, Height: outputHeight}
	case ScalingAspectRatioStretch:
		area = aspectRatioArea(backBufferWidth, backBufferHeight, outputWidth, outputHeight)
	default:
		area = RectI{
			Width:  min(backBufferWidth, outputWidth),
			Height: min(backBufferHeight, outputHeight),
		}
	}

	Logger().Debug("gfx: display area",
		"scaling", scaling.String(),
		"backBufferWidth", backBufferWidth,
		"backBufferHeight", backBufferHeight,
		"outputWidth", outputWidth,
		"outputHeight", outputHeight,
		"area", area)
	return area
}

// aspectRatioArea fits the back buffer's aspect ratio into the output,
// filling the output width first and falling back to its height. Scaled
// sizes are truncated.
func aspectRatioArea(backBufferWidth, backBufferHeight, outputWidth, outputHeight int) RectI {
	if backBufferHeight <= 0 {
		panic("gfx: ComputeDisplayArea: AspectRatioStretch requires a positive back buffer height")
	}

	width, height := outputWidth, outputHeight
	if backBufferWidth > 0 {
		height = outputWidth * backBufferHeight / backBufferWidth
	}
	if backBufferWidth <= 0 || height > outputHeight {
		height = outputHeight
		width = max(0, outputHeight*backBufferWidth/backBufferHeight)
	}

	return RectI{
		X:      max(0, (outputWidth-width)/2),
		Y:      max(0, (outputHeight-height)/2),
		Width:  min(width, outputWidth),
		Height: min(height, outputHeight),
	}
}

// ComputeTitleSafeArea returns the title-safe region of a back buffer: the
// area inset by 5% on every edge.
//
// The margin along each axis is length/20 rounded up and the far edge is
// rounded to nearest, so opposite margins differ by at most one pixel. A
// 1000x1000 buffer yields {50, 50, 899, 899}.
func ComputeTitleSafeArea(backBufferWidth, backBufferHeight int) RectI {
	left, right := safeEdges(backBufferWidth)
	top, bottom := safeEdges(backBufferHeight)
	return RectI{
		X:      left,
		Y:      top,
		Width:  max(0, right-left),
		Height: max(0, bottom-top),
	}
}

// safeEdges returns the near and far title-safe edges along an axis of the
// given length.
func safeEdges(length int) (near, far int) {
	margin := (float64(length) + 19) / 20
	return int(margin), int(float64(length) - margin + 0.5)
}
