// Command gfxdemo prints the display layout and projection results that
// gfx computes for a back buffer shown on an output surface.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/internal/mat4"
)

func main() {
	var (
		backBuffer = flag.String("bb", "1280x720", "back buffer size WxH")
		output     = flag.String("out", "1920x1080", "output size WxH")
		scaling    = flag.String("scaling", "AspectRatioStretch", "scaling mode: None, Stretch, AspectRatioStretch")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(os.Stdout, *backBuffer, *output, *scaling); err != nil {
		log.Fatalf("gfxdemo: %v", err)
	}
}

func run(w io.Writer, backBuffer, output, scaling string) error {
	bbW, bbH, err := parseDims(backBuffer)
	if err != nil {
		return fmt.Errorf("back buffer: %w", err)
	}
	outW, outH, err := parseDims(output)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	mode, ok := gfx.ParseViewportScaling(scaling)
	if !ok {
		return fmt.Errorf("unknown scaling mode %q", scaling)
	}
	// The projection sample needs the back buffer aspect ratio in every mode.
	if bbH <= 0 {
		return fmt.Errorf("%w: back buffer height must be positive", gfx.ErrInvalidArgument)
	}

	area := gfx.ComputeDisplayArea(mode, bbW, bbH, outW, outH)
	safe := gfx.ComputeTitleSafeArea(bbW, bbH)
	vp := gfx.ViewportFromRectI(area)

	view := mat4.LookAt(f32.Vec3{0, 0, 5}, f32.Vec3{}, f32.Vec3{0, 1, 0})
	proj := mat4.PerspectiveFov(math.Pi/4, float32(bbW)/float32(bbH), 0.1, 100)
	point := f32.Vec3{1, 1, 0}
	screen := vp.ProjectWVP(point, mat4.Identity(), view, proj)
	back := vp.UnprojectWVP(screen, mat4.Identity(), view, proj)

	fmt.Fprintf(w, "scaling:      %v\n", mode)
	fmt.Fprintf(w, "display area: %v\n", area)
	fmt.Fprintf(w, "title safe:   %v\n", safe)
	fmt.Fprintf(w, "viewport:     %v (aspect %.4f)\n", vp, vp.AspectRatio())
	fmt.Fprintf(w, "project:      %v -> %v\n", point, screen)
	fmt.Fprintf(w, "unproject:    %v -> %v\n", screen, back)
	fmt.Fprintf(w, "clear color:  %v (%+v)\n", gfx.Hex("#1e90ff"), gfx.Hex("#1e90ff").GPU())
	return nil
}

// parseDims parses "WxH" into non-negative integer dimensions.
func parseDims(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q is not WxH", gfx.ErrInvalidArgument, s)
	}
	if width, err = strconv.Atoi(ws); err != nil {
		return 0, 0, fmt.Errorf("%w: width %q: %w", gfx.ErrInvalidArgument, ws, err)
	}
	if height, err = strconv.Atoi(hs); err != nil {
		return 0, 0, fmt.Errorf("%w: height %q: %w", gfx.ErrInvalidArgument, hs, err)
	}
	if width < 0 || height < 0 {
		return 0, 0, fmt.Errorf("%w: %q has a negative dimension", gfx.ErrInvalidArgument, s)
	}
	return width, height, nil
}
