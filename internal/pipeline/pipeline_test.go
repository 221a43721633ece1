package pipeline

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/iconpress/iconpress/internal/raster"
)

// newLogo paints a red disc on a solid green backdrop, the typical
// flat-background logo export the masking modes are built for.
func newLogo(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := size / 2
	r := size / 3
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-c, y-c
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, color.NRGBA{220, 40, 40, 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{0, 200, 0, 255})
			}
		}
	}
	return img
}

func TestProcessOutputIsSquare(t *testing.T) {
	spec := DefaultSpec()
	spec.Composition.TargetSize = 256

	out, err := Process(newLogo(100), spec)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	b := out.Bounds()
	if b.Dx() != 256 || b.Dy() != 256 {
		t.Errorf("output bounds: got %dx%d, want 256x256", b.Dx(), b.Dy())
	}
}

func TestProcessRejectsInvalidSpec(t *testing.T) {
	spec := DefaultSpec()
	spec.Composition.TargetSize = -1

	if _, err := Process(newLogo(32), spec); err == nil {
		t.Fatal("invalid spec: got nil error")
	}
}

func TestProcessDeterministic(t *testing.T) {
	spec := DefaultSpec()
	spec.Composition.TargetSize = 128
	spec.Masking = MaskingSpec{
		Mode:          MaskColorKey,
		Keys:          []raster.ColorKey{{Color: raster.Color{G: 200}, Tolerance: 20}},
		AutoCropAfter: true,
	}
	spec.Stroke = &StrokeSpec{Color: color.NRGBA{0, 0, 0, 255}, Width: 2}
	spec.Polish = LiquidPolishSpec{Intensity: 0.3}

	src := newLogo(100)
	first, err := Process(src, spec)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := Process(src, spec)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("two runs with the same input and spec differ")
	}
}

func TestProcessDoesNotMutateInput(t *testing.T) {
	src := newLogo(64)
	before := make([]uint8, len(src.Pix))
	copy(before, src.Pix)

	spec := DefaultSpec()
	spec.Composition.TargetSize = 128
	spec.Masking = MaskingSpec{Mode: MaskBorderFlood, Tolerance: 30}
	if _, err := Process(src, spec); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !bytes.Equal(before, src.Pix) {
		t.Error("source image mutated")
	}
}

func TestProcessBorderFloodRemovesBackdrop(t *testing.T) {
	spec := DefaultSpec()
	spec.Composition.TargetSize = 128
	spec.Masking = MaskingSpec{
		Mode:          MaskBorderFlood,
		Tolerance:     30,
		AutoCropAfter: true,
	}
	spec.Refine.SmoothBlurRadius = 0

	out, err := Process(newLogo(100), spec)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got := out.NRGBAAt(2, 2).A; got != 0 {
		t.Errorf("corner alpha: got %d, want 0 (backdrop removed)", got)
	}
	center := out.NRGBAAt(64, 64)
	if center.A != 255 {
		t.Errorf("center alpha: got %d, want 255", center.A)
	}
	if center.R < 150 || center.G > 100 {
		t.Errorf("center color: got %+v, want the red disc, not the green backdrop", center)
	}
}

func TestProcessStrokeOutlinesShape(t *testing.T) {
	spec := DefaultSpec()
	spec.Composition.TargetSize = 128
	spec.Masking = MaskingSpec{Mode: MaskBorderFlood, Tolerance: 30, AutoCropAfter: true}
	spec.Stroke = &StrokeSpec{Color: color.NRGBA{0, 0, 255, 255}, Width: 4, Alignment: StrokeInside}
	spec.Refine.SmoothBlurRadius = 0

	out, err := Process(newLogo(100), spec)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	// An inside stroke paints the rim of the disc blue. Walk inward from
	// the left edge on the center row to the first opaque pixel.
	found := false
	for x := 0; x < 128; x++ {
		px := out.NRGBAAt(x, 64)
		if px.A == 255 {
			if px.B > 150 && px.R < 100 {
				found = true
			}
			break
		}
	}
	if !found {
		t.Error("first opaque pixel on the center row is not the stroke color")
	}
}

func TestProcessShapeWeightExpands(t *testing.T) {
	base := DefaultSpec()
	base.Composition.TargetSize = 128
	base.Masking = MaskingSpec{Mode: MaskBorderFlood, Tolerance: 30}
	base.Refine.SmoothBlurRadius = 0

	heavy := base
	heavy.Morphology.ShapeWeight = 5

	thin, err := Process(newLogo(100), base)
	if err != nil {
		t.Fatalf("base run: %v", err)
	}
	thick, err := Process(newLogo(100), heavy)
	if err != nil {
		t.Fatalf("weighted run: %v", err)
	}

	if countOpaque(thick) <= countOpaque(thin) {
		t.Errorf("positive shape weight did not grow the shape: %d <= %d",
			countOpaque(thick), countOpaque(thin))
	}
}

func countOpaque(img *image.NRGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 255 {
			n++
		}
	}
	return n
}
