package raster

import (
	"image"
	"image/color"
	"testing"
)

// newSolidImage creates an in-memory test image filled with one color.
func newSolidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// newTransparentImage creates a fully transparent test image.
func newTransparentImage(width, height int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// fillRect paints a rectangle of the image with one color.
func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// samePixels reports whether two images have identical bounds and bytes.
func samePixels(a, b *image.NRGBA) bool {
	if !a.Bounds().Eq(b.Bounds()) || len(a.Pix) != len(b.Pix) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}

func TestAlphaPlaneRoundTrip(t *testing.T) {
	img := newTransparentImage(8, 8)
	fillRect(img, image.Rect(2, 2, 6, 6), color.NRGBA{200, 10, 30, 180})

	mask := AlphaPlane(img)
	if got := mask.GrayAt(3, 3).Y; got != 180 {
		t.Errorf("mask at (3,3): got %d, want 180", got)
	}
	if got := mask.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("mask at (0,0): got %d, want 0", got)
	}

	restored := WithAlpha(newSolidImage(8, 8, color.NRGBA{1, 2, 3, 255}), mask)
	if got := restored.NRGBAAt(3, 3); got.A != 180 || got.R != 1 {
		t.Errorf("restored at (3,3): got %+v, want alpha 180 with color preserved", got)
	}
}

func TestWithAlphaDoesNotMutateInput(t *testing.T) {
	img := newSolidImage(4, 4, color.NRGBA{10, 20, 30, 255})
	mask := image.NewGray(image.Rect(0, 0, 4, 4))

	_ = WithAlpha(img, mask)
	if img.NRGBAAt(1, 1).A != 255 {
		t.Error("WithAlpha mutated its input image")
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		v, lo, hi, want uint8
	}{
		{0, 100, 180, 0},
		{100, 100, 180, 0},
		{180, 100, 180, 255},
		{255, 100, 180, 255},
		{140, 100, 180, 127},
		{50, 200, 100, 255}, // degenerate window saturates
	}
	for _, tt := range tests {
		if got := Levels(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Levels(%d,%d,%d): got %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestBinaryAlpha(t *testing.T) {
	img := newTransparentImage(3, 1)
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 40})
	img.SetNRGBA(1, 0, color.NRGBA{255, 0, 0, 128})
	img.SetNRGBA(2, 0, color.NRGBA{255, 0, 0, 255})

	out := BinaryAlpha(img, 128)
	want := []uint8{0, 255, 255}
	for x, w := range want {
		if got := out.NRGBAAt(x, 0).A; got != w {
			t.Errorf("alpha at x=%d: got %d, want %d", x, got, w)
		}
	}
}

func TestPadTransparent(t *testing.T) {
	img := newSolidImage(4, 4, color.NRGBA{255, 0, 0, 255})

	out := PadTransparent(img, 5)
	if out.Bounds().Dx() != 14 || out.Bounds().Dy() != 14 {
		t.Fatalf("dimensions: got %dx%d, want 14x14", out.Bounds().Dx(), out.Bounds().Dy())
	}
	if got := out.NRGBAAt(0, 0).A; got != 0 {
		t.Errorf("padding alpha: got %d, want 0", got)
	}
	if got := out.NRGBAAt(5, 5); got.A != 255 || got.R != 255 {
		t.Errorf("content at (5,5): got %+v, want opaque red", got)
	}

	if PadTransparent(img, 0) != img {
		t.Error("zero padding should return the input unchanged")
	}
}
