package refine

import (
	"image"
	"image/color"
	"testing"
)

// newMatteSquare builds a transparent canvas with a centered opaque square.
func newMatteSquare(size, inset int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := inset; y < size-inset; y++ {
		for x := inset; x < size-inset; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestCleanEdgesRemovesDebris(t *testing.T) {
	img := newMatteSquare(32, 8, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(2, 2, color.NRGBA{255, 0, 0, 5}) // faint stray pixel

	out := CleanEdges(img, 10, 0)
	if got := out.NRGBAAt(2, 2).A; got != 0 {
		t.Errorf("debris alpha: got %d, want 0", got)
	}
	if got := out.NRGBAAt(16, 16).A; got != 255 {
		t.Errorf("solid content alpha: got %d, want 255", got)
	}
}

func TestCleanEdgesKeepsColorChannels(t *testing.T) {
	img := newMatteSquare(16, 4, color.NRGBA{12, 34, 56, 255})

	out := CleanEdges(img, 10, 0.5)
	got := out.NRGBAAt(8, 8)
	if got.R != 12 || got.G != 34 || got.B != 56 {
		t.Errorf("color channels: got (%d,%d,%d), want (12,34,56)", got.R, got.G, got.B)
	}
}

func TestCornerSharpnessNeutral(t *testing.T) {
	img := newMatteSquare(16, 4, color.NRGBA{255, 0, 0, 255})
	if out := CornerSharpness(img, 50); out != img {
		t.Error("value 50 should return the input unchanged")
	}
}

func TestCornerSharpnessRounds(t *testing.T) {
	img := newMatteSquare(32, 8, color.NRGBA{255, 0, 0, 255})

	out := CornerSharpness(img, 0) // maximum rounding, 5 px blur
	if out.Bounds() != img.Bounds() {
		t.Fatalf("bounds changed: got %v, want %v", out.Bounds(), img.Bounds())
	}

	// The convex corner erodes under blur+threshold while the straight
	// edge midpoint survives; alpha stays hard (0 or 255 dominant).
	if got := out.NRGBAAt(8, 8).A; got != 0 {
		t.Errorf("square corner alpha after rounding: got %d, want 0", got)
	}
	if got := out.NRGBAAt(16, 16).A; got != 255 {
		t.Errorf("interior alpha: got %d, want 255", got)
	}
}

func TestResolutionSnapZeroIsNoop(t *testing.T) {
	img := newMatteSquare(16, 4, color.NRGBA{0, 255, 0, 255})
	if out := ResolutionSnap(img, 0); out != img {
		t.Error("value 0 should return the input unchanged")
	}
}

func TestResolutionSnapKeepsDimensions(t *testing.T) {
	img := newMatteSquare(32, 8, color.NRGBA{0, 128, 255, 255})
	out := ResolutionSnap(img, 80)
	if !out.Bounds().Eq(img.Bounds()) {
		t.Errorf("bounds: got %v, want %v", out.Bounds(), img.Bounds())
	}
}
