package export

import (
	"context"
	"image"
	"image/color"
	"testing"
)

func newMaster(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	inset := size / 4
	for y := inset; y < size-inset; y++ {
		for x := inset; x < size-inset; x++ {
			img.SetNRGBA(x, y, color.NRGBA{200, 60, 40, 255})
		}
	}
	return img
}

func TestRenderSizesDimensionsAndOrder(t *testing.T) {
	master := newMaster(256)
	sizes := []int{256, 16, 64}

	results, err := RenderSizes(context.Background(), master, sizes, 2)
	if err != nil {
		t.Fatalf("RenderSizes: %v", err)
	}
	if len(results) != len(sizes) {
		t.Fatalf("result count: got %d, want %d", len(results), len(sizes))
	}
	for i, r := range results {
		if r.Size != sizes[i] {
			t.Errorf("result %d size: got %d, want %d", i, r.Size, sizes[i])
		}
		b := r.Image.Bounds()
		if b.Dx() != sizes[i] || b.Dy() != sizes[i] {
			t.Errorf("result %d bounds: got %dx%d, want %dx%d", i, b.Dx(), b.Dy(), sizes[i], sizes[i])
		}
	}
}

func TestRenderSizesRejectsInvalidSize(t *testing.T) {
	_, err := RenderSizes(context.Background(), newMaster(64), []int{32, 0}, 1)
	if err == nil {
		t.Fatal("RenderSizes with size 0: got nil error")
	}
}

func TestRenderSizesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := RenderSizes(ctx, newMaster(1024), AllSizes(), 1)
	if err == nil {
		t.Fatal("cancelled context: got nil error")
	}
	if results != nil {
		t.Errorf("cancelled context: got %d results, want nil", len(results))
	}
}

func TestRenderSizeKeepsTransparentCorners(t *testing.T) {
	out := RenderSize(newMaster(256), 48)

	if got := out.NRGBAAt(1, 1).A; got != 0 {
		t.Errorf("corner alpha: got %d, want 0", got)
	}
	if got := out.NRGBAAt(24, 24).A; got != 255 {
		t.Errorf("center alpha: got %d, want 255", got)
	}
}

func TestRenderSizeUpscale(t *testing.T) {
	out := RenderSize(newMaster(32), 128)
	b := out.Bounds()
	if b.Dx() != 128 || b.Dy() != 128 {
		t.Errorf("upscale bounds: got %dx%d, want 128x128", b.Dx(), b.Dy())
	}
}

func TestAllSizesSortedUnique(t *testing.T) {
	sizes := AllSizes()
	seen := make(map[int]bool)
	for i, s := range sizes {
		if seen[s] {
			t.Errorf("duplicate size %d", s)
		}
		seen[s] = true
		if i > 0 && sizes[i-1] >= s {
			t.Errorf("sizes not ascending at index %d: %v", i, sizes)
		}
	}
	for _, want := range []int{16, 100, 256, 1024} {
		if !seen[want] {
			t.Errorf("missing size %d in %v", want, sizes)
		}
	}
}
