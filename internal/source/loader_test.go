package source

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 30), uint8(y * 30), 90, 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func TestCacheLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "a.png")

	cache := NewCache()
	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("bounds: got %dx%d, want 8x8", b.Dx(), b.Dy())
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}

	// Second load serves the cached copy.
	again, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if again != img {
		t.Error("second Load returned a new decode, want the cached image")
	}
}

func TestCacheLoadMissingFile(t *testing.T) {
	cache := NewCache()
	if _, err := cache.Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("missing file: got nil error")
	}
	if cache.Len() != 0 {
		t.Errorf("Len after failed load: got %d, want 0", cache.Len())
	}
}

func TestCacheLoadNotAnImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write junk file: %v", err)
	}

	if _, err := NewCache().Load(path); err == nil {
		t.Fatal("junk file: got nil error")
	}
}

func TestCacheEvictAndClear(t *testing.T) {
	dir := t.TempDir()
	a := writeTestPNG(t, dir, "a.png")
	b := writeTestPNG(t, dir, "b.png")

	cache := NewCache()
	if _, err := cache.Load(a); err != nil {
		t.Fatalf("Load a: %v", err)
	}
	if _, err := cache.Load(b); err != nil {
		t.Fatalf("Load b: %v", err)
	}

	cache.Evict(a)
	if cache.Len() != 1 {
		t.Errorf("Len after Evict: got %d, want 1", cache.Len())
	}
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len after Clear: got %d, want 0", cache.Len())
	}
}
