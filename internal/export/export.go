package export

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sort"
	"sync"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Standard icon size sets for the supported platforms.
var (
	WindowsSizes = []int{16, 32, 48, 256}
	MacSizes     = []int{16, 32, 64, 128, 256, 512, 1024}
	WebSizes     = []int{100}
)

// AllSizes returns the union of the standard size sets, sorted ascending.
func AllSizes() []int {
	seen := make(map[int]bool)
	var sizes []int
	for _, set := range [][]int{WindowsSizes, MacSizes, WebSizes} {
		for _, s := range set {
			if !seen[s] {
				seen[s] = true
				sizes = append(sizes, s)
			}
		}
	}
	sort.Ints(sizes)
	return sizes
}

// Result is one rendered target size.
type Result struct {
	Size  int          `json:"size"`
	Image *image.NRGBA `json:"-"`
}

// RenderSizes resamples the master image to every requested size.
//
// Each size renders independently on a worker pool of up to `workers`
// goroutines (<= 0 uses GOMAXPROCS). Results come back ordered like the
// input sizes. When ctx is cancelled, in-flight renders are discarded and
// only the error is returned; a partially rendered set is never published.
//
// Small targets get a smart-sharpen pass so detail survives the shrink:
// aggressive at 32 px and below, mild up to 64 px, none above (Lanczos
// alone looks natural there).
func RenderSizes(ctx context.Context, master *image.NRGBA, sizes []int, workers int) ([]Result, error) {
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("invalid target size %d: must be positive", s)
		}
	}
	if len(sizes) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(sizes) {
		workers = len(sizes)
	}

	results := make([]Result, len(sizes))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = Result{
					Size:  sizes[idx],
					Image: RenderSize(master, sizes[idx]),
				}
			}
		}()
	}

feed:
	for idx := range sizes {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// RenderSize resamples the master to a single size x size image.
func RenderSize(master *image.NRGBA, size int) *image.NRGBA {
	b := master.Bounds()
	var resized *image.NRGBA
	if size < b.Dx() || size < b.Dy() {
		resized = downsample(master, size)
	} else {
		resized = imaging.Resize(master, size, size, imaging.Lanczos)
	}

	// Smart sharpening tiers, tuned for how much detail each size loses.
	switch {
	case size <= 32:
		resized = imaging.Clone(effect.UnsharpMask(resized, 0.5, 1.5))
	case size <= 64:
		resized = imaging.Clone(effect.UnsharpMask(resized, 0.5, 1.0))
	}
	return resized
}

// downsample shrinks through premultiplied alpha with a CatmullRom kernel,
// which avoids the dark halo artifacts straight-alpha filtering produces at
// transparent edges.
func downsample(img *image.NRGBA, size int) *image.NRGBA {
	b := img.Bounds()

	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := premul.PixOffset(x, y)
			a := float64(img.Pix[si+3]) / 255.0
			premul.Pix[di] = uint8(float64(img.Pix[si])*a + 0.5)
			premul.Pix[di+1] = uint8(float64(img.Pix[si+1])*a + 0.5)
			premul.Pix[di+2] = uint8(float64(img.Pix[si+2])*a + 0.5)
			premul.Pix[di+3] = img.Pix[si+3]
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), xdraw.Src, nil)

	out := image.NewNRGBA(dst.Bounds())
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			si := dst.PixOffset(x, y)
			di := out.PixOffset(x, y)
			a := float64(dst.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				out.Pix[di] = clamp8(float64(dst.Pix[si]) * inv)
				out.Pix[di+1] = clamp8(float64(dst.Pix[si+1]) * inv)
				out.Pix[di+2] = clamp8(float64(dst.Pix[si+2]) * inv)
			}
			out.Pix[di+3] = dst.Pix[si+3]
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
