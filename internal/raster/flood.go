package raster

import (
	"image"

	"github.com/disintegration/imaging"
)

// SeedMode selects which border pixels seed the background flood fill.
type SeedMode int

const (
	// SeedCorners seeds from the four corner pixels only. Artwork that
	// touches an edge (full-bleed banners, screenshots) keeps edge-colored
	// regions that are not connected to a corner.
	SeedCorners SeedMode = iota

	// SeedAllEdges seeds from every pixel on all four edges.
	SeedAllEdges
)

// MaskBorderFlood removes the background connected component of an image.
//
// An iterative 4-connected flood fill grows from the seed pixels; a pixel
// joins the background component when its color is within tolerance of the
// already-included neighbor it was reached from. Every pixel in the
// component gets alpha 0; all other pixels are untouched, which guarantees
// that background-colored regions fully enclosed by foreground survive
// (unlike chroma keying, which removes them everywhere).
//
// The comparison spans all four channels, so a transparent protective
// border never bleeds into opaque content of a similar color. The fill uses
// an explicit work queue and a visited bitmap sized to the image: it
// terminates on any finite input and never revisits a pixel.
func MaskBorderFlood(img *image.NRGBA, tolerance int, seeds SeedMode, metric DistanceMetric) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return img
	}

	out := imaging.Clone(img)
	visited := make([]bool, w*h)
	queue := make([]image.Point, 0, 2*(w+h))

	push := func(x, y int) {
		if !visited[y*w+x] {
			visited[y*w+x] = true
			queue = append(queue, image.Pt(x, y))
		}
	}

	if seeds == SeedAllEdges {
		for x := 0; x < w; x++ {
			push(x, 0)
			push(x, h-1)
		}
		for y := 0; y < h; y++ {
			push(0, y)
			push(w-1, y)
		}
	} else {
		push(0, 0)
		push(w-1, 0)
		push(0, h-1)
		push(w-1, h-1)
	}

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		pi := out.PixOffset(p.X, p.Y)

		for _, d := range [4]image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := p.X+d.X, p.Y+d.Y
			if nx < 0 || nx >= w || ny < 0 || ny >= h || visited[ny*w+nx] {
				continue
			}
			ni := out.PixOffset(nx, ny)
			if neighborClose(metric, tolerance, out.Pix[pi:pi+4], out.Pix[ni:ni+4]) {
				visited[ny*w+nx] = true
				queue = append(queue, image.Pt(nx, ny))
			}
		}
	}

	// Apply the component in a second pass so adjacency always compares
	// original pixel values, not ones already made transparent.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if visited[y*w+x] {
				out.Pix[out.PixOffset(x, y)+3] = 0
			}
		}
	}

	return out
}

// neighborClose compares two adjacent pixels (RGBA slices of the source
// image) under the flood tolerance. The alpha difference is always bounded
// by the tolerance; the color part follows the chosen metric.
func neighborClose(metric DistanceMetric, tolerance int, a, b []uint8) bool {
	if chanDiff(a[3], b[3]) > tolerance {
		return false
	}
	return withinKey(metric, a[0], a[1], a[2], ColorKey{
		Color:     Color{R: b[0], G: b[1], B: b[2]},
		Tolerance: tolerance,
	})
}
