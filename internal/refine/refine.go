package refine

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/iconpress/iconpress/internal/raster"
)

// CleanEdges removes stray semi-transparent debris and evens out the
// anti-aliasing width of the boundary.
//
// The alpha channel is Gaussian blurred by blurRadius, then re-sharpened
// with the same steep piecewise-linear curve the liquid polisher uses,
// anchored at threshold: alpha at or below the threshold collapses to fully
// transparent, alpha 40 units above it saturates to fully opaque, linear in
// between. Faint debris under the cutoff disappears and the surviving
// boundary gets a consistent anti-aliasing width. Color channels are
// untouched.
func CleanEdges(img *image.NRGBA, threshold int, blurRadius float64) *image.NRGBA {
	mask := raster.AlphaPlane(img)
	if blurRadius > 0 {
		mask = blurMask(mask, blurRadius)
	}

	lo, hi := threshold, threshold+40
	if lo < 0 {
		lo = 0
	}
	if hi > 255 {
		hi = 255
	}
	for i := range mask.Pix {
		mask.Pix[i] = raster.Levels(mask.Pix[i], uint8(lo), uint8(hi))
	}
	return raster.WithAlpha(img, mask)
}

// CornerSharpness rounds or sharpens the shape's corners.
//
// value ranges 0-100 with 50 as neutral (no-op). Below 50 the alpha channel
// is Gaussian blurred by (50-value)/10 px (up to 5 px) and re-thresholded
// at the 128 midpoint, keeping a hard but rounded edge. Above 50 the whole
// image gets an unsharp-mask contrast boost with amount scaled by
// (value-50)*2.
func CornerSharpness(img *image.NRGBA, value int) *image.NRGBA {
	switch {
	case value < 50:
		radius := float64(50-value) / 10
		if radius <= 0 {
			return img
		}
		mask := blurMask(raster.AlphaPlane(img), radius)
		for i := range mask.Pix {
			mask.Pix[i] = raster.Levels(mask.Pix[i], 128, 168)
		}
		return raster.WithAlpha(img, mask)
	case value > 50:
		amount := float64(value-50) * 2
		return imaging.Clone(effect.UnsharpMask(img, 2, amount*2/100))
	default:
		return img
	}
}

// ResolutionSnap applies a final unsharp-mask pass for pixel-grid
// crispness. value ranges 0-100; the sharpening amount scales by value*1.5
// and 0 is a no-op returning the input unchanged.
func ResolutionSnap(img *image.NRGBA, value int) *image.NRGBA {
	if value <= 0 {
		return img
	}
	return imaging.Clone(effect.UnsharpMask(img, 1, float64(value)*1.5/100))
}

// blurMask Gaussian-blurs a grayscale mask. bild works on RGBA planes, so
// the mask rides in the red channel and is read back out afterwards.
func blurMask(mask *image.Gray, radius float64) *image.Gray {
	blurred := blur.Gaussian(mask, radius)
	b := blurred.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		si := blurred.PixOffset(b.Min.X, b.Min.Y+y)
		di := out.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			out.Pix[di+x] = blurred.Pix[si+x*4]
		}
	}
	return out
}
