package refine

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/iconpress/iconpress/internal/raster"
)

// Prep filters run before masking to improve foreground/background
// separation. Each takes and returns a straight-alpha NRGBA image; the
// alpha channel always survives unchanged.

// Despeckle removes isolated noise pixels with a 3x3 median filter.
func Despeckle(img *image.NRGBA) *image.NRGBA {
	return keepAlpha(img, imaging.Clone(effect.Median(img, 3)))
}

// Sharpen applies the basic 3x3 sharpening kernel.
func Sharpen(img *image.NRGBA) *image.NRGBA {
	return keepAlpha(img, imaging.Clone(effect.Sharpen(img)))
}

// Smooth applies a light Gaussian blur, softening aliased source art.
func Smooth(img *image.NRGBA) *image.NRGBA {
	return keepAlpha(img, imaging.Clone(blur.Gaussian(img, 0.8)))
}

// Grayscale converts the color channels to luminance.
func Grayscale(img *image.NRGBA) *image.NRGBA {
	return keepAlpha(img, imaging.Clone(effect.Grayscale(img)))
}

// Saturate boosts color saturation by the given fraction (0.5 = +50%).
func Saturate(img *image.NRGBA, change float64) *image.NRGBA {
	return keepAlpha(img, imaging.Clone(adjust.Saturation(img, change)))
}

// AutoContrast stretches each color channel to the full 0-255 range,
// discarding the given percentage of extreme values from both ends of the
// histogram first (cutoff 0 uses the true min/max, cutoff 2 ignores the
// brightest and darkest 2% so outliers don't defeat the stretch).
//
// The histogram is built only over visible pixels (alpha > 0) so a large
// transparent background cannot dominate the range.
func AutoContrast(img *image.NRGBA, cutoff int) *image.NRGBA {
	out := imaging.Clone(img)

	for ch := 0; ch < 3; ch++ {
		var hist [256]int
		total := 0
		for i := 0; i < len(out.Pix); i += 4 {
			if out.Pix[i+3] == 0 {
				continue
			}
			hist[out.Pix[i+ch]]++
			total++
		}
		if total == 0 {
			continue
		}

		drop := total * cutoff / 100
		lo, hi := histogramRange(hist, total, drop)
		if hi <= lo {
			continue
		}

		scale := 255.0 / float64(hi-lo)
		var lut [256]uint8
		for v := 0; v < 256; v++ {
			s := (float64(v) - float64(lo)) * scale
			if s < 0 {
				s = 0
			}
			if s > 255 {
				s = 255
			}
			lut[v] = uint8(s + 0.5)
		}
		for i := 0; i < len(out.Pix); i += 4 {
			out.Pix[i+ch] = lut[out.Pix[i+ch]]
		}
	}
	return out
}

// histogramRange finds the value range that remains after dropping `drop`
// samples from each end of the histogram.
func histogramRange(hist [256]int, total, drop int) (lo, hi int) {
	seen := 0
	lo = 0
	for v := 0; v < 256; v++ {
		seen += hist[v]
		if seen > drop {
			lo = v
			break
		}
	}
	seen = 0
	hi = 255
	for v := 255; v >= 0; v-- {
		seen += hist[v]
		if seen > drop {
			hi = v
			break
		}
	}
	return lo, hi
}

// keepAlpha copies the alpha plane of src back onto processed. bild's
// filters run through premultiplied RGBA and may disturb alpha at
// semi-transparent pixels; prep filters promise to leave the matte alone.
func keepAlpha(src, processed *image.NRGBA) *image.NRGBA {
	return raster.WithAlpha(processed, raster.AlphaPlane(src))
}
