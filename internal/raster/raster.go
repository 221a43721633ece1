package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ToNRGBA converts an arbitrary decoded image to straight-alpha NRGBA.
//
// If the input already is *image.NRGBA it is returned as-is; callers treat
// images as immutable values, so sharing the backing array is safe.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return imaging.Clone(img)
}

// AlphaPlane extracts the alpha channel of img as a grayscale mask.
//
// The returned mask is a copy; modifying it does not affect img.
func AlphaPlane(img *image.NRGBA) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	mask := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		si := img.PixOffset(b.Min.X, b.Min.Y+y)
		di := mask.PixOffset(0, y)
		for x := 0; x < w; x++ {
			mask.Pix[di+x] = img.Pix[si+x*4+3]
		}
	}
	return mask
}

// WithAlpha returns a copy of img whose alpha channel is replaced by mask.
//
// Color channels are preserved even where the new alpha is zero, so data
// needed by undo is never destroyed. The mask must have the same dimensions
// as img; excess pixels are ignored.
func WithAlpha(img *image.NRGBA, mask *image.Gray) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := imaging.Clone(img)
	mb := mask.Bounds()
	for y := 0; y < h && y < mb.Dy(); y++ {
		di := out.PixOffset(0, y)
		si := mask.PixOffset(mb.Min.X, mb.Min.Y+y)
		for x := 0; x < w && x < mb.Dx(); x++ {
			out.Pix[di+x*4+3] = mask.Pix[si+x]
		}
	}
	return out
}

// BinaryAlpha hardens the alpha channel to fully transparent or fully opaque
// using the given cutoff: alpha < cutoff becomes 0, everything else 255.
//
// Low-resolution icon formats without 8-bit transparency (legacy ICO depths)
// need a hard mask; this is the export-time variant used for them.
func BinaryAlpha(img *image.NRGBA, cutoff uint8) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] < cutoff {
			out.Pix[i] = 0
		} else {
			out.Pix[i] = 255
		}
	}
	return out
}

// Levels applies a steep piecewise-linear alpha curve: values at or below
// lo map to 0, at or above hi to 255, linear interpolation in between.
// The liquid polisher and the edge refiner share this curve so their
// re-binarized boundaries have the same anti-aliasing width.
func Levels(v, lo, hi uint8) uint8 {
	if v <= lo {
		return 0
	}
	if v >= hi || hi <= lo {
		return 255
	}
	return uint8(int(v-lo) * 255 / int(hi-lo))
}

// PadTransparent expands the canvas by px fully transparent pixels on all
// four sides. px <= 0 returns the input unchanged.
func PadTransparent(img *image.NRGBA, px int) *image.NRGBA {
	if px <= 0 {
		return img
	}
	b := img.Bounds()
	canvas := imaging.New(b.Dx()+2*px, b.Dy()+2*px, color.NRGBA{})
	return imaging.Paste(canvas, img, image.Pt(px, px))
}
