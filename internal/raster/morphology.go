package raster

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// Expand dilates a mask by n pixels: every pixel takes the maximum alpha
// found within the structuring element of radius n around it, so opaque
// regions grow outward. n <= 0 returns the mask unchanged.
//
// One structuring element (bild's morphology kernel) is shared by every
// caller in the pipeline: shape weight, stroke generation and edge work all
// go through Expand/Choke so their notion of "n pixels" agrees.
func Expand(mask *image.Gray, n int) *image.Gray {
	if n <= 0 {
		return mask
	}
	return grayMorph(mask, n, true)
}

// Choke erodes a mask by n pixels: every pixel takes the minimum alpha
// within the structuring element of radius n, shrinking opaque regions.
// The dual of Expand. n <= 0 returns the mask unchanged.
func Choke(mask *image.Gray, n int) *image.Gray {
	if n <= 0 {
		return mask
	}
	return grayMorph(mask, n, false)
}

// ExpandImage applies Expand to the alpha plane of img, leaving the color
// channels untouched.
func ExpandImage(img *image.NRGBA, n int) *image.NRGBA {
	if n <= 0 {
		return img
	}
	return WithAlpha(img, Expand(AlphaPlane(img), n))
}

// ChokeImage applies Choke to the alpha plane of img, leaving the color
// channels untouched.
func ChokeImage(img *image.NRGBA, n int) *image.NRGBA {
	if n <= 0 {
		return img
	}
	return WithAlpha(img, Choke(AlphaPlane(img), n))
}

// grayMorph runs bild's dilate/erode on the mask. bild operates on RGBA
// images channel by channel; lifting the gray mask into RGBA keeps the
// operation on a single well-defined plane (R == G == B == mask, A == 255),
// and the red channel of the result is the new mask.
func grayMorph(mask *image.Gray, n int, dilate bool) *image.Gray {
	var processed *image.RGBA
	if dilate {
		processed = effect.Dilate(mask, float64(n))
	} else {
		processed = effect.Erode(mask, float64(n))
	}
	b := processed.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		si := processed.PixOffset(b.Min.X, b.Min.Y+y)
		di := out.PixOffset(0, y)
		for x := 0; x < w; x++ {
			out.Pix[di+x] = processed.Pix[si+x*4]
		}
	}
	return out
}
