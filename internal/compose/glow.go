package compose

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/iconpress/iconpress/internal/raster"
)

// Glow paints a soft colored halo behind the content.
//
// The content mask is expanded by radius, Gaussian blurred by the same
// radius, scaled by the glow color's alpha, and composited as a flat color
// layer behind the image. radius <= 0 is a no-op returning the input
// unchanged.
func Glow(img *image.NRGBA, glowColor color.NRGBA, radius int) *image.NRGBA {
	if radius <= 0 {
		return img
	}

	halo := raster.Expand(raster.AlphaPlane(img), radius)
	halo = grayClone(blur.Gaussian(halo, float64(radius)))

	layer := flatLayer(img.Bounds(), glowColor, halo)
	return imaging.Overlay(layer, img, image.Pt(0, 0), 1.0)
}

// grayClone reads a bild RGBA result back into a grayscale mask.
func grayClone(img *image.RGBA) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		si := img.PixOffset(b.Min.X, b.Min.Y+y)
		di := out.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			out.Pix[di+x] = img.Pix[si+x*4]
		}
	}
	return out
}
