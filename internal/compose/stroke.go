package compose

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/iconpress/iconpress/internal/raster"
)

// Alignment positions a stroke relative to the content boundary.
type Alignment int

const (
	// AlignOutside grows the stroke outward from the boundary; the stroke
	// sits behind the content.
	AlignOutside Alignment = iota

	// AlignCenter straddles the boundary (half out, half in); the stroke
	// sits on top of the content.
	AlignCenter

	// AlignInside eats into the content from the boundary inward; the
	// stroke sits on top of the content.
	AlignInside
)

// Stroke paints a flat-colored outline of the given width along the alpha
// boundary of img.
//
// With the content mask M, the stroke band is outer - inner per alignment:
//
//	Outside: expand(M, w) - M
//	Inside:  M - choke(M, w)
//	Center:  expand(M, w/2) - choke(M, w/2)
//
// where subtraction is max(0, outerAlpha - innerAlpha) per pixel. The band
// becomes the alpha of a flat color layer composited source-over: behind
// the content for Outside (the image is painted over the stroke), on top of
// it otherwise. width <= 0 is a no-op returning the input unchanged.
func Stroke(img *image.NRGBA, strokeColor color.NRGBA, width int, align Alignment) *image.NRGBA {
	if width <= 0 {
		return img
	}

	mask := raster.AlphaPlane(img)

	var outer, inner *image.Gray
	switch align {
	case AlignInside:
		outer = mask
		inner = raster.Choke(mask, width)
	case AlignCenter:
		half := width / 2
		if half < 1 {
			half = 1
		}
		outer = raster.Expand(mask, half)
		inner = raster.Choke(mask, half)
	default:
		outer = raster.Expand(mask, width)
		inner = mask
	}

	band := subtractMask(outer, inner)
	layer := flatLayer(img.Bounds(), strokeColor, band)

	if align == AlignOutside {
		return imaging.Overlay(layer, img, image.Pt(0, 0), 1.0)
	}
	return imaging.Overlay(img, layer, image.Pt(0, 0), 1.0)
}

// subtractMask computes max(0, a-b) per pixel.
func subtractMask(a, b *image.Gray) *image.Gray {
	out := image.NewGray(a.Bounds())
	for i := range a.Pix {
		if i < len(b.Pix) && a.Pix[i] > b.Pix[i] {
			out.Pix[i] = a.Pix[i] - b.Pix[i]
		}
	}
	return out
}

// flatLayer builds a solid-color image whose alpha channel is the combined
// stroke band and color alpha.
func flatLayer(bounds image.Rectangle, c color.NRGBA, band *image.Gray) *image.NRGBA {
	layer := imaging.New(bounds.Dx(), bounds.Dy(), color.NRGBA{R: c.R, G: c.G, B: c.B})
	for y := 0; y < bounds.Dy(); y++ {
		li := layer.PixOffset(0, y)
		bi := band.PixOffset(band.Bounds().Min.X, band.Bounds().Min.Y+y)
		for x := 0; x < bounds.Dx(); x++ {
			layer.Pix[li+x*4+3] = uint8(uint16(band.Pix[bi+x]) * uint16(c.A) / 255)
		}
	}
	return layer
}
