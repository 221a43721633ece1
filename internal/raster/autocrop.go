package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ContentBounds returns the minimal axis-aligned bounding box enclosing all
// pixels with alpha > 0, in coordinates relative to the image origin.
// ok is false when no pixel is visible.
func ContentBounds(img *image.NRGBA) (box image.Rectangle, ok bool) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	minX, minY := w, h
	maxX, maxY := -1, -1
	for y := 0; y < h; y++ {
		row := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			if img.Pix[row+x*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// AutoCrop crops an image to the tight bounding box of its visible pixels,
// then re-expands the canvas symmetrically by padding fully transparent
// pixels on all four sides.
//
// A fully transparent image is returned unchanged: the cropper never
// produces a zero-area result. The operation is idempotent for a fixed
// padding, since a second pass finds the same bounding box (the added
// padding is transparent).
func AutoCrop(img *image.NRGBA, padding int) *image.NRGBA {
	box, ok := ContentBounds(img)
	if !ok {
		return img
	}
	b := img.Bounds()
	cropped := imaging.Crop(img, box.Add(b.Min))
	if padding <= 0 {
		return cropped
	}
	canvas := imaging.New(box.Dx()+2*padding, box.Dy()+2*padding, color.NRGBA{})
	return imaging.Paste(canvas, cropped, image.Pt(padding, padding))
}
