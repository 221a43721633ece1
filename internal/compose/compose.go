package compose

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// FitMode controls how content is scaled onto the square canvas.
type FitMode int

const (
	// FitContain scales content so it fits entirely inside the canvas;
	// uncovered canvas stays transparent.
	FitContain FitMode = iota

	// FitCover scales content so it fills the canvas completely, cropping
	// the excess symmetrically from the center.
	FitCover
)

// Square normalizes arbitrary-aspect content onto a targetSize x targetSize
// transparent canvas with the content centered.
//
// The base scale is min(target/w, target/h) for FitContain and
// max(target/w, target/h) for FitCover, multiplied by userScale. A
// userScale below 1.0 shrinks the content and leaves margin (the "Safe
// Margin" preset uses 0.9); above 1.0 it enlarges the content, cropping
// more in cover mode or overflowing the canvas in contain mode. Placement
// is clamped by rectangle intersection, so oversized content never produces
// negative source-crop offsets.
//
// The result is always exactly targetSize x targetSize. Callers validate
// targetSize > 0 and userScale range before reaching this function; a
// degenerate (empty) input yields a fully transparent canvas.
func Square(img *image.NRGBA, targetSize int, userScale float64, fit FitMode) *image.NRGBA {
	canvas := imaging.New(targetSize, targetSize, color.NRGBA{})

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return canvas
	}

	sx := float64(targetSize) / float64(w)
	sy := float64(targetSize) / float64(h)
	scale := math.Min(sx, sy)
	if fit == FitCover {
		scale = math.Max(sx, sy)
	}
	scale *= userScale

	newW := int(math.Round(float64(w) * scale))
	newH := int(math.Round(float64(h) * scale))
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	content := imaging.Resize(img, newW, newH, imaging.Lanczos)
	if fit == FitCover && (newW > targetSize || newH > targetSize) {
		content = imaging.CropCenter(content, min(newW, targetSize), min(newH, targetSize))
	}
	return imaging.PasteCenter(canvas, content)
}

// OverBackground composites img source-over an opaque background color of
// the same size. Used by preview rendering to check icons against light and
// dark surfaces.
func OverBackground(img *image.NRGBA, bg color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), bg)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}
