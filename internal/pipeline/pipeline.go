package pipeline

import (
	"fmt"
	"image"

	"github.com/iconpress/iconpress/internal/compose"
	"github.com/iconpress/iconpress/internal/raster"
	"github.com/iconpress/iconpress/internal/refine"
)

// Process runs the full pipeline on a decoded source image and returns the
// processed square master.
//
// Stage order: prep filters, masking (one mode), optional auto-crop, square
// composition, shape-weight morphology, optional stroke, optional liquid
// polish, edge refinement. The input is never mutated and identical
// input/spec pairs produce byte-identical output.
func Process(src image.Image, spec Spec) (*image.NRGBA, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid spec: %w", err)
	}

	img := raster.ToNRGBA(src)
	img = applyPrep(img, spec.Prep)
	img = applyMasking(img, spec.Masking)

	img = compose.Square(img, spec.Composition.TargetSize, spec.Composition.scale(), spec.Composition.fitMode())

	if w := spec.Morphology.ShapeWeight; w < 0 {
		img = raster.ChokeImage(img, -w)
	} else if w > 0 {
		img = raster.ExpandImage(img, w)
	}

	if spec.Stroke != nil {
		img = compose.Stroke(img, spec.Stroke.Color, spec.Stroke.Width, spec.Stroke.alignment())
	}

	img = compose.LiquidPolish(img, spec.Polish.Intensity)

	img = refine.CleanEdges(img, spec.Refine.DebrisThreshold, spec.Refine.SmoothBlurRadius)
	img = refine.CornerSharpness(img, spec.Refine.CornerSharpness)
	img = refine.ResolutionSnap(img, spec.Refine.ResolutionSnap)

	return img, nil
}

func applyPrep(img *image.NRGBA, p PrepSpec) *image.NRGBA {
	if p.Despeckle {
		img = refine.Despeckle(img)
	}
	if p.AutoContrast {
		img = refine.AutoContrast(img, 2)
	}
	if p.Normalize {
		img = refine.AutoContrast(img, 0)
	}
	if p.Sharpen {
		img = refine.Sharpen(img)
	}
	if p.Smooth {
		img = refine.Smooth(img)
	}
	if p.Grayscale {
		img = refine.Grayscale(img)
	}
	if p.Saturation > 0 {
		img = refine.Saturate(img, p.Saturation)
	}
	return img
}

func applyMasking(img *image.NRGBA, m MaskingSpec) *image.NRGBA {
	switch m.Mode {
	case MaskAutoCrop:
		if m.EdgeProtectPad {
			img = raster.PadTransparent(img, edgeProtectPx)
		}
		img = raster.AutoCrop(img, m.cropPadding())

	case MaskColorKey:
		img = raster.MaskColorKeys(img, m.Keys, m.Metric)
		if m.AutoCropAfter {
			img = raster.AutoCrop(img, m.cropPadding())
		}

	case MaskBorderFlood:
		if m.EdgeProtectPad {
			img = raster.PadTransparent(img, edgeProtectPx)
		}
		img = raster.MaskBorderFlood(img, m.Tolerance, m.seedMode(), m.Metric)
		if m.AutoCropAfter {
			img = raster.AutoCrop(img, m.cropPadding())
		}
	}
	return img
}

func (s MaskingSpec) cropPadding() int {
	if s.Padding == nil {
		return defaultCropPadding
	}
	return *s.Padding
}

func (s MaskingSpec) seedMode() raster.SeedMode {
	if s.SeedMode == SeedAllEdges {
		return raster.SeedAllEdges
	}
	return raster.SeedCorners
}
