package raster

import (
	"image"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB triple used as a chroma-key reference.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// ColorKey pairs a reference color with a matching tolerance.
//
// Tolerance is expressed in 0-255 channel units regardless of the distance
// metric in use; metrics map it onto their own scale.
type ColorKey struct {
	Color     Color `json:"color"`
	Tolerance int   `json:"tolerance"` // 0-255
}

// DistanceMetric selects how color similarity is judged during masking.
//
// The per-channel metric is the pipeline default. The exact tolerance
// semantics are deliberately adjustable rather than bit-exact, so a
// perceptual alternative is available for sources where channel distance
// groups colors poorly (gradients, JPEG ringing around logos).
type DistanceMetric int

const (
	// MetricChannel matches when the maximum absolute per-channel
	// difference is within tolerance.
	MetricChannel DistanceMetric = iota

	// MetricLab matches on CIE Lab distance, with the 0-255 tolerance
	// mapped linearly onto Lab distance 0.0-1.0.
	MetricLab
)

// withinKey reports whether the pixel color (r,g,b) matches key under the
// given metric.
func withinKey(metric DistanceMetric, r, g, b uint8, key ColorKey) bool {
	switch metric {
	case MetricLab:
		c1 := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		c2 := colorful.Color{R: float64(key.Color.R) / 255, G: float64(key.Color.G) / 255, B: float64(key.Color.B) / 255}
		return c1.DistanceLab(c2) <= float64(key.Tolerance)/255
	default:
		d := chanDiff(r, key.Color.R)
		if dg := chanDiff(g, key.Color.G); dg > d {
			d = dg
		}
		if db := chanDiff(b, key.Color.B); db > d {
			d = db
		}
		return d <= key.Tolerance
	}
}

// MaskColorKeys makes every pixel matching any of the keys fully
// transparent. The removed set is the union over all keys.
//
// Color channels are preserved under the new transparency. The boundary is
// hard, not anti-aliased; smoothing is deferred to the edge refiner. An
// empty key list returns the input unchanged.
func MaskColorKeys(img *image.NRGBA, keys []ColorKey, metric DistanceMetric) *image.NRGBA {
	if len(keys) == 0 {
		return img
	}
	out := imaging.Clone(img)
	for i := 0; i < len(out.Pix); i += 4 {
		r, g, b := out.Pix[i], out.Pix[i+1], out.Pix[i+2]
		for _, key := range keys {
			if withinKey(metric, r, g, b, key) {
				out.Pix[i+3] = 0
				break
			}
		}
	}
	return out
}

func chanDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
