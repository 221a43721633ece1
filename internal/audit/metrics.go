package audit

import (
	"image"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Metrics are numeric quality scores for a single image.
//
// Sharpness, contrast and brightness are computed over the grayscale
// conversion of visible pixels only (alpha > 10); PaletteSize counts
// distinct RGB triples among pixels with alpha > 0. All fields default to
// zero when the image has no visible pixels.
type Metrics struct {
	Sharpness   float64 `json:"sharpness"`    // Mean gradient magnitude, scaled, clamped to [0,100]
	Contrast    float64 `json:"contrast"`     // Standard deviation of gray values
	Brightness  float64 `json:"brightness"`   // Mean gray value (0-255)
	PaletteSize int     `json:"palette_size"` // Distinct visible RGB triples
}

// MetricsDelta holds signed differences between two metric sets, in
// current-minus-reference order.
type MetricsDelta struct {
	Sharpness   float64 `json:"sharpness"`
	Contrast    float64 `json:"contrast"`
	Brightness  float64 `json:"brightness"`
	PaletteSize int     `json:"palette_size"`
}

// metricAlphaMin excludes near-transparent pixels from the statistics so
// matting debris cannot skew sharpness or brightness.
const metricAlphaMin = 10

// AnalyzeMetrics computes the numeric quality metrics for an image.
//
// Sharpness is the mean gradient magnitude of the grayscale image (central
// differences, the same gradient a Sobel pass approximates) over pixels
// with alpha > 10, multiplied by 2 and clamped to [0,100]; roughly, below
// 20 reads as blurry and above 50 as sharp. Contrast and brightness are the
// standard deviation and mean of the same masked gray values.
//
// A fully transparent image yields all-zero metrics; no path divides by
// zero.
func AnalyzeMetrics(img *image.NRGBA) Metrics {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return Metrics{}
	}

	gray := make([]float64, w*h)
	masked := make([]float64, 0, w*h)
	maskAt := make([]bool, w*h)
	palette := make(map[[3]uint8]struct{})

	for y := 0; y < h; y++ {
		row := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			i := row + x*4
			r, g, bl, a := img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
			lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bl)
			gray[y*w+x] = lum
			if a > metricAlphaMin {
				masked = append(masked, lum)
				maskAt[y*w+x] = true
			}
			if a > 0 {
				palette[[3]uint8{r, g, bl}] = struct{}{}
			}
		}
	}

	m := Metrics{PaletteSize: len(palette)}
	if len(masked) == 0 {
		return m
	}

	m.Brightness = round1(stat.Mean(masked, nil))
	if len(masked) > 1 {
		m.Contrast = round1(stat.StdDev(masked, nil))
	}

	var gradSum float64
	var gradN int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !maskAt[y*w+x] {
				continue
			}
			gx := centralDiff(gray, w, x, y, 1, 0, w, h)
			gy := centralDiff(gray, w, x, y, 0, 1, w, h)
			gradSum += math.Sqrt(gx*gx + gy*gy)
			gradN++
		}
	}
	if gradN > 0 {
		score := gradSum / float64(gradN) * 2
		if score > 100 {
			score = 100
		}
		m.Sharpness = round1(score)
	}

	return m
}

// CompareMetrics returns the signed difference current - reference for each
// metric, for before/after and reference-image reports.
func CompareMetrics(current, reference Metrics) MetricsDelta {
	return MetricsDelta{
		Sharpness:   round1(current.Sharpness - reference.Sharpness),
		Contrast:    round1(current.Contrast - reference.Contrast),
		Brightness:  round1(current.Brightness - reference.Brightness),
		PaletteSize: current.PaletteSize - reference.PaletteSize,
	}
}

// centralDiff computes the gradient along one axis with central differences
// in the interior and one-sided differences at the borders.
func centralDiff(gray []float64, stride, x, y, dx, dy, w, h int) float64 {
	x0, y0 := x-dx, y-dy
	x1, y1 := x+dx, y+dy
	div := 2.0
	if x0 < 0 || y0 < 0 {
		x0, y0 = x, y
		div = 1
	}
	if x1 >= w || y1 >= h {
		x1, y1 = x, y
		if div == 1 {
			return 0
		}
		div = 1
	}
	return (gray[y1*stride+x1] - gray[y0*stride+x0]) / div
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
