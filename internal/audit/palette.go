package audit

import (
	"image"
	"math"
	"sort"

	"github.com/cenkalti/dominantcolor"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// PaletteMethod selects the dominant-palette extraction algorithm.
type PaletteMethod int

const (
	// PaletteDominant uses frequency-weighted dominant color extraction.
	// Deterministic; the default for audit reports.
	PaletteDominant PaletteMethod = iota

	// PaletteKMeans clusters sampled pixel colors with k-means. Better at
	// summarizing gradients, at the cost of randomized initialization.
	PaletteKMeans
)

// PaletteEntry is one reported palette color with its relative weight.
type PaletteEntry struct {
	Color  colorful.Color `json:"color"`
	Weight float64        `json:"weight"` // Relative share, descending within a report
}

// ExtractPalette reports the k most representative colors of an image,
// heaviest first. Fully transparent or empty images return nil.
//
// This feeds the palette-complexity side of the audit report: a logo whose
// palette collapses to two or three entries survives small sizes far better
// than one with many.
func ExtractPalette(img image.Image, k int, method PaletteMethod) []PaletteEntry {
	if k <= 0 || img == nil {
		return nil
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}
	if method == PaletteKMeans {
		if p := kmeansPalette(img, k); len(p) > 0 {
			return p
		}
	}
	return dominantPalette(img, k)
}

func dominantPalette(img image.Image, k int) []PaletteEntry {
	candidates := dominantcolor.FindWeight(img, max(k, 8))
	if len(candidates) == 0 {
		return nil
	}
	entries := make([]PaletteEntry, 0, len(candidates))
	for _, c := range candidates {
		col, ok := colorful.MakeColor(c.RGBA)
		if !ok {
			continue
		}
		entries = append(entries, PaletteEntry{Color: col.Clamped(), Weight: c.Weight})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Weight > entries[j].Weight
	})
	if len(entries) > k {
		entries = entries[:k]
	}
	return entries
}

// kmeansPalette clusters a subsample of the visible pixels.
func kmeansPalette(img image.Image, k int) []PaletteEntry {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	// Subsample to keep the clustering tractable on large images.
	const maxSamples = 12000
	step := 1
	if w*h > maxSamples {
		step = int(math.Sqrt(float64(w*h)/maxSamples)) + 1
	}

	dataset := make(clusters.Observations, 0, maxSamples)
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r) / 65535.0,
				float64(g) / 65535.0,
				float64(bl) / 65535.0,
			})
		}
	}
	if len(dataset) < k {
		return nil
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil || len(cc) == 0 {
		return nil
	}

	entries := make([]PaletteEntry, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		entries = append(entries, PaletteEntry{
			Color:  col,
			Weight: float64(len(c.Observations)) / float64(len(dataset)),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Weight > entries[j].Weight
	})
	return entries
}
