package audit

import (
	"fmt"
	"image"
)

// Severity grades an audit finding.
type Severity string

const (
	SeverityPass    Severity = "pass"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is a single audit finding.
type Issue struct {
	Check     string   `json:"check"`                // Name of the check that produced this issue
	Severity  Severity `json:"severity"`             // pass, info, warning or error
	Message   string   `json:"message"`              // Human-readable explanation
	FixAction string   `json:"fix_action,omitempty"` // Machine-readable fix tag, empty if none
}

// Alpha-count thresholds used by the edge and cleanliness checks.
const (
	aliasedRatio  = 0.01 // below: essentially no soft pixels, edges are jagged
	blurryRatio   = 0.2  // above: too many soft pixels, edges are mushy
	dirtyAlphaMax = 10   // alpha below this counts as debris
	dirtyLimit    = 10   // more dirty pixels than this warrants a warning
	minResolution = 512
)

// AuditImage runs the fixed check list against an image and returns the
// findings in a stable order: aspect ratio, resolution, transparency, edge
// quality (only when the image has a partial matte), cleanliness.
func AuditImage(img *image.NRGBA) []Issue {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	issues := make([]Issue, 0, 5)

	if width != height {
		issues = append(issues, Issue{
			Check:     "Aspect Ratio",
			Severity:  SeverityError,
			Message:   fmt.Sprintf("Image is not square (%dx%d). Icons must be square.", width, height),
			FixAction: "crop_square",
		})
	} else {
		issues = append(issues, Issue{
			Check:    "Aspect Ratio",
			Severity: SeverityPass,
			Message:  "Image is square",
		})
	}

	minDim := width
	if height < minDim {
		minDim = height
	}
	if minDim < minResolution {
		issues = append(issues, Issue{
			Check:    "Resolution",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("Resolution is low (%dpx). Recommended: 1024px for best quality.", minDim),
		})
	} else {
		issues = append(issues, Issue{
			Check:    "Resolution",
			Severity: SeverityPass,
			Message:  fmt.Sprintf("High resolution (%dpx)", minDim),
		})
	}

	edgePixels, softPixels, dirtyPixels, minAlpha := alphaCounts(img)

	if minAlpha == 255 {
		issues = append(issues, Issue{
			Check:    "Transparency",
			Severity: SeverityInfo,
			Message:  "Image is fully opaque. Use a masking mode to remove the background if this is a logo or icon.",
		})
	} else {
		issues = append(issues, Issue{
			Check:    "Transparency",
			Severity: SeverityPass,
			Message:  "Image has transparency",
		})

		// Edge quality is only meaningful with a partial matte.
		if edgePixels > 0 {
			ratio := float64(softPixels) / float64(edgePixels)
			switch {
			case ratio < aliasedRatio:
				issues = append(issues, Issue{
					Check:     "Edge Quality",
					Severity:  SeverityError,
					Message:   "Edges appear jagged/aliased (pixelated).",
					FixAction: "smart_cleanup",
				})
			case ratio > blurryRatio:
				issues = append(issues, Issue{
					Check:     "Edge Quality",
					Severity:  SeverityWarning,
					Message:   "Edges appear blurry/soft.",
					FixAction: "sharpen",
				})
			default:
				issues = append(issues, Issue{
					Check:    "Edge Quality",
					Severity: SeverityPass,
					Message:  "Edges look smooth and clean",
				})
			}
		}
	}

	if dirtyPixels > dirtyLimit {
		issues = append(issues, Issue{
			Check:     "Cleanliness",
			Severity:  SeverityWarning,
			Message:   fmt.Sprintf("Found %d stray/dirty pixels.", dirtyPixels),
			FixAction: "clean_debris",
		})
	} else {
		issues = append(issues, Issue{
			Check:    "Cleanliness",
			Severity: SeverityPass,
			Message:  "No dirty pixels detected",
		})
	}

	return issues
}

// alphaCounts gathers the per-pixel alpha statistics shared by the checks:
// visible pixels (alpha > 0), soft pixels (0 < alpha < 255), dirty pixels
// (0 < alpha < 10) and the minimum alpha seen.
func alphaCounts(img *image.NRGBA) (edge, soft, dirty, minAlpha int) {
	minAlpha = 255
	for i := 3; i < len(img.Pix); i += 4 {
		a := int(img.Pix[i])
		if a < minAlpha {
			minAlpha = a
		}
		if a > 0 {
			edge++
			if a < 255 {
				soft++
			}
			if a < dirtyAlphaMax {
				dirty++
			}
		}
	}
	if len(img.Pix) == 0 {
		minAlpha = 0
	}
	return edge, soft, dirty, minAlpha
}
