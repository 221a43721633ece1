// Package refine cleans up icon boundaries and applies pixel-level
// enhancement: debris removal (alpha blur plus steep re-threshold), corner
// rounding/sharpening, grid-crispness sharpening, and the pre-masking
// preparation filters (despeckle, auto-contrast, grayscale and friends).
package refine
