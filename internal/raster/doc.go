// Package raster implements the alpha-matte primitives of the icon pipeline:
// alpha-plane morphology, chroma-key masking, border-seeded flood masking,
// and content-bounds cropping.
//
// All operations work on *image.NRGBA (straight, non-premultiplied alpha)
// with a coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward. Every function is pure: it never
// mutates its input and returns a freshly allocated image.
//
// # Alpha Masks
//
// The alpha channel of an image is treated as a single-channel mask
// (*image.Gray) where 0 is fully transparent and 255 is fully opaque.
// AlphaPlane extracts that view and WithAlpha writes a mask back onto an
// image's pixels without touching the color channels.
//
// # Degenerate Inputs
//
// Fully transparent, fully opaque, 1x1 and zero-visible-pixel images are all
// accepted; functions return an identity-like result instead of failing
// (AutoCrop, for example, returns its input unchanged when no pixel is
// visible). Parameter validation belongs to the spec types in the pipeline
// package, not to these primitives.
//
// # Determinism
//
// Given identical input bytes and parameters, every function in this package
// produces byte-identical output. This is required for the undo/versioning
// behavior of the surrounding application.
package raster
