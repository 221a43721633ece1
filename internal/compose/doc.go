// Package compose places isolated icon content on a square canvas and
// decorates it: contain/cover fitting with a user scale, aligned colored
// stroke outlines, supersampled "liquid" edge polishing, and background
// fills for previews.
//
// Like the raster package, everything here is pure and deterministic:
// inputs are never mutated, and identical inputs produce byte-identical
// outputs.
package compose
