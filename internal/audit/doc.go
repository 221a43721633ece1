// Package audit scores icons against quality heuristics.
//
// AuditImage runs a fixed, ordered set of checks (aspect ratio, resolution,
// transparency, edge quality, cleanliness) and returns one issue per check,
// each graded pass/info/warning/error with an optional machine-readable fix
// action. AnalyzeMetrics computes numeric quality scores (sharpness,
// contrast, brightness, palette size) that support before/after and
// reference-image comparisons; ExtractPalette reports the dominant colors.
//
// All functions tolerate degenerate input: a fully transparent image yields
// zero metrics rather than an error, and no check ever divides by zero.
package audit
