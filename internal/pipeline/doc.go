// Package pipeline is the single entry point of the icon processing core.
//
// Callers describe the whole transformation as one immutable Spec value
// (masking, composition, morphology, stroke, polish, edge refinement) and
// invoke Process to get a freshly rendered square image. There is no
// incremental mutation: a slider change in the calling layer means a new
// Spec and a new Process call, which keeps every recompute idempotent and
// deterministic for undo/versioning.
//
// Malformed parameters are rejected at spec construction time via the
// Validate methods, never deep inside a transform, so a failure is always
// attributable to caller input.
package pipeline
