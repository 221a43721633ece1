// Package export resamples a processed master image to the requested icon
// sizes. Rendering N sizes is an embarrassingly parallel map: each size is
// one independent resample on a bounded worker pool, cancellable through
// the context, with no shared mutable state. A cancelled render publishes
// nothing partial.
package export
