/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

// Package layout implements the Layouter: per-cluster mark placement, box
// edge and padding insertion, space/tab/newline width rules, and line
// ascent/descent clamping (spec §4.4). It operates on a text.GlyphString
// already produced by compose.Compose (and, for visual order, reordered by
// bidi.Reorder).
package layout

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the engine tracer.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
