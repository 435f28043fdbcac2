/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

// Package glyphengine is the facade tying the composer, bidi reorderer,
// layouter, line breaker, cache and renderer into the single pipeline a
// caller drives: Frame.Draw for painting, and Frame.TextExtents /
// Frame.PerCharExtents / Frame.CoordinatesPosition / Frame.GlyphInfo for
// the read-only query APIs (spec §4.8). DrawControl is the input
// structure a caller builds once and passes to every entry point; it
// carries every option spec.md §6's table lists.
package glyphengine

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the engine tracer.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
