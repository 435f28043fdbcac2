/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

// Package cache attaches a laid-out GlyphString chain to a TextStore as a
// volatile "glyph-string" property, so that re-requesting an unchanged
// span is free (spec §4.6).
package cache

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the engine tracer.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
