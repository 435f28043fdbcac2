/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

// Package text holds the core data model of the glyph layout engine:
// character positions, glyphs, glyph strings, the combining-code codec,
// and the TextStore capability that the engine consumes for character
// and property access.
package text

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
