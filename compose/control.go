/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

// Package compose itemizes a character range into same-script/same-face
// runs, resolves a realized font for each run through the FaceResolver
// capability, and produces the initial logical-order glyph buffer,
// including the shaping pass (spec §4.3).
package compose

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
)

// T traces to the engine tracer.
func T() tracing.Trace {
	return gtrace.EngineTracer
}

// Control is the subset of draw-control state the composer consults. It
// carries every field of text.Control plus the font Size, so a caller can
// build one Control value and split it between Compose and later pipeline
// stages without translation; Compose copies every field except Size onto
// the resulting GlyphString's own Control snapshot.
type Control struct {
	TwoDimensional       bool
	IgnoreFormattingChar bool
	EnableBidi           bool
	OrientationReversed  bool
	WidthLimit           dimen.DU
	TabWidth             int
	MinLineAscent        dimen.DU
	MinLineDescent       dimen.DU
	MaxLineAscent        dimen.DU
	MaxLineDescent       dimen.DU
	FixedWidth           bool
	AlignHead            bool
	DisableCaching       bool
	CursorWidth          dimen.DU
	CursorBidi           bool
	PartialUpdate        bool
	Size                 dimen.DU
}
