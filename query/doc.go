/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

// Package query answers measurement and hit-testing questions about an
// already laid-out GlyphString chain: overall and per-character extents,
// coordinate-to-character-position hit-testing, and cluster/neighbor
// lookups (spec §4.8). It consumes only *text.GlyphString; it needs no
// capability of its own.
package query

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
)

// T traces to the engine tracer.
func T() tracing.Trace {
	return gtrace.EngineTracer
}

// Box is an axis-aligned bounding box in device units, relative to the
// queried range's own origin.
type Box struct {
	X, Y, W, H dimen.DU
}

// Union returns the smallest Box covering both b and other; a
// zero-valued operand is treated as absent.
func (b Box) Union(other Box) Box {
	if b == (Box{}) {
		return other
	}
	if other == (Box{}) {
		return b
	}
	x0, y0 := minDU(b.X, other.X), minDU(b.Y, other.Y)
	x1, y1 := maxDU(b.X+b.W, other.X+other.W), maxDU(b.Y+b.H, other.Y+other.H)
	return Box{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func minDU(a, b dimen.DU) dimen.DU {
	if a < b {
		return a
	}
	return b
}

func maxDU(a, b dimen.DU) dimen.DU {
	if a > b {
		return a
	}
	return b
}
