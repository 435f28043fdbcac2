/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

// Package render walks an already-laid-out GlyphString and dispatches
// drawing to the FontDriver/FrameDriver capabilities a caller supplies
// (spec §4.7). It never rasterizes itself; SoftDriver, in this package,
// is a reference FrameDriver/FontDriver pair wrapping
// golang.org/x/image for callers that want something to render into
// without a real windowing backend.
package render

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/text"
)

// T traces to the graphics tracer.
func T() tracing.Trace {
	return gtrace.GraphicsTracer
}

// Window is an opaque device-surface handle the renderer hands through
// to a driver without inspecting it.
type Window interface{}

// Region is an opaque accumulated dirty-rectangle handle a FrameDriver
// owns; SoftDriver implements it as a plain Rect union.
type Region interface{}

// Rect is a device-unit rectangle, origin top-left.
type Rect struct {
	X, Y, W, H dimen.DU
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the smallest rectangle covering both r and other; an
// empty operand is ignored.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x0, y0 := min(r.X, other.X), min(r.Y, other.Y)
	x1, y1 := max(r.X+r.W, other.X+other.W), max(r.Y+r.H, other.Y+other.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func min(a, b dimen.DU) dimen.DU {
	if a < b {
		return a
	}
	return b
}

func max(a, b dimen.DU) dimen.DU {
	if a > b {
		return a
	}
	return b
}

// FontDriver renders one realized font's glyphs (spec §6). A RealizedFace
// that can render itself implements FontDriverProvider to hand one back.
type FontDriver interface {
	Render(win Window, x, y dimen.DU, gs *text.GlyphString, from, to int, reverse bool, region Region) error
}

// FontDriverProvider is implemented by a realized face capable of
// rendering its own glyphs, mirroring the shape package's
// HBFontProvider capability pattern.
type FontDriverProvider interface {
	FontDriver() FontDriver
}

// FrameDriver draws backgrounds, empty-box placeholders, box edges, and
// overlay lines onto a device surface (spec §6).
type FrameDriver interface {
	FillSpace(win Window, face text.Face, isCursor bool, x, y, w, h dimen.DU, clip Rect) error
	DrawEmptyBoxes(win Window, x, y dimen.DU, gs *text.GlyphString, from, to int, reverse bool, clip Rect) error
	DrawBox(win Window, gs *text.GlyphString, g *text.Glyph, x, y, width dimen.DU, clip Rect) error
	DrawHLine(win Window, gs *text.GlyphString, face text.Face, reverse bool, x, y, width dimen.DU, clip Rect) error

	RegionFromRect(r Rect) Region
	RegionAddRect(reg Region, r Rect) Region
	IntersectRegion(a, b Region) Region
	FreeRegion(reg Region)
	RegionToRect(reg Region) Rect
}

// ReverseVideo is an optional face capability: a face painting in
// reverse video gets its background filled during the background pass
// even when the caller didn't ask for as_image (spec §4.7 step 1).
type ReverseVideo interface {
	ReverseVideo() bool
}

// Underlined is an optional face capability declaring an underline
// overlay (spec §4.7 step 2).
type Underlined interface {
	Underline() bool
}

// StruckThrough is an optional face capability declaring a strikethrough
// overlay (spec §4.7 step 2).
type StruckThrough interface {
	Strikethrough() bool
}
