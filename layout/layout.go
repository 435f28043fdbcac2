/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package layout

import (
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/text"
)

// Layouter assigns final metrics to an already-composed GlyphString: mark
// placement, box edges, padding, space/tab/newline widths, and the line
// box (spec §4.4).
type Layouter struct {
	// SpaceWidth is the frame's default space width (frame.space_width),
	// used for tab stops and fixed-width box edges.
	SpaceWidth dimen.DU
	Size       dimen.DU
}

// Layout runs the full per-line finalization pass over gs, mutating it
// (and growing gs.Glyphs as box-edge and padding glyphs are inserted).
func (l Layouter) Layout(gs *text.GlyphString) {
	from, to := 1, len(gs.Glyphs)-1
	PlaceMarks(gs, from, to, l.Size)

	to = InsertBoxEdges(gs, from, to, l.SpaceWidth, gs.Control.FixedWidth)

	for i := from; i < to; i++ {
		g := &gs.Glyphs[i]
		if g.Kind != text.Char && g.Kind != text.Space {
			continue
		}
		if g.IsMark() {
			continue
		}
		if g.LBearing < 0 {
			newIdx := InsertLeftPadding(gs, i)
			if newIdx != i {
				to++
				i = newIdx
			}
		}
	}

	ApplySpaceTabNewlineWidths(gs, from, to, l.SpaceWidth, gs.Indent)
	FixUpRTLTabs(gs, from, to, l.SpaceWidth, gs.Indent)

	l.sumMetrics(gs, from, to)

	if to > from {
		InsertRightPadding(gs, to)
	}

	ClampLineAscentDescent(gs)
}

// sumMetrics totals per-glyph widths and bearings into the GlyphString's
// own Width/LBearing/RBearing/Ascent/Descent fields.
func (l Layouter) sumMetrics(gs *text.GlyphString, from, to int) {
	var width, ascent, descent dimen.DU
	lbearing := dimen.DU(0)
	rbearing := dimen.DU(0)
	first := true
	for i := from; i < to; i++ {
		g := &gs.Glyphs[i]
		if first && (g.Kind == text.Char || g.Kind == text.Space) {
			lbearing = g.LBearing
			first = false
		}
		width += g.Width
		if g.Ascent > ascent {
			ascent = g.Ascent
		}
		if g.Descent > descent {
			descent = g.Descent
		}
	}
	for i := to - 1; i >= from; i-- {
		g := &gs.Glyphs[i]
		if g.Kind == text.Char || g.Kind == text.Space {
			rbearing = g.RBearing
			break
		}
	}
	gs.Width, gs.LBearing, gs.RBearing = width, lbearing, rbearing
	gs.Ascent, gs.Descent = ascent, descent

	// SubWidth/SubRBearing track the running advance vs. the running ink
	// extent; SubRBearing exceeds SubWidth exactly when the last glyph's
	// own rbearing is negative, i.e. its ink overruns its advance box
	// (spec §4.4 "when sub_rbearing > sub_width").
	gs.SubWidth = width
	gs.SubLBearing = lbearing
	gs.SubRBearing = width - rbearing
}
