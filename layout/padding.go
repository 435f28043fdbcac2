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

// minSpaceWidth is the floor a Space glyph's width is never shrunk below
// when absorbing left padding (spec §4.4 "never shrink the space below a
// minimum (2 units)").
const minSpaceWidth dimen.DU = 2

// InsertLeftPadding inserts a Pad glyph (or absorbs into a preceding
// Space) before the cluster starting at index i when that cluster's
// lbearing is negative — its ink starts to the left of its own origin
// (spec §4.4 "Left-padding"). It returns the new index of the cluster's
// base glyph.
func InsertLeftPadding(gs *text.GlyphString, i int) int {
	base := &gs.Glyphs[i]
	if base.LBearing >= 0 {
		return i
	}
	need := -base.LBearing
	if i > 0 && gs.Glyphs[i-1].Kind == text.Space {
		space := &gs.Glyphs[i-1]
		shrink := dimen.Min(need, space.Width-minSpaceWidth)
		if shrink > 0 {
			space.Width -= shrink
			need -= shrink
		}
		if need <= 0 {
			base.LBearing = 0
			return i
		}
	}
	gs.InsertGlyph(i, text.Glyph{Kind: text.Pad, Pos: base.Pos, To: base.Pos, Width: need, RightPadding: true})
	base = &gs.Glyphs[i+1]
	base.LBearing = 0
	return i + 1
}

// InsertRightPadding inserts or extends a trailing Pad glyph when the
// glyph string's ink (SubRBearing) extends past its advance width
// (SubWidth), per spec §4.4 "Right-padding". The inserted pad's own
// rbearing is the overhang itself (extra_width) — the engine's historical
// C implementation mistakenly re-assigned pad->rbearing from an already
// consumed local, which this port intentionally does not reproduce (spec
// §9 Open Question, resolved here in favor of the documented field
// meaning rather than the bug).
func InsertRightPadding(gs *text.GlyphString, at int) {
	if gs.SubRBearing <= gs.SubWidth {
		return
	}
	extraWidth := gs.SubRBearing - gs.SubWidth
	if at > 0 && gs.Glyphs[at-1].Kind == text.Pad {
		gs.Glyphs[at-1].Width += extraWidth
		gs.Glyphs[at-1].RBearing = extraWidth
		return
	}
	pos := gs.Glyphs[at].Pos
	gs.InsertGlyph(at, text.Glyph{Kind: text.Pad, Pos: pos, To: pos, Width: extraWidth, RBearing: extraWidth, LeftPadding: true})
}
