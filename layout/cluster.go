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

// placeCluster positions every mark in marks around base, finalizing
// base's ascent, descent, lbearing and rbearing to cover the whole
// cluster (spec §4.4's per-cluster placement). boxLeft/boxRight track the
// cluster's horizontal extent relative to base's own advance edge: they
// start at -base.Width/0 (base's box before any mark is placed) and grow
// outward as marks are added, mirroring the original's "left"/"right"
// bookkeeping.
//
// A mark never advances the cursor (its Width is zeroed here, per spec:
// "mark glyphs get width = 0").
func placeCluster(base *text.Glyph, marks []*text.Glyph, size dimen.DU) {
	if len(marks) == 0 {
		return
	}
	boxLeft := -base.Width
	boxRight := dimen.DU(0)
	top := -base.Ascent
	bottom := base.Descent
	lbearing := base.LBearing
	if lbearing > 0 {
		lbearing = 0
	}
	rbearing := base.RBearing

	for _, m := range marks {
		baseY, baseX, addY, addX, offY, offX := text.Unpack(m.CombiningCode)
		boxWidth := boxRight - boxLeft
		boxHeight := bottom - top
		offXScaled := dimen.UnbiasOffset(offX, size)
		offYScaled := dimen.UnbiasOffset(offY, size)

		m.XOff = boxLeft + (boxWidth*dimen.DU(baseX)-m.Width*dimen.DU(addX))/2 + offXScaled
		if m.XOff < boxLeft {
			boxLeft = m.XOff
		}
		if right := m.XOff + m.Width; right > boxRight {
			boxRight = right
		}
		if m.XOff+m.LBearing < boxLeft+lbearing {
			lbearing = m.XOff + m.LBearing - boxLeft
		}
		if m.XOff+m.RBearing > boxLeft+rbearing {
			rbearing = m.XOff + m.RBearing - boxLeft
		}

		if baseY < text.Baseline {
			m.YOff = top + (boxHeight*dimen.DU(baseY))/2
		} else {
			m.YOff = 0
		}
		if addY < text.Baseline {
			m.YOff -= (m.Ascent+m.Descent)*dimen.DU(addY)/2 - m.Ascent
		}
		m.YOff -= offYScaled

		if edge := m.YOff - m.Ascent; edge < top {
			top = edge
		}
		if edge := m.YOff + m.Descent; edge > bottom {
			bottom = edge
		}

		m.Width = 0
	}

	base.Ascent = -top
	base.Descent = bottom
	base.LBearing = lbearing
	base.RBearing = rbearing

	if boxLeft < -base.Width {
		shift := -base.Width - boxLeft
		T().Debugf("cluster overflows left by %d, shifting base", shift)
		base.XOff += shift
		base.Width += shift
		base.RBearing += shift
		base.LBearing += shift
	}
	if boxRight > 0 {
		T().Debugf("cluster overflows right by %d, widening base", boxRight)
		base.Width += boxRight
		base.RBearing += boxRight
		base.RightPadding = true
		for _, m := range marks {
			m.XOff -= boxRight
		}
	}
}

// clusters splits gs.Glyphs[from:to) into (base, marks) groups. A glyph
// with no following marks is still reported as a one-element cluster
// (marks == nil) so callers can uniformly iterate.
func clusters(gs *text.GlyphString, from, to int) [][2]int {
	var out [][2]int
	i := from
	for i < to {
		if gs.Glyphs[i].IsMark() {
			i++
			continue
		}
		start := i
		i++
		for i < to && gs.Glyphs[i].IsMark() {
			i++
		}
		out = append(out, [2]int{start, i})
	}
	return out
}

// PlaceMarks runs placeCluster over every cluster in gs.Glyphs[from:to).
func PlaceMarks(gs *text.GlyphString, from, to int, size dimen.DU) {
	for _, span := range clusters(gs, from, to) {
		base := &gs.Glyphs[span[0]]
		if span[1]-span[0] < 2 {
			continue
		}
		marks := make([]*text.Glyph, 0, span[1]-span[0]-1)
		for i := span[0] + 1; i < span[1]; i++ {
			marks = append(marks, &gs.Glyphs[i])
		}
		placeCluster(base, marks, size)
	}
}
