/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package query

import (
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/text"
)

// Extents bundles the three boxes text_extents fills (spec §4.8).
type Extents struct {
	Width   dimen.DU
	Ink     Box
	Logical Box
	Line    Box
}

// TextExtents returns the widest physical line's width and the union of
// every physical line's ink/logical/line boxes, stacked top to bottom at
// each line's own ascent/descent (spec §4.8 "text_extents").
func TextExtents(gs *text.GlyphString) Extents {
	var ext Extents
	var y dimen.DU
	for line := gs; line != nil; line = line.Next {
		if line.Width > ext.Width {
			ext.Width = line.Width
		}
		ink := Box{X: line.LBearing, Y: y - line.Ascent, W: line.Width - line.LBearing + line.RBearing, H: line.Ascent + line.Descent}
		logical := Box{X: 0, Y: y - line.LineAscent, W: line.Width, H: line.LineAscent + line.LineDescent}
		ext.Ink = ext.Ink.Union(ink)
		ext.Logical = ext.Logical.Union(logical)
		y += line.LineAscent + line.LineDescent
	}
	ext.Line = Box{X: 0, Y: 0, W: ext.Width, H: y}
	return ext
}

// CharExtents is one character position's ink and logical box, per
// per_char_extents (spec §4.8).
type CharExtents struct {
	Pos     text.CharPos
	Ink     Box
	Logical Box
}

// PerCharExtents fills one CharExtents per source character in gs's
// first physical line only, indexed relative to gs.From (spec §4.8:
// "only the first physical line is measured when two_dimensional").
func PerCharExtents(gs *text.GlyphString) []CharExtents {
	out := make([]CharExtents, 0, int(gs.To-gs.From))
	var x dimen.DU
	i := 1
	for i < len(gs.Glyphs)-1 {
		g := &gs.Glyphs[i]
		j := i + 1
		for j < len(gs.Glyphs)-1 && gs.Glyphs[j].IsMark() {
			j++
		}
		width, lbearing, rbearing, ascent, descent := clusterMetrics(gs, i, j)
		out = append(out, CharExtents{
			Pos:     g.Pos,
			Ink:     Box{X: x + lbearing, Y: -ascent, W: width - lbearing + rbearing, H: ascent + descent},
			Logical: Box{X: x, Y: -gs.LineAscent, W: width, H: gs.LineAscent + gs.LineDescent},
		})
		x += width
		i = j
	}
	return out
}

func clusterMetrics(gs *text.GlyphString, from, to int) (width, lbearing, rbearing, ascent, descent dimen.DU) {
	for i := from; i < to; i++ {
		g := &gs.Glyphs[i]
		width += g.Width
		if g.LBearing < lbearing {
			lbearing = g.LBearing
		}
		if g.RBearing > rbearing {
			rbearing = g.RBearing
		}
		if g.Ascent > ascent {
			ascent = g.Ascent
		}
		if g.Descent > descent {
			descent = g.Descent
		}
	}
	return
}
