/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package query

import (
	"github.com/npillmayer/tyse/compose"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/text"
)

// CoordinatesPosition hit-tests (x, y) against gs's chain of physical
// lines, clamping to gs.From when y lies above the first line and to the
// chain's final To when y lies below the last (spec §4.8
// "coordinates_position").
func CoordinatesPosition(gs *text.GlyphString, ctl compose.Control, x, y dimen.DU) text.CharPos {
	if gs == nil {
		return text.InvalidCharPos
	}
	var top dimen.DU
	line := gs
	for {
		height := line.LineAscent + line.LineDescent
		if y < top {
			return line.From
		}
		if y < top+height {
			return positionInLine(line, x, ctl.OrientationReversed)
		}
		if line.Next == nil {
			return line.To
		}
		top += height
		line = line.Next
	}
}

// positionInLine walks line's glyphs accumulating width until it would
// exceed x, returning the char position at that boundary. Right-to-left
// lines (orientation_reversed) walk from the visual right edge inward.
func positionInLine(line *text.GlyphString, x dimen.DU, reversed bool) text.CharPos {
	from, to := 1, len(line.Glyphs)-1
	if !reversed {
		var acc dimen.DU
		for i := from; i < to; i++ {
			g := &line.Glyphs[i]
			if acc+g.Width > x {
				return g.Pos
			}
			acc += g.Width
		}
		return line.To
	}
	var acc dimen.DU
	for i := to - 1; i >= from; i-- {
		g := &line.Glyphs[i]
		if acc+g.Width > line.Width-x {
			return g.Pos
		}
		acc += g.Width
	}
	return line.From
}
