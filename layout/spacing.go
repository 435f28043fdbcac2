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

const defaultTabWidth = 8

// defaultCursorTickWidth is the width given a newline's virtual cursor
// glyph when control.CursorBidi is set (spec §4.4: "width 3 when
// cursor_bidi").
const defaultCursorTickWidth dimen.DU = 3

// ApplySpaceTabNewlineWidths assigns widths to Space and the trailing
// virtual-newline glyph in gs.Glyphs[from:to) (spec §4.4 "Space/tab/
// newline"). indent is the line's starting x position, used to align tab
// stops across the line rather than per-run.
func ApplySpaceTabNewlineWidths(gs *text.GlyphString, from, to int, spaceWidth dimen.DU, indent dimen.DU) {
	tabWidth := gs.Control.TabWidth
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	tabStop := spaceWidth * dimen.DU(tabWidth)
	accumulated := indent
	for i := from; i < to; i++ {
		g := &gs.Glyphs[i]
		switch {
		case g.Kind == text.Space && g.Char == '\t':
			if tabStop > 0 {
				g.Width = tabStop - dimen.DU(int64(accumulated)%int64(tabStop))
			}
		case g.Kind == text.Space && g.Category == "Cf":
			g.Width = 0
		case g.Kind == text.Space:
			g.Width = spaceWidth
		case g.Kind == text.Char && g.Char == '\n':
			g.Width = newlineCursorWidth(gs.Control, spaceWidth)
		}
		accumulated += g.Width
	}
}

func newlineCursorWidth(ctl text.Control, spaceWidth dimen.DU) dimen.DU {
	if ctl.CursorBidi {
		return defaultCursorTickWidth
	}
	if ctl.CursorWidth < 0 {
		return spaceWidth
	}
	return ctl.CursorWidth
}

// FixUpRTLTabs re-walks gs.Glyphs[from:to) right to left, recomputing tab
// widths against the RTL-accumulated width, per spec §4.4's "RTL tab
// fix-up": tab stops are logically anchored to the line's visual start,
// which for a reversed line is its right edge, not its left.
func FixUpRTLTabs(gs *text.GlyphString, from, to int, spaceWidth dimen.DU, indent dimen.DU) {
	if !gs.Control.OrientationReversed {
		return
	}
	hasTab := false
	for i := from; i < to; i++ {
		if gs.Glyphs[i].Kind == text.Space && gs.Glyphs[i].Char == '\t' {
			hasTab = true
			break
		}
	}
	if !hasTab {
		return
	}
	tabWidth := gs.Control.TabWidth
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	tabStop := spaceWidth * dimen.DU(tabWidth)
	accumulated := indent
	for i := to - 1; i >= from; i-- {
		g := &gs.Glyphs[i]
		if g.Kind == text.Space && g.Char == '\t' && tabStop > 0 {
			g.Width = tabStop - dimen.DU(int64(accumulated)%int64(tabStop))
		}
		accumulated += g.Width
	}
}

// ClampLineAscentDescent finalizes gs.LineAscent/LineDescent from its
// summed Ascent/Descent, clamped to the control's configured bounds
// (spec §4.4 "Line ascent/descent clamping").
func ClampLineAscentDescent(gs *text.GlyphString) {
	gs.LineAscent = text.ClampLineBox(gs.Ascent, gs.Control.MinLineAscent, gs.Control.MaxLineAscent)
	gs.LineDescent = text.ClampLineBox(gs.Descent, gs.Control.MinLineDescent, gs.Control.MaxLineDescent)
}
