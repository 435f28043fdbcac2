/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package render

import (
	"github.com/npillmayer/tyse/core/apperr"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/text"
)

// Renderer drives the two-pass physical-line draw described in spec
// §4.7: a background/cursor pass, then a foreground pass with overlays.
type Renderer struct {
	Frame FrameDriver
}

// RenderLine draws gs.Glyphs[from:to) with its baseline at (x, y) into
// win. ctl carries the rendering-relevant options (as_image, cursor,
// partial_update); everything else about gs (bidi order, line box) is
// assumed already finalized by compose+layout.
func (r Renderer) RenderLine(win Window, gs *text.GlyphString, from, to int, x, y dimen.DU, ctl Control) error {
	if r.Frame == nil {
		return apperr.Resource("RenderLine: no FrameDriver configured")
	}
	clip := ctl.Clip
	if ctl.PartialUpdate {
		clip = expandForInk(gs, from, to, clip)
	}

	if err := r.backgroundPass(win, gs, from, to, x, y, ctl, clip); err != nil {
		return err
	}
	if err := r.foregroundPass(win, gs, from, to, x, y, ctl, clip); err != nil {
		return err
	}
	return nil
}

// backgroundPass implements spec §4.7 step 1.
func (r Renderer) backgroundPass(win Window, gs *text.GlyphString, from, to int, x, y dimen.DU, ctl Control, clip Rect) error {
	gx := x
	for _, grp := range groupsByFace(gs, from, to) {
		width, ascent, descent := groupMetrics(gs, grp.from, grp.to)

		if ctl.AsImage || isReverseVideo(grp.face) {
			if err := r.Frame.FillSpace(win, grp.face, false, gx, y-ascent, width, ascent+descent, clip); err != nil {
				return err
			}
		}

		if ctl.WithCursor && ctl.CursorPos >= grp.from && ctl.CursorPos < grp.to {
			if err := r.drawCursor(win, gs, grp, gx, y, ascent, descent, ctl, clip); err != nil {
				return err
			}
		}

		gx += width
	}
	return nil
}

func (r Renderer) drawCursor(win Window, gs *text.GlyphString, grp faceGroup, gx, y, ascent, descent dimen.DU, ctl Control, clip Rect) error {
	clusterWidth := gs.Glyphs[ctl.CursorPos].Width
	cw := ctl.CursorWidth
	if ctl.CursorBidi {
		cw = 1
	} else if cw <= 0 || cw > clusterWidth {
		cw = clusterWidth
		if cw <= 0 {
			cw = 1
		}
	}
	cursorX := gx
	for i := grp.from; i < ctl.CursorPos; i++ {
		cursorX += gs.Glyphs[i].Width
	}
	if err := r.Frame.FillSpace(win, grp.face, true, cursorX, y-ascent, cw, ascent+descent, clip); err != nil {
		return err
	}
	if ctl.CursorBidi {
		if err := r.drawBidiTick(win, gs, grp, cursorX, y, ascent, descent, ctl, clip); err != nil {
			return err
		}
	}
	return nil
}

// drawBidiTick draws the short direction tick at top/bottom of the
// cursor (spec §4.7 step 1: "length ≤ 4, height 2"), and an additional
// tick at the logical-previous glyph's position when its bidi level
// straddles the cursor — i.e. differs from the glyph at the cursor.
func (r Renderer) drawBidiTick(win Window, gs *text.GlyphString, grp faceGroup, cursorX, y, ascent, descent dimen.DU, ctl Control, clip Rect) error {
	const tickLen dimen.DU = 4
	top := y - ascent
	if err := r.Frame.DrawHLine(win, gs, grp.face, ctl.Reverse, cursorX, top, tickLen, clip); err != nil {
		return err
	}
	bottom := y + descent - 2
	if err := r.Frame.DrawHLine(win, gs, grp.face, ctl.Reverse, cursorX, bottom, tickLen, clip); err != nil {
		return err
	}
	if ctl.CursorPos > grp.from {
		prev := &gs.Glyphs[ctl.CursorPos-1]
		cur := &gs.Glyphs[ctl.CursorPos]
		if prev.BidiLevel != cur.BidiLevel {
			prevX := cursorX - prev.Width
			if err := r.Frame.DrawHLine(win, gs, grp.face, ctl.Reverse, prevX, top, tickLen, clip); err != nil {
				return err
			}
		}
	}
	return nil
}

// foregroundPass implements spec §4.7 step 2.
func (r Renderer) foregroundPass(win Window, gs *text.GlyphString, from, to int, x, y dimen.DU, ctl Control, clip Rect) error {
	gx := x
	for _, grp := range groupsByDispatch(gs, from, to) {
		width, ascent, descent := groupMetrics(gs, grp.from, grp.to)
		g0 := &gs.Glyphs[grp.from]

		switch {
		case g0.Kind == text.Box:
			if err := r.Frame.DrawBox(win, gs, g0, gx, y, width, clip); err != nil {
				return err
			}
		case g0.Kind == text.Char && g0.Code != text.InvalidCode:
			if err := r.renderChars(win, gs, grp, gx, y, ctl, clip); err != nil {
				return err
			}
		default:
			if err := r.Frame.DrawEmptyBoxes(win, gx, y, gs, grp.from, grp.to, ctl.Reverse, clip); err != nil {
				return err
			}
		}

		if !ctl.Reverse {
			if err := r.drawOverlays(win, gs, grp, gx, y, ascent, descent, ctl, clip); err != nil {
				return err
			}
		}
		gx += width
	}
	return nil
}

func (r Renderer) renderChars(win Window, gs *text.GlyphString, grp faceGroup, gx, y dimen.DU, ctl Control, clip Rect) error {
	provider, ok := grp.face.(FontDriverProvider)
	if !ok {
		return r.Frame.DrawEmptyBoxes(win, gx, y, gs, grp.from, grp.to, ctl.Reverse, clip)
	}
	driver := provider.FontDriver()
	region := r.Frame.RegionFromRect(clip)
	defer r.Frame.FreeRegion(region)
	return driver.Render(win, gx, y, gs, grp.from, grp.to, ctl.Reverse, region)
}

func (r Renderer) drawOverlays(win Window, gs *text.GlyphString, grp faceGroup, gx, y, ascent, descent dimen.DU, ctl Control, clip Rect) error {
	width, _, _ := groupMetrics(gs, grp.from, grp.to)
	if u, ok := grp.face.(Underlined); ok && u.Underline() {
		if err := r.Frame.DrawHLine(win, gs, grp.face, ctl.Reverse, gx, y+2, width, clip); err != nil {
			return err
		}
	}
	if s, ok := grp.face.(StruckThrough); ok && s.Strikethrough() {
		mid := y - ascent/2
		if err := r.Frame.DrawHLine(win, gs, grp.face, ctl.Reverse, gx, mid, width, clip); err != nil {
			return err
		}
	}
	if grp.face != nil && grp.face.BoxPointer() != nil {
		g0 := &gs.Glyphs[grp.from]
		if err := r.Frame.DrawBox(win, gs, g0, gx, y-ascent, width, clip); err != nil {
			return err
		}
		if err := r.Frame.DrawBox(win, gs, g0, gx, y+descent, width, clip); err != nil {
			return err
		}
	}
	return nil
}

func isReverseVideo(face text.Face) bool {
	rv, ok := face.(ReverseVideo)
	return ok && rv.ReverseVideo()
}

func groupMetrics(gs *text.GlyphString, from, to int) (width, ascent, descent dimen.DU) {
	for i := from; i < to; i++ {
		g := &gs.Glyphs[i]
		width += g.Width
		if g.Ascent > ascent {
			ascent = g.Ascent
		}
		if g.Descent > descent {
			descent = g.Descent
		}
	}
	return
}

// expandForInk implements spec §4.7's partial_update rule: expand clip
// to cover neighboring glyphs whose ink (via lbearing/rbearing) extends
// into the requested range, on both sides.
func expandForInk(gs *text.GlyphString, from, to int, clip Rect) Rect {
	expanded := clip
	if from > 1 {
		prev := &gs.Glyphs[from-1]
		if prev.RBearing > prev.Width {
			overhang := prev.RBearing - prev.Width
			expanded.X -= overhang
			expanded.W += overhang
		}
	}
	if to < len(gs.Glyphs)-1 {
		next := &gs.Glyphs[to]
		if next.LBearing < 0 {
			expanded.W += -next.LBearing
		}
	}
	return expanded
}
