/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/text"
)

// SoftWindow is the Window SoftDriver expects: a plain *image.RGBA
// canvas rather than a device surface.
type SoftWindow struct {
	Img *image.RGBA
}

// SoftFace is a reference text.Face wrapping an x/image font.Face, used
// by SoftDriver and by tests that want something renderable without a
// real font backend or windowing system.
type SoftFace struct {
	Font       font.Face
	Color      color.Color
	Background color.Color
	Space      dimen.DU
	Box        interface{}
	Reversed   bool
	HasLine    bool
	HasStrike  bool
}

func (f *SoftFace) BoxPointer() interface{} { return f.Box }
func (f *SoftFace) SpaceWidth() dimen.DU    { return f.Space }
func (f *SoftFace) ReverseVideo() bool      { return f.Reversed }
func (f *SoftFace) Underline() bool         { return f.HasLine }
func (f *SoftFace) Strikethrough() bool     { return f.HasStrike }

// FontDriver satisfies FontDriverProvider, handing back a driver bound
// to this face's font and color.
func (f *SoftFace) FontDriver() FontDriver {
	return &softFontDriver{font: f.Font, color: f.Color}
}

var _ FontDriverProvider = (*SoftFace)(nil)
var _ ReverseVideo = (*SoftFace)(nil)
var _ Underlined = (*SoftFace)(nil)
var _ StruckThrough = (*SoftFace)(nil)

type softFontDriver struct {
	font  font.Face
	color color.Color
}

// Render draws gs.Glyphs[from:to)'s runes at (x, y) using font.Drawer,
// the same pairing of golang.org/x/image/font with an image.RGBA
// destination the reference pack's text-rendering helper uses (see
// other_examples' draw.go: font.Drawer{Dst, Src, Face, Dot}).
func (d *softFontDriver) Render(win Window, x, y dimen.DU, gs *text.GlyphString, from, to int, reverse bool, region Region) error {
	sw, ok := win.(*SoftWindow)
	if !ok || sw.Img == nil {
		return nil
	}
	var b strings.Builder
	for i := from; i < to; i++ {
		if gs.Glyphs[i].Kind == text.Char {
			b.WriteRune(gs.Glyphs[i].Char)
		}
	}
	col := d.color
	if col == nil {
		col = color.Black
	}
	if reverse {
		col = invert(col)
	}
	drawer := &font.Drawer{
		Dst:  sw.Img,
		Src:  image.NewUniform(col),
		Face: d.font,
		Dot:  fixed.Point26_6{X: fixed.I(int(x)), Y: fixed.I(int(y))},
	}
	drawer.DrawString(b.String())
	return nil
}

// SoftDriver is a reference FrameDriver painting into a *SoftWindow's
// image.RGBA via image/draw, so Renderer is exercisable in tests and
// demos without a real windowing backend (spec §4.7 expansion).
type SoftDriver struct{}

func (SoftDriver) FillSpace(win Window, face text.Face, isCursor bool, x, y, w, h dimen.DU, clip Rect) error {
	sw, ok := win.(*SoftWindow)
	if !ok || sw.Img == nil {
		return nil
	}
	col := color.Color(color.White)
	if isCursor {
		col = color.Black
	} else if sf, ok := face.(*SoftFace); ok && sf.Background != nil {
		col = sf.Background
	}
	draw.Draw(sw.Img, clippedRect(x, y, w, h, clip, sw.Img.Bounds()), image.NewUniform(col), image.Point{}, draw.Src)
	return nil
}

func (SoftDriver) DrawEmptyBoxes(win Window, x, y dimen.DU, gs *text.GlyphString, from, to int, reverse bool, clip Rect) error {
	sw, ok := win.(*SoftWindow)
	if !ok || sw.Img == nil {
		return nil
	}
	gx := x
	for i := from; i < to; i++ {
		w := gs.Glyphs[i].Width
		drawOutline(sw.Img, gx, y-gs.Glyphs[i].Ascent, w, gs.Glyphs[i].Ascent+gs.Glyphs[i].Descent, clip)
		gx += w
	}
	return nil
}

func (SoftDriver) DrawBox(win Window, gs *text.GlyphString, g *text.Glyph, x, y, width dimen.DU, clip Rect) error {
	sw, ok := win.(*SoftWindow)
	if !ok || sw.Img == nil {
		return nil
	}
	drawOutline(sw.Img, x, y, width, g.Ascent+g.Descent, clip)
	return nil
}

func (SoftDriver) DrawHLine(win Window, gs *text.GlyphString, face text.Face, reverse bool, x, y, width dimen.DU, clip Rect) error {
	sw, ok := win.(*SoftWindow)
	if !ok || sw.Img == nil {
		return nil
	}
	col := color.Color(color.Black)
	if reverse {
		col = color.White
	}
	draw.Draw(sw.Img, clippedRect(x, y, width, 1, clip, sw.Img.Bounds()), image.NewUniform(col), image.Point{}, draw.Src)
	return nil
}

func (SoftDriver) RegionFromRect(r Rect) Region          { return r }
func (SoftDriver) RegionAddRect(reg Region, r Rect) Region { return reg.(Rect).Union(r) }
func (SoftDriver) FreeRegion(reg Region)                  {}
func (SoftDriver) RegionToRect(reg Region) Rect           { return reg.(Rect) }

func (SoftDriver) IntersectRegion(a, b Region) Region {
	ra, rb := a.(Rect), b.(Rect)
	x0, y0 := max(ra.X, rb.X), max(ra.Y, rb.Y)
	x1, y1 := min(ra.X+ra.W, rb.X+rb.W), min(ra.Y+ra.H, rb.Y+rb.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

var _ FrameDriver = SoftDriver{}

func invert(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA64{R: 0xffff - uint16(r), G: 0xffff - uint16(g), B: 0xffff - uint16(b), A: uint16(a)}
}

func clippedRect(x, y, w, h dimen.DU, clip Rect, bounds image.Rectangle) image.Rectangle {
	r := image.Rect(int(x), int(y), int(x+w), int(y+h))
	if !clip.Empty() {
		r = r.Intersect(image.Rect(int(clip.X), int(clip.Y), int(clip.X+clip.W), int(clip.Y+clip.H)))
	}
	return r.Intersect(bounds)
}

func drawOutline(img *image.RGBA, x, y, w, h dimen.DU, clip Rect) {
	thickness := dimen.DU(1)
	draw.Draw(img, clippedRect(x, y, w, thickness, clip, img.Bounds()), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(img, clippedRect(x, y+h-thickness, w, thickness, clip, img.Bounds()), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(img, clippedRect(x, y, thickness, h, clip, img.Bounds()), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(img, clippedRect(x+w-thickness, y, thickness, h, clip, img.Bounds()), image.NewUniform(color.Black), image.Point{}, draw.Src)
}
