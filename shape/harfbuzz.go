/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package shape

import (
	hb "github.com/benoitkugler/textlayout/harfbuzz"
	hblang "github.com/benoitkugler/textlayout/language"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/text"
)

// HBFontProvider is implemented by a RealizedFace that can hand out a
// ready-to-shape HarfBuzz font. Faces that cannot (bitmap fonts, test
// doubles) simply don't implement it; HarfbuzzShaper.Run then leaves the
// run untouched and the composer keeps its glyphs as produced by face
// resolution alone.
type HBFontProvider interface {
	HBFont() *hb.Font
}

// ScriptLanguage is implemented by a RealizedFace (or carried alongside
// it) to report the HarfBuzz script/language tags for a run.
type ScriptLanguage struct {
	Script   hblang.Script
	Language hblang.Language
}

// HarfbuzzShaper is the font-layout-table Shaper (spec §4.3 step 6),
// delegating to github.com/benoitkugler/textlayout/harfbuzz — a pure-Go
// HarfBuzz port already used by the reference pack's
// engine/glyphing/harfbuzz package for exactly this purpose.
type HarfbuzzShaper struct {
	SegProps ScriptLanguage
	RTL      bool
}

func (s HarfbuzzShaper) Run(gs *text.GlyphString, from, to int, face RealizedFace) (int, error) {
	provider, ok := face.(HBFontProvider)
	if !ok {
		return to, nil
	}
	font := provider.HBFont()
	if font == nil {
		return to, nil
	}

	runes := make([]rune, 0, to-from)
	for i := from; i < to; i++ {
		runes = append(runes, gs.Glyphs[i].Char)
	}

	buf := hb.NewBuffer()
	buf.Props.Script = s.SegProps.Script
	buf.Props.Language = s.SegProps.Language
	buf.Props.Direction = hb.LeftToRight
	if s.RTL {
		buf.Props.Direction = hb.RightToLeft
	}
	buf.AddRunes(runes, 0, len(runes))
	buf.Shape(font, nil)

	base := gs.Glyphs[from]
	shaped := make([]text.Glyph, 0, len(buf.Info))
	for i, info := range buf.Info {
		pos := buf.Pos[i]
		g := base
		clusterOffset := text.CharPos(info.Cluster)
		g.Pos = base.Pos + clusterOffset
		g.To = g.Pos + 1
		g.Code = int32(info.Glyph)
		g.Char = runes[info.Cluster]
		g.Width = dimen.DU(pos.XAdvance)
		g.XOff = dimen.DU(pos.XOffset)
		g.YOff = dimen.DU(pos.YOffset)
		g.OTFEncoded = true
		g.Kind = text.Char
		shaped = append(shaped, g)
	}
	if len(shaped) == 0 {
		return to, nil
	}

	tail := append([]text.Glyph{}, gs.Glyphs[to:]...)
	gs.Glyphs = append(gs.Glyphs[:from], shaped...)
	newEnd := len(gs.Glyphs)
	gs.Glyphs = append(gs.Glyphs, tail...)
	return newEnd, nil
}

var _ Shaper = HarfbuzzShaper{}
