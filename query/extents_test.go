package query

import (
	"testing"

	"github.com/npillmayer/tyse/text"
)

func oneLineGlyphString() *text.GlyphString {
	gs := text.NewGlyphString(0, 2)
	gs.Width, gs.LBearing, gs.RBearing = 100, -2, 3
	gs.Ascent, gs.Descent = 12, 4
	gs.LineAscent, gs.LineDescent = 14, 5
	return gs
}

func TestTextExtentsSingleLine(t *testing.T) {
	ext := TextExtents(oneLineGlyphString())
	if ext.Width != 100 {
		t.Fatalf("Width = %d, want 100", ext.Width)
	}
	if ext.Line.H != 19 {
		t.Fatalf("Line.H = %d, want 19", ext.Line.H)
	}
	if ext.Ink.W != 105 {
		t.Fatalf("Ink.W = %d, want 105", ext.Ink.W)
	}
}

func TestTextExtentsMultiLineStacksHeights(t *testing.T) {
	line1 := text.NewGlyphString(0, 5)
	line1.Width, line1.LineAscent, line1.LineDescent = 80, 10, 3
	line2 := text.NewGlyphString(5, 10)
	line2.Width, line2.LineAscent, line2.LineDescent = 120, 8, 2
	line1.Next = line2

	ext := TextExtents(line1)
	if ext.Width != 120 {
		t.Fatalf("Width = %d, want 120 (widest line)", ext.Width)
	}
	if ext.Line.H != 23 {
		t.Fatalf("Line.H = %d, want 23 (13+10 stacked)", ext.Line.H)
	}
}

func twoCharGlyphString() *text.GlyphString {
	gs := text.NewGlyphString(0, 2)
	gs.LineAscent, gs.LineDescent = 10, 3
	g1 := text.Glyph{Kind: text.Char, Pos: 0, To: 1, Width: 10}
	g2 := text.Glyph{Kind: text.Char, Pos: 1, To: 2, Width: 15}
	gs.Glyphs = []text.Glyph{text.NewAnchor(0), g1, g2, text.NewAnchor(2)}
	return gs
}

func TestPerCharExtentsIndexesBySourceChar(t *testing.T) {
	out := PerCharExtents(twoCharGlyphString())
	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0].Pos != 0 || out[1].Pos != 1 {
		t.Fatalf("unexpected positions: %v, %v", out[0].Pos, out[1].Pos)
	}
	if out[1].Logical.X != 10 {
		t.Fatalf("out[1].Logical.X = %d, want 10 (after first glyph's width)", out[1].Logical.X)
	}
}
