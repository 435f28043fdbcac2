package layout

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/text"
)

func baseGlyph(width, ascent, descent dimen.DU) text.Glyph {
	return text.Glyph{
		Kind: text.Char, Char: 'A', Pos: 0, To: 1,
		Width: width, LBearing: 0, RBearing: 0,
		Ascent: ascent, Descent: descent,
	}
}

func markGlyph(char rune, code text.CombiningCode, width, ascent, descent dimen.DU) text.Glyph {
	return text.Glyph{
		Kind: text.Char, Char: char, Pos: 0, To: 1,
		Width: width, Ascent: ascent, Descent: descent,
		CombiningCode: code,
	}
}

func TestPlaceClusterAboveMarkExtendsAscent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.engine")
	defer teardown()
	//
	base := baseGlyph(600, 700, 100)
	mark := markGlyph('́', text.FromClass(230), 200, 150, 50)

	marks := []*text.Glyph{&mark}
	placeCluster(&base, marks, 1000)

	if base.Ascent <= 700 {
		t.Fatalf("expected base ascent to grow to cover the above-mark, got %v", base.Ascent)
	}
	if mark.Width != 0 {
		t.Fatalf("mark should not advance the cursor, got width %v", mark.Width)
	}
}

func TestPlaceClusterBelowMarkExtendsDescent(t *testing.T) {
	base := baseGlyph(600, 700, 100)
	mark := markGlyph('̣', text.FromClass(220), 200, 150, 50)

	marks := []*text.Glyph{&mark}
	placeCluster(&base, marks, 1000)

	if base.Descent <= 100 {
		t.Fatalf("expected base descent to grow to cover the below-mark, got %v", base.Descent)
	}
}

func TestPlaceClusterNoMarksIsNoop(t *testing.T) {
	base := baseGlyph(600, 700, 100)
	placeCluster(&base, nil, 1000)
	if base.Width != 600 || base.Ascent != 700 || base.Descent != 100 {
		t.Fatalf("expected no-op on an empty mark list, got %+v", base)
	}
}

func TestInsertLeftPaddingInsertsPad(t *testing.T) {
	gs := text.NewGlyphString(0, 1)
	base := baseGlyph(600, 700, 100)
	base.LBearing = -50
	gs.Glyphs = append(gs.Glyphs[:1], append([]text.Glyph{base}, gs.Glyphs[1:]...)...)

	newIdx := InsertLeftPadding(gs, 1)
	if gs.Glyphs[1].Kind != text.Pad || gs.Glyphs[1].Width != 50 {
		t.Fatalf("expected a 50-unit pad glyph at index 1, got %+v", gs.Glyphs[1])
	}
	if newIdx != 2 {
		t.Fatalf("expected base to move to index 2, got %d", newIdx)
	}
	if gs.Glyphs[2].LBearing != 0 {
		t.Fatalf("expected base lbearing to be neutralized after padding, got %v", gs.Glyphs[2].LBearing)
	}
}

func TestInsertLeftPaddingAbsorbsIntoPrecedingSpace(t *testing.T) {
	gs := text.NewGlyphString(0, 1)
	space := text.Glyph{Kind: text.Space, Char: ' ', Width: 20}
	base := baseGlyph(600, 700, 100)
	base.LBearing = -5
	gs.Glyphs = append(gs.Glyphs[:1], append([]text.Glyph{space, base}, gs.Glyphs[1:]...)...)

	InsertLeftPadding(gs, 2)
	if gs.Glyphs[1].Width != 15 {
		t.Fatalf("expected space to shrink by 5, got width %v", gs.Glyphs[1].Width)
	}
	if gs.Glyphs[2].Kind == text.Pad {
		t.Fatalf("no separate pad glyph should have been inserted when absorption covers the need")
	}
}

func TestApplySpaceTabNewlineWidths(t *testing.T) {
	gs := text.NewGlyphString(0, 3)
	gs.Glyphs = []text.Glyph{
		text.NewAnchor(0),
		{Kind: text.Space, Char: ' '},
		{Kind: text.Space, Char: '\t'},
		{Kind: text.Char, Char: '\n'},
		text.NewAnchor(3),
	}
	ApplySpaceTabNewlineWidths(gs, 1, 4, 10, 0)

	if gs.Glyphs[1].Width != 10 {
		t.Fatalf("space should get frame space width, got %v", gs.Glyphs[1].Width)
	}
	if gs.Glyphs[2].Width <= 0 {
		t.Fatalf("tab should get a positive width, got %v", gs.Glyphs[2].Width)
	}
	if gs.Glyphs[3].Width != 0 {
		t.Fatalf("newline with zero cursor_width should have zero width, got %v", gs.Glyphs[3].Width)
	}
}

func TestClampLineAscentDescent(t *testing.T) {
	gs := text.NewGlyphString(0, 1)
	gs.Ascent, gs.Descent = 50, 5
	gs.Control.MinLineAscent, gs.Control.MinLineDescent = 100, 20
	ClampLineAscentDescent(gs)
	if gs.LineAscent != 100 || gs.LineDescent != 20 {
		t.Fatalf("expected clamp up to the configured minimums, got ascent=%v descent=%v", gs.LineAscent, gs.LineDescent)
	}
}

func TestLayouterFullPass(t *testing.T) {
	gs := text.NewGlyphString(0, 2)
	a := baseGlyph(600, 700, 100)
	a.Pos, a.To = 0, 1
	b := baseGlyph(600, 700, 100)
	b.Pos, b.To = 1, 2
	gs.Glyphs = append(gs.Glyphs[:1], append([]text.Glyph{a, b}, gs.Glyphs[1:]...)...)

	l := Layouter{SpaceWidth: 8, Size: 1000}
	l.Layout(gs)

	if gs.Width != 1200 {
		t.Fatalf("expected total width 1200, got %v", gs.Width)
	}
	if gs.LineAscent == 0 {
		t.Fatalf("expected a finalized line ascent")
	}
}
