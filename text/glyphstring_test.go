package text

import "testing"

func TestNewGlyphStringHasAnchors(t *testing.T) {
	gs := NewGlyphString(0, 0)
	if gs.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (two anchors)", gs.Len())
	}
	if !gs.First().IsAnchor() || !gs.Last().IsAnchor() {
		t.Fatalf("first and last glyph must be anchors")
	}
}

func TestInsertGlyphShiftsIndices(t *testing.T) {
	gs := NewGlyphString(0, 3)
	gs.InsertGlyph(1, Glyph{Kind: Char, Char: 'a', Pos: 0, To: 1})
	gs.InsertGlyph(2, Glyph{Kind: Char, Char: 'b', Pos: 1, To: 2})
	if gs.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", gs.Len())
	}
	if gs.At(1).Char != 'a' || gs.At(2).Char != 'b' {
		t.Fatalf("unexpected glyph order after insert: %q %q", gs.At(1).Char, gs.At(2).Char)
	}
	if !gs.Last().IsAnchor() {
		t.Fatalf("trailing anchor must remain last after insertion")
	}
}

func TestClampLineBox(t *testing.T) {
	if got := ClampLineBox(5, 10, 0); got != 10 {
		t.Fatalf("below min: got %v, want 10", got)
	}
	if got := ClampLineBox(20, 10, 15); got != 15 {
		t.Fatalf("above max: got %v, want 15", got)
	}
	if got := ClampLineBox(12, 10, 5); got != 12 {
		t.Fatalf("max<=min should be ignored: got %v, want 12", got)
	}
}
