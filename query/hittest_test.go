package query

import (
	"testing"

	"github.com/npillmayer/tyse/compose"
	"github.com/npillmayer/tyse/text"
)

func hitTestLine() *text.GlyphString {
	gs := text.NewGlyphString(0, 2)
	gs.LineAscent, gs.LineDescent = 10, 3
	gs.Width = 25
	g1 := text.Glyph{Kind: text.Char, Pos: 0, To: 1, Width: 10}
	g2 := text.Glyph{Kind: text.Char, Pos: 1, To: 2, Width: 15}
	gs.Glyphs = []text.Glyph{text.NewAnchor(0), g1, g2, text.NewAnchor(2)}
	return gs
}

func TestCoordinatesPositionClampsAboveLine(t *testing.T) {
	gs := hitTestLine()
	if got := CoordinatesPosition(gs, compose.Control{}, 5, -5); got != gs.From {
		t.Fatalf("got %d, want clamp to From=%d", got, gs.From)
	}
}

func TestCoordinatesPositionWithinLine(t *testing.T) {
	gs := hitTestLine()
	if got := CoordinatesPosition(gs, compose.Control{}, 12, 5); got != 1 {
		t.Fatalf("got %d, want 1 (second glyph's Pos)", got)
	}
}

func TestCoordinatesPositionBeyondEndClampsToTo(t *testing.T) {
	gs := hitTestLine()
	if got := CoordinatesPosition(gs, compose.Control{}, 50, 5); got != gs.To {
		t.Fatalf("got %d, want clamp to To=%d", got, gs.To)
	}
}

func TestCoordinatesPositionReversedWalksRightToLeft(t *testing.T) {
	gs := hitTestLine()
	ctl := compose.Control{OrientationReversed: true}
	if got := CoordinatesPosition(gs, ctl, 22, 5); got != 1 {
		t.Fatalf("got %d, want 1 near the visual right edge", got)
	}
	if got := CoordinatesPosition(gs, ctl, 2, 5); got != 0 {
		t.Fatalf("got %d, want 0 near the visual left edge", got)
	}
}
