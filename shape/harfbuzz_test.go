/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package shape

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/font"
	"github.com/npillmayer/tyse/text"
)

func TestHarfbuzzShaperRunShapesAgainstBundledFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.shape")
	defer teardown()
	//
	reg := font.NewRegistry()
	tc, err := reg.TypeCase("fallback", 12)
	if err != nil {
		t.Fatalf("TypeCase: %v", err)
	}
	face := &typeCaseFace{tc: tc}
	if _, ok := face.Shaper(); !ok {
		t.Fatalf("expected the bundled fallback font to report a HarfBuzz shaper")
	}

	gs := text.NewGlyphString(0, 2)
	gs.Glyphs = gs.Glyphs[:1]
	gs.Glyphs = append(gs.Glyphs,
		text.Glyph{Kind: text.Char, Char: 'h', Pos: 0, To: 1, Face: face},
		text.Glyph{Kind: text.Char, Char: 'i', Pos: 1, To: 2, Face: face},
	)
	gs.Glyphs = append(gs.Glyphs, text.NewAnchor(2))

	shaper := HarfbuzzShaper{}
	newEnd, err := shaper.Run(gs, 1, 3, face)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if newEnd <= 1 {
		t.Fatalf("expected at least one shaped glyph, newEnd=%d", newEnd)
	}
	for i := 1; i < newEnd; i++ {
		g := gs.Glyphs[i]
		if !g.OTFEncoded {
			t.Fatalf("glyph %d should be marked OTFEncoded after HarfBuzz shaping", i)
		}
		if g.Width <= 0 {
			t.Fatalf("glyph %d should have a positive advance width, got %v", i, g.Width)
		}
	}
}

func TestHarfbuzzShaperRunLeavesGlyphsUntouchedWithoutHBFont(t *testing.T) {
	face := &typeCaseFace{tc: font.NullTypeCase()}
	gs := text.NewGlyphString(0, 1)
	gs.Glyphs = gs.Glyphs[:1]
	gs.Glyphs = append(gs.Glyphs, text.Glyph{Kind: text.Char, Char: 'x', Pos: 0, To: 1, Face: face})
	gs.Glyphs = append(gs.Glyphs, text.NewAnchor(1))

	shaper := HarfbuzzShaper{}
	newEnd, err := shaper.Run(gs, 1, 2, face)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if newEnd != 2 {
		t.Fatalf("expected Run to leave the range untouched when no HBFont is available, got newEnd=%d", newEnd)
	}
}
