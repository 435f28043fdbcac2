package compose

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/lookup"
	"github.com/npillmayer/tyse/shape"
	"github.com/npillmayer/tyse/text"
)

// fakeFace is a minimal RealizedFace that maps every rune to itself as a
// glyph code and declares no Shaper, exercising the combining-class
// fallback path.
type fakeFace struct{ name string }

func (f fakeFace) BoxPointer() interface{}   { return nil }
func (f fakeFace) SpaceWidth() dimen.DU      { return 8 }
func (f fakeFace) Shaper() (shape.Shaper, bool) { return nil, false }
func (f fakeFace) EncodeChar(r rune) (int32, bool) { return int32(r), true }
func (f fakeFace) Ascent() dimen.DU  { return 100 }
func (f fakeFace) Descent() dimen.DU { return 20 }

var _ shape.RealizedFace = fakeFace{}

// fakeResolver realizes a single fixed face regardless of script/face
// hints, and fills width as a constant per character.
type fakeResolver struct{}

func (fakeResolver) Realize(faces []string, language, charset string, size dimen.DU) (shape.RealizedFace, error) {
	return fakeFace{name: "fixed"}, nil
}

func (r fakeResolver) ForChars(script, language, charset string, glyphs []text.Glyph, size dimen.DU) ([]text.Glyph, error) {
	face, _ := r.Realize(nil, language, charset, size)
	for i := range glyphs {
		code, _ := face.EncodeChar(glyphs[i].Char)
		glyphs[i].Face = face
		glyphs[i].Code = code
	}
	return glyphs, nil
}

func (fakeResolver) Metrics(gs *text.GlyphString, from, to int) error {
	for i := from; i < to; i++ {
		gs.Glyphs[i].Width = 10
	}
	return nil
}

func TestComposeASCIIRunIsSingleRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.engine")
	defer teardown()
	//
	store := text.NewMemoryStore("hello")
	gs, err := Compose(store, lookup.Default{}, fakeResolver{}, 0, 5, Control{})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// 2 anchors + 5 chars + 1 virtual trailing glyph (end of text)
	if gs.Len() != 8 {
		t.Fatalf("expected 8 glyphs, got %d: %v", gs.Len(), gs)
	}
	for i := 1; i <= 5; i++ {
		g := gs.At(i)
		if g.Kind != text.Char || g.Width != 10 {
			t.Fatalf("glyph %d not shaped: %+v", i, g)
		}
	}
}

func TestComposeControlCharExpandsToCaretNotation(t *testing.T) {
	store := text.NewMemoryStore("a\x07b")
	gs, err := Compose(store, lookup.Default{}, fakeResolver{}, 0, 3, Control{})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// anchor, 'a', '^', 'G', 'b', virtual-eot, anchor
	if gs.At(2).Char != '^' || gs.At(3).Char != 'G' {
		t.Fatalf("control char not expanded to caret notation: %v", gs)
	}
}

func TestComposeIgnoreFormattingCharBecomesZeroWidthSpace(t *testing.T) {
	store := text.NewMemoryStore("a‍b") // ZWJ is category Cf
	gs, err := Compose(store, lookup.Default{}, fakeResolver{}, 0, 3, Control{IgnoreFormattingChar: true})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	// anchor, 'a', ZWJ-as-space, 'b', virtual-eot, anchor: the Cf char still
	// occupies its source position instead of leaving a hole in coverage.
	if gs.At(1).Char != 'a' || gs.At(3).Char != 'b' {
		t.Fatalf("expected 'a' and 'b' to keep their positions around the formatting char: %v", gs)
	}
	found := false
	for i := 0; i < gs.Len(); i++ {
		if gs.At(i).Char == '‍' {
			found = true
			if gs.At(i).Kind != text.Space {
				t.Fatalf("formatting char should become a Space glyph, got Kind=%v", gs.At(i).Kind)
			}
			if gs.At(i).Width != 0 {
				t.Fatalf("formatting char should be zero-width, got Width=%v", gs.At(i).Width)
			}
		}
	}
	if !found {
		t.Fatalf("expected the formatting char to still appear as a zero-width Space glyph: %v", gs)
	}
}

func TestComposeTwoDimensionalStopsAtNewline(t *testing.T) {
	store := text.NewMemoryStore("ab\ncd")
	gs, err := Compose(store, lookup.Default{}, fakeResolver{}, 0, 5, Control{TwoDimensional: true})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if gs.To != 3 {
		t.Fatalf("expected composition to stop right after the newline at pos 3, got To=%d", gs.To)
	}
}

func TestComposeExplicitFaceUsesRealize(t *testing.T) {
	store := text.NewMemoryStore("hi")
	store.AttachProp(text.PropFace, 0, 2, []string{"Custom"}, 0)
	gs, err := Compose(store, lookup.Default{}, fakeResolver{}, 0, 2, Control{})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	f, ok := gs.At(1).Face.(fakeFace)
	if !ok || f.name != "fixed" {
		t.Fatalf("expected glyph face to come from Realize, got %+v", gs.At(1).Face)
	}
}
