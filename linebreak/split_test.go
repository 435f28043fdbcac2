package linebreak

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/compose"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/layout"
	"github.com/npillmayer/tyse/lookup"
	"github.com/npillmayer/tyse/shape"
	"github.com/npillmayer/tyse/text"
)

type constWidthFace struct{}

func (constWidthFace) BoxPointer() interface{}        { return nil }
func (constWidthFace) SpaceWidth() dimen.DU           { return 10 }
func (constWidthFace) Shaper() (shape.Shaper, bool)   { return nil, false }
func (constWidthFace) EncodeChar(r rune) (int32, bool) { return int32(r), true }
func (constWidthFace) Ascent() dimen.DU               { return 100 }
func (constWidthFace) Descent() dimen.DU              { return 20 }

type constWidthResolver struct{}

func (constWidthResolver) Realize(faces []string, language, charset string, size dimen.DU) (shape.RealizedFace, error) {
	return constWidthFace{}, nil
}

func (r constWidthResolver) ForChars(script, language, charset string, glyphs []text.Glyph, size dimen.DU) ([]text.Glyph, error) {
	face, _ := r.Realize(nil, language, charset, size)
	for i := range glyphs {
		code, _ := face.EncodeChar(glyphs[i].Char)
		glyphs[i].Face = face
		glyphs[i].Code = code
	}
	return glyphs, nil
}

func (constWidthResolver) Metrics(gs *text.GlyphString, from, to int) error {
	for i := from; i < to; i++ {
		if gs.Glyphs[i].Kind == text.Char {
			gs.Glyphs[i].Width = 20
		}
	}
	return nil
}

func TestSplitterSplitsOverflowingLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.engine")
	defer teardown()
	//
	store := text.NewMemoryStore("hello world wide web")
	resolver := constWidthResolver{}
	ctl := compose.Control{TwoDimensional: true, WidthLimit: 120, Size: 1000}

	gs, err := compose.Compose(store, lookup.Default{}, resolver, 0, text.CharPos(store.Len()), ctl)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	l := layout.Layouter{SpaceWidth: 10, Size: 1000}
	l.Layout(gs)

	s := Splitter{Store: store, Env: lookup.Default{}, Resolver: resolver, Layouter: l}
	split, err := s.Split(gs, ctl)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if !split {
		t.Fatalf("expected the line to require splitting, width=%v limit=%v", gs.Width, ctl.WidthLimit)
	}
	if gs.Next == nil {
		t.Fatalf("expected a successor GlyphString after splitting")
	}
	if gs.To != gs.Next.From {
		t.Fatalf("expected contiguous split ranges, got gs.To=%d next.From=%d", gs.To, gs.Next.From)
	}
}

func TestSplitterNoopWhenWithinLimit(t *testing.T) {
	store := text.NewMemoryStore("hi")
	resolver := constWidthResolver{}
	ctl := compose.Control{TwoDimensional: true, WidthLimit: 1000, Size: 1000}

	gs, err := compose.Compose(store, lookup.Default{}, resolver, 0, text.CharPos(store.Len()), ctl)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	l := layout.Layouter{SpaceWidth: 10, Size: 1000}
	l.Layout(gs)

	s := Splitter{Store: store, Env: lookup.Default{}, Resolver: resolver, Layouter: l}
	split, err := s.Split(gs, ctl)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if split {
		t.Fatalf("expected no split when width is within the limit")
	}
}
