package cache

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

type flatFace struct{}

func (flatFace) BoxPointer() interface{}         { return nil }
func (flatFace) SpaceWidth() dimen.DU            { return 10 }
func (flatFace) Shaper() (shape.Shaper, bool)    { return nil, false }
func (flatFace) EncodeChar(r rune) (int32, bool) { return int32(r), true }
func (flatFace) Ascent() dimen.DU                { return 100 }
func (flatFace) Descent() dimen.DU               { return 20 }

type flatResolver struct{}

func (flatResolver) Realize(faces []string, language, charset string, size dimen.DU) (shape.RealizedFace, error) {
	return flatFace{}, nil
}

func (r flatResolver) ForChars(script, language, charset string, glyphs []text.Glyph, size dimen.DU) ([]text.Glyph, error) {
	face, _ := r.Realize(nil, language, charset, size)
	for i := range glyphs {
		code, _ := face.EncodeChar(glyphs[i].Char)
		glyphs[i].Face = face
		glyphs[i].Code = code
	}
	return glyphs, nil
}

func (flatResolver) Metrics(gs *text.GlyphString, from, to int) error {
	for i := from; i < to; i++ {
		if gs.Glyphs[i].Kind == text.Char {
			gs.Glyphs[i].Width = 20
		}
	}
	return nil
}

func testCache(store text.TextStore, disableCaching bool) (Cache, compose.Control) {
	c := Cache{
		Store:    store,
		Env:      lookup.Default{},
		Resolver: flatResolver{},
		Layouter: layout.Layouter{SpaceWidth: 10, Size: 1000},
		Identity: Identity{Frame: "frame-1", Tick: 1},
	}
	ctl := compose.Control{Size: 1000, DisableCaching: disableCaching}
	return c, ctl
}

func TestCacheReturnsSameChainOnSecondRequest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.engine")
	defer teardown()
	//
	store := text.NewMemoryStore("hello")
	c, ctl := testCache(store, false)

	first, err := c.Get(0, text.CharPos(store.Len()), ctl)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, err := c.Get(0, text.CharPos(store.Len()), ctl)
	if err != nil {
		t.Fatalf("Get (cached): %v", err)
	}
	if first != second {
		t.Fatalf("expected the second Get to reuse the cached chain, got a different pointer")
	}
}

func TestCacheDisableCachingNeverAttaches(t *testing.T) {
	store := text.NewMemoryStore("hello")
	c, ctl := testCache(store, true)

	if _, err := c.Get(0, text.CharPos(store.Len()), ctl); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, ok := store.PropertyAt(0, text.PropGlyphString); ok {
		t.Fatalf("expected no cache property to be attached when DisableCaching is set")
	}
}

func TestCacheInvalidateDetachesProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.engine")
	defer teardown()
	//
	store := text.NewMemoryStore("hello")
	c, ctl := testCache(store, false)

	if _, err := c.Get(0, text.CharPos(store.Len()), ctl); err != nil {
		t.Fatalf("Get: %v", err)
	}
	c.Invalidate(0)
	if _, ok := store.PropertyAt(0, text.PropGlyphString); ok {
		t.Fatalf("expected Invalidate to detach the cache property")
	}
}

func TestCacheDifferentIdentityRebuilds(t *testing.T) {
	store := text.NewMemoryStore("hello")
	c, ctl := testCache(store, false)

	first, err := c.Get(0, text.CharPos(store.Len()), ctl)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	c.Identity = Identity{Frame: "frame-2", Tick: 1}
	second, err := c.Get(0, text.CharPos(store.Len()), ctl)
	if err != nil {
		t.Fatalf("Get (different identity): %v", err)
	}
	if first == second {
		t.Fatalf("expected a chain built under a different Identity to be rebuilt, not reused")
	}
}
