package text

import (
	"testing"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMemoryStoreCharAt(t *testing.T) {
	ms := NewMemoryStore("hello")
	r, err := ms.CharAt(1)
	if err != nil || r != 'e' {
		t.Fatalf("CharAt(1) = %q, %v; want 'e', nil", r, err)
	}
	if ms.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", ms.Len())
	}
}

func TestMemoryStoreAttachAndGetProp(t *testing.T) {
	ms := NewMemoryStore("hello world")
	p := ms.AttachProp(PropGlyphString, 0, 5, "dummy", VolatileStrong)
	v, ok := ms.GetProp(2, PropGlyphString)
	if !ok || v != "dummy" {
		t.Fatalf("GetProp(2) = %v, %v; want dummy, true", v, ok)
	}
	if _, ok := ms.GetProp(6, PropGlyphString); ok {
		t.Fatalf("GetProp(6) should miss, outside property span")
	}
	ms.DetachProp(p)
	if _, ok := ms.GetProp(2, PropGlyphString); ok {
		t.Fatalf("GetProp(2) should miss after DetachProp")
	}
}

func TestMemoryStoreEditShiftsLaterProperties(t *testing.T) {
	ms := NewMemoryStore("hello world")
	ms.AttachProp(PropGlyphString, 6, 11, "world-prop", Strong)
	ms.Edit(0, 5, "hi")
	if ms.Len() != len("hi world") {
		t.Fatalf("Len() = %d, want %d", ms.Len(), len("hi world"))
	}
	v, ok := ms.GetProp(3, PropGlyphString)
	if !ok || v != "world-prop" {
		t.Fatalf("property should have shifted to stay over 'world', got %v, %v", v, ok)
	}
}

func TestMemoryStoreCharAtReadsThroughCord(t *testing.T) {
	ms := NewMemoryStore("hello")
	ms.Edit(5, 5, " world")
	var rebuilt []rune
	ms.Cord().EachLeaf(func(l cords.Leaf, pos uint64) error {
		rebuilt = append(rebuilt, []rune(l.String())...)
		return nil
	})
	if string(rebuilt) != "hello world" {
		t.Fatalf("cord content = %q, want %q", string(rebuilt), "hello world")
	}
	r, err := ms.CharAt(6)
	if err != nil || r != 'w' {
		t.Fatalf("CharAt(6) = %q, %v; want 'w', nil (decoded from the same cord)", r, err)
	}
}

func TestMemoryStoreEditDropsVolatileOverlap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.core")
	defer teardown()
	//
	ms := NewMemoryStore("hello world")
	ms.AttachProp(PropGlyphString, 0, 5, "hello-prop", VolatileStrong)
	ms.Edit(2, 3, "X")
	if _, ok := ms.GetProp(0, PropGlyphString); ok {
		t.Fatalf("volatile property overlapping the edit should be dropped")
	}
}
