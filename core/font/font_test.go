package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNormalizeFontname(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	if got := NormalizeFontname("Gill Sans MT.ttf"); got != "gill_sans_mt" {
		t.Fatalf("NormalizeFontname = %q, want %q", got, "gill_sans_mt")
	}
}

func TestNormalizeTypeCaseName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	if got := NormalizeTypeCaseName("Clarendon", 12); got != "clarendon-12.00" {
		t.Fatalf("NormalizeTypeCaseName = %q, want %q", got, "clarendon-12.00")
	}
}

func TestRegistryCachesTypeCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	fr.StoreFont(FallbackFont())
	first, err := fr.TypeCase("Go Sans", 12)
	if err != nil {
		t.Fatalf("TypeCase: %v", err)
	}
	second, err := fr.TypeCase("Go Sans", 12)
	if err != nil {
		t.Fatalf("TypeCase (cached): %v", err)
	}
	if first != second {
		t.Fatalf("expected the second TypeCase call to reuse the cached one")
	}
}

func TestRegistryFallsBackWhenFontMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	fr := NewRegistry()
	tc, err := fr.TypeCase("nonexistent family", 10)
	if err == nil {
		t.Fatalf("expected an error naming the missing font")
	}
	if tc == nil || tc.Font() == nil {
		t.Fatalf("expected a usable fallback TypeCase even on error")
	}
}

func TestPrepareCaseScalesFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	sf := FallbackFont()
	tc, err := sf.PrepareCase(14)
	if err != nil {
		t.Fatalf("PrepareCase: %v", err)
	}
	if tc.PtSize() != 14 {
		t.Fatalf("PtSize = %v, want 14", tc.PtSize())
	}
	if tc.Font() == nil {
		t.Fatalf("expected a non-nil scaled font face")
	}
}
