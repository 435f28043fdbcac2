/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package shape

import (
	"bytes"
	"image/color"
	"sync"

	hb "github.com/benoitkugler/textlayout/harfbuzz"
	"github.com/benoitkugler/textlayout/fonts/truetype"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/font"
	"github.com/npillmayer/tyse/render"
	"github.com/npillmayer/tyse/text"
)

// FontRegistryResolver is a reference FaceResolver realizing faces
// through a font.Registry: family names resolve to a font.TypeCase via
// golang.org/x/image/font/{sfnt,opentype}, never by reading OpenType
// layout tables directly. A family that isn't registered resolves to
// the registry's bundled fallback font rather than failing, matching
// spec §7's "any character without a resolvable font becomes an
// empty-box glyph" by instead giving every character the best face
// available.
type FontRegistryResolver struct {
	Registry *font.Registry
}

func (r FontRegistryResolver) registry() *font.Registry {
	if r.Registry != nil {
		return r.Registry
	}
	return font.GlobalRegistry()
}

// Realize tries each name in faces in order, returning the first one the
// registry holds (or can load); it falls back to font.FallbackFont if
// none match.
func (r FontRegistryResolver) Realize(faces []string, language, charset string, size dimen.DU) (RealizedFace, error) {
	reg := r.registry()
	var tc *font.TypeCase
	var err error
	for _, name := range faces {
		tc, err = reg.TypeCase(name, float64(size))
		if err == nil {
			return &typeCaseFace{tc: tc}, nil
		}
	}
	tc, err = reg.TypeCase("fallback", float64(size))
	return &typeCaseFace{tc: tc}, err
}

// ForChars assigns every glyph the single face Realize would return for
// this run (one resolver, no per-character script fallback chain),
// leaving codes INVALID where the font carries no glyph for the
// character.
func (r FontRegistryResolver) ForChars(script, language, charset string, glyphs []text.Glyph, size dimen.DU) ([]text.Glyph, error) {
	face, err := r.Realize(nil, language, charset, size)
	if err != nil {
		return glyphs, err
	}
	for i := range glyphs {
		if glyphs[i].Kind != text.Char {
			continue
		}
		code, ok := face.EncodeChar(glyphs[i].Char)
		glyphs[i].Face = face
		if ok {
			glyphs[i].Code = code
		} else {
			glyphs[i].Code = text.InvalidCode
		}
	}
	return glyphs, nil
}

// Metrics fills width/bearings/ascent/descent for glyphs in [from, to)
// from their face's scaled golang.org/x/image/font.Face.
func (r FontRegistryResolver) Metrics(gs *text.GlyphString, from, to int) error {
	for i := from; i < to; i++ {
		g := &gs.Glyphs[i]
		if g.Kind != text.Char || g.Code == text.InvalidCode {
			continue
		}
		tcf, ok := g.Face.(*typeCaseFace)
		if !ok {
			continue
		}
		face := tcf.tc.Font()
		bounds, advance, ok := face.GlyphBounds(g.Char)
		if !ok {
			continue
		}
		g.Width = dimen.DU(advance >> 6)
		g.LBearing = dimen.DU(bounds.Min.X >> 6)
		g.RBearing = g.Width - dimen.DU(bounds.Max.X>>6)
		m := face.Metrics()
		g.Ascent = dimen.DU(m.Ascent >> 6)
		g.Descent = dimen.DU(m.Descent >> 6)
	}
	return nil
}

// typeCaseFace adapts a font.TypeCase to RealizedFace and, for the
// reference SoftDriver, to render.FontDriverProvider.
type typeCaseFace struct {
	tc     *font.TypeCase
	hbOnce sync.Once
	hbFont *hb.Font
}

func (f *typeCaseFace) BoxPointer() interface{} { return nil }

func (f *typeCaseFace) SpaceWidth() dimen.DU {
	adv, ok := f.tc.Font().GlyphAdvance(' ')
	if !ok {
		return 0
	}
	return dimen.DU(adv >> 6)
}

// Shaper returns a HarfbuzzShaper bound to this face's font when the
// font's raw bytes parse as a HarfBuzz-loadable TrueType/OpenType face;
// a face with no parseable binary (e.g. a size realized from a font the
// registry never stored the bytes for) reports no shaper, and the
// composer falls back to the combining-class path.
func (f *typeCaseFace) Shaper() (Shaper, bool) {
	if f.HBFont() == nil {
		return nil, false
	}
	return HarfbuzzShaper{}, true
}

// HBFont lazily parses this face's ScalableFont binary into a HarfBuzz
// font, satisfying HBFontProvider. The parse happens once per realized
// face and is cached; a face whose ScalableFontParent carries no binary
// (or whose binary fails to parse) returns nil, never an error — callers
// treat a nil HBFont exactly like "no shaper available."
func (f *typeCaseFace) HBFont() *hb.Font {
	f.hbOnce.Do(func() {
		parent := f.tc.ScalableFontParent()
		if parent == nil || len(parent.Binary) == 0 {
			return
		}
		face, err := truetype.Parse(bytes.NewReader(parent.Binary), false)
		if err != nil {
			return
		}
		f.hbFont = hb.NewFont(face)
	})
	return f.hbFont
}

func (f *typeCaseFace) EncodeChar(r rune) (int32, bool) {
	if _, ok := f.tc.Font().GlyphAdvance(r); !ok {
		return text.InvalidCode, false
	}
	return int32(r), true
}

func (f *typeCaseFace) Ascent() dimen.DU {
	return dimen.DU(f.tc.Font().Metrics().Ascent >> 6)
}

func (f *typeCaseFace) Descent() dimen.DU {
	return dimen.DU(f.tc.Font().Metrics().Descent >> 6)
}

// FontDriver satisfies render.FontDriverProvider by delegating to a
// render.SoftFace wrapping the same scaled font.Face, so callers using
// the reference SoftDriver get real glyph rendering for registry fonts,
// not just the test-oriented faces SoftFace is constructed with by hand.
func (f *typeCaseFace) FontDriver() render.FontDriver {
	soft := &render.SoftFace{Font: f.tc.Font(), Color: color.Black}
	return soft.FontDriver()
}

var _ RealizedFace = (*typeCaseFace)(nil)
var _ render.FontDriverProvider = (*typeCaseFace)(nil)
var _ HBFontProvider = (*typeCaseFace)(nil)
var _ FaceResolver = FontRegistryResolver{}
