/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package compose

import (
	"github.com/npillmayer/tyse/core/apperr"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/lookup"
	"github.com/npillmayer/tyse/shape"
	"github.com/npillmayer/tyse/text"
)

// Compose turns the character range [from, to) of store into a logical
// (pre-bidi) GlyphString: it itemizes the range into runs by script and by
// the face/language/charset properties attached to the store, resolves a
// face for each run through resolver, and runs the per-run shaping pass —
// a realized face's own Shaper when it has one, the combining-class
// Fallback otherwise (spec §4.3).
//
// Compose does not reorder for bidi; call bidi.Reorder on the result when
// Control wants visual order.
func Compose(store text.TextStore, env lookup.Environment, resolver shape.FaceResolver, from, to text.CharPos, ctl Control) (*text.GlyphString, error) {
	if env == nil {
		env = lookup.Default{}
	}
	n := text.CharPos(store.Len())
	if to > n {
		to = n
	}
	if from < 0 || from > to {
		return nil, apperr.Range("Compose: invalid range [%d,%d)", from, to)
	}

	runes := make([]rune, 0, int(to-from))
	for p := from; p < to; p++ {
		r, err := store.CharAt(p)
		if err != nil {
			return nil, apperr.Resource("Compose: CharAt(%d): %v", p, err)
		}
		runes = append(runes, r)
	}

	effectiveTo := to
	if ctl.TwoDimensional {
		for i, r := range runes {
			if r == '\n' {
				effectiveTo = from + text.CharPos(i) + 1
				break
			}
		}
	}

	logical := itemize(store, env, runes[:effectiveTo-from], from, effectiveTo, ctl)

	runSpans := make([]struct{ from, to int }, 0, len(logical))
	composed := make([]text.Glyph, 0, len(logical))
	i := 0
	for i < len(logical) {
		j := i + 1
		for j < len(logical) && sameRun(logical[i], logical[j]) {
			j++
		}
		r := logical[i]
		glyphs := make([]text.Glyph, j-i)
		for k := i; k < j; k++ {
			glyphs[k-i] = logical[k].Glyph
		}
		shaped, err := resolveRunFace(resolver, r, glyphs, ctl.Size)
		if err != nil {
			return nil, err
		}
		start := len(composed)
		composed = append(composed, shaped...)
		runSpans = append(runSpans, struct{ from, to int }{start, len(composed)})
		i = j
	}

	if effectiveTo == n {
		composed = append(composed, text.Glyph{Kind: text.Char, Char: '\n', Pos: effectiveTo, To: effectiveTo})
	}

	gs := text.NewGlyphString(from, effectiveTo)
	gs.Glyphs = append(gs.Glyphs[:1], append(composed, gs.Glyphs[1:]...)...)
	gs.Control = text.Control{
		EnableBidi:           ctl.EnableBidi,
		OrientationReversed:  ctl.OrientationReversed,
		TwoDimensional:       ctl.TwoDimensional,
		WidthLimit:           ctl.WidthLimit,
		TabWidth:             ctl.TabWidth,
		MinLineAscent:        ctl.MinLineAscent,
		MinLineDescent:       ctl.MinLineDescent,
		MaxLineAscent:        ctl.MaxLineAscent,
		MaxLineDescent:       ctl.MaxLineDescent,
		FixedWidth:           ctl.FixedWidth,
		AlignHead:            ctl.AlignHead,
		IgnoreFormattingChar: ctl.IgnoreFormattingChar,
		DisableCaching:       ctl.DisableCaching,
		CursorWidth:          ctl.CursorWidth,
		CursorBidi:           ctl.CursorBidi,
		PartialUpdate:        ctl.PartialUpdate,
	}

	for _, span := range runSpans {
		gFrom, gTo := span.from+1, span.to+1
		if resolver != nil {
			if err := resolver.Metrics(gs, gFrom, gTo); err != nil {
				return nil, err
			}
			if ctl.IgnoreFormattingChar {
				for k := gFrom; k < gTo; k++ {
					if g := &gs.Glyphs[k]; g.Kind == text.Space && g.Category == "Cf" {
						g.Width = 0
					}
				}
			}
		}
		shapeRun(gs, gFrom, gTo, env)
	}

	return gs, nil
}

// logicalGlyph carries itemization metadata alongside the glyph until
// runs are flushed.
type logicalGlyph struct {
	text.Glyph
	script, language, charset string
	faces                     []string
}

func sameRun(a, b logicalGlyph) bool {
	return a.script == b.script && a.language == b.language && a.charset == b.charset && sameFaces(a.faces, b.faces)
}

func sameFaces(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// itemize walks runes, expanding control characters to caret notation,
// turning Cf format characters into zero-width Space glyphs when
// requested, and tagging each
// resulting glyph with the script/language/charset/face run it belongs
// to (spec §4.3 steps 1–5).
func itemize(store text.TextStore, env lookup.Environment, runes []rune, from, to text.CharPos, ctl Control) []logicalGlyph {
	out := make([]logicalGlyph, 0, len(runes))
	prevScript := ""
	for idx, r := range runes {
		pos := from + text.CharPos(idx)

		if isFormattingChar(r) && ctl.IgnoreFormattingChar {
			language := propString(store, pos, text.PropLanguage)
			charset := propString(store, pos, text.PropCharset)
			faces := propFaces(store, pos)
			script := resolveRun(env, runes, idx, len(runes), prevScript)
			prevScript = script
			out = append(out, logicalGlyph{
				Glyph:    text.Glyph{Kind: text.Space, Char: r, Pos: pos, To: pos + 1, Width: 0, Category: "Cf"},
				script:   script, language: language, charset: charset, faces: faces,
			})
			continue
		}

		language := propString(store, pos, text.PropLanguage)
		charset := propString(store, pos, text.PropCharset)
		faces := propFaces(store, pos)

		if isControl(r) {
			script := scriptLatin
			out = append(out,
				logicalGlyph{
					Glyph:    text.Glyph{Kind: text.Char, Char: '^', Pos: pos, To: pos + 1, Category: "Cc"},
					script:   script, language: language, charset: charset, faces: faces,
				},
				logicalGlyph{
					Glyph:    text.Glyph{Kind: text.Char, Char: caretNotation(r), Pos: pos, To: pos + 1, Category: "Cc"},
					script:   script, language: language, charset: charset, faces: faces,
				},
			)
			prevScript = script
			continue
		}

		script := resolveRun(env, runes, idx, len(runes), prevScript)
		prevScript = script

		kind := text.Char
		if r == ' ' || r == '\t' {
			kind = text.Space
		}

		out = append(out, logicalGlyph{
			Glyph: text.Glyph{
				Kind:     kind,
				Char:     r,
				Pos:      pos,
				To:       pos + 1,
				Category: env.Category(r),
			},
			script: script, language: language, charset: charset, faces: faces,
		})
	}
	return out
}

func propString(store text.TextStore, pos text.CharPos, key string) string {
	v, ok := store.GetProp(pos, key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func propFaces(store text.TextStore, pos text.CharPos) []string {
	v, ok := store.GetProp(pos, text.PropFace)
	if !ok {
		return nil
	}
	switch f := v.(type) {
	case []string:
		return f
	case string:
		return []string{f}
	default:
		return nil
	}
}

// resolveRunFace assigns a face (and, through it, a font-specific code) to
// every glyph of one run. An explicit face list attached via
// text.PropFace takes priority and is resolved directly; otherwise the
// FaceResolver picks a face by script (spec §6: "ForChars... assigns
// glyphs their face/code" for runs without an explicit face override).
func resolveRunFace(resolver shape.FaceResolver, r logicalGlyph, glyphs []text.Glyph, size dimen.DU) ([]text.Glyph, error) {
	if resolver == nil {
		return glyphs, nil
	}
	if len(r.faces) > 0 {
		face, err := resolver.Realize(r.faces, r.language, r.charset, size)
		if err != nil {
			return nil, apperr.Resource("Compose: Realize(%v): %v", r.faces, err)
		}
		for i := range glyphs {
			code, ok := face.EncodeChar(glyphs[i].Char)
			if !ok {
				code = text.InvalidCode
			}
			glyphs[i].Face = face
			glyphs[i].Code = code
		}
		return glyphs, nil
	}
	shaped, err := resolver.ForChars(r.script, r.language, r.charset, glyphs, size)
	if err != nil {
		return nil, apperr.Resource("Compose: ForChars(%s): %v", r.script, err)
	}
	return shaped, nil
}

// shapeRun runs the layout-table shaper for the run's face when it has
// one, falling back to combining-class assignment otherwise (spec §4.3
// step 6).
func shapeRun(gs *text.GlyphString, from, to int, env lookup.Environment) {
	if to <= from {
		return
	}
	shaped := false
	face, _ := gs.Glyphs[from].Face.(shape.RealizedFace)
	if face != nil {
		if shaper, ok := face.Shaper(); ok {
			T().Debugf("shapeRun [%d, %d): using face's layout-table shaper", from, to)
			if newEnd, err := shaper.Run(gs, from, to, face); err == nil {
				to = newEnd
				shaped = true
			} else {
				T().Errorf("shapeRun [%d, %d): shaper.Run: %v, falling back", from, to, err)
			}
		}
	}
	if !shaped {
		T().Debugf("shapeRun [%d, %d): no shaper, using combining-class fallback", from, to)
		shape.Fallback{Env: env}.Apply(gs, from, to)
	}
}
