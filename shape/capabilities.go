/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

// Package shape defines the FaceResolver, RealizedFace and Shaper
// capabilities the composer consumes (spec §6), plus two Shaper implementations: a
// HarfBuzz-backed font-layout-table shaper and the combining-class
// fallback shaper used when a realized face declares no shaper (spec
// §4.3 step 6).
package shape

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/text"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// RealizedFace is a face resolved against a specific size and frame,
// carrying a concrete font (spec glossary). It embeds text.Face so a
// RealizedFace can stand in wherever a Glyph.Face is expected.
type RealizedFace interface {
	text.Face
	// Shaper returns the realized font's layout-table shaper, or
	// (nil, false) if the font declares none — the composer then falls
	// back to the combining-class path (spec §4.3 step 6).
	Shaper() (Shaper, bool)
	EncodeChar(r rune) (code int32, ok bool)
	Ascent() dimen.DU
	Descent() dimen.DU
}

// Shaper is invoked by the composer on one same-face run, in place (spec
// §6: "shaper.run(gstring, from, to, face) -> new_end"). It may replace,
// reorder, and generate combining codes on the glyphs in [from, to) and
// returns the new end index of the (possibly resized) run.
type Shaper interface {
	Run(gs *text.GlyphString, from, to int, face RealizedFace) (newEnd int, err error)
}

// FaceResolver resolves faces to realized fonts and assigns glyphs their
// face/code (spec §6).
type FaceResolver interface {
	Realize(faces []string, language, charset string, size dimen.DU) (RealizedFace, error)
	// ForChars assigns face and code to each glyph in the slice in
	// place; it may compact the slice (ligature formation is left to a
	// Shaper, not to ForChars).
	ForChars(script, language, charset string, glyphs []text.Glyph, size dimen.DU) ([]text.Glyph, error)
	// Metrics fills width/lbearing/rbearing/ascent/descent for glyphs in
	// [from, to).
	Metrics(gs *text.GlyphString, from, to int) error
}

// CharEncoderFunc adapts a function to the bidi.CharEncoder interface
// (package bidi never imports shape to avoid a cycle; a caller wires
// this small adapter at the point where both faces and the bidi pass are
// in scope).
type CharEncoderFunc func(face text.Face, r rune) (int32, bool)

func (f CharEncoderFunc) EncodeChar(face text.Face, r rune) (int32, bool) { return f(face, r) }

// DefaultEncoder adapts any RealizedFace-typed text.Face to CharEncoderFunc.
func DefaultEncoder() CharEncoderFunc {
	return func(face text.Face, r rune) (int32, bool) {
		rf, ok := face.(RealizedFace)
		if !ok {
			return text.InvalidCode, false
		}
		return rf.EncodeChar(r)
	}
}
