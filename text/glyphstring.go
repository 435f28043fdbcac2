/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package text

import (
	"fmt"

	"github.com/npillmayer/tyse/core/apperr"
	"github.com/npillmayer/tyse/core/dimen"
)

// Control is the minimal snapshot of draw-control state a GlyphString
// needs to remember after layout (spec §3: "control (snapshot...)").
// The full option set lives in the facade package; GlyphString only
// needs enough of it to answer cache-validity and rendering questions.
type Control struct {
	EnableBidi            bool
	OrientationReversed   bool
	TwoDimensional        bool
	WidthLimit            dimen.DU
	TabWidth              int
	MinLineAscent         dimen.DU
	MinLineDescent        dimen.DU
	MaxLineAscent         dimen.DU
	MaxLineDescent        dimen.DU
	FixedWidth            bool
	AlignHead             bool
	IgnoreFormattingChar  bool
	DisableCaching        bool
	CursorWidth           dimen.DU
	CursorBidi            bool
	PartialUpdate         bool
}

// GlyphString is an ordered sequence of glyphs flanked by two sentinel
// Anchor glyphs, representing one physical line's laid-out text (spec §3).
type GlyphString struct {
	Glyphs []Glyph

	From, To      CharPos
	Indent        dimen.DU
	WidthLimit    dimen.DU

	Width, LBearing, RBearing dimen.DU
	Ascent, Descent           dimen.DU
	PhysicalAscent            dimen.DU
	PhysicalDescent           dimen.DU
	TextAscent, TextDescent   dimen.DU
	LineAscent, LineDescent   dimen.DU
	Height                    dimen.DU

	SubWidth    dimen.DU
	SubLBearing dimen.DU
	SubRBearing dimen.DU

	Control Control

	Next *GlyphString
}

// NewGlyphString creates an empty GlyphString covering [from, to), bounded
// by two Anchor sentinels (spec §3 invariant 1).
func NewGlyphString(from, to CharPos) *GlyphString {
	gs := &GlyphString{
		From: from,
		To:   to,
	}
	gs.Glyphs = []Glyph{NewAnchor(from), NewAnchor(to)}
	return gs
}

// Len returns the number of glyphs, including the two anchors.
func (gs *GlyphString) Len() int { return len(gs.Glyphs) }

// At returns the glyph at index i. It panics on an out-of-range index,
// matching the engine's documented policy of surfacing caller bugs rather
// than silently clamping (spec §7 reserves sentinel returns for
// input-validation errors at the public boundary, not internal indexing).
func (gs *GlyphString) At(i int) *Glyph { return &gs.Glyphs[i] }

// First and Last return the two sentinel anchors.
func (gs *GlyphString) First() *Glyph { return &gs.Glyphs[0] }
func (gs *GlyphString) Last() *Glyph  { return &gs.Glyphs[len(gs.Glyphs)-1] }

// InsertGlyph inserts g at index `at`, which may relocate the backing
// array (spec §5: "callers MUST refetch pointers after any insertion").
// It returns the index at which g now lives (always `at`).
func (gs *GlyphString) InsertGlyph(at int, g Glyph) int {
	if at < 0 || at > len(gs.Glyphs) {
		panic(apperr.Range("InsertGlyph: index %d out of range [0,%d]", at, len(gs.Glyphs)))
	}
	gs.Glyphs = append(gs.Glyphs, Glyph{})
	copy(gs.Glyphs[at+1:], gs.Glyphs[at:])
	gs.Glyphs[at] = g
	return at
}

// DeleteGlyphs removes glyphs in [from, to) from the backing array.
func (gs *GlyphString) DeleteGlyphs(from, to int) {
	if from < 0 || to > len(gs.Glyphs) || from > to {
		panic(apperr.Range("DeleteGlyphs: invalid range [%d,%d)", from, to))
	}
	gs.Glyphs = append(gs.Glyphs[:from], gs.Glyphs[to:]...)
}

// AppendGlyph appends g and returns its index.
func (gs *GlyphString) AppendGlyph(g Glyph) int {
	gs.Glyphs = append(gs.Glyphs, g)
	return len(gs.Glyphs) - 1
}

// Lines flattens the Next chain into a slice, root first.
func (gs *GlyphString) Lines() []*GlyphString {
	var lines []*GlyphString
	for g := gs; g != nil; g = g.Next {
		lines = append(lines, g)
	}
	return lines
}

// ClampLineBox enforces spec §4.4's line ascent/descent clamping rule:
// clamp to [min, max], with max ignored when zero or not greater than min.
func ClampLineBox(ascent, minAscent, maxAscent dimen.DU) dimen.DU {
	if ascent < minAscent {
		ascent = minAscent
	}
	if maxAscent > minAscent && ascent > maxAscent {
		ascent = maxAscent
	}
	return ascent
}

func (gs *GlyphString) String() string {
	return fmt.Sprintf("GlyphString[%d,%d) %d glyphs width=%v", gs.From, gs.To, len(gs.Glyphs), gs.Width)
}
