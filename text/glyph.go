/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package text

import "github.com/npillmayer/tyse/core/dimen"

// CharPos is a 0-based index into a backing text.
type CharPos int

// InvalidCharPos signals "no position", returned by query operations that
// otherwise return a CharPos.
const InvalidCharPos CharPos = -1

// InvalidCode marks a glyph whose font-specific code could not be
// resolved. It is preserved on the glyph and rendered as an empty box.
const InvalidCode int32 = -1

// Kind discriminates the five glyph roles named in spec §3.
type Kind uint8

const (
	Char Kind = iota
	Space
	Pad
	Box
	Anchor
)

func (k Kind) String() string {
	switch k {
	case Char:
		return "char"
	case Space:
		return "space"
	case Pad:
		return "pad"
	case Box:
		return "box"
	case Anchor:
		return "anchor"
	}
	return "?"
}

// Face is a borrowed handle to a realized face, owned by a face cache
// external to this package (spec §1, §5). The engine never mutates it.
type Face interface {
	// BoxPointer identifies the face's surrounding box, if any; two
	// glyphs whose faces return different box pointers (nil next to
	// non-nil included) straddle a box edge (spec §4.4).
	BoxPointer() interface{}
	SpaceWidth() dimen.DU
}

// Glyph is one position in a GlyphString.
type Glyph struct {
	Kind Kind
	Char rune  // codepoint; 0 for Anchor/Box
	Code int32 // font-specific glyph id; InvalidCode when unmapped

	Pos, To CharPos // covered char range; Pos == To for anchors, Pad/Box glyphs and the virtual end-of-text newline

	Face     Face
	Category string // Unicode general-category symbol, or ""

	CombiningCode CombiningCode
	BidiLevel     int

	Width, LBearing, RBearing dimen.DU
	Ascent, Descent           dimen.DU
	XOff, YOff                dimen.DU

	LeftPadding  bool
	RightPadding bool
	OTFEncoded   bool
	Enabled      bool
}

// IsAnchor reports whether g is a sentinel anchor glyph.
func (g *Glyph) IsAnchor() bool { return g.Kind == Anchor }

// IsMark reports whether g is a combining mark (non-zero combining code).
func (g *Glyph) IsMark() bool { return g.CombiningCode != 0 }

// NewAnchor creates a sentinel Anchor glyph covering the empty range [pos, pos).
func NewAnchor(pos CharPos) Glyph {
	return Glyph{Kind: Anchor, Pos: pos, To: pos}
}
