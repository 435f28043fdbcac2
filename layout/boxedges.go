/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package layout

import (
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/text"
)

// Boxed is implemented by a face's box pointer (text.Face.BoxPointer) when
// it carries its own margins and width; a box pointer that doesn't
// implement Boxed falls back to frame.SpaceWidth when the control is
// fixed-width, per spec §4.4.
type Boxed interface {
	BoxWidth() dimen.DU
	InnerHMargin() dimen.DU
	OuterHMargin() dimen.DU
}

// InsertBoxEdges walks gs.Glyphs[from:to) and inserts a Box pseudo-glyph
// wherever two adjacent glyphs carry different face box pointers, a nil
// pointer next to a non-nil one included (spec §4.4 "Box edges"). It returns the new end index, since insertions
// shift everything after them.
func InsertBoxEdges(gs *text.GlyphString, from, to int, spaceWidth dimen.DU, fixedWidth bool) int {
	i := from + 1
	for i < to {
		prevFace := gs.Glyphs[i-1].Face
		curFace := gs.Glyphs[i].Face
		if !boxesDiffer(prevFace, curFace) {
			i++
			continue
		}
		width := boxEdgeWidth(prevFace, curFace, spaceWidth, fixedWidth)
		gs.InsertGlyph(i, text.Glyph{Kind: text.Box, Pos: gs.Glyphs[i].Pos, To: gs.Glyphs[i].Pos, Width: width})
		to++
		i += 2
	}
	return to
}

func boxesDiffer(a, b text.Face) bool {
	var ap, bp interface{}
	if a != nil {
		ap = a.BoxPointer()
	}
	if b != nil {
		bp = b.BoxPointer()
	}
	return ap != bp
}

func boxEdgeWidth(prevFace, curFace text.Face, spaceWidth dimen.DU, fixedWidth bool) dimen.DU {
	for _, f := range [...]text.Face{prevFace, curFace} {
		if f == nil {
			continue
		}
		if boxed, ok := f.BoxPointer().(Boxed); ok {
			return boxed.InnerHMargin() + boxed.BoxWidth() + boxed.OuterHMargin()
		}
	}
	if fixedWidth {
		return spaceWidth
	}
	return 0
}
