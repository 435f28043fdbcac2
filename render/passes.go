/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package render

import "github.com/npillmayer/tyse/text"

// faceGroup is a maximal run of glyphs sharing one face.
type faceGroup struct {
	from, to int
	face     text.Face
}

// groupsByFace partitions gs.Glyphs[from:to) into runs of identical face,
// matching the teacher's itemization-by-run idiom (compose.sameRun) but
// keyed on Face identity rather than script.
func groupsByFace(gs *text.GlyphString, from, to int) []faceGroup {
	var groups []faceGroup
	i := from
	for i < to {
		j := i + 1
		for j < to && gs.Glyphs[j].Face == gs.Glyphs[i].Face {
			j++
		}
		groups = append(groups, faceGroup{from: i, to: j, face: gs.Glyphs[i].Face})
		i = j
	}
	return groups
}

// dispatchKey groups the foreground pass by (face, kind, code validity),
// spec §4.7 step 2.
type dispatchKey struct {
	face      text.Face
	kind      text.Kind
	validCode bool
}

func keyOf(g *text.Glyph) dispatchKey {
	return dispatchKey{face: g.Face, kind: g.Kind, validCode: g.Code != text.InvalidCode}
}

func groupsByDispatch(gs *text.GlyphString, from, to int) []faceGroup {
	var groups []faceGroup
	i := from
	for i < to {
		j := i + 1
		for j < to && keyOf(&gs.Glyphs[j]) == keyOf(&gs.Glyphs[i]) {
			j++
		}
		groups = append(groups, faceGroup{from: i, to: j, face: gs.Glyphs[i].Face})
		i = j
	}
	return groups
}
