/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package query

import "github.com/npillmayer/tyse/text"

// GlyphInfo describes the cluster containing a queried position plus its
// logical and visual neighbors (spec §4.8 "glyph_info").
//
// PrevFrom is left text.InvalidCharPos when the containing cluster is
// the first on its physical line: the chain produced by linebreak.Splitter
// links forward only (GlyphString.Next), so there is no way to reach the
// preceding physical line from here without a paragraph-level index a
// caller would build on top of the cache.
type GlyphInfo struct {
	From, To           text.CharPos
	PrevFrom           text.CharPos
	LeftFrom, LeftTo   text.CharPos
	RightFrom, RightTo text.CharPos
	NextTo             text.CharPos
}

// Info finds the cluster containing pos within gs's chain of physical
// lines and reports its neighbors.
func Info(gs *text.GlyphString, pos text.CharPos) (GlyphInfo, bool) {
	line := gs
	for line != nil && !(line.From <= pos && pos < line.To) {
		line = line.Next
	}
	if line == nil {
		T().Debugf("glyph_info: pos %d outside any physical line", pos)
		return GlyphInfo{}, false
	}
	base, end, ok := findCluster(line, pos)
	if !ok {
		T().Debugf("glyph_info: pos %d covered by no cluster on its line", pos)
		return GlyphInfo{}, false
	}

	info := GlyphInfo{
		From:      line.Glyphs[base].Pos,
		To:        clusterTo(line, base, end),
		PrevFrom:  text.InvalidCharPos,
		LeftFrom:  text.InvalidCharPos,
		LeftTo:    text.InvalidCharPos,
		RightFrom: text.InvalidCharPos,
		RightTo:   text.InvalidCharPos,
		NextTo:    text.InvalidCharPos,
	}

	if pb, pe, ok := findCluster(line, info.From-1); ok {
		info.PrevFrom = line.Glyphs[pb].Pos
		_ = pe
	}

	if lb := prevBase(line, base); lb >= 1 {
		le := clusterEnd(line, lb)
		info.LeftFrom, info.LeftTo = line.Glyphs[lb].Pos, clusterTo(line, lb, le)
	}

	if end < len(line.Glyphs)-1 {
		re := clusterEnd(line, end)
		info.RightFrom, info.RightTo = line.Glyphs[end].Pos, clusterTo(line, end, re)
		info.NextTo = info.RightTo
	} else if line.Next != nil && len(line.Next.Glyphs) > 2 {
		nb, ne := 1, clusterEnd(line.Next, 1)
		info.NextTo = clusterTo(line.Next, nb, ne)
	}

	return info, true
}

// findCluster returns the base/end indices of the cluster containing pos
// within line.Glyphs, or ok=false if no non-mark glyph covers pos.
func findCluster(line *text.GlyphString, pos text.CharPos) (base, end int, ok bool) {
	for i := 1; i < len(line.Glyphs)-1; i++ {
		g := &line.Glyphs[i]
		if g.IsMark() {
			continue
		}
		if g.Pos <= pos && pos < g.To {
			return i, clusterEnd(line, i), true
		}
	}
	return 0, 0, false
}

// clusterEnd returns the exclusive end index of the cluster whose base
// glyph sits at index base, extending over any immediately following
// combining marks.
func clusterEnd(line *text.GlyphString, base int) int {
	end := base + 1
	for end < len(line.Glyphs)-1 && line.Glyphs[end].IsMark() {
		end++
	}
	return end
}

// prevBase walks backward from idx over combining marks to find the
// preceding cluster's base index, or 0 if idx is the line's first glyph.
func prevBase(line *text.GlyphString, idx int) int {
	i := idx - 1
	for i >= 1 && line.Glyphs[i].IsMark() {
		i--
	}
	return i
}

// clusterTo returns the widest char-range end among glyphs[base:end),
// covering marks whose own source range extends past the base glyph's.
func clusterTo(line *text.GlyphString, base, end int) text.CharPos {
	to := line.Glyphs[base].To
	for i := base; i < end; i++ {
		if line.Glyphs[i].To > to {
			to = line.Glyphs[i].To
		}
	}
	return to
}
