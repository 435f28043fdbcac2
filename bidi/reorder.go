/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package bidi

import (
	"github.com/npillmayer/tyse/lookup"
	"github.com/npillmayer/tyse/text"
)

// CharEncoder re-encodes a single character against a face's font, used
// after mirroring replaces a character with its mirror image (spec §4.2
// step 8). It is the minimal slice of the FontDriver capability the
// reorder pass needs, kept local to avoid a dependency on package shape.
type CharEncoder interface {
	EncodeChar(face text.Face, r rune) (code int32, ok bool)
}

// Control is the subset of draw-control state the reorder pass reads.
type Control struct {
	EnableBidi          bool
	OrientationReversed bool
}

// cluster is a maximal run of glyph indices [Start, End) sharing a logical
// character position: one base glyph followed by its combining marks.
type cluster struct {
	Start, End int // glyph indices, excluding anchors
	Level      int
}

// Reorder implements spec §4.2: it rewrites gs's glyph buffer from logical
// into visual order, tags bidi_level on every glyph, and mirrors
// characters whose visual level is odd and who have a Unicode mirror
// image. engine is the pluggable BidiEngine (Unicode or Naive); env
// supplies per-codepoint bidi classes; enc, if non-nil, re-encodes
// mirrored characters through their face's font.
func Reorder(gs *text.GlyphString, env lookup.Environment, ctl Control, engine BidiEngine, enc CharEncoder) error {
	if !ctl.EnableBidi {
		return nil
	}
	clusters := clustersOf(gs)
	if len(clusters) == 0 {
		return nil
	}
	runes := make([]rune, len(clusters))
	hasRTL := false
	for i, c := range clusters {
		r := gs.Glyphs[c.Start].Char
		runes[i] = r
		switch env.BidiCategory(r) {
		case "R", "AL", "RLE", "RLO":
			hasRTL = true
		}
	}
	if !hasRTL && !ctl.OrientationReversed {
		T().Debugf("bidi: no RTL run and not orientation-reversed, leaving levels at zero")
		return nil // spec §4.2 step 4: leave all levels at zero
	}
	base := LeftToRight
	if ctl.OrientationReversed {
		base = RightToLeft
	}
	T().Debugf("bidi: resolving %d clusters via %T, base=%v", len(clusters), engine, base)
	levels, err := engine.Resolve(runes, base)
	if err != nil {
		T().Errorf("bidi: %T.Resolve: %v", engine, err)
		return err
	}
	for i := range clusters {
		clusters[i].Level = levels[i]
	}

	visual := visualOrder(clusters)

	out := make([]text.Glyph, 0, len(gs.Glyphs))
	out = append(out, *gs.First())
	for _, ci := range visual {
		c := clusters[ci]
		for gi := c.Start; gi < c.End; gi++ {
			g := gs.Glyphs[gi]
			g.BidiLevel = c.Level
			if c.Level%2 == 1 {
				if m, ok := Mirror(g.Char); ok {
					g.Char = m
					if enc != nil {
						if code, ok := enc.EncodeChar(g.Face, m); ok {
							g.Code = code
						}
					}
				}
			}
			out = append(out, g)
		}
	}
	out = append(out, *gs.Last())
	gs.Glyphs = out
	return nil
}

// clustersOf groups gs's non-anchor glyphs into base+marks clusters, in
// logical (input) order.
func clustersOf(gs *text.GlyphString) []cluster {
	var clusters []cluster
	i := 1 // skip leading anchor
	n := len(gs.Glyphs) - 1 // exclude trailing anchor
	for i < n {
		start := i
		i++
		for i < n && gs.Glyphs[i].IsMark() {
			i++
		}
		clusters = append(clusters, cluster{Start: start, End: i})
	}
	return clusters
}

// visualOrder applies the standard L2 reordering procedure: for each
// level from the highest down to 1, reverse maximal contiguous runs of
// clusters whose level is >= that level. It returns a permutation of
// cluster indices in visual order.
func visualOrder(clusters []cluster) []int {
	order := make([]int, len(clusters))
	maxLevel := 0
	for i := range clusters {
		order[i] = i
		if clusters[i].Level > maxLevel {
			maxLevel = clusters[i].Level
		}
	}
	for level := maxLevel; level >= 1; level-- {
		i := 0
		for i < len(order) {
			if clusters[order[i]].Level < level {
				i++
				continue
			}
			j := i
			for j < len(order) && clusters[order[j]].Level >= level {
				j++
			}
			reverseInts(order[i:j])
			i = j
		}
	}
	return order
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
