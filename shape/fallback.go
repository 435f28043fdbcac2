/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package shape

import (
	"strings"

	"github.com/npillmayer/tyse/lookup"
	"github.com/npillmayer/tyse/text"
)

// Fallback is the combining-class shaper the composer uses when a run's
// realized face declares no layout-table Shaper (spec §4.3 step 6): it
// assigns CombiningCode from each mark's canonical combining class and
// stable-sorts marks within a cluster by that class. It is not a Shaper
// itself (it never replaces or reorders base glyphs or changes run
// length) — the composer invokes it directly rather than through the
// Shaper interface.
type Fallback struct {
	Env lookup.Environment
}

// Apply walks gs.Glyphs[from:to), assigning combining codes to every mark
// (category "Mn"/"Me"/"Mc", i.e. category beginning with "M") and
// stable-sorting the marks within each base's cluster by canonical
// combining class. A bubble sort suffices per spec §4.3 step 6 ("ordering
// is stable among equal classes"); clusters are short (almost always <5
// marks), so the O(n²) cost is immaterial.
func (f Fallback) Apply(gs *text.GlyphString, from, to int) {
	T().Debugf("fallback: assigning combining codes over [%d, %d)", from, to)
	env := f.Env
	if env == nil {
		env = lookup.Default{}
	}
	i := from
	for i < to {
		if isMarkCategory(gs.Glyphs[i].Category) {
			// a run should always start on a base; a leading mark (e.g.
			// a combining mark at the very start of input) is treated as
			// its own degenerate base.
			i++
			continue
		}
		clusterStart := i
		i++
		clusterEnd := i
		for clusterEnd < to && isMarkCategory(gs.Glyphs[clusterEnd].Category) {
			clusterEnd++
		}
		for g := clusterStart + 1; g < clusterEnd; g++ {
			class := env.CombiningClass(gs.Glyphs[g].Char)
			gs.Glyphs[g].CombiningCode = text.FromClass(class)
		}
		bubbleSortByClass(gs.Glyphs[clusterStart+1:clusterEnd], env)
		i = clusterEnd
	}
}

func isMarkCategory(cat string) bool {
	return strings.HasPrefix(cat, "M")
}

func bubbleSortByClass(marks []text.Glyph, env lookup.Environment) {
	n := len(marks)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			a := env.CombiningClass(marks[j].Char)
			b := env.CombiningClass(marks[j+1].Char)
			if a > b {
				marks[j], marks[j+1] = marks[j+1], marks[j]
			}
		}
	}
}
