/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package bidi

import "github.com/npillmayer/tyse/lookup"

// Naive is the legacy-compatible BidiEngine (spec §9 Design Note): any
// character whose bidi class is R, AL, RLE or RLO raises the level to 1;
// everything else stays at the base level. Maximal runs of equal level are
// later reversed wholesale by Reorder; neutrals are not resolved per
// UAX#9 — this engine exists for compatibility with callers that accept
// the historical, imprecise behavior in exchange for not linking a full
// bidi implementation.
type Naive struct {
	Env lookup.Environment
}

func (n Naive) Resolve(runes []rune, base Direction) (levels []int, err error) {
	env := n.Env
	if env == nil {
		env = lookup.Default{}
	}
	baseLevel := 0
	if base == RightToLeft {
		baseLevel = 1
	}
	levels = make([]int, len(runes))
	for i, r := range runes {
		switch env.BidiCategory(r) {
		case "R", "AL", "RLE", "RLO":
			levels[i] = 1
		default:
			levels[i] = baseLevel
		}
	}
	return levels, nil
}

var _ BidiEngine = Naive{}
