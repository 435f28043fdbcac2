/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package linebreak

import (
	"strings"

	"github.com/npillmayer/uax"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"

	"github.com/npillmayer/tyse/text"
)

// UAX14 is the Unicode-Annex-14-conformant alternative line-break policy,
// grounded on the reference pack's engine/khipu pipeline, which drives the
// very same uax14.LineWrap primary breaker through a uax/segment.Segmenter
// to find line-wrap opportunities.
type UAX14 struct{}

func (UAX14) Break(runes []rune, i, from, to text.CharPos) text.CharPos {
	if to <= from {
		return i
	}
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	seg.Init(strings.NewReader(string(runes)))

	var candidates []text.CharPos
	runeOffset := from
	for seg.Next() {
		fragment := seg.Text()
		runeOffset += text.CharPos(len([]rune(fragment)))
		p1, _ := seg.Penalties()
		if p1 < uax.InfinitePenalty {
			candidates = append(candidates, runeOffset)
		}
	}

	var best text.CharPos = -1
	for _, c := range candidates {
		if c <= i && c > from && (best < 0 || c > best) {
			best = c
		}
	}
	if best >= 0 {
		return best
	}
	for _, c := range candidates {
		if c > i && c < to {
			return c
		}
	}
	return i
}

var _ LineBreaker = UAX14{}
