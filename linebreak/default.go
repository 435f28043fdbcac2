/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package linebreak

import (
	"unicode"

	"github.com/npillmayer/tyse/text"
)

// Default is the engine's built-in line-break policy (spec §4.9): prefer
// breaking at whitespace near the greedy overflow position i, falling
// back to i itself when no whitespace exists in range.
type Default struct{}

func (Default) Break(runes []rune, i, from, to text.CharPos) text.CharPos {
	idx := int(i - from)
	if idx >= 0 && idx < len(runes) && isBreakSpace(runes[idx]) {
		for idx < len(runes) && isBreakSpace(runes[idx]) {
			idx++
		}
		return from + text.CharPos(idx)
	}
	for j := idx - 1; j >= 0; j-- {
		if isBreakSpace(runes[j]) {
			return from + text.CharPos(j+1)
		}
	}
	return i
}

func isBreakSpace(r rune) bool {
	return r == ' ' || r == '\t' || unicode.IsSpace(r)
}

var _ LineBreaker = Default{}
