/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package bidi

import (
	"unicode/utf8"

	xbidi "golang.org/x/text/unicode/bidi"
)

// Unicode is the full-UAX#9 BidiEngine, delegating level resolution to
// golang.org/x/text/unicode/bidi — already a dependency of the reference
// pack's core/parameters package, which uses bidi.LeftToRight/RightToLeft
// as its own direction constants.
type Unicode struct{}

func (Unicode) Resolve(runes []rune, base Direction) (levels []int, err error) {
	if len(runes) == 0 {
		return nil, nil
	}
	var p xbidi.Paragraph
	dir := xbidi.LeftToRight
	if base == RightToLeft {
		dir = xbidi.RightToLeft
	}
	if _, err := p.SetString(string(runes), xbidi.DefaultDirection(dir)); err != nil {
		return nil, err
	}
	ordering, err := p.Order()
	if err != nil {
		return nil, err
	}
	levels = make([]int, len(runes))
	byteToRune := runeIndexByByteOffset(runes)

	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		rs, re := byteToRune[start], byteToRune[end]
		lvl := 0
		if run.Direction() == xbidi.RightToLeft {
			lvl = 1
		}
		for j := rs; j < re && j < len(levels); j++ {
			levels[j] = lvl
		}
	}
	return levels, nil
}

// runeIndexByByteOffset maps each UTF-8 byte offset of string(runes) to
// its rune index, so a bidi.Run's byte-offset span (Run.Pos) can be
// translated into the caller's per-cluster rune indices.
func runeIndexByByteOffset(runes []rune) map[int]int {
	m := make(map[int]int, len(runes)+1)
	byteOff := 0
	for i, r := range runes {
		m[byteOff] = i
		byteOff += utf8.RuneLen(r)
	}
	m[byteOff] = len(runes)
	return m
}

var _ BidiEngine = Unicode{}
