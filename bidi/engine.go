/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

// Package bidi reorders a logical-order GlyphString into visual order,
// tags embedding levels, and mirrors characters, per spec §4.2. Two
// BidiEngine implementations are provided: Unicode (full UAX#9, delegating
// to golang.org/x/text/unicode/bidi) and Naive (legacy-compatible level-run
// reversal, spec §9 Design Note).
package bidi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Direction is the base paragraph direction fed to a BidiEngine.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// BidiEngine is the pluggable bidi capability (spec §4.2 step 5, §9 Design
// Note). Implementations consume one representative rune per logical
// cluster and return one resolved embedding level per cluster.
type BidiEngine interface {
	Resolve(runes []rune, base Direction) (levels []int, err error)
}

// Mirror reports the mirror-image codepoint for r, if r is one of the
// characters the Unicode bidi algorithm mirrors under RTL, and whether a
// mirror exists.
func Mirror(r rune) (rune, bool) {
	m, ok := mirrorTable[r]
	return m, ok
}

// mirrorTable seeds the well-known bracket/quote pairs the Unicode Bidi
// Algorithm mirrors under RTL. golang.org/x/text/unicode/bidi does not
// export a mirroring glyph lookup (it resolves levels and classes only),
// so this small table is carried locally — the one Unicode data table the
// engine owns rather than delegating, per DESIGN.md.
var mirrorTable = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
	'«': '»', '»': '«',
	'‹': '›', '›': '‹',
}
