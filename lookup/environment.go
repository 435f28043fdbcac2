/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

// Package lookup provides the Environment capability: character-property
// lookups (script, general category, bidi category, canonical combining
// class), passed explicitly to the composer and bidi reorderer rather
// than read from process globals. It provides no symbol interning.
package lookup

import (
	"unicode"
	"unicode/utf8"

	xbidi "golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// Environment is the capability the composer and bidi reorderer consume
// for per-codepoint Unicode property lookups.
type Environment interface {
	// Script returns the script name for r ("latin", "arabic", ...), or
	// "" if r carries no script of its own (Common/Inherited).
	Script(r rune) string
	// Category returns the Unicode general-category symbol for r ("Lu",
	// "Mn", "Cf", ...).
	Category(r rune) string
	// BidiCategory returns the Unicode bidi class for r ("L", "R", "AL",
	// "RLE", "RLO", "EN", ...).
	BidiCategory(r rune) string
	// CombiningClass returns the canonical combining class (0–255).
	CombiningClass(r rune) uint8
}

// Default is the engine's built-in Environment, grounded on stdlib
// unicode.Scripts/unicode.Categories for script/category tables (the
// pack carries no third-party replacement for Go's own Unicode tables)
// and on golang.org/x/text/unicode/bidi + golang.org/x/text/unicode/norm
// for bidi class and canonical combining class, both already teacher
// dependencies.
type Default struct{}

func (Default) Script(r rune) string {
	if r < 0x80 {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsPunct(r) {
			return "latin"
		}
	}
	for name, table := range unicode.Scripts {
		if unicode.Is(table, r) {
			return normalizeScriptName(name)
		}
	}
	return ""
}

func normalizeScriptName(name string) string {
	switch name {
	case "Latin":
		return "latin"
	case "Common", "Inherited":
		return ""
	default:
		out := make([]rune, 0, len(name))
		for i, r := range name {
			if i == 0 {
				out = append(out, unicode.ToLower(r))
			} else {
				out = append(out, r)
			}
		}
		return string(out)
	}
}

var categoryTables = []struct {
	name  string
	table *unicode.RangeTable
}{
	{"Cc", unicode.Cc}, {"Cf", unicode.Cf}, {"Co", unicode.Co}, {"Cs", unicode.Cs},
	{"Ll", unicode.Ll}, {"Lm", unicode.Lm}, {"Lo", unicode.Lo}, {"Lt", unicode.Lt}, {"Lu", unicode.Lu},
	{"Mc", unicode.Mc}, {"Me", unicode.Me}, {"Mn", unicode.Mn},
	{"Nd", unicode.Nd}, {"Nl", unicode.Nl}, {"No", unicode.No},
	{"Pc", unicode.Pc}, {"Pd", unicode.Pd}, {"Pe", unicode.Pe}, {"Pf", unicode.Pf},
	{"Pi", unicode.Pi}, {"Po", unicode.Po}, {"Ps", unicode.Ps},
	{"Sc", unicode.Sc}, {"Sk", unicode.Sk}, {"Sm", unicode.Sm}, {"So", unicode.So},
	{"Zl", unicode.Zl}, {"Zp", unicode.Zp}, {"Zs", unicode.Zs},
}

func (Default) Category(r rune) string {
	for _, c := range categoryTables {
		if unicode.Is(c.table, r) {
			return c.name
		}
	}
	return ""
}

func (Default) BidiCategory(r rune) string {
	p, _ := xbidi.LookupRune(r)
	return bidiClassName[p.Class()]
}

var bidiClassName = map[xbidi.Class]string{
	xbidi.L:   "L",
	xbidi.R:   "R",
	xbidi.EN:  "EN",
	xbidi.ES:  "ES",
	xbidi.ET:  "ET",
	xbidi.AN:  "AN",
	xbidi.CS:  "CS",
	xbidi.B:   "B",
	xbidi.S:   "S",
	xbidi.WS:  "WS",
	xbidi.ON:  "ON",
	xbidi.BN:  "BN",
	xbidi.NSM: "NSM",
	xbidi.AL:  "AL",
	xbidi.LRO: "LRO",
	xbidi.RLO: "RLO",
	xbidi.LRE: "LRE",
	xbidi.RLE: "RLE",
	xbidi.PDF: "PDF",
	xbidi.LRI: "LRI",
	xbidi.RLI: "RLI",
	xbidi.FSI: "FSI",
	xbidi.PDI: "PDI",
}

func (Default) CombiningClass(r rune) uint8 {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	cls := norm.NFC.Properties(buf[:n]).CCC()
	return uint8(cls)
}

var _ Environment = Default{}
