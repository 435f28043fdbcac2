package compose

import (
	"unicode"

	"github.com/npillmayer/tyse/lookup"
)

const (
	scriptPropagate = "" // inherited/none: caller must propagate or search forward
	scriptLatin     = "latin"
)

// scriptOf classifies a single rune per spec §4.3 step 3: ASCII maps
// straight to "latin"; a rune the environment reports as Inherited or
// Common propagates whatever script is already running; anything else
// asks the environment.
func scriptOf(env lookup.Environment, r rune) string {
	if r < 0x80 {
		return scriptLatin
	}
	s := env.Script(r)
	switch s {
	case "Inherited", "Common", "":
		return scriptPropagate
	default:
		return s
	}
}

// resolveRun decides the script for position i given the previous run's
// script and, if the character itself is inheriting/common, searches
// forward over runes [i, to) for the first rune with an explicit script.
// Isolated inheriting text at the very start of the buffer (no previous
// script and no explicit script found ahead) falls back to "latin".
func resolveRun(env lookup.Environment, runes []rune, i, to int, prevScript string) string {
	s := scriptOf(env, runes[i])
	if s != scriptPropagate {
		return s
	}
	if prevScript != "" {
		return prevScript
	}
	for j := i + 1; j < to; j++ {
		if fwd := scriptOf(env, runes[j]); fwd != scriptPropagate {
			return fwd
		}
	}
	return scriptLatin
}

// isControl reports whether r is a C0 control character or DEL — these
// expand into a two-glyph "^X" caret notation (spec §4.3 edge cases)
// rather than being shaped as text.
func isControl(r rune) bool {
	return (r < 0x20 && r != '\n' && r != '\t') || r == 0x7f
}

// caretNotation renders a control character the way terminals do:
// Ctrl-G (0x07) becomes "^G", DEL (0x7f) becomes "^?".
func caretNotation(r rune) rune {
	if r == 0x7f {
		return '?'
	}
	return r + 0x40
}

// isFormattingChar reports whether r is in Unicode category Cf (format
// character: ZWJ, ZWNJ, directional marks, etc). When
// Control.IgnoreFormattingChar is set the composer emits each of these as
// a zero-width Space glyph that keeps its source position.
func isFormattingChar(r rune) bool {
	return unicode.Is(unicode.Cf, r)
}
