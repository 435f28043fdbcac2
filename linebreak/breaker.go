/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

// Package linebreak implements the line-splitting half of spec §4.5: given
// a GlyphString whose laid-out width exceeds its width limit, find a break
// position and produce a successor GlyphString chain. It also defines the
// LineBreaker capability (spec §4.9) consumed for that decision, with a
// Default policy and a UAX#14-based alternative.
package linebreak

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tyse/text"
)

// T traces to the engine tracer.
func T() tracing.Trace {
	return gtrace.EngineTracer
}

// LineBreaker decides where to split a range that overflowed its width
// limit. runes holds exactly the characters of [from, to); i is the
// position (an absolute CharPos, not an index into runes) where greedy
// width accumulation first overflowed. A LineBreaker may return any
// position strictly within (from, to); the caller falls back to
// Default{} if none is configured.
type LineBreaker interface {
	Break(runes []rune, i, from, to text.CharPos) text.CharPos
}
