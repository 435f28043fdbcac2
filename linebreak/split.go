/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package linebreak

import (
	"github.com/npillmayer/tyse/bidi"
	"github.com/npillmayer/tyse/compose"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/layout"
	"github.com/npillmayer/tyse/lookup"
	"github.com/npillmayer/tyse/shape"
	"github.com/npillmayer/tyse/text"
)

// Splitter re-splits an overflowing GlyphString into a chain of lines
// (spec §4.5). It needs everything Compose and Layout need because
// splitting re-composes and re-lays-out each resulting sub-range from
// scratch rather than merely truncating the glyph buffer.
type Splitter struct {
	Store    text.TextStore
	Env      lookup.Environment
	Resolver shape.FaceResolver
	Bidi     bidi.BidiEngine
	Layouter layout.Layouter
	Breaker  LineBreaker
}

// Split checks whether gs overflows its WidthLimit and, if so, rewrites
// gs in place to cover just the first line, linking the successor
// GlyphStrings for the remainder via gs.Next, and returns true. It
// returns false if gs did not need splitting or no break was found.
func (s Splitter) Split(gs *text.GlyphString, ctl compose.Control) (bool, error) {
	if !gs.Control.TwoDimensional || gs.Control.WidthLimit <= 0 || gs.Width <= gs.Control.WidthLimit {
		return false, nil
	}

	runes, err := readRunes(s.Store, gs.From, gs.To)
	if err != nil {
		return false, err
	}

	i := overflowPosition(gs, gs.Control.WidthLimit)
	breaker := s.Breaker
	if breaker == nil {
		breaker = Default{}
	}
	breakPos := breaker.Break(runes, i, gs.From, gs.To)
	if breakPos <= gs.From || breakPos >= gs.To {
		breakPos = i
	}
	if breakPos <= gs.From || breakPos >= gs.To {
		T().Debugf("split: no valid break position found for [%d, %d), leaving line overflowing", gs.From, gs.To)
		return false, nil
	}
	T().Debugf("split: breaking [%d, %d) at %d (overflow detected at %d)", gs.From, gs.To, breakPos, i)

	head, err := s.composeAndLayout(gs.From, breakPos, ctl)
	if err != nil {
		return false, err
	}
	tail, err := s.composeAndLayout(breakPos, gs.To, ctl)
	if err != nil {
		return false, err
	}

	*gs = *head
	gs.Next = tail

	if tail.Control.TwoDimensional && tail.Control.WidthLimit > 0 && tail.Width > tail.Control.WidthLimit {
		if _, err := s.Split(tail, ctl); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (s Splitter) composeAndLayout(from, to text.CharPos, ctl compose.Control) (*text.GlyphString, error) {
	g, err := compose.Compose(s.Store, s.Env, s.Resolver, from, to, ctl)
	if err != nil {
		return nil, err
	}
	if g.Control.EnableBidi && s.Bidi != nil {
		bctl := bidi.Control{EnableBidi: true, OrientationReversed: g.Control.OrientationReversed}
		if err := bidi.Reorder(g, s.Env, bctl, s.Bidi, shape.DefaultEncoder()); err != nil {
			return nil, err
		}
	}
	s.Layouter.Layout(g)
	return g, nil
}

func readRunes(store text.TextStore, from, to text.CharPos) ([]rune, error) {
	runes := make([]rune, 0, int(to-from))
	for p := from; p < to; p++ {
		r, err := store.CharAt(p)
		if err != nil {
			return nil, err
		}
		runes = append(runes, r)
	}
	return runes, nil
}

// overflowPosition walks gs's glyphs in logical order, summing per-source-
// character width (spec §4.5 step 1: "0 for positions inside a cluster"),
// and returns the source character position at which the accumulated
// width first exceeds limit.
func overflowPosition(gs *text.GlyphString, limit dimen.DU) text.CharPos {
	var acc dimen.DU
	lastPos := gs.From
	for i := 1; i < len(gs.Glyphs)-1; i++ {
		g := &gs.Glyphs[i]
		acc += g.Width
		if g.Pos != lastPos || i == 1 {
			lastPos = g.Pos
		}
		if acc > limit {
			return g.Pos
		}
	}
	return gs.To
}
