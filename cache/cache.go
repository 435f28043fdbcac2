/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package cache

import (
	"fmt"

	"github.com/npillmayer/tyse/bidi"
	"github.com/npillmayer/tyse/compose"
	"github.com/npillmayer/tyse/layout"
	"github.com/npillmayer/tyse/linebreak"
	"github.com/npillmayer/tyse/lookup"
	"github.com/npillmayer/tyse/shape"
	"github.com/npillmayer/tyse/text"
)

// Identity distinguishes cache entries built for different frames and
// different font-configuration ticks (spec §4.6 step 2: "built for a
// different frame, a different tick... or a control whose pre-
// with_cursor prefix differs").
type Identity struct {
	Frame interface{}
	Tick  int
}

// entry is the value attached under text.PropGlyphString.
type entry struct {
	identity      Identity
	controlPrefix string
	baseFrom      text.CharPos
	chain         *text.GlyphString
}

// Cache builds and retrieves cached GlyphString chains for a TextStore.
// It carries everything a fresh build needs (Compose, an optional bidi
// pass, Layout, and an optional line-break split) so that a cache miss
// transparently falls through to the same pipeline a caller would run
// by hand.
type Cache struct {
	Store    text.TextStore
	Env      lookup.Environment
	Resolver shape.FaceResolver
	Bidi     bidi.BidiEngine
	Layouter layout.Layouter
	Breaker  linebreak.LineBreaker
	Identity Identity
}

// Get returns the GlyphString chain covering [from, to) under ctl,
// reusing a cached chain when one is attached and still valid, and
// building afresh otherwise (spec §4.6 steps 1–4).
func (c Cache) Get(from, to text.CharPos, ctl compose.Control) (*text.GlyphString, error) {
	if chain := c.lookup(from, ctl); chain != nil {
		T().Debugf("cache hit for [%d, %d)", from, to)
		return chain, nil
	}
	T().Debugf("cache miss for [%d, %d), building", from, to)
	chain, err := c.build(from, to, ctl)
	if err != nil {
		T().Errorf("cache build [%d, %d): %v", from, to, err)
		return nil, err
	}
	if !ctl.DisableCaching {
		c.attach(from, ctl, chain)
	}
	return chain, nil
}

// Invalidate detaches the cache property at pos, if any, discarding any
// chain attached there. Callers use this after an out-of-band edit that
// the TextStore itself did not observe (e.g. a property value changed
// without a text.Edit call).
func (c Cache) Invalidate(pos text.CharPos) {
	if prop, ok := c.Store.PropertyAt(pos, text.PropGlyphString); ok {
		T().Debugf("cache invalidate at %d", pos)
		c.Store.DetachProp(prop)
	}
}

func (c Cache) lookup(from text.CharPos, ctl compose.Control) *text.GlyphString {
	prop, ok := c.Store.PropertyAt(from, text.PropGlyphString)
	if !ok {
		return nil
	}
	e, ok := prop.Value().(*entry)
	if !ok {
		c.Store.DetachProp(prop)
		return nil
	}

	if !isBoundary(c.Store, prop.From()) || !isBoundary(c.Store, prop.To()) {
		c.Store.DetachProp(prop)
		return nil
	}
	if e.identity != c.Identity || e.controlPrefix != controlPrefix(ctl) {
		c.Store.DetachProp(prop)
		return nil
	}

	if offset := from - e.baseFrom; offset != 0 {
		translateChain(e.chain, offset)
		e.baseFrom = from
	}
	return e.chain
}

func (c Cache) build(from, to text.CharPos, ctl compose.Control) (*text.GlyphString, error) {
	gs, err := compose.Compose(c.Store, c.Env, c.Resolver, from, to, ctl)
	if err != nil {
		return nil, err
	}
	if gs.Control.EnableBidi && c.Bidi != nil {
		bctl := bidi.Control{EnableBidi: true, OrientationReversed: gs.Control.OrientationReversed}
		if err := bidi.Reorder(gs, c.Env, bctl, c.Bidi, shape.DefaultEncoder()); err != nil {
			return nil, err
		}
	}
	c.Layouter.Layout(gs)

	splitter := linebreak.Splitter{
		Store: c.Store, Env: c.Env, Resolver: c.Resolver,
		Bidi: c.Bidi, Layouter: c.Layouter, Breaker: c.Breaker,
	}
	if _, err := splitter.Split(gs, ctl); err != nil {
		return nil, err
	}
	return gs, nil
}

func (c Cache) attach(from text.CharPos, ctl compose.Control, chain *text.GlyphString) {
	e := &entry{
		identity:      c.Identity,
		controlPrefix: controlPrefix(ctl),
		baseFrom:      from,
		chain:         chain,
	}
	c.Store.AttachProp(text.PropGlyphString, from, chainEnd(chain), e, text.VolatileStrong)
}

// isBoundary reports whether pos is a text endpoint or immediately
// follows a newline, the only attachment points spec §4.6 step 1 allows
// a cached chain to keep.
func isBoundary(store text.TextStore, pos text.CharPos) bool {
	if pos <= 0 || int(pos) >= store.Len() {
		return true
	}
	r, err := store.CharAt(pos - 1)
	return err == nil && r == '\n'
}

// controlPrefix serializes the part of ctl that the cache treats as
// identity-relevant, excluding the cursor fields a caller typically
// varies line by line without wanting to invalidate the whole chain
// (spec §4.6 step 2: "a control whose pre-with_cursor prefix differs").
func controlPrefix(ctl compose.Control) string {
	ctl.CursorWidth = 0
	ctl.CursorBidi = false
	ctl.PartialUpdate = false
	return fmt.Sprintf("%+v", ctl)
}

func chainEnd(gs *text.GlyphString) text.CharPos {
	for gs.Next != nil {
		gs = gs.Next
	}
	return gs.To
}

// translateChain shifts every from/to/pos field of gs and its successors
// by offset (spec §4.6 step 3).
func translateChain(gs *text.GlyphString, offset text.CharPos) {
	for g := gs; g != nil; g = g.Next {
		g.From += offset
		g.To += offset
		for i := range g.Glyphs {
			g.Glyphs[i].Pos += offset
			g.Glyphs[i].To += offset
		}
	}
}
