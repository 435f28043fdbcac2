/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package glyphengine

import (
	"github.com/npillmayer/tyse/bidi"
	"github.com/npillmayer/tyse/cache"
	"github.com/npillmayer/tyse/core/apperr"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/layout"
	"github.com/npillmayer/tyse/linebreak"
	"github.com/npillmayer/tyse/lookup"
	"github.com/npillmayer/tyse/query"
	"github.com/npillmayer/tyse/render"
	"github.com/npillmayer/tyse/shape"
	"github.com/npillmayer/tyse/text"
)

// Frame is the rendering-target context: the frame's default space
// width, a ConfigTick bumped whenever the caller reconfigures fonts
// (invalidating every cache entry built under the old tick, spec §4.6
// step 2), and the active FaceResolver/FrameDriver/Environment/BidiEngine
// capability set (glossary: "Frame").
type Frame struct {
	SpaceWidth dimen.DU
	ConfigTick int

	Resolver shape.FaceResolver
	Env      lookup.Environment
	Bidi     bidi.BidiEngine
	Driver   render.FrameDriver
}

// Reconfigure bumps ConfigTick, invalidating every chain cached under the
// previous tick the next time it is looked up (spec §4.6 step 2).
func (f *Frame) Reconfigure() {
	f.ConfigTick++
	T().Debugf("frame reconfigured, tick=%d", f.ConfigTick)
}

// cacheFor builds the cache.Cache wired to store under this Frame's
// current identity.
func (f *Frame) cacheFor(store text.TextStore, breaker linebreak.LineBreaker) cache.Cache {
	return cache.Cache{
		Store:    store,
		Env:      f.envOrDefault(),
		Resolver: f.Resolver,
		Bidi:     f.Bidi,
		Layouter: layout.Layouter{SpaceWidth: f.SpaceWidth},
		Breaker:  breaker,
		Identity: cache.Identity{Frame: f, Tick: f.ConfigTick},
	}
}

func (f *Frame) envOrDefault() lookup.Environment {
	if f.Env != nil {
		return f.Env
	}
	return lookup.Default{}
}

// chain returns the cached (or freshly built) GlyphString chain covering
// [from, to) under ctl.
func (f *Frame) chain(store text.TextStore, from, to text.CharPos, ctl DrawControl) (*text.GlyphString, error) {
	if f.Resolver == nil {
		T().Errorf("frame: no FaceResolver configured, refusing to draw")
		return nil, apperr.Draw("Frame: no FaceResolver configured")
	}
	c := f.cacheFor(store, ctl.LineBreaker)
	return c.Get(from, to, ctl.composeControl())
}

// Draw paints [from, to) starting at (x, y), descending by each physical
// line's box height, and returns the y coordinate just below the last
// physical line drawn (spec §4.7, driven line by line over the chain spec §4.6
// produces). Only the first physical line consults ctl.Formatter for a
// per-line indent/width_limit override: the Splitter that produces the
// remaining lines runs inside the cache build and has no hook back out
// to a caller-supplied Formatter, so later lines always use ctl's own
// MaxLineWidth.
func (f *Frame) Draw(win render.Window, store text.TextStore, from, to text.CharPos, x, y dimen.DU, ctl DrawControl) (dimen.DU, error) {
	if ctl.Formatter != nil {
		indent, widthLimit := ctl.Formatter.Format(0, y)
		if widthLimit > 0 {
			ctl.MaxLineWidth = widthLimit
		}
		x += indent
	}

	gs, err := f.chain(store, from, to, ctl)
	if err != nil {
		return y, err
	}

	for line := gs; line != nil; line = line.Next {
		cursorIdx := -1
		if ctl.WithCursor && ctl.CursorPos >= line.From && ctl.CursorPos <= line.To {
			cursorIdx = glyphIndexAt(line, ctl.CursorPos)
		}
		rctl := ctl.renderControl(cursorIdx, ctl.ClipRegion)
		rctl.WithCursor = rctl.WithCursor && cursorIdx >= 0
		baseline := y + line.LineAscent
		renderer := render.Renderer{Frame: f.Driver}
		if err := renderer.RenderLine(win, line, 1, len(line.Glyphs)-1, x, baseline, rctl); err != nil {
			return y, err
		}
		y += line.LineAscent + line.LineDescent
	}
	return y, nil
}

// glyphIndexAt returns the index into line.Glyphs of the cluster base
// covering pos. When pos names the line's own To boundary it returns the
// index of the last glyph before the trailing anchor; otherwise it
// returns -1 if pos falls outside any glyph.
func glyphIndexAt(line *text.GlyphString, pos text.CharPos) int {
	for i := 1; i < len(line.Glyphs)-1; i++ {
		g := &line.Glyphs[i]
		if g.Pos <= pos && pos < g.To {
			return i
		}
	}
	if pos == line.To && len(line.Glyphs) > 1 {
		return len(line.Glyphs) - 2
	}
	return -1
}

// TextExtents returns the overall width and bounding boxes for [from,
// to) under ctl (spec §4.8 "text_extents").
func (f *Frame) TextExtents(store text.TextStore, from, to text.CharPos, ctl DrawControl) (query.Extents, error) {
	gs, err := f.chain(store, from, to, ctl)
	if err != nil {
		return query.Extents{}, err
	}
	return query.TextExtents(gs), nil
}

// PerCharExtents returns per-character bounding boxes for the first
// physical line of [from, to) under ctl (spec §4.8 "per_char_extents").
func (f *Frame) PerCharExtents(store text.TextStore, from, to text.CharPos, ctl DrawControl) ([]query.CharExtents, error) {
	gs, err := f.chain(store, from, to, ctl)
	if err != nil {
		return nil, err
	}
	return query.PerCharExtents(gs), nil
}

// CoordinatesPosition hit-tests (x, y) against [from, to)'s laid-out
// chain under ctl (spec §4.8 "coordinates_position").
func (f *Frame) CoordinatesPosition(store text.TextStore, from, to text.CharPos, x, y dimen.DU, ctl DrawControl) (text.CharPos, error) {
	gs, err := f.chain(store, from, to, ctl)
	if err != nil {
		return text.InvalidCharPos, err
	}
	return query.CoordinatesPosition(gs, ctl.composeControl(), x, y), nil
}

// GlyphInfo reports the cluster containing pos and its neighbors within
// [from, to)'s laid-out chain under ctl (spec §4.8 "glyph_info").
func (f *Frame) GlyphInfo(store text.TextStore, from, to, pos text.CharPos, ctl DrawControl) (query.GlyphInfo, bool, error) {
	gs, err := f.chain(store, from, to, ctl)
	if err != nil {
		return query.GlyphInfo{}, false, err
	}
	info, ok := query.Info(gs, pos)
	return info, ok, nil
}
