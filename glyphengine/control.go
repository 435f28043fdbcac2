/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package glyphengine

import (
	"github.com/npillmayer/tyse/compose"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/linebreak"
	"github.com/npillmayer/tyse/render"
	"github.com/npillmayer/tyse/text"
)

// Formatter supplies per-line indent and width-limit overrides before a
// physical line is composed. line is the zero-based physical-line index
// being formatted, y its pending vertical offset (spec §6: "format(line,
// y, &indent, &width_limit)" — the original's "line" parameter is the
// line number, not a GlyphString). It replaces the source's
// function-pointer option with a small capability, per spec §9's Design
// Note on callbacks.
type Formatter interface {
	Format(line int, y dimen.DU) (indent, widthLimit dimen.DU)
}

// DrawControl is the input structure every glyphengine entry point
// consults. It carries every option in spec.md §6's DrawControl table;
// Formatter and LineBreaker stand in for the source's format/line_break
// function pointers.
type DrawControl struct {
	AsImage bool

	WithCursor  bool
	CursorPos   text.CharPos
	CursorWidth dimen.DU
	CursorBidi  bool

	// Reverse paints the range in inverse video (selection highlighting),
	// independent of AsImage and of OrientationReversed. It is threaded
	// straight through to FontDriver.Render / FrameDriver calls' reverse
	// parameter (spec §6's render/draw_empty_boxes "reverse" argument),
	// which the option table does not name separately from AsImage but
	// the capability contracts require.
	Reverse bool

	EnableBidi          bool
	OrientationReversed bool

	TwoDimensional bool
	MaxLineWidth   dimen.DU
	TabWidth       int

	MinLineAscent  dimen.DU
	MinLineDescent dimen.DU
	MaxLineAscent  dimen.DU
	MaxLineDescent dimen.DU

	FixedWidth bool
	AlignHead  bool

	IgnoreFormattingChar bool
	AntiAlias            bool

	DisableCaching bool
	PartialUpdate  bool

	Formatter   Formatter
	LineBreaker linebreak.LineBreaker

	ClipRegion render.Rect

	Size dimen.DU
}

// composeControl projects the composer-relevant subset of d.
func (d DrawControl) composeControl() compose.Control {
	return compose.Control{
		TwoDimensional:       d.TwoDimensional,
		IgnoreFormattingChar: d.IgnoreFormattingChar,
		EnableBidi:           d.EnableBidi,
		OrientationReversed:  d.OrientationReversed,
		WidthLimit:           d.MaxLineWidth,
		TabWidth:             d.TabWidth,
		MinLineAscent:        d.MinLineAscent,
		MinLineDescent:       d.MinLineDescent,
		MaxLineAscent:        d.MaxLineAscent,
		MaxLineDescent:       d.MaxLineDescent,
		FixedWidth:           d.FixedWidth,
		AlignHead:            d.AlignHead,
		DisableCaching:       d.DisableCaching,
		CursorWidth:          d.CursorWidth,
		CursorBidi:           d.CursorBidi,
		PartialUpdate:        d.PartialUpdate,
		Size:                 d.Size,
	}
}

// renderControl projects the renderer-relevant subset of d, given the
// glyph-index form of CursorPos a caller resolved against a specific
// chain (render.Control.CursorPos indexes gs.Glyphs, not text.CharPos).
func (d DrawControl) renderControl(cursorIdx int, clip render.Rect) render.Control {
	return render.Control{
		AsImage:       d.AsImage,
		WithCursor:    d.WithCursor,
		CursorPos:     cursorIdx,
		CursorWidth:   d.CursorWidth,
		CursorBidi:    d.CursorBidi,
		Reverse:       d.Reverse,
		PartialUpdate: d.PartialUpdate,
		Clip:          clip,
	}
}
