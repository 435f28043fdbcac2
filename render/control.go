/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package render

import "github.com/npillmayer/tyse/core/dimen"

// Control carries the rendering-relevant subset of the draw-control
// option table (spec §6): as_image, with_cursor/cursor_pos, cursor_width,
// cursor_bidi, and partial_update. The reordering/line-break/layout
// options live in compose.Control and text.Control; glyphengine.DrawControl
// composes all three rather than this package depending on glyphengine.
type Control struct {
	AsImage       bool
	WithCursor    bool
	CursorPos     int // index into gs.Glyphs, not a CharPos
	CursorWidth   dimen.DU
	CursorBidi    bool
	Reverse       bool
	PartialUpdate bool
	Clip          Rect
}
