/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–26 the glyphengine authors
*/

package text

// AlignY picks a vertical alignment point on a base or mark box.
type AlignY uint8

const (
	Top AlignY = iota
	VCenter
	Bottom
	Baseline
)

// AlignX picks a horizontal alignment point on a base or mark box.
type AlignX uint8

const (
	Left AlignX = iota
	HCenter
	Right
)

// CombiningCode is the packed 6-field code describing how a combining
// mark is placed relative to its base glyph (spec §3, §4.1). Zero means
// "this glyph is a base, not a mark".
//
// Bit layout (bit 31 down to bit 0):
//
//	31      : byClass sentinel (1 = derived from a Unicode combining class)
//	24..30  : unused
//	16..23  : off_x, 8-bit, biased by 128
//	8..15   : off_y, 8-bit, biased by 128
//	6..7    : add_x, 2-bit enum
//	4..5    : add_y, 2-bit enum
//	2..3    : base_x, 2-bit enum
//	0..1    : base_y, 2-bit enum
type CombiningCode uint32

const byClassBit CombiningCode = 1 << 31

// Pack assembles a CombiningCode from its six fields. offY and offX are
// already biased by 128 (128 = zero offset), per spec §3.
func Pack(baseY AlignY, baseX AlignX, addY AlignY, addX AlignX, offY, offX uint8) CombiningCode {
	return CombiningCode(baseY&0x3) |
		CombiningCode(baseX&0x3)<<2 |
		CombiningCode(addY&0x3)<<4 |
		CombiningCode(addX&0x3)<<6 |
		CombiningCode(offY)<<8 |
		CombiningCode(offX)<<16
}

// Unpack decomposes a CombiningCode into its six fields.
func Unpack(c CombiningCode) (baseY AlignY, baseX AlignX, addY AlignY, addX AlignX, offY, offX uint8) {
	baseY = AlignY(c & 0x3)
	baseX = AlignX((c >> 2) & 0x3)
	addY = AlignY((c >> 4) & 0x3)
	addX = AlignX((c >> 6) & 0x3)
	offY = uint8((c >> 8) & 0xff)
	offX = uint8((c >> 16) & 0xff)
	return
}

// IsByClass reports whether c was derived from a Unicode combining class
// table rather than supplied explicitly by a font shaper.
func (c CombiningCode) IsByClass() bool { return c&byClassBit != 0 }

// withByClass sets the sentinel bit marking a code as class-derived.
func withByClass(c CombiningCode) CombiningCode { return c | byClassBit }

// noOffset is the stored byte meaning "offset of zero" (biased by 128).
const noOffset uint8 = 128

// FromClass maps a Unicode canonical combining class (0–255) to one of the
// canonical alignment codes in spec §4.1. A class of 0 (not a combining
// mark) yields CombiningCode(0).
func FromClass(class uint8) CombiningCode {
	switch class {
	case 0:
		return 0
	case 200, 202, 204: // below (left/center/right) attached
		return withByClass(belowCode(xForBelowAbove(class, 200)))
	case 208, 210: // side (left/right) attached
		if class == 208 {
			return withByClass(sideCode(Left))
		}
		return withByClass(sideCode(Right))
	case 212, 214, 216: // above (left/center/right) attached
		return withByClass(aboveCode(xForBelowAbove(class, 212)))
	case 218, 220, 222: // below with small gap
		return withByClass(belowGapCode(xForBelowAbove(class, 218)))
	case 224, 226: // side with small gap
		if class == 224 {
			return withByClass(sideGapCode(Left))
		}
		return withByClass(sideGapCode(Right))
	case 228, 230, 232: // above with small gap
		return withByClass(aboveGapCode(xForBelowAbove(class, 228)))
	case 233: // doubled below
		return withByClass(Pack(Bottom, HCenter, Top, HCenter, noOffset, noOffset))
	case 234: // doubled above
		return withByClass(Pack(Top, HCenter, Bottom, HCenter, noOffset, noOffset))
	case 240: // iota subscript
		return withByClass(Pack(Bottom, Right, Top, Left, noOffset, noOffset))
	default:
		if class != 0 {
			return withByClass(genericAboveCenter())
		}
		return 0
	}
}

// xForBelowAbove maps a class triple (base, base+2, base+4) to Left/Center/Right.
func xForBelowAbove(class, base uint8) AlignX {
	switch class - base {
	case 0:
		return Left
	case 2:
		return HCenter
	default:
		return Right
	}
}

func belowCode(x AlignX) CombiningCode {
	return Pack(Bottom, x, Top, x, noOffset, noOffset)
}

func aboveCode(x AlignX) CombiningCode {
	return Pack(Top, x, Bottom, x, noOffset, noOffset)
}

const smallGap uint8 = noOffset + 4 // 4 device-unit-equivalent gap, biased

func belowGapCode(x AlignX) CombiningCode {
	return Pack(Bottom, x, Top, x, smallGap, noOffset)
}

func aboveGapCode(x AlignX) CombiningCode {
	return Pack(Top, x, Bottom, x, noOffset-4, noOffset)
}

func sideCode(x AlignX) CombiningCode {
	return Pack(VCenter, x, VCenter, oppositeX(x), noOffset, noOffset)
}

func sideGapCode(x AlignX) CombiningCode {
	if x == Left {
		return Pack(VCenter, x, VCenter, oppositeX(x), noOffset, smallGap)
	}
	return Pack(VCenter, x, VCenter, oppositeX(x), noOffset, noOffset-4)
}

func oppositeX(x AlignX) AlignX {
	switch x {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return HCenter
	}
}

func genericAboveCenter() CombiningCode {
	return Pack(Top, HCenter, Bottom, HCenter, noOffset, noOffset)
}
