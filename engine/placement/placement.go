package placement

import (
	"math"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// KerningShift is the pseudo-kerning fraction of the box width applied to
// narrow vertical glyphs which are not first in a line.
const KerningShift = -0.03

// narrowVerticals receive pseudo-kerning.
var narrowVerticals = map[string]bool{
	"l": true, "i": true, "t": true, "f": true, "j": true,
	"I": true, "J": true, "T": true, "F": true,
	"1": true, "!": true, "|": true,
}

// IsNarrowVertical checks if a normalized character is a narrow vertical glyph.
func IsNarrowVertical(normalized string) bool {
	return narrowVerticals[normalized]
}

// combiningMarks is the range of combining diacritical marks stripped by Normalize.
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0300, Hi: 0x0361, Stride: 1},
	},
}

// Normalize decomposes a character and strips combining diacritical marks,
// so that accented variants map to their base letter ('é' → "e").
func Normalize(ch rune) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningMarks)))
	s, _, err := transform.String(t, string(ch))
	if err != nil {
		return string(ch)
	}
	return s
}

// Centered returns the offset which centers a glyph of width glyphWidth in a
// box of width boxWidth. It may be negative for glyphs wider than the box.
func Centered(glyphWidth, boxWidth int) int {
	return floorDiv(boxWidth-glyphWidth, 2)
}

// ComputeOffset returns the horizontal offset of a glyph for character ch
// within a box, applying the optical offsets of table t.
//
// isFirstInLine must be true if no glyph precedes ch on its line; this holds
// for every glyph of a font atlas. The result may be negative or exceed the
// box; clipping is left to the caller.
func ComputeOffset(t *OffsetTable, ch rune, glyphWidth, boxWidth int, isFirstInLine bool) int {
	dx := Centered(glyphWidth, boxWidth)
	normalized := Normalize(ch)
	dx += round(float64(boxWidth) * t.Lookup(normalized))
	if !isFirstInLine && IsNarrowVertical(normalized) {
		dx += round(float64(boxWidth) * KerningShift)
	}
	return dx
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// round rounds half-way values up (towards +∞).
func round(x float64) int {
	return int(math.Floor(x + 0.5))
}
