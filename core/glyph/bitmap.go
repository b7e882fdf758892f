package glyph

import "strings"

// Bitmap is an alpha bitmap of a single rendered glyph, as produced by a
// rasterizer. Alpha holds one byte per pixel, row by row, Width bytes per row.
//
// Top is the distance from the baseline up to the glyph's topmost pixel row
// (the FreeType 'bitmap_top' convention). Glyphs descending below the
// baseline may have a Top smaller than Rows.
type Bitmap struct {
	Codepoint rune
	Width     int
	Rows      int
	Top       int
	Alpha     []byte
}

// IsBlank returns true if the bitmap has no extent, as for a space character.
func (b *Bitmap) IsBlank() bool {
	return b == nil || b.Width <= 0 || b.Rows <= 0 || len(b.Alpha) < b.Width*b.Rows
}

// AlphaAt returns the coverage at (x, y), or 0 outside the bitmap.
func (b *Bitmap) AlphaAt(x, y int) uint8 {
	if b.IsBlank() || x < 0 || y < 0 || x >= b.Width || y >= b.Rows {
		return 0
	}
	return b.Alpha[y*b.Width+x]
}

// LoadFlags select rendering modes of a rasterizer. They are passed opaquely
// from the settings to the rasterizer.
type LoadFlags uint8

const (
	// AntiAlias requests grayscale coverage values. Without it, a rasterizer
	// delivers monochrome bitmaps with alpha values of either 0 or 255.
	AntiAlias LoadFlags = 1 << iota
	// GridFit requests outlines to be fitted to the pixel grid before rendering.
	GridFit
)

// Has checks if flag f is set.
func (flags LoadFlags) Has(f LoadFlags) bool {
	return flags&f != 0
}

func (flags LoadFlags) String() string {
	var s []string
	if flags.Has(AntiAlias) {
		s = append(s, "anti-alias")
	} else {
		s = append(s, "mono")
	}
	if flags.Has(GridFit) {
		s = append(s, "grid-fit")
	} else {
		s = append(s, "no-hinting")
	}
	return strings.Join(s, "|")
}

// Rasterizer is the interface to an engine which renders glyphs for a loaded
// font at a fixed pixel size.
//
// LoadGlyphs returns a bitmap for every code-point the font maps to a glyph.
// Code-points without a glyph are absent from the result map; this is not an
// error. An error signals a failure of the rasterizer itself.
type Rasterizer interface {
	LoadGlyphs(codepoints []rune, flags LoadFlags) (map[rune]*Bitmap, error)
}
