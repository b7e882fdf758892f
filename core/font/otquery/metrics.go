package otquery

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// bmpSize is the number of code-points of the Basic Multilingual Plane.
const bmpSize = 0x10000

// FontMetricsInfo contains selected vertical metrics of a font, in pixels
// at a given size.
type FontMetricsInfo struct {
	PixelSize  int
	UnitsPerEm sfnt.Units
	Ascent     int // distance from baseline to the top of the font's glyphs
	Descent    int // distance from baseline to the bottom, positive downwards
	LineHeight int
	XHeight    int
	CapHeight  int
	GlyphCount int // number of glyphs in the font, including .notdef
}

// FontMetrics retrieves selected metrics of a font at a pixel size.
func FontMetrics(f *font.ScalableFont, pixelSize int) (FontMetricsInfo, error) {
	metrics := FontMetricsInfo{PixelSize: pixelSize}
	if f == nil || f.SFNT == nil {
		return metrics, core.Error(core.EINVALID, "no font to query")
	}
	if pixelSize < font.MinPixelSize || pixelSize > font.MaxPixelSize {
		return metrics, core.Error(core.EINVALID, "pixel size out of range: %d", pixelSize)
	}
	var buf sfnt.Buffer
	m, err := f.SFNT.Metrics(&buf, fixed.I(pixelSize), xfont.HintingFull)
	if err != nil {
		return metrics, core.WrapError(err, core.EINVALID, "cannot read metrics of %s", f.Fontname)
	}
	metrics.UnitsPerEm = f.SFNT.UnitsPerEm()
	metrics.Ascent = m.Ascent.Ceil()
	metrics.Descent = m.Descent.Ceil()
	metrics.LineHeight = m.Height.Ceil()
	metrics.XHeight = m.XHeight.Ceil()
	metrics.CapHeight = m.CapHeight.Ceil()
	metrics.GlyphCount = f.SFNT.NumGlyphs()
	tracer().Debugf("metrics of %s at %dpx: %+v", f.Fontname, pixelSize, metrics)
	return metrics, nil
}

// --- Glyph Routines --------------------------------------------------------

// GlyphIndex returns the glyph index for a give code-point.
// If the code-point cannot be found, 0 is returned.
//
// From the OpenType specification: character codes that do not correspond to any glyph in
// the font should be mapped to glyph index 0. The glyph at this location must be a special
// glyph representing a missing character, commonly known as '.notdef'.
func GlyphIndex(f *font.ScalableFont, codepoint rune) sfnt.GlyphIndex {
	if f == nil || f.SFNT == nil {
		return 0
	}
	var buf sfnt.Buffer
	gid, err := f.SFNT.GlyphIndex(&buf, codepoint)
	if err != nil {
		return 0
	}
	return gid
}

// Coverage returns the set of code-points of the Basic Multilingual Plane
// which the font maps to a glyph other than .notdef.
func Coverage(f *font.ScalableFont) *bitset.BitSet {
	cover := bitset.New(bmpSize)
	if f == nil || f.SFNT == nil {
		return cover
	}
	var buf sfnt.Buffer
	for cp := 0; cp < bmpSize; cp++ {
		if gid, err := f.SFNT.GlyphIndex(&buf, rune(cp)); err == nil && gid != 0 {
			cover.Set(uint(cp))
		}
	}
	return cover
}

// Block is a named range of code-points.
type Block struct {
	Name     string
	From, To rune // inclusive
}

// Blocks is a selection of Unicode blocks relevant for Latin, Greek,
// Cyrillic and CJK text.
var Blocks = []Block{
	{"Basic Latin", 0x0000, 0x007F},
	{"Latin-1 Supplement", 0x0080, 0x00FF},
	{"Latin Extended-A", 0x0100, 0x017F},
	{"Latin Extended-B", 0x0180, 0x024F},
	{"Greek and Coptic", 0x0370, 0x03FF},
	{"Cyrillic", 0x0400, 0x04FF},
	{"General Punctuation", 0x2000, 0x206F},
	{"Box Drawing", 0x2500, 0x257F},
	{"CJK Symbols and Punctuation", 0x3000, 0x303F},
	{"Hiragana", 0x3040, 0x309F},
	{"Katakana", 0x30A0, 0x30FF},
	{"CJK Unified Ideographs", 0x4E00, 0x9FFF},
	{"Hangul Syllables", 0xAC00, 0xD7AF},
	{"Halfwidth and Fullwidth Forms", 0xFF00, 0xFFEF},
}

// BlockCoverage counts the code-points of block b contained in cover.
func BlockCoverage(cover *bitset.BitSet, b Block) int {
	n := 0
	for cp := b.From; cp <= b.To; cp++ {
		if cover.Test(uint(cp)) {
			n++
		}
	}
	return n
}
