/*
Package font is for typeface and font handling.

We stick to the nomenclature of typesetting:

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Helvetica regular".

* A "typecase" is a scaled font, i.e. a font prepared for rendering at a
certain pixel size. The name is reminiscent of the wooden boxes of
typesetters in the era of metal type.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

A typecase is the session object for glyph rendering: it owns the rasterizer
state for its font and size and serializes all calls to it. Clients pass a
typecase explicitly to every operation which needs glyphs, there is no global
"current font".

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"os"
	"sync"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/font/raster"
	"github.com/npillmayer/fontbin/core/glyph"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'fontbin.font'
func tracer() tracing.Trace {
	return tracing.Select("fontbin.font")
}

// Limits for the pixel size of typecases.
const (
	MinPixelSize = 1
	MaxPixelSize = 1024
)

// ScalableFont is a parsed OpenType or TrueType font.
type ScalableFont struct {
	Fontname string     // full font name
	Family   string     // family name, e.g. "Go"
	Style    string     // subfamily name, e.g. "Regular"
	Filepath string     // file path, if loaded from a file
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont loads and parses a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses font data. The data must not be modified while the
// font is in use.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font data")
	}
	var buf sfnt.Buffer
	f.Fontname, _ = f.SFNT.Name(&buf, sfnt.NameIDFull)
	f.Family, _ = f.SFNT.Name(&buf, sfnt.NameIDFamily)
	f.Style, _ = f.SFNT.Name(&buf, sfnt.NameIDSubfamily)
	if f.Family == "" {
		f.Family = f.Fontname
	}
	if f.Style == "" {
		f.Style = "Regular"
	}
	tracer().Debugf("parsed font %q (%s %s)", f.Fontname, f.Family, f.Style)
	return
}

// PrepareCase creates a typecase of the font at a size of pixelSize pixels
// per em.
func (sf *ScalableFont) PrepareCase(pixelSize int) (*TypeCase, error) {
	if pixelSize < MinPixelSize || pixelSize > MaxPixelSize {
		return nil, core.Error(core.EINVALID, "pixel size must be %d ≤ size ≤ %d, is %d",
			MinPixelSize, MaxPixelSize, pixelSize)
	}
	r, err := raster.New(sf.SFNT, sf.Binary, pixelSize)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot set up rasterizer for %s", sf.Fontname)
	}
	return &TypeCase{
		scalableFontParent: sf,
		size:               pixelSize,
		raster:             r,
	}, nil
}

// TypeCase is a font prepared for rendering at a fixed pixel size.
// It implements glyph.Rasterizer and is safe for concurrent use, although
// calls are serialized.
type TypeCase struct {
	sync.Mutex
	scalableFontParent *ScalableFont
	size               int
	raster             *raster.Rasterizer
}

var _ glyph.Rasterizer = (*TypeCase)(nil)

// ScalableFontParent returns the font this typecase has been derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// PixelSize returns the pixels per em of the typecase.
func (tc *TypeCase) PixelSize() int {
	return tc.size
}

// LoadGlyphs renders glyphs for a set of code-points. Code-points not
// covered by the font are missing from the result.
func (tc *TypeCase) LoadGlyphs(codepoints []rune, flags glyph.LoadFlags) (map[rune]*glyph.Bitmap, error) {
	if tc == nil || tc.raster == nil {
		return nil, core.Error(core.ERASTER, "typecase has no font loaded")
	}
	tc.Lock()
	defer tc.Unlock()
	glyphs := make(map[rune]*glyph.Bitmap, len(codepoints))
	for _, cp := range codepoints {
		bmp, err := tc.raster.Glyph(cp, flags)
		if err != nil {
			return nil, core.WrapError(err, core.ERASTER, "cannot render U+%04X of %s",
				cp, tc.scalableFontParent.Fontname)
		}
		if bmp != nil {
			glyphs[cp] = bmp
		}
	}
	return glyphs, nil
}

// Glyph renders a single glyph. It returns nil if the font has no glyph for cp.
func (tc *TypeCase) Glyph(cp rune, flags glyph.LoadFlags) (*glyph.Bitmap, error) {
	glyphs, err := tc.LoadGlyphs([]rune{cp}, flags)
	if err != nil {
		return nil, err
	}
	return glyphs[cp], nil
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else fails. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else fails.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	gofont, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	gofont.Filepath = "internal"
	return gofont
}
