/*
Package raster renders glyph outlines of SFNT fonts into alpha bitmaps.

Outlines are loaded from golang.org/x/image/font/sfnt at a given pixel size and
filled with golang.org/x/image/vector. The resulting bitmaps follow the FreeType
conventions: the mask is cropped to the outline's pixel bounds, and the distance
from the baseline to the top row is reported as Bitmap.Top.

Load flags select between grayscale coverage and monochrome output, and between
plain and grid-fitted outlines. Grid fitting runs the font's TrueType bytecode
hinter (github.com/golang/freetype/truetype with full hinting). Fonts without
glyf outlines, like CFF flavoured OpenType or font collections, have no
TrueType hinter and are always rendered from their plain sfnt outlines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package raster

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontbin.font'
func tracer() tracing.Trace {
	return tracing.Select("fontbin.font")
}
