/*
Package otquery queries metrics and other information from OpenType fonts.

Clients use it to describe a font before converting it: its type, its names,
its vertical metrics at a given pixel size, and which code-points of the
Basic Multilingual Plane it covers. All queries go through the font's SFNT
container and do not rasterize any glyph.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package otquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontbin.font'
func tracer() tracing.Trace {
	return tracing.Select("fontbin.font")
}
