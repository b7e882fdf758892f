/*
Package atlas converts a font into a packed glyph blob covering the Basic
Multilingual Plane.

A Driver walks all 65536 code-points in batches. For each batch it fetches
glyphs from a rasterizer session, composites every glyph into a box and packs
the box into the blob. Code-points without a glyph keep an all-zero block.
Conversion may be driven step by step (one batch per call to Step) or run to
completion with Run, which stops at batch boundaries if its context is
canceled.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package atlas

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontbin.engine'
func tracer() tracing.Trace {
	return tracing.Select("fontbin.engine")
}
