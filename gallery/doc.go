/*
Package gallery manages a local gallery of converted fonts.

A gallery is a directory with one sub-directory per submission. A submission
bundle contains

	metadata.json     – family, style, box size, submitter, etc.
	preview.png       – rendering of the preview text
	font_WxH.bin      – the packed font blob

Directory names are slugs derived from family, style and submission time.
An index file (index.json) lists all bundles, both as a flat list and as a
tree grouped by family and style.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package gallery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontbin.gallery'
func tracer() tracing.Trace {
	return tracing.Select("fontbin.gallery")
}
