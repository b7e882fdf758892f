/*
Package fontregistry manages a registry for loaded fonts and their typecases.

Typecases are cached per normalized font name and pixel size. Looking up a font
which has not been stored yields a typecase of the fallback font, together with
an error, so clients can always go on rendering something.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontbin.font'
func tracer() tracing.Trace {
	return tracing.Select("fontbin.font")
}
