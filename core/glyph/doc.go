/*
Package glyph holds the data types exchanged between a glyph rasterizer and the
box compositing and packing engine.

A rasterizer hands out alpha bitmaps for code-points (type Bitmap). The engine
turns each of them into a binary ink grid of fixed box size (type InkGrid), which
is then packed into a font blob in either horizontal or vertical orientation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package glyph
