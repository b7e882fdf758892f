/*
Package placement computes the horizontal position of a glyph within its box.

Geometric centering of glyphs in fixed-width boxes looks unbalanced: round
glyphs (O, 0, parentheses) carry their visual mass in the middle and appear
shifted to the right, glyphs with a wide top and a narrow base (T, Y, V) leave
air beneath them. An optical offset table corrects for this with a small
shift, expressed as a fraction of the box width.

Narrow vertical glyphs (l, i, 1, …) additionally receive a pseudo-kerning shift
to the left whenever they are not the first glyph in a line. Atlas generation
has no line context, so it always places glyphs as first in line.

Offset tables are configuration data. They come as named presets, "fine" being
the default.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package placement
