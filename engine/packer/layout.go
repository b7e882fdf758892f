/*
Package packer serializes monochrome glyph boxes into a flat font blob.

A blob holds one block of CharBytes bytes for every code-point of the Basic
Multilingual Plane (0x0000–0xFFFF), at offset codepoint × CharBytes. There is
no header: a consumer has to know width, height and orientation of the boxes.

In horizontal orientation, each box row occupies WidthBytes bytes, the leftmost
pixel of a row being the most significant bit of its first byte. In vertical
orientation, the roles of rows and columns are swapped: each box column starts
at x × WidthBytes, the topmost pixel of a column being the most significant bit.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package packer

import (
	"fmt"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/glyph"
)

// CodepointCount is the number of code-points covered by a blob.
const CodepointCount = 0x10000

// Layout describes the binary layout of a font blob.
type Layout struct {
	Width, Height int
	Orientation   glyph.Orientation
}

// Validate checks the box dimensions of the layout.
func (l Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return core.Error(core.EINVALID, "blob layout needs positive dimensions, has %d×%d",
			l.Width, l.Height)
	}
	return nil
}

// WidthBytes is the number of bytes per box row, ⌈W/8⌉.
func (l Layout) WidthBytes() int {
	return (l.Width + 7) / 8
}

// CharBytes is the number of bytes per code-point block.
func (l Layout) CharBytes() int {
	return l.WidthBytes() * l.Height
}

// BlobSize is the total size of a blob in bytes.
func (l Layout) BlobSize() int {
	return l.CharBytes() * CodepointCount
}

// Offset returns the position of the block for code-point cp.
func (l Layout) Offset(cp rune) int {
	return int(cp) * l.CharBytes()
}

// VerticalLossless reports if every pixel of a box maps to a bit of its own in
// vertical orientation. Vertical packing uses the same column stride and block
// size as horizontal packing, which is ⌈W/8⌉ bytes per column. A column needs
// ⌈H/8⌉ bytes, so if this exceeds the stride, neighbouring columns overlap
// and pixel (x, y+8) shares its bit with pixel (x+1, y). The last column must
// fit into the block as well. Horizontal layouts are always lossless.
func (l Layout) VerticalLossless() bool {
	if l.Orientation != glyph.Vertical {
		return true
	}
	colBytes := (l.Height + 7) / 8
	return colBytes <= l.WidthBytes() && (l.Width-1)*l.WidthBytes()+colBytes <= l.CharBytes()
}

// Filename is the conventional file name of a blob with this layout.
func (l Layout) Filename() string {
	return fmt.Sprintf("font_%dx%d.bin", l.Width, l.Height)
}

func (l Layout) String() string {
	return fmt.Sprintf("%d×%d %s (%d bytes/char)", l.Width, l.Height, l.Orientation, l.CharBytes())
}

// bitPos returns byte index (relative to the block) and bit mask for pixel (x, y).
func (l Layout) bitPos(x, y int) (int, byte) {
	if l.Orientation == glyph.Vertical {
		return x*l.WidthBytes() + y/8, 1 << (7 - uint(y%8))
	}
	return y*l.WidthBytes() + x/8, 1 << (7 - uint(x%8))
}
