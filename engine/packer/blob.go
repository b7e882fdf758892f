package packer

import (
	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/glyph"
)

// Blob is a packed font: a flat buffer of Layout.BlobSize bytes.
type Blob struct {
	layout Layout
	data   []byte
}

// NewBlob allocates a zero-filled blob. The layout is validated before allocation.
func NewBlob(layout Layout) (*Blob, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &Blob{layout: layout, data: make([]byte, layout.BlobSize())}, nil
}

// WrapBlob interprets existing data as a blob, e.g. one read from a file.
// The size of data must match the layout.
func WrapBlob(layout Layout, data []byte) (*Blob, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if len(data) != layout.BlobSize() {
		return nil, core.Error(core.EINVALID, "blob has %d bytes, layout %v needs %d",
			len(data), layout, layout.BlobSize())
	}
	return &Blob{layout: layout, data: data}, nil
}

// Layout returns the blob's layout.
func (b *Blob) Layout() Layout {
	return b.layout
}

// Bytes returns the blob's data. Clients must not modify it.
func (b *Blob) Bytes() []byte {
	return b.data
}

// Block returns the bytes for code-point cp, or nil if cp is out of range.
func (b *Blob) Block(cp rune) []byte {
	if cp < 0 || cp >= CodepointCount {
		return nil
	}
	off := b.layout.Offset(cp)
	return b.data[off : off+b.layout.CharBytes()]
}

// Pack writes an ink grid into the block of code-point cp. Bits are only ever
// set, so packing into a fresh block leaves all background pixels at zero.
// The grid must match the layout's box size.
func (b *Blob) Pack(grid *glyph.InkGrid, cp rune) error {
	block := b.Block(cp)
	if block == nil {
		return core.Error(core.EINVALID, "code-point U+%04X outside of blob range", cp)
	}
	if grid.Width() != b.layout.Width || grid.Height() != b.layout.Height {
		return core.Error(core.EINVALID, "grid of size %d×%d does not fit layout %v",
			grid.Width(), grid.Height(), b.layout)
	}
	PackBlock(block, grid, b.layout)
	return nil
}

// Unpack decodes the block of code-point cp into an ink grid.
func (b *Blob) Unpack(cp rune) (*glyph.InkGrid, error) {
	block := b.Block(cp)
	if block == nil {
		return nil, core.Error(core.EINVALID, "code-point U+%04X outside of blob range", cp)
	}
	return UnpackBlock(block, b.layout), nil
}

// PackBlock sets the bits for the ink pixels of grid in block, which must be
// of size layout.CharBytes(). Pixels not addressable within the block (see
// Layout.VerticalLossless) are dropped.
func PackBlock(block []byte, grid *glyph.InkGrid, layout Layout) {
	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			if !grid.At(x, y) {
				continue
			}
			i, mask := layout.bitPos(x, y)
			if i < len(block) {
				block[i] |= mask
			}
		}
	}
}

// UnpackBlock is the inverse of PackBlock.
func UnpackBlock(block []byte, layout Layout) *glyph.InkGrid {
	grid := glyph.NewInkGrid(layout.Width, layout.Height)
	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			i, mask := layout.bitPos(x, y)
			if i < len(block) && block[i]&mask != 0 {
				grid.Set(x, y)
			}
		}
	}
	return grid
}
