/*
Package compositor renders glyph bitmaps into fixed-size monochrome boxes.

Every glyph is drawn into a box of W×H pixels, sitting on a baseline at 75% of
the box height and positioned horizontally by package placement. Pixels with a
coverage above a threshold become ink, everything else is background. Parts of
a glyph which fall outside of the box are clipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package compositor

import (
	"math"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/glyph"
	"github.com/npillmayer/fontbin/engine/placement"
)

// BaselineRatio is the relative position of the baseline from the top of a box.
const BaselineRatio = 0.75

// BoxSpec describes the boxes of a conversion run. It is derived once from the
// settings and must not change during a run.
type BoxSpec struct {
	Width, Height int
	Border        bool              // draw a 1-pixel frame around every box
	Threshold     uint8             // coverage above Threshold is ink
	Orientation   glyph.Orientation // write order when packing
	OpticalAlign  bool              // use optical offsets instead of plain centering
	Offsets       *placement.OffsetTable
}

// Validate checks the box dimensions.
func (spec BoxSpec) Validate() error {
	if spec.Width <= 0 || spec.Height <= 0 {
		return core.Error(core.EINVALID, "box dimensions must be positive, are %d×%d",
			spec.Width, spec.Height)
	}
	return nil
}

// Baseline returns the y-coordinate of the baseline within a box.
func (spec BoxSpec) Baseline() int {
	return int(math.Floor(float64(spec.Height)*BaselineRatio + 0.5))
}

// RenderBox renders a glyph bitmap into a new box, shifted horizontally by dx.
// g may be nil, which renders an empty box (possibly with a border).
// The resulting grid is always of size spec.Width × spec.Height.
func RenderBox(g *glyph.Bitmap, spec BoxSpec, dx int) *glyph.InkGrid {
	box := glyph.NewInkGrid(spec.Width, spec.Height)
	if spec.Border {
		drawBorder(box)
	}
	if g.IsBlank() {
		return box
	}
	dy := spec.Baseline() - g.Top
	for y := 0; y < g.Rows; y++ {
		if dy+y < 0 || dy+y >= spec.Height {
			continue
		}
		for x := 0; x < g.Width; x++ {
			if g.AlphaAt(x, y) > spec.Threshold {
				box.Set(dx+x, dy+y) // clips silently
			}
		}
	}
	return box
}

func drawBorder(box *glyph.InkGrid) {
	w, h := box.Width(), box.Height()
	for x := 0; x < w; x++ {
		box.Set(x, 0)
		box.Set(x, h-1)
	}
	for y := 0; y < h; y++ {
		box.Set(0, y)
		box.Set(w-1, y)
	}
}

// Place returns the horizontal offset of glyph g in a box.
// Without optical alignment, glyphs are centered geometrically.
func Place(g *glyph.Bitmap, spec BoxSpec, isFirstInLine bool) int {
	if g.IsBlank() {
		return 0
	}
	if !spec.OpticalAlign {
		return placement.Centered(g.Width, spec.Width)
	}
	return placement.ComputeOffset(spec.Offsets, g.Codepoint, g.Width, spec.Width, isFirstInLine)
}

// Composite places and renders glyph g. For atlas generation isFirstInLine
// must be true, as there is no line context.
func Composite(g *glyph.Bitmap, spec BoxSpec, isFirstInLine bool) *glyph.InkGrid {
	return RenderBox(g, spec, Place(g, spec, isFirstInLine))
}
