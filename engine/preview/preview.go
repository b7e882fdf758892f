/*
Package preview renders sample text and single glyphs the way they will look
in a packed font blob.

Every glyph is composited into its own box, exactly as for the blob, and boxes
are set side by side without kerning. Lines of text are stacked with the box
height as line distance.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package preview

import (
	"image"
	"image/color"
	"regexp"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/glyph"
	"github.com/npillmayer/fontbin/engine/compositor"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/draw"
)

// tracer writes to trace with key 'fontbin.engine'
func tracer() tracing.Trace {
	return tracing.Select("fontbin.engine")
}

// Colors of preview images.
var (
	Paper = color.Gray{Y: 0xff}
	Ink   = color.Gray{Y: 0x00}
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// SplitLines splits a text at line breaks (LF or CR LF).
func SplitLines(text string) []string {
	return lineBreak.Split(text, -1)
}

// RenderText renders text into a gray image of the given width. If width is
// 0, the image is as wide as the longest line. The image is as high as the
// number of lines times the box height.
//
// Code-points without a glyph are skipped and do not advance the pen. A line
// is cut off at the first box which would not fit into width completely.
func RenderText(session glyph.Rasterizer, spec compositor.BoxSpec, flags glyph.LoadFlags,
	text string, width int) (*image.Gray, error) {
	//
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if session == nil {
		return nil, core.Error(core.EINVALID, "preview needs a rasterizer session")
	}
	lines := SplitLines(text)
	glyphs, err := session.LoadGlyphs(distinct(lines), flags)
	if err != nil {
		return nil, core.WrapError(err, core.ERASTER, "cannot rasterize preview text")
	}
	if width <= 0 {
		for _, line := range lines {
			n := 0
			for _, r := range line {
				if _, ok := glyphs[r]; ok {
					n++
				}
			}
			if n*spec.Width > width {
				width = n * spec.Width
			}
		}
		if width == 0 {
			width = spec.Width
		}
	}
	img := image.NewGray(image.Rect(0, 0, width, len(lines)*spec.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Paper), image.Point{}, draw.Src)
	for l, line := range lines {
		penX, penY := 0, l*spec.Height
		for i, r := range []rune(line) {
			if penX+spec.Width > width {
				break
			}
			g, ok := glyphs[r]
			if !ok || g == nil {
				continue
			}
			box := compositor.Composite(g, spec, i == 0)
			blit(img, box, penX, penY)
			penX += spec.Width
		}
	}
	tracer().Debugf("rendered %d lines of preview text into %d×%d image", len(lines),
		img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// RenderGlyph renders a single code-point into a box. Vertical boxes are
// rotated by 90° counterclockwise, as they appear on a display which is
// mounted sideways. The result is nil if the font has no glyph for cp.
func RenderGlyph(session glyph.Rasterizer, spec compositor.BoxSpec, flags glyph.LoadFlags,
	cp rune) (*glyph.InkGrid, error) {
	//
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if session == nil {
		return nil, core.Error(core.EINVALID, "preview needs a rasterizer session")
	}
	glyphs, err := session.LoadGlyphs([]rune{cp}, flags)
	if err != nil {
		return nil, core.WrapError(err, core.ERASTER, "cannot rasterize U+%04X", cp)
	}
	g, ok := glyphs[cp]
	if !ok || g == nil {
		return nil, nil
	}
	box := compositor.Composite(g, spec, true)
	if spec.Orientation == glyph.Vertical {
		box = RotateCCW(box)
	}
	return box, nil
}

// RotateCCW returns a grid rotated by 90° counterclockwise.
func RotateCCW(grid *glyph.InkGrid) *glyph.InkGrid {
	w, h := grid.Width(), grid.Height()
	rot := glyph.NewInkGrid(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if grid.At(x, y) {
				rot.Set(y, w-1-x)
			}
		}
	}
	return rot
}

// GridImage converts a grid to a gray image.
func GridImage(grid *glyph.InkGrid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, grid.Width(), grid.Height()))
	draw.Draw(img, img.Bounds(), image.NewUniform(Paper), image.Point{}, draw.Src)
	blit(img, grid, 0, 0)
	return img
}

// Dump returns an image as text, one string per row, with 'X' for dark
// pixels and a space for light ones.
func Dump(img *image.Gray) []string {
	b := img.Bounds()
	rows := make([]string, 0, b.Dy())
	line := make([]byte, b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y < 128 {
				line[x-b.Min.X] = 'X'
			} else {
				line[x-b.Min.X] = ' '
			}
		}
		rows = append(rows, string(line))
	}
	return rows
}

// Zoom scales an image by an integer factor without smoothing, keeping
// pixels sharp.
func Zoom(src image.Image, factor int) *image.Gray {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func blit(img *image.Gray, box *glyph.InkGrid, x0, y0 int) {
	for y := 0; y < box.Height(); y++ {
		for x := 0; x < box.Width(); x++ {
			if box.At(x, y) {
				img.SetGray(x0+x, y0+y, Ink)
			}
		}
	}
}

// distinct collects the code-points of all lines, without duplicates.
func distinct(lines []string) []rune {
	seen := make(map[rune]bool)
	var cps []rune
	for _, line := range lines {
		for _, r := range line {
			if !seen[r] {
				seen[r] = true
				cps = append(cps, r)
			}
		}
	}
	return cps
}
