package raster

import (
	"errors"
	"image"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"github.com/npillmayer/fontbin/core/glyph"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// MonoThreshold is the coverage at or above which a pixel is set in monochrome mode.
const MonoThreshold = 128

// Rasterizer renders glyphs of one font at one pixel size.
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	font  *sfnt.Font
	ppem  fixed.Int26_6
	buf   sfnt.Buffer
	vec   vector.Rasterizer
	pxoff fixed.Point26_6 // shifts outline points into the positive quadrant
	hint  font.Face       // hinted TrueType face, nil for non-glyf fonts
}

// New creates a rasterizer for font f at a size of pixelSize pixels per em.
//
// data are the raw bytes f has been parsed from. If data is a TrueType font,
// grid-fitted glyphs are produced by the TrueType hinter. data may be nil, in
// which case glyphs are never hinted.
func New(f *sfnt.Font, data []byte, pixelSize int) (*Rasterizer, error) {
	if f == nil {
		return nil, errors.New("raster: font is nil")
	}
	if pixelSize <= 0 {
		return nil, errors.New("raster: pixel size must be positive")
	}
	r := &Rasterizer{
		font: f,
		ppem: fixed.I(pixelSize),
	}
	if data != nil {
		if ttf, err := truetype.Parse(data); err == nil {
			// at 72 DPI one point is one pixel
			r.hint = truetype.NewFace(ttf, &truetype.Options{
				Size:    float64(pixelSize),
				DPI:     72,
				Hinting: font.HintingFull,
			})
		} else {
			tracer().Debugf("font has no TrueType hinter: %v", err)
		}
	}
	return r, nil
}

// Hinting reports if grid-fitted glyphs are produced by a TrueType hinter.
func (r *Rasterizer) Hinting() bool {
	return r.hint != nil
}

// PixelSize returns the number of pixels per em.
func (r *Rasterizer) PixelSize() int {
	return r.ppem.Round()
}

// Glyph renders the glyph for code-point cp.
//
// If the font does not map cp to a glyph, Glyph returns (nil, nil). Glyphs
// without an outline (e.g. spaces) result in a blank bitmap.
// Color glyphs (bitmap fonts) are treated like missing glyphs.
func (r *Rasterizer) Glyph(cp rune, flags glyph.LoadFlags) (*glyph.Bitmap, error) {
	gid, err := r.font.GlyphIndex(&r.buf, cp)
	if err != nil {
		return nil, err
	}
	if gid == 0 {
		return nil, nil
	}
	segs, err := r.font.LoadGlyph(&r.buf, gid, r.ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			tracer().Debugf("U+%04X is a color glyph, skipped", cp)
			return nil, nil
		}
		return nil, err
	}
	bmp := &glyph.Bitmap{Codepoint: cp}
	if len(segs) == 0 {
		return bmp, nil
	}
	if flags.Has(glyph.GridFit) && r.hint != nil {
		if mask, top, ok := r.hinted(cp); ok {
			return finish(bmp, mask, top, flags), nil
		}
	}
	min, max := outlineBounds(segs)
	// mask rectangle in whole pixels, y-down, relative to the pen position
	x0, y0 := min.X.Floor(), min.Y.Floor()
	x1, y1 := max.X.Ceil(), max.Y.Ceil()
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return bmp, nil
	}
	r.pxoff = fixed.Point26_6{X: -fixed.I(x0), Y: -fixed.I(y0)}
	r.vec.Reset(w, h)
	r.vec.DrawOp = draw.Src
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.process(segs)
	// the source is uniform, so the sample point is irrelevant
	r.vec.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return finish(bmp, mask, -y0, flags), nil
}

// hinted renders cp through the TrueType hinter. The returned mask starts at
// the glyph's top-left pixel, top is the distance from baseline to top row.
func (r *Rasterizer) hinted(cp rune) (*image.Alpha, int, bool) {
	dr, src, sp, _, ok := r.hint.Glyph(fixed.Point26_6{}, cp)
	if !ok || dr.Empty() {
		return nil, 0, false
	}
	// src is owned by the face and overwritten by the next call
	mask := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.Draw(mask, mask.Bounds(), src, sp, draw.Src)
	return mask, -dr.Min.Y, true
}

// finish copies mask into bmp, applying the monochrome threshold unless
// anti-aliasing is requested.
func finish(bmp *glyph.Bitmap, mask *image.Alpha, top int, flags glyph.LoadFlags) *glyph.Bitmap {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	bmp.Width, bmp.Rows = w, h
	bmp.Top = top
	bmp.Alpha = make([]byte, w*h)
	mono := !flags.Has(glyph.AntiAlias)
	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		dst := bmp.Alpha[y*w : (y+1)*w]
		for x, a := range row {
			if mono {
				if a >= MonoThreshold {
					a = 0xff
				} else {
					a = 0
				}
			}
			dst[x] = a
		}
	}
	return bmp
}

func (r *Rasterizer) process(segs sfnt.Segments) {
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			x, y := r.toFloat(seg.Args[0])
			r.vec.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := r.toFloat(seg.Args[0])
			r.vec.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := r.toFloat(seg.Args[0])
			x, y := r.toFloat(seg.Args[1])
			r.vec.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := r.toFloat(seg.Args[0])
			c2x, c2y := r.toFloat(seg.Args[1])
			x, y := r.toFloat(seg.Args[2])
			r.vec.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	r.vec.ClosePath()
}

func (r *Rasterizer) toFloat(p fixed.Point26_6) (float32, float32) {
	return float32(p.X+r.pxoff.X) / 64, float32(p.Y+r.pxoff.Y) / 64
}

// outlineBounds includes control points, as sfnt.Segments.Bounds does.
func outlineBounds(segs sfnt.Segments) (min, max fixed.Point26_6) {
	first := true
	for _, seg := range segs {
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpQuadTo:
			n = 2
		case sfnt.SegmentOpCubeTo:
			n = 3
		}
		for _, p := range seg.Args[:n] {
			if first {
				min, max = p, p
				first = false
				continue
			}
			if p.X < min.X {
				min.X = p.X
			}
			if p.Y < min.Y {
				min.Y = p.Y
			}
			if p.X > max.X {
				max.X = p.X
			}
			if p.Y > max.Y {
				max.Y = p.Y
			}
		}
	}
	return
}
