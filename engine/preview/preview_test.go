package preview

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/font"
	"github.com/npillmayer/fontbin/core/glyph"
	"github.com/npillmayer/fontbin/engine/compositor"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockSession renders every code-point in known as a 1×1 dot.
type blockSession struct {
	known string
}

func (s blockSession) LoadGlyphs(cps []rune, flags glyph.LoadFlags) (map[rune]*glyph.Bitmap, error) {
	m := make(map[rune]*glyph.Bitmap)
	for _, cp := range cps {
		for _, k := range s.known {
			if k == cp {
				m[cp] = &glyph.Bitmap{Codepoint: cp, Width: 1, Rows: 1, Top: 1, Alpha: []byte{255}}
			}
		}
	}
	return m, nil
}

var box4 = compositor.BoxSpec{Width: 4, Height: 4, Threshold: 127}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "", "c"}, SplitLines("a\nb\r\n\nc"))
	assert.Equal(t, []string{""}, SplitLines(""))
}

func TestRenderTextSkipsMissingGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.engine")
	defer teardown()
	//
	img, err := RenderText(blockSession{known: "ab"}, box4, 0, "a?b\nb", 0)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx(), "two glyphs in the widest line")
	assert.Equal(t, 8, img.Bounds().Dy())
	// dot centered at x=1, baseline 3 with top 1 gives y=2
	assert.Equal(t, Ink, img.GrayAt(1, 2))
	assert.Equal(t, Ink, img.GrayAt(5, 2), "'?' must not advance the pen")
	assert.Equal(t, Ink, img.GrayAt(1, 6))
	assert.Equal(t, Paper, img.GrayAt(5, 6))
	assert.Equal(t, Paper, img.GrayAt(0, 0))
}

func TestRenderTextCutsLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.engine")
	defer teardown()
	//
	img, err := RenderText(blockSession{known: "x"}, box4, 0, "xxx", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, Ink, img.GrayAt(5, 2))
	assert.Equal(t, Paper, img.GrayAt(9, 2), "third box does not fit")
}

func TestRenderErrors(t *testing.T) {
	_, err := RenderText(blockSession{}, compositor.BoxSpec{}, 0, "x", 0)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = RenderGlyph(nil, box4, 0, 'x')
	assert.Equal(t, core.EINVALID, core.Code(err))
	g, err := RenderGlyph(blockSession{}, box4, 0, 'x')
	assert.NoError(t, err)
	assert.Nil(t, g)
}

func TestRenderGlyphVertical(t *testing.T) {
	spec := compositor.BoxSpec{Width: 4, Height: 4, Threshold: 127, Orientation: glyph.Vertical}
	g, err := RenderGlyph(blockSession{known: "x"}, spec, 0, 'x')
	require.NoError(t, err)
	// (1,2) rotated counterclockwise lands on (2,2)
	want := []string{
		"    ",
		"    ",
		"  X ",
		"    ",
	}
	if diff := cmp.Diff(want, g.Rows()); diff != "" {
		t.Errorf("rotated glyph mismatch (-want +got):\n%s", diff)
	}
}

func TestRotateCCW(t *testing.T) {
	grid := glyph.ParseInkGrid(
		"XX.",
		"...",
	)
	want := []string{
		"  ",
		"X ",
		"X ",
	}
	assert.Equal(t, want, RotateCCW(grid).Rows())
}

func TestDump(t *testing.T) {
	grid := glyph.ParseInkGrid("X..", ".XX")
	assert.Equal(t, grid.Rows(), Dump(GridImage(grid)))
}

func TestZoomAndPNG(t *testing.T) {
	img := GridImage(glyph.ParseInkGrid("X.", ".X"))
	z := Zoom(img, 3)
	assert.Equal(t, 6, z.Bounds().Dx())
	assert.Equal(t, Ink, z.GrayAt(2, 2))
	assert.Equal(t, Paper, z.GrayAt(3, 2))
	assert.Equal(t, Ink, z.GrayAt(5, 5))
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, z))
	back, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, z.Bounds(), back.Bounds())
	//
	fname := filepath.Join(t.TempDir(), "preview.png")
	require.NoError(t, WritePNG(fname, img))
	assert.Error(t, WritePNG(filepath.Join(t.TempDir(), "no", "such", "dir.png"), img))
}

func TestRenderWithFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.engine")
	defer teardown()
	//
	tc, err := font.FallbackFont().PrepareCase(20)
	require.NoError(t, err)
	img, err := RenderText(tc, compositor.BoxSpec{Width: 20, Height: 20, Threshold: 127},
		glyph.AntiAlias|glyph.GridFit, "Hi", 0)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	ink := 0
	for _, p := range img.Pix {
		if p == 0 {
			ink++
		}
	}
	assert.Greater(t, ink, 20)
}
