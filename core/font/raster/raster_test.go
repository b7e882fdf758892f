package raster

import (
	"testing"

	"github.com/golang/freetype/truetype"
	"github.com/npillmayer/fontbin/core/glyph"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func goRegular(t *testing.T) *sfnt.Font {
	f, err := sfnt.Parse(goregular.TTF)
	require.NoError(t, err)
	return f
}

func TestRasterizeLetter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.font")
	defer teardown()
	//
	r, err := New(goRegular(t), goregular.TTF, 28)
	require.NoError(t, err)
	assert.Equal(t, 28, r.PixelSize())
	bmp, err := r.Glyph('A', glyph.AntiAlias|glyph.GridFit)
	require.NoError(t, err)
	require.NotNil(t, bmp)
	assert.False(t, bmp.IsBlank())
	assert.True(t, bmp.Width < 28, "capital A should be narrower than an em")
	assert.True(t, bmp.Top > 0 && bmp.Top <= 28)
	// 'A' sits on the baseline
	assert.InDelta(t, bmp.Top, bmp.Rows, 1)
	assert.Len(t, bmp.Alpha, bmp.Width*bmp.Rows)
}

func TestDescender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.font")
	defer teardown()
	//
	r, _ := New(goRegular(t), goregular.TTF, 28)
	bmp, err := r.Glyph('g', glyph.AntiAlias)
	require.NoError(t, err)
	assert.Greater(t, bmp.Rows, bmp.Top, "'g' should extend below the baseline")
}

func TestMonoOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.font")
	defer teardown()
	//
	r, _ := New(goRegular(t), goregular.TTF, 20)
	bmp, err := r.Glyph('O', 0)
	require.NoError(t, err)
	inked := 0
	for _, a := range bmp.Alpha {
		assert.True(t, a == 0 || a == 0xff, "mono bitmaps have no intermediate coverage")
		if a != 0 {
			inked++
		}
	}
	assert.Greater(t, inked, 0)
}

func TestMissingAndBlankGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.font")
	defer teardown()
	//
	r, _ := New(goRegular(t), goregular.TTF, 16)
	bmp, err := r.Glyph(0x4E00, glyph.AntiAlias)
	assert.NoError(t, err)
	assert.Nil(t, bmp, "Go fonts carry no CJK glyphs")
	bmp, err = r.Glyph(' ', glyph.AntiAlias)
	assert.NoError(t, err)
	require.NotNil(t, bmp)
	assert.True(t, bmp.IsBlank())
}

func TestInvalidSetup(t *testing.T) {
	_, err := New(nil, nil, 10)
	assert.Error(t, err)
	_, err = New(goRegular(t), goregular.TTF, 0)
	assert.Error(t, err)
}

func TestGridFitUsesTrueTypeHinter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.font")
	defer teardown()
	//
	r, err := New(goRegular(t), goregular.TTF, 13)
	require.NoError(t, err)
	require.True(t, r.Hinting())
	ttf, err := truetype.Parse(goregular.TTF)
	require.NoError(t, err)
	face := truetype.NewFace(ttf, &truetype.Options{Size: 13, DPI: 72, Hinting: font.HintingFull})
	for _, cp := range "AOgm" {
		bmp, err := r.Glyph(cp, glyph.GridFit)
		require.NoError(t, err)
		require.NotNil(t, bmp)
		dr, _, _, _, ok := face.Glyph(fixed.Point26_6{}, cp)
		require.True(t, ok)
		assert.Equal(t, dr.Dx(), bmp.Width, "%c width", cp)
		assert.Equal(t, dr.Dy(), bmp.Rows, "%c height", cp)
		assert.Equal(t, -dr.Min.Y, bmp.Top, "%c top", cp)
		for _, a := range bmp.Alpha {
			require.True(t, a == 0 || a == 0xff, "mono bitmaps have no intermediate coverage")
		}
	}
}

func TestGridFitWithoutHinter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.font")
	defer teardown()
	//
	r, err := New(goRegular(t), nil, 13)
	require.NoError(t, err)
	assert.False(t, r.Hinting())
	bmp, err := r.Glyph('A', glyph.AntiAlias|glyph.GridFit)
	require.NoError(t, err)
	require.NotNil(t, bmp)
	assert.False(t, bmp.IsBlank(), "outlines render without a hinter")
	//
	r, err = New(goRegular(t), []byte("no TrueType data"), 13)
	require.NoError(t, err)
	assert.False(t, r.Hinting())
}
