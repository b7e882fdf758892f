package font

import (
	"path/filepath"
	"testing"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/glyph"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.font")
	defer teardown()
	//
	f := FallbackFont()
	require.NotNil(t, f)
	assert.Equal(t, "Go", f.Family)
	assert.Equal(t, "Regular", f.Style)
	assert.True(t, f == FallbackFont(), "fallback font should be loaded once")
}

func TestTypeCaseLoadGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.font")
	defer teardown()
	//
	tc, err := FallbackFont().PrepareCase(24)
	require.NoError(t, err)
	assert.Equal(t, 24, tc.PixelSize())
	glyphs, err := tc.LoadGlyphs([]rune{'A', ' ', 0x4E00}, glyph.AntiAlias|glyph.GridFit)
	require.NoError(t, err)
	assert.Contains(t, glyphs, 'A')
	assert.Contains(t, glyphs, ' ')
	assert.NotContains(t, glyphs, rune(0x4E00), "missing glyphs are not in the result")
	a, err := tc.Glyph('A', glyph.AntiAlias)
	require.NoError(t, err)
	assert.Equal(t, 'A', a.Codepoint)
}

func TestInvalidPixelSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.font")
	defer teardown()
	//
	_, err := FallbackFont().PrepareCase(0)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = FallbackFont().PrepareCase(MaxPixelSize + 1)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestLoadMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.font")
	defer teardown()
	//
	_, err := LoadOpenTypeFont(filepath.Join(t.TempDir(), "nope.ttf"))
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = ParseOpenTypeFont([]byte("not a font"))
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestNilTypeCase(t *testing.T) {
	var tc *TypeCase
	_, err := tc.LoadGlyphs([]rune{'A'}, 0)
	assert.Equal(t, core.ERASTER, core.Code(err))
}
