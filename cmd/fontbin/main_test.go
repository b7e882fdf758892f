package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/glyph"
	"github.com/npillmayer/fontbin/engine/packer"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCodepoint(t *testing.T) {
	for in, want := range map[string]rune{"A": 'A', "U+00C4": 0xC4, "u+4e00": 0x4E00, "0x20": ' ', "ä": 0xE4} {
		cp, err := parseCodepoint(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, cp, in)
	}
	for _, in := range []string{"AB", "U+110000", "U+XYZ", "😀"} {
		_, err := parseCodepoint(in)
		assert.Equal(t, core.EINVALID, core.Code(err), in)
	}
}

func TestOpenBlob(t *testing.T) {
	layout := packer.Layout{Width: 8, Height: 3}
	blob, err := packer.NewBlob(layout)
	require.NoError(t, err)
	require.NoError(t, blob.Pack(glyph.ParseInkGrid("X.......", "........", "X......."), 'i'))
	fname := filepath.Join(t.TempDir(), layout.Filename())
	require.NoError(t, os.WriteFile(fname, blob.Bytes(), 0644))
	back, err := openBlob(fname, 0, 0, false)
	require.NoError(t, err)
	assert.Equal(t, layout, back.Layout())
	assert.Equal(t, blob.Block('i'), back.Block('i'))
	//
	_, err = openBlob(fname, 8, 4, false)
	assert.Equal(t, core.EINVALID, core.Code(err), "size mismatch")
	other := filepath.Join(t.TempDir(), "myfont.bin")
	require.NoError(t, os.WriteFile(other, blob.Bytes(), 0644))
	_, err = openBlob(other, 0, 0, false)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestOptionFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	of := addOptionFlags(fs)
	require.NoError(t, fs.Parse([]string{"-size", "16", "-vertical", "-table", "coarse"}))
	opts, err := of.options(testconfig.Conf{})
	require.NoError(t, err)
	assert.Equal(t, 16, opts.FontSize)
	assert.True(t, opts.Vertical)
	assert.Equal(t, "coarse", opts.OffsetTable)
	assert.True(t, opts.AntiAlias)
	//
	require.NoError(t, fs.Parse([]string{"-threshold", "999"}))
	_, err = of.options(testconfig.Conf{})
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 3, exitCode(core.Error(core.EINVALID, "x")))
	assert.Equal(t, 4, exitCode(core.Error(core.EMISSING, "x")))
	assert.Equal(t, 1, exitCode(assert.AnError))
}

func TestLoadCorruptFontFails(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "Broken.ttf")
	require.NoError(t, os.WriteFile(fname, []byte("not a font at all"), 0644))
	tc, err := loadTypeCase(context.Background(), fname, 28)
	assert.Nil(t, tc)
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Equal(t, 3, exitCode(err))
}
