package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridClipping(t *testing.T) {
	g := NewInkGrid(4, 3)
	assert.True(t, g.Set(0, 0))
	assert.False(t, g.Set(4, 0))
	assert.False(t, g.Set(-1, 2))
	assert.False(t, g.Set(1, 3))
	assert.Equal(t, 1, g.Count())
	assert.False(t, g.At(9, 9))
}

func TestGridText(t *testing.T) {
	g := ParseInkGrid(
		"X  X",
		" XX ",
	)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, []string{"X  X", " XX "}, g.Rows())
	assert.Equal(t, "[X  X]\n[ XX ]\n", g.String())
	assert.True(t, g.Equal(ParseInkGrid("X  X", " XX ")))
	assert.False(t, g.Equal(ParseInkGrid("X  X", " X  ")))
}

func TestBitmapAccess(t *testing.T) {
	b := &Bitmap{Codepoint: 'x', Width: 2, Rows: 2, Alpha: []byte{0, 10, 200, 255}}
	assert.False(t, b.IsBlank())
	assert.Equal(t, uint8(200), b.AlphaAt(0, 1))
	assert.Equal(t, uint8(0), b.AlphaAt(2, 0))
	var none *Bitmap
	assert.True(t, none.IsBlank())
	assert.Equal(t, "anti-alias|grid-fit", (AntiAlias | GridFit).String())
	assert.Equal(t, "mono|no-hinting", LoadFlags(0).String())
}
