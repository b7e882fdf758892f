package placement

import (
	"testing"

	"github.com/npillmayer/fontbin/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenteredWithoutOffset(t *testing.T) {
	tbl := Default()
	// 'H' is symmetric and has offset 0
	assert.Equal(t, 5, ComputeOffset(tbl, 'H', 20, 30, true))
	assert.Equal(t, Centered(17, 30), ComputeOffset(tbl, 'H', 17, 30, true))
	assert.Equal(t, 6, Centered(17, 30))
	// characters without an entry are centered as well
	assert.Equal(t, 5, ComputeOffset(tbl, '✓', 20, 30, true))
}

func TestCenteredFloorsNegatives(t *testing.T) {
	assert.Equal(t, -3, Centered(35, 30))
	assert.Equal(t, -1, Centered(32, 31))
	assert.Equal(t, 0, Centered(31, 31))
}

func TestCenteredScenario(t *testing.T) {
	// W=30, glyph 'A' of width 20, no optical alignment
	assert.Equal(t, 5, Centered(20, 30))
}

func TestOpticalOffsets(t *testing.T) {
	tbl := Default()
	// round: 30 × -0.10 = -3
	assert.Equal(t, 5-3, ComputeOffset(tbl, 'O', 20, 30, true))
	// roofed: 30 × 0.07 = 2.1 → 2
	assert.Equal(t, 5+2, ComputeOffset(tbl, 'T', 20, 30, true))
	// 'A': 30 × 0.04 = 1.2 → 1
	assert.Equal(t, 5+1, ComputeOffset(tbl, 'A', 20, 30, true))
	// brackets: 30 × 0.12 = 3.6 → 4
	assert.Equal(t, 5+4, ComputeOffset(tbl, ')', 20, 30, true))
	assert.Equal(t, 5-4, ComputeOffset(tbl, '(', 20, 30, true))
}

func TestAccentsShareBaseOffset(t *testing.T) {
	tbl := Default()
	assert.Equal(t, "e", Normalize('é'))
	assert.Equal(t, "O", Normalize('Ö'))
	assert.Equal(t, "A", Normalize('Å'))
	assert.Equal(t, ComputeOffset(tbl, 'O', 18, 28, true), ComputeOffset(tbl, 'Ó', 18, 28, true))
	assert.Equal(t, ComputeOffset(tbl, 'c', 12, 28, true), ComputeOffset(tbl, 'ç', 12, 28, true))
	// 'ł' has no canonical decomposition and keeps its own identity
	assert.Equal(t, "ł", Normalize('ł'))
}

func TestPseudoKerning(t *testing.T) {
	tbl := Default()
	// 30 × -0.03 = -0.9 → -1, only when not first in line
	assert.Equal(t, 13, ComputeOffset(tbl, 'l', 4, 30, true))
	assert.Equal(t, 12, ComputeOffset(tbl, 'l', 4, 30, false))
	assert.Equal(t, 12, ComputeOffset(tbl, 'í', 4, 30, false), "accented narrow glyphs get kerned")
	// 'T' is narrow-vertical and roofed
	assert.Equal(t, 5+2, ComputeOffset(tbl, 'T', 20, 30, true))
	assert.Equal(t, 5+2-1, ComputeOffset(tbl, 'T', 20, 30, false))
	// non-narrow glyphs never get kerned
	assert.Equal(t, ComputeOffset(tbl, 'm', 20, 30, true), ComputeOffset(tbl, 'm', 20, 30, false))
	for _, ch := range "litfjIJTF1!|" {
		assert.True(t, IsNarrowVertical(string(ch)), "%c should be narrow", ch)
	}
	assert.False(t, IsNarrowVertical("m"))
}

func TestNilTableMeansCentered(t *testing.T) {
	assert.Equal(t, 5, ComputeOffset(nil, 'O', 20, 30, true))
	assert.Equal(t, "none", (*OffsetTable)(nil).Name())
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{Coarse, Fine}, PresetNames())
	fine, err := Preset(Fine)
	require.NoError(t, err)
	assert.True(t, fine == Default())
	assert.Greater(t, fine.Len(), 80)
	coarse, err := Preset(Coarse)
	require.NoError(t, err)
	assert.Less(t, coarse.Len(), fine.Len())
	_, err = Preset("baroque")
	assert.Equal(t, core.EINVALID, core.Code(err))
	for _, name := range PresetNames() {
		tbl, _ := Preset(name)
		for k, v := range tbl.offsets {
			assert.LessOrEqual(t, v, MaxOffset, "offset of %q in %s", k, name)
			assert.GreaterOrEqual(t, v, -MaxOffset, "offset of %q in %s", k, name)
		}
	}
}

func TestCustomTableValidation(t *testing.T) {
	_, err := NewOffsetTable("wild", map[string]float64{"O": -0.2})
	assert.Error(t, err)
	tbl, err := NewOffsetTable("mine", map[string]float64{"O": -0.15})
	require.NoError(t, err)
	assert.Equal(t, "mine", tbl.Name())
	assert.Equal(t, -0.15, tbl.Lookup("O"))
}
