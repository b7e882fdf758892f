package settings

import (
	"testing"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/glyph"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	o := Defaults()
	require.NoError(t, o.Validate())
	assert.Equal(t, 28, o.BoxWidth())
	assert.Equal(t, 28, o.BoxHeight())
	assert.Equal(t, glyph.AntiAlias|glyph.GridFit, o.LoadFlags())
	spec, err := o.BoxSpec()
	require.NoError(t, err)
	assert.Equal(t, 28, spec.Width)
	assert.Equal(t, uint8(127), spec.Threshold)
	assert.Equal(t, glyph.Horizontal, spec.Orientation)
	assert.Equal(t, "fine", spec.Offsets.Name())
}

func TestFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.engine")
	defer teardown()
	//
	conf := testconfig.Conf{
		"font-size":     "16",
		"char-spacing":  "2",
		"line-spacing":  "-1",
		"threshold":     "90",
		"anti-alias":    "false",
		"vertical":      "true",
		"border":        "1",
		"optical-align": "true",
		"offset-table":  "Coarse",
	}
	o, err := FromConfig(conf)
	require.NoError(t, err)
	assert.Equal(t, 18, o.BoxWidth())
	assert.Equal(t, 15, o.BoxHeight())
	assert.Equal(t, uint8(90), o.Threshold)
	assert.Equal(t, glyph.GridFit, o.LoadFlags())
	assert.Equal(t, 256, o.BatchSize, "unset keys keep defaults")
	spec, err := o.BoxSpec()
	require.NoError(t, err)
	assert.Equal(t, glyph.Vertical, spec.Orientation)
	assert.True(t, spec.Border)
	assert.True(t, spec.OpticalAlign)
	assert.Equal(t, "coarse", spec.Offsets.Name())
}

func TestFromConfigErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.engine")
	defer teardown()
	//
	for _, conf := range []testconfig.Conf{
		{"font-size": "large"},
		{"font-size": "0"},
		{"threshold": "300"},
		{"border": "maybe"},
		{"offset-table": "wobbly"},
		{"font-size": "10", "char-spacing": "-10"},
		{"batch-size": "-1"},
	} {
		_, err := FromConfig(conf)
		assert.Equal(t, core.EINVALID, core.Code(err), "config %v", conf)
	}
}
