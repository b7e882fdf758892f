/*
Package settings holds the user options of a conversion and reads them from a
configuration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package settings

import (
	"strconv"
	"strings"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/font"
	"github.com/npillmayer/fontbin/core/glyph"
	"github.com/npillmayer/fontbin/engine/compositor"
	"github.com/npillmayer/fontbin/engine/placement"
	"github.com/npillmayer/schuko"
)

// Configuration keys read by FromConfig.
const (
	KeyFontSize     = "font-size"
	KeyCharSpacing  = "char-spacing"
	KeyLineSpacing  = "line-spacing"
	KeyThreshold    = "threshold"
	KeyAntiAlias    = "anti-alias"
	KeyGridFit      = "grid-fit"
	KeyVertical     = "vertical"
	KeyBorder       = "border"
	KeyOpticalAlign = "optical-align"
	KeyOffsetTable  = "offset-table"
	KeyBatchSize    = "batch-size"
)

// Options are the user-adjustable parameters of a conversion. The box size
// derives from the font size plus spacing.
type Options struct {
	FontSize     int    // pixels per em
	CharSpacing  int    // added to the box width
	LineSpacing  int    // added to the box height
	Threshold    uint8  // alpha values above threshold are ink
	AntiAlias    bool   // render with anti-aliasing before thresholding
	GridFit      bool   // snap outlines to the pixel grid
	Vertical     bool   // pack boxes column-wise
	Border       bool   // draw a 1-pixel frame around every box
	OpticalAlign bool   // use optical instead of geometric centering
	OffsetTable  string // name of the optical offset preset
	BatchSize    int    // code-points per rasterizer call
}

// Defaults returns the default options.
func Defaults() Options {
	return Options{
		FontSize:    28,
		Threshold:   127,
		AntiAlias:   true,
		GridFit:     true,
		OffsetTable: placement.DefaultPreset,
		BatchSize:   256,
	}
}

// BoxWidth is the width of a glyph box.
func (o Options) BoxWidth() int {
	return o.FontSize + o.CharSpacing
}

// BoxHeight is the height of a glyph box.
func (o Options) BoxHeight() int {
	return o.FontSize + o.LineSpacing
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.FontSize < font.MinPixelSize || o.FontSize > font.MaxPixelSize {
		return core.Error(core.EINVALID, "font size must be %d…%d, is %d",
			font.MinPixelSize, font.MaxPixelSize, o.FontSize)
	}
	if o.BoxWidth() <= 0 || o.BoxHeight() <= 0 {
		return core.Error(core.EINVALID, "spacing results in empty box %d×%d",
			o.BoxWidth(), o.BoxHeight())
	}
	if o.BatchSize <= 0 {
		return core.Error(core.EINVALID, "batch size must be positive, is %d", o.BatchSize)
	}
	if _, err := placement.Preset(o.OffsetTable); err != nil {
		return err
	}
	return nil
}

// LoadFlags returns the rasterizer flags for the options.
func (o Options) LoadFlags() glyph.LoadFlags {
	var flags glyph.LoadFlags
	if o.AntiAlias {
		flags |= glyph.AntiAlias
	}
	if o.GridFit {
		flags |= glyph.GridFit
	}
	return flags
}

// BoxSpec returns the compositor configuration for the options.
func (o Options) BoxSpec() (compositor.BoxSpec, error) {
	if err := o.Validate(); err != nil {
		return compositor.BoxSpec{}, err
	}
	table, _ := placement.Preset(o.OffsetTable)
	spec := compositor.BoxSpec{
		Width:        o.BoxWidth(),
		Height:       o.BoxHeight(),
		Border:       o.Border,
		Threshold:    o.Threshold,
		OpticalAlign: o.OpticalAlign,
		Offsets:      table,
	}
	if o.Vertical {
		spec.Orientation = glyph.Vertical
	}
	return spec, nil
}

// FromConfig reads options from a configuration. Keys not set keep their
// default value. Malformed values result in an error of code core.EINVALID.
func FromConfig(conf schuko.Configuration) (Options, error) {
	o := Defaults()
	if conf == nil {
		return o, nil
	}
	r := reader{conf: conf}
	r.int(KeyFontSize, &o.FontSize)
	r.int(KeyCharSpacing, &o.CharSpacing)
	r.int(KeyLineSpacing, &o.LineSpacing)
	r.int(KeyBatchSize, &o.BatchSize)
	var threshold = int(o.Threshold)
	r.int(KeyThreshold, &threshold)
	if r.err == nil && (threshold < 0 || threshold > 255) {
		r.err = core.Error(core.EINVALID, "threshold must be 0…255, is %d", threshold)
	}
	o.Threshold = uint8(threshold)
	r.bool(KeyAntiAlias, &o.AntiAlias)
	r.bool(KeyGridFit, &o.GridFit)
	r.bool(KeyVertical, &o.Vertical)
	r.bool(KeyBorder, &o.Border)
	r.bool(KeyOpticalAlign, &o.OpticalAlign)
	if s := strings.TrimSpace(conf.GetString(KeyOffsetTable)); s != "" {
		o.OffsetTable = strings.ToLower(s)
	}
	if r.err != nil {
		return Defaults(), r.err
	}
	if err := o.Validate(); err != nil {
		return Defaults(), err
	}
	tracer().Debugf("options: %+v", o)
	return o, nil
}

// reader keeps the first error of a sequence of reads.
type reader struct {
	conf schuko.Configuration
	err  error
}

func (r *reader) value(key string) string {
	if r.err != nil {
		return ""
	}
	return strings.TrimSpace(r.conf.GetString(key))
}

func (r *reader) int(key string, v *int) {
	s := r.value(key)
	if s == "" {
		return
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.err = core.WrapError(err, core.EINVALID, "configuration key %s is not a number: %q", key, s)
		return
	}
	*v = n
}

func (r *reader) bool(key string, v *bool) {
	s := r.value(key)
	if s == "" {
		return
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		r.err = core.WrapError(err, core.EINVALID, "configuration key %s is not a boolean: %q", key, s)
		return
	}
	*v = b
}
