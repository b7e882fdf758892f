package main

import (
	"context"
	"flag"
	"strconv"
	"strings"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/font"
	"github.com/npillmayer/fontbin/core/font/fontregistry"
	"github.com/npillmayer/fontbin/core/locate/resources"
	"github.com/npillmayer/fontbin/engine/placement"
	"github.com/npillmayer/fontbin/engine/settings"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/pterm/pterm"
)

// optionFlags are the command line flags for conversion options.
type optionFlags struct {
	font                 *string
	size, charSp, lineSp *int
	threshold, batch     *int
	antiAlias, gridFit   *bool
	vertical, border     *bool
	opt                  *bool
	table                *string
}

func addOptionFlags(fs *flag.FlagSet) *optionFlags {
	d := settings.Defaults()
	return &optionFlags{
		font:      fs.String("font", "", "Font file or system font name (built-in font if empty)"),
		size:      fs.Int("size", d.FontSize, "Font size in pixels"),
		charSp:    fs.Int("char-spacing", d.CharSpacing, "Pixels added to the box width"),
		lineSp:    fs.Int("line-spacing", d.LineSpacing, "Pixels added to the box height"),
		threshold: fs.Int("threshold", int(d.Threshold), "Alpha values above threshold are ink [0…255]"),
		batch:     fs.Int("batch", d.BatchSize, "Code-points per rasterizer call"),
		antiAlias: fs.Bool("anti-alias", d.AntiAlias, "Render with anti-aliasing before thresholding"),
		gridFit:   fs.Bool("grid-fit", d.GridFit, "Snap glyph outlines to the pixel grid"),
		vertical:  fs.Bool("vertical", d.Vertical, "Pack glyph boxes column by column"),
		border:    fs.Bool("border", d.Border, "Draw a frame around every glyph box"),
		opt:       fs.Bool("optical", d.OpticalAlign, "Optical instead of geometric centering"),
		table:     fs.String("table", d.OffsetTable, "Optical offset table ["+strings.Join(placement.PresetNames(), "|")+"]"),
	}
}

// options puts the flags into conf and reads the conversion options from it.
func (of *optionFlags) options(conf testconfig.Conf) (settings.Options, error) {
	conf[settings.KeyFontSize] = strconv.Itoa(*of.size)
	conf[settings.KeyCharSpacing] = strconv.Itoa(*of.charSp)
	conf[settings.KeyLineSpacing] = strconv.Itoa(*of.lineSp)
	conf[settings.KeyThreshold] = strconv.Itoa(*of.threshold)
	conf[settings.KeyBatchSize] = strconv.Itoa(*of.batch)
	conf[settings.KeyAntiAlias] = strconv.FormatBool(*of.antiAlias)
	conf[settings.KeyGridFit] = strconv.FormatBool(*of.gridFit)
	conf[settings.KeyVertical] = strconv.FormatBool(*of.vertical)
	conf[settings.KeyBorder] = strconv.FormatBool(*of.border)
	conf[settings.KeyOpticalAlign] = strconv.FormatBool(*of.opt)
	conf[settings.KeyOffsetTable] = *of.table
	return settings.FromConfig(conf)
}

// loadTypeCase resolves the font at the given size. If the font cannot be
// found, the built-in font is used and a warning is printed.
func loadTypeCase(ctx context.Context, name string, size int) (*font.TypeCase, error) {
	tc, err := resources.ResolveTypeCase(name, size).Await(ctx)
	if err != nil {
		if tc == nil || core.Code(err) != core.EMISSING {
			return nil, err
		}
		pterm.Warning.Println(core.UserMessage(err))
	}
	fontregistry.GlobalRegistry().LogFontList()
	pterm.Info.Printfln("Using font %s at %dpx", tc.ScalableFontParent().Fontname, size)
	return tc, nil
}
