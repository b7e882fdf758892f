package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/engine/atlas"
	"github.com/npillmayer/fontbin/engine/preview"
	"github.com/npillmayer/fontbin/gallery"
	"github.com/pterm/pterm"
)

const defaultPreviewText = "The quick brown fox jumps over the lazy dog.\n0123456789 !?()[]{}"

func convert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	tlevel := traceFlag(fs)
	outdir := fs.String("out", ".", "Output directory for the font blob")
	galleryDir := fs.String("gallery", "", "Also write a submission bundle into this gallery directory")
	text := fs.String("text", defaultPreviewText, "Preview text of the submission bundle")
	submitter := fs.String("submitter", "", "Submitter name of the submission bundle")
	of := addOptionFlags(fs)
	fs.Parse(args)
	conf := setupTracing(*tlevel)
	opts, err := of.options(conf)
	if err != nil {
		return err
	}
	spec, err := opts.BoxSpec()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	tc, err := loadTypeCase(ctx, *of.font, opts.FontSize)
	if err != nil {
		return err
	}
	//
	var bar *pterm.ProgressbarPrinter
	driver, err := atlas.NewDriver(tc, spec,
		atlas.WithBatchSize(opts.BatchSize),
		atlas.WithLoadFlags(opts.LoadFlags()),
		atlas.WithProgress(func(p atlas.Progress) {
			if bar != nil && p.State == atlas.Packing {
				bar.Increment()
			}
		}),
	)
	if err != nil {
		return err
	}
	if !driver.Layout().VerticalLossless() {
		pterm.Warning.Printfln("box %d×%d is not lossless in vertical packing, columns overlap or exceed the block",
			spec.Width, spec.Height)
	}
	bar, _ = pterm.DefaultProgressbar.WithTotal(driver.Batches()).WithTitle("Converting").Start()
	start := time.Now()
	result, err := driver.Run(ctx)
	if bar != nil {
		_, _ = bar.Stop()
	}
	if err != nil {
		return err
	}
	layout := result.Blob.Layout()
	binfile := filepath.Join(*outdir, layout.Filename())
	if err = os.WriteFile(binfile, result.Blob.Bytes(), 0644); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot write %s", binfile)
	}
	pterm.Success.Printfln("Wrote %s: %d glyphs, %v, in %v", binfile, result.GlyphCount(), layout,
		time.Since(start).Round(time.Millisecond))
	if *galleryDir == "" {
		return nil
	}
	img, err := preview.RenderText(tc, spec, opts.LoadFlags(), *text, 0)
	if err != nil {
		return err
	}
	f := tc.ScalableFontParent()
	meta := gallery.NewMetadata(f.Family, f.Style, layout, *text, *submitter, time.Now())
	meta.Glyphs = result.GlyphCount()
	dir, err := gallery.WriteBundle(*galleryDir, meta, img, result.Blob)
	if err != nil {
		return err
	}
	pterm.Success.Printfln("Wrote gallery bundle %s", dir)
	return nil
}

func previewText(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	tlevel := traceFlag(fs)
	text := fs.String("text", defaultPreviewText, "Text to render")
	out := fs.String("out", "", "Write preview to a PNG file instead of the terminal")
	width := fs.Int("width", 0, "Width of the preview in pixels (0 to fit the text)")
	zoom := fs.Int("zoom", 1, "Scale factor of the PNG image")
	char := fs.String("char", "", "Show a single glyph box instead of text")
	of := addOptionFlags(fs)
	fs.Parse(args)
	conf := setupTracing(*tlevel)
	opts, err := of.options(conf)
	if err != nil {
		return err
	}
	spec, err := opts.BoxSpec()
	if err != nil {
		return err
	}
	tc, err := loadTypeCase(context.Background(), *of.font, opts.FontSize)
	if err != nil {
		return err
	}
	if *char != "" {
		cp, err := parseCodepoint(*char)
		if err != nil {
			return err
		}
		box, err := preview.RenderGlyph(tc, spec, opts.LoadFlags(), cp)
		if err != nil {
			return err
		}
		if box == nil {
			pterm.Warning.Printfln("font has no glyph for U+%04X", cp)
			return nil
		}
		pterm.Print(box.String())
		return nil
	}
	img, err := preview.RenderText(tc, spec, opts.LoadFlags(), *text, *width)
	if err != nil {
		return err
	}
	if *out != "" {
		if err = preview.WritePNG(*out, preview.Zoom(img, *zoom)); err != nil {
			return err
		}
		pterm.Success.Printfln("Wrote %s", *out)
		return nil
	}
	for _, row := range preview.Dump(img) {
		pterm.Println("|" + row + "|")
	}
	return nil
}
