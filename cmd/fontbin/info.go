package main

import (
	"context"
	"flag"
	"sort"

	"github.com/npillmayer/fontbin/core/font/otquery"
	"github.com/pterm/pterm"
)

func fontInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	tlevel := traceFlag(fs)
	fontname := fs.String("font", "", "Font file or system font name (built-in font if empty)")
	size := fs.Int("size", 28, "Font size in pixels")
	fs.Parse(args)
	setupTracing(*tlevel)
	tc, err := loadTypeCase(context.Background(), *fontname, *size)
	if err != nil {
		return err
	}
	f := tc.ScalableFontParent()
	names := otquery.NameInfo(f)
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	data := pterm.TableData{{"Property", "Value"}, {"type", otquery.FontType(f)}, {"file", f.Filepath}}
	for _, k := range keys {
		data = append(data, []string{k, names[k]})
	}
	if err = pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	m, err := otquery.FontMetrics(f, *size)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("At %dpx: ascent %d, descent %d, line height %d, x-height %d, cap height %d",
		m.PixelSize, m.Ascent, m.Descent, m.LineHeight, m.XHeight, m.CapHeight)
	cover := otquery.Coverage(f)
	pterm.Info.Printfln("%d glyphs, %d code-points of the BMP covered", m.GlyphCount, cover.Count())
	blocks := pterm.TableData{{"Block", "Range", "Covered"}}
	for _, b := range otquery.Blocks {
		n := otquery.BlockCoverage(cover, b)
		if n == 0 {
			continue
		}
		blocks = append(blocks, []string{b.Name, pterm.Sprintf("U+%04X–U+%04X", b.From, b.To),
			pterm.Sprintf("%d/%d", n, b.To-b.From+1)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(blocks).Render()
}
