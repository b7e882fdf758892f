/*
Command fontbin converts fonts into packed bitmap fonts for e-ink readers and
other small displays.

Usage:

	fontbin convert  [flags]   convert a font into font_WxH.bin
	fontbin preview  [flags]   render preview text as it will look on the device
	fontbin inspect  [flags]   interactively look at glyph boxes of a font blob
	fontbin info     [flags]   show names, metrics and coverage of a font
	fontbin gallery-index    [flags]   build gallery/index.json
	fontbin gallery-validate [flags]   check the bundles of a gallery

Call a command with -h to see its flags.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontbin.cli'
func tracer() tracing.Trace {
	return tracing.Select("fontbin.cli")
}

var traceKeys = []string{
	"fontbin.cli",
	"fontbin.engine",
	"fontbin.font",
	"fontbin.resources",
	"fontbin.gallery",
}

func main() {
	initDisplay()
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "convert":
		err = convert(args)
	case "preview":
		err = previewText(args)
	case "info":
		err = fontInfo(args)
	case "inspect":
		err = inspect(args)
	case "gallery-index":
		err = galleryIndex(args)
	case "gallery-validate":
		err = galleryValidate(args)
	case "help", "-h", "-help", "--help":
		usage()
	default:
		pterm.Error.Printfln("unknown command %q", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		core.UserError(err)
		os.Exit(exitCode(err))
	}
}

func usage() {
	pterm.Info.Println("fontbin converts fonts into packed bitmap fonts")
	pterm.Println(`
	fontbin convert  [flags]           convert a font into font_WxH.bin
	fontbin preview  [flags]           render preview text
	fontbin inspect  [flags]           look at glyph boxes of a font blob
	fontbin info     [flags]           show names, metrics and coverage of a font
	fontbin gallery-index    [flags]   build gallery/index.json
	fontbin gallery-validate [flags]   check the bundles of a gallery
	`)
}

func exitCode(err error) int {
	switch core.Code(err) {
	case core.EINVALID:
		return 3
	case core.EMISSING:
		return 4
	case core.ECANCELED:
		return 130
	}
	return 1
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// traceFlag adds the common trace level flag to a command's flag set.
func traceFlag(fs *flag.FlagSet) *string {
	return fs.String("trace", "Error", "Trace level [Debug|Info|Error]")
}

// setupTracing configures all tracers of the application to level and
// returns the configuration, to be extended by command-specific settings.
func setupTracing(level string) testconfig.Conf {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", level)
	return conf
}
