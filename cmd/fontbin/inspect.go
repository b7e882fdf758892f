package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/glyph"
	"github.com/npillmayer/fontbin/engine/packer"
	"github.com/npillmayer/fontbin/gallery"
	"github.com/pterm/pterm"
)

func inspect(args []string) error {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	tlevel := traceFlag(fs)
	bundle := fs.String("bundle", "", "Gallery bundle directory to inspect")
	binfile := fs.String("bin", "", "Font blob to inspect")
	width := fs.Int("width", 0, "Box width (taken from the file name if 0)")
	height := fs.Int("height", 0, "Box height (taken from the file name if 0)")
	vertical := fs.Bool("vertical", false, "Blob is packed column by column")
	fs.Parse(args)
	setupTracing(*tlevel)
	var blob *packer.Blob
	var err error
	switch {
	case *bundle != "":
		var meta gallery.Metadata
		meta, blob, err = gallery.OpenBundle(*bundle)
		if err == nil {
			pterm.Info.Printfln("%s %s by %s", meta.Family, meta.Style, meta.Submitter.Name)
		}
	case *binfile != "":
		blob, err = openBlob(*binfile, *width, *height, *vertical)
	default:
		err = core.Error(core.EINVALID, "inspect needs -bundle or -bin")
	}
	if err != nil {
		return err
	}
	pterm.Info.Printfln("Blob layout is %v", blob.Layout())
	//
	repl, err := readline.New("inspect > ")
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot start REPL")
	}
	defer repl.Close()
	pterm.Info.Println("Enter a character or U+XXXX, 'help' for help, quit with <ctrl>D")
	intp := &Intp{repl: repl, blob: blob}
	intp.REPL()
	return nil
}

// openBlob reads a font blob from a file. Missing dimensions are taken from
// file names of the form font_WxH.bin.
func openBlob(filename string, w, h int, vertical bool) (*packer.Blob, error) {
	if w <= 0 || h <= 0 {
		if _, err := fmt.Sscanf(filepath.Base(filename), "font_%dx%d.bin", &w, &h); err != nil {
			return nil, core.WrapError(err, core.EINVALID,
				"cannot derive box size from %s, please set -width and -height", filename)
		}
	}
	layout := packer.Layout{Width: w, Height: h}
	if vertical {
		layout.Orientation = glyph.Vertical
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read %s", filename)
	}
	return packer.WrapBlob(layout, data)
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	blob *packer.Blob
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (quit bool) {
	switch strings.ToLower(line) {
	case "quit", "exit":
		return true
	case "help":
		pterm.Println(`
	<char>      show the glyph box of a character, e.g. 'A'
	U+XXXX      show the glyph box of a code-point, e.g. U+00C4
	info        show the blob layout and the number of non-empty boxes
	quit        leave the REPL
	`)
		return false
	case "info":
		n := 0
		for cp := rune(0); cp < packer.CodepointCount; cp++ {
			if !isZero(intp.blob.Block(cp)) {
				n++
			}
		}
		pterm.Printfln("layout %v, %d non-empty boxes", intp.blob.Layout(), n)
		return false
	}
	cp, err := parseCodepoint(line)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return false
	}
	grid, err := intp.blob.Unpack(cp)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		return false
	}
	tracer().Debugf("box for U+%04X has %d ink pixels", cp, grid.Count())
	pterm.Printfln("U+%04X %q", cp, cp)
	pterm.Print(grid.String())
	return false
}

// parseCodepoint interprets "U+XXXX", "0xXXXX" or a single character.
func parseCodepoint(s string) (rune, error) {
	upper := strings.ToUpper(s)
	if strings.HasPrefix(upper, "U+") || strings.HasPrefix(upper, "0X") {
		n, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil || n >= packer.CodepointCount {
			return 0, core.Error(core.EINVALID, "not a BMP code-point: %s", s)
		}
		return rune(n), nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, core.Error(core.EINVALID, "please enter a single character or U+XXXX: %s", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r >= packer.CodepointCount {
		return 0, core.Error(core.EINVALID, "%q is outside of the BMP", r)
	}
	return r, nil
}

func isZero(block []byte) bool {
	for _, b := range block {
		if b != 0 {
			return false
		}
	}
	return true
}
