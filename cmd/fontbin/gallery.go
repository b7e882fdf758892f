package main

import (
	"flag"

	"github.com/npillmayer/fontbin/gallery"
	"github.com/pterm/pterm"
)

func galleryIndex(args []string) error {
	fs := flag.NewFlagSet("gallery-index", flag.ExitOnError)
	tlevel := traceFlag(fs)
	dir := fs.String("dir", "gallery", "Gallery directory")
	baseURL := fs.String("base-url", "", "URL prefix for links to bundle files")
	fs.Parse(args)
	setupTracing(*tlevel)
	index, err := gallery.BuildIndex(*dir, *baseURL)
	if err != nil {
		return err
	}
	fname, err := gallery.WriteIndex(*dir, index)
	if err != nil {
		return err
	}
	pterm.Success.Printfln("Wrote %s with %d entries and %d families", fname,
		len(index.Entries), len(index.Tree))
	return nil
}

func galleryValidate(args []string) error {
	fs := flag.NewFlagSet("gallery-validate", flag.ExitOnError)
	tlevel := traceFlag(fs)
	dir := fs.String("dir", "gallery", "Gallery directory")
	fs.Parse(args)
	setupTracing(*tlevel)
	if err := gallery.Validate(*dir); err != nil {
		return err
	}
	pterm.Success.Println("Validation passed")
	return nil
}
