package gallery

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/fontbin/core"
)

// MaxPreviewBytes is the maximum accepted size of a preview image.
const MaxPreviewBytes = 512000

// Validate checks the bundles of a gallery directory. A missing gallery
// directory is not an error, an empty one is. Every bundle needs a metadata
// file naming family and style. If a bundle contains a preview image or a
// font blob, their sizes are checked as well: the preview must not exceed
// MaxPreviewBytes and the blob must hold at least one glyph box of the
// declared size.
//
// Validate stops at the first invalid bundle.
func Validate(galleryDir string) error {
	if _, err := os.Stat(galleryDir); os.IsNotExist(err) {
		tracer().Infof("no gallery directory at %s, skipping validation", galleryDir)
		return nil
	}
	entries, err := os.ReadDir(galleryDir)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot read gallery directory %s", galleryDir)
	}
	n := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		n++
		if !e.IsDir() {
			continue
		}
		if err := validateBundle(filepath.Join(galleryDir, e.Name())); err != nil {
			return err
		}
	}
	if n == 0 {
		return core.Error(core.EINVALID, "gallery directory %s is empty", galleryDir)
	}
	tracer().Infof("gallery %s is valid", galleryDir)
	return nil
}

func validateBundle(dir string) error {
	name := filepath.Base(dir)
	metafile := filepath.Join(dir, MetadataFile)
	if _, err := os.Stat(metafile); err != nil {
		return core.Error(core.EINVALID, "%s missing %s", name, MetadataFile)
	}
	meta, err := ReadMetadata(metafile)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "%s: %s is not valid JSON", name, MetadataFile)
	}
	if meta.Family == "" || meta.Style == "" {
		return core.Error(core.EINVALID, "%s metadata must include family and style", name)
	}
	if fi, err := os.Stat(filepath.Join(dir, PreviewFile)); err == nil && fi.Size() > MaxPreviewBytes {
		return core.Error(core.EINVALID, "%s: preview too large (%d bytes)", name, fi.Size())
	}
	if bin := findBin(dir); bin != "" && meta.Width > 0 && meta.Height > 0 {
		fi, err := os.Stat(bin)
		if err != nil {
			return core.WrapError(err, core.EINVALID, "%s: cannot stat font blob", name)
		}
		if charBytes := meta.Layout().CharBytes(); fi.Size() < int64(charBytes) {
			return core.Error(core.EINVALID, "%s: font blob appears too small for %d×%d",
				name, meta.Width, meta.Height)
		}
	}
	return nil
}
