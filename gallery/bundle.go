package gallery

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/engine/packer"
	"github.com/npillmayer/fontbin/engine/preview"
)

// WriteBundle writes a submission bundle into a new sub-directory of
// galleryDir, named by the metadata's ID. It returns the path of the bundle.
// The blob's layout must match the box size declared in the metadata.
func WriteBundle(galleryDir string, meta Metadata, img image.Image, blob *packer.Blob) (string, error) {
	if meta.ID == "" || meta.ID != Slugify(meta.ID) {
		return "", core.Error(core.EINVALID, "bundle ID %q is not a valid slug", meta.ID)
	}
	if blob == nil {
		return "", core.Error(core.EINVALID, "bundle %s has no font blob", meta.ID)
	}
	if blob.Layout() != meta.Layout() {
		return "", core.Error(core.EINVALID, "blob layout %v does not match metadata %v",
			blob.Layout(), meta.Layout())
	}
	dir := filepath.Join(galleryDir, meta.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot create bundle directory %s", dir)
	}
	if err := writeJSON(filepath.Join(dir, MetadataFile), meta); err != nil {
		return dir, err
	}
	if img != nil {
		if err := preview.WritePNG(filepath.Join(dir, PreviewFile), img); err != nil {
			return dir, err
		}
	}
	binfile := filepath.Join(dir, blob.Layout().Filename())
	if err := os.WriteFile(binfile, blob.Bytes(), 0644); err != nil {
		return dir, core.WrapError(err, core.EINVALID, "cannot write font blob %s", binfile)
	}
	tracer().Infof("wrote bundle %s", dir)
	return dir, nil
}

// OpenBundle reads the metadata and the font blob of a bundle directory.
func OpenBundle(dir string) (Metadata, *packer.Blob, error) {
	meta, err := ReadMetadata(filepath.Join(dir, MetadataFile))
	if err != nil {
		return meta, nil, err
	}
	layout := meta.Layout()
	if err = layout.Validate(); err != nil {
		return meta, nil, err
	}
	binfile := filepath.Join(dir, layout.Filename())
	if _, serr := os.Stat(binfile); serr != nil {
		if binfile = findBin(dir); binfile == "" {
			return meta, nil, core.Error(core.EMISSING, "bundle %s has no font blob", dir)
		}
	}
	data, err := os.ReadFile(binfile)
	if err != nil {
		return meta, nil, core.WrapError(err, core.EMISSING, "cannot read font blob %s", binfile)
	}
	blob, err := packer.WrapBlob(layout, data)
	return meta, blob, err
}

// findBin returns the first file with extension .bin in dir, or "".
func findBin(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".bin") {
			return filepath.Join(dir, e.Name())
		}
	}
	return ""
}
