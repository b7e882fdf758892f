package preview

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/npillmayer/fontbin/core"
)

// EncodePNG writes an image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot encode preview image")
	}
	return nil
}

// WritePNG writes an image to a PNG file.
func WritePNG(filename string, img image.Image) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create preview file %s", filename)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = core.WrapError(cerr, core.EINTERNAL, "cannot close preview file %s", filename)
		}
	}()
	return EncodePNG(f, img)
}
