package otquery

import (
	"encoding/binary"

	"github.com/npillmayer/fontbin/core/font"
	"golang.org/x/image/font/sfnt"
)

// FontType returns the font type, encoded in the font header, as a string.
func FontType(f *font.ScalableFont) string {
	if f == nil || len(f.Binary) < 4 {
		return "<empty>"
	}
	switch binary.BigEndian.Uint32(f.Binary) {
	case 0x4f54544f: // OTTO
		return "OpenType (outlines)"
	case 0x00010000: // TrueType
		return "TrueType"
	case 0x74727565: // true
		return "TrueType (Mac legacy)"
	case 0x74746366: // ttcf
		return "Font collection"
	}
	return "<unknown>"
}

var nameIDs = []struct {
	key string
	id  sfnt.NameID
}{
	{"family", sfnt.NameIDFamily},
	{"subfamily", sfnt.NameIDSubfamily},
	{"full", sfnt.NameIDFull},
	{"version", sfnt.NameIDVersion},
	{"postscript", sfnt.NameIDPostScript},
	{"copyright", sfnt.NameIDCopyright},
	{"license", sfnt.NameIDLicense},
}

// NameInfo returns a map with selected fields from OpenType table `name`.
// Will include (if available in the font) "family", "subfamily", "full",
// "version", "postscript", "copyright" and "license".
func NameInfo(f *font.ScalableFont) map[string]string {
	names := make(map[string]string)
	if f == nil || f.SFNT == nil {
		return names
	}
	var buf sfnt.Buffer
	for _, n := range nameIDs {
		if val, err := f.SFNT.Name(&buf, n.id); err == nil && val != "" {
			names[n.key] = val
		} else {
			tracer().Debugf("font %s has no name entry %q", f.Fontname, n.key)
		}
	}
	return names
}
