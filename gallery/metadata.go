package gallery

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/glyph"
	"github.com/npillmayer/fontbin/engine/packer"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// File names inside a bundle.
const (
	MetadataFile = "metadata.json"
	PreviewFile  = "preview.png"
	ThumbFile    = "preview_thumb.png"
	IndexFile    = "index.json"
)

// Anonymous is the submitter name used if none is given.
const Anonymous = "Anonymous"

// Submitter identifies the person who submitted a font.
type Submitter struct {
	Name string `json:"name,omitempty"`
}

// Metadata describes a submission bundle.
type Metadata struct {
	ID          string    `json:"id"`
	Family      string    `json:"family"`
	Style       string    `json:"style"`
	PreviewText string    `json:"preview_text"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Vertical    bool      `json:"vertical,omitempty"`
	Glyphs      int       `json:"glyphs,omitempty"`
	Timestamp   string    `json:"timestamp"`
	Submitter   Submitter `json:"submitter"`
}

// Layout returns the blob layout declared by the metadata.
func (m Metadata) Layout() packer.Layout {
	l := packer.Layout{Width: m.Width, Height: m.Height}
	if m.Vertical {
		l.Orientation = glyph.Vertical
	}
	return l
}

// NewMetadata creates metadata for a new submission at time now. The ID is a
// slug of family, style and time stamp.
func NewMetadata(family, style string, layout packer.Layout, previewText, submitter string,
	now time.Time) Metadata {
	//
	if family = strings.TrimSpace(family); family == "" {
		family = "Unknown"
	}
	if style = strings.TrimSpace(style); style == "" {
		style = "Unknown"
	}
	if submitter = strings.TrimSpace(submitter); submitter == "" {
		submitter = Anonymous
	}
	ts := now.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return Metadata{
		ID:          Slugify(family + "-" + style + "-" + stamp),
		Family:      family,
		Style:       style,
		PreviewText: previewText,
		Width:       layout.Width,
		Height:      layout.Height,
		Vertical:    layout.Orientation == glyph.Vertical,
		Timestamp:   ts,
		Submitter:   Submitter{Name: submitter},
	}
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify creates a directory name from a string: diacritics are removed,
// letters lower-cased and every run of other characters replaced by a
// single dash.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Diacritic)))
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	slug := nonAlnum.ReplaceAllString(strings.ToLower(stripped), "-")
	return strings.Trim(slug, "-")
}

// ReadMetadata reads a metadata file.
func ReadMetadata(filename string) (Metadata, error) {
	var m Metadata
	data, err := os.ReadFile(filename)
	if err != nil {
		return m, core.WrapError(err, core.EMISSING, "cannot read metadata %s", filename)
	}
	if err = json.Unmarshal(data, &m); err != nil {
		return m, core.WrapError(err, core.EINVALID, "metadata %s is not valid JSON", filename)
	}
	return m, nil
}

func writeJSON(filename string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot encode %s", filename)
	}
	if err = os.WriteFile(filename, append(data, '\n'), 0644); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot write %s", filename)
	}
	return nil
}
