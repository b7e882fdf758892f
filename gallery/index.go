package gallery

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/fontbin/core"
)

// Entry is a bundle as listed in the gallery index. Links are nil if the
// bundle lacks the corresponding file.
type Entry struct {
	ID           string    `json:"id"`
	Family       string    `json:"family"`
	Style        string    `json:"style"`
	PreviewText  string    `json:"preview_text"`
	PreviewThumb *string   `json:"preview_thumb"`
	Preview      *string   `json:"preview"`
	Bin          *string   `json:"bin"`
	Submitter    Submitter `json:"submitter"`
	Timestamp    *string   `json:"timestamp"`
	Width        *int      `json:"width"`
	Height       *int      `json:"height"`
}

// Size is a bundle as listed in the tree of the index.
type Size struct {
	ID           string    `json:"id"`
	Width        *int      `json:"width"`
	Height       *int      `json:"height"`
	PreviewThumb *string   `json:"preview_thumb"`
	Preview      *string   `json:"preview"`
	Bin          *string   `json:"bin"`
	Submitter    Submitter `json:"submitter"`
	Timestamp    *string   `json:"timestamp"`
}

// Type groups the sizes of one style.
type Type struct {
	Style string `json:"style"`
	Sizes []Size `json:"sizes"`
}

// Family groups the styles of a font family.
type Family struct {
	Family string `json:"family"`
	Types  []Type `json:"types"`
}

// Index is the content of a gallery's index file.
type Index struct {
	Entries []Entry  `json:"entries"`
	Tree    []Family `json:"tree"`
}

// BuildIndex scans a gallery directory. Links in the index are formed by
// appending "<id>/<file>" to baseURL. Bundles without readable metadata are
// listed with their directory name as family.
//
// Entries are ordered by ID; families and styles in the tree are sorted
// alphabetically.
func BuildIndex(galleryDir, baseURL string) (*Index, error) {
	dirs, err := os.ReadDir(galleryDir)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "gallery directory %s not found", galleryDir)
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	index := &Index{Entries: []Entry{}, Tree: []Family{}}
	families := treemap.NewWithStringComparator()
	for _, d := range dirs { // os.ReadDir sorts by name
		if !d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			continue
		}
		e := entryFor(galleryDir, d.Name(), baseURL)
		index.Entries = append(index.Entries, e)
		fam := e.Family
		if fam == "" {
			fam = "Unknown"
		}
		style := e.Style
		if style == "" {
			style = "Regular"
		}
		var styles *treemap.Map
		if s, found := families.Get(fam); found {
			styles = s.(*treemap.Map)
		} else {
			styles = treemap.NewWithStringComparator()
			families.Put(fam, styles)
		}
		var sizes []Size
		if s, found := styles.Get(style); found {
			sizes = s.([]Size)
		}
		styles.Put(style, append(sizes, Size{
			ID:           e.ID,
			Width:        e.Width,
			Height:       e.Height,
			PreviewThumb: e.PreviewThumb,
			Preview:      e.Preview,
			Bin:          e.Bin,
			Submitter:    e.Submitter,
			Timestamp:    e.Timestamp,
		}))
	}
	it := families.Iterator()
	for it.Next() {
		family := Family{Family: it.Key().(string)}
		sit := it.Value().(*treemap.Map).Iterator()
		for sit.Next() {
			family.Types = append(family.Types, Type{
				Style: sit.Key().(string),
				Sizes: sit.Value().([]Size),
			})
		}
		index.Tree = append(index.Tree, family)
	}
	tracer().Infof("gallery index has %d entries and %d families", len(index.Entries), len(index.Tree))
	return index, nil
}

// WriteIndex writes the index to the index file of a gallery directory and
// returns the file's path.
func WriteIndex(galleryDir string, index *Index) (string, error) {
	if index == nil {
		return "", core.Error(core.EINVALID, "no gallery index to write")
	}
	filename := filepath.Join(galleryDir, IndexFile)
	return filename, writeJSON(filename, index)
}

func entryFor(galleryDir, slug, baseURL string) Entry {
	dir := filepath.Join(galleryDir, slug)
	link := func(name string) *string {
		if name == "" {
			return nil
		}
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return nil
		}
		url := baseURL + "/" + slug + "/" + name
		return &url
	}
	e := Entry{
		ID:           slug,
		Family:       slug,
		PreviewThumb: link(ThumbFile),
		Preview:      link(PreviewFile),
	}
	if bin := findBin(dir); bin != "" {
		e.Bin = link(filepath.Base(bin))
	}
	meta, err := ReadMetadata(filepath.Join(dir, MetadataFile))
	if err != nil {
		tracer().Infof("bundle %s: %v", slug, err)
		return e
	}
	if meta.Family != "" {
		e.Family = meta.Family
	}
	e.Style = meta.Style
	e.PreviewText = meta.PreviewText
	e.Submitter = meta.Submitter
	if meta.Timestamp != "" {
		e.Timestamp = &meta.Timestamp
	}
	if meta.Width > 0 {
		e.Width = &meta.Width
	}
	if meta.Height > 0 {
		e.Height = &meta.Height
	}
	return e
}
