package fontregistry

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/font"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
)

// FallbackName is the registry key of the fallback font.
const FallbackName = "fallback"

// Registry is a type for holding information about loaded fonts and the
// typecases derived from them.
type Registry struct {
	sync.Mutex
	fonts     map[string]*font.ScalableFont
	typecases map[string]*font.TypeCase
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts and typecases.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string]*font.ScalableFont),
		typecases: make(map[string]*font.TypeCase),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(normalizedName string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, normalizedName)
		fr.fonts[normalizedName] = f
	}
}

// Font returns the font stored under normalizedName, if any.
func (fr *Registry) Font(normalizedName string) (*font.ScalableFont, bool) {
	fr.Lock()
	defer fr.Unlock()
	f, ok := fr.fonts[normalizedName]
	return f, ok
}

// TypeCase returns a typecase for a font at a given pixel size.
// If a suitable typecase has already been cached, TypeCase will return the cached
// typecase. If a font has previously been stored under key `normalizedName`,
// a typecase will be derived from this font.
//
// If no typecase can be produced, TypeCase will derive one from the fallback
// font and return it, together with an error of code core.EMISSING.
// Invalid pixel sizes result in a nil typecase and an error.
func (fr *Registry) TypeCase(normalizedName string, pixelSize int) (*font.TypeCase, error) {
	tracer().Debugf("registry searches for font %s at %dpx", normalizedName, pixelSize)
	tname := appendSize(normalizedName, pixelSize)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		tracer().Infof("registry found typecase %s", tname)
		return t, nil
	}
	if f, ok := fr.fonts[normalizedName]; ok {
		t, err := f.PrepareCase(pixelSize)
		if err != nil {
			return nil, err
		}
		tracer().Infof("font registry has font %s, caches at %dpx", normalizedName, pixelSize)
		fr.typecases[tname] = t
		return t, nil
	}
	tracer().Infof("registry does not contain font %s", normalizedName)
	err := core.Error(core.EMISSING, "font %s not found in registry", normalizedName)
	//
	// store typecase from fallback font, if not present yet, and return it
	tname = appendSize(FallbackName, pixelSize)
	if t, ok := fr.typecases[tname]; ok {
		return t, err
	}
	f := font.FallbackFont()
	t, perr := f.PrepareCase(pixelSize)
	if perr != nil {
		return nil, perr
	}
	tracer().Infof("font registry caches fallback font at %dpx", pixelSize)
	fr.fonts[FallbackName] = f
	fr.typecases[tname] = t
	return t, err
}

// LogFontList dumps the list of known fonts and typecases in a registry to the
// trace (log-level Info). Nothing is written at log-level Error.
func (fr *Registry) LogFontList() {
	if tracer().GetTraceLevel() < tracing.LevelInfo {
		return
	}
	fr.Lock()
	defer fr.Unlock()
	tracer().Infof("--- registered fonts ---")
	for _, k := range sortedKeys(fr.fonts) {
		tracer().Infof("font [%s] = %v", k, fr.fonts[k].Fontname)
	}
	for _, k := range sortedKeys(fr.typecases) {
		tracer().Infof("typecase [%s] = %v", k, fr.typecases[k].ScalableFontParent().Fontname)
	}
	tracer().Infof("------------------------")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeFontname creates a registry key from a font name, a style and a weight.
// File extensions are stripped, so file paths may be used as font names.
func NormalizeFontname(fname string, style xfont.Style, weight xfont.Weight) string {
	fname = strings.TrimSpace(path.Base(fname))
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	switch style {
	case xfont.StyleItalic, xfont.StyleOblique:
		if !strings.Contains(fname, "italic") {
			fname += "-italic"
		}
	}
	switch weight {
	case xfont.WeightLight, xfont.WeightExtraLight:
		if !strings.Contains(fname, "light") {
			fname += "-light"
		}
	case xfont.WeightBold, xfont.WeightExtraBold, xfont.WeightSemiBold:
		if !strings.Contains(fname, "bold") {
			fname += "-bold"
		}
	}
	return fname
}

func appendSize(fname string, size int) string {
	return fmt.Sprintf("%s-%dpx", fname, size)
}

// GuessStyleAndWeight tries to guess a font's style and weight from the
// font's file name or style name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") {
		style = xfont.StyleItalic
	} else if strings.Contains(fontfilename, "oblique") {
		style = xfont.StyleOblique
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}

// KeyFor returns the registry key for a font, derived from its name and style.
func KeyFor(f *font.ScalableFont) string {
	if f == nil {
		return ""
	}
	style, weight := GuessStyleAndWeight(f.Style)
	name := f.Family
	if name == "" {
		name = f.Fontname
	}
	return NormalizeFontname(name, style, weight)
}
