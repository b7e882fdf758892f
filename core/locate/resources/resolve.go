package resources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/font"
	"github.com/npillmayer/fontbin/core/font/fontregistry"
)

// NotFound returns an application error for a missing font.
func NotFound(res string, cause error) error {
	if cause == nil {
		cause = fmt.Errorf("resource missing: %v", res)
	}
	return core.WrapError(cause, core.EMISSING, "font not found: %s, using fallback font instead", res)
}

// --- Fonts -----------------------------------------------------------------

type fontPlusErr struct {
	font *font.TypeCase
	err  error
}

// TypeCasePromise is a handle to a typecase being loaded in the background.
type TypeCasePromise interface {
	// TypeCase blocks until the typecase is available.
	TypeCase() (*font.TypeCase, error)
	// Await blocks until the typecase is available or ctx is done.
	Await(ctx context.Context) (*font.TypeCase, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.TypeCase, error)
}

func (loader fontLoader) TypeCase() (*font.TypeCase, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) Await(ctx context.Context) (*font.TypeCase, error) {
	return loader.await(ctx)
}

// ResolveTypeCase resolves a font typecase with a given pixel size, using the
// global font registry. name may be a font file path or the name of a system font.
// An empty name selects the fallback font.
func ResolveTypeCase(name string, pixelSize int) TypeCasePromise {
	return ResolveTypeCaseIn(fontregistry.GlobalRegistry(), name, pixelSize)
}

// ResolveTypeCaseIn resolves a font typecase using registry reg.
//
// If the font cannot be found, the promise will deliver a typecase of the fallback
// font together with an error of code core.EMISSING.
func ResolveTypeCaseIn(reg *fontregistry.Registry, name string, pixelSize int) TypeCasePromise {
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		defer close(ch)
		result := fontPlusErr{}
		result.font, result.err = resolve(reg, name, pixelSize)
		ch <- result
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.TypeCase, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

func resolve(reg *fontregistry.Registry, name string, pixelSize int) (*font.TypeCase, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		tracer().Debugf("no font name given, using fallback font")
		reg.StoreFont(fontregistry.FallbackName, font.FallbackFont())
		return reg.TypeCase(fontregistry.FallbackName, pixelSize)
	}
	style, weight := fontregistry.GuessStyleAndWeight(name)
	key := fontregistry.NormalizeFontname(name, style, weight)
	if _, ok := reg.Font(key); ok {
		return reg.TypeCase(key, pixelSize)
	}
	var f *font.ScalableFont
	var err, loadErr error
	if isFontFile(name) {
		tracer().Debugf("loading font file %s", name)
		f, loadErr = font.LoadOpenTypeFont(name)
	} else {
		var fpath string
		fpath, err = findfont.Find(name) // try to find as system font
		if err == nil && fpath != "" {
			tracer().Debugf("%s is a system font at %s", name, fpath)
			f, loadErr = font.LoadOpenTypeFont(fpath)
		}
	}
	if loadErr != nil {
		if core.Code(loadErr) != core.EMISSING {
			tracer().Errorf("cannot load font %s: %v", name, loadErr)
			return nil, loadErr
		}
		err = loadErr
	}
	if f == nil {
		tracer().Infof("cannot locate font %s", name)
		tc, rerr := reg.TypeCase(key, pixelSize) // delivers the fallback typecase
		if tc == nil {
			return nil, rerr
		}
		return tc, NotFound(name, err)
	}
	reg.StoreFont(key, f)
	if alias := fontregistry.KeyFor(f); alias != "" && alias != key {
		reg.StoreFont(alias, f) // later requests may use the family name
	}
	return reg.TypeCase(key, pixelSize)
}

var fontExtensions = []string{".ttf", ".otf", ".ttc", ".otc"}

func isFontFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range fontExtensions {
		if ext == e {
			if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
				return true
			}
			return false
		}
	}
	return false
}
