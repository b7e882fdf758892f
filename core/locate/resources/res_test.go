package resources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/fontbin/core"
	"github.com/npillmayer/fontbin/core/font/fontregistry"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestResolveFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.resources")
	defer teardown()
	//
	reg := fontregistry.NewRegistry()
	tc, err := ResolveTypeCaseIn(reg, "", 20).TypeCase()
	require.NoError(t, err)
	assert.Equal(t, "Go", tc.ScalableFontParent().Family)
	assert.Equal(t, 20, tc.PixelSize())
}

func TestResolveFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.resources")
	defer teardown()
	//
	fpath := filepath.Join(t.TempDir(), "GoRegular-Test.ttf")
	require.NoError(t, os.WriteFile(fpath, goregular.TTF, 0644))
	reg := fontregistry.NewRegistry()
	tc, err := ResolveTypeCaseIn(reg, fpath, 18).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fpath, tc.ScalableFontParent().Filepath)
	// second resolution is served from the registry
	tc2, err := ResolveTypeCaseIn(reg, fpath, 18).TypeCase()
	require.NoError(t, err)
	assert.True(t, tc == tc2)
}

func TestResolveMissingFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.resources")
	defer teardown()
	//
	reg := fontregistry.NewRegistry()
	tc, err := ResolveTypeCaseIn(reg, "No Such Font Family 4711", 12).TypeCase()
	assert.Equal(t, core.EMISSING, core.Code(err))
	require.NotNil(t, tc, "missing fonts resolve to the fallback font")
	assert.Equal(t, "Go", tc.ScalableFontParent().Family)
}

func TestResolveCanceled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.resources")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	promise := ResolveTypeCaseIn(fontregistry.NewRegistry(), "", 12)
	// either result is acceptable, depending on scheduling, but it must not block
	_, _ = promise.Await(ctx)
}

func TestResolveCorruptFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.resources")
	defer teardown()
	//
	fpath := filepath.Join(t.TempDir(), "Broken.ttf")
	require.NoError(t, os.WriteFile(fpath, []byte("not a font at all"), 0644))
	reg := fontregistry.NewRegistry()
	tc, err := ResolveTypeCaseIn(reg, fpath, 12).TypeCase()
	assert.Nil(t, tc, "unparseable fonts must not resolve to the fallback font")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, ok := reg.Font(fontregistry.FallbackName)
	assert.False(t, ok)
}

func TestResolveByFamilyAfterFileLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontbin.resources")
	defer teardown()
	//
	fpath := filepath.Join(t.TempDir(), "MyGo.ttf")
	require.NoError(t, os.WriteFile(fpath, goregular.TTF, 0644))
	reg := fontregistry.NewRegistry()
	tc, err := ResolveTypeCaseIn(reg, fpath, 16).TypeCase()
	require.NoError(t, err)
	f, ok := reg.Font(fontregistry.KeyFor(tc.ScalableFontParent()))
	require.True(t, ok, "font is registered under its family name")
	tc2, err := ResolveTypeCaseIn(reg, "Go", 16).TypeCase()
	require.NoError(t, err)
	assert.True(t, f == tc2.ScalableFontParent())
	assert.Equal(t, fpath, tc2.ScalableFontParent().Filepath)
}
