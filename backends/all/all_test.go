package all

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	locale "github.com/goliatone/go-locale"
)

func TestGlobalListsPlatformBackends(t *testing.T) {
	want := []string{"icu", "posix", "std"}
	if runtime.GOOS == "windows" {
		want = []string{"icu", "winapi", "std"}
	}

	m := locale.Global()
	assert.Equal(t, want, m.Names())

	for _, category := range locale.KnownCategories() {
		name, ok := m.Selected(category)
		require.True(t, ok, category.String())
		assert.Equal(t, "icu", name, category.String())
	}
}

func TestGlobalGeneratesEveryCategory(t *testing.T) {
	gen, err := locale.NewGenerator()
	require.NoError(t, err)

	l := gen.Generate(locale.Descriptor{Language: "en", Country: "US", Encoding: "UTF-8"})
	for _, category := range locale.KnownCategories() {
		assert.True(t, l.Has(category), category.String())
	}
	info, ok := l.Info()
	require.True(t, ok)
	assert.Equal(t, "icu", info.Backend())
}
