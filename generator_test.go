package locale

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func stubManager() *Manager {
	m := NewManager()
	m.Register("icu", newStub("icu"))
	m.Register("posix", newStub("posix"))
	m.Select("icu", AllCategories)
	m.Select("posix", CategoryCollation)
	return m
}

func TestGeneratorInstallsSelectedBackends(t *testing.T) {
	gen, err := NewGenerator(WithManager(stubManager()))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	l := gen.Generate(Descriptor{Language: "en", Country: "US", Encoding: "UTF-8"})
	for _, category := range KnownCategories() {
		want := "icu"
		if category == CategoryCollation {
			want = "posix"
		}
		if got := installedBy(t, l, category); got != want {
			t.Fatalf("%s installed by %q, want %q", category, got, want)
		}
	}
}

func TestGeneratorCachesLocales(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	gen, err := NewGenerator(WithManager(stubManager()), WithMetrics(metrics))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	desc := Descriptor{Language: "de", Country: "DE"}
	first, _ := gen.Generate(desc).Facet(CategoryFormatting)
	second, _ := gen.Generate(desc).Facet(CategoryFormatting)
	if first != second {
		t.Fatalf("cached locale should share facets")
	}
	if got := testutil.ToFloat64(metrics.GeneratorCacheHits); got != 1 {
		t.Fatalf("cache hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.BackendInstalls.WithLabelValues("posix", "collation")); got != 1 {
		t.Fatalf("posix collation installs = %v, want 1", got)
	}

	gen.ClearCache()
	third, _ := gen.Generate(desc).Facet(CategoryFormatting)
	if third == first {
		t.Fatalf("ClearCache should force a rebuild")
	}
}

func TestGeneratorWithoutCaching(t *testing.T) {
	gen, err := NewGenerator(WithManager(stubManager()), WithCaching(false))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	desc := Descriptor{Language: "fr"}
	first, _ := gen.Generate(desc).Facet(CategoryConvert)
	second, _ := gen.Generate(desc).Facet(CategoryConvert)
	if first == second {
		t.Fatalf("expected fresh facets without caching")
	}
}

func TestGeneratorCategoriesAndKinds(t *testing.T) {
	gen, err := NewGenerator(
		WithManager(stubManager()),
		WithCategories(CategoryConvert|CategoryCalendar),
		WithFacetKinds(NoCharFacet),
	)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	l := gen.Generate(Descriptor{Language: "es"})
	if got := l.Categories(); got != CategoryCalendar {
		t.Fatalf("installed %s, want calendar only", got)
	}
}

func TestGeneratorPassesOptions(t *testing.T) {
	gen, err := NewGenerator(
		WithManager(stubManager()),
		WithBackendOption(OptionTimeZone, "Europe/Berlin"),
	)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	raw, ok := gen.Generate(Descriptor{Language: "de"}).Facet(CategoryCalendar)
	if !ok {
		t.Fatalf("calendar not installed")
	}
	if got := raw.(*stamp).timeZone; got != "Europe/Berlin" {
		t.Fatalf("time zone option = %q", got)
	}
}

func TestGeneratorUsesManagerCopy(t *testing.T) {
	m := stubManager()
	gen, err := NewGenerator(WithManager(m))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	m.Select("posix", AllCategories)

	l := gen.Generate(Descriptor{Language: "en"})
	if got := installedBy(t, l, CategoryConvert); got != "icu" {
		t.Fatalf("generator observed later selection, got %q", got)
	}
}

func TestGeneratorRejectsBadOptions(t *testing.T) {
	cases := []GeneratorOption{
		WithManager(nil),
		WithCategories(0),
		WithBackendOption("", "x"),
	}
	for i, opt := range cases {
		if _, err := NewGenerator(opt); !errors.Is(err, ErrUnsupportedConfig) {
			t.Fatalf("case %d: err = %v, want ErrUnsupportedConfig", i, err)
		}
	}
}

func TestLocaleNewCalendarWithoutFacet(t *testing.T) {
	_, err := Classic().NewCalendar()
	if !errors.Is(err, ErrMissingFacet) {
		t.Fatalf("NewCalendar err = %v, want ErrMissingFacet", err)
	}
}

func TestLocaleWithDoesNotMutate(t *testing.T) {
	base := New(Descriptor{Language: "en"})
	withInfo := base.With(CategoryInformation, NewInfo(base.Descriptor(), "std"))
	if base.Has(CategoryInformation) {
		t.Fatalf("With mutated the receiver")
	}
	info, ok := withInfo.Info()
	if !ok || info.Backend() != "std" || info.Language() != "en" || !info.IsUTF8() {
		t.Fatalf("unexpected info facet %+v", info)
	}
	if multi := base.With(CategoryInformation|CategoryConvert, "x"); multi.Categories() != 0 {
		t.Fatalf("With accepted a multi-bit category")
	}
	if _, ok := withInfo.Converter(); ok {
		t.Fatalf("converter should be missing")
	}
}
