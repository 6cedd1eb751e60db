package locale

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadBackendConfigYAML(t *testing.T) {
	path := writeConfig(t, "backends.yaml", `
select:
  collation: posix
  all: icu
options:
  time_zone: Europe/Berlin
categories: [convert, collation, calendar]
`)
	cfg, err := LoadBackendConfig(path)
	if err != nil {
		t.Fatalf("LoadBackendConfig: %v", err)
	}
	if len(cfg.Select) != 2 || cfg.Select[0].Category != "collation" {
		t.Fatalf("selections should keep file order, got %+v", cfg.Select)
	}

	m := stubManager()
	m.Select("posix", AllCategories)
	if err := cfg.Apply(m); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got, _ := m.Selected(CategoryCollation); got != "posix" {
		t.Fatalf("collation = %q, want posix", got)
	}
	if got, _ := m.Selected(CategoryFormatting); got != "icu" {
		t.Fatalf("formatting = %q, want icu", got)
	}

	mask, err := cfg.CategoryMask()
	if err != nil || mask != CategoryConvert|CategoryCollation|CategoryCalendar {
		t.Fatalf("CategoryMask() = %s, %v", mask, err)
	}
}

func TestLoadBackendConfigJSON(t *testing.T) {
	path := writeConfig(t, "backends.json", `{
  "select": {"all": "posix", "formatting": "icu", "parsing": "missing"},
  "options": {"time_zone": "GMT+01:00"}
}`)
	cfg, err := LoadBackendConfig(path)
	if err != nil {
		t.Fatalf("LoadBackendConfig: %v", err)
	}

	gen, err := NewGenerator(WithManager(stubManager()), WithBackendConfig(cfg))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	l := gen.Generate(Descriptor{Language: "en"})

	cases := []struct {
		category Category
		want     string
	}{
		{CategoryFormatting, "icu"},
		{CategoryParsing, "posix"},
		{CategoryCodepage, "posix"},
	}
	for _, tc := range cases {
		if got := installedBy(t, l, tc.category); got != tc.want {
			t.Fatalf("%s installed by %q, want %q", tc.category, got, tc.want)
		}
	}
	raw, _ := l.Facet(CategoryCalendar)
	if got := raw.(*stamp).timeZone; got != "GMT+01:00" {
		t.Fatalf("time zone = %q", got)
	}
}

func TestLoadBackendConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"backends.toml", "select = {}", ErrUnsupportedConfig},
		{"backends.yaml", "categories: [convert, boundary]", ErrUnknownCategory},
	}
	for _, tc := range cases {
		_, err := LoadBackendConfig(writeConfig(t, tc.name, tc.body))
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}

	cfg := &BackendConfig{Select: Selections{{Category: "messages", Backend: "icu"}}}
	if err := cfg.Apply(NewManager()); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("Apply err = %v", err)
	}
}

func TestCategoryNames(t *testing.T) {
	if got := (CategoryConvert | CategoryCalendar).String(); got != "convert|calendar" {
		t.Fatalf("String() = %q", got)
	}
	if got := AllCategories.String(); got != "all" {
		t.Fatalf("String() = %q", got)
	}
	mask, err := ParseCategories("Collation", " parsing ")
	if err != nil || mask != CategoryCollation|CategoryParsing {
		t.Fatalf("ParseCategories = %s, %v", mask, err)
	}
}

func TestDescriptorRendering(t *testing.T) {
	cases := []struct {
		desc Descriptor
		str  string
		tag  string
	}{
		{Descriptor{Language: "en", Country: "US", Encoding: "UTF-8"}, "en_US.UTF-8", "en-US"},
		{Descriptor{Language: "de", Country: "CH", Variant: "1901"}, "de_CH@1901", "de-CH-1901"},
		{ClassicDescriptor, "C", "und"},
	}
	for _, tc := range cases {
		if got := tc.desc.String(); got != tc.str {
			t.Fatalf("String() = %q, want %q", got, tc.str)
		}
		if got := tc.desc.Tag().String(); got != tc.tag {
			t.Fatalf("%s Tag() = %q, want %q", tc.str, got, tc.tag)
		}
	}
	if (Descriptor{Language: "ru", Encoding: "KOI8-R"}).IsUTF8() {
		t.Fatalf("KOI8-R is not UTF-8")
	}
}
