package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	locale "github.com/goliatone/go-locale"
)

func TestParseDescriptor(t *testing.T) {
	cases := map[string]locale.Descriptor{
		"en_US.UTF-8": {Language: "en", Country: "US", Encoding: "UTF-8"},
		"de_CH@1901":  {Language: "de", Country: "CH", Variant: "1901"},
		"ru.KOI8-R":   {Language: "ru", Encoding: "KOI8-R"},
		"":            locale.ClassicDescriptor,
		" fr_FR ":     {Language: "fr", Country: "FR"},
	}
	for input, want := range cases {
		if got := parseDescriptor(input); got != want {
			t.Fatalf("parseDescriptor(%q) = %+v, want %+v", input, got, want)
		}
	}
}

func TestRunPrintsSelectionAndCalendar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backends.yaml")
	config := "select:\n  all: std\n  collation: icu\noptions:\n  time_zone: GMT\n"
	if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out, errOut bytes.Buffer
	err := run(&Config{Locale: "en_US.UTF-8", Config: path, Verbose: true}, &out, &errOut)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	text := out.String()
	for _, pattern := range []string{
		`(?m)^collation\s+icu\s+true$`,
		`(?m)^formatting\s+std\s+true$`,
		`(?m)^time zone: GMT$`,
		`(?m)^month\s+\d+\s+0\s+11\s+11$`,
	} {
		if !regexp.MustCompile(pattern).MatchString(text) {
			t.Fatalf("output does not match %s:\n%s", pattern, text)
		}
	}
	if errOut.Len() == 0 {
		t.Fatalf("expected debug logs with -verbose")
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backends.toml")
	if err := os.WriteFile(path, []byte("x = 1"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var out bytes.Buffer
	if err := run(&Config{Locale: "en", Config: path}, &out, &out); err == nil {
		t.Fatalf("expected an error for a .toml config")
	}
}
