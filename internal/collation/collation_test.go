package collation

import (
	"bytes"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	locale "github.com/goliatone/go-locale"
)

func TestLevels(t *testing.T) {
	c := New(language.English)
	cases := []struct {
		level locale.CollateLevel
		a, b  string
		want  int
	}{
		{locale.Primary, "a", "A", 0},
		{locale.Primary, "résumé", "resume", 0},
		{locale.Primary, "a", "b", -1},
		{locale.Secondary, "a", "A", 0},
		{locale.Secondary, "résumé", "resume", 1},
		{locale.Tertiary, "a", "A", -1},
		{locale.Tertiary, "a", "ç", -1},
		{locale.Tertiary, "ç", "d", -1},
		{locale.Identical, "abc", "abc", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.Compare(tc.level, tc.a, tc.b), "%v %q %q", tc.level, tc.a, tc.b)
	}
}

func TestTransformMatchesCompare(t *testing.T) {
	c := New(language.German)
	words := []string{"Apfel", "apfel", "Äpfel", "Zebra", "zucker", "über", "Ufer"}
	for _, level := range []locale.CollateLevel{locale.Primary, locale.Secondary, locale.Tertiary, locale.Identical} {
		for _, a := range words {
			for _, b := range words {
				want := c.Compare(level, a, b)
				got := bytes.Compare(c.Transform(level, a), c.Transform(level, b))
				assert.Equal(t, want, got, "level %v: %q vs %q", level, a, b)
			}
		}
	}
}

func TestHashAgreesWithEquality(t *testing.T) {
	c := New(language.French)
	assert.Equal(t, c.Hash(locale.Primary, "Élan"), c.Hash(locale.Primary, "elan"))
	assert.NotEqual(t, c.Hash(locale.Tertiary, "Élan"), c.Hash(locale.Tertiary, "elan"))
}

func TestConcurrentUse(t *testing.T) {
	c := New(language.English)
	workers := runtime.GOMAXPROCS(0) * 4

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if c.Compare(locale.Primary, "Straße", "strasse") != 0 {
					t.Errorf("primary comparison should ignore case")
					return
				}
				c.Transform(locale.Tertiary, "concurrent")
			}
		}()
	}
	wg.Wait()
}
