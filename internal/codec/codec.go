// Package codec converts text between UTF-8 and legacy character sets for
// the codepage facets.
package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"

	locale "github.com/goliatone/go-locale"
)

// UTF8 is the canonical name of the pass-through codec.
const UTF8 = "UTF-8"

// Codec implements locale.Codec on top of an x/text encoding. A nil
// encoding means UTF-8.
type Codec struct {
	name string
	enc  encoding.Encoding
}

// New wraps enc under name.
func New(name string, enc encoding.Encoding) *Codec {
	return &Codec{name: name, enc: enc}
}

// ByHTMLName resolves encodings through the WHATWG index used by browsers.
func ByHTMLName(name string) (*Codec, error) {
	if isUTF8(name) {
		return New(UTF8, nil), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unsupported encoding %q", locale.ErrCodec, name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = name
	}
	return New(canonical, enc), nil
}

// ByCharmapName resolves single byte code pages such as ISO8859-1, KOI8-R or
// CP1251.
func ByCharmapName(name string) (*Codec, error) {
	if isUTF8(name) {
		return New(UTF8, nil), nil
	}
	want := normalize(name)
	if rest, ok := strings.CutPrefix(want, "cp"); ok {
		want = "windows" + rest
	}
	for _, enc := range charmap.All {
		cm, ok := enc.(*charmap.Charmap)
		if !ok {
			continue
		}
		if normalize(cm.String()) == want {
			return New(cm.String(), cm), nil
		}
	}
	return nil, fmt.Errorf("%w: unsupported encoding %q", locale.ErrCodec, name)
}

func normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '-', '_', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isUTF8(name string) bool {
	n := normalize(name)
	return n == "" || n == "utf8"
}

func (c *Codec) Encoding() string {
	return c.name
}

// Encode converts s from UTF-8. Characters the target cannot represent are
// an error.
func (c *Codec) Encode(s string) ([]byte, error) {
	if c.enc == nil {
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: invalid UTF-8 input", locale.ErrCodec)
		}
		return []byte(s), nil
	}
	out, err := c.enc.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("%w: encode to %s: %v", locale.ErrCodec, c.name, err)
	}
	return []byte(out), nil
}

// Decode converts b to UTF-8.
func (c *Codec) Decode(b []byte) (string, error) {
	if c.enc == nil {
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: invalid UTF-8 input", locale.ErrCodec)
		}
		return string(b), nil
	}
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: decode from %s: %v", locale.ErrCodec, c.name, err)
	}
	return string(out), nil
}

var _ locale.Codec = (*Codec)(nil)
