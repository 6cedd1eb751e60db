package posix

import (
	"bytes"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	locale "github.com/goliatone/go-locale"
)

// converter maps case rune by rune like towupper/towlower. The POSIX API
// has no title case or normalization; Normalize goes through x/text.
type converter struct{}

func (converter) ToUpper(s string) string  { return strings.Map(unicode.ToUpper, s) }
func (converter) ToLower(s string) string  { return strings.Map(unicode.ToLower, s) }
func (converter) ToTitle(s string) string  { return strings.Map(unicode.ToTitle, s) }
func (converter) FoldCase(s string) string { return strings.Map(unicode.ToLower, s) }

func (converter) Normalize(s string, form locale.NormForm) string {
	switch form {
	case locale.NFD:
		return norm.NFD.String(s)
	case locale.NFKC:
		return norm.NFKC.String(s)
	case locale.NFKD:
		return norm.NFKD.String(s)
	}
	return norm.NFC.String(s)
}

// collator orders strings like strcoll. The C locale compares bytes; other
// locales compare the canonical decomposition so that accented letters sort
// next to their base letter. Levels do not exist in this API and are ignored.
type collator struct {
	classic bool
}

func newCollator(desc locale.Descriptor) collator {
	return collator{classic: desc.IsClassic()}
}

func (c collator) Compare(_ locale.CollateLevel, a, b string) int {
	return bytes.Compare(c.key(a), c.key(b))
}

// Transform plays the role of strxfrm.
func (c collator) Transform(_ locale.CollateLevel, s string) []byte {
	return c.key(s)
}

func (c collator) Hash(_ locale.CollateLevel, s string) uint64 {
	return uint64(pjwHash(c.key(s)))
}

func (c collator) key(s string) []byte {
	if c.classic {
		return []byte(s)
	}
	return norm.NFD.Bytes([]byte(s))
}

// pjwHash is the PJW/ELF hash used by gettext catalogs.
func pjwHash(data []byte) uint32 {
	var state uint32
	for _, b := range data {
		state = (state << 4) + uint32(b)
		if high := state & 0xF0000000; high != 0 {
			state ^= high >> 24
			state ^= high
		}
	}
	return state
}

var (
	_ locale.Converter = converter{}
	_ locale.Collator  = collator{}
)
