package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Descriptor is a resolved locale identity. The core never parses locale
// names; callers supply the parts.
type Descriptor struct {
	Language string
	Country  string
	Encoding string
	Variant  string
}

// ClassicDescriptor describes the C locale.
var ClassicDescriptor = Descriptor{Language: "C"}

// IsClassic reports whether d names the C or POSIX locale.
func (d Descriptor) IsClassic() bool {
	switch d.Language {
	case "", "C", "POSIX":
		return true
	}
	return false
}

// IsUTF8 reports whether the encoding is UTF-8. An empty encoding counts as
// UTF-8.
func (d Descriptor) IsUTF8() bool {
	switch strings.ToLower(strings.ReplaceAll(d.Encoding, "-", "")) {
	case "", "utf8":
		return true
	}
	return false
}

// Tag converts the descriptor to a BCP 47 tag. Variants that are not valid
// BCP 47 subtags are dropped.
func (d Descriptor) Tag() language.Tag {
	if d.IsClassic() {
		return language.Und
	}
	id := strings.ToLower(d.Language)
	if d.Country != "" {
		id += "-" + strings.ToUpper(d.Country)
	}
	if d.Variant != "" {
		if tag, err := language.Parse(id + "-" + strings.ToLower(d.Variant)); err == nil {
			return tag
		}
	}
	if tag, err := language.Parse(id); err == nil {
		return tag
	}
	return language.Make(d.Language)
}

// String renders the descriptor as lang_COUNTRY.encoding@variant.
func (d Descriptor) String() string {
	var b strings.Builder
	if d.Language == "" {
		b.WriteString("C")
	} else {
		b.WriteString(d.Language)
	}
	if d.Country != "" {
		b.WriteString("_")
		b.WriteString(d.Country)
	}
	if d.Encoding != "" {
		b.WriteString(".")
		b.WriteString(d.Encoding)
	}
	if d.Variant != "" {
		b.WriteString("@")
		b.WriteString(d.Variant)
	}
	return b.String()
}
