package icu

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	locale "github.com/goliatone/go-locale"
)

// converter builds a fresh Caser per call; Casers keep state between calls.
type converter struct {
	tag language.Tag
}

func newConverter(tag language.Tag) *converter {
	return &converter{tag: tag}
}

func (c *converter) ToUpper(s string) string {
	return cases.Upper(c.tag).String(s)
}

func (c *converter) ToLower(s string) string {
	return cases.Lower(c.tag).String(s)
}

func (c *converter) ToTitle(s string) string {
	return cases.Title(c.tag).String(s)
}

func (c *converter) FoldCase(s string) string {
	return cases.Fold().String(s)
}

func (c *converter) Normalize(s string, form locale.NormForm) string {
	return normForm(form).String(s)
}

func normForm(form locale.NormForm) norm.Form {
	switch form {
	case locale.NFD:
		return norm.NFD
	case locale.NFKC:
		return norm.NFKC
	case locale.NFKD:
		return norm.NFKD
	}
	return norm.NFC
}

var _ locale.Converter = (*converter)(nil)
