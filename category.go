package locale

import (
	"fmt"
	"math/bits"
	"strings"
)

// Category is a bit set of independent areas of locale behaviour.
type Category uint32

const (
	CategoryConvert     Category = 1 << 0
	CategoryCollation   Category = 1 << 1
	CategoryFormatting  Category = 1 << 2
	CategoryParsing     Category = 1 << 3
	CategoryCodepage    Category = 1 << 5
	CategoryCalendar    Category = 1 << 16
	CategoryInformation Category = 1 << 17

	// AllCategories selects every slot, including unassigned bits.
	AllCategories Category = 0xFFFFFFFF
)

// categorySlots is the number of selection slots, one per bit.
const categorySlots = 32

// FacetKind selects which character flavours a facet is installed for.
type FacetKind uint32

const (
	// NoCharFacet is used for categories that do not depend on characters.
	NoCharFacet FacetKind = 0
	// CharFacet installs facets working on UTF-8 strings.
	CharFacet FacetKind = 1 << 0
	// RuneFacet installs facets working on rune slices.
	RuneFacet FacetKind = 1 << 1

	AllFacetKinds = CharFacet | RuneFacet
)

var categoryNames = []struct {
	cat  Category
	name string
}{
	{CategoryConvert, "convert"},
	{CategoryCollation, "collation"},
	{CategoryFormatting, "formatting"},
	{CategoryParsing, "parsing"},
	{CategoryCodepage, "codepage"},
	{CategoryCalendar, "calendar"},
	{CategoryInformation, "information"},
}

// KnownCategories lists the named categories in bit order.
func KnownCategories() []Category {
	out := make([]Category, 0, len(categoryNames))
	for _, c := range categoryNames {
		out = append(out, c.cat)
	}
	return out
}

// Single reports whether exactly one bit is set.
func (c Category) Single() bool {
	return bits.OnesCount32(uint32(c)) == 1
}

// slot returns the bit index of a single-bit category.
func (c Category) slot() int {
	return bits.TrailingZeros32(uint32(c))
}

// CharDependent reports whether the category's facets depend on the
// character type and therefore need a non-zero FacetKind.
func (c Category) CharDependent() bool {
	return c&(CategoryCalendar|CategoryInformation) == 0
}

func (c Category) String() string {
	if c == AllCategories {
		return "all"
	}
	if c == 0 {
		return "none"
	}
	var parts []string
	rest := c
	for _, entry := range categoryNames {
		if c&entry.cat != 0 {
			parts = append(parts, entry.name)
			rest &^= entry.cat
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseCategory resolves a category name as used in configuration files.
func ParseCategory(name string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "all" {
		return AllCategories, nil
	}
	for _, entry := range categoryNames {
		if entry.name == key {
			return entry.cat, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// ParseCategories ORs several category names together.
func ParseCategories(names ...string) (Category, error) {
	var out Category
	for _, name := range names {
		c, err := ParseCategory(name)
		if err != nil {
			return 0, err
		}
		out |= c
	}
	return out, nil
}
