//go:build !windows

package winapi

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/width"

	locale "github.com/goliatone/go-locale"
	"github.com/goliatone/go-locale/internal/collation"
	"github.com/goliatone/go-locale/internal/rules"
)

func nativeRules(desc locale.Descriptor) rules.Rules {
	return tableRules(desc)
}

func firstDayOfWeek(locale.Descriptor) (int, bool) {
	return 0, false
}

// newCollator stands in for CompareStringEx, which ignores width
// differences by default.
func newCollator(desc locale.Descriptor) locale.Collator {
	return widthFolding{inner: collation.New(desc.Tag(), collate.IgnoreWidth)}
}

// widthFolding maps fullwidth and halfwidth forms to their canonical width
// before collating. collate.IgnoreWidth alone still tells them apart at
// tertiary strength.
type widthFolding struct {
	inner *collation.Collator
}

func (c widthFolding) Compare(level locale.CollateLevel, a, b string) int {
	return c.inner.Compare(level, width.Fold.String(a), width.Fold.String(b))
}

func (c widthFolding) Transform(level locale.CollateLevel, s string) []byte {
	return c.inner.Transform(level, width.Fold.String(s))
}

func (c widthFolding) Hash(level locale.CollateLevel, s string) uint64 {
	return c.inner.Hash(level, width.Fold.String(s))
}
