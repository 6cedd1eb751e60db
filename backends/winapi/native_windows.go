//go:build windows

package winapi

import (
	"fmt"
	"strconv"
	"unsafe"

	"golang.org/x/sys/windows"

	locale "github.com/goliatone/go-locale"
	"github.com/goliatone/go-locale/internal/rules"
)

const (
	localeNameMaxLength = 85

	localeSDecimal        = 0x0000000E
	localeSThousand       = 0x0000000F
	localeSCurrency       = 0x00000014
	localeSIntlSymbol     = 0x00000015
	localeIFirstDayOfWeek = 0x0000100C

	normIgnoreCase     = 0x00000001
	normIgnoreNonSpace = 0x00000002
	normIgnoreSymbols  = 0x00000004

	lcmapSortKey = 0x00000400

	cstrLessThan = 1
	cstrEqual    = 2
)

var (
	kernel32            = windows.NewLazySystemDLL("kernel32.dll")
	procGetLocaleInfoEx = kernel32.NewProc("GetLocaleInfoEx")
	procCompareStringEx = kernel32.NewProc("CompareStringEx")
	procLCMapStringEx   = kernel32.NewProc("LCMapStringEx")
)

// localeName returns the Windows locale name; the invariant locale is the
// empty string.
func localeName(desc locale.Descriptor) string {
	if desc.IsClassic() {
		return ""
	}
	return desc.Tag().String()
}

func localeInfo(name string, lctype uint32) (string, error) {
	if err := procGetLocaleInfoEx.Find(); err != nil {
		return "", err
	}
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return "", err
	}
	buf := make([]uint16, localeNameMaxLength)
	ret, _, callErr := procGetLocaleInfoEx.Call(
		uintptr(unsafe.Pointer(namePtr)),
		uintptr(lctype),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if ret == 0 {
		return "", fmt.Errorf("GetLocaleInfoEx(%q, %#x): %w", name, lctype, callErr)
	}
	return windows.UTF16ToString(buf), nil
}

// nativeRules starts from the shared table and overrides what the host
// reports for the locale.
func nativeRules(desc locale.Descriptor) rules.Rules {
	r := tableRules(desc)
	name := localeName(desc)
	if v, err := localeInfo(name, localeSDecimal); err == nil && v != "" {
		r.Currency.DecimalSep = v
	}
	if v, err := localeInfo(name, localeSThousand); err == nil {
		r.Currency.ThousandSep = v
	}
	if v, err := localeInfo(name, localeSCurrency); err == nil && v != "" {
		r.Currency.Symbol = v
	}
	if v, err := localeInfo(name, localeSIntlSymbol); err == nil && len(v) == 3 {
		r.Currency.Code = v
	}
	return r
}

// firstDayOfWeek converts LOCALE_IFIRSTDAYOFWEEK (0 is Monday) to 1 for
// Sunday through 7 for Saturday.
func firstDayOfWeek(desc locale.Descriptor) (int, bool) {
	v, err := localeInfo(localeName(desc), localeIFirstDayOfWeek)
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 6 {
		return 0, false
	}
	return (n+1)%7 + 1, true
}

type collator struct {
	name string
}

func newCollator(desc locale.Descriptor) locale.Collator {
	return collator{name: localeName(desc)}
}

func levelFlags(level locale.CollateLevel) uintptr {
	switch level {
	case locale.Primary:
		return normIgnoreSymbols | normIgnoreCase | normIgnoreNonSpace
	case locale.Secondary:
		return normIgnoreSymbols | normIgnoreCase
	case locale.Tertiary:
		return normIgnoreSymbols
	}
	return 0
}

func (c collator) Compare(level locale.CollateLevel, a, b string) int {
	name, _ := windows.UTF16PtrFromString(c.name)
	left, err := windows.UTF16FromString(a)
	if err != nil {
		return byteOrder(a, b)
	}
	right, err := windows.UTF16FromString(b)
	if err != nil {
		return byteOrder(a, b)
	}
	ret, _, _ := procCompareStringEx.Call(
		uintptr(unsafe.Pointer(name)),
		levelFlags(level),
		uintptr(unsafe.Pointer(&left[0])), uintptr(len(left)-1),
		uintptr(unsafe.Pointer(&right[0])), uintptr(len(right)-1),
		0, 0, 0,
	)
	switch ret {
	case cstrLessThan:
		return -1
	case cstrEqual:
		return 0
	case 0:
		return byteOrder(a, b)
	}
	return 1
}

// Transform returns the LCMAP_SORTKEY key.
func (c collator) Transform(level locale.CollateLevel, s string) []byte {
	name, _ := windows.UTF16PtrFromString(c.name)
	src, err := windows.UTF16FromString(s)
	if err != nil {
		return []byte(s)
	}
	flags := levelFlags(level) | lcmapSortKey
	call := func(dst []byte) uintptr {
		var ptr uintptr
		if len(dst) > 0 {
			ptr = uintptr(unsafe.Pointer(&dst[0]))
		}
		ret, _, _ := procLCMapStringEx.Call(
			uintptr(unsafe.Pointer(name)),
			flags,
			uintptr(unsafe.Pointer(&src[0])), uintptr(len(src)-1),
			ptr, uintptr(len(dst)),
			0, 0, 0,
		)
		return ret
	}
	size := call(nil)
	if size == 0 {
		return []byte(s)
	}
	key := make([]byte, size)
	n := call(key)
	// The key is NUL terminated.
	if n > 0 && key[n-1] == 0 {
		n--
	}
	return key[:n]
}

func (c collator) Hash(level locale.CollateLevel, s string) uint64 {
	return hashKey(c.Transform(level, s))
}
