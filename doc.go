// Package locale composes locale behaviour from interchangeable backends.
//
// A Manager keeps the registered backends and which backend serves each
// Category. Build snapshots it into a Composed backend that installs facets
// into immutable Locale values. A process-wide Manager, populated from the
// backends that registered themselves with RegisterBackend, is available
// through Global and SetGlobal. Generator ties the pieces together:
//
//	import (
//		"github.com/goliatone/go-locale"
//		_ "github.com/goliatone/go-locale/backends/all"
//	)
//
//	gen, _ := locale.NewGenerator()
//	l := gen.Generate(locale.Descriptor{Language: "de", Country: "DE", Encoding: "UTF-8"})
//	cal, _ := l.NewCalendar()
package locale
