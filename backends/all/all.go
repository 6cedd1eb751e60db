// Package all registers the bundled backends with the default registry.
// Import it for its side effects:
//
//	import _ "github.com/goliatone/go-locale/backends/all"
package all

import (
	_ "github.com/goliatone/go-locale/backends/icu"
	_ "github.com/goliatone/go-locale/backends/std"
)
