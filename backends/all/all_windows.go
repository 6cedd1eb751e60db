//go:build windows

package all

import _ "github.com/goliatone/go-locale/backends/winapi"
