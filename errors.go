package locale

import "errors"

// ErrUnknownCategory indicates a category name that is not recognised.
var ErrUnknownCategory = errors.New("locale: unknown category")

// ErrUnsupportedConfig marks a backend configuration file that cannot be decoded.
var ErrUnsupportedConfig = errors.New("locale: unsupported backend config")

// ErrMissingFacet is returned when a locale lacks the requested facet.
var ErrMissingFacet = errors.New("locale: missing facet")

// ErrParse wraps provider parsing failures.
var ErrParse = errors.New("locale: parse error")

// ErrCodec wraps character set conversion failures.
var ErrCodec = errors.New("locale: codec error")
