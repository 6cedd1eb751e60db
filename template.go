package locale

import (
	"text/template"
	"time"
)

// HelperConfig configures the template helpers.
type HelperConfig struct {
	// LocaleKey is the key helpers read from a map[string]any context when
	// the first argument is not a Descriptor or Locale. Defaults to "locale".
	LocaleKey string
	// OnMissing renders values when the resolved locale lacks the facet a
	// helper needs. The default prints nothing.
	OnMissing func(desc Descriptor, category Category) string
}

// TemplateHelpers exposes the formatting and conversion facets of the
// locales gen builds as go-template functions. Every helper takes the
// locale first: a Descriptor, a Locale, or a context map holding one of
// those under cfg.LocaleKey.
func TemplateHelpers(gen *Generator, cfg HelperConfig) template.FuncMap {
	if cfg.LocaleKey == "" {
		cfg.LocaleKey = "locale"
	}
	if cfg.OnMissing == nil {
		cfg.OnMissing = func(Descriptor, Category) string { return "" }
	}
	h := helpers{gen: gen, cfg: cfg}

	return template.FuncMap{
		"format_number": func(loc any, value float64, decimals int) string {
			return h.format(loc, func(f Formatter) string { return f.FormatNumber(value, decimals) })
		},
		"format_currency": func(loc any, value float64, code string) string {
			return h.format(loc, func(f Formatter) string { return f.FormatCurrency(value, code, false) })
		},
		"format_percent": func(loc any, value float64, decimals int) string {
			return h.format(loc, func(f Formatter) string { return f.FormatPercent(value, decimals) })
		},
		"format_date": func(loc any, t time.Time) string {
			return h.format(loc, func(f Formatter) string { return f.FormatDate(t) })
		},
		"format_time": func(loc any, t time.Time) string {
			return h.format(loc, func(f Formatter) string { return f.FormatTime(t) })
		},
		"format_datetime": func(loc any, t time.Time) string {
			return h.format(loc, func(f Formatter) string { return f.FormatDateTime(t) })
		},
		"format_pattern": func(loc any, t time.Time, pattern string) string {
			return h.format(loc, func(f Formatter) string { return f.FormatPattern(t, pattern) })
		},
		"upper": func(loc any, s string) string {
			return h.convert(loc, func(c Converter) string { return c.ToUpper(s) })
		},
		"lower": func(loc any, s string) string {
			return h.convert(loc, func(c Converter) string { return c.ToLower(s) })
		},
		"title": func(loc any, s string) string {
			return h.convert(loc, func(c Converter) string { return c.ToTitle(s) })
		},
	}
}

type helpers struct {
	gen *Generator
	cfg HelperConfig
}

func (h helpers) resolve(loc any) Locale {
	switch v := loc.(type) {
	case Locale:
		return v
	case Descriptor:
		return h.gen.Generate(v)
	case *Descriptor:
		if v != nil {
			return h.gen.Generate(*v)
		}
	case map[string]any:
		if inner, ok := v[h.cfg.LocaleKey]; ok {
			if _, nested := inner.(map[string]any); !nested {
				return h.resolve(inner)
			}
		}
	}
	return h.gen.Generate(ClassicDescriptor)
}

func (h helpers) format(loc any, fn func(Formatter) string) string {
	l := h.resolve(loc)
	f, ok := l.Formatter()
	if !ok {
		return h.cfg.OnMissing(l.Descriptor(), CategoryFormatting)
	}
	return fn(f)
}

func (h helpers) convert(loc any, fn func(Converter) string) string {
	l := h.resolve(loc)
	c, ok := l.Converter()
	if !ok {
		return h.cfg.OnMissing(l.Descriptor(), CategoryConvert)
	}
	return fn(c)
}
