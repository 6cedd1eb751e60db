package icu

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/text/language"

	locale "github.com/goliatone/go-locale"
	"github.com/goliatone/go-locale/internal/gcal"
	"github.com/goliatone/go-locale/internal/rules"
)

type parser struct {
	rules rules.Rules
	loc   *time.Location
}

func newParser(tag language.Tag, tz string) *parser {
	p := &parser{rules: rules.For(tag)}
	if tz != "" {
		p.loc = gcal.LoadZone(tz).Loc
	}
	return p
}

func (p *parser) ParseNumber(s string) (float64, error) {
	v, err := p.rules.ParseNumber(s)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q: %v", locale.ErrParse, s, err)
	}
	return v, nil
}

// ParseTime accepts any layout dateparse recognizes. loc wins over the
// backend's time_zone option; both default to UTC.
func (p *parser) ParseTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = p.loc
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q: %v", locale.ErrParse, s, err)
	}
	return t, nil
}

var _ locale.Parser = (*parser)(nil)
