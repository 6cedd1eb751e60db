package calendar

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/goliatone/go-locale/internal/gcal"
)

// Engine is a Calendar backed by the native calendar engine. Every method
// takes the instance lock, so one Engine may be shared between goroutines.
type Engine struct {
	mu       sync.Mutex
	cal      *gcal.Calendar
	encoding string
}

type engineConfig struct {
	country  string
	encoding string
	zone     string
	rules    *WeekRules
}

// EngineOption configures NewEngine.
type EngineOption func(*engineConfig)

// WithCountry picks week rules from the region's conventions.
func WithCountry(country string) EngineOption {
	return func(c *engineConfig) {
		c.country = country
	}
}

// WithEncoding sets the character encoding TimeZone reports identifiers in.
func WithEncoding(encoding string) EngineOption {
	return func(c *engineConfig) {
		c.encoding = encoding
	}
}

// WithTimeZone sets the initial time zone. The host zone is used otherwise.
func WithTimeZone(id string) EngineOption {
	return func(c *engineConfig) {
		c.zone = id
	}
}

// WithWeekRules overrides the week rules derived from the country.
func WithWeekRules(rules WeekRules) EngineOption {
	return func(c *engineConfig) {
		c.rules = &rules
	}
}

// NewEngine returns an Engine set to the current instant.
func NewEngine(opts ...EngineOption) *Engine {
	cfg := engineConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	rules := RulesFor(cfg.country)
	if cfg.rules != nil {
		rules = *cfg.rules
	}

	zone := gcal.LocalZone()
	if cfg.zone != "" {
		zone = gcal.LoadZone(cfg.zone)
	}

	return &Engine{
		cal:      gcal.New(zone, rules.native()),
		encoding: cfg.encoding,
	}
}

func dateTimeError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrDateTime, err)
}

// Clone returns an independent copy holding the same state.
func (e *Engine) Clone() Calendar {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &Engine{cal: e.cal.Clone(), encoding: e.encoding}
}

func (e *Engine) SetField(f Field, v int) error {
	nf, err := ToNative(f)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return dateTimeError(e.cal.Set(nf, v))
}

func (e *Engine) Field(f Field, kind ValueKind) (int, error) {
	if f == FirstDayOfWeek {
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.cal.Rules().FirstDayOfWeek, nil
	}
	nf, err := ToNative(f)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	var v int
	switch kind {
	case AbsoluteMinimum:
		v = e.cal.Limit(nf, gcal.LimitMinimum)
	case GreatestMinimum:
		v = e.cal.Limit(nf, gcal.LimitGreatestMinimum)
	case LeastMaximum:
		v = e.cal.Limit(nf, gcal.LimitLeastMaximum)
	case AbsoluteMaximum:
		v = e.cal.Limit(nf, gcal.LimitMaximum)
	case ActualMinimum:
		v, err = e.cal.ActualMinimum(nf)
	case ActualMaximum:
		v, err = e.cal.ActualMaximum(nf)
	default:
		v, err = e.cal.Get(nf)
	}
	if err != nil {
		return 0, dateTimeError(err)
	}
	return v, nil
}

// SetTime sets the instant. Precision below one microsecond is not kept.
func (e *Engine) SetTime(t PosixTime) error {
	ms := t.millis()
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return fmt.Errorf("%w: invalid time value", ErrDateTime)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return dateTimeError(e.cal.SetTime(ms))
}

func (e *Engine) Time() (PosixTime, error) {
	e.mu.Lock()
	ms, err := e.cal.Time()
	e.mu.Unlock()
	if err != nil {
		return PosixTime{}, dateTimeError(err)
	}
	return posixFromMillis(ms), nil
}

func posixFromMillis(ms float64) PosixTime {
	secs := math.Floor(ms / 1000)
	micros := math.Round((ms - secs*1000) * 1000)
	nanos := micros * 1000
	if nanos > 999_999_999 {
		nanos = 999_999_999
	}
	if nanos < 0 {
		nanos = 0
	}
	return PosixTime{Seconds: int64(secs), Nanoseconds: uint32(nanos)}
}

func (e *Engine) Normalize() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, err := e.cal.Get(gcal.Year)
	return dateTimeError(err)
}

func (e *Engine) Adjust(f Field, mode UpdateMode, delta int) error {
	nf, err := ToNative(f)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if mode == Roll {
		return dateTimeError(e.cal.Roll(nf, delta))
	}
	return dateTimeError(e.cal.Add(nf, delta))
}

// Difference counts units of f from the receiver to other. The computation
// runs on a private copy, so neither calendar moves.
func (e *Engine) Difference(other Calendar, f Field) (int, error) {
	nf, err := ToNative(f)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	self := e.cal.Clone()
	e.mu.Unlock()

	var target float64
	if peer, ok := other.(*Engine); ok {
		peer.mu.Lock()
		target, err = peer.cal.Time()
		peer.mu.Unlock()
		if err != nil {
			return 0, dateTimeError(err)
		}
	} else {
		pt, err := other.Time()
		if err != nil {
			return 0, err
		}
		target = pt.millis()
	}

	n, err := self.FieldDifference(target, nf)
	if err != nil {
		return 0, dateTimeError(err)
	}
	return n, nil
}

// SetTimeZone moves the calendar to zone id keeping the instant. Unknown
// identifiers select a GMT zone reported as "Etc/Unknown".
func (e *Engine) SetTimeZone(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cal.SetZone(gcal.LoadZone(id))
}

// TimeZone returns the zone identifier in the engine's encoding.
func (e *Engine) TimeZone() string {
	e.mu.Lock()
	id := e.cal.Zone().ID
	enc := e.encoding
	e.mu.Unlock()
	return encodeID(id, enc)
}

func encodeID(id, encoding string) string {
	if encoding == "" || strings.EqualFold(encoding, "utf-8") || strings.EqualFold(encoding, "utf8") {
		return id
	}
	codec, err := htmlindex.Get(encoding)
	if err != nil {
		return id
	}
	out, err := codec.NewEncoder().String(id)
	if err != nil {
		return id
	}
	return out
}

func (e *Engine) Option(o Option) (bool, error) {
	switch o {
	case IsGregorian:
		return true, nil
	case IsDST:
		e.mu.Lock()
		defer e.mu.Unlock()
		dst, err := e.cal.InDaylightTime()
		if err != nil {
			return false, dateTimeError(err)
		}
		return dst, nil
	}
	return false, nil
}

func (e *Engine) SetOption(o Option, _ bool) error {
	switch o {
	case IsGregorian:
		return fmt.Errorf("%w: is_gregorian", ErrOptionNotSettable)
	case IsDST:
		return fmt.Errorf("%w: is_dst", ErrOptionNotSettable)
	}
	return nil
}

// SameRules reports whether other is an Engine with equivalent rules and
// time zone.
func (e *Engine) SameRules(other Calendar) bool {
	peer, ok := other.(*Engine)
	if !ok {
		return false
	}
	if peer == e {
		return true
	}
	e.mu.Lock()
	self := e.cal.Clone()
	e.mu.Unlock()
	peer.mu.Lock()
	defer peer.mu.Unlock()
	return self.IsEquivalentTo(peer.cal)
}
