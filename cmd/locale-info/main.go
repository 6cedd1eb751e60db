package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/napalu/goopt/v2"

	locale "github.com/goliatone/go-locale"
	_ "github.com/goliatone/go-locale/backends/all"
	"github.com/goliatone/go-locale/calendar"
)

// Config holds the command line flags.
type Config struct {
	Locale   string `goopt:"name:locale;short:l;default:en_US.UTF-8;desc:Locale name as language_COUNTRY.encoding@variant"`
	Config   string `goopt:"name:config;short:c;desc:Backend selection file (.yaml, .yml or .json)"`
	TimeZone string `goopt:"name:time-zone;short:z;desc:Time zone for formatting and calendars"`
	Verbose  bool   `goopt:"name:verbose;short:v;desc:Log backend installs to stderr"`
}

func main() {
	cfg := &Config{}
	parser, err := goopt.NewParserFromStruct(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "locale-info: %v\n", err)
		os.Exit(1)
	}

	if !parser.Parse(os.Args) {
		for _, parseErr := range parser.GetErrors() {
			fmt.Fprintf(os.Stderr, " - %s\n", parseErr)
		}
		parser.PrintUsageWithGroups(os.Stdout)
		os.Exit(1)
	}

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "locale-info: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *Config, out, errOut io.Writer) error {
	logger := slog.New(slog.DiscardHandler)
	if cfg.Verbose {
		logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	opts := []locale.GeneratorOption{locale.WithLogger(logger)}
	if cfg.Config != "" {
		bc, err := locale.LoadBackendConfig(cfg.Config)
		if err != nil {
			return err
		}
		opts = append(opts, locale.WithBackendConfig(bc))
	}
	if cfg.TimeZone != "" {
		opts = append(opts, locale.WithBackendOption(locale.OptionTimeZone, cfg.TimeZone))
	}

	gen, err := locale.NewGenerator(opts...)
	if err != nil {
		return err
	}
	desc := parseDescriptor(cfg.Locale)
	l := gen.Generate(desc)

	fmt.Fprintf(out, "locale:   %s (%s)\n", desc, desc.Tag())
	fmt.Fprintf(out, "backends: %s\n\n", strings.Join(gen.Manager().Names(), ", "))

	printSelection(out, gen.Manager(), l)
	printSamples(out, l)
	return printCalendar(out, l)
}

// parseDescriptor splits language_COUNTRY.encoding@variant.
func parseDescriptor(name string) locale.Descriptor {
	var d locale.Descriptor
	name = strings.TrimSpace(name)
	name, d.Variant, _ = strings.Cut(name, "@")
	name, d.Encoding, _ = strings.Cut(name, ".")
	d.Language, d.Country, _ = strings.Cut(name, "_")
	if d.Language == "" {
		return locale.ClassicDescriptor
	}
	return d
}

func printSelection(out io.Writer, m *locale.Manager, l locale.Locale) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tSELECTED\tINSTALLED")
	for _, category := range locale.KnownCategories() {
		name, ok := m.Selected(category)
		if !ok {
			name = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%t\n", category, name, l.Has(category))
	}
	tw.Flush()
	fmt.Fprintln(out)
}

func printSamples(out io.Writer, l locale.Locale) {
	f, ok := l.Formatter()
	if !ok {
		return
	}
	now := time.Now()
	fmt.Fprintf(out, "number:   %s\n", f.FormatNumber(1234567.891, 2))
	fmt.Fprintf(out, "currency: %s / %s\n", f.FormatCurrency(1043.34, "", false), f.FormatCurrency(1043.34, "", true))
	fmt.Fprintf(out, "percent:  %s\n", f.FormatPercent(0.256, 1))
	fmt.Fprintf(out, "date:     %s\n", f.FormatDate(now))
	fmt.Fprintf(out, "time:     %s\n", f.FormatTime(now))
	fmt.Fprintf(out, "datetime: %s\n\n", f.FormatDateTime(now))
}

func printCalendar(out io.Writer, l locale.Locale) error {
	if !l.Has(locale.CategoryCalendar) {
		return nil
	}
	cal, err := l.NewCalendar()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "time zone: %s\n", cal.TimeZone())

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tCURRENT\tMIN\tMAX\tACTUAL MAX")
	for _, field := range calendar.Fields() {
		values := make([]int, 0, 4)
		for _, kind := range []calendar.ValueKind{calendar.Current, calendar.AbsoluteMinimum, calendar.AbsoluteMaximum, calendar.ActualMaximum} {
			v, err := cal.Field(field, kind)
			if err != nil {
				return fmt.Errorf("field %s: %w", field, err)
			}
			values = append(values, v)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", field, values[0], values[1], values[2], values[3])
	}
	return tw.Flush()
}
