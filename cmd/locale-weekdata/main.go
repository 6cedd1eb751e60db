package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
}

// weekData is what CLDR supplemental data says about week numbering.
type weekData struct {
	FirstDayDefault int
	MinDaysDefault  int
	FirstDay        map[string]int
	MinDays         map[string]int
}

// worldRegion is the CLDR code for the defaults.
const worldRegion = "001"

var dayNumbers = map[string]int{
	"sun": 1,
	"mon": 2,
	"tue": 3,
	"wed": 4,
	"thu": 5,
	"fri": 6,
	"sat": 7,
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "locale-weekdata: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig

	flag.StringVar(&cfg.pkg, "pkg", "calendar", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "weekdata_gen.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects a supplemental/ subdirectory)")

	flag.Parse()

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}
	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}
	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	week, err := extractWeekData(data.Supplemental())
	if err != nil {
		return err
	}

	source, err := renderSource(cfg.pkg, week)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}
	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func extractWeekData(supplemental *cldr.SupplementalData) (weekData, error) {
	week := weekData{
		FirstDay: make(map[string]int),
		MinDays:  make(map[string]int),
	}
	if supplemental == nil || supplemental.WeekData == nil {
		return week, errors.New("supplemental data has no weekData section")
	}

	for _, entry := range supplemental.WeekData.FirstDay {
		if entry == nil || isAlternative(entry.GetCommon()) {
			continue
		}
		day, ok := dayNumbers[strings.ToLower(entry.Day)]
		if !ok {
			return week, fmt.Errorf("unknown first day %q", entry.Day)
		}
		assign(week.FirstDay, entry.Territories, day)
	}

	for _, entry := range supplemental.WeekData.MinDays {
		if entry == nil || isAlternative(entry.GetCommon()) {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(entry.Count))
		if err != nil || count < 1 || count > 7 {
			return week, fmt.Errorf("invalid minDays count %q", entry.Count)
		}
		assign(week.MinDays, entry.Territories, count)
	}

	var ok bool
	if week.FirstDayDefault, ok = week.FirstDay[worldRegion]; !ok {
		return week, errors.New("missing world first day")
	}
	if week.MinDaysDefault, ok = week.MinDays[worldRegion]; !ok {
		return week, errors.New("missing world minimal days")
	}

	// Only regions that differ from the defaults are emitted.
	prune(week.FirstDay, week.FirstDayDefault)
	prune(week.MinDays, week.MinDaysDefault)
	return week, nil
}

func isAlternative(common *cldr.Common) bool {
	return common != nil && common.Alt != ""
}

func assign(target map[string]int, territories string, value int) {
	for _, territory := range strings.Fields(territories) {
		target[strings.ToUpper(territory)] = value
	}
}

func prune(values map[string]int, fallback int) {
	for territory, v := range values {
		if territory == worldRegion || v == fallback {
			delete(values, territory)
		}
	}
}

func sortedKeys(values map[string]int) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func renderSource(pkg string, week weekData) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by locale-weekdata. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("const (\n")
	fmt.Fprintf(&buf, "\tweekFirstDayDefault = %d\n", week.FirstDayDefault)
	fmt.Fprintf(&buf, "\tweekMinDaysDefault = %d\n", week.MinDaysDefault)
	buf.WriteString(")\n\n")

	buf.WriteString("var weekFirstDay = map[string]int{\n")
	for _, key := range sortedKeys(week.FirstDay) {
		fmt.Fprintf(&buf, "\t%q: %d,\n", key, week.FirstDay[key])
	}
	buf.WriteString("}\n\n")

	buf.WriteString("var weekMinDays = map[string]int{\n")
	for _, key := range sortedKeys(week.MinDays) {
		fmt.Fprintf(&buf, "\t%q: %d,\n", key, week.MinDays[key])
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
