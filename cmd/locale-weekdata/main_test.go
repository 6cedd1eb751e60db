package main

import (
	"strings"
	"testing"
)

func TestRenderSourceSortsAndPrunes(t *testing.T) {
	week := weekData{FirstDay: map[string]int{}, MinDays: map[string]int{}}
	assign(week.FirstDay, "001 GB", 2)
	assign(week.FirstDay, "us ca", 1)
	assign(week.MinDays, "001", 1)
	assign(week.MinDays, "DE", 4)
	week.FirstDayDefault, week.MinDaysDefault = 2, 1
	prune(week.FirstDay, week.FirstDayDefault)
	prune(week.MinDays, week.MinDaysDefault)

	if _, ok := week.FirstDay["GB"]; ok {
		t.Fatalf("expected GB to be pruned, got %v", week.FirstDay)
	}

	src, err := renderSource("calendar", week)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := string(src)
	if !strings.HasPrefix(out, "// Code generated by locale-weekdata. DO NOT EDIT.") {
		t.Fatalf("missing generated header:\n%s", out)
	}
	ca, us := strings.Index(out, `"CA": 1`), strings.Index(out, `"US": 1`)
	if ca < 0 || us < 0 || ca > us {
		t.Fatalf("expected sorted CA before US:\n%s", out)
	}
	if !strings.Contains(out, `"DE": 4`) || !strings.Contains(out, "weekFirstDayDefault = 2") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
