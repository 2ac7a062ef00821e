package main

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"lineage/internal/ingest"
	"lineage/internal/legacy"
	"lineage/internal/person"
)

// tableLines returns the bordered table at the start of a rendering and
// checks every border line shares one width.
func tableLines(t *testing.T, out string) []string {
	t.Helper()

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if len(lines) < 4 {
		t.Fatalf("expected a bordered table, got:\n%s", out)
	}
	width := utf8.RuneCountInString(lines[0])
	for _, line := range lines[1:] {
		if utf8.RuneCountInString(line) != width {
			t.Fatalf("ragged table line %q in:\n%s", line, out)
		}
	}
	return lines
}

func TestRenderImportSummary(t *testing.T) {
	summary := ingest.Summary{
		TotalRows:   6,
		Valid:       5,
		Imported:    4,
		Failed:      1,
		SkippedRows: []int{3},
		Errors:      []string{"Batch 1 (5 records): store unavailable"},
	}

	out := renderImportSummary(summary, 10)
	tableLines(t, out)
	for _, want := range []string{
		"Metric", "Count",
		"Rows read", "Valid records", "Imported", "Failed",
		"Skipped rows (missing full name): line 3",
		"Batch 1 (5 records): store unavailable",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary should contain %q:\n%s", want, out)
		}
	}
}

func TestRenderImportSummaryCapsErrors(t *testing.T) {
	summary := ingest.Summary{Valid: 25, Failed: 25}
	for i := 1; i <= 25; i++ {
		summary.Errors = append(summary.Errors, fmt.Sprintf("Batch %d (1 records): boom", i))
	}

	out := renderImportSummary(summary, 10)
	if !strings.Contains(out, "Batch 10") {
		t.Error("tenth error should be shown")
	}
	if strings.Contains(out, "Batch 11 ") {
		t.Error("eleventh error should be hidden")
	}
	if !strings.Contains(out, "... and 15 more") {
		t.Errorf("hidden error count missing:\n%s", out)
	}
}

func TestRenderMigrateReport(t *testing.T) {
	report := legacy.Report{
		Records:     2,
		Individuals: 5,
		Created:     4,
		Failed:      1,
		Errors:      []string{"record 2: 1 blank individual names skipped"},
	}

	out := renderMigrateReport(report, 10)
	tableLines(t, out)
	for _, want := range []string{"Legacy records", "Individuals found", "Success rate", "80.0%", "blank individual names"} {
		if !strings.Contains(out, want) {
			t.Errorf("report should contain %q:\n%s", want, out)
		}
	}
}

func TestRenderRecordOmitsEmptyFields(t *testing.T) {
	rec := &person.Record{
		ID:        "abc-123",
		CreatedBy: "tester",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	rec.FullName = "Adaeze Okafor"
	rec.Gender = person.GenderFemale
	rec.Village = "Umudim"
	rec.Visibility = person.VisibilityPrivate

	out := renderRecord(rec)
	tableLines(t, out)
	for _, want := range []string{"abc-123", "Adaeze Okafor", "Umudim", "tester"} {
		if !strings.Contains(out, want) {
			t.Errorf("record rendering should contain %q:\n%s", want, out)
		}
	}
	for _, absent := range []string{"Occupation", "Source details", "Ancestral house"} {
		if strings.Contains(out, absent) {
			t.Errorf("empty field %q should be omitted:\n%s", absent, out)
		}
	}
}

func TestRenderVerdict(t *testing.T) {
	if got := renderVerdict(true, "done", false); got != "done" {
		t.Errorf("plain verdict = %q", got)
	}
	if got := renderVerdict(true, "done", true); got != ansiGreen+"done"+ansiReset {
		t.Errorf("clean colorized verdict = %q", got)
	}
	if got := renderVerdict(false, "failed", true); got != ansiRed+"failed"+ansiReset {
		t.Errorf("failed colorized verdict = %q", got)
	}
}
