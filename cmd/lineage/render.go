package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"lineage/internal/ingest"
	"lineage/internal/legacy"
	"lineage/internal/person"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderVerdict is the one-line pass/fail trailer after a summary table.
func renderVerdict(clean bool, message string, colorize bool) string {
	if !colorize {
		return message
	}
	if clean {
		return ansiGreen + message + ansiReset
	}
	return ansiRed + message + ansiReset
}

func renderImportSummary(s ingest.Summary, limit int) string {
	rows := [][]string{
		{"Rows read", strconv.Itoa(s.TotalRows)},
		{"Valid records", strconv.Itoa(s.Valid)},
		{"Imported", strconv.Itoa(s.Imported)},
		{"Failed", strconv.Itoa(s.Failed)},
		{"Skipped rows", strconv.Itoa(len(s.SkippedRows))},
	}

	var b strings.Builder
	b.WriteString(countTable("Metric", rows))

	if skipped, truncated := s.DisplaySkipped(limit); len(skipped) > 0 {
		lines := make([]string, 0, len(skipped))
		for _, line := range skipped {
			lines = append(lines, strconv.Itoa(line))
		}
		b.WriteString("\n\nSkipped rows (missing full name): line ")
		b.WriteString(strings.Join(lines, ", "))
		if truncated {
			fmt.Fprintf(&b, " and %d more", len(s.SkippedRows)-len(skipped))
		}
	}

	b.WriteString(renderErrors(s.Errors, s.DisplayErrors(limit)))
	return b.String()
}

func renderMigrateReport(r legacy.Report, limit int) string {
	rows := [][]string{
		{"Legacy records", strconv.Itoa(r.Records)},
		{"Individuals found", strconv.Itoa(r.Individuals)},
		{"Persons created", strconv.Itoa(r.Created)},
		{"Failed", strconv.Itoa(r.Failed)},
		{"Success rate", fmt.Sprintf("%.1f%%", r.SuccessRate()*100)},
	}

	var b strings.Builder
	b.WriteString(countTable("Metric", rows))

	shown := r.Errors
	if limit <= 0 {
		limit = ingest.ErrorDisplayLimit
	}
	if len(shown) > limit {
		shown = shown[:limit]
	}
	b.WriteString(renderErrors(r.Errors, shown))
	return b.String()
}

func renderErrors(all, shown []string) string {
	if len(shown) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\nErrors:")
	for _, msg := range shown {
		b.WriteString("\n  - ")
		b.WriteString(msg)
	}
	if hidden := len(all) - len(shown); hidden > 0 {
		fmt.Fprintf(&b, "\n  ... and %d more", hidden)
	}
	return b.String()
}

func renderRecord(rec *person.Record) string {
	rows := [][]string{
		{"ID", rec.ID},
		{"Full name", rec.FullName},
		{"Gender", string(rec.Gender)},
	}
	appendIf := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			rows = append(rows, []string{label, value})
		}
	}
	appendIf("Date of birth", rec.DateOfBirth)
	appendIf("Village", rec.Village)
	appendIf("Town", rec.Town)
	appendIf("LGA", rec.LocalGovernmentArea)
	appendIf("State", rec.State)
	appendIf("Clan", rec.Clan)
	appendIf("Kindred", rec.Kindred)
	appendIf("Ancestral house", rec.AncestralHouseName)
	appendIf("Occupation", rec.Occupation)
	appendIf("Titles", strings.Join(rec.Titles, ", "))
	appendIf("Alternate names", strings.Join(rec.AlternateNames, ", "))
	appendIf("Source type", string(rec.SourceType))
	appendIf("Source details", rec.SourceDetails)
	rows = append(rows,
		[]string{"Verification", strconv.Itoa(int(rec.VerificationLevel))},
		[]string{"Visibility", string(rec.Visibility)},
		[]string{"Created by", rec.CreatedBy},
		[]string{"Created at", rec.CreatedAt.Format("2006-01-02 15:04:05")},
	)
	return pairTable("Field", "Value", rows)
}
