package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newTableWriter returns the rounded-style writer every command table uses,
// with the listed columns (0-based) right-aligned.
func newTableWriter(headers []string, rightAligned ...int) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, name := range headers {
		header[i] = name
	}
	tw.AppendHeader(header)

	if len(rightAligned) > 0 {
		configs := make([]table.ColumnConfig, 0, len(rightAligned))
		for _, column := range rightAligned {
			configs = append(configs, table.ColumnConfig{
				Number:      column + 1,
				Align:       text.AlignRight,
				AlignHeader: text.AlignLeft,
			})
		}
		tw.SetColumnConfigs(configs)
	}
	return tw
}

// renderRows renders a bordered table; rows shorter than the header render
// empty trailing cells.
func renderRows(headers []string, rows [][]string, rightAligned ...int) string {
	tw := newTableWriter(headers, rightAligned...)
	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}

// countTable is the label-plus-count shape the report and stats tables
// share; counts are right-aligned.
func countTable(labelHeader string, rows [][]string) string {
	return renderRows([]string{labelHeader, "Count"}, rows, 1)
}

// pairTable renders left-aligned label/value rows.
func pairTable(labelHeader, valueHeader string, rows [][]string) string {
	return renderRows([]string{labelHeader, valueHeader}, rows)
}
