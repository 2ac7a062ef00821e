package ingest

import (
	"log/slog"

	"lineage/internal/csvtext"
	"lineage/internal/person"
	"lineage/internal/rowmap"
)

// CollectCSV maps every data row of a parsed file through the row mapper,
// in file order. Rejected rows are logged and returned as their 1-based
// line numbers; a bad row never stops the rows after it.
func CollectCSV(file *csvtext.File, logger *slog.Logger) ([]person.FormSubmission, []int) {
	if logger == nil {
		logger = slog.Default()
	}

	forms := make([]person.FormSubmission, 0, len(file.Rows))
	var skipped []int
	for _, row := range file.Rows {
		form, err := rowmap.RowToForm(file.RowMap(row), row.Line)
		if err != nil {
			skipped = append(skipped, row.Line)
			logger.Warn("row skipped", slog.Int("row", row.Line), slog.Any("error", err))
			continue
		}
		forms = append(forms, *form)
	}
	return forms, skipped
}
