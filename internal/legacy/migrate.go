package legacy

import (
	"context"
	"fmt"
	"log/slog"

	"lineage/internal/ingest"
	"lineage/internal/person"
)

// Report summarizes a legacy migration run.
type Report struct {
	Records     int
	Individuals int
	Created     int
	Failed      int
	Errors      []string
}

// SuccessRate is persons created over individuals found in the source.
func (r Report) SuccessRate() float64 {
	if r.Individuals == 0 {
		return 0
	}
	return float64(r.Created) / float64(r.Individuals)
}

// Clean reports whether every individual became a stored person.
func (r Report) Clean() bool {
	return r.Failed == 0 && len(r.Errors) == 0
}

// Migrate expands every legacy record and persists the resulting
// submissions through the ingestion pipeline. Per-name expansion problems
// and per-chunk persistence failures are both collected without stopping
// the run; success plus failure always accounts for every individual name
// in the source.
func Migrate(ctx context.Context, records []GenealogyRecord, pipeline *ingest.Pipeline, actor string, logger *slog.Logger) Report {
	if logger == nil {
		logger = slog.Default()
	}

	report := Report{Records: len(records)}
	var forms []person.FormSubmission
	for i := range records {
		rec := &records[i]
		found := rec.Individuals()
		expanded := Expand(rec)
		report.Individuals += found
		if dropped := found - len(expanded); dropped > 0 {
			report.Failed += dropped
			report.Errors = append(report.Errors, fmt.Sprintf("record %d: %d blank individual names skipped", i+1, dropped))
			logger.Warn("blank individual names skipped", slog.Int("record", i+1), slog.Int("dropped", dropped))
		}
		forms = append(forms, expanded...)
	}

	logger.Info("legacy migration expanding complete",
		slog.Int("records", report.Records),
		slog.Int("individuals", report.Individuals),
		slog.Int("submissions", len(forms)),
	)

	summary := pipeline.Run(ctx, forms, actor)
	report.Created = summary.Imported
	report.Failed += summary.Failed
	report.Errors = append(report.Errors, summary.Errors...)
	return report
}
