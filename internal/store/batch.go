package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lineage/internal/ingest"
	"lineage/internal/person"
)

// CreateBatch persists a chunk of form submissions inside one transaction.
// If any record in the chunk cannot be written the transaction rolls back
// and the result reports failure for the whole chunk. Validation problems
// come back in the result's Errors; only infrastructure failures (driver,
// transaction) are returned as a Go error.
func (s *Store) CreateBatch(ctx context.Context, forms []person.FormSubmission, actor string) (ingest.BatchResult, error) {
	if len(forms) == 0 {
		return ingest.BatchResult{Success: true}, nil
	}

	var invalid []string
	for i := range forms {
		if strings.TrimSpace(forms[i].FullName) == "" {
			invalid = append(invalid, fmt.Sprintf("record %d: fullName is empty", i+1))
		}
	}
	if len(invalid) > 0 {
		return ingest.BatchResult{Success: false, Errors: invalid}, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ingest.BatchResult{}, fmt.Errorf("begin batch tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO persons (
        id, full_name, gender, village, town, state,
        verification_level, visibility, created_by, created_at, updated_at, payload
    ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return ingest.BatchResult{}, fmt.Errorf("prepare batch insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)
	created := 0
	for i := range forms {
		form := forms[i]
		form.ApplyDefaults()

		record := person.Record{
			ID:             uuid.NewString(),
			CreatedBy:      actor,
			CreatedAt:      now,
			UpdatedAt:      now,
			FormSubmission: form,
		}
		payload, err := json.Marshal(record)
		if err != nil {
			return ingest.BatchResult{
				Success: false,
				Errors:  []string{fmt.Sprintf("record %d (%s): encode: %v", i+1, form.FullName, err)},
			}, nil
		}

		if _, err := stmt.ExecContext(ctx,
			record.ID,
			form.FullName,
			string(form.Gender),
			nullableString(form.Village),
			nullableString(form.Town),
			nullableString(form.State),
			int(form.VerificationLevel),
			string(form.Visibility),
			nullableString(actor),
			timestamp,
			timestamp,
			string(payload),
		); err != nil {
			return ingest.BatchResult{}, fmt.Errorf("insert person %q: %w", form.FullName, err)
		}
		created++
	}

	if err := tx.Commit(); err != nil {
		return ingest.BatchResult{}, fmt.Errorf("commit batch: %w", err)
	}
	return ingest.BatchResult{Success: true, Created: created}, nil
}
