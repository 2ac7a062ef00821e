package store_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"lineage/internal/person"
	"lineage/internal/store"
	"lineage/internal/testsupport"
)

func TestOpenAppliesMigrations(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	count, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("fresh store should be empty, got %d", count)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	first := testsupport.MustOpenStore(t, cfg)
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopening against the same directory must not re-run migrations.
	second := testsupport.MustOpenStore(t, cfg)
	if _, err := second.Count(context.Background()); err != nil {
		t.Fatalf("Count after reopen failed: %v", err)
	}
}

func TestCreateBatchAndRead(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	forms := []person.FormSubmission{
		{FullName: "Chidi Okafor", Gender: person.GenderMale, State: "Anambra", Village: "Otolo"},
		{FullName: "Ada Obi", Gender: person.GenderFemale, VerificationLevel: 2, Visibility: person.VisibilityPartial},
	}
	result, err := st.CreateBatch(ctx, forms, "importer")
	if err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}
	if !result.Success || result.Created != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}

	records, err := st.SearchByName(ctx, "okafor")
	if err != nil {
		t.Fatalf("SearchByName failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 match, got %d", len(records))
	}
	record := records[0]
	if record.FullName != "Chidi Okafor" || record.Gender != person.GenderMale {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.CreatedBy != "importer" {
		t.Errorf("createdBy = %q", record.CreatedBy)
	}
	if record.Visibility != person.VisibilityPrivate {
		t.Errorf("defaults should apply at write time, visibility = %s", record.Visibility)
	}
	if !record.ConsentGranted() {
		t.Error("consent should default to granted")
	}

	fetched, err := st.GetByID(ctx, record.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if fetched.FullName != record.FullName {
		t.Fatalf("GetByID mismatch: %+v", fetched)
	}
}

func TestCreateBatchRejectsEmptyFullName(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	forms := []person.FormSubmission{
		{FullName: "Valid Person"},
		{FullName: "   "},
	}
	result, err := st.CreateBatch(ctx, forms, "importer")
	if err != nil {
		t.Fatalf("validation problems should not be infrastructure errors: %v", err)
	}
	if result.Success || result.Created != 0 {
		t.Fatalf("batch with an invalid record must fail whole: %+v", result)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %#v", result.Errors)
	}

	// Atomicity: the valid record must not have been written.
	count, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected batch leaked %d records", count)
	}
}

func TestCreateBatchEmptyChunk(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	result, err := st.CreateBatch(context.Background(), nil, "importer")
	if err != nil || !result.Success || result.Created != 0 {
		t.Fatalf("empty chunk should be a no-op: %+v, %v", result, err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	_, err := st.GetByID(context.Background(), "missing-id")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCollectStats(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	var forms []person.FormSubmission
	for i := 0; i < 3; i++ {
		forms = append(forms, person.FormSubmission{
			FullName: fmt.Sprintf("Person %d", i+1),
			Gender:   person.GenderFemale,
		})
	}
	forms = append(forms, person.FormSubmission{
		FullName:          "Verified Elder",
		Gender:            person.GenderMale,
		VerificationLevel: 3,
		Visibility:        person.VisibilityPublic,
	})
	if _, err := st.CreateBatch(ctx, forms, "importer"); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	stats, err := st.CollectStats(ctx)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}
	if stats.Total != 4 {
		t.Errorf("total = %d", stats.Total)
	}
	if stats.ByGender[person.GenderFemale] != 3 || stats.ByGender[person.GenderMale] != 1 {
		t.Errorf("by gender = %#v", stats.ByGender)
	}
	if stats.ByVisibility[person.VisibilityPublic] != 1 || stats.ByVisibility[person.VisibilityPrivate] != 3 {
		t.Errorf("by visibility = %#v", stats.ByVisibility)
	}
	if stats.ByVerification[3] != 1 || stats.ByVerification[0] != 3 {
		t.Errorf("by verification = %#v", stats.ByVerification)
	}
}

func TestSearchByNameOrdersByInsertion(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	forms := []person.FormSubmission{
		{FullName: "Obi Nwosu"},
		{FullName: "Obi Eze"},
	}
	if _, err := st.CreateBatch(ctx, forms, "importer"); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	records, err := st.SearchByName(ctx, "obi")
	if err != nil {
		t.Fatalf("SearchByName failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(records))
	}
}
