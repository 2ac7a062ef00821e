package legacy_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"lineage/internal/ingest"
	"lineage/internal/legacy"
	"lineage/internal/logging"
	"lineage/internal/person"
)

func TestInferSourceType(t *testing.T) {
	cases := map[string]person.SourceType{
		"CHURCH ARCHIVE":          person.SourceChurchRecord,
		"st. mary church baptism": person.SourceChurchRecord,
		"Palace records":          person.SourcePalaceArchive,
		"royal court ledger":      person.SourcePalaceArchive,
		"civil registry entry":    person.SourceCivilRegistry,
		"REGISTRY":                person.SourceCivilRegistry,
		"family document":         person.SourceFamilyDocument,
		"oral account":            person.SourceOral,
		"grandmother's story":     person.SourceOral,
		"unknown provenance":      person.SourceOther,
		"":                        "",
	}
	for source, want := range cases {
		if got := legacy.InferSourceType(source); got != want {
			t.Errorf("InferSourceType(%q) = %q, want %q", source, got, want)
		}
	}
}

func sampleRecord() legacy.GenealogyRecord {
	return legacy.GenealogyRecord{
		Species:   legacy.ClassificationSpecies,
		Race:      legacy.ClassificationRace,
		Continent: legacy.ClassificationContinent,
		State:     "Anambra",
		Town:      "Nnewi",
		Village:   "Otolo",
		Umunna:    "Umudim",
		Source:    "CHURCH ARCHIVE",
		ExtendedFamily: []legacy.FamilyGroup{
			{FamilyName: "OKAFOR", IndividualNames: []string{"Chidi", "Ada"}},
		},
	}
}

func TestExpand(t *testing.T) {
	rec := sampleRecord()
	forms := legacy.Expand(&rec)

	if len(forms) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(forms))
	}
	for _, form := range forms {
		if form.SourceType != person.SourceChurchRecord {
			t.Errorf("%s: sourceType = %s", form.FullName, form.SourceType)
		}
		if form.AncestralHouseName != "Okafor" {
			t.Errorf("%s: ancestralHouseName = %q", form.FullName, form.AncestralHouseName)
		}
		if form.Village != "Otolo" || form.Umunna != "Umudim" {
			t.Errorf("%s: shared geography not carried: %+v", form.FullName, form)
		}
		if !form.ConsentGranted() {
			t.Errorf("%s: migrated data assumes consent", form.FullName)
		}
		if form.VerificationLevel != 0 || form.Visibility != person.VisibilityPrivate {
			t.Errorf("%s: unverified record defaults wrong: %d %s", form.FullName, form.VerificationLevel, form.Visibility)
		}
	}
	if forms[0].FullName != "Chidi" || forms[1].FullName != "Ada" {
		t.Fatalf("expansion order should follow the source: %q, %q", forms[0].FullName, forms[1].FullName)
	}
}

func TestExpandVerifiedRecord(t *testing.T) {
	rec := sampleRecord()
	rec.Verified = true
	forms := legacy.Expand(&rec)

	for _, form := range forms {
		if form.VerificationLevel != 2 {
			t.Errorf("verified record should migrate at level 2, got %d", form.VerificationLevel)
		}
		if form.Visibility != person.VisibilityPartial {
			t.Errorf("verified record should migrate as PARTIAL, got %s", form.Visibility)
		}
	}
}

func TestExpandDropsBlankNames(t *testing.T) {
	rec := sampleRecord()
	rec.ExtendedFamily[0].IndividualNames = []string{"Chidi", "  ", ""}

	forms := legacy.Expand(&rec)
	if len(forms) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(forms))
	}
	if rec.Individuals() != 3 {
		t.Fatalf("Individuals() should count blanks, got %d", rec.Individuals())
	}
}

// countingWriter tallies submissions passed to the store.
type countingWriter struct {
	created int
}

func (c *countingWriter) CreateBatch(ctx context.Context, forms []person.FormSubmission, actor string) (ingest.BatchResult, error) {
	c.created += len(forms)
	return ingest.BatchResult{Success: true, Created: len(forms)}, nil
}

func TestMigrate(t *testing.T) {
	records := []legacy.GenealogyRecord{sampleRecord(), sampleRecord()}
	records[1].ExtendedFamily = []legacy.FamilyGroup{
		{FamilyName: "OBI", IndividualNames: []string{"Nkechi", "", "Emeka"}},
	}

	writer := &countingWriter{}
	pipeline := ingest.New(writer, logging.NewNop(), ingest.WithChunkDelay(0))
	report := legacy.Migrate(context.Background(), records, pipeline, "migrator", logging.NewNop())

	if report.Records != 2 {
		t.Errorf("records = %d", report.Records)
	}
	if report.Individuals != 5 {
		t.Errorf("individuals = %d, want 5", report.Individuals)
	}
	if report.Created != 4 {
		t.Errorf("created = %d, want 4", report.Created)
	}
	if report.Failed != 1 {
		t.Errorf("failed = %d, want 1 (the blank name)", report.Failed)
	}
	if report.Created+report.Failed != report.Individuals {
		t.Fatalf("every individual must be accounted for: %+v", report)
	}
	if want := 4.0 / 5.0; report.SuccessRate() != want {
		t.Errorf("success rate = %f, want %f", report.SuccessRate(), want)
	}
}

func TestLoadRecords(t *testing.T) {
	records := []legacy.GenealogyRecord{sampleRecord()}
	raw, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "legacy.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := legacy.LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Town != "Nnewi" {
		t.Fatalf("unexpected records: %#v", loaded)
	}

	if _, err := legacy.LoadRecords(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRecordsIgnoresCountryColumn(t *testing.T) {
	raw := `[{
		"country": "Nigeria",
		"state": "Anambra",
		"village": "Umudim",
		"extendedFamily": [{"familyName": "EZE", "individualNames": ["Ngozi"]}]
	}]`
	path := filepath.Join(t.TempDir(), "legacy.json")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	loaded, err := legacy.LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}
	forms := legacy.Expand(&loaded[0])
	if len(forms) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(forms))
	}
	if forms[0].State != "Anambra" {
		t.Errorf("state = %q", forms[0].State)
	}
	// The source country is implied by the state and has no person field;
	// it must not leak into the diaspora residence field.
	if forms[0].CountryOfResidence != "" {
		t.Errorf("countryOfResidence = %q, want unset", forms[0].CountryOfResidence)
	}
}
