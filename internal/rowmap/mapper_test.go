package rowmap_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"lineage/internal/person"
	"lineage/internal/rowmap"
)

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		"Full Name":       "fullname",
		"full_name":       "fullname",
		"DOB":             "dob",
		"L.G.A.":          "lga",
		"Date of Birth ":  "dateofbirth",
		"Town / Quarter":  "townquarter",
		"verification  2": "verification2",
	}
	for raw, want := range cases {
		if got := rowmap.NormalizeHeader(raw); got != want {
			t.Errorf("NormalizeHeader(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestResolveHeaderSynonyms(t *testing.T) {
	cases := map[string]string{
		"DOB":        "dateOfBirth",
		"Birth Date": "dateOfBirth",
		"LGA":        "localGovernmentArea",
		"Sex":        "gender",
		"Home Town":  "town",
		"Other Names": "alternateNames",
	}
	for header, want := range cases {
		field, ok := rowmap.ResolveHeader(header)
		if !ok || field != want {
			t.Errorf("ResolveHeader(%q) = %q, %v; want %q", header, field, ok, want)
		}
	}
	if _, ok := rowmap.ResolveHeader("Favourite Colour"); ok {
		t.Error("unknown header should not resolve")
	}
}

func TestRowToForm(t *testing.T) {
	cells := map[string]string{
		"Full Name":          "Chidi Okafor",
		"Gender":             "Male",
		"State":              "Anambra",
		"Titles":             "Ogbuefi, Nze",
		"Verification Level": "2",
		"Visibility":         "partial",
		"Is Deceased":        "yes",
		"DOB":                "1944",
	}

	form, err := rowmap.RowToForm(cells, 2)
	if err != nil {
		t.Fatalf("RowToForm failed: %v", err)
	}
	if form.FullName != "Chidi Okafor" {
		t.Errorf("fullName = %q", form.FullName)
	}
	if form.Gender != person.GenderMale {
		t.Errorf("gender = %s", form.Gender)
	}
	if form.State != "Anambra" {
		t.Errorf("state = %q", form.State)
	}
	if !reflect.DeepEqual(form.Titles, []string{"Ogbuefi", "Nze"}) {
		t.Errorf("titles = %#v", form.Titles)
	}
	if form.VerificationLevel != 2 {
		t.Errorf("verificationLevel = %d", form.VerificationLevel)
	}
	if form.Visibility != person.VisibilityPartial {
		t.Errorf("visibility = %s", form.Visibility)
	}
	if !form.IsDeceased {
		t.Error("isDeceased should be true")
	}
	if form.DateOfBirth != "1944" {
		t.Errorf("dateOfBirth = %q", form.DateOfBirth)
	}
	// Defaults for everything the row never mentioned.
	if !form.ConsentGranted() {
		t.Error("consent should default to granted")
	}
	if form.IsDiasporaRelative {
		t.Error("isDiasporaRelative should default to false")
	}
	if form.SourceType != "" {
		t.Errorf("sourceType should stay unset, got %q", form.SourceType)
	}
}

func TestRowToFormIsDeterministic(t *testing.T) {
	cells := map[string]string{
		"Full Name": "Ada Obi",
		"Spouses":   "p1, p2",
		"Consent":   "no",
	}
	first, err := rowmap.RowToForm(cells, 5)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := rowmap.RowToForm(cells, 5)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("mapping is not deterministic:\n%#v\n%#v", first, second)
	}
	if first.ConsentGranted() {
		t.Fatal("explicit consent refusal should stick")
	}
}

func TestRowToFormRejectsMissingFullName(t *testing.T) {
	for name, cells := range map[string]map[string]string{
		"absent":     {"Gender": "Female", "State": "Imo"},
		"empty":      {"Full Name": "", "Gender": "Female"},
		"whitespace": {"Full Name": "   ", "Gender": "Female"},
	} {
		form, err := rowmap.RowToForm(cells, 3)
		if form != nil || err == nil {
			t.Errorf("%s: expected rejection, got form=%v err=%v", name, form, err)
			continue
		}
		var rejection *rowmap.Rejection
		if !errors.As(err, &rejection) || rejection.Line != 3 {
			t.Errorf("%s: rejection should carry the line number, got %v", name, err)
		}
	}
}

func TestRowToFormAcceptsAnyNonEmptyFullName(t *testing.T) {
	cells := map[string]string{
		"Full Name":          "N",
		"Gender":             "garbage",
		"Source Type":        "garbage",
		"Verification Level": "ten",
		"Visibility":         "garbage",
	}
	form, err := rowmap.RowToForm(cells, 9)
	if err != nil {
		t.Fatalf("non-empty fullName must always map: %v", err)
	}
	if form.Gender != person.GenderUnknown {
		t.Errorf("garbage gender = %s", form.Gender)
	}
	if form.SourceType != person.SourceOther {
		t.Errorf("garbage sourceType = %s", form.SourceType)
	}
	if form.VerificationLevel != 0 {
		t.Errorf("garbage verificationLevel = %d", form.VerificationLevel)
	}
	if form.Visibility != person.VisibilityPrivate {
		t.Errorf("garbage visibility = %s", form.Visibility)
	}
}

func TestRowToFormDropsUnknownDiasporaStatuses(t *testing.T) {
	cells := map[string]string{
		"Full Name":           "Obiageli Eze",
		"Connection Status":   "maybe",
		"Return Visit Status": "someday",
	}
	form, err := rowmap.RowToForm(cells, 4)
	if err != nil {
		t.Fatalf("RowToForm: %v", err)
	}
	if form.ConnectionStatus != "" {
		t.Errorf("unknown connectionStatus should stay unset, got %q", form.ConnectionStatus)
	}
	if form.ReturnVisitStatus != "" {
		t.Errorf("unknown returnVisitStatus should stay unset, got %q", form.ReturnVisitStatus)
	}

	cells["Connection Status"] = "in_progress"
	cells["Return Visit Status"] = "planned"
	form, err = rowmap.RowToForm(cells, 4)
	if err != nil {
		t.Fatalf("RowToForm: %v", err)
	}
	if form.ConnectionStatus != person.ConnectionInProgress {
		t.Errorf("connectionStatus = %q", form.ConnectionStatus)
	}
	if form.ReturnVisitStatus != person.ReturnVisitPlanned {
		t.Errorf("returnVisitStatus = %q", form.ReturnVisitStatus)
	}
}

func TestRowToFormRecoversFromPanickingAssign(t *testing.T) {
	restore := rowmap.SwapAssign(func(*person.FormSubmission, string, string) {
		panic("bad cell")
	})
	defer restore()

	form, err := rowmap.RowToForm(map[string]string{"Full Name": "Ada Obi"}, 7)
	if form != nil || err == nil {
		t.Fatalf("expected rejection, got form=%v err=%v", form, err)
	}
	var rejection *rowmap.Rejection
	if !errors.As(err, &rejection) {
		t.Fatalf("error should be a rejection: %v", err)
	}
	if rejection.Line != 7 {
		t.Errorf("rejection line = %d, want 7", rejection.Line)
	}
	if !strings.Contains(rejection.Reason, "mapping panic") {
		t.Errorf("rejection reason = %q", rejection.Reason)
	}
}
