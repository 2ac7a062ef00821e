package rowmap

import (
	"fmt"
	"strings"

	"lineage/internal/person"
)

// Rejection is the row-level error for input the mapper refused. Rejected
// rows are reported and skipped; they never abort the run.
type Rejection struct {
	Line   int
	Reason string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("row %d: %s", r.Line, r.Reason)
}

// RowToForm maps one row (raw column header to cell value) onto a completed
// FormSubmission. The result is a pure function of the cells; line only
// decorates errors. Rows without a non-empty full name are rejected, and any
// panic while coercing a single row is recovered into a rejection so the
// remaining rows keep flowing.
func RowToForm(cells map[string]string, line int) (form *person.FormSubmission, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			form = nil
			err = &Rejection{Line: line, Reason: fmt.Sprintf("mapping panic: %v", recovered)}
		}
	}()

	form = &person.FormSubmission{}
	for header, raw := range cells {
		field, ok := ResolveHeader(header)
		if !ok {
			continue
		}
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		assign(form, field, value)
	}

	if strings.TrimSpace(form.FullName) == "" {
		return nil, &Rejection{Line: line, Reason: "missing required fullName"}
	}
	form.ApplyDefaults()
	return form, nil
}

// assign is swappable so tests can drive the row-level recovery in
// RowToForm.
var assign = assignField

// assignField coerces a single non-empty cell into its target field. The
// switch is the exhaustive counterpart of the alias table; a field listed
// there but not here would silently drop data, so keep the two in sync.
func assignField(form *person.FormSubmission, field, value string) {
	switch field {
	case fieldFullName:
		form.FullName = value
	case fieldAlternateNames:
		form.AlternateNames = person.ParseArray(value)
	case fieldGender:
		form.Gender = person.ParseGender(value)
	case fieldDateOfBirth:
		form.DateOfBirth = value
	case fieldPlaceOfBirth:
		form.PlaceOfBirth = value
	case fieldPhotoURL:
		form.PhotoURL = value
	case fieldPhotoConsent:
		form.PhotoConsent = person.ParseBoolean(value)
	case fieldFatherID:
		form.FatherID = value
	case fieldMotherID:
		form.MotherID = value
	case fieldSpouseIDs:
		form.SpouseIDs = person.ParseArray(value)
	case fieldChildrenIDs:
		form.ChildrenIDs = person.ParseArray(value)
	case fieldUmunna:
		form.Umunna = value
	case fieldClan:
		form.Clan = value
	case fieldVillage:
		form.Village = value
	case fieldKindred:
		form.Kindred = value
	case fieldTown:
		form.Town = value
	case fieldTownQuarter:
		form.TownQuarter = value
	case fieldObiAreas:
		form.ObiAreas = value
	case fieldLocalGovernmentArea:
		form.LocalGovernmentArea = value
	case fieldState:
		form.State = value
	case fieldSenatorialDistrict:
		form.SenatorialDistrict = value
	case fieldFederalConstituency:
		form.FederalConstituency = value
	case fieldStateConstituency:
		form.StateConstituency = value
	case fieldNwaadaLineageLink:
		form.NwaadaLineageLink = value
	case fieldTitles:
		form.Titles = person.ParseArray(value)
	case fieldOccupation:
		form.Occupation = value
	case fieldFamilyTrade:
		form.FamilyTrade = value
	case fieldTotem:
		form.Totem = value
	case fieldAncestralHouseName:
		form.AncestralHouseName = value
	case fieldNotableContributions:
		form.NotableContributions = value
	case fieldRoles:
		form.Roles = person.ParseArray(value)
	case fieldMarriageDate:
		form.MarriageDate = value
	case fieldMarriagePlace:
		form.MarriagePlace = value
	case fieldDeathDate:
		form.DeathDate = value
	case fieldDeathPlace:
		form.DeathPlace = value
	case fieldIsDeceased:
		form.IsDeceased = person.ParseBoolean(value)
	case fieldDisplacementNotes:
		form.DisplacementNotes = value
	case fieldSensitiveHistoryPrivate:
		form.SensitiveHistoryPrivate = person.ParseBoolean(value)
	case fieldSourceType:
		form.SourceType = person.ParseSourceType(value)
	case fieldSourceDetails:
		form.SourceDetails = value
	case fieldTestifierNames:
		form.TestifierNames = value
	case fieldTestifierContact:
		form.TestifierContact = value
	case fieldDocumentScanIDs:
		form.DocumentScanIDs = person.ParseArray(value)
	case fieldDocumentURLs:
		form.DocumentURLs = person.ParseArray(value)
	case fieldStory:
		form.Story = value
	case fieldNotes:
		form.Notes = value
	case fieldVerificationLevel:
		form.VerificationLevel = person.ParseVerificationLevel(value)
	case fieldConsentStatus:
		consent := person.ParseBoolean(value)
		form.ConsentStatus = &consent
	case fieldVisibility:
		form.Visibility = person.ParseVisibility(value)
	case fieldIsDiasporaRelative:
		form.IsDiasporaRelative = person.ParseBoolean(value)
	case fieldCountryOfResidence:
		form.CountryOfResidence = value
	case fieldCurrentCity:
		form.CurrentCity = value
	case fieldCurrentState:
		form.CurrentState = value
	case fieldDiasporaConnectionCaseID:
		form.DiasporaConnectionCase = value
	case fieldConnectionStatus:
		form.ConnectionStatus = person.ParseConnectionStatus(value)
	case fieldReturnVisitStatus:
		form.ReturnVisitStatus = person.ParseReturnVisitStatus(value)
	case fieldReturnVisitDate:
		form.ReturnVisitDate = value
	case fieldReturnVisitNotes:
		form.ReturnVisitNotes = value
	}
}
