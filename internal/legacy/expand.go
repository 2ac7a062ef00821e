package legacy

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"lineage/internal/person"
)

var familyNameCaser = cases.Title(language.English)

// InferSourceType keyword-matches a legacy record's free-text source note
// onto the source-type enum. Unmatched non-empty notes become OTHER; an
// empty note leaves the field unset.
func InferSourceType(source string) person.SourceType {
	upper := strings.ToUpper(strings.TrimSpace(source))
	switch {
	case upper == "":
		return ""
	case strings.Contains(upper, "CHURCH"):
		return person.SourceChurchRecord
	case strings.Contains(upper, "PALACE"), strings.Contains(upper, "ROYAL"):
		return person.SourcePalaceArchive
	case strings.Contains(upper, "CIVIL"), strings.Contains(upper, "REGISTRY"):
		return person.SourceCivilRegistry
	case strings.Contains(upper, "FAMILY"), strings.Contains(upper, "DOCUMENT"):
		return person.SourceFamilyDocument
	case strings.Contains(upper, "ORAL"), strings.Contains(upper, "STORY"):
		return person.SourceOral
	}
	return person.SourceOther
}

// Expand converts one legacy record into person submissions, one per
// individual name. Blank names are dropped; callers needing per-name
// accounting compare the result length against Individuals().
func Expand(rec *GenealogyRecord) []person.FormSubmission {
	sourceType := InferSourceType(rec.Source)

	level := person.VerificationMin
	visibility := person.VisibilityPrivate
	if rec.Verified {
		level = 2
		visibility = person.VisibilityPartial
	}

	var forms []person.FormSubmission
	for _, group := range rec.ExtendedFamily {
		houseName := familyNameCaser.String(strings.ToLower(strings.TrimSpace(group.FamilyName)))
		for _, name := range group.IndividualNames {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			consent := true // migration assumption, see package doc
			form := person.FormSubmission{
				FullName:            name,
				Umunna:              rec.Umunna,
				Clan:                rec.Clan,
				Village:             rec.Village,
				Kindred:             rec.KindredHamlet,
				Town:                rec.Town,
				LocalGovernmentArea: rec.LocalGovernmentArea,
				State:               rec.State,
				SenatorialDistrict:  rec.SenatorialDistrict,
				AncestralHouseName:  houseName,
				SourceType:          sourceType,
				SourceDetails:       strings.TrimSpace(rec.Source),
				VerificationLevel:   level,
				Visibility:          visibility,
				ConsentStatus:       &consent,
			}
			form.ApplyDefaults()
			forms = append(forms, form)
		}
	}
	return forms
}
