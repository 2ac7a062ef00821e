package rowmap

import "strings"

// Canonical field identifiers, matching the persisted JSON field names.
const (
	fieldFullName                 = "fullName"
	fieldAlternateNames           = "alternateNames"
	fieldGender                   = "gender"
	fieldDateOfBirth              = "dateOfBirth"
	fieldPlaceOfBirth             = "placeOfBirth"
	fieldPhotoURL                 = "photoUrl"
	fieldPhotoConsent             = "photoConsent"
	fieldFatherID                 = "fatherId"
	fieldMotherID                 = "motherId"
	fieldSpouseIDs                = "spouseIds"
	fieldChildrenIDs              = "childrenIds"
	fieldUmunna                   = "umunna"
	fieldClan                     = "clan"
	fieldVillage                  = "village"
	fieldKindred                  = "kindred"
	fieldTown                     = "town"
	fieldTownQuarter              = "townQuarter"
	fieldObiAreas                 = "obiAreas"
	fieldLocalGovernmentArea      = "localGovernmentArea"
	fieldState                    = "state"
	fieldSenatorialDistrict       = "senatorialDistrict"
	fieldFederalConstituency      = "federalConstituency"
	fieldStateConstituency        = "stateConstituency"
	fieldNwaadaLineageLink        = "nwaadaLineageLink"
	fieldTitles                   = "titles"
	fieldOccupation               = "occupation"
	fieldFamilyTrade              = "familyTrade"
	fieldTotem                    = "totem"
	fieldAncestralHouseName       = "ancestralHouseName"
	fieldNotableContributions     = "notableContributions"
	fieldRoles                    = "roles"
	fieldMarriageDate             = "marriageDate"
	fieldMarriagePlace            = "marriagePlace"
	fieldDeathDate                = "deathDate"
	fieldDeathPlace               = "deathPlace"
	fieldIsDeceased               = "isDeceased"
	fieldDisplacementNotes        = "displacementNotes"
	fieldSensitiveHistoryPrivate  = "sensitiveHistoryPrivate"
	fieldSourceType               = "sourceType"
	fieldSourceDetails            = "sourceDetails"
	fieldTestifierNames           = "testifierNames"
	fieldTestifierContact         = "testifierContact"
	fieldDocumentScanIDs          = "documentScanIds"
	fieldDocumentURLs             = "documentUrls"
	fieldStory                    = "story"
	fieldNotes                    = "notes"
	fieldVerificationLevel        = "verificationLevel"
	fieldConsentStatus            = "consentStatus"
	fieldVisibility               = "visibilitySetting"
	fieldIsDiasporaRelative       = "isDiasporaRelative"
	fieldCountryOfResidence       = "countryOfResidence"
	fieldCurrentCity              = "currentCity"
	fieldCurrentState             = "currentState"
	fieldDiasporaConnectionCaseID = "diasporaConnectionCaseId"
	fieldConnectionStatus         = "connectionStatus"
	fieldReturnVisitStatus        = "returnVisitStatus"
	fieldReturnVisitDate          = "returnVisitDate"
	fieldReturnVisitNotes         = "returnVisitNotes"
)

// headerAliases maps normalized column headers to canonical fields. Every
// canonical name normalizes to itself; the rest are the synonyms seen in
// community spreadsheets.
var headerAliases = map[string]string{
	"fullname":   fieldFullName,
	"name":       fieldFullName,
	"personname": fieldFullName,

	"alternatenames": fieldAlternateNames,
	"othernames":     fieldAlternateNames,
	"aliases":        fieldAlternateNames,
	"aka":            fieldAlternateNames,

	"gender": fieldGender,
	"sex":    fieldGender,

	"dateofbirth": fieldDateOfBirth,
	"dob":         fieldDateOfBirth,
	"birthdate":   fieldDateOfBirth,
	"birthday":    fieldDateOfBirth,

	"placeofbirth": fieldPlaceOfBirth,
	"birthplace":   fieldPlaceOfBirth,
	"pob":          fieldPlaceOfBirth,

	"photourl":     fieldPhotoURL,
	"photo":        fieldPhotoURL,
	"photoconsent": fieldPhotoConsent,

	"fatherid": fieldFatherID,
	"father":   fieldFatherID,
	"motherid": fieldMotherID,
	"mother":   fieldMotherID,

	"spouseids":   fieldSpouseIDs,
	"spouses":     fieldSpouseIDs,
	"spouse":      fieldSpouseIDs,
	"childrenids": fieldChildrenIDs,
	"children":    fieldChildrenIDs,

	"umunna":        fieldUmunna,
	"clan":          fieldClan,
	"village":       fieldVillage,
	"kindred":       fieldKindred,
	"kindredhamlet": fieldKindred,
	"town":          fieldTown,
	"hometown":      fieldTown,
	"townquarter":   fieldTownQuarter,
	"quarter":       fieldTownQuarter,
	"obiareas":      fieldObiAreas,
	"obiarea":       fieldObiAreas,

	"localgovernmentarea": fieldLocalGovernmentArea,
	"localgovernment":     fieldLocalGovernmentArea,
	"lga":                 fieldLocalGovernmentArea,

	"state":               fieldState,
	"stateoforigin":       fieldState,
	"senatorialdistrict":  fieldSenatorialDistrict,
	"senatorialzone":      fieldSenatorialDistrict,
	"federalconstituency": fieldFederalConstituency,
	"stateconstituency":   fieldStateConstituency,

	"nwaadalineagelink": fieldNwaadaLineageLink,
	"nwaadalink":        fieldNwaadaLineageLink,

	"titles":             fieldTitles,
	"title":              fieldTitles,
	"chieftaincytitles":  fieldTitles,
	"occupation":         fieldOccupation,
	"profession":         fieldOccupation,
	"familytrade":        fieldFamilyTrade,
	"trade":              fieldFamilyTrade,
	"totem":              fieldTotem,
	"ancestralhousename": fieldAncestralHouseName,
	"ancestralhouse":     fieldAncestralHouseName,

	"notablecontributions": fieldNotableContributions,
	"contributions":        fieldNotableContributions,
	"roles":                fieldRoles,
	"role":                 fieldRoles,

	"marriagedate":  fieldMarriageDate,
	"weddingdate":   fieldMarriageDate,
	"marriageplace": fieldMarriagePlace,
	"deathdate":     fieldDeathDate,
	"dateofdeath":   fieldDeathDate,
	"dod":           fieldDeathDate,
	"deathplace":    fieldDeathPlace,
	"placeofdeath":  fieldDeathPlace,
	"isdeceased":    fieldIsDeceased,
	"deceased":      fieldIsDeceased,

	"displacementnotes":       fieldDisplacementNotes,
	"sensitivehistoryprivate": fieldSensitiveHistoryPrivate,

	"sourcetype":       fieldSourceType,
	"source":           fieldSourceType,
	"sourcedetails":    fieldSourceDetails,
	"testifiernames":   fieldTestifierNames,
	"testifiers":       fieldTestifierNames,
	"testifiercontact": fieldTestifierContact,
	"documentscanids":  fieldDocumentScanIDs,
	"documentscans":    fieldDocumentScanIDs,
	"documenturls":     fieldDocumentURLs,
	"documentlinks":    fieldDocumentURLs,

	"story":     fieldStory,
	"lifestory": fieldStory,
	"notes":     fieldNotes,
	"remarks":   fieldNotes,
	"comments":  fieldNotes,

	"verificationlevel": fieldVerificationLevel,
	"verification":      fieldVerificationLevel,
	"consentstatus":     fieldConsentStatus,
	"consent":           fieldConsentStatus,
	"visibilitysetting": fieldVisibility,
	"visibility":        fieldVisibility,

	"isdiasporarelative": fieldIsDiasporaRelative,
	"diasporarelative":   fieldIsDiasporaRelative,
	"diaspora":           fieldIsDiasporaRelative,

	"countryofresidence":       fieldCountryOfResidence,
	"country":                  fieldCountryOfResidence,
	"currentcity":              fieldCurrentCity,
	"city":                     fieldCurrentCity,
	"currentstate":             fieldCurrentState,
	"diasporaconnectioncaseid": fieldDiasporaConnectionCaseID,
	"connectioncaseid":         fieldDiasporaConnectionCaseID,
	"connectionstatus":         fieldConnectionStatus,
	"returnvisitstatus":        fieldReturnVisitStatus,
	"returnvisitdate":          fieldReturnVisitDate,
	"returnvisitnotes":         fieldReturnVisitNotes,
}

// NormalizeHeader lowercases a column header and strips everything outside
// [a-z0-9] so "Full Name", "full_name", and "FullName" all resolve alike.
func NormalizeHeader(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(header) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ResolveHeader maps a raw column header to its canonical field identifier.
func ResolveHeader(header string) (string, bool) {
	field, ok := headerAliases[NormalizeHeader(header)]
	return field, ok
}
