package person

import "time"

// Gender classifies a person record. Unrecognized input maps to GenderUnknown.
type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderOther   Gender = "OTHER"
	GenderUnknown Gender = "UNKNOWN"
)

var allGenders = []Gender{GenderMale, GenderFemale, GenderOther, GenderUnknown}

// Valid reports whether the gender is a known enum member.
func (g Gender) Valid() bool {
	for _, known := range allGenders {
		if g == known {
			return true
		}
	}
	return false
}

// SourceType records where the information about a person came from.
// The empty string means the source was never stated.
type SourceType string

const (
	SourceOral           SourceType = "ORAL"
	SourceChurchRecord   SourceType = "CHURCH_RECORD"
	SourcePalaceArchive  SourceType = "PALACE_ARCHIVE"
	SourceCivilRegistry  SourceType = "CIVIL_REGISTRY"
	SourceFamilyDocument SourceType = "FAMILY_DOCUMENT"
	SourceOther          SourceType = "OTHER"
)

var allSourceTypes = []SourceType{
	SourceOral,
	SourceChurchRecord,
	SourcePalaceArchive,
	SourceCivilRegistry,
	SourceFamilyDocument,
	SourceOther,
}

// Valid reports whether the source type is a known enum member.
func (s SourceType) Valid() bool {
	for _, known := range allSourceTypes {
		if s == known {
			return true
		}
	}
	return false
}

// Visibility controls how much of a record the public site may show.
type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPartial Visibility = "PARTIAL"
	VisibilityPrivate Visibility = "PRIVATE"
)

var allVisibilities = []Visibility{VisibilityPublic, VisibilityPartial, VisibilityPrivate}

// Valid reports whether the visibility is a known enum member.
func (v Visibility) Valid() bool {
	for _, known := range allVisibilities {
		if v == known {
			return true
		}
	}
	return false
}

// ConnectionStatus tracks a diaspora relative's reconnection case.
type ConnectionStatus string

const (
	ConnectionPending       ConnectionStatus = "PENDING"
	ConnectionInProgress    ConnectionStatus = "IN_PROGRESS"
	ConnectionConnected     ConnectionStatus = "CONNECTED"
	ConnectionNotApplicable ConnectionStatus = "NOT_APPLICABLE"
)

var allConnectionStatuses = []ConnectionStatus{
	ConnectionPending,
	ConnectionInProgress,
	ConnectionConnected,
	ConnectionNotApplicable,
}

// Valid reports whether the status is a known enum member.
func (c ConnectionStatus) Valid() bool {
	for _, known := range allConnectionStatuses {
		if c == known {
			return true
		}
	}
	return false
}

// ReturnVisitStatus tracks whether a diaspora relative has visited home.
type ReturnVisitStatus string

const (
	ReturnVisitPlanned    ReturnVisitStatus = "PLANNED"
	ReturnVisitCompleted  ReturnVisitStatus = "COMPLETED"
	ReturnVisitNotPlanned ReturnVisitStatus = "NOT_PLANNED"
)

var allReturnVisitStatuses = []ReturnVisitStatus{
	ReturnVisitPlanned,
	ReturnVisitCompleted,
	ReturnVisitNotPlanned,
}

// Valid reports whether the status is a known enum member.
func (r ReturnVisitStatus) Valid() bool {
	for _, known := range allReturnVisitStatuses {
		if r == known {
			return true
		}
	}
	return false
}

// VerificationLevel grades how well a record is corroborated, 0 (unverified)
// through 3 (fully verified).
type VerificationLevel int

const (
	VerificationMin VerificationLevel = 0
	VerificationMax VerificationLevel = 3
)

// FormSubmission is the input-side person shape produced by the CSV row
// mapper and the legacy migration expander. List fields are nil when the
// source never supplied them; ConsentStatus is a pointer so an explicit
// false from the source survives defaulting.
type FormSubmission struct {
	// Identity
	FullName       string   `json:"fullName"`
	AlternateNames []string `json:"alternateNames,omitempty"`
	Gender         Gender   `json:"gender,omitempty"`
	DateOfBirth    string   `json:"dateOfBirth,omitempty"`
	PlaceOfBirth   string   `json:"placeOfBirth,omitempty"`
	PhotoURL       string   `json:"photoUrl,omitempty"`
	PhotoConsent   bool     `json:"photoConsent,omitempty"`

	// Lineage
	FatherID            string   `json:"fatherId,omitempty"`
	MotherID            string   `json:"motherId,omitempty"`
	SpouseIDs           []string `json:"spouseIds,omitempty"`
	ChildrenIDs         []string `json:"childrenIds,omitempty"`
	Umunna              string   `json:"umunna,omitempty"`
	Clan                string   `json:"clan,omitempty"`
	Village             string   `json:"village,omitempty"`
	Kindred             string   `json:"kindred,omitempty"`
	Town                string   `json:"town,omitempty"`
	TownQuarter         string   `json:"townQuarter,omitempty"`
	ObiAreas            string   `json:"obiAreas,omitempty"`
	LocalGovernmentArea string   `json:"localGovernmentArea,omitempty"`
	State               string   `json:"state,omitempty"`
	SenatorialDistrict  string   `json:"senatorialDistrict,omitempty"`
	FederalConstituency string   `json:"federalConstituency,omitempty"`
	StateConstituency   string   `json:"stateConstituency,omitempty"`
	NwaadaLineageLink   string   `json:"nwaadaLineageLink,omitempty"`

	// Cultural
	Titles                []string `json:"titles,omitempty"`
	Occupation            string   `json:"occupation,omitempty"`
	FamilyTrade           string   `json:"familyTrade,omitempty"`
	Totem                 string   `json:"totem,omitempty"`
	AncestralHouseName    string   `json:"ancestralHouseName,omitempty"`
	NotableContributions  string   `json:"notableContributions,omitempty"`
	Roles                 []string `json:"roles,omitempty"`

	// Life events
	MarriageDate            string `json:"marriageDate,omitempty"`
	MarriagePlace           string `json:"marriagePlace,omitempty"`
	DeathDate               string `json:"deathDate,omitempty"`
	DeathPlace              string `json:"deathPlace,omitempty"`
	IsDeceased              bool   `json:"isDeceased,omitempty"`
	DisplacementNotes       string `json:"displacementNotes,omitempty"`
	SensitiveHistoryPrivate bool   `json:"sensitiveHistoryPrivate,omitempty"`

	// Documentation
	SourceType       SourceType `json:"sourceType,omitempty"`
	SourceDetails    string     `json:"sourceDetails,omitempty"`
	TestifierNames   string     `json:"testifierNames,omitempty"`
	TestifierContact string     `json:"testifierContact,omitempty"`
	DocumentScanIDs  []string   `json:"documentScanIds,omitempty"`
	DocumentURLs     []string   `json:"documentUrls,omitempty"`
	Story            string     `json:"story,omitempty"`
	Notes            string     `json:"notes,omitempty"`

	// Verification
	VerificationLevel VerificationLevel `json:"verificationLevel"`
	ConsentStatus     *bool             `json:"consentStatus,omitempty"`
	Visibility        Visibility        `json:"visibilitySetting,omitempty"`

	// Diaspora
	IsDiasporaRelative      bool              `json:"isDiasporaRelative,omitempty"`
	CountryOfResidence      string            `json:"countryOfResidence,omitempty"`
	CurrentCity             string            `json:"currentCity,omitempty"`
	CurrentState            string            `json:"currentState,omitempty"`
	DiasporaConnectionCase  string            `json:"diasporaConnectionCaseId,omitempty"`
	ConnectionStatus        ConnectionStatus  `json:"connectionStatus,omitempty"`
	ReturnVisitStatus       ReturnVisitStatus `json:"returnVisitStatus,omitempty"`
	ReturnVisitDate         string            `json:"returnVisitDate,omitempty"`
	ReturnVisitNotes        string            `json:"returnVisitNotes,omitempty"`
}

// ApplyDefaults fills the documented defaults for fields the source never
// set: gender UNKNOWN, visibility PRIVATE, consent granted, verification 0.
// Explicitly supplied values, including an explicit consent refusal, are
// left alone.
func (f *FormSubmission) ApplyDefaults() {
	if f.Gender == "" {
		f.Gender = GenderUnknown
	}
	if f.Visibility == "" {
		f.Visibility = VisibilityPrivate
	}
	if f.ConsentStatus == nil {
		granted := true
		f.ConsentStatus = &granted
	}
	if f.VerificationLevel < VerificationMin || f.VerificationLevel > VerificationMax {
		f.VerificationLevel = VerificationMin
	}
}

// ConsentGranted reports the effective consent value, treating an unset
// pointer as granted (the migration default).
func (f *FormSubmission) ConsentGranted() bool {
	if f.ConsentStatus == nil {
		return true
	}
	return *f.ConsentStatus
}

// Record is a persisted person document: a FormSubmission plus the fields
// the store owns.
type Record struct {
	ID        string    `json:"id"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FormSubmission
}
