package legacy

import (
	"encoding/json"
	"fmt"
	"os"
)

// Classification constants carried by every legacy record. The original
// collection hard-coded these; they are kept for round-trip fidelity.
const (
	ClassificationSpecies   = "Human"
	ClassificationRace      = "Igbo"
	ClassificationContinent = "Africa"
)

// FamilyGroup is one extended-family entry of a legacy record.
type FamilyGroup struct {
	FamilyName      string   `json:"familyName"`
	IndividualNames []string `json:"individualNames"`
}

// GenealogyRecord is the pre-existing family-group shape used only as a
// migration source.
type GenealogyRecord struct {
	Species   string `json:"species,omitempty"`
	Race      string `json:"race,omitempty"`
	Continent string `json:"continent,omitempty"`

	State               string `json:"state,omitempty"`
	SenatorialDistrict  string `json:"senatorialDistrict,omitempty"`
	LocalGovernmentArea string `json:"localGovernmentArea,omitempty"`
	Town                string `json:"town,omitempty"`
	Village             string `json:"village,omitempty"`
	Clan                string `json:"clan,omitempty"`
	KindredHamlet       string `json:"kindredHamlet,omitempty"`
	Umunna              string `json:"umunna,omitempty"`

	ExtendedFamily []FamilyGroup `json:"extendedFamily"`

	Source   string `json:"source,omitempty"`
	Verified bool   `json:"verified,omitempty"`
}

// Individuals counts every individual name across the record's family
// groups, including blank entries that expansion will reject.
func (r *GenealogyRecord) Individuals() int {
	total := 0
	for _, group := range r.ExtendedFamily {
		total += len(group.IndividualNames)
	}
	return total
}

// LoadRecords reads a JSON array of legacy records from a file.
func LoadRecords(path string) ([]GenealogyRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read legacy records: %w", err)
	}
	var records []GenealogyRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse legacy records: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no legacy records found", path)
	}
	return records, nil
}
