package person

import (
	"strconv"
	"strings"
)

// ParseArray splits a raw cell on commas, trims each segment, and drops
// empty segments. It returns nil when no segments remain so callers can
// tell "not provided" apart from "provided" and skip the assignment during
// merges instead of overwriting stored data with emptiness.
func ParseArray(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ParseBoolean interprets TRUE/YES/1/T (any case) as true. Everything else,
// including empty input, is false.
func ParseBoolean(raw string) bool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "TRUE", "YES", "1", "T":
		return true
	}
	return false
}

// ParseInteger parses a base-10 integer. The second result is false for
// non-numeric or empty input.
func ParseInteger(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ParseGender maps free-form input onto the gender enum. Single-letter
// abbreviations are accepted; anything unrecognized is GenderUnknown.
func ParseGender(raw string) Gender {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "MALE", "M":
		return GenderMale
	case "FEMALE", "F":
		return GenderFemale
	case "OTHER", "O":
		return GenderOther
	}
	return GenderUnknown
}

// ParseSourceType maps free-form input onto the source-type enum. An
// unrecognized non-empty value becomes SourceOther; empty input returns ""
// so the field stays unset rather than being defaulted (see package doc).
func ParseSourceType(raw string) SourceType {
	trimmed := strings.ToUpper(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	candidate := SourceType(trimmed)
	if candidate.Valid() {
		return candidate
	}
	return SourceOther
}

// ParseConnectionStatus maps input onto the connection-status enum. The
// enum has no catch-all member, so unrecognized input leaves the field
// unset, the same as absent input.
func ParseConnectionStatus(raw string) ConnectionStatus {
	candidate := ConnectionStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if candidate.Valid() {
		return candidate
	}
	return ""
}

// ParseReturnVisitStatus maps input onto the return-visit enum; like
// ParseConnectionStatus, unrecognized input leaves the field unset.
func ParseReturnVisitStatus(raw string) ReturnVisitStatus {
	candidate := ReturnVisitStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if candidate.Valid() {
		return candidate
	}
	return ""
}

// ParseVisibility maps input onto the visibility enum; anything
// unrecognized, including empty input, is VisibilityPrivate.
func ParseVisibility(raw string) Visibility {
	candidate := Visibility(strings.ToUpper(strings.TrimSpace(raw)))
	if candidate.Valid() {
		return candidate
	}
	return VisibilityPrivate
}

// ParseVerificationLevel parses and clamps a verification level to [0, 3].
// Unparsable or out-of-range input yields 0.
func ParseVerificationLevel(raw string) VerificationLevel {
	value, ok := ParseInteger(raw)
	if !ok {
		return VerificationMin
	}
	level := VerificationLevel(value)
	if level < VerificationMin || level > VerificationMax {
		return VerificationMin
	}
	return level
}
