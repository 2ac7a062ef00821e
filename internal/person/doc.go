// Package person defines the typed person record model used across the
// archive and the pure field parsers that coerce loosely-typed external
// input (CSV cells, legacy migration fields) into it.
//
// Parsers come in two flavors: defaulting parsers always return a member of
// their domain (unrecognized gender becomes GenderUnknown), while absence-
// preserving parsers (ParseArray, ParseSourceType) return a zero value when
// input is missing so callers can skip assignment and avoid clobbering
// previously stored data during partial updates. That asymmetry is
// deliberate; keep it when adding fields.
package person
