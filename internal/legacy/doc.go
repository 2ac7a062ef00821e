// Package legacy migrates the archive's original family-group records into
// individual person submissions.
//
// A legacy record describes one kindred: shared geography and lineage
// context plus extended-family groups listing individual names. Migration
// expands each record into one submission per individual, infers a source
// type from the record's free-text source note, and pushes the result
// through the standard ingestion pipeline. Consent is assumed granted for
// migrated data; that is a documented migration assumption, not a real
// consent signal.
package legacy
