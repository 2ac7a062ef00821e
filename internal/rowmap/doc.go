// Package rowmap turns one delimited-file row into a person.FormSubmission.
//
// Column headers are normalized to lowercase alphanumerics and resolved
// through a static alias table covering every schema field plus the synonyms
// community spreadsheets actually use ("dob", "lga", "hometown"). Matched
// cells dispatch to the person package parsers by the target field's kind.
// The only hard gate is a non-empty full name; every other problem in a row
// is absorbed and the row is either completed with defaults or rejected on
// its own, never aborting the rows after it.
package rowmap
