// Package csvtext reads the delimited text files the archive accepts for
// bulk person import.
//
// The tokenizer implements the subset of RFC 4180 the community's spreadsheet
// exports actually produce: comma separation, optional double-quote wrapping
// with "" escapes, and per-field whitespace trimming. An unterminated quote
// consumes the rest of the line rather than failing; import runs are
// human-supervised and a best-effort parse keeps the row counts honest.
package csvtext
