// Package ingest drives bulk person imports: it collects normalized form
// submissions from a delimited file, writes them to the person store in
// fixed-size chunks, and aggregates a run summary.
//
// Chunks are persisted strictly one at a time with a cooperative pause
// between them to stay under the store's burst limits. A failed chunk is
// counted whole, reported, and skipped past; nothing is retried. Re-running
// the tool against a corrected input is the recovery path.
package ingest
