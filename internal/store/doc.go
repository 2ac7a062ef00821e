// Package store persists person records in SQLite and exposes the
// batch-create operation the ingestion pipeline writes through plus the
// small read surface the CLI query commands need.
//
// The Store manages the database connection, schema migrations, and the
// per-chunk write transaction. A batch either commits whole or not at all;
// that atomicity is what lets the pipeline report failures at chunk
// granularity. Treat this package as the single source of truth for person
// persistence; schema changes add a new file under migrations/.
package store
