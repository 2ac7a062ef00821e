package ingest

// ErrorDisplayLimit caps how many error strings and skipped row numbers a
// summary surfaces; everything beyond it is counted but not printed.
const ErrorDisplayLimit = 10

// Summary is the final report of an ingestion run.
type Summary struct {
	TotalRows   int
	Valid       int
	Imported    int
	Failed      int
	SkippedRows []int
	Errors      []string
}

// Clean reports whether every record made it in; it decides the process
// exit code.
func (s Summary) Clean() bool {
	return s.Failed == 0
}

// DisplayErrors returns at most limit error strings. Non-positive limits
// fall back to ErrorDisplayLimit.
func (s Summary) DisplayErrors(limit int) []string {
	if limit <= 0 {
		limit = ErrorDisplayLimit
	}
	if len(s.Errors) <= limit {
		return s.Errors
	}
	return s.Errors[:limit]
}

// DisplaySkipped returns at most limit skipped row numbers plus whether
// more were truncated.
func (s Summary) DisplaySkipped(limit int) ([]int, bool) {
	if limit <= 0 {
		limit = ErrorDisplayLimit
	}
	if len(s.SkippedRows) <= limit {
		return s.SkippedRows, false
	}
	return s.SkippedRows[:limit], true
}
