package rowmap

import "lineage/internal/person"

// SwapAssign replaces the cell dispatcher for the duration of a test and
// returns the restore function.
func SwapAssign(fn func(*person.FormSubmission, string, string)) func() {
	prev := assign
	assign = fn
	return func() { assign = prev }
}
