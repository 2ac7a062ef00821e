package csvtext

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmpty is returned when a file contains no header or no data rows.
var ErrEmpty = errors.New("csv file has no data rows")

// Row is one data line of a delimited file. Line is the 1-based physical
// line number in the source file (the header is line 1), used for skip
// reporting.
type Row struct {
	Line   int
	Fields []string
}

// File is a parsed delimited text file: a header plus its data rows.
type File struct {
	Header []string
	Rows   []Row
}

// RowMap zips a row's fields with the file header, producing the
// raw-column-name to cell-value mapping the row mapper consumes. Rows
// shorter than the header simply omit the trailing columns; extra cells
// beyond the header are dropped.
func (f *File) RowMap(row Row) map[string]string {
	cells := make(map[string]string, len(f.Header))
	for i, name := range f.Header {
		if i >= len(row.Fields) {
			break
		}
		cells[name] = row.Fields[i]
	}
	return cells
}

// ReadFile reads and tokenizes a UTF-8 delimited text file. The first
// non-blank line is the header; blank lines elsewhere are skipped without
// disturbing line numbering. Missing files and files without a header or
// without data rows are fatal (nothing has been written yet, so the whole
// run can abort cleanly).
func ReadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv file: %w", err)
	}

	lines := strings.Split(string(raw), "\n")
	file := &File{}
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if file.Header == nil {
			file.Header = SplitLine(line)
			continue
		}
		file.Rows = append(file.Rows, Row{Line: i + 1, Fields: SplitLine(line)})
	}

	if file.Header == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	if len(file.Rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return file, nil
}
