package sius

// parser.go turns raw export text into ordered rows of string cells.
//
// Two modes exist: desktop-style exports carry a header row, device exports
// do not (their columns are named afterwards from the SIUSFields reference
// list). Header cells are trimmed at parse time; data cells are trimmed only
// at the consumption sites that need it.

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// ParseTable parses content whose first row is a header. Whitespace-only
// content yields an empty table, not an error. A zero delim auto-detects
// from the first line.
func ParseTable(content string, delim rune) (*Table, error) {
	rows, _, err := parseRows(content, delim)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return NewTable(nil, nil), nil
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return NewTable(headers, rows[1:]), nil
}

// ParseRows parses headerless content: every row, including the first, is
// data. It returns the rows and the delimiter that was used, so callers can
// report it. A zero delim auto-detects from the first line.
func ParseRows(content string, delim rune) ([][]string, rune, error) {
	return parseRows(content, delim)
}

func parseRows(content string, delim rune) ([][]string, rune, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, DefaultDelimiter, nil
	}
	if delim == 0 {
		delim = DetectDelimiter(firstLine(content))
	}

	r := csv.NewReader(strings.NewReader(content))
	r.Comma = delim
	r.FieldsPerRecord = -1 // device exports are not rectangular
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, delim, fmt.Errorf("invalid csv: %w", err)
	}
	return rows, delim, nil
}

// MaxColumns returns the widest row length, the column count used when
// assigning reference field names to a headerless export.
func MaxColumns(rows [][]string) int {
	max := 0
	for _, row := range rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}
