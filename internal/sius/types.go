// Package sius interprets score export files produced by the SIUS family of
// shooting-range scoring devices and aggregates them per competitor.
// This package has no UI or transport dependencies and can be used by any frontend.
package sius

import "strings"

// DefaultDelimiter is the field separator SIUSData exports use by default.
const DefaultDelimiter = ';'

// Canonical SIUS field names (first column of SIUSFields.txt).
const (
	FieldStartNR        = "Start NR"
	FieldPrimaryScore   = "Primary score"
	FieldSecondaryScore = "Secondary score"
	FieldRelay          = "Relay"
	FieldTime           = "Time"
	FieldX              = "X"
	FieldY              = "Y"
)

// HeaderIndex maps normalized header names to their position in a row.
type HeaderIndex map[string]int

// Table is an immutable parsed export: header names plus data rows.
// Rows need not be rectangular; use Cell for bounds-safe access.
type Table struct {
	Headers []string
	Rows    [][]string

	index HeaderIndex
}

// NewTable builds a Table and its one-time header lookup index.
// Duplicate header names keep the first position, matching linear-scan behavior.
func NewTable(headers []string, rows [][]string) *Table {
	idx := make(HeaderIndex, len(headers))
	for i, h := range headers {
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return &Table{Headers: headers, Rows: rows, index: idx}
}

// Column returns the position of the named header.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Cell returns the cell at the given position in row, or "" when the row is
// shorter than idx. Negative idx also yields "".
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ColumnRoles is the result of inferring which column identifies a competitor
// and which columns carry numeric scores. The identifier column, once chosen,
// is never a score candidate.
type ColumnRoles struct {
	IDColumn     string
	ScoreColumns []string
}

// ScorePair is the canonical per-row score derived from the raw primary and
// secondary columns. Either side may be absent.
type ScorePair struct {
	Decimal Value
	Integer Value
}

// ColumnStat holds the aggregate for one score column within a record.
// Mean is nil when the identifier had no parseable values for the column.
type ColumnStat struct {
	Column string
	Sum    float64
	Mean   *float64
}

// AggregateRecord is one row of the generic per-identifier summary.
// Count includes rows whose score cells were blank or unparseable.
type AggregateRecord struct {
	ID     string
	Count  int
	Scores []ColumnStat
}

// SummaryRecord is one row of the device-specific decimal/integer summary.
// Sums and means are nil when no value of that kind was observed.
type SummaryRecord struct {
	StartNR     string
	Count       int
	DecimalSum  *float64
	DecimalMean *float64
	IntegerSum  *int64
	IntegerMean *float64
}

// ShotRecord is one data row interpreted as a single scoring event.
// Index is the row's position within the filtered input sequence; the target
// view uses it to re-locate X/Y coordinates. Time, Primary and Secondary are
// the raw (trimmed) cell values.
type ShotRecord struct {
	Index     int
	Time      string
	Primary   string
	Secondary string
	Decimal   *float64
	Integer   *int64
}

// TargetShot is a shot with its impact coordinates for the target plot.
type TargetShot struct {
	ShotNum      int
	X            *float64
	Y            *float64
	DecimalScore *float64
}

// normalizeName lowercases a header name and strips whitespace, spaces,
// underscores and hyphens so that "Start_NR" and "start nr" compare equal.
func normalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}
