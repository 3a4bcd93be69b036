package sius

// aggregate.go groups rows by competitor identifier and computes count, sum
// and mean per score column.
//
// Two paths exist. SummarizeByID is the generic, name-driven path used when
// an export carries its own headers (desktop/CLI). SummarizeDecimalInteger is
// the device path: a fixed primary/secondary pair is run through the score
// deriver and aggregated as decimal and integer scores.
//
// Output order is the display order and is deliberate: identifiers that are
// purely numeric strings come first, in numeric order, followed by the rest
// lexically. Numeric ordering is achieved by zero-padding to a fixed width so
// the whole key space compares lexically.

import (
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
)

// idPadWidth is the zero-pad width for numeric identifier ordering.
const idPadWidth = 10

// SummarizeByID groups rows by the identifier column and aggregates each
// score column. rows is the (possibly filtered) data row sequence; column
// positions come from t. Rows with a blank identifier are excluded entirely.
// A row counts toward Count even when all of its score cells are
// unparseable; an unparseable cell is simply excluded from that column's sum
// and mean.
func SummarizeByID(t *Table, rows [][]string, idColumn string, scoreColumns []string) ([]AggregateRecord, error) {
	idIdx, ok := t.Column(idColumn)
	if !ok {
		return nil, &ColumnNotFoundError{Column: idColumn}
	}

	type scoreCol struct {
		idx  int
		name string
	}
	var cols []scoreCol
	for _, name := range scoreColumns {
		if i, ok := t.Column(name); ok {
			cols = append(cols, scoreCol{idx: i, name: name})
		}
	}
	if len(cols) == 0 {
		return nil, nil
	}

	type group struct {
		count  int
		values map[string][]float64
	}
	byID := make(map[string]*group)

	for _, row := range rows {
		id := strings.TrimSpace(Cell(row, idIdx))
		if id == "" {
			continue
		}
		g := byID[id]
		if g == nil {
			g = &group{values: make(map[string][]float64, len(cols))}
			byID[id] = g
		}
		g.count++
		for _, c := range cols {
			if v := ParseValue(Cell(row, c.idx)); v.Defined() {
				g.values[c.name] = append(g.values[c.name], v.Float())
			}
		}
	}

	records := make([]AggregateRecord, 0, len(byID))
	for _, id := range sortIdentifiers(byID) {
		g := byID[id]
		rec := AggregateRecord{ID: id, Count: g.count}
		for _, c := range cols {
			stat := ColumnStat{Column: c.name}
			vals := g.values[c.name]
			if sum, err := stats.Sum(vals); err == nil {
				stat.Sum = Round4(sum)
			}
			if mean, err := stats.Mean(vals); err == nil {
				stat.Mean = floatPtr(Round4(mean))
			}
			rec.Scores = append(rec.Scores, stat)
		}
		records = append(records, rec)
	}
	return records, nil
}

// SummarizeDecimalInteger groups rows by identifier and aggregates the
// derived decimal and integer scores. rows is the (possibly filtered) data
// row sequence; column positions come from t. secondaryColumn may be "" when
// the export carries only one score column. Sums and means are nil, never
// zero, for identifiers with no defined value of that kind.
func SummarizeDecimalInteger(t *Table, rows [][]string, idColumn, primaryColumn, secondaryColumn string) ([]SummaryRecord, error) {
	idIdx, ok := t.Column(idColumn)
	if !ok {
		return nil, &ColumnNotFoundError{Column: idColumn}
	}
	primaryIdx, ok := t.Column(primaryColumn)
	if !ok {
		return nil, &ColumnNotFoundError{Column: primaryColumn}
	}
	secondaryIdx := -1
	if secondaryColumn != "" {
		if i, ok := t.Column(secondaryColumn); ok {
			secondaryIdx = i
		}
	}

	primaryIsDecimal := ColumnHasDecimals(rows, primaryIdx)

	type group struct {
		count      int
		decimals   []float64
		integerSum int64
		integerN   int
	}
	byID := make(map[string]*group)

	for _, row := range rows {
		id := strings.TrimSpace(Cell(row, idIdx))
		if id == "" {
			continue
		}
		g := byID[id]
		if g == nil {
			g = &group{}
			byID[id] = g
		}
		g.count++

		pair := DeriveScores(ParseValue(Cell(row, primaryIdx)), parseAt(row, secondaryIdx), primaryIsDecimal)
		if pair.Decimal.Defined() {
			g.decimals = append(g.decimals, pair.Decimal.Float())
		}
		if pair.Integer.Defined() {
			g.integerSum += pair.Integer.Int()
			g.integerN++
		}
	}

	records := make([]SummaryRecord, 0, len(byID))
	for _, id := range sortIdentifiers(byID) {
		g := byID[id]
		rec := SummaryRecord{StartNR: id, Count: g.count}
		if sum, err := stats.Sum(g.decimals); err == nil {
			rec.DecimalSum = floatPtr(Round4(sum))
		}
		if mean, err := stats.Mean(g.decimals); err == nil {
			rec.DecimalMean = floatPtr(Round4(mean))
		}
		if g.integerN > 0 {
			rec.IntegerSum = intPtr(g.integerSum)
			rec.IntegerMean = floatPtr(Round4(float64(g.integerSum) / float64(g.integerN)))
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseAt parses the cell at idx, treating a negative idx as absent.
func parseAt(row []string, idx int) Value {
	if idx < 0 {
		return Value{}
	}
	return ParseValue(Cell(row, idx))
}

// sortIdentifiers returns the map keys in display order: numeric identifiers
// first, ascending by value, then the rest lexically.
func sortIdentifiers[V any](byID map[string]V) []string {
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	SortIdentifierStrings(ids)
	return ids
}

// SortIdentifierStrings sorts identifier values in place in display order.
func SortIdentifierStrings(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		return identifierSortKey(ids[i]) < identifierSortKey(ids[j])
	})
}

// identifierSortKey builds a lexically comparable key: "0" prefix plus the
// zero-padded value for all-digit identifiers, "1" prefix plus the raw value
// otherwise. The pad width covers any realistic start-number range.
func identifierSortKey(id string) string {
	if isDigits(id) {
		return "0" + zeroPad(id, idPadWidth)
	}
	return "1" + id
}

// isDigits reports whether s is non-empty and entirely ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// zeroPad left-pads s with zeros to at least width characters.
func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// UniqueColumnValues returns the distinct trimmed non-blank values of the
// column at idx, in identifier display order. Used for the relay and start
// number filter lists.
func UniqueColumnValues(rows [][]string, idx int) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		v := strings.TrimSpace(Cell(row, idx))
		if v != "" {
			seen[v] = true
		}
	}
	vals := make([]string, 0, len(seen))
	for v := range seen {
		vals = append(vals, v)
	}
	SortIdentifierStrings(vals)
	return vals
}
