package sius

// shots.go selects and orders individual shots for one competitor.
//
// The web UI narrows the table in three steps before asking for shots: an
// exact relay match, an explicit start-number allow-list, and a set of row
// positions the official has excluded by hand. Exclusion indices refer to
// positions within the already-filtered sequence, which is also the sequence
// ShotRecord.Index points into.

import (
	"sort"
	"strconv"
	"strings"
)

// ShotFilter narrows rows before shot selection or summarization.
//
// Relay filters on exact (trimmed) relay value when non-nil and non-empty.
// StartNRs is an allow-list: nil means no filtering, an empty list matches
// nothing. ExcludedIndices are row positions within the sequence produced by
// the first two filters.
type ShotFilter struct {
	Relay           *string
	StartNRs        []string
	ExcludedIndices map[int]bool
}

// Apply returns the rows that pass the filter, in order. The relay and start
// number filters are skipped when the table has no such column.
func (f ShotFilter) Apply(t *Table) [][]string {
	rows := t.Rows

	if f.Relay != nil && *f.Relay != "" {
		if relayIdx, ok := t.Column(FieldRelay); ok {
			var kept [][]string
			for _, row := range rows {
				if strings.TrimSpace(Cell(row, relayIdx)) == *f.Relay {
					kept = append(kept, row)
				}
			}
			rows = kept
		}
	}

	if f.StartNRs != nil {
		if startIdx, ok := t.Column(FieldStartNR); ok {
			if len(f.StartNRs) == 0 {
				rows = nil
			} else {
				allowed := make(map[string]bool, len(f.StartNRs))
				for _, s := range f.StartNRs {
					allowed[s] = true
				}
				var kept [][]string
				for _, row := range rows {
					if allowed[strings.TrimSpace(Cell(row, startIdx))] {
						kept = append(kept, row)
					}
				}
				rows = kept
			}
		}
	}

	if len(f.ExcludedIndices) > 0 {
		var kept [][]string
		for i, row := range rows {
			if !f.ExcludedIndices[i] {
				kept = append(kept, row)
			}
		}
		rows = kept
	}

	return rows
}

// ShotsForStartNR returns one ShotRecord per row whose identifier cell,
// trimmed, equals startNR, trimmed. rows is the already-filtered sequence;
// Index is each row's position within it. timeColumn may be "" when the
// export has no time column. The result is sorted descending by time:
// numeric timestamps first in numeric order, non-numeric time strings after
// them in lexical order.
func ShotsForStartNR(t *Table, rows [][]string, idColumn, primaryColumn, secondaryColumn, timeColumn, startNR string) ([]ShotRecord, error) {
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
	timeIdx := -1
	if timeColumn != "" {
		if i, ok := t.Column(timeColumn); ok {
			timeIdx = i
		}
	}

	primaryIsDecimal := ColumnHasDecimals(rows, primaryIdx)
	target := strings.TrimSpace(startNR)

	var shots []ShotRecord
	for i, row := range rows {
		if strings.TrimSpace(Cell(row, idIdx)) != target {
			continue
		}
		primary := ParseValue(Cell(row, primaryIdx))
		secondary := parseAt(row, secondaryIdx)
		pair := DeriveScores(primary, secondary, primaryIsDecimal)

		shot := ShotRecord{
			Index:     i,
			Time:      strings.TrimSpace(Cell(row, timeIdx)),
			Primary:   strings.TrimSpace(Cell(row, primaryIdx)),
			Secondary: strings.TrimSpace(Cell(row, secondaryIdx)),
		}
		if pair.Decimal.Defined() {
			shot.Decimal = floatPtr(Round4(pair.Decimal.Float()))
		}
		if pair.Integer.Defined() {
			shot.Integer = intPtr(pair.Integer.Int())
		}
		shots = append(shots, shot)
	}

	sort.SliceStable(shots, func(i, j int) bool {
		return timeLess(shots[j].Time, shots[i].Time) // descending
	})
	return shots, nil
}

// timeLess orders time strings ascending with the categorical split the UI
// depends on: every numeric timestamp sorts after every non-numeric one, so
// that the descending shot order shows numeric timestamps first.
func timeLess(a, b string) bool {
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	aNumeric := errA == nil
	bNumeric := errB == nil
	switch {
	case aNumeric && bNumeric:
		return fa < fb
	case aNumeric:
		return false // numeric after non-numeric ascending = first descending
	case bNumeric:
		return true
	default:
		return a < b
	}
}

// TargetShots returns the included shots for startNR with their X/Y impact
// coordinates, for the target plot. rows must be the same filtered sequence
// the shot indices refer to. The export must carry X and Y columns.
func TargetShots(t *Table, rows [][]string, idColumn, primaryColumn, secondaryColumn, startNR string) ([]TargetShot, error) {
	xIdx, okX := t.Column(FieldX)
	yIdx, okY := t.Column(FieldY)
	if !okX || !okY {
		return nil, &ColumnNotFoundError{Column: "X and Y columns"}
	}

	shots, err := ShotsForStartNR(t, rows, idColumn, primaryColumn, secondaryColumn, FieldTime, startNR)
	if err != nil {
		return nil, err
	}

	out := make([]TargetShot, 0, len(shots))
	for i, s := range shots {
		ts := TargetShot{ShotNum: i + 1, DecimalScore: s.Decimal}
		if s.Index < len(rows) {
			row := rows[s.Index]
			if x := ParseValue(Cell(row, xIdx)); x.Defined() {
				ts.X = floatPtr(x.Float())
			}
			if y := ParseValue(Cell(row, yIdx)); y.Defined() {
				ts.Y = floatPtr(y.Float())
			}
		}
		out = append(out, ts)
	}
	return out, nil
}
