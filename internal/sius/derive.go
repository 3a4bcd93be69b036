package sius

// derive.go reconstructs the canonical (decimal, integer) score pair from the
// two raw score columns.
//
// The device sometimes reports a single decimal-precision score in the
// primary slot with a separate, possibly-zero, inner-ring count in the
// secondary slot; on other firmware the integer ring count is primary and the
// decimal value secondary. Which layout applies is decided once per column by
// checking whether the primary column carries fractional values at all.

import "math"

// ColumnHasDecimals reports whether any parseable cell in the column has a
// non-zero fractional part. All rows are inspected, not a sample: a single
// decimal shot anywhere flips the whole column's interpretation.
func ColumnHasDecimals(rows [][]string, col int) bool {
	for _, row := range rows {
		v := ParseValue(Cell(row, col))
		if v.Defined() && v.Float() != math.Trunc(v.Float()) {
			return true
		}
	}
	return false
}

// DeriveScores computes the per-row score pair from the raw primary and
// secondary values and the column-wide primaryIsDecimal flag.
//
// When the primary column is the decimal one, the secondary carries the
// integer score unless it is zero or missing, in which case the integer
// score falls back to the floor of the primary. Otherwise the primary is the
// integer score and the secondary passes through as the decimal.
func DeriveScores(primary, secondary Value, primaryIsDecimal bool) ScorePair {
	if primaryIsDecimal {
		pair := ScorePair{Decimal: primary}
		switch {
		case secondary.Defined() && !secondary.IsZero():
			pair.Integer = IntValue(secondary.Int())
		case primary.Defined():
			pair.Integer = IntValue(int64(math.Floor(primary.Float())))
		}
		return pair
	}
	pair := ScorePair{Decimal: secondary}
	if primary.Defined() {
		pair.Integer = IntValue(primary.Int())
	}
	return pair
}
