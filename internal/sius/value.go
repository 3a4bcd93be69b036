package sius

// value.go defines the tagged optional numeric used throughout the package.
//
// Export cells are strings that may hold an integer, a real number, or
// nothing. Parse failures are represented as the absent variant rather than
// as errors: a single bad cell never aborts a computation, it just contributes
// no value (see the error handling notes in the package docs).

import (
	"math"
	"strconv"
	"strings"
)

// Value is an optional numeric cell value. The zero Value is absent.
type Value struct {
	f     float64
	isInt bool
	ok    bool
}

// FloatValue returns a present real-valued Value.
func FloatValue(f float64) Value {
	return Value{f: f, ok: true}
}

// IntValue returns a present integer-valued Value.
func IntValue(i int64) Value {
	return Value{f: float64(i), isInt: true, ok: true}
}

// ParseValue parses a cell into an integer if it reads as an integer literal,
// else a real number, else the absent Value. Surrounding whitespace is
// ignored; blank cells are absent.
func ParseValue(cell string) Value {
	s := strings.TrimSpace(cell)
	if s == "" {
		return Value{}
	}
	if strings.ContainsAny(s, ".eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}
		}
		return FloatValue(f)
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Value{}
	}
	return IntValue(i)
}

// IsNumeric reports whether a cell parses as a number once trimmed.
func IsNumeric(cell string) bool {
	s := strings.TrimSpace(cell)
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// Defined reports whether the value is present.
func (v Value) Defined() bool { return v.ok }

// Float returns the numeric value as a float64; zero when absent.
func (v Value) Float() float64 { return v.f }

// Int returns the value truncated toward zero; zero when absent.
func (v Value) Int() int64 { return int64(v.f) }

// IsZero reports whether the value is present and exactly zero.
func (v Value) IsZero() bool { return v.ok && v.f == 0 }

// Round4 rounds f to four fractional digits. Aggregation keeps full precision
// internally; rounding happens only when results are emitted.
func Round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}

// floatPtr returns a pointer to f, for optional JSON output fields.
func floatPtr(f float64) *float64 { return &f }

// intPtr returns a pointer to i.
func intPtr(i int64) *int64 { return &i }
