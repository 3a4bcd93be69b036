package sius

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		cell    string
		defined bool
		isInt   bool
		f       float64
	}{
		{"integer literal", "42", true, true, 42},
		{"negative integer", "-7", true, true, -7},
		{"decimal literal", "10.4", true, false, 10.4},
		{"exponent literal", "1e2", true, false, 100},
		{"surrounding whitespace", "  9.8 ", true, false, 9.8},
		{"empty", "", false, false, 0},
		{"whitespace only", "   ", false, false, 0},
		{"garbage", "abc", false, false, 0},
		{"mixed", "10a", false, false, 0},
		{"double dot", "1.2.3", false, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseValue(tt.cell)
			assert.Equal(t, tt.defined, v.Defined())
			if tt.defined {
				assert.Equal(t, tt.isInt, v.isInt)
				assert.Equal(t, tt.f, v.Float())
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("10"))
	assert.True(t, IsNumeric("10.4"))
	assert.True(t, IsNumeric(" -3.5 "))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("  "))
	assert.False(t, IsNumeric("10:30:00"))
}

func TestRound4(t *testing.T) {
	assert.Equal(t, 10.4667, Round4(10.46666666))
	assert.Equal(t, 0.0, Round4(0))
	assert.Equal(t, -2.5, Round4(-2.5))
}

func TestValue_Int_TruncatesTowardZero(t *testing.T) {
	assert.Equal(t, int64(5), FloatValue(5.9).Int())
	assert.Equal(t, int64(-5), FloatValue(-5.9).Int())
}
