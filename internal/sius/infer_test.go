package sius

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferColumnRoles_AliasAndNumericFallback(t *testing.T) {
	headers := []string{"Shooter", "Decimal score", "Rings", "Club"}
	rows := [][]string{
		{"101", "10.4", "10", "SG Altdorf"},
		{"102", "9.8", "9", "SG Brunnen"},
	}

	roles := InferColumnRoles(headers, rows, "", nil)

	assert.Equal(t, "Shooter", roles.IDColumn)
	// "Decimal score" by alias, "Rings" by numeric sampling; "Club" is text.
	assert.Equal(t, []string{"Decimal score", "Rings"}, roles.ScoreColumns)
}

func TestInferColumnRoles_StartSubstringWins(t *testing.T) {
	headers := []string{"Lane", "Start number", "Score"}
	rows := [][]string{{"1", "101", "10.4"}}

	roles := InferColumnRoles(headers, rows, "", nil)
	assert.Equal(t, "Start number", roles.IDColumn)
}

func TestInferColumnRoles_FirstColumnFallback(t *testing.T) {
	headers := []string{"Lane", "Club"}
	rows := [][]string{{"1", "SG Altdorf"}}

	roles := InferColumnRoles(headers, rows, "", nil)
	assert.Equal(t, "Lane", roles.IDColumn)
}

func TestInferColumnRoles_IDHint(t *testing.T) {
	headers := []string{"Lane", "Club", "Score"}
	rows := [][]string{{"1", "SG Altdorf", "10.4"}}

	// Normalized name match.
	roles := InferColumnRoles(headers, rows, "club", nil)
	assert.Equal(t, "Club", roles.IDColumn)

	// Positional hint.
	roles = InferColumnRoles(headers, rows, "1", nil)
	assert.Equal(t, "Club", roles.IDColumn)
}

func TestInferColumnRoles_ScoreHints(t *testing.T) {
	headers := []string{"Start NR", "Club", "Rings"}
	rows := [][]string{{"101", "SG Altdorf", "10"}}

	roles := InferColumnRoles(headers, rows, "", []string{"rings"})
	assert.Contains(t, roles.ScoreColumns, "Rings")
}

func TestInferColumnRoles_IDExcludedFromScores(t *testing.T) {
	headers := []string{"Start NR", "Score"}
	rows := [][]string{{"101", "10.4"}}

	roles := InferColumnRoles(headers, rows, "", nil)
	assert.Equal(t, "Start NR", roles.IDColumn)
	assert.NotContains(t, roles.ScoreColumns, "Start NR")
}

func TestInferColumnRoles_NumericFallbackRejectsMixedColumn(t *testing.T) {
	headers := []string{"Start NR", "Remark"}
	rows := [][]string{
		{"101", "10"},
		{"102", "disqualified"},
	}

	roles := InferColumnRoles(headers, rows, "", nil)
	assert.Empty(t, roles.ScoreColumns)
}

func TestInferColumnRoles_EmptyInput(t *testing.T) {
	roles := InferColumnRoles(nil, nil, "", nil)
	assert.Empty(t, roles.IDColumn)
	assert.Empty(t, roles.ScoreColumns)

	roles = InferColumnRoles([]string{"Start NR"}, nil, "", nil)
	assert.Empty(t, roles.IDColumn)
}
