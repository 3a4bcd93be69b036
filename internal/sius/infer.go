package sius

// infer.go decides column roles for exports that carry their own header row
// (the desktop/CLI path). Headerless device exports skip this entirely and
// use the SIUSFields reference list instead.

import (
	"strconv"
	"strings"
)

// inferSampleRows caps how many rows the numeric-content fallback inspects.
const inferSampleRows = 50

// Known identifier and score header spellings, normalized form.
var (
	idAliases    = []string{"startnumber", "startnr", "start_no", "id", "competitor", "shooter"}
	scoreAliases = []string{"decimalscore", "score", "decimal", "points", "innerten"}
)

// InferColumnRoles decides which column identifies a competitor and which
// columns are numeric scores.
//
// Identifier resolution order: explicit hint (normalized-name equality, or a
// literal header/position match), then a known alias or any header containing
// "start", then unconditionally the first header. Score resolution, for every
// remaining header: explicit hint, then a known alias or a name containing
// "score"/"decimal", then a sampling fallback that accepts the column only
// when every non-empty sampled cell parses as a number.
func InferColumnRoles(headers []string, rows [][]string, idHint string, scoreHints []string) ColumnRoles {
	var roles ColumnRoles
	if len(headers) == 0 || len(rows) == 0 {
		return roles
	}

	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeName(h)
	}

	if idHint != "" {
		hintNorm := normalizeName(idHint)
		for i, h := range headers {
			if normalized[i] == hintNorm || idHint == h || idHint == strconv.Itoa(i) {
				roles.IDColumn = h
				break
			}
		}
	}
	if roles.IDColumn == "" {
		for i, h := range headers {
			if containsNorm(idAliases, normalized[i]) || strings.Contains(normalized[i], "start") {
				roles.IDColumn = h
				break
			}
		}
	}
	if roles.IDColumn == "" {
		roles.IDColumn = headers[0]
	}

	scoreHintSet := make(map[string]bool, len(scoreHints))
	for _, s := range scoreHints {
		scoreHintSet[normalizeName(s)] = true
	}

	sample := rows
	if len(sample) > inferSampleRows {
		sample = sample[:inferSampleRows]
	}

	for i, h := range headers {
		if h == roles.IDColumn {
			continue
		}
		if len(scoreHintSet) > 0 && scoreHintSet[normalized[i]] {
			roles.ScoreColumns = append(roles.ScoreColumns, h)
			continue
		}
		if containsNorm(scoreAliases, normalized[i]) ||
			strings.Contains(normalized[i], "score") || strings.Contains(normalized[i], "decimal") {
			roles.ScoreColumns = append(roles.ScoreColumns, h)
			continue
		}
		if columnIsNumeric(sample, i) {
			roles.ScoreColumns = append(roles.ScoreColumns, h)
		}
	}
	return roles
}

// columnIsNumeric reports whether every non-empty sampled cell in the column
// parses as a number. A column that is empty throughout the sample passes.
func columnIsNumeric(sample [][]string, col int) bool {
	for _, row := range sample {
		cell := Cell(row, col)
		if cell == "" {
			continue
		}
		if !IsNumeric(cell) {
			return false
		}
	}
	return true
}
