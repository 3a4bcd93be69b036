package sius

// fields.go loads the SIUSFields.txt reference list and matches export
// headers to the canonical SIUS field names.
//
// The reference file is tab-delimited with a header row; its first column
// (named "Field" or "Fields") lists the canonical name for each column
// position of a headerless device export, in file order.

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Header patterns that map to canonical field names, normalized form.
// SIUSData exports have drifted over device generations; "Decimal score"
// is what newer firmware calls the primary score.
// Entries must themselves be in normalized form or they can never match.
var (
	startNRAliases      = []string{"startnr", "startnumber", "startno"}
	primaryScoreAliases = []string{"primaryscore", "decimalscore"}
	secondaryAliases    = []string{"secondaryscore"}
)

// LoadFieldNames reads a SIUSFields reference file and returns the canonical
// field names from its first column, header row excluded. Rows with a blank
// first-column cell are skipped without consuming a position slot.
func LoadFieldNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fields file: %w", err)
	}
	defer f.Close()
	return ReadFieldNames(f)
}

// ReadFieldNames parses reference field names from r. See LoadFieldNames.
func ReadFieldNames(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid fields file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	fieldCol := 0
	for i, h := range rows[0] {
		if n := normalizeName(h); n == "field" || n == "fields" {
			fieldCol = i
			break
		}
	}

	var names []string
	for _, row := range rows[1:] {
		name := strings.TrimSpace(Cell(row, fieldCol))
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// HeadersFromFieldNames assigns reference names positionally to a headerless
// export with numColumns columns. Overflow positions get a synthetic
// "Column N" name, 1-indexed.
func HeadersFromFieldNames(numColumns int, fieldNames []string) []string {
	headers := make([]string, numColumns)
	for i := range headers {
		if i < len(fieldNames) {
			headers[i] = fieldNames[i]
		} else {
			headers[i] = "Column " + strconv.Itoa(i+1)
		}
	}
	return headers
}

// MatchHeaderToField finds the export header that corresponds to the given
// canonical SIUS field name, first by normalized equality, then through the
// per-field alias lists. Returns "" when nothing matches.
func MatchHeaderToField(headers []string, targetField string) string {
	targetNorm := normalizeName(targetField)
	for _, h := range headers {
		if normalizeName(h) == targetNorm {
			return h
		}
	}
	switch targetNorm {
	case normalizeName(FieldStartNR):
		// Older exports say "Start number".
		for _, h := range headers {
			if containsNorm(startNRAliases, normalizeName(h)) {
				return h
			}
		}
	case normalizeName(FieldPrimaryScore):
		for _, h := range headers {
			hn := normalizeName(h)
			if containsNorm(primaryScoreAliases, hn) ||
				(strings.Contains(hn, "decimal") && strings.Contains(hn, "score")) {
				return h
			}
		}
	case normalizeName(FieldSecondaryScore):
		for _, h := range headers {
			if containsNorm(secondaryAliases, normalizeName(h)) {
				return h
			}
		}
	}
	return ""
}

// ColumnSuggestion names the export columns to use for the three canonical
// roles. A field is "" when no header matched.
type ColumnSuggestion struct {
	StartNR        string
	PrimaryScore   string
	SecondaryScore string
}

// SuggestColumns matches export headers against the canonical SIUS fields.
// When no Start NR header is found the first column stands in, since device
// exports always lead with the start number.
func SuggestColumns(headers []string) ColumnSuggestion {
	s := ColumnSuggestion{
		StartNR:        MatchHeaderToField(headers, FieldStartNR),
		PrimaryScore:   MatchHeaderToField(headers, FieldPrimaryScore),
		SecondaryScore: MatchHeaderToField(headers, FieldSecondaryScore),
	}
	if s.StartNR == "" && len(headers) > 0 {
		s.StartNR = headers[0]
	}
	return s
}

func containsNorm(set []string, norm string) bool {
	for _, s := range set {
		if s == norm {
			return true
		}
	}
	return false
}
