// Command summarize aggregates a SIUS CSV export from the command line.
//
// It reads an export whose first row is a header, infers (or accepts) the
// identifier and score columns, and prints per-competitor count/sum/mean.
//
// Usage:
//
//	summarize -file results.csv
//	summarize -file results.csv -id "Start NR" -scores "Primary score,Secondary score"
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"siusscore/internal/sius"
)

func main() {
	var (
		filePath  = flag.String("file", "", "path to the CSV export (required)")
		idColumn  = flag.String("id", "", "identifier column name (inferred when empty)")
		scoreList = flag.String("scores", "", "comma-separated score column names (inferred when empty)")
		delimiter = flag.String("delimiter", "", "field delimiter (auto-detected when empty)")
	)
	flag.Parse()

	if *filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*filePath, *idColumn, *scoreList, *delimiter); err != nil {
		fmt.Fprintln(os.Stderr, sius.FormatUserError(err))
		os.Exit(1)
	}
}

func run(filePath, idColumn, scoreList, delimiter string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(sius.NewExportReader(f))
	if err != nil {
		return fmt.Errorf("read export: %w", err)
	}

	var delim rune
	if delimiter != "" {
		delim = []rune(delimiter)[0]
	}
	t, err := sius.ParseTable(string(content), delim)
	if err != nil {
		return err
	}
	if len(t.Rows) == 0 {
		return sius.ErrEmptyFile
	}

	var scoreHints []string
	if scoreList != "" {
		for _, s := range strings.Split(scoreList, ",") {
			if s = strings.TrimSpace(s); s != "" {
				scoreHints = append(scoreHints, s)
			}
		}
	}

	roles := sius.InferColumnRoles(t.Headers, t.Rows, idColumn, scoreHints)
	if roles.IDColumn == "" {
		return &sius.ColumnNotFoundError{Column: "identifier"}
	}

	records, err := sius.SummarizeByID(t, t.Rows, roles.IDColumn, roles.ScoreColumns)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, roles, records)
	return nil
}

func printSummary(w io.Writer, roles sius.ColumnRoles, records []sius.AggregateRecord) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "%s\tcount", roles.IDColumn)
	for _, col := range roles.ScoreColumns {
		fmt.Fprintf(tw, "\t%s_sum\t%s_mean", col, col)
	}
	fmt.Fprintln(tw)

	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%d", rec.ID, rec.Count)
		for _, stat := range rec.Scores {
			mean := ""
			if stat.Mean != nil {
				mean = formatNumber(*stat.Mean)
			}
			fmt.Fprintf(tw, "\t%s\t%s", formatNumber(stat.Sum), mean)
		}
		fmt.Fprintln(tw)
	}
}

// formatNumber trims trailing zeros so whole sums print as integers.
func formatNumber(f float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.4f", f), "0")
	return strings.TrimSuffix(s, ".")
}
