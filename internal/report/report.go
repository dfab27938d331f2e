// Package report persists screening results as CSV and prints the run
// summary for human review.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/tomszy91/sanctions-screening/internal/screening"
)

var csvHeader = []string{
	"company_id", "company_name", "country", "match_found",
	"sanctions_name", "reference_number", "list_type", "source", "match_score",
}

// WriteCSV writes the result table to a timestamped file under dir,
// creating the directory if needed, and returns the file path. Clean rows
// leave the sanctions columns empty.
func WriteCSV(results []screening.Result, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("screening_results_%s.csv", now.Format("20060102_150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("write report header: %w", err)
	}

	for _, row := range results {
		record := []string{
			row.CompanyID,
			row.CompanyName,
			row.Country,
			strconv.FormatBool(row.MatchFound),
			"", "", "", "", "",
		}
		if row.MatchFound {
			record[4] = row.SanctionsName
			record[5] = row.ReferenceNumber
			record[6] = row.ListType
			record[7] = row.Source
			record[8] = strconv.FormatFloat(row.MatchScore, 'f', 2, 64)
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write report row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush report: %w", err)
	}
	return path, nil
}

// WriteSummary prints the screening summary block and, when matches exist,
// the match table.
func WriteSummary(w io.Writer, stats screening.RunStats, results []screening.Result) {
	banner := "================================================================================"

	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "SANCTIONS SCREENING SUMMARY")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Total companies screened: %d\n", stats.TotalSubjects)
	fmt.Fprintf(w, "Companies with potential matches: %d\n", stats.MatchedSubjects)
	fmt.Fprintf(w, "Total match records (including aliases): %d\n", stats.TotalMatchRows)
	fmt.Fprintf(w, "Clean companies: %d\n", stats.CleanSubjects)
	if stats.UnscreenableSubjects > 0 {
		fmt.Fprintf(w, "Companies with unscreenable names: %d\n", stats.UnscreenableSubjects)
	}
	fmt.Fprintln(w, banner)

	if stats.TotalMatchRows == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "POTENTIAL MATCHES:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "company_name\tsanctions_name\tmatch_score\treference_number")
	for _, row := range results {
		if !row.MatchFound {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\n",
			row.CompanyName, row.SanctionsName, row.MatchScore, row.ReferenceNumber)
	}
	tw.Flush()
}
