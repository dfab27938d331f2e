package report_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomszy91/sanctions-screening/internal/report"
	"github.com/tomszy91/sanctions-screening/internal/screening"
)

func sampleResults() []screening.Result {
	return []screening.Result{
		{
			CompanyID:       "C-1",
			CompanyName:     "Frank Kakorere Enterprises",
			Country:         "NZ",
			MatchFound:      true,
			SanctionsName:   "FRANK KAKORERE",
			ReferenceNumber: "QDi.002",
			ListType:        "Al-Qaida",
			Source:          "UN",
			MatchScore:      100,
		},
		{
			CompanyID:   "C-2",
			CompanyName: "Quiet Harbor Logistics",
			Country:     "NL",
			MatchFound:  false,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	now := time.Date(2026, 8, 31, 14, 5, 9, 0, time.UTC)

	path, err := report.WriteCSV(sampleResults(), dir, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "screening_results_20260831_140509.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"company_id", "company_name", "country", "match_found",
		"sanctions_name", "reference_number", "list_type", "source", "match_score",
	}, records[0])

	assert.Equal(t, []string{
		"C-1", "Frank Kakorere Enterprises", "NZ", "true",
		"FRANK KAKORERE", "QDi.002", "Al-Qaida", "UN", "100.00",
	}, records[1])

	// Clean rows leave the sanctions columns empty.
	assert.Equal(t, []string{
		"C-2", "Quiet Harbor Logistics", "NL", "false", "", "", "", "", "",
	}, records[2])
}

func TestWriteSummary(t *testing.T) {
	stats := screening.RunStats{
		TotalSubjects:   2,
		MatchedSubjects: 1,
		TotalMatchRows:  1,
		CleanSubjects:   1,
	}

	var buf bytes.Buffer
	report.WriteSummary(&buf, stats, sampleResults())
	out := buf.String()

	assert.Contains(t, out, "SANCTIONS SCREENING SUMMARY")
	assert.Contains(t, out, "Total companies screened: 2")
	assert.Contains(t, out, "Companies with potential matches: 1")
	assert.Contains(t, out, "Total match records (including aliases): 1")
	assert.Contains(t, out, "Clean companies: 1")
	assert.Contains(t, out, "POTENTIAL MATCHES:")
	assert.Contains(t, out, "FRANK KAKORERE")
	assert.Contains(t, out, "100.00")
	assert.NotContains(t, out, "Quiet Harbor Logistics")
}

func TestWriteSummaryNoMatches(t *testing.T) {
	stats := screening.RunStats{TotalSubjects: 1, CleanSubjects: 1}

	var buf bytes.Buffer
	report.WriteSummary(&buf, stats, []screening.Result{{CompanyID: "0", MatchFound: false}})

	assert.NotContains(t, buf.String(), "POTENTIAL MATCHES:")
}
