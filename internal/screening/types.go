package screening

import (
	"github.com/tomszy91/sanctions-screening/internal/watchlist"
)

// MatchCandidate is one watchlist record that scored at or above the
// threshold against a subject name.
type MatchCandidate struct {
	Entity                watchlist.Entity
	NormalizedSubjectName string
	NormalizedEntityName  string
	Score                 float64
}

// Result is one output row of a screening run: either a match row carrying
// the sanctions record details, or a clean row with MatchFound false and
// the sanctions fields empty. A subject with several matching name
// variants produces several match rows; a subject with none produces
// exactly one clean row.
type Result struct {
	CompanyID       string
	CompanyName     string
	Country         string
	MatchFound      bool
	SanctionsName   string
	ReferenceNumber string
	ListType        string
	Source          string
	MatchScore      float64
}

// RunStats summarizes one screening run for reporting.
type RunStats struct {
	RunID string

	TotalSubjects   int
	MatchedSubjects int // distinct company IDs with at least one match row
	TotalMatchRows  int // including multiple aliases per subject
	CleanSubjects   int // TotalSubjects - MatchedSubjects

	// UnscreenableSubjects counts subjects whose name normalized to "".
	// They are reported as clean rows (and counted in CleanSubjects), but
	// no comparison was possible; this figure keeps them visible.
	UnscreenableSubjects int
}
