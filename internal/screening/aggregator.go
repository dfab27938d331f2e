package screening

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tomszy91/sanctions-screening/internal/roster"
)

// Screen evaluates every subject against the watchlist index and returns
// one result table row per match plus one clean row per unmatched subject,
// in roster order. The run is a pure batch transform: inputs are not
// mutated and identical inputs produce byte-identical output.
//
// Subjects are evaluated by a bounded worker pool; each worker writes only
// its own output slot, so the shared index needs no locking. Cancellation
// is cooperative: if ctx is cancelled mid-run, Screen returns the context
// error and no rows at all rather than a partially assembled table.
func (m *Matcher) Screen(ctx context.Context, subjects []roster.Subject, index *WatchlistIndex) ([]Result, RunStats, error) {
	stats := RunStats{
		RunID:         uuid.NewString(),
		TotalSubjects: len(subjects),
	}

	m.logger.Infow("Screening roster against watchlist",
		"run_id", stats.RunID,
		"companies", len(subjects),
		"watchlist_entries", index.Len(),
		"workers", m.config.Workers)

	slots := make([][]Result, len(subjects))
	unscreenable := make([]bool, len(subjects))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.config.Workers)

	for i, subject := range subjects {
		if err := gctx.Err(); err != nil {
			break
		}
		i, subject := i, subject
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			normalized := Normalize(subject.CompanyName)
			if normalized == "" {
				unscreenable[i] = true
			}

			candidates := m.matchNormalized(normalized, index)
			if len(candidates) == 0 {
				slots[i] = []Result{{
					CompanyID:   subject.CompanyID,
					CompanyName: subject.CompanyName,
					Country:     subject.Country,
					MatchFound:  false,
				}}
				return nil
			}

			m.logger.Warnw("Potential sanctions match",
				"run_id", stats.RunID,
				"company_id", subject.CompanyID,
				"company_name", subject.CompanyName,
				"matches", len(candidates))

			rows := make([]Result, 0, len(candidates))
			for _, candidate := range candidates {
				rows = append(rows, Result{
					CompanyID:       subject.CompanyID,
					CompanyName:     subject.CompanyName,
					Country:         subject.Country,
					MatchFound:      true,
					SanctionsName:   candidate.Entity.Name,
					ReferenceNumber: candidate.Entity.ReferenceNumber,
					ListType:        candidate.Entity.ListType,
					Source:          string(candidate.Entity.Source),
					MatchScore:      candidate.Score,
				})
			}
			slots[i] = rows
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, RunStats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, RunStats{}, err
	}

	results := make([]Result, 0, len(subjects))
	matchedIDs := make(map[string]struct{})
	for i, rows := range slots {
		results = append(results, rows...)
		for _, row := range rows {
			if row.MatchFound {
				stats.TotalMatchRows++
				matchedIDs[row.CompanyID] = struct{}{}
			}
		}
		if unscreenable[i] {
			stats.UnscreenableSubjects++
		}
	}
	stats.MatchedSubjects = len(matchedIDs)
	stats.CleanSubjects = stats.TotalSubjects - stats.MatchedSubjects

	m.logger.Infow("Screening complete",
		"run_id", stats.RunID,
		"match_rows", stats.TotalMatchRows,
		"matched_companies", stats.MatchedSubjects,
		"clean_companies", stats.CleanSubjects,
		"unscreenable", stats.UnscreenableSubjects)

	return results, stats, nil
}
