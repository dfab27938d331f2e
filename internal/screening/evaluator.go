package screening

import (
	"sort"

	"go.uber.org/zap"

	"github.com/tomszy91/sanctions-screening/internal/watchlist"
)

// WatchlistIndex holds the watchlist with every entity name normalized
// once per run. Normalization is referentially transparent, so the index
// is built up front and shared read-only across workers; entities whose
// names normalize to "" cannot be compared and are dropped at build time.
type WatchlistIndex struct {
	entries []indexedEntity
}

type indexedEntity struct {
	entity     watchlist.Entity
	normalized string
}

// NewWatchlistIndex precomputes normalized names for the given entities,
// preserving their order.
func NewWatchlistIndex(entities []watchlist.Entity) *WatchlistIndex {
	entries := make([]indexedEntity, 0, len(entities))
	for _, entity := range entities {
		normalized := Normalize(entity.Name)
		if normalized == "" {
			continue
		}
		entries = append(entries, indexedEntity{entity: entity, normalized: normalized})
	}
	return &WatchlistIndex{entries: entries}
}

// Len reports how many comparable entries the index holds.
func (ix *WatchlistIndex) Len() int { return len(ix.entries) }

// Config carries the engine's matching parameters.
type Config struct {
	// Threshold is the inclusive minimum score (0..100) for a match.
	Threshold float64
	// Algorithm selects the scoring mode; unknown values degrade to ratio.
	Algorithm Algorithm
	// Workers bounds concurrent subject evaluations; values below 1 mean 1.
	Workers int
}

// Matcher screens subject names against a watchlist index.
type Matcher struct {
	config Config
	logger *zap.SugaredLogger
}

func NewMatcher(config Config, logger *zap.SugaredLogger) *Matcher {
	if config.Workers < 1 {
		config.Workers = 1
	}
	logger.Infow("Matcher initialized",
		"threshold", config.Threshold, "algorithm", string(config.Algorithm))
	return &Matcher{config: config, logger: logger}
}

// MatchName screens one subject name against the index and returns every
// candidate scoring at or above the threshold, ordered by score descending
// with ties keeping watchlist order. An unscreenable subject name (one
// that normalizes to "") yields nil; the caller decides how to report it.
func (m *Matcher) MatchName(subjectName string, index *WatchlistIndex) []MatchCandidate {
	return m.matchNormalized(Normalize(subjectName), index)
}

func (m *Matcher) matchNormalized(normalizedSubject string, index *WatchlistIndex) []MatchCandidate {
	if normalizedSubject == "" {
		return nil
	}

	var candidates []MatchCandidate
	for _, entry := range index.entries {
		score := Score(normalizedSubject, entry.normalized, m.config.Algorithm)
		if score >= m.config.Threshold {
			candidates = append(candidates, MatchCandidate{
				Entity:                entry.entity,
				NormalizedSubjectName: normalizedSubject,
				NormalizedEntityName:  entry.normalized,
				Score:                 score,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}
