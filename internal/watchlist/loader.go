package watchlist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SourceSpec describes one configured sanctions source.
type SourceSpec struct {
	Name    string
	Source  Source
	URL     string
	Enabled bool
}

// SourceError reports which source failed to load. The screening engine is
// never invoked with partially-loaded data, so a single failing source
// fails the whole load.
type SourceError struct {
	Name string
	URL  string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("load sanctions source %s (%s): %v", e.Name, e.URL, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Loader downloads and parses every enabled source into one flat entity
// slice. Sources are fetched in parallel; the combined slice keeps the
// configured source order so screening output stays deterministic.
type Loader struct {
	fetcher *Fetcher
	sources []SourceSpec
	dataDir string
	logger  *zap.SugaredLogger
}

// NewLoader creates a loader. dataDir, when non-empty, receives a copy of
// each downloaded payload for audit purposes.
func NewLoader(fetcher *Fetcher, sources []SourceSpec, dataDir string, logger *zap.SugaredLogger) *Loader {
	return &Loader{fetcher: fetcher, sources: sources, dataDir: dataDir, logger: logger}
}

// LoadAll fetches and parses every enabled source.
func (l *Loader) LoadAll(ctx context.Context) ([]Entity, error) {
	enabled := make([]SourceSpec, 0, len(l.sources))
	for _, spec := range l.sources {
		if spec.Enabled {
			enabled = append(enabled, spec)
		}
	}
	if len(enabled) == 0 {
		l.logger.Warn("No sanctions sources enabled")
		return nil, nil
	}

	slots := make([][]Entity, len(enabled))
	g, gctx := errgroup.WithContext(ctx)

	for i, spec := range enabled {
		i, spec := i, spec
		g.Go(func() error {
			entities, err := l.loadSource(gctx, spec)
			if err != nil {
				return &SourceError{Name: spec.Name, URL: spec.URL, Err: err}
			}
			slots[i] = entities
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var combined []Entity
	for _, entities := range slots {
		combined = append(combined, entities...)
	}

	l.logger.Infow("Sanctions lists loaded",
		"sources", len(enabled), "entities", len(combined))
	return combined, nil
}

func (l *Loader) loadSource(ctx context.Context, spec SourceSpec) ([]Entity, error) {
	l.logger.Infow("Loading sanctions source", "source", spec.Name, "url", spec.URL)

	data, err := l.fetcher.Fetch(ctx, spec.URL)
	if err != nil {
		return nil, err
	}

	if l.dataDir != "" {
		l.archive(spec, data)
	}

	var entities []Entity
	switch spec.Source {
	case SourceUN:
		entities, err = ParseUN(data)
	case SourceEU:
		entities, err = ParseEU(data)
	case SourceOFAC:
		entities, err = ParseOFAC(data)
	default:
		err = fmt.Errorf("unknown source kind: %s", spec.Source)
	}
	if err != nil {
		return nil, err
	}

	l.logger.Infow("Parsed sanctions source",
		"source", spec.Name, "entities", len(entities))
	return entities, nil
}

// archive keeps the raw payload on disk. Failures only log: the in-memory
// load already succeeded and screening must not depend on the archive.
func (l *Loader) archive(spec SourceSpec, data []byte) {
	if err := os.MkdirAll(l.dataDir, 0o755); err != nil {
		l.logger.Warnw("Cannot create data dir", "dir", l.dataDir, "error", err)
		return
	}
	path := filepath.Join(l.dataDir, spec.Name+".raw")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		l.logger.Warnw("Cannot archive source payload", "path", path, "error", err)
	}
}
