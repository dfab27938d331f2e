package watchlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// FetcherConfig tunes list downloads.
type FetcherConfig struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	UserAgent  string
}

// DefaultFetcherConfig mirrors the published lists' tolerances: they are
// large files behind occasionally flaky endpoints.
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: 5 * time.Second,
		UserAgent:  "sanctions-screening/1.0",
	}
}

// Fetcher downloads sanctions list payloads over HTTP with bounded retries.
type Fetcher struct {
	client *http.Client
	config FetcherConfig
	logger *zap.SugaredLogger
}

func NewFetcher(config FetcherConfig, logger *zap.SugaredLogger) *Fetcher {
	if config.MaxRetries < 1 {
		config.MaxRetries = 1
	}
	return &Fetcher{
		client: &http.Client{Timeout: config.Timeout},
		config: config,
		logger: logger,
	}
}

// Fetch retrieves the payload at url, retrying transport and HTTP-status
// failures up to MaxRetries attempts.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < f.config.MaxRetries; attempt++ {
		if attempt > 0 {
			f.logger.Warnw("Retrying list download",
				"url", url, "attempt", attempt+1, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(f.config.RetryDelay):
			}
		}

		body, err := f.fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, fmt.Errorf("download failed after %d attempts: %w", f.config.MaxRetries, lastErr)
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
