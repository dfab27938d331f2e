package watchlist_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tomszy91/sanctions-screening/internal/watchlist"
)

func TestLoaderLoadAll(t *testing.T) {
	unSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleUNXML))
	}))
	defer unSrv.Close()
	ofacSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleOFACTSV))
	}))
	defer ofacSrv.Close()

	dataDir := filepath.Join(t.TempDir(), "lists")
	loader := watchlist.NewLoader(testFetcher(1), []watchlist.SourceSpec{
		{Name: "un_consolidated", Source: watchlist.SourceUN, URL: unSrv.URL, Enabled: true},
		{Name: "eu_consolidated", Source: watchlist.SourceEU, URL: "http://ignored", Enabled: false},
		{Name: "ofac_sdn", Source: watchlist.SourceOFAC, URL: ofacSrv.URL, Enabled: true},
	}, dataDir, zap.NewNop().Sugar())

	entities, err := loader.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entities, 6) // 4 UN + 2 OFAC

	// Configured source order is preserved in the combined slice.
	assert.Equal(t, watchlist.SourceUN, entities[0].Source)
	assert.Equal(t, watchlist.SourceOFAC, entities[4].Source)

	// Raw payloads are archived for audit.
	_, err = os.Stat(filepath.Join(dataDir, "un_consolidated.raw"))
	assert.NoError(t, err)
}

func TestLoaderFailingSourceFailsLoad(t *testing.T) {
	okSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleUNXML))
	}))
	defer okSrv.Close()
	badSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer badSrv.Close()

	loader := watchlist.NewLoader(testFetcher(1), []watchlist.SourceSpec{
		{Name: "un_consolidated", Source: watchlist.SourceUN, URL: okSrv.URL, Enabled: true},
		{Name: "eu_consolidated", Source: watchlist.SourceEU, URL: badSrv.URL, Enabled: true},
	}, "", zap.NewNop().Sugar())

	entities, err := loader.LoadAll(context.Background())
	require.Error(t, err)
	assert.Nil(t, entities)

	var srcErr *watchlist.SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, "eu_consolidated", srcErr.Name)
}

func TestLoaderNoSourcesEnabled(t *testing.T) {
	loader := watchlist.NewLoader(testFetcher(1), []watchlist.SourceSpec{
		{Name: "un_consolidated", Source: watchlist.SourceUN, URL: "http://ignored", Enabled: false},
	}, "", zap.NewNop().Sugar())

	entities, err := loader.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entities)
}
