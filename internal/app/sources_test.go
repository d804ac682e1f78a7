package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/palmcrest/showcase/internal/config"
	"github.com/palmcrest/showcase/internal/feed"
	"github.com/palmcrest/showcase/internal/listing"
	"github.com/palmcrest/showcase/internal/state"
)

func TestStartSource_SampleWhenNoCatalog(t *testing.T) {
	cfg := config.Config{ListingsPath: filepath.Join(t.TempDir(), "missing.yaml")}
	store := &state.Store{}

	stop, err := startSource(context.Background(), cfg, store, zap.NewNop())
	require.NoError(t, err)
	defer stop()

	snap := store.Snapshot()
	assert.Equal(t, "sample", snap.Source)
	assert.Len(t, snap.Listings, len(listing.Sample()))
}

func TestStartSource_FileIsLoadedAndWatched(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "listings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listings:\n  - id: a\n    title: First\n"), 0o600))

	store := &state.Store{}
	stop, err := startSource(context.Background(), config.Config{ListingsPath: path}, store, zap.NewNop())
	require.NoError(t, err)

	snap := store.Snapshot()
	require.Equal(t, "file", snap.Source)
	require.Len(t, snap.Listings, 1)

	require.NoError(t, os.WriteFile(path, []byte("listings:\n  - id: a\n    title: First\n  - id: b\n    title: Second\n"), 0o600))
	require.Eventually(t, func() bool {
		return len(store.Snapshot().Listings) == 2
	}, 5*time.Second, 10*time.Millisecond)

	stop()
}

func TestStartSource_BadCatalogRecordsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listings: ["), 0o600))

	store := &state.Store{}
	stop, err := startSource(context.Background(), config.Config{ListingsPath: path}, store, zap.NewNop())
	require.NoError(t, err)
	defer stop()

	snap := store.Snapshot()
	assert.False(t, snap.HasData())
	assert.Error(t, snap.LastError)
}

func TestStartSource_FeedTakesPriority(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("featured"))
		_ = json.NewEncoder(w).Encode(feed.ListingsResponse{Items: []listing.Listing{{ID: "f", Title: "Feed Listing"}}})
	}))
	defer server.Close()

	cfg := config.Config{FeedURL: server.URL, FeedPoll: time.Hour, ListingsPath: "/does/not/matter.yaml"}
	store := &state.Store{}
	stop, err := startSource(context.Background(), cfg, store, zap.NewNop())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return store.Snapshot().Source == "feed"
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "Feed Listing", store.Snapshot().Listings[0].Title)

	stop()
}

func TestApplyOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	base := config.Config{WindowSize: 4, AdvanceInterval: 2 * time.Second}
	got := applyOverrides(base, Options{
		ListingsPath: "~/listings.yaml",
		FeedURL:      "feed.example.ae",
		WindowSize:   12,
		Interval:     5 * time.Second,
	})
	assert.Equal(t, filepath.Join(home, "listings.yaml"), got.ListingsPath)
	assert.Equal(t, "feed.example.ae", got.FeedURL)
	assert.Equal(t, 8, got.WindowSize)
	assert.Equal(t, 5*time.Second, got.AdvanceInterval)

	assert.Equal(t, base, applyOverrides(base, Options{}))
}
