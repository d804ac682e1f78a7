package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/palmcrest/showcase/internal/config"
	"github.com/palmcrest/showcase/internal/feed"
	"github.com/palmcrest/showcase/internal/listing"
	"github.com/palmcrest/showcase/internal/state"
)

const (
	sourceFile   = "file"
	sourceSample = "sample"
)

// startSource seeds the store from the highest-priority configured source and
// keeps it fresh: the HTTP feed if one is set, else the catalog file, else the
// built-in sample. The returned stop function releases background work.
func startSource(ctx context.Context, cfg config.Config, store *state.Store, logger *zap.Logger) (func(), error) {
	if cfg.FeedURL != "" {
		client, err := feed.NewClient(cfg.FeedURL)
		if err != nil {
			return nil, fmt.Errorf("init feed client: %w", err)
		}
		logger.Info("using listings feed", zap.String("url", client.BaseURL()), zap.Duration("poll", cfg.FeedPoll))
		pollCtx, cancel := context.WithCancel(ctx)
		done := StartPoller(pollCtx, store, client, feed.ListingQuery{FeaturedOnly: true}, cfg.FeedPoll, logger)
		return func() {
			cancel()
			<-done
		}, nil
	}

	if cfg.ListingsPath != "" {
		if _, err := os.Stat(cfg.ListingsPath); err == nil {
			return startFileSource(ctx, cfg.ListingsPath, store, logger)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat catalog: %w", err)
		}
	}

	logger.Info("no catalog found, using sample listings", zap.String("path", cfg.ListingsPath))
	store.Update(listing.Sample(), sourceSample, nil)
	return func() {}, nil
}

func startFileSource(ctx context.Context, path string, store *state.Store, logger *zap.Logger) (func(), error) {
	listings, err := listing.LoadFile(path)
	store.Update(listings, sourceFile, err)
	if err != nil {
		logger.Warn("initial catalog load failed", zap.String("path", path), zap.Error(err))
	} else {
		logger.Info("catalog loaded", zap.String("path", path), zap.Int("listings", len(listings)))
	}

	w, err := listing.NewWatcher(path, func(l []listing.Listing, err error) {
		store.Update(l, sourceFile, err)
	}, logger)
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return nil, err
	}
	return w.Stop, nil
}
