package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/palmcrest/showcase/internal/feed"
	"github.com/palmcrest/showcase/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 30 * time.Second
	sourceFeed          = "feed"
)

// StartPoller launches a background goroutine that refreshes the store from
// the listings feed. Failures back off exponentially up to maxBackoff. It
// returns a channel that is closed when the goroutine exits.
func StartPoller(ctx context.Context, store *state.Store, fetcher feed.ListingFetcher, query feed.ListingQuery, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	done := make(chan struct{})
	go func() {
		defer close(done)

		timer := time.NewTimer(0)
		defer timer.Stop()

		failures := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			if err := refresh(ctx, store, fetcher, query, logger); err != nil {
				failures++
			} else {
				failures = 0
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
	return done
}

func refresh(ctx context.Context, store *state.Store, fetcher feed.ListingFetcher, query feed.ListingQuery, logger *zap.Logger) error {
	listings, err := fetcher.FetchListings(ctx, query)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		store.Update(nil, sourceFeed, err)
		logger.Warn("feed poll failed", zap.Error(err))
		return err
	}
	store.Update(listings, sourceFeed, nil)
	logger.Debug("feed poll", zap.Int("listings", len(listings)))
	return nil
}

// calculateBackoff doubles the base interval per consecutive failure, capped
// at maxBackoff. The cap never shortens a base interval that is already
// longer than maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	limit := max(maxBackoff, base)
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= limit {
			return limit
		}
	}
	return d
}
