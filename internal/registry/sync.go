package registry

import (
	"context"
	"time"

	"github.com/rickgao/stockfighter-data/internal/model"
)

// syncOnce fetches all venues and, for each open venue, its stock list.
// State is swapped atomically only after every fetch succeeds; a failed sync
// leaves the previous watch list in place.
func (r *Registry) syncOnce(ctx context.Context) error {
	start := time.Now()

	venues, err := r.client.Venues(ctx)
	if err != nil {
		return err
	}

	var listings []model.Listing
	for _, v := range venues {
		if !v.IsOpen {
			r.logger.Debug("skipping closed venue", "venue", v.Venue)
			continue
		}

		stocks, err := r.client.VenueStocks(ctx, v.Venue)
		if err != nil {
			return err
		}

		for _, s := range stocks {
			listings = append(listings, model.Listing{
				Venue:  v.Venue,
				Symbol: s.Symbol,
			})
		}
	}

	r.mu.Lock()
	r.venues = venues
	r.listings = listings
	r.lastSyncAt = time.Now()
	r.mu.Unlock()

	r.logger.Info("registry sync complete",
		"venues", len(venues),
		"listings", len(listings),
		"duration", time.Since(start),
	)

	return nil
}

// syncLoop periodically resyncs with the REST API.
func (r *Registry) syncLoop(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.SyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.syncOnce(ctx); err != nil {
				r.logger.Error("registry sync failed", "err", err)
			}
		}
	}
}
