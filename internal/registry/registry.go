package registry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rickgao/stockfighter-data/internal/api"
	"github.com/rickgao/stockfighter-data/internal/model"
)

// Config holds registry configuration.
type Config struct {
	SyncInterval time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		SyncInterval: 5 * time.Minute,
	}
}

// Registry tracks the venues and listings currently on the exchange.
type Registry struct {
	cfg    Config
	client *api.Client
	logger *slog.Logger

	mu         sync.RWMutex
	venues     []model.VenueInfo
	listings   []model.Listing
	lastSyncAt time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Registry.
func New(cfg Config, client *api.Client, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}

// Start performs the initial discovery (blocking) and then begins periodic
// background resyncs.
func (r *Registry) Start(ctx context.Context) error {
	r.ctx, r.cancel = context.WithCancel(ctx)

	if err := r.syncOnce(r.ctx); err != nil {
		r.cancel()
		return err
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.syncLoop(r.ctx)
	}()

	r.logger.Info("registry started",
		"venues", len(r.Venues()),
		"listings", len(r.Listings()),
	)

	return nil
}

// Stop gracefully shuts down.
func (r *Registry) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.logger.Info("registry stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Venues returns all known venues, open or closed.
func (r *Registry) Venues() []model.VenueInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.VenueInfo, len(r.venues))
	copy(out, r.venues)
	return out
}

// Listings returns the stocks on open venues, the set the poller watches.
func (r *Registry) Listings() []model.Listing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Listing, len(r.listings))
	copy(out, r.listings)
	return out
}

// LastSyncAt returns the time of the most recent successful sync.
func (r *Registry) LastSyncAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastSyncAt
}
