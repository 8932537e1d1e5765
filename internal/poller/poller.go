package poller

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rickgao/stockfighter-data/internal/api"
	"github.com/rickgao/stockfighter-data/internal/model"
)

// ListingSource provides the listings to poll.
type ListingSource interface {
	Listings() []model.Listing
}

// SnapshotHandler receives fetched snapshots.
type SnapshotHandler interface {
	HandleSnapshot(snapshot model.OrderbookSnapshot) error
}

// SnapshotHandlerFunc is a function adapter for SnapshotHandler.
type SnapshotHandlerFunc func(model.OrderbookSnapshot) error

func (f SnapshotHandlerFunc) HandleSnapshot(s model.OrderbookSnapshot) error {
	return f(s)
}

// Config holds poller configuration.
type Config struct {
	Interval    time.Duration // Poll interval
	Concurrency int           // Max concurrent requests
	Timeout     time.Duration // Per-request timeout
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval:    30 * time.Second,
		Concurrency: 10,
		Timeout:     10 * time.Second,
	}
}

// Poller periodically fetches orderbook snapshots via the REST API.
type Poller struct {
	cfg      Config
	client   *api.Client
	listings ListingSource
	handler  SnapshotHandler
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Poller.
func New(cfg Config, client *api.Client, listings ListingSource, handler SnapshotHandler, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		cfg:      cfg,
		client:   client,
		listings: listings,
		handler:  handler,
		logger:   logger,
	}
}

// Start begins the polling loop.
func (p *Poller) Start(ctx context.Context) error {
	p.ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go p.run()

	p.logger.Info("orderbook poller started",
		"interval", p.cfg.Interval,
		"concurrency", p.cfg.Concurrency,
	)

	return nil
}

// Stop gracefully shuts down the poller.
func (p *Poller) Stop(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("orderbook poller stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main polling loop.
func (p *Poller) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	// Poll immediately on start.
	p.pollAll()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.pollAll()
		}
	}
}

// pollAll fetches orderbooks for all watched listings concurrently.
func (p *Poller) pollAll() {
	start := time.Now()

	listings := p.listings.Listings()
	if len(listings) == 0 {
		p.logger.Debug("no listings to poll")
		return
	}

	// Semaphore for bounded concurrency.
	sem := make(chan struct{}, p.cfg.Concurrency)
	var wg sync.WaitGroup
	var fetched, errors atomic.Int64

	for _, listing := range listings {
		wg.Add(1)
		go func(l model.Listing) {
			defer wg.Done()

			// Acquire semaphore slot.
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-p.ctx.Done():
				return
			}

			if err := p.pollListing(l); err != nil {
				p.logger.Warn("failed to poll listing",
					"venue", l.Venue,
					"symbol", l.Symbol,
					"err", err,
				)
				errors.Add(1)
				return
			}

			fetched.Add(1)
		}(listing)
	}

	wg.Wait()

	p.logger.Info("poll cycle complete",
		"listings", len(listings),
		"fetched", fetched.Load(),
		"errors", errors.Load(),
		"duration", time.Since(start),
	)
}

// pollListing fetches and handles a single listing's orderbook.
func (p *Poller) pollListing(l model.Listing) error {
	ctx, cancel := context.WithTimeout(p.ctx, p.cfg.Timeout)
	defer cancel()

	ob, err := p.client.StockOrderbook(ctx, l.Venue, l.Symbol)
	if err != nil {
		return err
	}

	snapshot := model.NewOrderbookSnapshot(ob, time.Now())

	if p.handler != nil {
		if err := p.handler.HandleSnapshot(snapshot); err != nil {
			return err
		}
	}

	return nil
}
