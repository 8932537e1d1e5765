package writer

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickgao/stockfighter-data/internal/model"
)

// SnapshotWriter batches orderbook snapshots and writes them to the
// orderbook_snapshots table. It implements poller.SnapshotHandler.
type SnapshotWriter struct {
	cfg    Config
	logger *slog.Logger

	// Database
	db *pgxpool.Pool

	// Batching
	batch       []snapshotRow
	batchMu     sync.Mutex
	flushTicker *time.Ticker

	// Lifecycle
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Metrics
	metrics Metrics
}

// NewSnapshotWriter creates a new SnapshotWriter.
func NewSnapshotWriter(cfg Config, db *pgxpool.Pool, logger *slog.Logger) *SnapshotWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotWriter{
		cfg:    cfg,
		db:     db,
		logger: logger,
		batch:  make([]snapshotRow, 0, cfg.BatchSize),
	}
}

// Start begins the periodic flush loop.
func (w *SnapshotWriter) Start(ctx context.Context) error {
	w.ctx, w.cancel = context.WithCancel(ctx)
	w.flushTicker = time.NewTicker(w.cfg.FlushInterval)

	w.wg.Add(1)
	go w.flushLoop()

	w.logger.Info("snapshot writer started",
		"batch_size", w.cfg.BatchSize,
		"flush_interval", w.cfg.FlushInterval,
	)
	return nil
}

// Stop gracefully shuts down the writer.
func (w *SnapshotWriter) Stop(ctx context.Context) error {
	w.logger.Info("stopping snapshot writer")

	if w.cancel != nil {
		w.cancel()
	}

	if w.flushTicker != nil {
		w.flushTicker.Stop()
	}

	// Wait for the flush loop
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("snapshot writer stopped")
	case <-ctx.Done():
		w.logger.Warn("snapshot writer stop timed out")
	}

	// Final flush
	w.flush(context.Background())

	return nil
}

// Stats returns current metrics.
func (w *SnapshotWriter) Stats() Metrics {
	w.batchMu.Lock()
	defer w.batchMu.Unlock()
	return w.metrics
}

// HandleSnapshot transforms and adds a snapshot to the batch, flushing if the
// batch is full.
func (w *SnapshotWriter) HandleSnapshot(s model.OrderbookSnapshot) error {
	row := transform(s)

	w.batchMu.Lock()
	w.batch = append(w.batch, row)
	shouldFlush := len(w.batch) >= w.cfg.BatchSize
	w.batchMu.Unlock()

	if shouldFlush {
		w.flush(w.ctx)
	}

	return nil
}

// flushLoop periodically flushes the batch.
func (w *SnapshotWriter) flushLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.flushTicker.C:
			w.flush(w.ctx)
		}
	}
}

// transform converts a model.OrderbookSnapshot to a snapshotRow.
func transform(s model.OrderbookSnapshot) snapshotRow {
	return snapshotRow{
		SnapshotID: s.SnapshotID.String(),
		SnapshotTS: s.SnapshotTS,
		VenueTS:    s.VenueTS,
		Venue:      s.Venue,
		Symbol:     s.Symbol,
		Bids:       levelsToJSON(s.Bids),
		Asks:       levelsToJSON(s.Asks),
		BestBid:    int64(s.BestBid),
		BestAsk:    int64(s.BestAsk),
		Spread:     s.Spread,
	}
}

// levelsToJSON encodes book levels as a JSONB array.
func levelsToJSON(orders []model.Order) []byte {
	levels := make([]levelJSON, 0, len(orders))
	for _, o := range orders {
		levels = append(levels, levelJSON{Price: o.Price, Qty: o.Qty})
	}

	data, err := json.Marshal(levels)
	if err != nil {
		// []levelJSON cannot fail to marshal; keep the row writable anyway.
		return []byte("[]")
	}
	return data
}

// flush writes the current batch to the database.
func (w *SnapshotWriter) flush(ctx context.Context) {
	w.batchMu.Lock()
	if len(w.batch) == 0 {
		w.batchMu.Unlock()
		return
	}

	// Take ownership of current batch
	batch := w.batch
	w.batch = make([]snapshotRow, 0, w.cfg.BatchSize)
	w.batchMu.Unlock()

	start := time.Now()

	conflicts, err := w.batchInsert(ctx, batch)
	if err != nil {
		w.logger.Error("batch insert failed", "error", err, "count", len(batch))
		w.batchMu.Lock()
		w.metrics.Errors++
		w.batchMu.Unlock()
		return
	}

	w.batchMu.Lock()
	w.metrics.Inserts += int64(len(batch) - conflicts)
	w.metrics.Conflicts += int64(conflicts)
	w.metrics.Flushes++
	w.batchMu.Unlock()

	w.logger.Debug("flushed snapshots",
		"count", len(batch),
		"conflicts", conflicts,
		"duration", time.Since(start),
	)
}

// batchInsert inserts rows using pgx.Batch with ON CONFLICT DO NOTHING.
func (w *SnapshotWriter) batchInsert(ctx context.Context, rows []snapshotRow) (conflicts int, err error) {
	batch := &pgx.Batch{}
	for _, r := range rows {
		batch.Queue(`
			INSERT INTO orderbook_snapshots (snapshot_id, snapshot_ts, venue_ts, venue, symbol, bids, asks, best_bid, best_ask, spread)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (snapshot_id) DO NOTHING
		`, r.SnapshotID, r.SnapshotTS, r.VenueTS, r.Venue, r.Symbol, r.Bids, r.Asks, r.BestBid, r.BestAsk, r.Spread)
	}

	results := w.db.SendBatch(ctx, batch)
	defer results.Close()

	for range rows {
		ct, err := results.Exec()
		if err != nil {
			return 0, err
		}
		if ct.RowsAffected() == 0 {
			conflicts++
		}
	}

	return conflicts, nil
}
