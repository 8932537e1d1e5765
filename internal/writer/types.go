package writer

import "time"

// Config contains configuration for the snapshot writer.
type Config struct {
	// BatchSize is the number of rows to accumulate before flushing.
	BatchSize int

	// FlushInterval is the maximum time between flushes.
	FlushInterval time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BatchSize:     500,
		FlushInterval: 1 * time.Second,
	}
}

// Metrics holds writer counters.
type Metrics struct {
	Inserts   int64
	Conflicts int64
	Errors    int64
	Flushes   int64
}

// snapshotRow represents a row for the orderbook_snapshots table.
type snapshotRow struct {
	SnapshotID string // UUID
	SnapshotTS int64  // Microseconds
	VenueTS    int64  // Microseconds
	Venue      string
	Symbol     string
	Bids       []byte // JSONB: [{"price": n, "qty": n}, ...]
	Asks       []byte // JSONB
	BestBid    int64  // Cents, 0 if no bids
	BestAsk    int64  // Cents, 0 if no asks
	Spread     int64
}

// levelJSON is the JSONB encoding of one book level.
type levelJSON struct {
	Price uint64 `json:"price"`
	Qty   uint64 `json:"qty"`
}
