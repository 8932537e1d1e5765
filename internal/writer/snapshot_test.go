package writer

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/stockfighter-data/internal/model"
)

func TestTransform(t *testing.T) {
	id := uuid.New()
	s := model.OrderbookSnapshot{
		SnapshotID: id,
		SnapshotTS: 1772366400000000,
		VenueTS:    1772366398000000,
		Venue:      "TESTEX",
		Symbol:     "FOOBAR",
		Bids: []model.Order{
			{Price: 5100, Qty: 10, IsBuy: true},
			{Price: 5090, Qty: 25, IsBuy: true},
		},
		Asks:    []model.Order{{Price: 5125, Qty: 5, IsBuy: false}},
		BestBid: 5100,
		BestAsk: 5125,
		Spread:  25,
	}

	row := transform(s)

	if row.SnapshotID != id.String() {
		t.Errorf("SnapshotID = %q, want %q", row.SnapshotID, id.String())
	}
	if row.SnapshotTS != 1772366400000000 {
		t.Errorf("SnapshotTS = %d, want 1772366400000000", row.SnapshotTS)
	}
	if row.Venue != "TESTEX" || row.Symbol != "FOOBAR" {
		t.Errorf("Venue/Symbol = %s/%s, want TESTEX/FOOBAR", row.Venue, row.Symbol)
	}
	if string(row.Bids) != `[{"price":5100,"qty":10},{"price":5090,"qty":25}]` {
		t.Errorf("Bids = %s", row.Bids)
	}
	if string(row.Asks) != `[{"price":5125,"qty":5}]` {
		t.Errorf("Asks = %s", row.Asks)
	}
	if row.BestBid != 5100 || row.BestAsk != 5125 || row.Spread != 25 {
		t.Errorf("BestBid/BestAsk/Spread = %d/%d/%d, want 5100/5125/25", row.BestBid, row.BestAsk, row.Spread)
	}
}

func TestLevelsToJSON(t *testing.T) {
	t.Run("empty book side", func(t *testing.T) {
		if got := string(levelsToJSON(nil)); got != "[]" {
			t.Errorf("levelsToJSON(nil) = %s, want []", got)
		}
		if got := string(levelsToJSON([]model.Order{})); got != "[]" {
			t.Errorf("levelsToJSON(empty) = %s, want []", got)
		}
	})

	t.Run("preserves order", func(t *testing.T) {
		orders := []model.Order{
			{Price: 3, Qty: 1},
			{Price: 1, Qty: 2},
			{Price: 2, Qty: 3},
		}
		want := `[{"price":3,"qty":1},{"price":1,"qty":2},{"price":2,"qty":3}]`
		if got := string(levelsToJSON(orders)); got != want {
			t.Errorf("levelsToJSON = %s, want %s", got, want)
		}
	})
}

func TestHandleSnapshotBatches(t *testing.T) {
	// Large batch size so HandleSnapshot never reaches the flush path; the
	// database pool is not needed for accumulation.
	w := NewSnapshotWriter(Config{BatchSize: 100, FlushInterval: time.Hour}, nil, nil)

	ob := &model.Orderbook{
		Venue:     "TESTEX",
		Symbol:    "FOOBAR",
		Bids:      []model.Order{{Price: 5100, Qty: 10, IsBuy: true}},
		Asks:      []model.Order{},
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	for i := 0; i < 5; i++ {
		s := model.NewOrderbookSnapshot(ob, time.Now())
		if err := w.HandleSnapshot(s); err != nil {
			t.Fatalf("HandleSnapshot failed: %v", err)
		}
	}

	w.batchMu.Lock()
	got := len(w.batch)
	w.batchMu.Unlock()

	if got != 5 {
		t.Errorf("len(batch) = %d, want 5", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BatchSize != 500 {
		t.Errorf("BatchSize = %d, want 500", cfg.BatchSize)
	}
	if cfg.FlushInterval != time.Second {
		t.Errorf("FlushInterval = %v, want 1s", cfg.FlushInterval)
	}
}
