package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewOrderbookSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	venueTS := time.Date(2026, 3, 1, 11, 59, 58, 0, time.UTC)

	t.Run("two-sided book", func(t *testing.T) {
		ob := &Orderbook{
			Venue:  "TESTEX",
			Symbol: "FOOBAR",
			Bids: []Order{
				{Price: 5100, Qty: 10, IsBuy: true},
				{Price: 5090, Qty: 25, IsBuy: true},
			},
			Asks: []Order{
				{Price: 5125, Qty: 5, IsBuy: false},
			},
			Timestamp: venueTS,
		}

		s := NewOrderbookSnapshot(ob, now)

		if s.SnapshotID == uuid.Nil {
			t.Error("SnapshotID should be assigned")
		}
		if s.SnapshotTS != now.UnixMicro() {
			t.Errorf("SnapshotTS = %d, want %d", s.SnapshotTS, now.UnixMicro())
		}
		if s.VenueTS != venueTS.UnixMicro() {
			t.Errorf("VenueTS = %d, want %d", s.VenueTS, venueTS.UnixMicro())
		}
		if s.Venue != "TESTEX" || s.Symbol != "FOOBAR" {
			t.Errorf("Venue/Symbol = %s/%s, want TESTEX/FOOBAR", s.Venue, s.Symbol)
		}
		if s.BestBid != 5100 {
			t.Errorf("BestBid = %d, want 5100", s.BestBid)
		}
		if s.BestAsk != 5125 {
			t.Errorf("BestAsk = %d, want 5125", s.BestAsk)
		}
		if s.Spread != 25 {
			t.Errorf("Spread = %d, want 25", s.Spread)
		}
		if len(s.Bids) != 2 || len(s.Asks) != 1 {
			t.Errorf("Bids/Asks lengths = %d/%d, want 2/1", len(s.Bids), len(s.Asks))
		}
	})

	t.Run("one-sided book has no spread", func(t *testing.T) {
		ob := &Orderbook{
			Venue:     "TESTEX",
			Symbol:    "FOOBAR",
			Bids:      []Order{{Price: 5100, Qty: 10, IsBuy: true}},
			Asks:      []Order{},
			Timestamp: venueTS,
		}

		s := NewOrderbookSnapshot(ob, now)

		if s.BestBid != 5100 {
			t.Errorf("BestBid = %d, want 5100", s.BestBid)
		}
		if s.BestAsk != 0 {
			t.Errorf("BestAsk = %d, want 0", s.BestAsk)
		}
		if s.Spread != 0 {
			t.Errorf("Spread = %d, want 0", s.Spread)
		}
	})

	t.Run("crossed book yields negative spread", func(t *testing.T) {
		ob := &Orderbook{
			Venue:     "TESTEX",
			Symbol:    "FOOBAR",
			Bids:      []Order{{Price: 5200, Qty: 10, IsBuy: true}},
			Asks:      []Order{{Price: 5100, Qty: 5, IsBuy: false}},
			Timestamp: venueTS,
		}

		s := NewOrderbookSnapshot(ob, now)

		if s.Spread != -100 {
			t.Errorf("Spread = %d, want -100", s.Spread)
		}
	})

	t.Run("unique snapshot ids", func(t *testing.T) {
		ob := &Orderbook{Venue: "TESTEX", Symbol: "FOOBAR", Timestamp: venueTS}

		a := NewOrderbookSnapshot(ob, now)
		b := NewOrderbookSnapshot(ob, now)

		if a.SnapshotID == b.SnapshotID {
			t.Error("snapshot IDs should be unique per capture")
		}
	})
}

// TestModelTypes validates that domain types can be instantiated correctly.
func TestModelTypes(t *testing.T) {
	t.Run("VenueInfo", func(t *testing.T) {
		v := VenueInfo{
			ID:     7,
			Name:   "Test Exchange",
			IsOpen: true,
			Venue:  "TESTEX",
		}

		if v.ID != 7 {
			t.Errorf("ID = %d, want 7", v.ID)
		}
		if !v.IsOpen {
			t.Error("IsOpen = false, want true")
		}
	})

	t.Run("Order is a plain value", func(t *testing.T) {
		a := Order{Price: 100, Qty: 5, IsBuy: true}
		b := a
		b.Price = 200

		if a.Price != 100 {
			t.Errorf("a.Price = %d, want 100 (copy should not alias)", a.Price)
		}
	})

	t.Run("Quote zero values mean empty sides", func(t *testing.T) {
		q := Quote{Venue: "TESTEX", Symbol: "FOOBAR", QuoteTime: time.Now()}

		if q.Bid != 0 || q.Ask != 0 {
			t.Errorf("Bid/Ask = %d/%d, want 0/0", q.Bid, q.Ask)
		}
		if !q.LastTrade.IsZero() {
			t.Error("LastTrade should be zero when never traded")
		}
	})
}
