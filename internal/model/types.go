package model

import (
	"time"

	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// API Types
// -----------------------------------------------------------------------------

// VenueInfo describes a single venue (simulated exchange).
type VenueInfo struct {
	ID     uint64 // Venue ID assigned by the exchange
	Name   string // Display name (e.g., "Test Exchange")
	IsOpen bool   // Derived from the venue state: "open" or "closed"
	Venue  string // Venue symbol (e.g., "TESTEX")
}

// Stock identifies a stock listed on a venue.
type Stock struct {
	Name   string // Display name
	Symbol string // Ticker symbol (e.g., "FOOBAR")
}

// Order is a single resting order in an order book. It is a plain value and
// is copied freely.
type Order struct {
	Price uint64 // Price in cents
	Qty   uint64 // Quantity in shares
	IsBuy bool   // true = bid, false = ask
}

// Orderbook is the full book for one stock on one venue at a point in time.
// Bids and Asks keep the ordering the server sent; they are not re-sorted.
type Orderbook struct {
	Venue     string
	Symbol    string
	Bids      []Order // IsBuy = true
	Asks      []Order // IsBuy = false
	Timestamp time.Time
}

// Quote is the latest top-of-book summary for a stock. Bid/Ask (and their
// sizes and depths) are zero when that side of the book is empty; LastTrade
// is the zero time until the stock has traded.
type Quote struct {
	Venue    string
	Symbol   string
	Bid      uint64 // Best bid price in cents, 0 if no bids
	Ask      uint64 // Best ask price in cents, 0 if no asks
	BidSize  uint64 // Shares at the best bid
	AskSize  uint64 // Shares at the best ask
	BidDepth uint64 // Shares bid at all prices
	AskDepth uint64 // Shares asked at all prices

	Last      uint64    // Last trade price in cents
	LastSize  uint64    // Last trade size
	LastTrade time.Time // Last trade time, zero if never traded
	QuoteTime time.Time // Server time of this quote
}

// Listing identifies one stock on one venue, the unit the gatherer polls.
type Listing struct {
	Venue  string
	Symbol string
}

// -----------------------------------------------------------------------------
// Time-Series Types
// -----------------------------------------------------------------------------

// OrderbookSnapshot is a full book state captured by the gatherer.
type OrderbookSnapshot struct {
	SnapshotID uuid.UUID // Primary key, assigned at capture
	SnapshotTS int64     // Capture timestamp (µs since epoch)
	VenueTS    int64     // Server "ts" from the orderbook response (µs since epoch)
	Venue      string
	Symbol     string
	Bids       []Order
	Asks       []Order
	BestBid    uint64 // First bid's price, 0 if no bids
	BestAsk    uint64 // First ask's price, 0 if no asks
	Spread     int64  // BestAsk - BestBid, 0 unless both sides present
}

// NewOrderbookSnapshot captures an Orderbook as a snapshot taken at now.
// Best prices come from the first element of each side because the server
// returns books in price-time priority order.
func NewOrderbookSnapshot(ob *Orderbook, now time.Time) OrderbookSnapshot {
	var bestBid, bestAsk uint64
	if len(ob.Bids) > 0 {
		bestBid = ob.Bids[0].Price
	}
	if len(ob.Asks) > 0 {
		bestAsk = ob.Asks[0].Price
	}

	var spread int64
	if bestBid > 0 && bestAsk > 0 {
		spread = int64(bestAsk) - int64(bestBid)
	}

	return OrderbookSnapshot{
		SnapshotID: uuid.New(),
		SnapshotTS: now.UnixMicro(),
		VenueTS:    ob.Timestamp.UnixMicro(),
		Venue:      ob.Venue,
		Symbol:     ob.Symbol,
		Bids:       ob.Bids,
		Asks:       ob.Asks,
		BestBid:    bestBid,
		BestAsk:    bestAsk,
		Spread:     spread,
	}
}
