package api

// Wire types for decoding endpoint responses. Required fields are pointers so
// that a field the server omitted is distinguishable from a zero value; the
// converters in convert.go reject nil pointers with a *ShapeError instead of
// silently zeroing the domain value.

// heartbeatResponse from GET /heartbeat and GET /venues/{venue}/heartbeat.
type heartbeatResponse struct {
	OK    *bool  `json:"ok"`
	Error string `json:"error"`
}

// venuesResponse from GET /venues.
//
// NOTE: the success flag arrives in a field named "id", not "ok". This is an
// upstream inconsistency observed on the live server and must not be
// normalized; see the package doc.
type venuesResponse struct {
	ID     *bool       `json:"id"`
	Error  string      `json:"error"`
	Venues []venueWire `json:"venues"`
}

type venueWire struct {
	ID    *uint64 `json:"id"`
	Name  *string `json:"name"`
	State *string `json:"state"`
	Venue *string `json:"venue"`
}

// stocksResponse from GET /venues/{venue}/stocks.
type stocksResponse struct {
	OK      *bool       `json:"ok"`
	Error   string      `json:"error"`
	Symbols []stockWire `json:"symbols"`
}

type stockWire struct {
	Name   *string `json:"name"`
	Symbol *string `json:"symbol"`
}

// orderbookResponse from GET /venues/{venue}/stocks/{stock}.
type orderbookResponse struct {
	OK     *bool       `json:"ok"`
	Error  string      `json:"error"`
	Venue  string      `json:"venue"`
	Symbol string      `json:"symbol"`
	Bids   []levelWire `json:"bids"`
	Asks   []levelWire `json:"asks"`
	TS     *string     `json:"ts"`
}

// levelWire is a single resting order in a bids or asks array. Side is not a
// field on the wire; it is implied by which array the level came from.
type levelWire struct {
	Price *uint64 `json:"price"`
	Qty   *uint64 `json:"qty"`
}

// quoteResponse from GET /venues/{venue}/stocks/{stock}/quote.
//
// Bid/ask fields (and last-trade fields before the first trade) are omitted
// by the server when that side of the book is empty, so they are optional;
// only the identifying fields and quoteTime are required.
type quoteResponse struct {
	OK        *bool   `json:"ok"`
	Error     string  `json:"error"`
	Venue     *string `json:"venue"`
	Symbol    *string `json:"symbol"`
	Bid       uint64  `json:"bid"`
	Ask       uint64  `json:"ask"`
	BidSize   uint64  `json:"bidSize"`
	AskSize   uint64  `json:"askSize"`
	BidDepth  uint64  `json:"bidDepth"`
	AskDepth  uint64  `json:"askDepth"`
	Last      uint64  `json:"last"`
	LastSize  uint64  `json:"lastSize"`
	LastTrade string  `json:"lastTrade"`
	QuoteTime *string `json:"quoteTime"`
}
