package api

import (
	"fmt"
	"time"

	"github.com/rickgao/stockfighter-data/internal/model"
)

// parseVenueState maps a venue state literal to an open/closed bool.
// Only "open" and "closed" are recognized; anything else is an input error,
// never coerced.
func parseVenueState(state string) (bool, error) {
	switch state {
	case "open":
		return true, nil
	case "closed":
		return false, nil
	default:
		return false, fmt.Errorf("unrecognized venue state %q", state)
	}
}

// parseTimestamp parses a server timestamp. The server emits RFC 3339 with a
// Z or numeric offset and optional fractional seconds; time.RFC3339 accepts
// exactly that.
func parseTimestamp(ts string) (time.Time, error) {
	return time.Parse(time.RFC3339, ts)
}

// toModel validates a wire venue and converts it to model.VenueInfo.
func (v *venueWire) toModel(path string) (model.VenueInfo, error) {
	if v.ID == nil {
		return model.VenueInfo{}, &ShapeError{Path: path, Field: "id", Reason: "missing"}
	}
	if v.Name == nil {
		return model.VenueInfo{}, &ShapeError{Path: path, Field: "name", Reason: "missing"}
	}
	if v.State == nil {
		return model.VenueInfo{}, &ShapeError{Path: path, Field: "state", Reason: "missing"}
	}
	if v.Venue == nil {
		return model.VenueInfo{}, &ShapeError{Path: path, Field: "venue", Reason: "missing"}
	}

	isOpen, err := parseVenueState(*v.State)
	if err != nil {
		return model.VenueInfo{}, &ShapeError{Path: path, Field: "state", Reason: err.Error()}
	}

	return model.VenueInfo{
		ID:     *v.ID,
		Name:   *v.Name,
		IsOpen: isOpen,
		Venue:  *v.Venue,
	}, nil
}

// toModel validates a wire stock and converts it to model.Stock.
func (s *stockWire) toModel(path string) (model.Stock, error) {
	if s.Name == nil {
		return model.Stock{}, &ShapeError{Path: path, Field: "name", Reason: "missing"}
	}
	if s.Symbol == nil {
		return model.Stock{}, &ShapeError{Path: path, Field: "symbol", Reason: "missing"}
	}

	return model.Stock{
		Name:   *s.Name,
		Symbol: *s.Symbol,
	}, nil
}

// toOrders validates a bids or asks array and converts it to []model.Order,
// preserving the server's ordering. isBuy is assigned from which array the
// levels came from, not from any wire field.
func toOrders(path, field string, levels []levelWire, isBuy bool) ([]model.Order, error) {
	orders := make([]model.Order, 0, len(levels))
	for i, l := range levels {
		if l.Price == nil {
			return nil, &ShapeError{Path: path, Field: fmt.Sprintf("%s[%d].price", field, i), Reason: "missing"}
		}
		if l.Qty == nil {
			return nil, &ShapeError{Path: path, Field: fmt.Sprintf("%s[%d].qty", field, i), Reason: "missing"}
		}
		orders = append(orders, model.Order{
			Price: *l.Price,
			Qty:   *l.Qty,
			IsBuy: isBuy,
		})
	}
	return orders, nil
}

// toModel validates an orderbook response and converts it to model.Orderbook.
func (r *orderbookResponse) toModel(path string) (*model.Orderbook, error) {
	if r.Bids == nil {
		return nil, &ShapeError{Path: path, Field: "bids", Reason: "missing"}
	}
	if r.Asks == nil {
		return nil, &ShapeError{Path: path, Field: "asks", Reason: "missing"}
	}
	if r.TS == nil {
		return nil, &ShapeError{Path: path, Field: "ts", Reason: "missing"}
	}

	bids, err := toOrders(path, "bids", r.Bids, true)
	if err != nil {
		return nil, err
	}
	asks, err := toOrders(path, "asks", r.Asks, false)
	if err != nil {
		return nil, err
	}

	ts, err := parseTimestamp(*r.TS)
	if err != nil {
		return nil, &ShapeError{Path: path, Field: "ts", Reason: err.Error()}
	}

	return &model.Orderbook{
		Venue:     r.Venue,
		Symbol:    r.Symbol,
		Bids:      bids,
		Asks:      asks,
		Timestamp: ts,
	}, nil
}

// toModel validates a quote response and converts it to model.Quote.
func (r *quoteResponse) toModel(path string) (*model.Quote, error) {
	if r.Venue == nil {
		return nil, &ShapeError{Path: path, Field: "venue", Reason: "missing"}
	}
	if r.Symbol == nil {
		return nil, &ShapeError{Path: path, Field: "symbol", Reason: "missing"}
	}
	if r.QuoteTime == nil {
		return nil, &ShapeError{Path: path, Field: "quoteTime", Reason: "missing"}
	}

	quoteTime, err := parseTimestamp(*r.QuoteTime)
	if err != nil {
		return nil, &ShapeError{Path: path, Field: "quoteTime", Reason: err.Error()}
	}

	q := &model.Quote{
		Venue:     *r.Venue,
		Symbol:    *r.Symbol,
		Bid:       r.Bid,
		Ask:       r.Ask,
		BidSize:   r.BidSize,
		AskSize:   r.AskSize,
		BidDepth:  r.BidDepth,
		AskDepth:  r.AskDepth,
		Last:      r.Last,
		LastSize:  r.LastSize,
		QuoteTime: quoteTime,
	}

	// lastTrade is absent until the stock has traded at least once.
	if r.LastTrade != "" {
		lastTrade, err := parseTimestamp(r.LastTrade)
		if err != nil {
			return nil, &ShapeError{Path: path, Field: "lastTrade", Reason: err.Error()}
		}
		q.LastTrade = lastTrade
	}

	return q, nil
}
