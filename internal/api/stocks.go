package api

import (
	"context"

	"github.com/rickgao/stockfighter-data/internal/model"
)

// VenueStocks fetches the stocks listed on a venue.
func (c *Client) VenueStocks(ctx context.Context, venue string) ([]model.Stock, error) {
	path := "/venues/" + venue + "/stocks"

	var resp stocksResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}

	if resp.OK == nil {
		return nil, &ShapeError{Path: path, Field: "ok", Reason: "missing"}
	}
	if !*resp.OK {
		return nil, &APIError{Path: path, Message: resp.Error}
	}

	if resp.Symbols == nil {
		return nil, &ShapeError{Path: path, Field: "symbols", Reason: "missing"}
	}

	stocks := make([]model.Stock, 0, len(resp.Symbols))
	for _, s := range resp.Symbols {
		stock, err := s.toModel(path)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, stock)
	}

	return stocks, nil
}

// StockOrderbook fetches the current order book for a stock on a venue.
// Bids and asks keep the server's ordering; no re-sorting is applied.
func (c *Client) StockOrderbook(ctx context.Context, venue, stock string) (*model.Orderbook, error) {
	path := "/venues/" + venue + "/stocks/" + stock

	var resp orderbookResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}

	if resp.OK == nil {
		return nil, &ShapeError{Path: path, Field: "ok", Reason: "missing"}
	}
	if !*resp.OK {
		return nil, &APIError{Path: path, Message: resp.Error}
	}

	return resp.toModel(path)
}

// StockQuote fetches the latest quote for a stock on a venue.
func (c *Client) StockQuote(ctx context.Context, venue, stock string) (*model.Quote, error) {
	path := "/venues/" + venue + "/stocks/" + stock + "/quote"

	var resp quoteResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}

	if resp.OK == nil {
		return nil, &ShapeError{Path: path, Field: "ok", Reason: "missing"}
	}
	if !*resp.OK {
		return nil, &APIError{Path: path, Message: resp.Error}
	}

	return resp.toModel(path)
}
