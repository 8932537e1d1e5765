package api

import (
	"context"

	"github.com/rickgao/stockfighter-data/internal/model"
)

// Venues fetches all venues on the exchange.
//
// The success flag for this endpoint arrives in the "id" field rather than
// "ok"; see the package doc.
func (c *Client) Venues(ctx context.Context) ([]model.VenueInfo, error) {
	const path = "/venues"

	var resp venuesResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}

	if resp.ID == nil {
		return nil, &ShapeError{Path: path, Field: "id", Reason: "missing"}
	}
	if !*resp.ID {
		return nil, &APIError{Path: path, Message: resp.Error}
	}

	if resp.Venues == nil {
		return nil, &ShapeError{Path: path, Field: "venues", Reason: "missing"}
	}

	venues := make([]model.VenueInfo, 0, len(resp.Venues))
	for _, v := range resp.Venues {
		info, err := v.toModel(path)
		if err != nil {
			return nil, err
		}
		venues = append(venues, info)
	}

	return venues, nil
}
