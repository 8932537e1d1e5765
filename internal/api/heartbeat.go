package api

import "context"

// Heartbeat checks that the API itself is up. A nil error means the server
// answered {"ok": true}; an *APIError carries the server's reason otherwise.
func (c *Client) Heartbeat(ctx context.Context) error {
	const path = "/heartbeat"

	var resp heartbeatResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return err
	}

	if resp.OK == nil {
		return &ShapeError{Path: path, Field: "ok", Reason: "missing"}
	}
	if !*resp.OK {
		return &APIError{Path: path, Message: resp.Error}
	}

	return nil
}

// VenueHeartbeat checks that a single venue is up.
func (c *Client) VenueHeartbeat(ctx context.Context, venue string) error {
	path := "/venues/" + venue + "/heartbeat"

	var resp heartbeatResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return err
	}

	if resp.OK == nil {
		return &ShapeError{Path: path, Field: "ok", Reason: "missing"}
	}
	if !*resp.OK {
		return &APIError{Path: path, Message: resp.Error}
	}

	return nil
}
