package client

import (
	"context"
	"net/url"

	"quickcourt/models"
)

// ListVenues fetches approved venues, optionally filtered by sport and a
// free-text search term.
func (c *Client) ListVenues(ctx context.Context, sport, search string) ([]models.Venue, error) {
	query := url.Values{}
	if sport != "" {
		query.Set("sport", sport)
	}
	if search != "" {
		query.Set("search", search)
	}

	var resp models.VenuesResponse
	if err := c.get(ctx, "/venues", query, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &APIError{StatusCode: 200, Message: orGeneric(resp.Message, "failed to fetch venues")}
	}
	return resp.Venues, nil
}

// GetVenue fetches a single venue with its courts.
func (c *Client) GetVenue(ctx context.Context, venueID string) (*models.Venue, error) {
	if venueID == "" {
		return nil, &ValidationError{Message: "venue id is required"}
	}

	var resp models.VenueResponse
	if err := c.get(ctx, "/venues/"+url.PathEscape(venueID), nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Venue == nil {
		return nil, &APIError{StatusCode: 200, Message: orGeneric(resp.Message, "venue not found")}
	}
	return resp.Venue, nil
}
