package client

import (
	"context"

	"quickcourt/models"
)

// ListMyBookings fetches the signed-in user's bookings. Requires a bearer
// token (set by Login or Register).
func (c *Client) ListMyBookings(ctx context.Context) ([]models.Booking, error) {
	if c.token == "" {
		return nil, &ValidationError{Message: "sign in to view your bookings"}
	}

	var resp models.BookingsResponse
	if err := c.get(ctx, "/bookings/my", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &APIError{StatusCode: 200, Message: orGeneric(resp.Message, "failed to fetch bookings")}
	}
	return resp.Bookings, nil
}
