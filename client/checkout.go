package client

import (
	"context"

	"quickcourt/models"
)

// CreateCheckoutSession submits a reservation request and returns the URL of
// the externally hosted payment page. The caller performs a full hand-off to
// that URL; nothing about the session is tracked here afterwards.
//
// Failures are never retried automatically. When the server supplies a
// message it is surfaced verbatim.
func (c *Client) CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (string, error) {
	if req.VenueID == "" || req.CourtID == "" || req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		return "", &ValidationError{Message: "incomplete checkout request"}
	}

	var resp models.CheckoutResponse
	if err := c.post(ctx, "/payments/create-checkout-session", req, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", &APIError{StatusCode: 200, Message: orGeneric(resp.Message, "failed to create checkout session")}
	}
	if resp.SessionURL == "" {
		return "", &APIError{StatusCode: 200, Message: "server returned no checkout URL"}
	}
	return resp.SessionURL, nil
}
