package client

import (
	"context"
	"net/url"

	"quickcourt/models"
)

// FetchAvailableSlots requests the bookable windows for a (venue, court, date)
// triple. All three identifiers are required; if any is empty no request is
// issued and a ValidationError is returned, so a half-initialized selection
// never reaches the network.
//
// The returned slots keep the server's order. They are never re-sorted or
// de-duplicated here.
func (c *Client) FetchAvailableSlots(ctx context.Context, venueID, courtID, date string) ([]models.TimeSlot, error) {
	if venueID == "" || courtID == "" || date == "" {
		return nil, &ValidationError{Message: "venue, court and date are required"}
	}

	query := url.Values{}
	query.Set("venueId", venueID)
	query.Set("courtId", courtID)
	query.Set("selectedDate", date)

	var resp models.AvailableSlotsResponse
	if err := c.get(ctx, "/bookings/available-slots", query, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &APIError{StatusCode: 200, Message: orGeneric(resp.Message, "failed to fetch available slots")}
	}
	return resp.AvailableSlots, nil
}

func orGeneric(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
