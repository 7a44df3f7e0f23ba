package booking

import (
	"context"

	"quickcourt/models"
)

// BookingAPI is the slice of the QuickCourt API a selection session needs:
// fetching bookable windows and starting a checkout. *client.Client
// satisfies it; tests substitute fakes.
type BookingAPI interface {
	FetchAvailableSlots(ctx context.Context, venueID, courtID, date string) ([]models.TimeSlot, error)
	CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (string, error)
}

// FetchRequest identifies one slot fetch issued by a session. Token is
// monotonically increasing per session; a response whose token no longer
// matches the session's latest is stale and must be discarded.
type FetchRequest struct {
	Token   uint64
	VenueID string
	CourtID string
	Date    string
}

// Zero reports whether the request carries nothing to fetch (no court chosen
// yet, or the session was reset).
func (r FetchRequest) Zero() bool {
	return r.Token == 0
}
