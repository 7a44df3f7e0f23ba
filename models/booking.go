package models

import "time"

// CheckoutRequest is the payload submitted to start a checkout session.
// It is built atomically from the current selection plus the immutable
// venue/court identifiers, never partially constructed or mutated.
type CheckoutRequest struct {
	VenueID   string  `json:"venueId"`
	CourtID   string  `json:"courtId"`
	Date      string  `json:"date"` // "YYYY-MM-DD"
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
}

// CheckoutResponse carries the externally hosted payment page URL on success.
type CheckoutResponse struct {
	Success    bool   `json:"success"`
	SessionURL string `json:"sessionUrl,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Booking represents a confirmed booking record.
type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	VenueID   string    `json:"venueId"`
	CourtID   string    `json:"courtId"`
	VenueName string    `json:"venueName,omitempty"`
	CourtName string    `json:"courtName,omitempty"`
	Date      string    `json:"date"` // "YYYY-MM-DD"
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"` // e.g. "confirmed", "pending_payment"
	CreatedAt time.Time `json:"createdAt"`
}

// BookingsResponse wraps the my-bookings endpoint payload.
type BookingsResponse struct {
	Success  bool      `json:"success"`
	Bookings []Booking `json:"bookings"`
	Message  string    `json:"message,omitempty"`
}
