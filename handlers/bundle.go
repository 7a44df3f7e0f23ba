package handlers

// HandlerBundle groups the demo server's handlers for route registration.
type HandlerBundle struct {
	Venues  *VenueHandler
	Auth    *AuthHandler
	Booking *BookingHandler
	Payment *PaymentHandler
}
