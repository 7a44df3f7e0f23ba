package store

import (
	"context"
	"errors"

	"quickcourt/models"
)

var (
	// ErrSlotTaken is returned when a booking overlaps an existing one for
	// the same court and date.
	ErrSlotTaken = errors.New("selected slot is no longer available")
	// ErrEmailTaken is returned when registering an already-known email.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrNotFound is returned for missing users.
	ErrNotFound = errors.New("not found")
)

// BookingStore records demo bookings and answers occupancy queries.
type BookingStore interface {
	CreateBooking(ctx context.Context, b models.Booking) error
	BookingsFor(ctx context.Context, venueID, courtID, date string) ([]models.Booking, error)
	BookingsByUser(ctx context.Context, userID string) ([]models.Booking, error)
}

// UserStore holds demo accounts.
type UserStore interface {
	CreateUser(ctx context.Context, u models.User, passwordHash []byte) error
	GetUserByEmail(ctx context.Context, email string) (models.User, []byte, error)
}
