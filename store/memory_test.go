package store

import (
	"context"
	"errors"
	"testing"

	"quickcourt/models"
)

func demoBooking(userID, start, end string) models.Booking {
	return models.Booking{
		ID:        "b-" + start,
		UserID:    userID,
		VenueID:   "V1",
		CourtID:   "C1",
		Date:      "2026-06-01",
		StartTime: start,
		EndTime:   end,
		Price:     500,
		Status:    "pending_payment",
	}
}

func TestMemoryStore_CreateBookingConflicts(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	if err := m.CreateBooking(ctx, demoBooking("u1", "10:00", "11:00")); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if err := m.CreateBooking(ctx, demoBooking("u2", "10:00", "11:00")); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken for same slot, got %v", err)
	}
	if err := m.CreateBooking(ctx, demoBooking("u2", "10:30", "11:30")); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken for overlapping slot, got %v", err)
	}
	// Adjacent hour is a different window.
	if err := m.CreateBooking(ctx, demoBooking("u2", "11:00", "12:00")); err != nil {
		t.Fatalf("adjacent booking: %v", err)
	}

	got, err := m.BookingsFor(ctx, "V1", "C1", "2026-06-01")
	if err != nil {
		t.Fatalf("bookings for: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(got))
	}
}

func TestMemoryStore_ConflictScopedToCourtAndDate(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	if err := m.CreateBooking(ctx, demoBooking("u1", "10:00", "11:00")); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	other := demoBooking("u1", "10:00", "11:00")
	other.CourtID = "C2"
	if err := m.CreateBooking(ctx, other); err != nil {
		t.Fatalf("same slot on another court should pass: %v", err)
	}

	nextDay := demoBooking("u1", "10:00", "11:00")
	nextDay.Date = "2026-06-02"
	if err := m.CreateBooking(ctx, nextDay); err != nil {
		t.Fatalf("same slot on another date should pass: %v", err)
	}
}

func TestMemoryStore_BookingsByUser(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	if err := m.CreateBooking(ctx, demoBooking("u1", "09:00", "10:00")); err != nil {
		t.Fatalf("booking 1: %v", err)
	}
	if err := m.CreateBooking(ctx, demoBooking("u2", "10:00", "11:00")); err != nil {
		t.Fatalf("booking 2: %v", err)
	}
	anon := demoBooking("", "11:00", "12:00")
	if err := m.CreateBooking(ctx, anon); err != nil {
		t.Fatalf("anonymous booking: %v", err)
	}

	mine, err := m.BookingsByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("bookings by user: %v", err)
	}
	if len(mine) != 1 || mine[0].StartTime != "09:00" {
		t.Fatalf("unexpected bookings for u1: %+v", mine)
	}
	none, err := m.BookingsByUser(ctx, "")
	if err != nil {
		t.Fatalf("bookings by empty user: %v", err)
	}
	if len(none) != 0 {
		t.Fatal("anonymous bookings must not be attributed")
	}
}

func TestMemoryStore_Users(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	u := models.User{ID: "u1", FullName: "Asha Rao", Email: "asha@example.com", Role: "user"}

	if err := m.CreateUser(ctx, u, []byte("hash")); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := m.CreateUser(ctx, u, []byte("hash")); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	got, hash, err := m.GetUserByEmail(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.ID != "u1" || string(hash) != "hash" {
		t.Fatalf("unexpected user %+v / hash %q", got, hash)
	}

	if _, _, err := m.GetUserByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
