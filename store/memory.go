package store

import (
	"context"
	"sync"

	"quickcourt/models"
)

// MemoryStore is the default demo store: bookings and users held in process
// memory. State is lost on restart, which is fine for a demo backend.
type MemoryStore struct {
	mu       sync.Mutex
	bookings map[string][]models.Booking // keyed by venueID/courtID/date
	byUser   map[string][]models.Booking
	users    map[string]memoryUser // keyed by email
}

type memoryUser struct {
	user models.User
	hash []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookings: make(map[string][]models.Booking),
		byUser:   make(map[string][]models.Booking),
		users:    make(map[string]memoryUser),
	}
}

func bookingKey(venueID, courtID, date string) string {
	return venueID + "/" + courtID + "/" + date
}

func (m *MemoryStore) CreateBooking(_ context.Context, b models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := bookingKey(b.VenueID, b.CourtID, b.Date)
	for _, existing := range m.bookings[key] {
		if Overlaps(b.StartTime, b.EndTime, existing.StartTime, existing.EndTime) {
			return ErrSlotTaken
		}
	}
	m.bookings[key] = append(m.bookings[key], b)
	if b.UserID != "" {
		m.byUser[b.UserID] = append(m.byUser[b.UserID], b)
	}
	return nil
}

func (m *MemoryStore) BookingsFor(_ context.Context, venueID, courtID, date string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := bookingKey(venueID, courtID, date)
	out := make([]models.Booking, len(m.bookings[key]))
	copy(out, m.bookings[key])
	return out, nil
}

func (m *MemoryStore) BookingsByUser(_ context.Context, userID string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Booking, len(m.byUser[userID]))
	copy(out, m.byUser[userID])
	return out, nil
}

func (m *MemoryStore) CreateUser(_ context.Context, u models.User, passwordHash []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[u.Email]; exists {
		return ErrEmailTaken
	}
	m.users[u.Email] = memoryUser{user: u, hash: passwordHash}
	return nil
}

func (m *MemoryStore) GetUserByEmail(_ context.Context, email string) (models.User, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.users[email]
	if !exists {
		return models.User{}, nil, ErrNotFound
	}
	return entry.user, entry.hash, nil
}
