package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quickcourt/models"

	"github.com/go-redis/redis/v8"
)

const (
	courtBookingsPrefix = "bookings:"
	userBookingsPrefix  = "userBookings:"
)

// RedisBookingStore keeps demo bookings in Redis so they survive restarts
// and can be shared between demo server instances. Users stay in the
// in-memory store; only booking state moves out of process.
type RedisBookingStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBookingStore connects to Redis and verifies the connection.
func NewRedisBookingStore(addr, password string, db int) (*RedisBookingStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisBookingStore{client: client, ttl: 7 * 24 * time.Hour}, nil
}

func (r *RedisBookingStore) CreateBooking(ctx context.Context, b models.Booking) error {
	courtKey := courtBookingsPrefix + bookingKey(b.VenueID, b.CourtID, b.Date)

	existing, err := r.load(ctx, courtKey)
	if err != nil {
		return err
	}
	for _, prior := range existing {
		if Overlaps(b.StartTime, b.EndTime, prior.StartTime, prior.EndTime) {
			return ErrSlotTaken
		}
	}

	if err := r.save(ctx, courtKey, append(existing, b)); err != nil {
		return err
	}
	if b.UserID != "" {
		userKey := userBookingsPrefix + b.UserID
		mine, err := r.load(ctx, userKey)
		if err != nil {
			return err
		}
		if err := r.save(ctx, userKey, append(mine, b)); err != nil {
			return err
		}
	}
	return nil
}

func (r *RedisBookingStore) BookingsFor(ctx context.Context, venueID, courtID, date string) ([]models.Booking, error) {
	return r.load(ctx, courtBookingsPrefix+bookingKey(venueID, courtID, date))
}

func (r *RedisBookingStore) BookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.load(ctx, userBookingsPrefix+userID)
}

func (r *RedisBookingStore) load(ctx context.Context, key string) ([]models.Booking, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	var bookings []models.Booking
	if err := json.Unmarshal([]byte(data), &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookings at %s: %w", key, err)
	}
	return bookings, nil
}

func (r *RedisBookingStore) save(ctx context.Context, key string, bookings []models.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to marshal bookings: %w", err)
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
