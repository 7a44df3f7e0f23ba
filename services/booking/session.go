package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quickcourt/models"

	"go.uber.org/zap"
)

// ErrSelectionIncomplete rejects a confirm with no date or time slot chosen.
// A selected label that no longer resolves against the current slot list is
// treated identically: stale state must never be submitted.
var ErrSelectionIncomplete = errors.New("please select a date and time slot")

// ErrSubmissionInFlight rejects a confirm while one is already outstanding.
var ErrSubmissionInFlight = errors.New("a checkout submission is already in progress")

// Session tracks one booking flow for a venue, from opening the court picker
// to handing control off to the payment page. It is the single owner of the
// selection state: a Session is confined to one goroutine, and out-of-order
// fetch results are handled by token comparison rather than locking.
//
// A Session is created when the booking flow opens and discarded once it
// reaches StateRedirected or is cancelled. There is no persistence; a fresh
// flow starts from scratch.
type Session struct {
	api    BookingAPI
	logger *zap.Logger

	venueID string
	state   State

	court    *models.Court
	date     string // "YYYY-MM-DD"
	slot     string // selected slot label, "" when none
	slots    []models.TimeSlot
	fetchSeq uint64
}

// NewSession opens a selection session for a venue. The date defaults to
// today in the local timezone.
func NewSession(venueID string, api BookingAPI, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		api:     api,
		logger:  logger,
		venueID: venueID,
		state:   StateIdle,
		date:    time.Now().Format("2006-01-02"),
	}
}

func (s *Session) State() State                      { return s.state }
func (s *Session) VenueID() string                   { return s.venueID }
func (s *Session) SelectedCourt() *models.Court      { return s.court }
func (s *Session) SelectedDate() string              { return s.date }
func (s *Session) SelectedSlot() string              { return s.slot }
func (s *Session) AvailableSlots() []models.TimeSlot { return s.slots }

// SelectCourt picks a court and schedules a slot fetch for it. Any previous
// slot selection and slot list are cleared first: a slot label is only
// meaningful relative to one court+date pair.
func (s *Session) SelectCourt(court models.Court) FetchRequest {
	s.court = &court
	s.resetSlots()
	s.state = StateAwaitingSlots
	return s.nextFetch()
}

// SelectDate changes the date and schedules a re-fetch. The reset is
// idempotent: changing the date twice in a row leaves the same cleared state.
// With no court chosen yet the date is recorded but nothing is fetched.
func (s *Session) SelectDate(date string) (FetchRequest, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return FetchRequest{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	s.date = date
	if s.court == nil {
		return FetchRequest{}, nil
	}
	s.resetSlots()
	s.state = StateAwaitingSlots
	return s.nextFetch(), nil
}

// ApplySlots installs the result of a fetch. It reports whether the result
// was applied; a token that no longer matches the latest issued fetch means
// the response raced with a newer request (or a reset) and is dropped on the
// floor, never overwriting fresher state.
//
// A failed fetch leaves an empty list and an interactive session: the user
// retries by changing the date, which issues a new fetch.
func (s *Session) ApplySlots(token uint64, slots []models.TimeSlot, err error) bool {
	if token != s.fetchSeq || s.state != StateAwaitingSlots {
		s.logger.Debug("discarding stale slot fetch result",
			zap.Uint64("token", token),
			zap.Uint64("latest", s.fetchSeq))
		return false
	}

	if err != nil {
		s.slots = nil
		s.state = StateSlotsReady
		return true
	}

	s.slots = slots
	s.state = StateSlotsReady
	// Wholesale replacement: a previously chosen label survives only if the
	// new list still contains it.
	if s.slot != "" {
		if _, ok := s.findSlot(s.slot); ok {
			s.state = StateSlotChosen
		} else {
			s.slot = ""
		}
	}
	return true
}

// LoadSlots performs the fetch described by req against the API and applies
// the result. The error (if any) is returned for display only when the
// result was actually applied; stale results report nothing.
func (s *Session) LoadSlots(ctx context.Context, req FetchRequest) error {
	if req.Zero() {
		return nil
	}
	slots, err := s.api.FetchAvailableSlots(ctx, req.VenueID, req.CourtID, req.Date)
	if !s.ApplySlots(req.Token, slots, err) {
		return nil
	}
	return err
}

// SelectSlot picks a slot by its label. The label must be present in the
// currently loaded list.
func (s *Session) SelectSlot(label string) error {
	if s.state != StateSlotsReady && s.state != StateSlotChosen {
		return fmt.Errorf("no slots loaded yet")
	}
	if _, ok := s.findSlot(label); !ok {
		return fmt.Errorf("time slot %q is not available", label)
	}
	s.slot = label
	s.state = StateSlotChosen
	return nil
}

// Confirm builds the checkout request from the current selection and submits
// it. On success the returned URL is the externally hosted payment page; the
// session is terminal and the caller performs the hand-off. On failure the
// selection is preserved so the user can retry without re-picking.
//
// The selected label is resolved against the current slot list at submit
// time; no resolution means the selection went stale (a date change raced
// with the render) and the confirm is rejected locally with zero network
// calls, same as an empty selection.
func (s *Session) Confirm(ctx context.Context) (string, error) {
	if s.state == StateSubmitting {
		return "", ErrSubmissionInFlight
	}
	if s.court == nil || s.date == "" || s.slot == "" {
		return "", ErrSelectionIncomplete
	}
	matched, ok := s.findSlot(s.slot)
	if !ok {
		return "", ErrSelectionIncomplete
	}

	req := models.CheckoutRequest{
		VenueID:   s.venueID,
		CourtID:   s.court.ID,
		Date:      s.date,
		StartTime: matched.StartTime,
		EndTime:   matched.EndTime,
		Price:     matched.Price,
	}

	s.state = StateSubmitting
	sessionURL, err := s.api.CreateCheckoutSession(ctx, req)
	if err != nil {
		s.state = StateSlotChosen
		s.logger.Warn("checkout submission failed",
			zap.String("venueId", req.VenueID),
			zap.String("courtId", req.CourtID),
			zap.String("date", req.Date),
			zap.Error(err))
		return "", err
	}

	s.state = StateRedirected
	s.logger.Info("checkout session created",
		zap.String("venueId", req.VenueID),
		zap.String("courtId", req.CourtID),
		zap.String("date", req.Date),
		zap.String("slot", s.slot))
	return sessionURL, nil
}

// Cancel dismisses the flow: full reset of court, date, slot and slot list.
// The fetch token is bumped so any in-flight fetch resolves into the void.
func (s *Session) Cancel() {
	s.court = nil
	s.date = time.Now().Format("2006-01-02")
	s.resetSlots()
	s.fetchSeq++
	s.state = StateIdle
}

func (s *Session) resetSlots() {
	s.slot = ""
	s.slots = nil
}

func (s *Session) nextFetch() FetchRequest {
	s.fetchSeq++
	return FetchRequest{
		Token:   s.fetchSeq,
		VenueID: s.venueID,
		CourtID: s.court.ID,
		Date:    s.date,
	}
}

func (s *Session) findSlot(label string) (models.TimeSlot, bool) {
	for _, slot := range s.slots {
		if slot.Label == label {
			return slot, true
		}
	}
	return models.TimeSlot{}, false
}
