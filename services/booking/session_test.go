package booking

import (
	"context"
	"errors"
	"testing"

	"quickcourt/models"
)

type fakeAPI struct {
	slotsByDate   map[string][]models.TimeSlot
	fetchErr      error
	fetchCalls    int
	checkoutCalls int
	lastCheckout  models.CheckoutRequest
	checkoutURL   string
	checkoutErr   error
}

func (f *fakeAPI) FetchAvailableSlots(_ context.Context, venueID, courtID, date string) ([]models.TimeSlot, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.slotsByDate[date], nil
}

func (f *fakeAPI) CreateCheckoutSession(_ context.Context, req models.CheckoutRequest) (string, error) {
	f.checkoutCalls++
	f.lastCheckout = req
	if f.checkoutErr != nil {
		return "", f.checkoutErr
	}
	return f.checkoutURL, nil
}

func slot(start, end string, price float64) models.TimeSlot {
	return models.TimeSlot{
		StartTime: start,
		EndTime:   end,
		Label:     start + " - " + end,
		Price:     price,
		Available: true,
	}
}

func testCourt() models.Court {
	return models.Court{ID: "C1", Name: "Court 1", Sport: "Badminton", PricePerHour: 500}
}

func newReadySession(t *testing.T, api *fakeAPI, date string) *Session {
	t.Helper()
	sess := NewSession("V1", api, nil)
	if err := sess.LoadSlots(context.Background(), sess.SelectCourt(testCourt())); err != nil {
		t.Fatalf("initial load: %v", err)
	}
	req, err := sess.SelectDate(date)
	if err != nil {
		t.Fatalf("select date: %v", err)
	}
	if err := sess.LoadSlots(context.Background(), req); err != nil {
		t.Fatalf("load slots: %v", err)
	}
	return sess
}

func TestSelectCourt_StartsAwaitingSlots(t *testing.T) {
	api := &fakeAPI{}
	sess := NewSession("V1", api, nil)

	if sess.State() != StateIdle {
		t.Fatalf("expected idle, got %s", sess.State())
	}
	req := sess.SelectCourt(testCourt())
	if sess.State() != StateAwaitingSlots {
		t.Fatalf("expected awaiting_slots, got %s", sess.State())
	}
	if req.Zero() || req.CourtID != "C1" || req.VenueID != "V1" {
		t.Fatalf("unexpected fetch request: %+v", req)
	}
	if sess.SelectedDate() == "" {
		t.Fatal("expected date to default to today")
	}
}

func TestSelectDate_ClearsSelectionBeforeFetchResolves(t *testing.T) {
	api := &fakeAPI{slotsByDate: map[string][]models.TimeSlot{
		"2026-06-01": {slot("09:00", "10:00", 500), slot("10:00", "11:00", 500)},
	}}
	sess := newReadySession(t, api, "2026-06-01")

	if err := sess.SelectSlot("09:00 - 10:00"); err != nil {
		t.Fatalf("select slot: %v", err)
	}

	// The reset happens immediately, before any fetch resolves.
	if _, err := sess.SelectDate("2026-06-02"); err != nil {
		t.Fatalf("select date: %v", err)
	}
	if sess.SelectedSlot() != "" {
		t.Fatalf("expected cleared slot, got %q", sess.SelectedSlot())
	}
	if len(sess.AvailableSlots()) != 0 {
		t.Fatalf("expected cleared slots, got %d", len(sess.AvailableSlots()))
	}
	if sess.State() != StateAwaitingSlots {
		t.Fatalf("expected awaiting_slots, got %s", sess.State())
	}

	// Idempotent: a second date change leaves the same empty state.
	if _, err := sess.SelectDate("2026-06-03"); err != nil {
		t.Fatalf("second select date: %v", err)
	}
	if sess.SelectedSlot() != "" || len(sess.AvailableSlots()) != 0 {
		t.Fatal("expected reset to be idempotent")
	}
}

func TestConfirm_NoSlotSelected_RejectedLocally(t *testing.T) {
	api := &fakeAPI{slotsByDate: map[string][]models.TimeSlot{
		"2026-06-01": {slot("09:00", "10:00", 500)},
	}}
	sess := newReadySession(t, api, "2026-06-01")

	_, err := sess.Confirm(context.Background())
	if !errors.Is(err, ErrSelectionIncomplete) {
		t.Fatalf("expected ErrSelectionIncomplete, got %v", err)
	}
	if api.checkoutCalls != 0 {
		t.Fatalf("expected zero checkout calls, got %d", api.checkoutCalls)
	}
}

func TestConfirm_StaleSelection_RejectedLocally(t *testing.T) {
	api := &fakeAPI{slotsByDate: map[string][]models.TimeSlot{
		"2026-06-01": {slot("09:00", "10:00", 500)},
		"2026-06-02": {slot("14:00", "15:00", 500)},
	}}
	sess := newReadySession(t, api, "2026-06-01")

	if err := sess.SelectSlot("09:00 - 10:00"); err != nil {
		t.Fatalf("select slot: %v", err)
	}

	// Date changes and the new list no longer contains the chosen label.
	req, err := sess.SelectDate("2026-06-02")
	if err != nil {
		t.Fatalf("select date: %v", err)
	}
	if err := sess.LoadSlots(context.Background(), req); err != nil {
		t.Fatalf("load slots: %v", err)
	}

	_, err = sess.Confirm(context.Background())
	if !errors.Is(err, ErrSelectionIncomplete) {
		t.Fatalf("expected ErrSelectionIncomplete, got %v", err)
	}
	if api.checkoutCalls != 0 {
		t.Fatalf("expected zero checkout calls, got %d", api.checkoutCalls)
	}
}

func TestConfirm_BuildsCheckoutRequestFromMatchedSlot(t *testing.T) {
	api := &fakeAPI{
		slotsByDate: map[string][]models.TimeSlot{
			"2024-06-01": {slot("09:00", "10:00", 500), slot("10:00", "11:00", 500)},
		},
		checkoutURL: "https://pay.example/session/abc",
	}
	sess := newReadySession(t, api, "2024-06-01")

	if err := sess.SelectSlot("10:00 - 11:00"); err != nil {
		t.Fatalf("select slot: %v", err)
	}
	url, err := sess.Confirm(context.Background())
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if url != "https://pay.example/session/abc" {
		t.Fatalf("unexpected url %q", url)
	}
	if sess.State() != StateRedirected {
		t.Fatalf("expected redirected, got %s", sess.State())
	}

	want := models.CheckoutRequest{
		VenueID:   "V1",
		CourtID:   "C1",
		Date:      "2024-06-01",
		StartTime: "10:00",
		EndTime:   "11:00",
		Price:     500,
	}
	if api.lastCheckout != want {
		t.Fatalf("checkout request mismatch:\n got %+v\nwant %+v", api.lastCheckout, want)
	}
}

func TestConfirm_FailurePreservesSelectionForRetry(t *testing.T) {
	api := &fakeAPI{
		slotsByDate: map[string][]models.TimeSlot{
			"2026-06-01": {slot("09:00", "10:00", 500)},
		},
		checkoutErr: errors.New("payment service unavailable"),
	}
	sess := newReadySession(t, api, "2026-06-01")

	if err := sess.SelectSlot("09:00 - 10:00"); err != nil {
		t.Fatalf("select slot: %v", err)
	}
	if _, err := sess.Confirm(context.Background()); err == nil {
		t.Fatal("expected confirm to fail")
	}
	if sess.State() != StateSlotChosen {
		t.Fatalf("expected slot_chosen after failure, got %s", sess.State())
	}
	if sess.SelectedSlot() != "09:00 - 10:00" {
		t.Fatalf("expected selection preserved, got %q", sess.SelectedSlot())
	}

	// Retry without re-picking.
	api.checkoutErr = nil
	api.checkoutURL = "https://pay.example/session/retry"
	url, err := sess.Confirm(context.Background())
	if err != nil {
		t.Fatalf("retry confirm: %v", err)
	}
	if url != "https://pay.example/session/retry" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestEmptySlotList_StaysInteractive(t *testing.T) {
	api := &fakeAPI{slotsByDate: map[string][]models.TimeSlot{}}
	sess := newReadySession(t, api, "2026-06-01")

	if sess.State() != StateSlotsReady {
		t.Fatalf("expected slots_ready, got %s", sess.State())
	}
	if len(sess.AvailableSlots()) != 0 {
		t.Fatalf("expected no slots, got %d", len(sess.AvailableSlots()))
	}
	if err := sess.SelectSlot("09:00 - 10:00"); err == nil {
		t.Fatal("expected slot selection to fail with no slots")
	}
	if _, err := sess.Confirm(context.Background()); !errors.Is(err, ErrSelectionIncomplete) {
		t.Fatalf("expected ErrSelectionIncomplete, got %v", err)
	}
}

func TestFetchFailure_ClearsSlotsAndStaysInteractive(t *testing.T) {
	api := &fakeAPI{
		slotsByDate: map[string][]models.TimeSlot{
			"2026-06-01": {slot("09:00", "10:00", 500)},
		},
	}
	sess := newReadySession(t, api, "2026-06-01")
	if len(sess.AvailableSlots()) != 1 {
		t.Fatalf("expected one slot, got %d", len(sess.AvailableSlots()))
	}

	api.fetchErr = errors.New("connection refused")
	req, err := sess.SelectDate("2026-06-02")
	if err != nil {
		t.Fatalf("select date: %v", err)
	}
	if err := sess.LoadSlots(context.Background(), req); err == nil {
		t.Fatal("expected load failure to surface")
	}
	if len(sess.AvailableSlots()) != 0 {
		t.Fatal("expected slots cleared after failed fetch")
	}

	// Changing the date again re-triggers a fetch: the flow stays usable.
	api.fetchErr = nil
	req, err = sess.SelectDate("2026-06-01")
	if err != nil {
		t.Fatalf("select date: %v", err)
	}
	if err := sess.LoadSlots(context.Background(), req); err != nil {
		t.Fatalf("recovery load: %v", err)
	}
	if len(sess.AvailableSlots()) != 1 {
		t.Fatalf("expected recovery to load slots, got %d", len(sess.AvailableSlots()))
	}
}

func TestStaleFetchResponse_Discarded(t *testing.T) {
	d1Slots := []models.TimeSlot{slot("09:00", "10:00", 500)}
	d2Slots := []models.TimeSlot{slot("14:00", "15:00", 500), slot("15:00", "16:00", 500)}
	api := &fakeAPI{slotsByDate: map[string][]models.TimeSlot{
		"2026-06-01": d1Slots,
		"2026-06-02": d2Slots,
	}}
	sess := NewSession("V1", api, nil)
	sess.SelectCourt(testCourt())

	req1, err := sess.SelectDate("2026-06-01")
	if err != nil {
		t.Fatalf("select date 1: %v", err)
	}
	req2, err := sess.SelectDate("2026-06-02")
	if err != nil {
		t.Fatalf("select date 2: %v", err)
	}

	// D2's response lands first, then D1's arrives late.
	if applied := sess.ApplySlots(req2.Token, d2Slots, nil); !applied {
		t.Fatal("expected latest response to apply")
	}
	if applied := sess.ApplySlots(req1.Token, d1Slots, nil); applied {
		t.Fatal("expected stale response to be discarded")
	}

	got := sess.AvailableSlots()
	if len(got) != len(d2Slots) || got[0].Label != "14:00 - 15:00" {
		t.Fatalf("expected D2 slots to win, got %+v", got)
	}
}

func TestCancel_FullReset(t *testing.T) {
	api := &fakeAPI{slotsByDate: map[string][]models.TimeSlot{
		"2026-06-01": {slot("09:00", "10:00", 500)},
	}}
	sess := newReadySession(t, api, "2026-06-01")
	if err := sess.SelectSlot("09:00 - 10:00"); err != nil {
		t.Fatalf("select slot: %v", err)
	}

	// A fetch issued before the cancel must resolve into the void.
	req, err := sess.SelectDate("2026-06-01")
	if err != nil {
		t.Fatalf("select date: %v", err)
	}
	sess.Cancel()

	if sess.State() != StateIdle {
		t.Fatalf("expected idle, got %s", sess.State())
	}
	if sess.SelectedCourt() != nil || sess.SelectedSlot() != "" || len(sess.AvailableSlots()) != 0 {
		t.Fatal("expected full reset of court, slot and slots")
	}
	if applied := sess.ApplySlots(req.Token, []models.TimeSlot{slot("09:00", "10:00", 500)}, nil); applied {
		t.Fatal("expected in-flight fetch to be discarded after cancel")
	}
}
