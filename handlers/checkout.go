package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"quickcourt/config"
	"quickcourt/models"
	"quickcourt/store"
	"quickcourt/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// PaymentHandler creates checkout sessions. With a Stripe key configured it
// creates a real hosted Checkout Session; without one it fabricates a local
// session URL so the flow stays demonstrable offline. The slot is reserved
// either way, so subsequent availability fetches reflect it.
type PaymentHandler struct {
	Catalog  *store.Catalog
	Bookings store.BookingStore
	Logger   *zap.Logger
}

func NewPaymentHandler(catalog *store.Catalog, bookings store.BookingStore, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Catalog: catalog, Bookings: bookings, Logger: logger}
}

// CreateCheckoutSession handles POST /api/payments/create-checkout-session.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkout request")
		return
	}
	if req.VenueID == "" || req.CourtID == "" || req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		utils.JSONError(c, http.StatusBadRequest, "venueId, courtId, date, startTime and endTime are required")
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	start, err := store.ParseClock(req.StartTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "startTime must be HH:MM")
		return
	}
	end, err := store.ParseClock(req.EndTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "endTime must be HH:MM")
		return
	}
	if end <= start {
		utils.JSONError(c, http.StatusBadRequest, "endTime must be after startTime")
		return
	}

	venue, court, ok := h.Catalog.GetCourt(req.VenueID, req.CourtID)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "court not found")
		return
	}

	booking := models.Booking{
		ID:        uuid.New().String(),
		UserID:    c.GetString("userID"),
		VenueID:   venue.ID,
		CourtID:   court.ID,
		VenueName: venue.Name,
		CourtName: court.Name,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		// The court's rate is authoritative; the client-supplied price is
		// display state.
		Price:     court.PricePerHour,
		Status:    "pending_payment",
		CreatedAt: time.Now(),
	}

	if err := h.Bookings.CreateBooking(c.Request.Context(), booking); err != nil {
		if errors.Is(err, store.ErrSlotTaken) {
			utils.JSONError(c, http.StatusConflict, "Selected slot is no longer available")
			return
		}
		h.Logger.Error("failed to record booking", zap.String("courtId", court.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create checkout session")
		return
	}

	sessionURL, err := h.sessionURL(booking)
	if err != nil {
		h.Logger.Error("failed to create checkout session",
			zap.String("bookingId", booking.ID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to create checkout session")
		return
	}

	h.Logger.Info("checkout session created",
		zap.String("bookingId", booking.ID),
		zap.String("courtId", court.ID),
		zap.String("date", booking.Date),
		zap.String("slot", booking.StartTime+" - "+booking.EndTime))
	c.JSON(http.StatusOK, models.CheckoutResponse{Success: true, SessionURL: sessionURL})
}

func (h *PaymentHandler) sessionURL(b models.Booking) (string, error) {
	if config.AppConfig.StripeKey == "" {
		return "https://pay.quickcourt.example/session/" + b.ID, nil
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(config.AppConfig.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(fmt.Sprintf("%s, %s on %s (%s - %s)",
						b.VenueName, b.CourtName, b.Date, b.StartTime, b.EndTime)),
				},
				UnitAmount: stripe.Int64(int64(b.Price * 100)),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL:        stripe.String(config.AppConfig.CheckoutSuccessURL),
		CancelURL:         stripe.String(config.AppConfig.CheckoutCancelURL),
		ClientReferenceID: stripe.String(b.ID),
	}
	s, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe checkout session: %w", err)
	}
	return s.URL, nil
}
