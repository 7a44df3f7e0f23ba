package handlers

import (
	"net/http"
	"time"

	"quickcourt/models"
	"quickcourt/store"
	"quickcourt/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves slot availability and booking listings.
type BookingHandler struct {
	Catalog  *store.Catalog
	Bookings store.BookingStore
	Logger   *zap.Logger
}

func NewBookingHandler(catalog *store.Catalog, bookings store.BookingStore, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Catalog: catalog, Bookings: bookings, Logger: logger}
}

// GetAvailableSlots handles GET /api/bookings/available-slots.
// Query: venueId, courtId, selectedDate (YYYY-MM-DD). All required.
func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	venueID := c.Query("venueId")
	courtID := c.Query("courtId")
	date := c.Query("selectedDate")
	if venueID == "" || courtID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "venueId, courtId and selectedDate are required")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "selectedDate must be YYYY-MM-DD")
		return
	}

	_, court, ok := h.Catalog.GetCourt(venueID, courtID)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "court not found")
		return
	}

	booked, err := h.Bookings.BookingsFor(c.Request.Context(), venueID, courtID, date)
	if err != nil {
		h.Logger.Error("failed to load bookings", zap.String("courtId", courtID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability")
		return
	}

	report, err := store.BuildSlots(*court, date, booked, time.Now())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability")
		return
	}
	if report.Available == nil {
		// Serialize as [] rather than null.
		report.Available = []models.TimeSlot{}
	}

	c.JSON(http.StatusOK, models.AvailableSlotsResponse{
		Success:        true,
		AvailableSlots: report.Available,
		TotalSlots:     report.TotalSlots,
		AvailableCount: report.AvailableCount,
		BookedCount:    report.BookedCount,
	})
}

// ListMyBookings handles GET /api/bookings/my. Requires authentication.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	bookings, err := h.Bookings.BookingsByUser(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to load user bookings", zap.String("userId", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, models.BookingsResponse{Success: true, Bookings: bookings})
}
