package handlers

import (
	"net/http"

	"quickcourt/models"
	"quickcourt/store"
	"quickcourt/utils"

	"github.com/gin-gonic/gin"
)

// VenueHandler serves the venue catalog.
type VenueHandler struct {
	Catalog *store.Catalog
}

func NewVenueHandler(catalog *store.Catalog) *VenueHandler {
	return &VenueHandler{Catalog: catalog}
}

// ListVenues handles GET /api/venues. Optional filters: sport, search.
func (h *VenueHandler) ListVenues(c *gin.Context) {
	venues := h.Catalog.ListVenues(c.Query("sport"), c.Query("search"))
	if venues == nil {
		venues = []models.Venue{}
	}
	c.JSON(http.StatusOK, models.VenuesResponse{Success: true, Venues: venues})
}

// GetVenue handles GET /api/venues/:id, returning the venue with its courts.
func (h *VenueHandler) GetVenue(c *gin.Context) {
	venue, ok := h.Catalog.GetVenue(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "venue not found")
		return
	}
	c.JSON(http.StatusOK, models.VenueResponse{Success: true, Venue: venue})
}
