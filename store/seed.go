package store

import (
	"strings"

	"quickcourt/models"
)

// Catalog is the static venue inventory the demo server serves. The real
// platform keeps venues behind an owner/admin approval pipeline; the demo
// ships a fixed, already-approved set.
type Catalog struct {
	venues []models.Venue
}

// ListVenues returns venues filtered by sport and a free-text search over
// name and city. Empty filters match everything.
func (c *Catalog) ListVenues(sport, search string) []models.Venue {
	out := make([]models.Venue, 0, len(c.venues))
	for _, v := range c.venues {
		if sport != "" && !hasSport(v, sport) {
			continue
		}
		if search != "" && !matchesSearch(v, search) {
			continue
		}
		// Listings omit courts; details carry them.
		listed := v
		listed.Courts = nil
		out = append(out, listed)
	}
	return out
}

// GetVenue returns a venue with its courts.
func (c *Catalog) GetVenue(venueID string) (*models.Venue, bool) {
	for _, v := range c.venues {
		if v.ID == venueID {
			venue := v
			return &venue, true
		}
	}
	return nil, false
}

// GetCourt resolves a court within a venue.
func (c *Catalog) GetCourt(venueID, courtID string) (*models.Venue, *models.Court, bool) {
	venue, ok := c.GetVenue(venueID)
	if !ok {
		return nil, nil, false
	}
	for i := range venue.Courts {
		if venue.Courts[i].ID == courtID {
			return venue, &venue.Courts[i], true
		}
	}
	return nil, nil, false
}

func hasSport(v models.Venue, sport string) bool {
	for _, s := range v.Sports {
		if strings.EqualFold(s, sport) {
			return true
		}
	}
	return false
}

func matchesSearch(v models.Venue, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(v.Name), needle) ||
		strings.Contains(strings.ToLower(v.City), needle)
}

// SeedCatalog returns the demo venue inventory.
func SeedCatalog() *Catalog {
	return &Catalog{venues: []models.Venue{
		{
			ID:          "venue-elite-arena",
			Name:        "Elite Sports Arena",
			Description: "Indoor multi-sport complex with six courts and floodlit turf.",
			Address:     "12 MG Road",
			City:        "Bengaluru",
			Sports:      []string{"Badminton", "Tennis", "Table Tennis"},
			Rating:      4.6,
			Courts: []models.Court{
				{ID: "court-bd-1", Name: "Badminton Court 1", Sport: "Badminton", PricePerHour: 500, OpenTime: "06:00", CloseTime: "22:00"},
				{ID: "court-bd-2", Name: "Badminton Court 2", Sport: "Badminton", PricePerHour: 500, OpenTime: "06:00", CloseTime: "22:00"},
				{ID: "court-tn-1", Name: "Tennis Court A", Sport: "Tennis", PricePerHour: 800, OpenTime: "06:00", CloseTime: "21:00"},
				{ID: "court-tt-1", Name: "Table Tennis Hall", Sport: "Table Tennis", PricePerHour: 300, OpenTime: "08:00", CloseTime: "22:00"},
			},
		},
		{
			ID:          "venue-green-turf",
			Name:        "Green Turf Grounds",
			Description: "Open-air football and cricket turf with evening floodlights.",
			Address:     "45 Lake View Street",
			City:        "Pune",
			Sports:      []string{"Football", "Cricket"},
			Rating:      4.3,
			Courts: []models.Court{
				{ID: "court-fb-1", Name: "5-a-side Turf", Sport: "Football", PricePerHour: 1200, OpenTime: "06:00", CloseTime: "23:00"},
				{ID: "court-fb-2", Name: "7-a-side Turf", Sport: "Football", PricePerHour: 1800, OpenTime: "06:00", CloseTime: "23:00"},
				{ID: "court-cr-1", Name: "Cricket Net 1", Sport: "Cricket", PricePerHour: 600, OpenTime: "07:00", CloseTime: "20:00"},
			},
		},
		{
			ID:          "venue-smash-factory",
			Name:        "Smash Factory",
			Description: "Dedicated racquet sports club with coaching programs.",
			Address:     "8 Stadium Lane",
			City:        "Hyderabad",
			Sports:      []string{"Badminton", "Squash"},
			Rating:      4.8,
			Courts: []models.Court{
				{ID: "court-bd-a", Name: "Court Alpha", Sport: "Badminton", PricePerHour: 450, OpenTime: "05:30", CloseTime: "23:00"},
				{ID: "court-sq-1", Name: "Squash Court 1", Sport: "Squash", PricePerHour: 700, OpenTime: "07:00", CloseTime: "22:00"},
			},
		},
	}}
}
