package models

// Court is a bookable playing surface within a venue. Open and close times
// are "HH:MM" wall-clock strings in the venue's local time.
type Court struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Sport        string  `json:"sport"`
	PricePerHour float64 `json:"pricePerHour"`
	OpenTime     string  `json:"openTime"`
	CloseTime    string  `json:"closeTime"`
}

// Venue is an approved facility in the catalog. Listings omit Courts; the
// detail endpoint carries them.
type Venue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Address     string   `json:"address,omitempty"`
	City        string   `json:"city"`
	Sports      []string `json:"sports"`
	Rating      float64  `json:"rating"`
	Courts      []Court  `json:"courts,omitempty"`
}

// VenuesResponse is the envelope for GET /venues.
type VenuesResponse struct {
	Success bool    `json:"success"`
	Venues  []Venue `json:"venues"`
	Message string  `json:"message,omitempty"`
}

// VenueResponse is the envelope for GET /venues/:id.
type VenueResponse struct {
	Success bool   `json:"success"`
	Venue   *Venue `json:"venue,omitempty"`
	Message string `json:"message,omitempty"`
}
