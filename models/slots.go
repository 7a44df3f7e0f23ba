package models

// TimeSlot represents a bookable window on a given date for a given court.
// Start and end are venue-local wall-clock strings ("HH:MM", 24-hour); no
// timezone is attached. Label is the display key the UI selects by,
// conventionally "{startTime} - {endTime}".
type TimeSlot struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Label     string  `json:"label"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// AvailableSlotsResponse is the envelope returned by the available-slots
// endpoint. Slots arrive non-overlapping and ordered by start time ascending;
// that ordering is produced server-side and must be preserved by consumers.
type AvailableSlotsResponse struct {
	Success        bool       `json:"success"`
	AvailableSlots []TimeSlot `json:"availableSlots"`
	TotalSlots     int        `json:"totalSlots"`
	AvailableCount int        `json:"availableCount"`
	BookedCount    int        `json:"bookedCount"`
	Message        string     `json:"message,omitempty"`
}
