package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"quickcourt/models"
)

// SlotReport is what the available-slots endpoint serves: the bookable
// windows plus the counters the response envelope carries.
type SlotReport struct {
	Available      []models.TimeSlot
	TotalSlots     int
	AvailableCount int
	BookedCount    int
}

// BuildSlots derives the hour-long windows for a court on a date. Windows
// start at the court's opening time and step hourly until closing; a window
// overlapping any existing booking is counted as booked, and on the current
// day windows that already started are dropped from the available list.
// Output is ordered by start time ascending.
func BuildSlots(court models.Court, date string, booked []models.Booking, now time.Time) (SlotReport, error) {
	open, err := ParseClock(court.OpenTime)
	if err != nil {
		return SlotReport{}, fmt.Errorf("court %s has invalid open time: %w", court.ID, err)
	}
	closing, err := ParseClock(court.CloseTime)
	if err != nil {
		return SlotReport{}, fmt.Errorf("court %s has invalid close time: %w", court.ID, err)
	}

	var report SlotReport
	today := now.Format("2006-01-02")
	nowMinutes := now.Hour()*60 + now.Minute()

	for start := open; start+60 <= closing; start += 60 {
		report.TotalSlots++
		end := start + 60

		if overlapsBooked(start, end, booked) {
			report.BookedCount++
			continue
		}
		if date == today && start < nowMinutes {
			continue
		}

		startStr := FormatClock(start)
		endStr := FormatClock(end)
		report.Available = append(report.Available, models.TimeSlot{
			StartTime: startStr,
			EndTime:   endStr,
			Label:     startStr + " - " + endStr,
			Price:     court.PricePerHour,
			Available: true,
		})
	}

	report.AvailableCount = len(report.Available)
	return report, nil
}

func overlapsBooked(start, end int, booked []models.Booking) bool {
	for _, b := range booked {
		bs, err1 := ParseClock(b.StartTime)
		be, err2 := ParseClock(b.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		// Half-open intervals: [start,end) overlaps [bs,be) iff start < be && bs < end.
		if start < be && bs < end {
			return true
		}
	}
	return false
}

// Overlaps reports whether two "HH:MM" wall-clock windows intersect.
// Malformed times are treated as non-overlapping.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	as, err1 := ParseClock(aStart)
	ae, err2 := ParseClock(aEnd)
	bs, err3 := ParseClock(bStart)
	be, err4 := ParseClock(bEnd)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return false
	}
	return as < be && bs < ae
}

// ParseClock converts "HH:MM" to minutes from midnight.
func ParseClock(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q out of range", value)
	}
	return hours*60 + minutes, nil
}

// FormatClock converts minutes from midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
