package schedule

import "fmt"

// ===============================
// Time Slot Generator
// ===============================

type TimeSlot struct {
	Value string `json:"value"` // 24h HH:MM, used for storage and sorting
	Label string `json:"label"` // 12h display, e.g. "6:15 AM"
}

const (
	slotDayStartMin = 6 * 60  // 06:00
	slotDayEndMin   = 20 * 60 // 20:00 inclusive
	slotStepMin     = 15
)

// TimeSlots returns the fixed bookable grid: 06:00 through 20:00
// inclusive in 15-minute steps. The grid is identical on every booking
// surface and is never filtered by existing bookings.
func TimeSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, (slotDayEndMin-slotDayStartMin)/slotStepMin+1)
	for m := slotDayStartMin; m <= slotDayEndMin; m += slotStepMin {
		slots = append(slots, TimeSlot{
			Value: fmt.Sprintf("%02d:%02d", m/60, m%60),
			Label: slotLabel(m/60, m%60),
		})
	}
	return slots
}

// IsBookableTime reports whether a 24h HH:MM value falls on the grid.
func IsBookableTime(value string) bool {
	for _, s := range TimeSlots() {
		if s.Value == value {
			return true
		}
	}
	return false
}

func slotLabel(hour, minute int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, suffix)
}
