package schedule

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Calendar dates and times of day are carried as strings in the wire
// and storage formats above. ISO dates compare correctly as strings,
// which the calendar engine relies on.

func IsValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

func IsValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil && len(s) == 5
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns end - start in whole calendar days. Both inputs
// must be valid dates.
func DaysBetween(start, end string) int {
	s, _ := time.Parse(DateLayout, start)
	e, _ := time.Parse(DateLayout, end)
	return int(e.Sub(s).Hours() / 24)
}

// RangeDuration converts an inclusive date range into a duration value
// for the given model: days count both endpoints, nights count the
// gaps between them (never less than one for a committed stay).
func RangeDuration(start, end string, dt DurationType) int {
	diff := DaysBetween(start, end)
	if dt == DurationNights {
		if diff < 1 {
			return 1
		}
		return diff
	}
	return diff + 1
}

// AddDays shifts a date string by n calendar days.
func AddDays(date string, n int) string {
	t, _ := time.Parse(DateLayout, date)
	return t.AddDate(0, 0, n).Format(DateLayout)
}

// WeekStart returns the Sunday on or before the given date.
func WeekStart(date string) string {
	t, _ := time.Parse(DateLayout, date)
	return t.AddDate(0, 0, -int(t.Weekday())).Format(DateLayout)
}
