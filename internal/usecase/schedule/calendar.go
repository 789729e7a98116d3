package schedule

import (
	"context"
	"time"

	domain "github.com/roncastellon/BWM-walker-app-sub003/internal/domain/schedule"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/models"
)

// ======================================================
// CALENDAR QUERIES
// ======================================================

// MonthDayCap limits how many items a month cell displays. It is a
// presentation decision applied after filtering; the overflow count
// preserves the size of the full matched set.
const MonthDayCap = 3

type DayView struct {
	Date         string               `json:"date"`
	Appointments []models.Appointment `json:"appointments"`
}

type MonthCell struct {
	Date         string               `json:"date"`
	Appointments []models.Appointment `json:"appointments"`
	Overflow     int                  `json:"overflow"`
}

type CalendarQuery struct {
	repo domain.Repository
}

func NewCalendarQuery(repo domain.Repository) *CalendarQuery {
	return &CalendarQuery{repo: repo}
}

// Day resolves the appointments visible on one date. The collection is
// fetched whole and filtered here; the collaborator does no filtering.
func (uc *CalendarQuery) Day(
	ctx context.Context,
	date string,
	f domain.Filters,
) ([]models.Appointment, error) {

	all, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	return domain.VisibleAppointments(all, date, f), nil
}

// Week applies the day predicate to the 7 dates of the week containing
// start (Sunday first).
func (uc *CalendarQuery) Week(
	ctx context.Context,
	start string,
	f domain.Filters,
) ([]DayView, error) {

	all, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	first := domain.WeekStart(start)
	views := make([]DayView, 0, 7)
	for i := 0; i < 7; i++ {
		date := domain.AddDays(first, i)
		views = append(views, DayView{
			Date:         date,
			Appointments: domain.VisibleAppointments(all, date, f),
		})
	}
	return views, nil
}

// Month produces one cell per day of the month, each truncated to
// MonthDayCap items with the remainder reported as overflow.
func (uc *CalendarQuery) Month(
	ctx context.Context,
	year int,
	month int,
	f domain.Filters,
) ([]MonthCell, error) {

	all, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	cells := make([]MonthCell, 0, days)
	for d := 1; d <= days; d++ {
		date := domain.FormatDate(first.AddDate(0, 0, d-1))
		matched := domain.VisibleAppointments(all, date, f)

		cell := MonthCell{Date: date, Appointments: matched}
		if len(matched) > MonthDayCap {
			cell.Appointments = matched[:MonthDayCap]
			cell.Overflow = len(matched) - MonthDayCap
		}
		cells = append(cells, cell)
	}
	return cells, nil
}
