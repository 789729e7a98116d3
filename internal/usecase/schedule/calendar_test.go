package schedule

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/roncastellon/BWM-walker-app-sub003/internal/domain/schedule"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/models"
)

func seedCalendarData(repo *fakeRepo) {
	walkerID := uint(7)
	// Five walks on one Monday, overflow material for the month view.
	for i := 0; i < 5; i++ {
		repo.seedAppointment(models.Appointment{
			ClientID: 1, WalkerID: &walkerID, ServiceType: "walk_30",
			ScheduledDate: "2026-05-04", EndDate: "2026-05-04",
			ScheduledTime: fmt.Sprintf("%02d:00", 9+i),
			Status:        "scheduled",
		})
	}
	// A stay spanning the whole week.
	repo.seedAppointment(models.Appointment{
		ClientID: 2, ServiceType: "overnight",
		ScheduledDate: "2026-05-03", EndDate: "2026-05-09",
		Status: "scheduled",
	})
	// Cancelled on the same Monday; must never show.
	repo.seedAppointment(models.Appointment{
		ClientID: 2, ServiceType: "walk_30",
		ScheduledDate: "2026-05-04", EndDate: "2026-05-04",
		ScheduledTime: "08:00",
		Status:        "cancelled",
	})
}

func TestCalendarDay(t *testing.T) {
	repo := newFakeRepo()
	seedCalendarData(repo)
	uc := NewCalendarQuery(repo)

	got, err := uc.Day(context.Background(), "2026-05-04", domain.Filters{})
	require.NoError(t, err)
	require.Len(t, got, 6, "five walks plus the running stay")
	assert.Empty(t, got[0].ScheduledTime, "the stay leads the day")

	got, err = uc.Day(context.Background(), "2026-05-04", domain.Filters{Category: "overnight"})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = uc.Day(context.Background(), "2026-05-04", domain.Filters{Walker: "unassigned"})
	require.NoError(t, err)
	assert.Len(t, got, 1, "cancelled unassigned walk stays hidden")
}

func TestCalendarWeek(t *testing.T) {
	repo := newFakeRepo()
	seedCalendarData(repo)
	uc := NewCalendarQuery(repo)

	// 2026-05-06 is a Wednesday; the containing week starts Sunday
	// 2026-05-03.
	views, err := uc.Week(context.Background(), "2026-05-06", domain.Filters{})
	require.NoError(t, err)
	require.Len(t, views, 7)
	assert.Equal(t, "2026-05-03", views[0].Date)
	assert.Equal(t, "2026-05-09", views[6].Date)

	for i, v := range views {
		want := 1 // the stay covers every day of this week
		if v.Date == "2026-05-04" {
			want = 6
		}
		assert.Len(t, v.Appointments, want, "day %d (%s)", i, v.Date)
	}
}

func TestCalendarMonthCapsCells(t *testing.T) {
	repo := newFakeRepo()
	seedCalendarData(repo)
	uc := NewCalendarQuery(repo)

	cells, err := uc.Month(context.Background(), 2026, 5, domain.Filters{})
	require.NoError(t, err)
	require.Len(t, cells, 31)

	byDate := map[string]MonthCell{}
	for _, c := range cells {
		byDate[c.Date] = c
	}

	busy := byDate["2026-05-04"]
	assert.Len(t, busy.Appointments, MonthDayCap)
	assert.Equal(t, 3, busy.Overflow, "six matched, three displayed")

	quiet := byDate["2026-05-07"]
	assert.Len(t, quiet.Appointments, 1)
	assert.Zero(t, quiet.Overflow)

	empty := byDate["2026-05-20"]
	assert.Empty(t, empty.Appointments)
	assert.Zero(t, empty.Overflow)
}

func TestCalendarMonthFebruaryLength(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCalendarQuery(repo)

	cells, err := uc.Month(context.Background(), 2026, 2, domain.Filters{})
	require.NoError(t, err)
	assert.Len(t, cells, 28)

	cells, err = uc.Month(context.Background(), 2024, 2, domain.Filters{})
	require.NoError(t, err)
	assert.Len(t, cells, 29)
}
