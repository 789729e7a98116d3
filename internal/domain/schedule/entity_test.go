package schedule

import (
	"testing"
	"time"
)

func TestTransitionStampsTimestamps(t *testing.T) {
	now := time.Date(2026, 4, 10, 15, 0, 0, 0, time.UTC)

	ap := walkAt(1, "2026-04-10", "09:00", nil)
	if err := Cancel(&ap, now); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if ap.Status != string(StatusCancelled) || ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("cancel did not stamp: %+v", ap)
	}

	ap2 := walkAt(2, "2026-04-10", "09:00", nil)
	ap2.Status = string(StatusInProgress)
	if err := ForceComplete(&ap2, now); err != nil {
		t.Fatalf("force complete: %v", err)
	}
	if ap2.Status != string(StatusCompleted) || ap2.CompletedAt == nil {
		t.Fatalf("force complete did not stamp: %+v", ap2)
	}
}

func TestTransitionSameStatusNoOp(t *testing.T) {
	ap := walkAt(1, "2026-04-10", "09:00", nil)
	if err := Transition(&ap, StatusScheduled, time.Now()); err != nil {
		t.Fatalf("redundant transition must be accepted: %v", err)
	}
	if ap.CancelledAt != nil || ap.CompletedAt != nil {
		t.Fatal("redundant transition must not stamp anything")
	}
}

func TestTransitionFromTerminalRejected(t *testing.T) {
	ap := walkAt(1, "2026-04-10", "09:00", nil)
	ap.Status = string(StatusCancelled)
	if err := Transition(&ap, StatusCompleted, time.Now()); err == nil {
		t.Fatal("cancelled appointment must not complete")
	}
	if ap.Status != string(StatusCancelled) {
		t.Fatal("failed transition must not mutate the record")
	}
}

func TestEndStayEarly(t *testing.T) {
	now := time.Date(2026, 4, 12, 10, 0, 0, 0, time.UTC)

	ap := stay(1, "overnight", "2026-04-10", "2026-04-15")
	ap.Status = string(StatusInProgress)
	ap.DurationType = string(DurationNights)
	ap.DurationValue = 5

	if err := EndStayEarly(&ap, "2026-04-12", now); err != nil {
		t.Fatalf("end early: %v", err)
	}
	if ap.EndDate != "2026-04-12" {
		t.Fatalf("end date = %s, want 2026-04-12", ap.EndDate)
	}
	if ap.DurationValue != 2 {
		t.Fatalf("duration = %d nights, want 2", ap.DurationValue)
	}
	if ap.Status != string(StatusCompleted) || ap.CompletedAt == nil {
		t.Fatalf("stay not completed: %+v", ap)
	}
	if OccursOn(&ap, "2026-04-14") {
		t.Fatal("cut days must vanish from calendar views")
	}
}

func TestEndStayEarlyClampsToStart(t *testing.T) {
	ap := stay(1, "daycare", "2026-04-10", "2026-04-15")
	ap.DurationType = string(DurationDays)

	if err := EndStayEarly(&ap, "2026-04-08", time.Now()); err != nil {
		t.Fatalf("end early: %v", err)
	}
	if ap.EndDate != "2026-04-10" {
		t.Fatalf("end date = %s, want clamp to start date", ap.EndDate)
	}
	if ap.DurationValue != 1 {
		t.Fatalf("duration = %d days, want 1", ap.DurationValue)
	}
}

func TestEndStayEarlyRejectsWalks(t *testing.T) {
	ap := walkAt(1, "2026-04-10", "09:00", nil)
	ap.DurationType = string(DurationMinutes)
	if err := EndStayEarly(&ap, "2026-04-10", time.Now()); err == nil {
		t.Fatal("minute services must not be ended early as stays")
	}
}

func TestEndStayEarlyRejectsTerminal(t *testing.T) {
	for _, status := range []Status{StatusCancelled, StatusCompleted} {
		ap := stay(1, "overnight", "2026-04-10", "2026-04-15")
		ap.DurationType = string(DurationNights)
		ap.DurationValue = 5
		ap.Status = string(status)

		if err := EndStayEarly(&ap, "2026-04-12", time.Now()); err == nil {
			t.Fatalf("%s stay must not be ended early", status)
		}
		if ap.EndDate != "2026-04-15" || ap.DurationValue != 5 {
			t.Fatalf("%s stay was reshaped: end=%s duration=%d", status, ap.EndDate, ap.DurationValue)
		}
	}
}
