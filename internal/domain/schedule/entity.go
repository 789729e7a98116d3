package schedule

import (
	"time"

	"github.com/roncastellon/BWM-walker-app-sub003/internal/httperr"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves an appointment to a new status, stamping the
// cancellation or completion time. A redundant transition to the
// current status leaves the record untouched.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	from := Status(ap.Status)
	if err := CanTransition(from, to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	ap.Status = string(to)
	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusCancelled, now)
}

// ForceComplete is the administrative override for appointments whose
// execution report never arrived. It skips report population entirely.
func ForceComplete(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusCompleted, now)
}

// EndStayEarly shortens a running or scheduled stay: the end date moves
// to today, the duration is recomputed over the shortened range, and
// the appointment is completed. The cut days vanish from calendar views
// by virtue of the new end date; no cancellation records are written.
func EndStayEarly(ap *models.Appointment, today string, now time.Time) error {
	dt := DurationType(ap.DurationType)
	if dt != DurationDays && dt != DurationNights {
		return httperr.ErrBusiness("not_a_range_appointment")
	}
	from := Status(ap.Status)
	// Finished stays are immutable; the same-status tolerance of
	// CanTransition must not let a completed stay be reshaped.
	if IsTerminal(from) {
		return httperr.ErrBusiness("invalid_transition")
	}
	if err := CanTransition(from, StatusCompleted); err != nil {
		return err
	}

	end := today
	if end < ap.ScheduledDate {
		end = ap.ScheduledDate
	}
	ap.EndDate = end
	ap.DurationValue = RangeDuration(ap.ScheduledDate, end, dt)
	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
