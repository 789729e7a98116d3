package schedule

import (
	"context"
	"time"

	"github.com/roncastellon/BWM-walker-app-sub003/internal/audit"
	domain "github.com/roncastellon/BWM-walker-app-sub003/internal/domain/schedule"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/httperr"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/models"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/timezone"
)

// TransitionAppointment carries the operator quick actions: status
// change, force complete, end stay early, and the completion report
// intake from the walk execution subsystem.
type TransitionAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewTransitionAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// ======================================================
// STATUS QUICK ACTION
// ======================================================

func (uc *TransitionAppointment) ChangeStatus(
	ctx context.Context,
	operatorID uint,
	appointmentID uint,
	to domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	from := domain.Status(ap.Status)
	if from == to {
		// Redundant quick action; nothing to persist.
		return ap, nil
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Transition(ap, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &operatorID,
		Action:   "appointment_status_" + string(to),
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"from": string(from)},
	})

	return ap, nil
}

// ======================================================
// FORCE COMPLETE
// ======================================================

// ForceComplete is the administrative override for appointments the
// execution subsystem never closed out. It goes through the dedicated
// collaborator write and skips report population.
func (uc *TransitionAppointment) ForceComplete(
	ctx context.Context,
	operatorID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.ForceComplete(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.ForceCompleteAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &operatorID,
		Action:   "appointment_force_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// ======================================================
// END STAY EARLY
// ======================================================

func (uc *TransitionAppointment) EndStayEarly(
	ctx context.Context,
	operatorID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.EndStayEarly(ap, timezone.Today(uc.tz), now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &operatorID,
		Action:   "appointment_stay_ended_early",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"end_date": ap.EndDate},
	})

	return ap, nil
}

// ======================================================
// COMPLETION REPORT
// ======================================================

type CompletionReportInput struct {
	ActualDurationMinutes int     `json:"actual_duration_minutes"`
	PeeCount              int     `json:"pee_count"`
	PoopCount             int     `json:"poop_count"`
	WaterGiven            bool    `json:"water_given"`
	WalkerNotes           string  `json:"walker_notes"`
	GPSRoute              string  `json:"gps_route"`
	DistanceMeters        float64 `json:"distance_meters"`
	StartTime             *time.Time `json:"start_time"`
	EndTime               *time.Time `json:"end_time"`
}

// RecordCompletionReport is the execution subsystem's write path: it
// stores the report fields and completes the appointment.
func (uc *TransitionAppointment) RecordCompletionReport(
	ctx context.Context,
	operatorID uint,
	appointmentID uint,
	in CompletionReportInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Transition(ap, domain.StatusCompleted, now); err != nil {
		return nil, err
	}

	ap.ActualDurationMinutes = in.ActualDurationMinutes
	ap.PeeCount = in.PeeCount
	ap.PoopCount = in.PoopCount
	ap.WaterGiven = in.WaterGiven
	ap.WalkerNotes = in.WalkerNotes
	ap.GPSRoute = in.GPSRoute
	ap.DistanceMeters = in.DistanceMeters
	ap.StartTime = in.StartTime
	ap.EndTime = in.EndTime

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &operatorID,
		Action:   "appointment_report_recorded",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
