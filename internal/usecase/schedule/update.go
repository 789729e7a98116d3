package schedule

import (
	"context"

	"github.com/roncastellon/BWM-walker-app-sub003/internal/audit"
	domain "github.com/roncastellon/BWM-walker-app-sub003/internal/domain/schedule"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/httperr"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// UpdateAppointmentInput is a partial update: nil fields keep their
// prior values. Staff pointers carry 0 to unassign.
type UpdateAppointmentInput struct {
	WalkerID *uint
	SitterID *uint

	ScheduledDate *string
	EndDate       *string
	ScheduledTime *string

	ServiceType *string
	PetIDs      []uint // nil keeps current set
	Notes       *string
}

func (in UpdateAppointmentInput) touchesSchedule() bool {
	return in.WalkerID != nil ||
		in.SitterID != nil ||
		in.ScheduledDate != nil ||
		in.EndDate != nil ||
		in.ScheduledTime != nil ||
		in.ServiceType != nil ||
		in.PetIDs != nil
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	operatorID uint,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// Notes stay editable on finished appointments; everything that
	// affects the schedule does not.
	if domain.IsTerminal(domain.Status(ap.Status)) && in.touchesSchedule() {
		return nil, httperr.ErrBusiness("appointment_locked")
	}

	if in.WalkerID != nil {
		if *in.WalkerID == 0 {
			ap.WalkerID = nil
		} else {
			id := *in.WalkerID
			ap.WalkerID = &id
		}
		ap.Walker = nil
	}
	if in.SitterID != nil {
		if *in.SitterID == 0 {
			ap.SitterID = nil
		} else {
			id := *in.SitterID
			ap.SitterID = &id
		}
		ap.Sitter = nil
	}

	if in.ServiceType != nil {
		ap.ServiceType = *in.ServiceType
	}
	if in.ScheduledDate != nil {
		ap.ScheduledDate = *in.ScheduledDate
	}
	if in.EndDate != nil {
		ap.EndDate = *in.EndDate
	}
	if in.ScheduledTime != nil {
		ap.ScheduledTime = *in.ScheduledTime
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}
	if in.PetIDs != nil {
		if len(in.PetIDs) == 0 {
			return nil, httperr.ErrBusiness("missing_pets")
		}
		ap.Pets = nil
		for _, id := range in.PetIDs {
			ap.Pets = append(ap.Pets, models.Pet{ID: id})
		}
	}

	if err := uc.revalidate(ctx, ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &operatorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// revalidate re-applies the classification invariants after a partial
// update so a reschedule cannot leave a range appointment with a time
// or a walk spanning dates.
func (uc *UpdateAppointment) revalidate(
	ctx context.Context,
	ap *models.Appointment,
) error {

	cls := domain.Classify(ap.ServiceType)

	if !domain.IsValidDate(ap.ScheduledDate) {
		return httperr.ErrBusiness("invalid_date")
	}

	if cls.IsRangeType() {
		if !domain.IsValidDate(ap.EndDate) {
			return httperr.ErrBusiness("missing_end_date")
		}
		if ap.EndDate < ap.ScheduledDate {
			return httperr.ErrBusiness("end_before_start")
		}
		ap.ScheduledTime = ""
		ap.DurationType = string(cls.DurationType)
		ap.DurationValue = domain.RangeDuration(ap.ScheduledDate, ap.EndDate, cls.DurationType)
	} else {
		if !domain.IsValidTime(ap.ScheduledTime) {
			return httperr.ErrBusiness("missing_time")
		}
		ap.EndDate = ap.ScheduledDate
		ap.DurationType = string(domain.DurationMinutes)
		if svc, err := uc.repo.GetServiceByCode(ctx, ap.ServiceType); err == nil {
			ap.DurationValue = svc.DurationMin
		}
	}

	if ap.SitterID != nil && !cls.AllowsSitter {
		return httperr.ErrBusiness("sitter_not_allowed")
	}
	if ap.WalkerID != nil && !cls.RequiresWalker {
		return httperr.ErrBusiness("walker_not_allowed")
	}

	return nil
}
