package schedule

import (
	"context"
	"fmt"

	"github.com/roncastellon/BWM-walker-app-sub003/internal/audit"
	domain "github.com/roncastellon/BWM-walker-app-sub003/internal/domain/schedule"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/httperr"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID uint
	PetIDs   []uint

	ServiceType string

	ScheduledDate string // YYYY-MM-DD
	EndDate       string // required for range services
	ScheduledTime string // HH:MM, required for time-slot services

	WalkerID *uint
	SitterID *uint

	Notes string

	// WalkCount > 1 fans out into that many independent walks.
	WalkCount int
}

// ======================================================
// RESULT
// ======================================================

// CreateResult surfaces partial success: emissions are sequential and
// independent, and already-created walks are never rolled back when a
// later one fails.
type CreateResult struct {
	Succeeded []models.Appointment `json:"succeeded"`
	Failed    []CreateFailure      `json:"failed"`
}

type CreateFailure struct {
	Index int    `json:"index"` // 1-based walk number
	Error string `json:"error"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	operatorID uint,
	in CreateAppointmentInput,
) (*CreateResult, error) {

	cls := domain.Classify(in.ServiceType)

	if err := uc.validate(ctx, in, cls); err != nil {
		return nil, err
	}

	// Stale service codes surface as a collaborator failure, not a
	// local validation error.
	svc, err := uc.repo.GetServiceByCode(ctx, in.ServiceType)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	count := in.WalkCount
	if count == 0 {
		count = 1
	}

	result := &CreateResult{}

	for i := 1; i <= count; i++ {
		ap := uc.buildAppointment(in, cls, svc)
		if count > 1 {
			annotation := fmt.Sprintf("Walk %d of %d", i, count)
			if ap.Notes != "" {
				ap.Notes = ap.Notes + " (" + annotation + ")"
			} else {
				ap.Notes = annotation
			}
		}

		if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
			result.Failed = append(result.Failed, CreateFailure{
				Index: i,
				Error: err.Error(),
			})
			continue
		}

		result.Succeeded = append(result.Succeeded, *ap)

		uc.audit.Dispatch(audit.Event{
			UserID:   &operatorID,
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	return result, nil
}

// ======================================================
// VALIDATION
// ======================================================

func (uc *CreateAppointment) validate(
	ctx context.Context,
	in CreateAppointmentInput,
	cls domain.Classification,
) error {

	if in.ClientID == 0 {
		return httperr.ErrBusiness("missing_client")
	}
	if len(in.PetIDs) == 0 {
		return httperr.ErrBusiness("missing_pets")
	}
	if in.ServiceType == "" {
		return httperr.ErrBusiness("missing_service_type")
	}
	if !domain.IsValidDate(in.ScheduledDate) {
		return httperr.ErrBusiness("invalid_date")
	}

	if cls.IsRangeType() {
		if !domain.IsValidDate(in.EndDate) {
			return httperr.ErrBusiness("missing_end_date")
		}
		if in.EndDate < in.ScheduledDate {
			return httperr.ErrBusiness("end_before_start")
		}
		if in.ScheduledTime != "" {
			return httperr.ErrBusiness("time_not_allowed")
		}
	} else {
		if !domain.IsValidTime(in.ScheduledTime) {
			return httperr.ErrBusiness("missing_time")
		}
		if in.EndDate != "" && in.EndDate != in.ScheduledDate {
			return httperr.ErrBusiness("end_date_not_allowed")
		}
	}

	if in.SitterID != nil && !cls.AllowsSitter {
		return httperr.ErrBusiness("sitter_not_allowed")
	}
	if in.WalkerID != nil && !cls.RequiresWalker {
		return httperr.ErrBusiness("walker_not_allowed")
	}

	if in.WalkCount > 1 && !cls.RequiresWalker {
		return httperr.ErrBusiness("walk_count_not_allowed")
	}
	if in.WalkCount < 0 || in.WalkCount > 5 {
		return httperr.ErrBusiness("invalid_walk_count")
	}

	// Pets must exist and belong to the selected client.
	pets, err := uc.repo.GetPets(ctx, in.PetIDs)
	if err != nil || len(pets) != len(in.PetIDs) {
		return httperr.ErrBusiness("pet_not_found")
	}
	for _, p := range pets {
		if p.ClientID != in.ClientID {
			return httperr.ErrBusiness("pet_not_owned_by_client")
		}
	}

	return nil
}

func (uc *CreateAppointment) buildAppointment(
	in CreateAppointmentInput,
	cls domain.Classification,
	svc *models.Service,
) *models.Appointment {

	ap := &models.Appointment{
		ClientID:      in.ClientID,
		WalkerID:      in.WalkerID,
		SitterID:      in.SitterID,
		ServiceType:   in.ServiceType,
		ScheduledDate: in.ScheduledDate,
		Status:        string(domain.InitialStatus()),
		Notes:         in.Notes,
		DurationType:  string(cls.DurationType),
	}

	for _, id := range in.PetIDs {
		ap.Pets = append(ap.Pets, models.Pet{ID: id})
	}

	if cls.IsRangeType() {
		ap.EndDate = in.EndDate
		ap.ScheduledTime = ""
		ap.DurationValue = domain.RangeDuration(in.ScheduledDate, in.EndDate, cls.DurationType)
	} else {
		ap.EndDate = in.ScheduledDate
		ap.ScheduledTime = in.ScheduledTime
		ap.DurationValue = svc.DurationMin
	}

	return ap
}
