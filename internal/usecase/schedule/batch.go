package schedule

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/roncastellon/BWM-walker-app-sub003/internal/audit"
	domain "github.com/roncastellon/BWM-walker-app-sub003/internal/domain/schedule"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/httperr"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/models"
)

// ======================================================
// SESSION STATE
// ======================================================

// PetChoice is one roster entry: a client the walker has walked for
// before, represented by a single pet, with the client's full pet list
// attached so selecting the representative pre-toggles the household.
type PetChoice struct {
	PetID      uint         `json:"pet_id"`
	PetName    string       `json:"pet_name"`
	ClientID   uint         `json:"client_id"`
	ClientName string       `json:"client_name"`
	Pets       []models.Pet `json:"pets"`
}

// WalkDraft is one pending walk in the builder. Drafts only exist in
// the session; nothing is persisted until commit.
type WalkDraft struct {
	ID            string `json:"id"`
	ClientID      uint   `json:"client_id"`
	PetIDs        []uint `json:"pet_ids"`
	ServiceType   string `json:"service_type"`
	ScheduledTime string `json:"scheduled_time"`
	Notes         string `json:"notes"`
}

// BatchSession is the whole workflow state for one operator: the chosen
// walker and date, the history-derived roster, and the draft list. It
// serializes to JSON for the session store.
type BatchSession struct {
	WalkerID uint        `json:"walker_id"`
	Date     string      `json:"date"`
	Roster   []PetChoice `json:"roster"`
	Drafts   []WalkDraft `json:"drafts"`
}

// ======================================================
// RESULT
// ======================================================

type CommitResult struct {
	Succeeded []models.Appointment `json:"succeeded"`
	Failed    []DraftFailure       `json:"failed"`
}

type DraftFailure struct {
	DraftID string `json:"draft_id"`
	Error   string `json:"error"`
}

// ======================================================
// USE CASE
// ======================================================

type BatchBuilder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBatchBuilder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *BatchBuilder {
	return &BatchBuilder{
		repo:  repo,
		audit: audit,
	}
}

// Start opens a session for one walker and one date. The roster comes
// from the walker's walk-type history, deduplicated by owning client
// (one representative pet per household) and sorted by pet name.
func (uc *BatchBuilder) Start(
	ctx context.Context,
	walkerID uint,
	date string,
) (*BatchSession, error) {

	if !domain.IsValidDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	walker, err := uc.repo.GetStaff(ctx, walkerID)
	if err != nil {
		return nil, httperr.ErrBusiness("walker_not_found")
	}
	if walker.Role != "walker" {
		return nil, httperr.ErrBusiness("not_a_walker")
	}

	history, err := uc.repo.ListAppointmentsForWalker(ctx, walkerID)
	if err != nil {
		return nil, err
	}

	roster, err := uc.buildRoster(ctx, history)
	if err != nil {
		return nil, err
	}

	return &BatchSession{
		WalkerID: walkerID,
		Date:     date,
		Roster:   roster,
		Drafts:   []WalkDraft{},
	}, nil
}

func (uc *BatchBuilder) buildRoster(
	ctx context.Context,
	history []models.Appointment,
) ([]PetChoice, error) {

	// One representative pet per client: the first-named pet the walker
	// has walked for that household.
	byClient := map[uint]models.Pet{}
	for i := range history {
		ap := &history[i]
		if !domain.Classify(ap.ServiceType).RequiresWalker {
			continue
		}
		for _, pet := range ap.Pets {
			cur, seen := byClient[pet.ClientID]
			if !seen || pet.Name < cur.Name {
				byClient[pet.ClientID] = pet
			}
		}
	}

	roster := make([]PetChoice, 0, len(byClient))
	for clientID, pet := range byClient {
		client, err := uc.repo.GetClient(ctx, clientID)
		if err != nil {
			// Household vanished server-side; skip rather than fail the
			// whole roster.
			continue
		}
		pets, err := uc.repo.ListPetsByClient(ctx, clientID)
		if err != nil {
			return nil, err
		}
		roster = append(roster, PetChoice{
			PetID:      pet.ID,
			PetName:    pet.Name,
			ClientID:   clientID,
			ClientName: client.Name,
			Pets:       pets,
		})
	}

	sort.Slice(roster, func(i, j int) bool {
		return roster[i].PetName < roster[j].PetName
	})
	return roster, nil
}

// AddDraft validates and appends one walk draft. The caller resets its
// pet/service/time inputs afterwards; walker and date context live on
// the session.
func (uc *BatchBuilder) AddDraft(
	ctx context.Context,
	s *BatchSession,
	d WalkDraft,
) (*WalkDraft, error) {

	if d.ClientID == 0 {
		return nil, httperr.ErrBusiness("missing_client")
	}
	if len(d.PetIDs) == 0 {
		return nil, httperr.ErrBusiness("missing_pets")
	}
	if !domain.Classify(d.ServiceType).RequiresWalker {
		return nil, httperr.ErrBusiness("not_a_walk_service")
	}
	if !domain.IsValidTime(d.ScheduledTime) {
		return nil, httperr.ErrBusiness("missing_time")
	}
	if err := uc.checkPetOwnership(ctx, d.ClientID, d.PetIDs); err != nil {
		return nil, err
	}

	d.ID = uuid.NewString()
	s.Drafts = append(s.Drafts, d)
	return &d, nil
}

// checkPetOwnership applies the same pet contract as the single
// scheduler: every pet must exist and belong to the selected client.
func (uc *BatchBuilder) checkPetOwnership(
	ctx context.Context,
	clientID uint,
	petIDs []uint,
) error {

	pets, err := uc.repo.GetPets(ctx, petIDs)
	if err != nil || len(pets) != len(petIDs) {
		return httperr.ErrBusiness("pet_not_found")
	}
	for _, p := range pets {
		if p.ClientID != clientID {
			return httperr.ErrBusiness("pet_not_owned_by_client")
		}
	}
	return nil
}

// RemoveDraft drops one draft before commit.
func (uc *BatchBuilder) RemoveDraft(s *BatchSession, draftID string) bool {
	for i := range s.Drafts {
		if s.Drafts[i].ID == draftID {
			s.Drafts = append(s.Drafts[:i], s.Drafts[i+1:]...)
			return true
		}
	}
	return false
}

// Commit writes the drafts sequentially as independent appointments
// sharing the session's walker and date. Failed drafts stay in the
// session so the operator sees what did not go through; successes are
// removed and never rolled back.
func (uc *BatchBuilder) Commit(
	ctx context.Context,
	operatorID uint,
	s *BatchSession,
) (*CommitResult, error) {

	if len(s.Drafts) == 0 {
		return nil, httperr.ErrBusiness("no_drafts")
	}

	result := &CommitResult{}
	remaining := make([]WalkDraft, 0, len(s.Drafts))

	for _, d := range s.Drafts {
		ap, err := uc.commitDraft(ctx, s, d)
		if err != nil {
			result.Failed = append(result.Failed, DraftFailure{
				DraftID: d.ID,
				Error:   err.Error(),
			})
			remaining = append(remaining, d)
			continue
		}

		result.Succeeded = append(result.Succeeded, *ap)

		uc.audit.Dispatch(audit.Event{
			UserID:   &operatorID,
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]string{"source": "batch"},
		})
	}

	s.Drafts = remaining
	return result, nil
}

func (uc *BatchBuilder) commitDraft(
	ctx context.Context,
	s *BatchSession,
	d WalkDraft,
) (*models.Appointment, error) {

	// Sessions live for hours; recheck the pet contract in case a draft
	// went stale between add and commit.
	if err := uc.checkPetOwnership(ctx, d.ClientID, d.PetIDs); err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetServiceByCode(ctx, d.ServiceType)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	walkerID := s.WalkerID
	ap := &models.Appointment{
		ClientID:      d.ClientID,
		WalkerID:      &walkerID,
		ServiceType:   d.ServiceType,
		ScheduledDate: s.Date,
		EndDate:       s.Date,
		ScheduledTime: d.ScheduledTime,
		DurationValue: svc.DurationMin,
		DurationType:  string(domain.DurationMinutes),
		Status:        string(domain.InitialStatus()),
		Notes:         d.Notes,
	}
	for _, id := range d.PetIDs {
		ap.Pets = append(ap.Pets, models.Pet{ID: id})
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}
	return ap, nil
}
