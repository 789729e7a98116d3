package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roncastellon/BWM-walker-app-sub003/internal/audit"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/httperr"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/models"
)

func newBatchUC(repo *fakeRepo) *BatchBuilder {
	return NewBatchBuilder(repo, audit.NewDispatcher(nil))
}

// seedWalkerHistory builds a walker with prior walks for two households
// plus an overnight stay for a third, which must not reach the roster.
func seedWalkerHistory(repo *fakeRepo) {
	repo.addStaff(7, "Priya Raman", "walker")
	repo.addService("walk_30", 30)

	repo.addClient(1, "Dana Whitfield")
	repo.addPet(10, 1, "Ziggy")
	repo.addPet(11, 1, "Apollo")

	repo.addClient(2, "Marcus Lee")
	repo.addPet(20, 2, "Bella")

	repo.addClient(3, "Iris Fontaine")
	repo.addPet(30, 3, "Coco")

	walkerID := uint(7)
	repo.seedAppointment(models.Appointment{
		ClientID: 1, WalkerID: &walkerID, ServiceType: "walk_30",
		ScheduledDate: "2026-04-01", EndDate: "2026-04-01", ScheduledTime: "09:00",
		Status: "completed",
		Pets:   []models.Pet{{ID: 10, ClientID: 1, Name: "Ziggy"}},
	})
	repo.seedAppointment(models.Appointment{
		ClientID: 1, WalkerID: &walkerID, ServiceType: "walk_30",
		ScheduledDate: "2026-04-02", EndDate: "2026-04-02", ScheduledTime: "09:00",
		Status: "completed",
		Pets:   []models.Pet{{ID: 11, ClientID: 1, Name: "Apollo"}},
	})
	repo.seedAppointment(models.Appointment{
		ClientID: 2, WalkerID: &walkerID, ServiceType: "walk_30",
		ScheduledDate: "2026-04-03", EndDate: "2026-04-03", ScheduledTime: "14:00",
		Status: "completed",
		Pets:   []models.Pet{{ID: 20, ClientID: 2, Name: "Bella"}},
	})
	// Sitting history does not make a household walkable.
	repo.seedAppointment(models.Appointment{
		ClientID: 3, WalkerID: &walkerID, ServiceType: "overnight",
		ScheduledDate: "2026-04-01", EndDate: "2026-04-05",
		Status: "completed",
		Pets:   []models.Pet{{ID: 30, ClientID: 3, Name: "Coco"}},
	})
}

func TestBatchStartRosterDedupedByClient(t *testing.T) {
	repo := newFakeRepo()
	seedWalkerHistory(repo)
	uc := newBatchUC(repo)

	s, err := uc.Start(context.Background(), 7, "2026-05-04")
	require.NoError(t, err)
	assert.Equal(t, uint(7), s.WalkerID)
	assert.Equal(t, "2026-05-04", s.Date)
	assert.Empty(t, s.Drafts)

	require.Len(t, s.Roster, 2)

	// Sorted by representative pet name; the household with two walked
	// pets is represented by the first-named one.
	assert.Equal(t, "Apollo", s.Roster[0].PetName)
	assert.Equal(t, uint(1), s.Roster[0].ClientID)
	assert.Len(t, s.Roster[0].Pets, 2, "the whole household rides along")

	assert.Equal(t, "Bella", s.Roster[1].PetName)
	assert.Equal(t, uint(2), s.Roster[1].ClientID)
}

func TestBatchStartValidation(t *testing.T) {
	repo := newFakeRepo()
	seedWalkerHistory(repo)
	repo.addStaff(8, "Tom Aldous", "sitter")
	uc := newBatchUC(repo)

	_, err := uc.Start(context.Background(), 7, "not-a-date")
	assert.Equal(t, "invalid_date", httperr.BusinessCode(err))

	_, err = uc.Start(context.Background(), 42, "2026-05-04")
	assert.Equal(t, "walker_not_found", httperr.BusinessCode(err))

	_, err = uc.Start(context.Background(), 8, "2026-05-04")
	assert.Equal(t, "not_a_walker", httperr.BusinessCode(err))
}

func TestBatchAddAndRemoveDraft(t *testing.T) {
	repo := newFakeRepo()
	seedWalkerHistory(repo)
	uc := newBatchUC(repo)

	s, err := uc.Start(context.Background(), 7, "2026-05-04")
	require.NoError(t, err)

	d, err := uc.AddDraft(context.Background(), s, WalkDraft{
		ClientID:      1,
		PetIDs:        []uint{10, 11},
		ServiceType:   "walk_30",
		ScheduledTime: "09:00",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	require.Len(t, s.Drafts, 1)

	_, err = uc.AddDraft(context.Background(), s, WalkDraft{
		ClientID:      2,
		PetIDs:        []uint{20},
		ServiceType:   "overnight",
		ScheduledTime: "10:00",
	})
	assert.Equal(t, "not_a_walk_service", httperr.BusinessCode(err))

	_, err = uc.AddDraft(context.Background(), s, WalkDraft{
		ClientID:    2,
		PetIDs:      []uint{20},
		ServiceType: "walk_30",
	})
	assert.Equal(t, "missing_time", httperr.BusinessCode(err))

	assert.False(t, uc.RemoveDraft(s, "no-such-draft"))
	assert.True(t, uc.RemoveDraft(s, d.ID))
	assert.Empty(t, s.Drafts)
}

func TestBatchCommitWritesIndependentWalks(t *testing.T) {
	repo := newFakeRepo()
	seedWalkerHistory(repo)
	uc := newBatchUC(repo)

	s, err := uc.Start(context.Background(), 7, "2026-05-04")
	require.NoError(t, err)

	_, err = uc.AddDraft(context.Background(), s, WalkDraft{ClientID: 1, PetIDs: []uint{10}, ServiceType: "walk_30", ScheduledTime: "09:00"})
	require.NoError(t, err)
	_, err = uc.AddDraft(context.Background(), s, WalkDraft{ClientID: 2, PetIDs: []uint{20}, ServiceType: "walk_30", ScheduledTime: "14:00"})
	require.NoError(t, err)

	res, err := uc.Commit(context.Background(), 99, s)
	require.NoError(t, err)
	require.Len(t, res.Succeeded, 2)
	assert.Empty(t, res.Failed)
	assert.Empty(t, s.Drafts, "committed drafts leave the session")

	for _, ap := range res.Succeeded {
		require.NotNil(t, ap.WalkerID)
		assert.Equal(t, uint(7), *ap.WalkerID)
		assert.Equal(t, "2026-05-04", ap.ScheduledDate)
		assert.Equal(t, "scheduled", ap.Status)
		assert.Equal(t, 30, ap.DurationValue)
	}
}

func TestBatchCommitPartialSuccessKeepsFailedDrafts(t *testing.T) {
	repo := newFakeRepo()
	seedWalkerHistory(repo)
	uc := newBatchUC(repo)

	s, err := uc.Start(context.Background(), 7, "2026-05-04")
	require.NoError(t, err)

	_, err = uc.AddDraft(context.Background(), s, WalkDraft{ClientID: 1, PetIDs: []uint{10}, ServiceType: "walk_30", ScheduledTime: "09:00"})
	require.NoError(t, err)
	failing, err := uc.AddDraft(context.Background(), s, WalkDraft{ClientID: 2, PetIDs: []uint{20}, ServiceType: "walk_30", ScheduledTime: "10:00"})
	require.NoError(t, err)
	_, err = uc.AddDraft(context.Background(), s, WalkDraft{ClientID: 1, PetIDs: []uint{11}, ServiceType: "walk_30", ScheduledTime: "16:00"})
	require.NoError(t, err)

	repo.failCreateOn[2] = true

	res, err := uc.Commit(context.Background(), 99, s)
	require.NoError(t, err)
	assert.Len(t, res.Succeeded, 2)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, failing.ID, res.Failed[0].DraftID)

	// The failed draft survives for a retry; successes are gone.
	require.Len(t, s.Drafts, 1)
	assert.Equal(t, failing.ID, s.Drafts[0].ID)
}

func TestBatchCommitUnknownServiceFailsOnlyThatDraft(t *testing.T) {
	repo := newFakeRepo()
	seedWalkerHistory(repo)
	uc := newBatchUC(repo)

	s, err := uc.Start(context.Background(), 7, "2026-05-04")
	require.NoError(t, err)

	_, err = uc.AddDraft(context.Background(), s, WalkDraft{ClientID: 1, PetIDs: []uint{10}, ServiceType: "walk_45", ScheduledTime: "09:00"})
	require.NoError(t, err)
	_, err = uc.AddDraft(context.Background(), s, WalkDraft{ClientID: 2, PetIDs: []uint{20}, ServiceType: "walk_30", ScheduledTime: "10:00"})
	require.NoError(t, err)

	res, err := uc.Commit(context.Background(), 99, s)
	require.NoError(t, err)
	assert.Len(t, res.Succeeded, 1)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "service_not_found", res.Failed[0].Error)
}

func TestBatchAddDraftRejectsForeignPet(t *testing.T) {
	repo := newFakeRepo()
	seedWalkerHistory(repo)
	uc := newBatchUC(repo)

	s, err := uc.Start(context.Background(), 7, "2026-05-04")
	require.NoError(t, err)

	// Pet 20 belongs to client 2; a draft for client 1 must not carry it.
	_, err = uc.AddDraft(context.Background(), s, WalkDraft{
		ClientID:      1,
		PetIDs:        []uint{10, 20},
		ServiceType:   "walk_30",
		ScheduledTime: "09:00",
	})
	require.Error(t, err)
	assert.Equal(t, "pet_not_owned_by_client", httperr.BusinessCode(err))
	assert.Empty(t, s.Drafts)

	_, err = uc.AddDraft(context.Background(), s, WalkDraft{
		ClientID:      1,
		PetIDs:        []uint{999},
		ServiceType:   "walk_30",
		ScheduledTime: "09:00",
	})
	assert.Equal(t, "pet_not_found", httperr.BusinessCode(err))
}

func TestBatchCommitRejectsStaleForeignPet(t *testing.T) {
	repo := newFakeRepo()
	seedWalkerHistory(repo)
	uc := newBatchUC(repo)

	s, err := uc.Start(context.Background(), 7, "2026-05-04")
	require.NoError(t, err)

	_, err = uc.AddDraft(context.Background(), s, WalkDraft{ClientID: 1, PetIDs: []uint{10}, ServiceType: "walk_30", ScheduledTime: "09:00"})
	require.NoError(t, err)

	// A draft that went stale while the session sat in the store: the
	// ownership contract is rechecked at commit time.
	s.Drafts = append(s.Drafts, WalkDraft{
		ID:            "stale-draft",
		ClientID:      1,
		PetIDs:        []uint{20},
		ServiceType:   "walk_30",
		ScheduledTime: "10:00",
	})

	res, err := uc.Commit(context.Background(), 99, s)
	require.NoError(t, err)
	assert.Len(t, res.Succeeded, 1)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "stale-draft", res.Failed[0].DraftID)
	assert.Equal(t, "pet_not_owned_by_client", res.Failed[0].Error)

	stored, _ := repo.ListAppointments(context.Background())
	assert.Len(t, stored, 5, "four history rows plus the one valid walk")
}

func TestBatchCommitEmptySession(t *testing.T) {
	repo := newFakeRepo()
	seedWalkerHistory(repo)
	uc := newBatchUC(repo)

	s, err := uc.Start(context.Background(), 7, "2026-05-04")
	require.NoError(t, err)

	_, err = uc.Commit(context.Background(), 99, s)
	assert.Equal(t, "no_drafts", httperr.BusinessCode(err))
}
