package schedule

import (
	"context"
	"errors"
	"sort"
	"strings"

	domain "github.com/roncastellon/BWM-walker-app-sub003/internal/domain/schedule"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory Repository for use-case tests. Create calls
// listed in failCreateOn (1-based call numbers) fail, which drives the
// partial-success scenarios.
type fakeRepo struct {
	appointments map[uint]*models.Appointment
	clients      map[uint]*models.Client
	pets         map[uint]*models.Pet
	services     map[string]*models.Service
	staff        map[uint]*models.User

	nextID uint

	createCalls        int
	failCreateOn       map[int]bool
	updateCalls        int
	forceCompleteCalls int
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: map[uint]*models.Appointment{},
		clients:      map[uint]*models.Client{},
		pets:         map[uint]*models.Pet{},
		services:     map[string]*models.Service{},
		staff:        map[uint]*models.User{},
		failCreateOn: map[int]bool{},
	}
}

// -------- seeding helpers --------

func (r *fakeRepo) addClient(id uint, name string) {
	r.clients[id] = &models.Client{ID: id, Name: name}
}

func (r *fakeRepo) addPet(id, clientID uint, name string) {
	r.pets[id] = &models.Pet{ID: id, ClientID: clientID, Name: name}
}

func (r *fakeRepo) addService(code string, durationMin int) {
	r.services[code] = &models.Service{
		ID:          uint(len(r.services) + 1),
		Code:        code,
		Name:        code,
		DurationMin: durationMin,
		Active:      true,
	}
}

func (r *fakeRepo) addStaff(id uint, name, role string) {
	r.staff[id] = &models.User{ID: id, Name: name, Role: role, Active: true}
}

func (r *fakeRepo) seedAppointment(ap models.Appointment) uint {
	r.nextID++
	ap.ID = r.nextID
	r.appointments[ap.ID] = &ap
	return ap.ID
}

// -------- Appointments --------

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.createCalls++
	if r.failCreateOn[r.createCalls] {
		return errors.New("storage unavailable")
	}
	r.nextID++
	ap.ID = r.nextID
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.updateCalls++
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) ForceCompleteAppointment(ctx context.Context, ap *models.Appointment) error {
	r.forceCompleteCalls++
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForWalker(ctx context.Context, walkerID uint) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if ap.WalkerID != nil && *ap.WalkerID == walkerID {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// -------- Reference data --------

func (r *fakeRepo) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeRepo) ListClients(ctx context.Context, query string) ([]models.Client, error) {
	out := make([]models.Client, 0)
	for _, c := range r.clients {
		if query == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) ListPetsByClient(ctx context.Context, clientID uint) ([]models.Pet, error) {
	out := make([]models.Pet, 0)
	for _, p := range r.pets {
		if p.ClientID == clientID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) GetPets(ctx context.Context, ids []uint) ([]models.Pet, error) {
	out := make([]models.Pet, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.pets[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetServiceByCode(ctx context.Context, code string) (*models.Service, error) {
	s, ok := r.services[code]
	if !ok {
		return nil, errNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeRepo) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	out := make([]models.Service, 0)
	for _, s := range r.services {
		if activeOnly && !s.Active {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *fakeRepo) ListStaffByRole(ctx context.Context, role string) ([]models.User, error) {
	out := make([]models.User, 0)
	for _, u := range r.staff {
		if role == "" || u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeRepo) GetStaff(ctx context.Context, id uint) (*models.User, error) {
	u, ok := r.staff[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *u
	return &cp, nil
}
