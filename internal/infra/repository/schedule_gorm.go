package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/roncastellon/BWM-walker-app-sub003/internal/domain/schedule"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Pets").
		Preload("Walker").
		Preload("Sitter").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if ap.Pets != nil {
		if err := r.db.WithContext(ctx).
			Model(ap).
			Association("Pets").
			Replace(ap.Pets); err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).Save(ap).Error
}

// ForceCompleteAppointment is a distinct write path so the override is
// auditable apart from normal updates at the storage layer too.
func (r *ScheduleGormRepository) ForceCompleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"status":       ap.Status,
			"completed_at": ap.CompletedAt,
		}).Error
}

func (r *ScheduleGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Pets").
		Preload("Walker").
		Preload("Sitter").
		Order("scheduled_date ASC, scheduled_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListAppointmentsForWalker(
	ctx context.Context,
	walkerID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pets").
		Where("walker_id = ?", walkerID).
		Order("scheduled_date DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Reference data
// --------------------------------------------------

func (r *ScheduleGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ScheduleGormRepository) ListClients(
	ctx context.Context,
	query string,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE LOWER(?) OR phone LIKE ? OR LOWER(email) LIKE LOWER(?)",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ScheduleGormRepository) ListPetsByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Pet, error) {

	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("name ASC").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *ScheduleGormRepository) GetPets(
	ctx context.Context,
	ids []uint,
) ([]models.Pet, error) {

	var pets []models.Pet
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *ScheduleGormRepository) GetServiceByCode(
	ctx context.Context,
	code string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ScheduleGormRepository) ListServices(
	ctx context.Context,
	activeOnly bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ScheduleGormRepository) ListStaffByRole(
	ctx context.Context,
	role string,
) ([]models.User, error) {

	q := r.db.WithContext(ctx).Where("active = ?", true)
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var staff []models.User
	if err := q.Order("name ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *ScheduleGormRepository) GetStaff(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
