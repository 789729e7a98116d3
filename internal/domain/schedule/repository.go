package schedule

import (
	"context"

	"github.com/roncastellon/BWM-walker-app-sub003/internal/models"
)

// Repository is the persistence collaborator. All calendar filtering
// happens in this package, so listing returns the full collection.
type Repository interface {
	// -------- Appointments --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ForceCompleteAppointment is the administrative override write,
	// kept distinct from the normal status update.
	ForceCompleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsForWalker(
		ctx context.Context,
		walkerID uint,
	) ([]models.Appointment, error)

	// -------- Reference data --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	ListClients(
		ctx context.Context,
		query string,
	) ([]models.Client, error)

	ListPetsByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Pet, error)

	GetPets(
		ctx context.Context,
		ids []uint,
	) ([]models.Pet, error)

	GetServiceByCode(
		ctx context.Context,
		code string,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
		activeOnly bool,
	) ([]models.Service, error)

	ListStaffByRole(
		ctx context.Context,
		role string,
	) ([]models.User, error)

	GetStaff(
		ctx context.Context,
		id uint,
	) (*models.User, error)
}
