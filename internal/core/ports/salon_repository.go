package ports

import (
	"context"

	"github.com/salonelidia/salon-system/internal/core/domain"
)

// SalonRepository is the read side of the users/appointments store.
type SalonRepository interface {
	AdminStats(ctx context.Context) (domain.AdminStats, error)
	ListClients(ctx context.Context) ([]domain.ClientSummary, error)
	ClientProfile(ctx context.Context, userID int64) (*domain.ClientProfile, error)
	ClientAppointments(ctx context.Context, userID int64) ([]domain.Appointment, error)
}

// StatsCache is an optional cache in front of SalonRepository.AdminStats.
// Get reports found=false on a miss.
type StatsCache interface {
	Get(ctx context.Context) (stats domain.AdminStats, found bool, err error)
	Set(ctx context.Context, stats domain.AdminStats) error
}

// AppointmentWriter records visits. Only operator tooling writes appointments.
type AppointmentWriter interface {
	CreateAppointment(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
}
