package ports

import (
	"context"

	"github.com/salonelidia/salon-system/internal/core/domain"
)

type SalonService interface {
	AdminStats(ctx context.Context) (domain.AdminStats, error)
	ListClients(ctx context.Context) ([]domain.ClientSummary, error)
	ClientProfile(ctx context.Context, userID int64) (*domain.ClientProfile, error)
	ClientAppointments(ctx context.Context, userID int64) ([]domain.Appointment, error)
}

// NewUserInput carries everything needed to provision an account.
type NewUserInput struct {
	Username  string
	Password  string
	Role      domain.Role
	FirstName string
	Phone     string
	Points    int64
}

// NewAppointmentInput describes a visit recorded by an operator.
type NewAppointmentInput struct {
	ClientUsername string
	Service        string
	Date           string // YYYY-MM-DD
	Time           string // HH:MM
	Points         int64
	Status         string
}
