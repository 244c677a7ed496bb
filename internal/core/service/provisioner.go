package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/salonelidia/salon-system/internal/core/domain"
	"github.com/salonelidia/salon-system/internal/core/ports"
)

// DemoUsers are the accounts seeded in development.
var DemoUsers = []ports.NewUserInput{
	{Username: "admin", Password: "admin123", Role: domain.RoleAdmin, FirstName: "Lidia"},
	{Username: "client", Password: "client123", Role: domain.RoleClient, FirstName: "Cliente", Points: 0},
}

// Provisioner creates accounts outside the HTTP API; there is no
// self-registration endpoint.
type Provisioner struct {
	repo ports.UserRepository
	cost int
	log  zerolog.Logger
}

func NewProvisioner(repo ports.UserRepository, log zerolog.Logger) *Provisioner {
	return &Provisioner{repo: repo, cost: bcrypt.DefaultCost, log: log}
}

// Create hashes the password and stores a new user. It fails with
// ErrUserExists when the username is taken.
func (p *Provisioner) Create(ctx context.Context, in ports.NewUserInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}
	if _, err := domain.ParseRole(string(in.Role)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if in.Points < 0 {
		return nil, fmt.Errorf("%w: points must not be negative", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), p.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return p.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		FirstName:    in.FirstName,
		Phone:        in.Phone,
		Points:       in.Points,
		CreatedAt:    time.Now().UTC(),
	})
}

// EnsureUser creates the user unless the username already exists, in which
// case the stored row is left untouched.
func (p *Provisioner) EnsureUser(ctx context.Context, in ports.NewUserInput) error {
	_, err := p.repo.FindByUsername(ctx, in.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	u, err := p.Create(ctx, in)
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	if err != nil {
		return err
	}
	p.log.Info().Str("username", u.Username).Str("role", u.Role.String()).Msg("user provisioned")
	return nil
}

// RecordAppointment stores a visit for an existing client. The client's
// points balance is not changed.
func (p *Provisioner) RecordAppointment(ctx context.Context, appts ports.AppointmentWriter, in ports.NewAppointmentInput) (*domain.Appointment, error) {
	if strings.TrimSpace(in.Service) == "" {
		return nil, fmt.Errorf("%w: service is required", domain.ErrInvalidInput)
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, fmt.Errorf("%w: time must be HH:MM", domain.ErrInvalidInput)
	}
	if in.Points < 0 {
		return nil, fmt.Errorf("%w: points must not be negative", domain.ErrInvalidInput)
	}

	client, err := p.repo.FindByUsername(ctx, in.ClientUsername)
	if err != nil {
		return nil, err
	}
	if client.Role != domain.RoleClient {
		return nil, fmt.Errorf("%w: %s is not a client", domain.ErrInvalidInput, client.Username)
	}

	a, err := appts.CreateAppointment(ctx, &domain.Appointment{
		ClientID:  client.ID,
		Service:   strings.TrimSpace(in.Service),
		Date:      in.Date,
		Time:      in.Time,
		Points:    in.Points,
		Status:    in.Status,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	p.log.Info().Int64("client_id", client.ID).Str("date", a.Date).Msg("appointment recorded")
	return a, nil
}
